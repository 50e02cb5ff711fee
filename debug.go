// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug
// +build !debug

package polydd

// _DEBUG gates the extra bookkeeping (cache hit/miss counters, verbose GC
// history) that Stats reports. Off by default so production builds do not
// pay for statistics nobody reads.
const _DEBUG bool = false
