// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug
// +build debug

package polydd

import "github.com/sirupsen/logrus"

const _DEBUG bool = true

func init() {
	logrus.SetLevel(logrus.DebugLevel)
}
