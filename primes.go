// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

import "math/big"

// primeGte returns the smallest prime number greater than or equal to src.
// It gives the initial capacity hint of the memo maps (newPairMemo,
// newUnaryMemo); the node table does not use it.
func primeGte(src int) int {
	if src < 2 {
		return 2
	}
	if src%2 == 0 {
		src++
	}
	for {
		if hasEasyFactors(src) {
			src += 2
			continue
		}
		if big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
		src += 2
	}
}

func hasFactor(src, n int) bool {
	return src != n && src%n == 0
}

func hasEasyFactors(src int) bool {
	return hasFactor(src, 3) || hasFactor(src, 5) || hasFactor(src, 7) || hasFactor(src, 11) || hasFactor(src, 13)
}
