// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRankVectorBDD(t *testing.T) {
	f, err := New(3, KindBDD)
	require.NoError(t, err)

	x0, x1 := f.SingleVariable(0), f.SingleVariable(1)
	g := f.And(x0, x1)

	rv := f.NumberSolutions(g, RankVector(nil)).(RankVector)
	// x0 and x1, over 3 variables: models are exactly those with x0=x1=true
	// and x2 free, so rank 2 has 1 model (x2=false) and rank 3 has 1 (x2=true).
	require.Equal(t, uint64(0), rankAt(rv, 0))
	require.Equal(t, uint64(0), rankAt(rv, 1))
	require.Equal(t, uint64(1), rankAt(rv, 2))
	require.Equal(t, uint64(1), rankAt(rv, 3))

	var total uint64
	for _, v := range rv {
		total += v
	}
	require.Equal(t, uint64(2), total)
}

func rankAt(r RankVector, i int) uint64 {
	if i < 0 || i >= len(r) {
		return 0
	}
	return r[i]
}

func TestSplitByMultiplicity(t *testing.T) {
	f, err := New(2, KindZDD, WithMultiplicity(Uint32Multiplicity))
	require.NoError(t, err)

	s0 := f.SingleVariable(0)
	s1 := f.SingleVariable(1)
	// weight {0} by 2 and {1} by 3, so union has one element at
	// multiplicity 2 and one at multiplicity 3.
	weighted0 := f.scale(s0, count32(2))
	weighted1 := f.scale(s1, count32(3))
	union := f.Or(weighted0, weighted1)

	split := f.NumberSolutions(union, SplitByMultiplicity(nil)).(SplitByMultiplicity)
	require.Equal(t, uint64(0), splitAt(split, 0)) // multiplicity 1: none
	require.Equal(t, uint64(1), splitAt(split, 1)) // multiplicity 2: one element
	require.Equal(t, uint64(1), splitAt(split, 2)) // multiplicity 3: one element
}

func splitAt(s SplitByMultiplicity, i int) uint64 {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}
