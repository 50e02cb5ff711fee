// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

import (
	"testing"

	"github.com/pkg/errors"
)

func TestDecomposeRoundTrip(t *testing.T) {
	p, err := NewPermFactory(4, Swap)
	if err != nil {
		t.Fatalf("NewPermFactory: %v", err)
	}
	perm := []int{2, 4, 1, 3}
	basis := p.decompose(perm)

	work := []int{1, 2, 3, 4}
	for k := len(basis) - 1; k >= 0; k-- {
		i, j := basis[k][0], basis[k][1]
		work[i-1], work[j-1] = work[j-1], work[i-1]
	}
	for k := range work {
		if work[k] != perm[k] {
			t.Fatalf("decompose round-trip: got %v, want %v", work, perm)
		}
	}
}

func TestVarOfPairOfInverse(t *testing.T) {
	p, err := NewPermFactory(5, Swap)
	if err != nil {
		t.Fatalf("NewPermFactory: %v", err)
	}
	for j := 2; j <= p.N(); j++ {
		for i := 1; i < j; i++ {
			v := p.varOf(i, j)
			gi, gj := p.pairOf(v)
			if gi != i || gj != j {
				t.Errorf("pairOf(varOf(%d,%d))=(%d,%d), want (%d,%d)", i, j, gi, gj, i, j)
			}
		}
	}
}

func TestConstructAllPermutationsCount(t *testing.T) {
	p, err := NewPermFactory(4, Swap)
	if err != nil {
		t.Fatalf("NewPermFactory: %v", err)
	}
	all := p.ConstructAllPermutations()
	count, ok := p.NumberSolutions(all, ScalarCount(0)).(ScalarCount)
	if !ok || uint64(count) != 24 {
		t.Errorf("ConstructAllPermutations(4): expected 4!=24 permutations, got %v", count)
	}
}

func TestSinglePermutationMembership(t *testing.T) {
	p, err := NewPermFactory(4, Swap)
	if err != nil {
		t.Fatalf("NewPermFactory: %v", err)
	}
	perm := []int{3, 1, 4, 2}
	single, err := p.SinglePermutation(perm)
	if err != nil {
		t.Fatalf("SinglePermutation: %v", err)
	}
	count, ok := p.NumberSolutions(single, ScalarCount(0)).(ScalarCount)
	if !ok || uint64(count) != 1 {
		t.Errorf("SinglePermutation: expected a singleton family, got %v", count)
	}

	all := p.ConstructAllPermutations()
	intersect := p.And(all, single)
	if intersect.Addr != single.Addr {
		t.Errorf("SinglePermutation(%v) should be a member of ConstructAllPermutations()", perm)
	}
}

func TestSinglePermutationRejectsBadInput(t *testing.T) {
	p, err := NewPermFactory(4, Swap)
	if err != nil {
		t.Fatalf("NewPermFactory: %v", err)
	}
	if _, err := p.SinglePermutation([]int{1, 2, 3}); err == nil {
		t.Errorf("expected an error for a permutation of the wrong length")
	}
	if _, err := p.SinglePermutation([]int{1, 1, 3, 4}); err == nil {
		t.Errorf("expected an error for a non-bijective permutation")
	}
}

func TestApplyBasisSwapIsInvolution(t *testing.T) {
	p, err := NewPermFactory(4, Swap)
	if err != nil {
		t.Fatalf("NewPermFactory: %v", err)
	}
	perm := []int{2, 1, 4, 3}
	single, err := p.SinglePermutation(perm)
	if err != nil {
		t.Fatalf("SinglePermutation: %v", err)
	}
	once := p.ApplyBasis(single, 1, 2)
	twice := p.ApplyBasis(once, 1, 2)
	if twice.Addr != single.Addr {
		t.Errorf("applying the same transposition twice should be the identity")
	}

	want := []int{1, 2, 4, 3}
	wantEdge, _ := p.SinglePermutation(want)
	if once.Addr != wantEdge.Addr {
		t.Errorf("ApplyBasis(perm, 1, 2): got a different family than expected")
	}
}

func TestApplyBasisLeftRotation(t *testing.T) {
	p, err := NewPermFactory(4, LeftRotation)
	if err != nil {
		t.Fatalf("NewPermFactory: %v", err)
	}
	identity := []int{1, 2, 3, 4}
	single, err := p.SinglePermutation(identity)
	if err != nil {
		t.Fatalf("SinglePermutation: %v", err)
	}
	rotated := p.ApplyBasis(single, 1, 3)
	count, ok := p.NumberSolutions(rotated, ScalarCount(0)).(ScalarCount)
	if !ok || uint64(count) != 1 {
		t.Errorf("ApplyBasis on a singleton family should still be a singleton, got %v", count)
	}
}

func TestComposeWithIdentity(t *testing.T) {
	p, err := NewPermFactory(4, Swap)
	if err != nil {
		t.Fatalf("NewPermFactory: %v", err)
	}
	perm := []int{3, 1, 4, 2}
	single, err := p.SinglePermutation(perm)
	if err != nil {
		t.Fatalf("SinglePermutation: %v", err)
	}
	identity, err := p.SinglePermutation([]int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("SinglePermutation: %v", err)
	}
	composed := p.Compose(single, identity)
	if composed.Addr != single.Addr {
		t.Errorf("Compose(perm, identity) should equal perm")
	}
}

func TestWithOrderedKPrefix(t *testing.T) {
	p, err := NewPermFactory(3, LeftRotation)
	if err != nil {
		t.Fatalf("NewPermFactory: %v", err)
	}
	// Of the 6 permutations of {1,2,3}, the ones with an increasing prefix
	// of length 2 are: 123, 132, 231, so 3 total.
	family, err := p.WithOrderedKPrefix(2)
	if err != nil {
		t.Fatalf("WithOrderedKPrefix: %v", err)
	}
	count, ok := p.NumberSolutions(family, ScalarCount(0)).(ScalarCount)
	if !ok || uint64(count) != 3 {
		t.Errorf("WithOrderedKPrefix(2) over n=3: expected 3, got %v", count)
	}
}

func TestWithOrderedKPrefixRejectsSwap(t *testing.T) {
	p, err := NewPermFactory(3, Swap)
	if err != nil {
		t.Fatalf("NewPermFactory: %v", err)
	}
	if _, err := p.WithOrderedKPrefix(2); errors.Cause(err) != ErrMismatchedKind {
		t.Errorf("WithOrderedKPrefix on a Swap factory: expected ErrMismatchedKind, got %v", err)
	}
}

func TestDistributeKPrefix(t *testing.T) {
	p, err := NewPermFactory(3, LeftRotation)
	if err != nil {
		t.Fatalf("NewPermFactory: %v", err)
	}
	family, err := p.DistributeKPrefix(1)
	if err != nil {
		t.Fatalf("DistributeKPrefix: %v", err)
	}
	count, ok := p.NumberSolutions(family, ScalarCount(0)).(ScalarCount)
	if !ok || uint64(count) != 3 {
		t.Errorf("DistributeKPrefix(1) over n=3: expected C(3,1)=3 permutations, got %v", count)
	}
}

func TestContainingPattern(t *testing.T) {
	p, err := NewPermFactory(3, LeftRotation)
	if err != nil {
		t.Fatalf("NewPermFactory: %v", err)
	}
	// Permutations of {1,2,3} containing the pattern 1,2 (an ascent
	// anywhere): 123, 132, 213, 231, 312 all contain an ascent except 321.
	family, err := p.ContainingPattern([]int{1, 2})
	if err != nil {
		t.Fatalf("ContainingPattern: %v", err)
	}
	count, ok := p.NumberSolutions(family, ScalarCount(0)).(ScalarCount)
	if !ok || uint64(count) != 5 {
		t.Errorf("ContainingPattern({1,2}) over n=3: expected 5, got %v", count)
	}
}

// TestAvoidingPattern1324 mirrors
// `_examples/original_source/tests/pattern_avoiding_permutations.rs`'s
// test_avoid1324: the number of permutations of {1..n} avoiding 1324 is
// OEIS A061552, reproduced here for n=1..14 exactly as spec.md §8 scenario
// 6 names it. n=14 means 14! ~ 8.7e10 candidate permutations — the point
// of this test is that ContainingPattern gets there by composing diagrams,
// never by walking that many permutations, which a generate-and-filter
// implementation could not do in any reasonable time.
func TestAvoidingPattern1324(t *testing.T) {
	want := []uint64{
		1, 2, 6, 23, 103, 513, 2762, 15793, 94776,
		591950, 3824112, 25431452, 173453058, 1209639642,
	}
	pattern := []int{1, 3, 2, 4}

	for n := 1; n <= len(want); n++ {
		factorial := uint64(1)
		for i := 2; i <= n; i++ {
			factorial *= uint64(i)
		}
		if n < 2 {
			if factorial != want[n-1] {
				t.Fatalf("n=%d: expected %d permutations avoiding 1324, got %d", n, want[n-1], factorial)
			}
			continue
		}
		p, err := NewPermFactory(n, LeftRotation)
		if err != nil {
			t.Fatalf("NewPermFactory(%d): %v", n, err)
		}
		containing, err := p.ContainingPattern(pattern)
		if err != nil {
			t.Fatalf("n=%d: ContainingPattern: %v", n, err)
		}
		count, ok := p.NumberSolutions(containing, ScalarCount(0)).(ScalarCount)
		if !ok {
			t.Fatalf("n=%d: NumberSolutions returned an unexpected type", n)
		}
		avoiding := factorial - uint64(count)
		if avoiding != want[n-1] {
			t.Errorf("n=%d: expected %d permutations avoiding 1324, got %d", n, want[n-1], avoiding)
		}
	}
}
