// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

import "github.com/pkg/errors"

// ConstructAllPermutations returns the ZDD of the full symmetric group on
// {1..n} (spec.md §4.7.5): built by growing the set of permutations of
// {1..x} from the set of permutations of {1..x-1}, unioning in, for every
// position p < x, the copy obtained by applying basis (p, x) — which is
// exactly the inverse of the canonical decomposition step in decompose.
func (p *PermFactory) ConstructAllPermutations() Edge {
	res := p.True()
	for x := 2; x <= p.n; x++ {
		grown := res
		for i := 1; i < x; i++ {
			grown = p.Or(grown, p.ApplyBasis(res, i, x))
		}
		res = grown
	}
	return res
}

// SinglePermutation returns the ZDD containing exactly perm, a permutation
// of {1..n} given as perm[k-1] = π(k) (spec.md §4.7.5): decompose it into
// basis elements and apply them, starting from the identity, in the
// reverse of emission order (decompose emits from the largest fixed point
// down, so applying from the smallest back up reconstructs perm). Returns
// ErrNotPermutation if perm is not a bijection of {1..n}.
func (p *PermFactory) SinglePermutation(perm []int) (Edge, error) {
	if len(perm) != p.n {
		return Edge{}, errors.Wrapf(ErrNotPermutation, "want length %d, got %d", p.n, len(perm))
	}
	return p.singlePermutationOf(perm)
}

// singlePermutationOf is SinglePermutation without the "len(perm) == n"
// requirement: perm must be a bijection of {1..len(perm)}, but len(perm)
// may be smaller than p.n. This is exactly what YI's
// compute_for_single_permutation takes (the original source's B, in
// ContainingPattern's compose(C, compose(B, A))): a k-element pattern,
// embedded in the basis of an n-element factory, k <= n.
func (p *PermFactory) singlePermutationOf(perm []int) (Edge, error) {
	if err := validateBijection(perm); err != nil {
		return Edge{}, err
	}
	if len(perm) > p.n {
		return Edge{}, errors.Wrapf(ErrNotPermutation, "pattern of length %d exceeds %d elements", len(perm), p.n)
	}
	basis := p.decompose(perm)
	res := p.True()
	for k := len(basis) - 1; k >= 0; k-- {
		res = p.ApplyBasis(res, basis[k][0], basis[k][1])
	}
	return res, nil
}

// validateBijection checks that perm is a permutation of {1..len(perm)};
// it says nothing about how len(perm) relates to any factory's n, which is
// checked separately by callers that care (SinglePermutation,
// singlePermutationOf).
func validateBijection(perm []int) error {
	n := len(perm)
	seen := make([]bool, n+1)
	for _, v := range perm {
		if v < 1 || v > n || seen[v] {
			return errors.Wrapf(ErrNotPermutation, "value %d invalid or repeated", v)
		}
		seen[v] = true
	}
	return nil
}

// WithOrderedKPrefix returns the family of permutations of {1..n} whose
// first k entries are increasing (spec.md §4.7.5, YI algorithm 4.4.4:
// permutations_with_ordered_k_prefix). Grounded on
// `_examples/original_source/src/permutation_diagrams.rs`'s
// `permutations_with_ordered_k_prefix`: grow the family one position at a
// time exactly the way ConstructAllPermutations grows the full group
// (`i_i = or(i_i, left_rot(i_i_minus_1, j, i))`), except that growth only
// starts past position k — so nothing is ever inserted ahead of the
// already-ordered prefix. This only holds under a LeftRotation
// interpretation (a swap would not preserve the prefix's relative order),
// which is why the reference implementation defines this method only for
// its LeftRotation factory.
func (p *PermFactory) WithOrderedKPrefix(k int) (Edge, error) {
	if p.kind != LeftRotation {
		return Edge{}, errors.Wrap(ErrMismatchedKind, "WithOrderedKPrefix requires a LeftRotation factory")
	}
	if k < 0 || k > p.n {
		logger().Panicf("polydd: WithOrderedKPrefix: k=%d out of range [0,%d]", k, p.n)
	}
	iPrev := p.True()
	for i := k + 1; i <= p.n; i++ {
		iCur := iPrev
		for j := 1; j < i; j++ {
			iCur = p.Or(iCur, p.ApplyBasis(iPrev, j, i))
		}
		iPrev = iCur
	}
	return iPrev, nil
}

// DistributeKPrefix returns the family of permutations of {1..n} obtained
// by placing the values {1..k}, in increasing order, into some k of the n
// positions, the remaining positions holding the other values in their
// original relative order, so the family has C(n,k) members
// (spec.md §4.7.5, YI algorithm 4.4.3:
// permutations_distributing_k_prefix_over_n_elements). Grounded on the
// same source file's `permutations_distributing_k_prefix_over_n_elements`:
// p[j][i] is the family that correctly distributes {1..j} somewhere among
// the first i positions, built by the recurrence
// p[j][i] = p[j][i-1] `or` left_rot(p[j-1][i-1], j, i) — inserting the j-th
// value by rotating it in from position j. Requires a LeftRotation
// factory, for the same reason as WithOrderedKPrefix.
func (p *PermFactory) DistributeKPrefix(k int) (Edge, error) {
	if p.kind != LeftRotation {
		return Edge{}, errors.Wrap(ErrMismatchedKind, "DistributeKPrefix requires a LeftRotation factory")
	}
	if k < 0 || k > p.n {
		logger().Panicf("polydd: DistributeKPrefix: k=%d out of range [0,%d]", k, p.n)
	}
	if k == 0 {
		return p.ConstructAllPermutations(), nil
	}
	n := p.n
	pPrev := make([]Edge, n)
	for i := range pPrev {
		pPrev[i] = p.True()
	}
	for j := 1; j <= k; j++ {
		pCur := make([]Edge, j, n+1)
		for i := range pCur {
			pCur[i] = p.False()
		}
		for i := j; i <= n; i++ {
			term := p.ApplyBasis(pPrev[i-1], j, i)
			pCur = append(pCur, p.Or(pCur[i-1], term))
		}
		pPrev = pCur
	}
	return pPrev[n], nil
}

// ContainingPattern returns the family of permutations of {1..n} that
// contain pattern as a classical (not necessarily contiguous) permutation
// pattern (spec.md §4.7.5: "compose(C, compose(B, A))", YI's
// permutations_containing_a_given_pattern). A is the ordered-k-prefix
// family, B is the singleton family for pattern itself (embedded in the
// n-element basis via singlePermutationOf), and C distributes the k-prefix
// over the n positions; composing them selects every way of placing an
// occurrence of pattern's relative order at some k of the n positions and
// filling the rest arbitrarily. Requires a LeftRotation factory, since A
// and C do. Built directly over the diagram — never materializes the n!
// permutations of {1..n} — which is what makes n=14 and beyond tractable
// (spec.md §8 scenario 6).
func (p *PermFactory) ContainingPattern(pattern []int) (Edge, error) {
	k := len(pattern)
	if p.n < k {
		return p.False(), nil
	}
	a, err := p.WithOrderedKPrefix(k)
	if err != nil {
		return Edge{}, err
	}
	b, err := p.singlePermutationOf(pattern)
	if err != nil {
		return Edge{}, err
	}
	c, err := p.DistributeKPrefix(k)
	if err != nil {
		return Edge{}, err
	}
	return p.Compose(c, p.Compose(b, a)), nil
}
