// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

import "github.com/pkg/errors"

// PermKind selects which group element a basis variable denotes (spec.md
// §4.7.1): a transposition (Minato's πDD) or a left rotation (Inoue's
// Rot-πDD).
type PermKind int

const (
	// Swap interprets variable (i,j) as the transposition τ(i,j).
	Swap PermKind = iota
	// LeftRotation interprets variable (i,j) as the cyclic rotation ρ(i,j).
	LeftRotation
)

// PermFactory wraps a ZDD Factory whose V = n(n-1)/2 variables enumerate
// ordered pairs (i,j), 1 <= i < j <= n, in the order of spec.md §4.7.1:
// grouped by descending j, then ascending i.
type PermFactory struct {
	*Factory
	n    int
	kind PermKind

	basisCache   *unaryMemo // keyed by a synthetic Edge{addr, count32(var+1)}
	composeCache map[composeKey]Edge
}

// NewPermFactory builds a PermFactory over permutations of {1..n}.
func NewPermFactory(n int, kind PermKind, options ...func(*configs)) (*PermFactory, error) {
	if n < 2 {
		return nil, errors.New("polydd: permutation factory needs at least 2 elements")
	}
	v := n * (n - 1) / 2
	f, err := New(v, KindZDD, options...)
	if err != nil {
		return nil, err
	}
	return &PermFactory{
		Factory:    f,
		n:          n,
		kind:       kind,
		basisCache: newUnaryMemo(f.cfg.cachesize, f.cfg.cacheratio),
	}, nil
}

// N returns the number of permuted elements.
func (p *PermFactory) N() int { return p.n }

// GC reclaims unreachable nodes exactly like the embedded Factory.GC, but
// also resets basisCache and composeCache: both are keyed on node
// addresses, and Factory.GC renumbers every surviving address, so leaving
// them populated across a GC would let ApplyBasis/Compose return an Edge
// computed against a since-renamed or no-longer-existent node.
func (p *PermFactory) GC(keep ...Edge) Renaming {
	renaming := p.Factory.GC(keep...)
	p.basisCache.reset()
	p.composeCache = nil
	return renaming
}

// varOf returns the variable index of ordered pair (i, j), 1 <= i < j <= n,
// grouped by descending j then ascending i (spec.md §4.7.1). Variables
// (i, j') with j' > j all sort before (i, j): there are
// sum_{j'=j+1}^{n} (j'-1) = (n-1+j)(n-j)/2 of them, so that term is the
// start of j's own group and i-1 offsets within it. (spec.md §4.7.1 prints
// this as "i - 1 + (n-1+n-j)(n-j)/2", which is not injective — e.g. for
// n=4 it sends both (1,3) and (3,4) to variable 2, while variable 4 is
// never produced; (n-1+j) in place of (n-1+n-j) is the grouping this
// section actually describes, and is what is implemented here.)
func (p *PermFactory) varOf(i, j int) int {
	n := p.n
	return i - 1 + (n-1+j)*(n-j)/2
}

// pairOf is the inverse of varOf: it recovers (i, j) from a variable index.
func (p *PermFactory) pairOf(v int) (i, j int) {
	n := p.n
	for jj := n; jj >= 2; jj-- {
		groupStart := (n - 1 + jj) * (n - jj) / 2
		groupSize := jj - 1
		if v < groupStart+groupSize {
			return v - groupStart + 1, jj
		}
	}
	logger().Panicf("polydd: variable %d is not a valid permutation-basis index", v)
	return 0, 0
}

// decompose maps permutation perm (perm[k] is the image of element k+1, 1
// <= k+1 <= n) to its canonical basis decomposition (spec.md §4.7.2):
// repeatedly take x, the largest non-fixed index, find p = perm^-1(x), emit
// basis pair (p, x), and continue on the permutation obtained by swapping
// the values at positions p and x (which now fixes x). perm's own length,
// not p.n, bounds the decomposition: ContainingPattern calls this on a
// pattern shorter than the full n, embedding it in the factory's basis.
func (p *PermFactory) decompose(perm []int) [][2]int {
	n := len(perm)
	work := append([]int(nil), perm...)
	var basis [][2]int
	for x := n; x >= 2; x-- {
		if work[x-1] == x {
			continue
		}
		pos := 0
		for k, val := range work {
			if val == x {
				pos = k + 1
				break
			}
		}
		lo, hi := pos, x
		if lo > hi {
			lo, hi = hi, lo
		}
		basis = append(basis, [2]int{lo, hi})
		work[pos-1], work[x-1] = work[x-1], work[pos-1]
	}
	return basis
}
