// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

// pairMemo and unaryMemo are the per-operator memo tables of the Apply
// engine (spec.md §4.4: "Each operator holds its own memo table ... a
// single combined cache would be incorrect because sum and product can
// collide on the same edge pair"). The teacher library backs these with a
// fixed-size open-addressed array; here we use a plain Go map, which keeps
// the same per-operator-cache, cleared-on-GC contract without the
// collision-chain bookkeeping, trading a little memory locality for
// correctness we cannot verify by running the code.
type pairKey struct {
	left  Edge
	right Edge
}

type pairMemo struct {
	table     map[pairKey]Edge
	ratio     int
	hit, miss int
}

func newPairMemo(size, ratio int) *pairMemo {
	return &pairMemo{table: make(map[pairKey]Edge, primeGte(size)), ratio: ratio}
}

func (c *pairMemo) get(left, right Edge) (Edge, bool) {
	res, ok := c.table[pairKey{left, right}]
	if _DEBUG {
		if ok {
			c.hit++
		} else {
			c.miss++
		}
	}
	return res, ok
}

func (c *pairMemo) set(left, right, res Edge) Edge {
	c.table[pairKey{left, right}] = res
	return res
}

func (c *pairMemo) reset() {
	c.table = make(map[pairKey]Edge, len(c.table))
}

type unaryMemo struct {
	table     map[Edge]Edge
	ratio     int
	hit, miss int
}

func newUnaryMemo(size, ratio int) *unaryMemo {
	return &unaryMemo{table: make(map[Edge]Edge, primeGte(size)), ratio: ratio}
}

func (c *unaryMemo) get(n Edge) (Edge, bool) {
	res, ok := c.table[n]
	if _DEBUG {
		if ok {
			c.hit++
		} else {
			c.miss++
		}
	}
	return res, ok
}

func (c *unaryMemo) set(n, res Edge) Edge {
	c.table[n] = res
	return res
}

func (c *unaryMemo) reset() {
	c.table = make(map[Edge]Edge, len(c.table))
}

// symmetricKey canonicalizes a pair of edges for a symmetric operator with
// irrelevant multiplicities by sorting on address, so that sum(f, g) and
// sum(g, f) share one memo entry (spec.md §4.4, "For symmetric, unit-
// multiplicity ops, the key is the unordered pair"). apply canonicalizes And
// always and Or whenever the multiplicity system's sum is symmetric, which
// holds for both systems in this package. canonicalize=false keeps the
// ordered pair, for a sum where sum(TRUE, x) must be distinguished from
// sum(x, TRUE) when multiplicities need broadcasting.
func symmetricKey(left, right Edge, canonicalize bool) (Edge, Edge) {
	if canonicalize && left.Addr > right.Addr {
		return right, left
	}
	return left, right
}
