// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

// ApplyBasis is the I-operation of spec.md §4.7.3: it rewrites every
// permutation encoded by e as if basis element (i, j) (a transposition or a
// left rotation, depending on the PermFactory's kind) were additionally
// applied to it. Both interpretations memoize on (node address, applied
// variable). (i, j) need not already be in canonical order: i == j is the
// identity basis element (returned unchanged) and i > j is normalized by
// swapping, matching the guard at the top of the reference `left_rot`/
// `swap` functions. The overlap cases pass their transformed pairs back
// through ApplyBasis, so the same guard applies to them.
func (p *PermFactory) ApplyBasis(e Edge, i, j int) Edge {
	if i == j {
		return e
	}
	if i > j {
		return p.ApplyBasis(e, j, i)
	}
	v := p.varOf(i, j)
	res := p.applyBasisRec(e.Addr, i, j, v)
	return p.scale(res, e.Mult)
}

func (p *PermFactory) applyBasisKey(addr Address, v int) Edge {
	return Edge{addr, count32(v + 1)}
}

func (p *PermFactory) applyBasisRec(addr Address, i, j, v int) Edge {
	if addr == addrFalse {
		return p.False()
	}
	if addr == addrTrue {
		return p.SingleVariable(v)
	}
	key := p.applyBasisKey(addr, v)
	if res, ok := p.basisCache.get(key); ok {
		return res
	}

	level, lo, hi := p.node(addr)
	x, y := p.pairOf(int(level))

	var res Edge
	if y < j {
		// No overlap: (i, j) sits strictly above this node in variable
		// order (grouped by descending j), so it is simply prepended.
		res = p.getOrInsert(int32(v), p.False(), Edge{addr, p.ms.one})
	} else if p.kind == Swap {
		res = p.applyBasisSwapOverlap(lo, hi, x, y, i, j)
	} else {
		res = p.applyBasisRotationOverlap(lo, hi, x, y, i, j)
	}

	return p.basisCache.set(key, res)
}

// applyBasisSwapOverlap handles the case where the current node's variable
// (x, y) overlaps the applied transposition (i, j) (y >= j): the lo branch
// (permutations not containing τ(x,y)) takes (i,j) unchanged. On the hi
// branch τ(x,y) is the last factor, and τ(x,y)·τ(i,j) is rewritten as
// α·τ(c,y) with c = τ(i,j)(x) and α fixing y: α is τ(i,j) conjugated by
// τ(x,y) when c == x, τ(i,j) itself when x is i or j, and the identity when
// (i,j) == (x,y). α is applied to the hi branch, then τ(c,y) on top of it
// (none when c == y).
func (p *PermFactory) applyBasisSwapOverlap(lo, hi Edge, x, y, i, j int) Edge {
	loRes := p.applyBasisRec(lo.Addr, i, j, p.varOf(i, j))
	loRes = p.scale(loRes, lo.Mult)

	ti, tj := transposeIndex(x, y, i), transposeIndex(x, y, j)
	c := transposeIndex(i, j, x)
	if c == y {
		ti, tj = i, i
	} else if c != x {
		ti, tj = i, j
	}
	hiRes := p.ApplyBasis(p.ApplyBasis(Edge{hi.Addr, p.ms.one}, ti, tj), c, y)
	hiRes = p.scale(hiRes, hi.Mult)

	return p.Or(loRes, hiRes)
}

func transposeIndex(x, y, v int) int {
	switch v {
	case x:
		return y
	case y:
		return x
	default:
		return v
	}
}

// applyBasisRotationOverlap implements the left-rotation case analysis of
// spec.md §4.7.3 (Inoue's algorithm 4.1.1): rewriting ρ(x,y)·ρ(l,r) as
// ρ(l',r')·ρ(x',y) with r' < y: the hi branch first gets ρ(l',r') applied
// (none when r == x), then ρ(x',y); a degenerate pair (a, a) is the
// identity, which ApplyBasis returns unchanged.
func (p *PermFactory) applyBasisRotationOverlap(lo, hi Edge, x, y, l, r int) Edge {
	loRes := p.applyBasisRec(lo.Addr, l, r, p.varOf(l, r))
	loRes = p.scale(loRes, lo.Mult)

	hiE := Edge{hi.Addr, p.ms.one}
	var xPrime int
	switch {
	case r < x:
		xPrime = x
		hiE = p.ApplyBasis(hiE, l, r)
	case r == x:
		xPrime = l
	case l <= x:
		xPrime = x + 1
		hiE = p.ApplyBasis(hiE, l, r-1)
	default:
		xPrime = x
		hiE = p.ApplyBasis(hiE, l-1, r-1)
	}
	hiRes := p.ApplyBasis(hiE, xPrime, y)
	hiRes = p.scale(hiRes, hi.Mult)

	return p.Or(loRes, hiRes)
}
