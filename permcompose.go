// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

// composeKey memoizes Compose on the pair of root addresses, with P
// normalized to its bare address (spec.md §4.7.4: "Memoized on (P, Q)"); the
// edge multiplicities of both operands are folded back in once, after the
// cached/fresh unit-multiplicity result is known.
type composeKey struct {
	p, q Address
}

// Compose returns {p·q | p ∈ P, q ∈ Q}, recursing structurally on Q: at a
// sink, P is either returned unchanged (Q = identity) or the empty family
// (Q = FALSE); at an interior node (var, loQ, hiQ), the lo branch composes
// directly and the hi branch additionally has that node's basis pair
// applied through ApplyBasis.
func (p *PermFactory) Compose(P, Q Edge) Edge {
	if p.composeCache == nil {
		p.composeCache = make(map[composeKey]Edge)
	}
	unitP := Edge{P.Addr, p.ms.one}
	res := p.compose(unitP, Q)
	return p.scale(res, P.Mult)
}

// compose assumes P carries the unit multiplicity; Q's own multiplicity is
// folded in as the recursion descends.
func (p *PermFactory) compose(P, Q Edge) Edge {
	if Q.Addr == addrFalse {
		return p.False()
	}
	if Q.Addr == addrTrue {
		return p.scale(P, Q.Mult)
	}
	key := composeKey{P.Addr, Q.Addr}
	if res, ok := p.composeCache[key]; ok {
		return p.scale(res, Q.Mult)
	}

	level, loQ, hiQ := p.node(Q.Addr)
	i, j := p.pairOf(int(level))

	loRes := p.compose(P, Edge{loQ.Addr, p.ms.one})
	loRes = p.scale(loRes, loQ.Mult)
	hiRes := p.ApplyBasis(p.compose(P, Edge{hiQ.Addr, p.ms.one}), i, j)
	hiRes = p.scale(hiRes, hiQ.Mult)
	res := p.Or(loRes, hiRes)

	p.composeCache[key] = res
	return p.scale(res, Q.Mult)
}
