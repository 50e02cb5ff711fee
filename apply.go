// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

// applyOp selects which of the two binary operators a recursive apply call
// is computing; spec.md §4.4 names them product/and and sum/or.
type applyOp int

const (
	opAnd applyOp = iota
	opOr
)

// levelOf returns the level of the node at address a, treating a sink as
// sitting one level below the last declared variable so that the generic
// cofactor rule (below) naturally reproduces the "TRUE/FALSE broadcast
// against the other operand's root variable" behavior described in
// spec.md §4.4.2, without a separate special case.
func (f *Factory) levelOf(a Address) int32 {
	if a < 2 {
		return f.varnum
	}
	return f.nodes[a].level
}

// cofactor restricts edge e to variable v, which is assumed to be the
// minimum of the two operands' root variables in the calling Apply
// recursion (spec.md §4.4.1 step 3). When e's own variable is strictly
// above v it is unconstrained on v; BDD and ZDD disagree on what that means:
// a BDD cofactor is just e on both branches, a ZDD cofactor forces the hi
// (v=true) branch to FALSE, since an absent ZDD variable is forced false.
func (f *Factory) cofactor(e Edge, v int32) (lo, hi Edge) {
	if f.levelOf(e.Addr) == v {
		_, lo0, hi0 := f.node(e.Addr)
		// Fold e's own edge multiplicity into both cofactors so the
		// recursive product/sum sees the full weight; the gcd
		// normalization in getOrInsert re-extracts any common factor.
		return f.scale(lo0, e.Mult), f.scale(hi0, e.Mult)
	}
	if f.kind == KindBDD {
		return e, e
	}
	return e, Edge{addrFalse, f.ms.one}
}

// And returns the conjunction of a and b: for a BDD, logical and; for a
// ZDD, family intersection. Edge multiplicities combine by times (spec.md
// §4.4 table).
func (f *Factory) And(a, b Edge) Edge {
	f.initref()
	f.pushref(a.Addr)
	f.pushref(b.Addr)
	res := f.apply(opAnd, a, b)
	f.popref(2)
	return res
}

// Or returns the disjunction of a and b: for a BDD, logical or; for a ZDD,
// family union as a multiset (edge multiplicities combine by combineOr).
func (f *Factory) Or(a, b Edge) Edge {
	f.initref()
	f.pushref(a.Addr)
	f.pushref(b.Addr)
	res := f.apply(opOr, a, b)
	f.popref(2)
	return res
}

func (f *Factory) apply(op applyOp, a, b Edge) Edge {
	a = f.normalize(a)
	b = f.normalize(b)

	switch op {
	case opAnd:
		if a.Addr == addrFalse || b.Addr == addrFalse {
			return Edge{addrFalse, f.ms.one}
		}
		if a.Addr == addrTrue && b.Addr == addrTrue {
			return Edge{addrTrue, a.Mult.times(b.Mult)}
		}
	case opOr:
		if a.Addr == addrTrue && b.Addr == addrTrue {
			return Edge{addrTrue, a.Mult.combineOr(b.Mult)}
		}
		if a.Addr == addrFalse {
			return b
		}
		if b.Addr == addrFalse {
			return a
		}
	}

	left, right := a, b
	canon := op == opAnd || f.ms.symmetricOr
	if canon {
		left, right = symmetricKey(a, b, true)
	}
	cache := f.andCache
	if op == opOr {
		cache = f.orCache
	}
	if res, ok := cache.get(left, right); ok {
		if f.metrics != nil {
			f.metrics.recordCache(true)
		}
		return res
	}
	if f.metrics != nil {
		f.metrics.recordCache(false)
	}

	v := f.levelOf(a.Addr)
	if w := f.levelOf(b.Addr); w < v {
		v = w
	}
	aLo, aHi := f.cofactor(a, v)
	bLo, bHi := f.cofactor(b, v)

	loRes := f.apply(op, aLo, bLo)
	f.pushref(loRes.Addr)
	hiRes := f.apply(op, aHi, bHi)
	f.pushref(hiRes.Addr)
	res := f.getOrInsert(v, loRes, hiRes)
	f.popref(2)

	return cache.set(left, right, res)
}

// Not returns the negation of e. For a BDD this swaps the sinks
// recursively; for a ZDD it complements with respect to every assignment
// over [0, Varnum) (spec.md §4.4.3), and the result multiplicities are
// reset to ONE regardless of e's own multiplicities.
func (f *Factory) Not(e Edge) Edge {
	f.initref()
	f.pushref(e.Addr)
	var res Edge
	if f.kind == KindBDD {
		res = f.notBDD(e.Addr)
	} else {
		res = f.notZDD(0, e.Addr)
	}
	f.popref(1)
	return res
}

func (f *Factory) notBDD(a Address) Edge {
	if a == addrFalse {
		return Edge{addrTrue, f.ms.one}
	}
	if a == addrTrue {
		return Edge{addrFalse, f.ms.one}
	}
	if res, ok := f.notCache.get(Edge{a, f.ms.one}); ok {
		return res
	}
	level, lo, hi := f.node(a)
	loRes := f.notBDD(lo.Addr)
	f.pushref(loRes.Addr)
	hiRes := f.notBDD(hi.Addr)
	f.pushref(hiRes.Addr)
	res := f.getOrInsert(level, loRes, hiRes)
	f.popref(2)
	return f.notCache.set(Edge{a, f.ms.one}, res)
}

// notZDD complements the family rooted at a with respect to all
// assignments of variables [upto, Varnum); it materializes the "don't
// care" chains for any variable skipped along a branch (spec.md §9: "ZDD
// NOT implicitly materializes don't care chains; cache on (address,
// upto_variable)").
func (f *Factory) notZDD(upto int32, a Address) Edge {
	if upto == f.varnum {
		if a == addrFalse {
			return Edge{addrTrue, f.ms.one}
		}
		return Edge{addrFalse, f.ms.one}
	}
	// count32(upto+1) is used only as an opaque per-level cache tag here,
	// independent of which multiplicity system the factory was built with.
	key := Edge{a, count32(upto + 1)}
	if res, ok := f.notCache.get(key); ok {
		return res
	}
	var lo, hi Edge
	if f.levelOf(a) == upto {
		_, lo0, hi0 := f.node(a)
		lo, hi = lo0, hi0
	} else {
		lo, hi = Edge{a, f.ms.one}, Edge{addrFalse, f.ms.one}
	}
	loRes := f.notZDD(upto+1, lo.Addr)
	f.pushref(loRes.Addr)
	hiRes := f.notZDD(upto+1, hi.Addr)
	f.pushref(hiRes.Addr)
	res := f.getOrInsert(upto, loRes, hiRes)
	f.popref(2)
	return f.notCache.set(key, res)
}
