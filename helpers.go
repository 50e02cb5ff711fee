// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

// True returns the constant TRUE edge, weighted by the unit multiplicity.
func (f *Factory) True() Edge { return Edge{addrTrue, f.ms.one} }

// False returns the constant FALSE edge.
func (f *Factory) False() Edge { return Edge{addrFalse, f.ms.one} }

// From returns True() or False() depending on b.
func (f *Factory) From(b bool) Edge {
	if b {
		return f.True()
	}
	return f.False()
}

// SingleVariable returns the diagram for variable v alone: for a BDD, the
// single node (v, FALSE, TRUE); for a ZDD, the family containing exactly the
// singleton {v} (spec.md §4.4.4).
func (f *Factory) SingleVariable(v int) Edge {
	f.checkvar(v)
	return f.varHi[v]
}

func (f *Factory) checkvar(v int) {
	if v < 0 || v >= int(f.varnum) {
		logger().Panicf("polydd: variable %d out of range [0,%d)", v, f.varnum)
	}
}

// ExactlyOneOf returns the family of sets containing exactly one of the
// given variables (spec.md §4.4.4): for n variables this is the "one-hot"
// diagram, built by ExactlyNOf(vars, 1).
func (f *Factory) ExactlyOneOf(vars []int) Edge {
	return f.ExactlyNOf(vars, 1)
}

// ExactlyNOf returns the family of subsets of vars that select exactly n of
// them (spec.md §4.4.4). It is computed with the standard "choose" dynamic
// program over a decreasing suffix of vars, counting selections made so far
// with the variables themselves rather than an auxiliary counter, which
// keeps the result in the variable order of the Factory and lets structure
// be hash-consed against other combinatorial families built the same way.
func (f *Factory) ExactlyNOf(vars []int, n int) Edge {
	if n < 0 || n > len(vars) {
		return f.False()
	}
	memo := make(map[[2]int]Edge)
	var build func(i, remaining int) Edge
	build = func(i, remaining int) Edge {
		if remaining < 0 || remaining > len(vars)-i {
			return f.False()
		}
		if i == len(vars) {
			if remaining == 0 {
				return f.True()
			}
			return f.False()
		}
		key := [2]int{i, remaining}
		if e, ok := memo[key]; ok {
			return e
		}
		withVar := f.And(f.SingleVariable(vars[i]), build(i+1, remaining-1))
		withoutVar := f.And(f.Not(f.SingleVariable(vars[i])), build(i+1, remaining))
		if f.kind == KindZDD {
			// A ZDD family member either contains vars[i] (combined with the
			// rest chosen from the suffix) or does not; union the two cases
			// directly without the BDD-style complement, since ZDD Not
			// ranges over every declared variable rather than just the
			// suffix.
			withVar = f.changeWith(vars[i], build(i+1, remaining-1))
			withoutVar = build(i+1, remaining)
		}
		res := f.Or(withVar, withoutVar)
		memo[key] = res
		return res
	}
	return build(0, n)
}

// changeWith returns the family {S ∪ {v} : S ∈ e}, used by ExactlyNOf's ZDD
// branch to prepend a chosen variable to every member of a sub-family
// without needing a BDD-style complement over the suffix.
func (f *Factory) changeWith(v int, e Edge) Edge {
	if e.Addr == addrFalse {
		return e
	}
	return f.getOrInsert(int32(v), f.False(), e)
}

// PolyAnd folds And across edges, short-circuiting on FALSE.
func (f *Factory) PolyAnd(edges ...Edge) Edge {
	res := f.True()
	for _, e := range edges {
		if res.Addr == addrFalse {
			return res
		}
		res = f.And(res, e)
	}
	return res
}

// PolyOr folds Or across edges.
func (f *Factory) PolyOr(edges ...Edge) Edge {
	res := f.False()
	for _, e := range edges {
		res = f.Or(res, e)
	}
	return res
}
