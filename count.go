// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

// NumberSolutions evaluates a GeneratingFunction over the diagram rooted at
// e, following the topological traversal of spec.md §4.5.2: every non-sink
// node is visited in increasing address order (guaranteed topological by
// the store's invariant 1), combining the already-computed values of its
// children. seed supplies the concrete GeneratingFunction implementation
// (e.g. ScalarCount(0)); its own value is never read, only its type.
func (f *Factory) NumberSolutions(e Edge, seed GeneratingFunction) GeneratingFunction {
	g := make([]GeneratingFunction, len(f.nodes))
	g[addrFalse] = seed.Zero()
	g[addrTrue] = seed.One()

	for a := Address(2); int(a) < len(f.nodes); a++ {
		level, lo, hi := f.node(a)
		gLo := g[lo.Addr].Multiply(lo.Mult)
		gHi := g[hi.Addr].Multiply(hi.Mult)
		if f.kind == KindBDD {
			gLo = IndeterminateRange(gLo, level+1, f.levelOf(lo.Addr))
			gHi = IndeterminateRange(gHi, level+1, f.levelOf(hi.Addr))
		}
		g[a] = gLo.VariableNotSet(level).Add(gHi.VariableSet(level))
	}

	res := g[e.Addr]
	if f.kind == KindBDD {
		res = IndeterminateRange(res, 0, f.levelOf(e.Addr))
	}
	return res.Multiply(e.Mult)
}

// rawCounts returns, for every address, the number of solutions of the node
// over the variables from its own level down to Varnum (spec.md §4.5.3:
// "a precomputed table of per-node counts"). For a BDD this includes the
// variables skipped below the node; the variables skipped above it are not
// counted, and KthSolution bridges those itself while descending so that it
// can stop partway through a skipped range.
func (f *Factory) rawCounts() []uint64 {
	counts := make([]uint64, len(f.nodes))
	counts[addrFalse] = 0
	counts[addrTrue] = 1
	for a := Address(2); int(a) < len(f.nodes); a++ {
		level, lo, hi := f.node(a)
		cLo := counts[lo.Addr] * multWeight(lo.Mult)
		cHi := counts[hi.Addr] * multWeight(hi.Mult)
		if f.kind == KindBDD {
			cLo <<= uint(f.levelOf(lo.Addr) - level - 1)
			cHi <<= uint(f.levelOf(hi.Addr) - level - 1)
		}
		counts[a] = cLo + cHi
	}
	return counts
}

func multWeight(m Multiplicity) uint64 {
	if c, ok := m.(count32); ok {
		return uint64(c)
	}
	return 1
}

// KthSolution returns the rank-k (0-based, truth-table order) solution of
// the diagram rooted at e as the sorted list of true variable indices, and
// false iff k is at least NumberSolutions(e, ScalarCount(0)) (spec.md
// §4.5.3).
func (f *Factory) KthSolution(e Edge, k uint64) ([]int, bool) {
	total, ok := f.NumberSolutions(e, ScalarCount(0)).(ScalarCount)
	if !ok || k >= uint64(total) {
		return nil, false
	}
	counts := f.rawCounts()

	var result []int
	cur := f.normalize(e)
	scale := multWeight(cur.Mult)
	upTo := int32(0)
	for {
		level := f.levelOf(cur.Addr)
		if f.kind == KindBDD {
			for v := upTo; v < level; v++ {
				half := counts[cur.Addr] * scale * (uint64(1) << uint(level-v-1))
				if k < half {
					upTo = v + 1
					continue
				}
				k -= half
				result = append(result, int(v))
				upTo = v + 1
			}
		}
		if cur.Addr == addrTrue {
			return result, true
		}
		if cur.Addr == addrFalse {
			return nil, false
		}
		_, lo, hi := f.node(cur.Addr)
		loWeight := counts[lo.Addr] * multWeight(lo.Mult) * scale
		if f.kind == KindBDD {
			loWeight <<= uint(f.levelOf(lo.Addr) - level - 1)
		}
		if k < loWeight {
			cur = lo
			scale *= multWeight(lo.Mult)
			upTo = level + 1
			continue
		}
		k -= loWeight
		result = append(result, int(level))
		cur = hi
		scale *= multWeight(hi.Mult)
		upTo = level + 1
	}
}

// minSupport computes, for every address, the minimum number of true
// variables needed to reach TRUE from it, or -1 if TRUE is unreachable
// (spec.md §4.5.4).
func (f *Factory) minSupport() []int {
	m := make([]int, len(f.nodes))
	m[addrFalse] = -1
	m[addrTrue] = 0
	for a := Address(2); int(a) < len(f.nodes); a++ {
		_, lo, hi := f.node(a)
		loMin, hiMin := m[lo.Addr], m[hi.Addr]
		best := -1
		if loMin >= 0 {
			best = loMin
		}
		if hiMin >= 0 {
			candidate := hiMin + 1
			if best < 0 || candidate < best {
				best = candidate
			}
		}
		m[a] = best
	}
	return m
}

// FindSolutionWithMinimumTrue returns a solution of e using as few true
// variables as possible, chosen by the backtracking rule of spec.md §4.5.4:
// at each node, take lo when lo_min <= hi_min+1, else hi.
func (f *Factory) FindSolutionWithMinimumTrue(e Edge) ([]int, bool) {
	m := f.minSupport()
	cur := f.normalize(e).Addr
	if cur == addrFalse || m[cur] < 0 {
		return nil, false
	}
	var result []int
	for cur >= 2 {
		level, lo, hi := f.node(cur)
		loMin, hiMin := m[lo.Addr], m[hi.Addr]
		takeLo := loMin >= 0 && (hiMin < 0 || loMin <= hiMin+1)
		if takeLo {
			cur = lo.Addr
			continue
		}
		result = append(result, int(level))
		cur = hi.Addr
	}
	return result, cur == addrTrue
}
