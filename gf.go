// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

// GeneratingFunction is the pluggable counting/enumeration protocol of
// spec.md §4.5.1: a commutative monoid (Zero, Add) with a multiplicative
// unit (One) and hooks describing the effect of committing a variable.
// NumberSolutions (count.go) is generic over this interface; ScalarCount,
// RankVector and SplitByMultiplicity are its three canonical
// implementations.
type GeneratingFunction interface {
	Zero() GeneratingFunction
	One() GeneratingFunction
	Add(other GeneratingFunction) GeneratingFunction

	// VariableSet is the effect of committing variable v as true.
	VariableSet(v int32) GeneratingFunction
	// VariableNotSet is the effect of committing variable v as false; every
	// implementation here makes it a no-op, which is correct whenever the
	// generating function does not care which variables are false, only
	// which are true.
	VariableNotSet(v int32) GeneratingFunction
	// Multiply scales by a multiplicity (spec.md "with multiplicities:
	// multiply(m) -> G").
	Multiply(m Multiplicity) GeneratingFunction
}

// Indeterminate returns VariableSet(v) + VariableNotSet(v), the generating
// function for "variable v may be either true or false".
func Indeterminate(g GeneratingFunction, v int32) GeneratingFunction {
	return g.VariableSet(v).Add(g.VariableNotSet(v))
}

// IndeterminateRange folds Indeterminate over the descending range
// [lo, hi), used to "bridge" a BDD generating function across variables
// skipped on a path (spec.md §4.5.2).
func IndeterminateRange(g GeneratingFunction, lo, hi int32) GeneratingFunction {
	res := g
	for v := hi - 1; v >= lo; v-- {
		res = Indeterminate(res, v)
	}
	return res
}

// ScalarCount is the plain model-counting generating function: One = 1,
// Add = +, VariableSet is a no-op (spec.md §4.5.1 item 1). It saturates
// rather than overflows, since a 64-bit count is already astronomically
// larger than any diagram this library is expected to build in practice.
type ScalarCount uint64

func (c ScalarCount) Zero() GeneratingFunction { return ScalarCount(0) }
func (c ScalarCount) One() GeneratingFunction  { return ScalarCount(1) }
func (c ScalarCount) Add(other GeneratingFunction) GeneratingFunction {
	o := other.(ScalarCount)
	sum := uint64(c) + uint64(o)
	if sum < uint64(c) {
		return ScalarCount(^uint64(0))
	}
	return ScalarCount(sum)
}
func (c ScalarCount) VariableSet(int32) GeneratingFunction    { return c }
func (c ScalarCount) VariableNotSet(int32) GeneratingFunction { return c }
func (c ScalarCount) Multiply(m Multiplicity) GeneratingFunction {
	switch v := m.(type) {
	case count32:
		if v != 0 && uint64(c) > ^uint64(0)/uint64(v) {
			return ScalarCount(^uint64(0))
		}
		return ScalarCount(uint64(c) * uint64(v))
	default:
		return c
	}
}

// RankVector implements the "per-rank vector" generating function of
// spec.md §4.5.1 item 2: RankVector[i] is the number of solutions with
// exactly i true variables. VariableSet shifts the vector right by one
// (every solution counted there now has one more true variable); Add is
// elementwise, extending the shorter vector with zeros.
type RankVector []uint64

func (r RankVector) Zero() GeneratingFunction { return RankVector(nil) }
func (r RankVector) One() GeneratingFunction  { return RankVector{1} }

func (r RankVector) Add(other GeneratingFunction) GeneratingFunction {
	o := other.(RankVector)
	n := len(r)
	if len(o) > n {
		n = len(o)
	}
	res := make(RankVector, n)
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(r) {
			a = r[i]
		}
		if i < len(o) {
			b = o[i]
		}
		res[i] = a + b
	}
	return res
}

func (r RankVector) VariableSet(int32) GeneratingFunction {
	shifted := make(RankVector, len(r)+1)
	copy(shifted[1:], r)
	return shifted
}

func (r RankVector) VariableNotSet(int32) GeneratingFunction { return r }

func (r RankVector) Multiply(m Multiplicity) GeneratingFunction {
	c, ok := m.(count32)
	if !ok || uint32(c) == 1 {
		return r
	}
	res := make(RankVector, len(r))
	for i, v := range r {
		res[i] = v * uint64(c)
	}
	return res
}

// SplitByMultiplicity implements spec.md §4.5.1 item 3: SplitByMultiplicity[i]
// is the count of elements carrying multiplicity i+1. Multiply(k) "stretches"
// the vector by inserting k-1 zeros before each existing element, modeling
// that every element previously at multiplicity m now sits at multiplicity
// m*k.
type SplitByMultiplicity []uint64

func (s SplitByMultiplicity) Zero() GeneratingFunction { return SplitByMultiplicity(nil) }
func (s SplitByMultiplicity) One() GeneratingFunction  { return SplitByMultiplicity{1} }

func (s SplitByMultiplicity) Add(other GeneratingFunction) GeneratingFunction {
	o := other.(SplitByMultiplicity)
	n := len(s)
	if len(o) > n {
		n = len(o)
	}
	res := make(SplitByMultiplicity, n)
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(s) {
			a = s[i]
		}
		if i < len(o) {
			b = o[i]
		}
		res[i] = a + b
	}
	return res
}

func (s SplitByMultiplicity) VariableSet(int32) GeneratingFunction    { return s }
func (s SplitByMultiplicity) VariableNotSet(int32) GeneratingFunction { return s }

func (s SplitByMultiplicity) Multiply(m Multiplicity) GeneratingFunction {
	c, ok := m.(count32)
	if !ok {
		return s
	}
	k := int(uint32(c))
	if k <= 1 {
		return s
	}
	res := make(SplitByMultiplicity, len(s)*k)
	for i, v := range s {
		res[i*k+k-1] = v
	}
	return res
}
