// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

// Multiplicity is a value from a commutative monoid used to weight edges so
// that a diagram can represent a multiset instead of a plain set. It is
// implemented by NoMultiplicity (the trivial unit monoid, for ordinary
// BDD/ZDD sets) and Uint32Multiplicity (unsigned-integer weights, for
// multisets).
//
// Implementations must be comparable with ==, since edges are used as map
// keys in the unicity table.
type Multiplicity interface {
	// combineOr is the associative (commutative, by convention) "sum" used
	// when unioning two edges, e.g. Or/sum.
	combineOr(other Multiplicity) Multiplicity

	// times is the "product" used when intersecting two edges, e.g. And/product.
	times(other Multiplicity) Multiplicity

	// isUnity reports whether this value is the multiplicative/additive unit
	// (ONE), i.e. this edge contributes no weight of its own.
	isUnity() bool
}

// MultiplicityKind selects which monoid edges are weighted with. It is a
// factory-construction parameter (spec.md §3 "Multiplicity").
type MultiplicityKind int

const (
	// NoMultiplicity is the trivial unit monoid: all diagrams represent
	// plain sets and MULTIPLICITIES_IRRELEVANT is true.
	NoMultiplicity MultiplicityKind = iota
	// Uint32Multiplicity weights edges with 32-bit unsigned integers, combined
	// with + for union and × for intersection; SYMMETRIC_OR holds since + is
	// commutative.
	Uint32Multiplicity
)

// multiplicitySystem bundles the operations of §4.3 for a given
// MultiplicityKind: the unit ONE, the capability flags, and the normalizing
// gcd used exclusively inside Factory.getOrInsert.
type multiplicitySystem struct {
	kind                  MultiplicityKind
	one                   Multiplicity
	multiplicitiesIrrelevant bool
	symmetricOr           bool
	// gcd returns (a/g, b/g, g) such that g = gcd(a, b) and the common
	// factor has been normalized out of both inputs. It must return g =
	// ONE, a, b unchanged whenever multiplicities are irrelevant.
	gcd func(a, b Multiplicity) (Multiplicity, Multiplicity, Multiplicity)
}

func newMultiplicitySystem(kind MultiplicityKind) multiplicitySystem {
	switch kind {
	case Uint32Multiplicity:
		return multiplicitySystem{
			kind:                     Uint32Multiplicity,
			one:                      count32(1),
			multiplicitiesIrrelevant: false,
			symmetricOr:              true,
			gcd:                      gcdCount32,
		}
	default:
		return multiplicitySystem{
			kind:                     NoMultiplicity,
			one:                      unit{},
			multiplicitiesIrrelevant: true,
			symmetricOr:              true,
			gcd: func(a, b Multiplicity) (Multiplicity, Multiplicity, Multiplicity) {
				return unit{}, unit{}, unit{}
			},
		}
	}
}

// unit is the single inhabitant of the trivial multiplicity monoid.
type unit struct{}

func (unit) combineOr(Multiplicity) Multiplicity { return unit{} }
func (unit) times(Multiplicity) Multiplicity     { return unit{} }
func (unit) isUnity() bool                       { return true }

// count32 is an unsigned-integer multiplicity. The zero value is never
// stored on a live edge (edges with multiplicity zero are equivalent to the
// FALSE sink and are reduced away), but the type permits it to keep the
// arithmetic total.
type count32 uint32

func (c count32) combineOr(other Multiplicity) Multiplicity {
	return c + other.(count32)
}

func (c count32) times(other Multiplicity) Multiplicity {
	result := uint64(c) * uint64(other.(count32))
	if result > uint64(^uint32(0)) {
		logger().WithField("component", "multiplicity").Panic("count32 multiply overflow")
	}
	return count32(result)
}

func (c count32) isUnity() bool {
	return c == 1
}

func gcdCount32(a, b Multiplicity) (Multiplicity, Multiplicity, Multiplicity) {
	av, bv := uint32(a.(count32)), uint32(b.(count32))
	g := euclidGCD(av, bv)
	if g == 0 {
		return a, b, count32(1)
	}
	return count32(av / g), count32(bv / g), count32(g)
}

func euclidGCD(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
