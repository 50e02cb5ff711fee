// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

// Kind selects which reduction rule (spec.md §3, invariants 5/6) a Factory
// applies when inserting nodes: BDD semantics treat a variable missing from
// a path as unconstrained, ZDD semantics force it to false.
type Kind int

const (
	// KindBDD builds Reduced Ordered Binary Decision Diagrams.
	KindBDD Kind = iota
	// KindZDD builds Zero-suppressed Decision Diagrams.
	KindZDD
)

func (k Kind) String() string {
	if k == KindZDD {
		return "ZDD"
	}
	return "BDD"
}

// configs stores the configurable parameters of a Factory, following the
// teacher library's functional-options pattern (New takes ...func(*configs)).
type configs struct {
	varnum          int
	kind            Kind
	multiplicity    MultiplicityKind
	nodesize        int
	cachesize       int
	cacheratio      int
	maxnodesize     int
	maxnodeincrease int
	minfreenodes    int
	metrics         *metrics
}

func makeconfigs(varnum int, kind Kind) *configs {
	c := &configs{
		varnum:       varnum,
		kind:         kind,
		multiplicity: NoMultiplicity,
	}
	c.minfreenodes = _MINFREENODES
	c.maxnodeincrease = _DEFAULTMAXNODEINC
	// enough nodes for the two sinks plus the variable chain used by single
	// variable helpers
	c.nodesize = 2*varnum + 2
	c.cachesize = 10000
	return c
}

// WithMultiplicity is a configuration option selecting the multiplicity
// monoid used to weight edges (spec.md §3 "Multiplicity"). The default,
// when omitted, is NoMultiplicity.
func WithMultiplicity(kind MultiplicityKind) func(*configs) {
	return func(c *configs) {
		c.multiplicity = kind
	}
}

// Nodesize sets a preferred initial size for the node table. The table
// grows automatically when it is full on insertion, but a good initial
// estimate reduces the number of resizes.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Maxnodesize caps the total number of nodes the Factory may allocate. The
// default (0) means no limit, in which case allocation can panic if memory
// is exhausted.
func Maxnodesize(size int) func(*configs) {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// Maxnodeincrease bounds how many nodes can be added to the table in a
// single resize. Set to zero to remove the limit.
func Maxnodeincrease(size int) func(*configs) {
	return func(c *configs) {
		c.maxnodeincrease = size
	}
}

// Minfreenodes records a percentage of free nodes to keep after a garbage
// collection. The value is stored but not read by the Factory: the node
// table grows only when it is full on insertion.
func Minfreenodes(ratio int) func(*configs) {
	return func(c *configs) {
		c.minfreenodes = ratio
	}
}

// Cachesize sets the initial number of entries in the Apply/Not memo
// tables.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		c.cachesize = size
	}
}

// Cacheratio records a percentage for growing the memo tables with the node
// table. The value is stored but not read by the Factory: the memo tables
// are maps that grow as entries are added.
func Cacheratio(ratio int) func(*configs) {
	return func(c *configs) {
		c.cacheratio = ratio
	}
}
