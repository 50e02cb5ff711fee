// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

import "fmt"

// Edge is a pair (address, multiplicity), the handle callers and internal
// recursions pass around. Edges to the FALSE sink always carry the canonical
// ONE multiplicity, which Factory.normalize enforces (spec.md §3 invariant 4,
// "the FALSE child contributes no constraint"); edges to the TRUE sink may
// carry any multiplicity.
type Edge struct {
	Addr Address
	Mult Multiplicity
}

// nodeKey is the hash-cons key for the unicity table: the canonical
// (variable, lo, hi) triple of a stored node (spec.md §3 invariant 3).
type nodeKey struct {
	level int32
	lo    Edge
	hi    Edge
}

// storedNode is a single entry of the node store.
type storedNode struct {
	level  int32
	lo     Edge
	hi     Edge
	refcou int32 // external reference count, pins the node against GC
}

// Factory owns a single shared node store together with its hash-cons
// index, Apply memo tables, and configuration. All diagrams built from one
// Factory share structure; edges from one Factory are meaningless against
// another.
type Factory struct {
	kind     Kind
	ms       multiplicitySystem
	varnum   int32
	nodes    []storedNode // index 0 and 1 are placeholders, never dereferenced
	unique   map[nodeKey]Address
	produced int
	refstack []Address // addresses pinned during an in-flight recursive Apply
	err      error
	cfg      configs
	metrics  *metrics

	varLo []Edge // varLo[v] is the FALSE edge returned by buildVariableChain(v)
	varHi []Edge // varHi[v] = SingleVariable(v)

	andCache *pairMemo
	orCache  *pairMemo
	notCache *unaryMemo

	gcHistory []gcPoint
}

type gcPoint struct {
	nodes     int
	freenodes int
}

// New returns a new Factory of the given Kind with varnum variables, indexed
// [0..varnum). The number of variables is fixed for the lifetime of the
// Factory (spec.md §3, "A fixed integer V is declared at factory
// construction"; dynamic re-sifting and variable reordering are explicit
// Non-goals).
func New(varnum int, kind Kind, options ...func(*configs)) (*Factory, error) {
	if varnum < 1 || varnum > int(_MAXVAR) {
		return nil, fmt.Errorf("polydd: bad number of variables (%d)", varnum)
	}
	cfg := makeconfigs(varnum, kind)
	for _, opt := range options {
		opt(cfg)
	}
	f := &Factory{
		kind:   kind,
		ms:     newMultiplicitySystem(cfg.multiplicity),
		varnum: int32(varnum),
		cfg:    *cfg,
	}
	f.nodes = make([]storedNode, 2, cfg.nodesize)
	f.unique = make(map[nodeKey]Address, cfg.nodesize)
	f.metrics = cfg.metrics
	f.andCache = newPairMemo(cfg.cachesize, cfg.cacheratio)
	f.orCache = newPairMemo(cfg.cachesize, cfg.cacheratio)
	f.notCache = newUnaryMemo(cfg.cachesize, cfg.cacheratio)

	f.varLo = make([]Edge, varnum)
	f.varHi = make([]Edge, varnum)
	for v := varnum - 1; v >= 0; v-- {
		lo, hi := f.buildVariableChain(int32(v))
		f.varLo[v] = lo
		f.varHi[v] = hi
		f.pin(lo.Addr)
		f.pin(hi.Addr)
	}
	logger().WithFields(map[string]interface{}{
		"kind": kind.String(), "varnum": varnum,
	}).Debug("created factory")
	return f, nil
}

// buildVariableChain constructs the edges behind SingleVariable(v): hi is the
// BDD single node (v, F, T), or the ZDD singleton family {v}, in which every
// other variable is forced false; lo is the FALSE edge for both kinds.
func (f *Factory) buildVariableChain(v int32) (lo, hi Edge) {
	trueEdge := Edge{addrTrue, f.ms.one}
	falseEdge := Edge{addrFalse, f.ms.one}
	if f.kind == KindBDD {
		hiE := f.getOrInsert(v, falseEdge, trueEdge)
		return falseEdge, hiE
	}
	// ZDD: a variable absent from the path is already forced false, so each
	// (lvl, tail, FALSE) node below reduces away (reduction 6) and the tail
	// stays TRUE; the singleton {v} is then the single node (v, FALSE, TRUE).
	tail := trueEdge
	for lvl := f.varnum - 1; lvl > v; lvl-- {
		tail = f.getOrInsert(lvl, tail, falseEdge)
	}
	hiE := f.getOrInsert(v, falseEdge, tail)
	lo := falseEdge
	return lo, hiE
}

func (f *Factory) pin(a Address) {
	if a < 2 {
		return
	}
	if f.nodes[a].refcou < _MAXREFCOUNT {
		f.nodes[a].refcou++
	}
}

// Kind returns the diagram semantics (BDD or ZDD) this factory was created
// with.
func (f *Factory) Kind() Kind { return f.kind }

// Varnum returns the number of declared variables.
func (f *Factory) Varnum() int { return int(f.varnum) }

// Len returns the number of live, non-sink nodes currently in the store.
func (f *Factory) Len() int { return len(f.nodes) - 2 }

// node returns the (variable, lo, hi) triple stored at address a. It panics
// if a denotes a sink or an out-of-range address (spec.md §4.1: "panics on
// sink or out-of-range").
func (f *Factory) node(a Address) (level int32, lo, hi Edge) {
	if a < 2 || int(a) >= len(f.nodes) {
		logger().Panicf("polydd: node(%d) is a sink or out of range", a)
	}
	n := f.nodes[a]
	return n.level, n.lo, n.hi
}

// find looks up the canonicalized (level, lo, hi) triple in the unicity
// table.
func (f *Factory) find(level int32, lo, hi Edge) (Address, bool) {
	a, ok := f.unique[nodeKey{level, lo, hi}]
	return a, ok
}

// insert appends a new node, assumed not already present in the unicity
// table.
func (f *Factory) insert(level int32, lo, hi Edge) Address {
	if len(f.nodes) == cap(f.nodes) {
		f.growNodes()
	}
	a := Address(len(f.nodes))
	f.nodes = append(f.nodes, storedNode{level: level, lo: lo, hi: hi})
	f.unique[nodeKey{level, lo, hi}] = a
	f.produced++
	if f.metrics != nil {
		f.metrics.recordNodes(f.Len())
	}
	return a
}

func (f *Factory) growNodes() {
	oldcap := cap(f.nodes)
	newcap := oldcap * 2
	if f.cfg.maxnodeincrease > 0 && newcap > oldcap+f.cfg.maxnodeincrease {
		newcap = oldcap + f.cfg.maxnodeincrease
	}
	if f.cfg.maxnodesize > 0 && newcap > f.cfg.maxnodesize {
		newcap = f.cfg.maxnodesize
	}
	if newcap <= oldcap {
		logger().Panic("polydd: node store exhausted (Maxnodesize reached)")
	}
	grown := make([]storedNode, len(f.nodes), newcap)
	copy(grown, f.nodes)
	f.nodes = grown
	logger().WithField("newcap", newcap).Debug("resized node store")
}

// normalize forces every edge pointing at the FALSE sink to carry the
// canonical ONE multiplicity: the FALSE child of a node contributes no
// constraint to gcd-normalization (spec.md §3 invariant 4), since there are
// no elements on that branch to weight.
func (f *Factory) normalize(e Edge) Edge {
	if e.Addr == addrFalse {
		return Edge{addrFalse, f.ms.one}
	}
	return e
}

// scale multiplies the weight of edge e by m (spec.md §3, "multiply(edge,
// m) scales the multiplicity").
func (f *Factory) scale(e Edge, m Multiplicity) Edge {
	e = f.normalize(e)
	if e.Addr == addrFalse {
		return e
	}
	if m.isUnity() {
		return e
	}
	return Edge{e.Addr, e.Mult.times(m)}
}

// getOrInsert applies the §3 reductions (4, 5, 6) and returns the edge that
// represents node (level, lo, hi): either an existing edge when a reduction
// fires, or a fresh (or hash-consed) node's edge with the gcd-normalized
// common multiplicity factor folded in.
func (f *Factory) getOrInsert(level int32, lo, hi Edge) Edge {
	lo = f.normalize(lo)
	hi = f.normalize(hi)

	// Reduction 5 (BDD): identical low/high branch, in address AND
	// multiplicity, means the variable is irrelevant.
	if f.kind == KindBDD && lo.Addr == hi.Addr && lo.Mult == hi.Mult {
		return lo
	}
	// Reduction 6 (ZDD): hi forced false means the variable can never be
	// selected, so the node is skipped entirely.
	if f.kind == KindZDD && hi.Addr == addrFalse {
		return lo
	}

	loN, hiN, g := f.ms.gcd(lo.Mult, hi.Mult)
	lo = Edge{lo.Addr, loN}
	hi = Edge{hi.Addr, hiN}

	if a, ok := f.find(level, lo, hi); ok {
		return Edge{a, g}
	}
	a := f.insert(level, lo, hi)
	return Edge{a, g}
}

// GC reclaims every node not reachable from keep (and not currently pinned
// on the in-flight refstack), following spec.md §4.6: mark, compact by
// walking addresses in increasing order, rewrite children through the
// renaming, then truncate. All Apply/Not memo tables are cleared, which is
// mandatory since they hold now-dangling edge-to-edge mappings.
func (f *Factory) GC(keep ...Edge) Renaming {
	marked := make([]bool, len(f.nodes))
	var mark func(a Address)
	mark = func(a Address) {
		if a < 2 || int(a) >= len(marked) || marked[a] {
			return
		}
		marked[a] = true
		n := f.nodes[a]
		mark(n.lo.Addr)
		mark(n.hi.Addr)
	}
	for _, e := range keep {
		mark(e.Addr)
	}
	for _, a := range f.refstack {
		mark(a)
	}
	for a := 2; a < len(f.nodes); a++ {
		if f.nodes[a].refcou > 0 {
			mark(Address(a))
		}
	}

	f.gcHistory = append(f.gcHistory, gcPoint{nodes: len(f.nodes), freenodes: len(f.nodes) - f.countMarked(marked)})

	renaming := make(map[Address]Address, len(f.nodes))
	newNodes := make([]storedNode, 2, cap(f.nodes))
	newUnique := make(map[nodeKey]Address, len(f.unique))
	for a := 2; a < len(f.nodes); a++ {
		if !marked[a] {
			continue
		}
		old := f.nodes[a]
		newLo := Edge{rewriteAddr(old.lo.Addr, renaming), old.lo.Mult}
		newHi := Edge{rewriteAddr(old.hi.Addr, renaming), old.hi.Mult}
		na := Address(len(newNodes))
		renaming[Address(a)] = na
		newNodes = append(newNodes, storedNode{level: old.level, lo: newLo, hi: newHi, refcou: old.refcou})
		newUnique[nodeKey{old.level, newLo, newHi}] = na
	}
	f.nodes = newNodes
	f.unique = newUnique

	f.andCache.reset()
	f.orCache.reset()
	f.notCache.reset()
	if f.metrics != nil {
		f.metrics.recordGC()
		f.metrics.recordNodes(f.Len())
	}
	logger().WithField("kept", len(newNodes)-2).Debug("garbage collected")
	return Renaming{table: renaming}
}

func (f *Factory) countMarked(marked []bool) int {
	n := 0
	for _, m := range marked {
		if m {
			n++
		}
	}
	return n
}

func rewriteAddr(a Address, renaming map[Address]Address) Address {
	if a < 2 {
		return a
	}
	na, ok := renaming[a]
	if !ok {
		logger().Panicf("polydd: GC renaming missing address %d reachable from a kept node", a)
	}
	return na
}

// Renaming maps edges valid before a GC call to their equivalent after it.
// Outstanding edges not derived from the GC's keep set become invalid; any
// attempt to use them without going through Rename is a contract violation
// (spec.md §5).
type Renaming struct {
	table map[Address]Address
}

// Rename returns the edge e maps to after the GC call that produced r, and
// false if e's address was discarded (not reachable from keep).
func (r Renaming) Rename(e Edge) (Edge, bool) {
	if e.Addr == addrFalse || e.Addr == addrTrue {
		return e, true
	}
	na, ok := r.table[e.Addr]
	if !ok {
		return Edge{}, false
	}
	return Edge{na, e.Mult}, true
}

// pushref/popref protect nodes currently being built (e.g. transient
// results of a recursive Apply) from being reclaimed by a GC triggered
// mid-recursion.
func (f *Factory) pushref(a Address) Address {
	f.refstack = append(f.refstack, a)
	return a
}

func (f *Factory) popref(n int) {
	f.refstack = f.refstack[:len(f.refstack)-n]
}

func (f *Factory) initref() {
	f.refstack = f.refstack[:0]
}
