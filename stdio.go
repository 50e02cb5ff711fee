// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

import (
	"fmt"
	"io"
)

// Stats summarizes the current state of a Factory, mirroring the teacher
// library's debug-only housekeeping report.
type Stats struct {
	Kind        Kind
	Varnum      int
	Nodes       int
	Produced    int
	GCRuns      int
	AndCacheHit, AndCacheMiss int
	OrCacheHit, OrCacheMiss   int
	NotCacheHit, NotCacheMiss int
}

// Stats returns a snapshot of node-table and cache usage. Hit/miss counters
// are only populated in debug builds (spec.md §9 / the `debug` build tag);
// in a release build they read zero.
func (f *Factory) Stats() Stats {
	return Stats{
		Kind:        f.kind,
		Varnum:      int(f.varnum),
		Nodes:       f.Len(),
		Produced:    f.produced,
		GCRuns:      len(f.gcHistory),
		AndCacheHit: f.andCache.hit, AndCacheMiss: f.andCache.miss,
		OrCacheHit: f.orCache.hit, OrCacheMiss: f.orCache.miss,
		NotCacheHit: f.notCache.hit, NotCacheMiss: f.notCache.miss,
	}
}

// Print writes a human-readable Stats report to w.
func (f *Factory) Print(w io.Writer) {
	s := f.Stats()
	fmt.Fprintf(w, "polydd: kind=%s varnum=%d nodes=%d produced=%d gc=%d\n",
		s.Kind, s.Varnum, s.Nodes, s.Produced, s.GCRuns)
	fmt.Fprintf(w, "  and cache: hit=%d miss=%d\n", s.AndCacheHit, s.AndCacheMiss)
	fmt.Fprintf(w, "  or  cache: hit=%d miss=%d\n", s.OrCacheHit, s.OrCacheMiss)
	fmt.Fprintf(w, "  not cache: hit=%d miss=%d\n", s.NotCacheHit, s.NotCacheMiss)
}

// Allnodes reports the addresses of every live node reachable from e, in
// topological order (children before parents; addresses are not necessarily
// increasing); a supplemented feature analogous
// to the teacher library's Allnodes (spec.md §4.8 implies it for DOT
// export, which needs the same reachable set).
func (f *Factory) Allnodes(e Edge) []Address {
	seen := make(map[Address]bool)
	var order []Address
	var walk func(a Address)
	walk = func(a Address) {
		if a < 2 || seen[a] {
			return
		}
		seen[a] = true
		_, lo, hi := f.node(a)
		walk(lo.Addr)
		walk(hi.Addr)
		order = append(order, a)
	}
	walk(e.Addr)
	return order
}
