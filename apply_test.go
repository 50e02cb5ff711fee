// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

import "testing"

func TestBDDBasics(t *testing.T) {
	f, err := New(4, KindBDD)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	x0 := f.SingleVariable(0)
	x1 := f.SingleVariable(1)

	and := f.And(x0, x1)
	or := f.Or(x0, x1)
	not0 := f.Not(x0)

	if f.NumberSolutions(and, ScalarCount(0)).(ScalarCount) != 4 {
		t.Errorf("x0 and x1: expected 4 models out of 16, got %v", f.NumberSolutions(and, ScalarCount(0)))
	}
	if f.NumberSolutions(or, ScalarCount(0)).(ScalarCount) != 12 {
		t.Errorf("x0 or x1: expected 12 models, got %v", f.NumberSolutions(or, ScalarCount(0)))
	}
	if f.NumberSolutions(not0, ScalarCount(0)).(ScalarCount) != 8 {
		t.Errorf("not x0: expected 8 models, got %v", f.NumberSolutions(not0, ScalarCount(0)))
	}
	if f.NumberSolutions(f.True(), ScalarCount(0)).(ScalarCount) != 16 {
		t.Errorf("true: expected 16 models, got %v", f.NumberSolutions(f.True(), ScalarCount(0)))
	}
	if f.NumberSolutions(f.False(), ScalarCount(0)).(ScalarCount) != 0 {
		t.Errorf("false: expected 0 models, got %v", f.NumberSolutions(f.False(), ScalarCount(0)))
	}
}

func TestBDDDoubleNegation(t *testing.T) {
	f, err := New(3, KindBDD)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	x0, x1 := f.SingleVariable(0), f.SingleVariable(1)
	g := f.And(x0, f.Not(x1))
	gg := f.Not(f.Not(g))
	if gg.Addr != g.Addr {
		t.Errorf("not(not(g)) should be structurally identical to g: got addr %d, want %d", gg.Addr, g.Addr)
	}
}

func TestZDDFamilyOperations(t *testing.T) {
	f, err := New(3, KindZDD)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// {0}, {1}, {0,1}
	s0 := f.SingleVariable(0)
	s1 := f.SingleVariable(1)
	s01 := f.Or(s0, s1)

	union := f.Or(s0, s01)
	if f.NumberSolutions(union, ScalarCount(0)).(ScalarCount) != 2 {
		t.Errorf("{0} union ({0},{1}): expected 2 sets, got %v", f.NumberSolutions(union, ScalarCount(0)))
	}

	intersect := f.And(s01, s0)
	if intersect.Addr != s0.Addr {
		t.Errorf("{0} and ({0},{1}): expected {0}, got addr %d (want %d)", intersect.Addr, s0.Addr)
	}
}

func TestGetOrInsertReductions(t *testing.T) {
	fbdd, _ := New(2, KindBDD)
	same := fbdd.getOrInsert(0, fbdd.True(), fbdd.True())
	if same.Addr != addrTrue {
		t.Errorf("BDD reduction 5: lo==hi should collapse, got addr %d", same.Addr)
	}

	fzdd, _ := New(2, KindZDD)
	collapsed := fzdd.getOrInsert(0, fzdd.True(), fzdd.False())
	if collapsed.Addr != addrTrue {
		t.Errorf("ZDD reduction 6: hi==FALSE should collapse to lo, got addr %d", collapsed.Addr)
	}
}

func TestGCKeepsReachable(t *testing.T) {
	f, _ := New(3, KindBDD)
	x0, x1 := f.SingleVariable(0), f.SingleVariable(1)
	g := f.And(x0, x1)
	before := f.Len()
	_ = before

	renaming := f.GC(g)
	newG, ok := renaming.Rename(g)
	if !ok {
		t.Fatalf("GC: expected g to survive, since it was in the keep set")
	}
	if f.NumberSolutions(newG, ScalarCount(0)).(ScalarCount) != 2 {
		t.Errorf("GC: renamed edge should still denote the same function")
	}
}
