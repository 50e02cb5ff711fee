// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

import "testing"

func TestKthSolutionEnumeratesAll(t *testing.T) {
	f, err := New(3, KindBDD)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	x0, x1 := f.SingleVariable(0), f.SingleVariable(1)
	g := f.Or(x0, x1) // x0 or x1, over 3 variables: 6 models

	total, ok := f.NumberSolutions(g, ScalarCount(0)).(ScalarCount)
	if !ok || uint64(total) != 6 {
		t.Fatalf("expected 6 models, got %v", total)
	}

	seen := make(map[string]bool)
	for k := uint64(0); k < uint64(total); k++ {
		sol, ok := f.KthSolution(g, k)
		if !ok {
			t.Fatalf("KthSolution(%d): expected a solution, got none", k)
		}
		key := fmtInts(sol)
		if seen[key] {
			t.Fatalf("KthSolution(%d): duplicate solution %v", k, sol)
		}
		seen[key] = true
	}
	if _, ok := f.KthSolution(g, uint64(total)); ok {
		t.Errorf("KthSolution(total): expected no solution past the last rank")
	}
}

func fmtInts(xs []int) string {
	s := ""
	for _, x := range xs {
		s += string(rune('a' + x))
	}
	return s
}

func TestFindSolutionWithMinimumTrue(t *testing.T) {
	f, err := New(3, KindBDD)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	x0, x1, x2 := f.SingleVariable(0), f.SingleVariable(1), f.SingleVariable(2)
	g := f.Or(f.And(x0, x1), x2) // satisfied by {x2}, by {x0,x1}, and by any superset of either

	sol, ok := f.FindSolutionWithMinimumTrue(g)
	if !ok {
		t.Fatalf("expected a solution")
	}
	if len(sol) != 1 || sol[0] != 2 {
		t.Errorf("expected the single-variable solution {x2}, got %v", sol)
	}
}

func TestFindSolutionWithMinimumTrueUnsat(t *testing.T) {
	f, err := New(2, KindBDD)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := f.FindSolutionWithMinimumTrue(f.False()); ok {
		t.Errorf("FALSE should have no minimum-true solution")
	}
}
