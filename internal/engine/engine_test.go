package engine

import "testing"

func addClause(e *Engine, lits ...int32) {
	cl := make([]Lit, len(lits))
	for i, l := range lits {
		cl[i] = IntToLit(l)
	}
	e.AddClause(cl)
}

func TestEngineSolvesSimpleSat(t *testing.T) {
	e := New(3)
	addClause(e, 1, 2, 3)
	addClause(e, -1, -2)
	addClause(e, -1, -3)
	addClause(e, -2, -3)
	if status := e.Search(); status != Sat {
		t.Fatalf("expected Sat, got %v", status)
	}
	nbTrue := 0
	for v := Var(0); v < 3; v++ {
		if e.Value(v.Lit()) == Sat {
			nbTrue++
		}
	}
	if nbTrue != 1 {
		t.Errorf("expected exactly one variable true in an at-most-one/at-least-one model, got %d", nbTrue)
	}
}

func TestEngineSolvesSimpleUnsat(t *testing.T) {
	e := New(1)
	addClause(e, 1)
	addClause(e, -1)
	if status := e.Search(); status != Unsat {
		t.Fatalf("expected Unsat, got %v", status)
	}
}

func TestEngineUnsatDetectedAtRootLevel(t *testing.T) {
	e := New(1)
	addClause(e, 1)
	addClause(e, -1)
	if !e.Unsat() {
		t.Errorf("conflicting unit clauses should be caught by root-level propagation alone")
	}
}

func TestEngineFixedAfterUnitPropagation(t *testing.T) {
	e := New(2)
	addClause(e, 1)
	addClause(e, 1, 2)
	if got := e.Fixed(IntToLit(1)); got != 1 {
		t.Errorf("Fixed(1) = %d, want 1", got)
	}
	if got := e.Fixed(IntToLit(2)); got != 0 {
		t.Errorf("Fixed(2) = %d, want 0 (not fixed by a binary clause alone)", got)
	}
}

func TestEnginePushAssumption(t *testing.T) {
	e := New(2)
	addClause(e, 1, 2)
	addClause(e, -1, -2)
	if conflict := e.PushAssumption(IntToLit(1)); conflict != nil {
		t.Fatalf("assuming 1 should not conflict: %v", conflict)
	}
	if e.Value(IntToLit(-2)) != Sat {
		t.Errorf("expected -2 implied true once 1 is assumed under -1|-2")
	}
	e.PopAssumptions()
	if e.Value(IntToLit(2)) != Indet {
		t.Errorf("popping the assumption should undo its implications")
	}
}

func TestEngineGrow(t *testing.T) {
	e := New(1)
	e.Grow(3)
	if e.NbVars != 3 {
		t.Fatalf("Grow(3) left NbVars = %d, want 3", e.NbVars)
	}
	addClause(e, 3)
	if status := e.Search(); status != Sat {
		t.Errorf("expected Sat after growing and adding a unit on the new variable, got %v", status)
	}
}
