package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func noneExcluded(Var) bool { return false }

// clauseSet renders every live irredundant clause as a sorted, comparable
// shape, so a before/after diff reads as which clauses were dropped,
// strengthened, or added rather than as a reordering artifact.
func clauseSet(e *Engine) [][]int32 {
	var out [][]int32
	for _, c := range e.IrredundantClauses() {
		lits := c.Lits()
		row := make([]int32, len(lits))
		for i, l := range lits {
			row[i] = l.Int()
		}
		sort.Slice(row, func(i, j int) bool { return row[i] < row[j] })
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		for k := range out[i] {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}
		return false
	})
	return out
}

func TestSubsumeRemovesSubsumedClause(t *testing.T) {
	e := New(3)
	addClause(e, 1, 2)
	addClause(e, 1, 2, 3)
	before := clauseSet(e)
	e.Subsume(noneExcluded)
	after := clauseSet(e)

	want := [][]int32{{1, 2}}
	if diff := cmp.Diff(want, after); diff != "" {
		t.Errorf("clause set after Subsume differs from expected (-want +got):\n%s", diff)
	}
	if cmp.Equal(before, after) {
		t.Errorf("expected Subsume to change the clause set, got identical before/after sets")
	}
}

func TestSubsumeStrengthensSelfSubsumedClause(t *testing.T) {
	e := New(3)
	addClause(e, 1, 2)
	addClause(e, -1, 2, 3)
	e.Subsume(noneExcluded)
	got := clauseSet(e)
	want := [][]int32{{1, 2}, {2, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("clause set after self-subsuming resolution differs (-want +got):\n%s", diff)
	}
}

func TestSubsumeExcludesFrozenVariable(t *testing.T) {
	e := New(3)
	addClause(e, 1, 2)
	addClause(e, 1, 2, 3)
	excludeVar1 := func(v Var) bool { return v == Var(0) }
	before := clauseSet(e)
	e.Subsume(excludeVar1)
	after := clauseSet(e)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("expected excluding variable 1 to prevent any subsumption, got a diff (-before +after):\n%s", diff)
	}
}

func TestEliminateBoundedResolutionProducesWitness(t *testing.T) {
	e := New(2)
	addClause(e, 1, 2) // var0 | var1
	w, ok := e.EliminateBoundedResolution(Var(0), 8)
	if !ok {
		t.Fatalf("expected elimination to be attempted")
	}
	if w.Var != Var(0) {
		t.Errorf("Witness.Var = %v, want %v", w.Var, Var(0))
	}
	if len(w.Runs) == 0 {
		t.Errorf("expected at least one witness run recording the eliminated clauses")
	}
}

func TestVivifyShrinksRedundantLiteral(t *testing.T) {
	e := New(3)
	addClause(e, 1, 2) // var0 | var1
	addClause(e, 1, 2, 3)
	clauses := e.IrredundantClauses()
	target := clauses[len(clauses)-1]
	before := target.Len()
	if !e.Vivify(target) {
		t.Fatalf("expected Vivify to report a shrink")
	}
	got := target.Len()
	if got >= before {
		t.Errorf("expected Vivify to shrink the clause below its original %d literals, got %d", before, got)
	}
	if got != 2 {
		t.Errorf("expected var2 to be dropped as redundant padding over var0 | var1, got length %d", got)
	}
}

func TestVivifyLeavesShortClauseUnchanged(t *testing.T) {
	e := New(2)
	addClause(e, 1, 2)
	c := e.IrredundantClauses()[0]
	if e.Vivify(c) {
		t.Errorf("expected Vivify to decline a clause at or below 2 literals")
	}
}

func TestBlockedClausesDetectsBlockedClause(t *testing.T) {
	e := New(2)
	addClause(e, 1, 2)   // var0 | var1
	addClause(e, -1, -2) // -var0 | -var1: resolving on var0 leaves var1 vs -var1, a tautology
	blocked := e.BlockedClauses(Var(0))
	if len(blocked) != 2 {
		t.Errorf("BlockedClauses(var0) returned %d clauses, want 2", len(blocked))
	}
}
