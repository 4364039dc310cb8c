package engine

import "testing"

func TestIntToLitRoundTrip(t *testing.T) {
	for _, i := range []int32{1, -1, 2, -2, 42, -42} {
		l := IntToLit(i)
		if got := l.Int(); got != i {
			t.Errorf("IntToLit(%d).Int() = %d, want %d", i, got, i)
		}
	}
}

func TestLitNegation(t *testing.T) {
	l := IntToLit(5)
	if !l.IsPositive() {
		t.Fatalf("expected IntToLit(5) to be positive")
	}
	n := l.Negation()
	if n.IsPositive() {
		t.Errorf("expected the negation of a positive literal to be negative")
	}
	if n.Var() != l.Var() {
		t.Errorf("negation should not change the underlying variable")
	}
	if n.Negation() != l {
		t.Errorf("double negation should return the original literal")
	}
}

func TestVarSignedLit(t *testing.T) {
	v := IntToVar(3)
	pos := v.SignedLit(false)
	neg := v.SignedLit(true)
	if pos.Int() != 3 {
		t.Errorf("SignedLit(false).Int() = %d, want 3", pos.Int())
	}
	if neg.Int() != -3 {
		t.Errorf("SignedLit(true).Int() = %d, want -3", neg.Int())
	}
}

func TestModelStatusOf(t *testing.T) {
	m := Model{0, 1, -1}
	if m.statusOf(IntToLit(1)) != Indet {
		t.Errorf("unbound variable should report Indet")
	}
	if m.statusOf(IntToLit(2)) != Sat {
		t.Errorf("variable bound true should satisfy its positive literal")
	}
	if m.statusOf(IntToLit(-2)) != Unsat {
		t.Errorf("variable bound true should falsify its negative literal")
	}
	if m.statusOf(IntToLit(3)) != Unsat {
		t.Errorf("variable bound false should falsify its positive literal")
	}
	if m.statusOf(IntToLit(-3)) != Sat {
		t.Errorf("variable bound false should satisfy its negative literal")
	}
}
