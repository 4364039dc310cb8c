package external

import "testing"

func TestVarMapInternIsStable(t *testing.T) {
	m := NewVarMap()
	v1 := m.Intern(5)
	v2 := m.Intern(5)
	if v1 != v2 {
		t.Errorf("interning the same external variable twice should return the same internal Var")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
	if m.External(v1) != 5 {
		t.Errorf("External(v1) = %d, want 5", m.External(v1))
	}
}

func TestVarMapDistinctVarsGetDistinctSlots(t *testing.T) {
	m := NewVarMap()
	v1 := m.Intern(10)
	v2 := m.Intern(20)
	if v1 == v2 {
		t.Errorf("distinct external variables should map to distinct internal vars")
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestVarMapToInternalToExternalRoundTrip(t *testing.T) {
	m := NewVarMap()
	for _, ext := range []int32{3, -3, 7, -7} {
		l := m.ToInternal(ext)
		if got := m.ToExternal(l); got != ext {
			t.Errorf("round trip of %d: got %d", ext, got)
		}
	}
}

func TestVarMapLookup(t *testing.T) {
	m := NewVarMap()
	if _, ok := m.Lookup(1); ok {
		t.Fatalf("Lookup should report false before the variable is interned")
	}
	v := m.Intern(1)
	got, ok := m.Lookup(1)
	if !ok || got != v {
		t.Errorf("Lookup(1) = (%v, %v), want (%v, true)", got, ok, v)
	}
}
