// Package external implements the CaDiCaL-style "External" layer: it maps
// user-visible (external) variable numbers onto the internal engine's
// dense variable space, tracks frozen/assumed variables, and replays the
// extension stack to reconstruct values for variables the internal engine
// eliminated during inprocessing. Nothing in this package runs search;
// it delegates to internal/engine and exposes a facade-friendly surface
// that takes signed external integer literals for AddLiteral/Assume/Val,
// using VarMap for the signed-integer <-> internal translation.
package external

import "github.com/hadaly-sat/satkit/internal/engine"

// VarMap is an injective, growable mapping from external (user-chosen,
// 1-based, arbitrary-but-positive) variable numbers to the engine's dense
// 0-based Var space.
type VarMap struct {
	toInternal map[int32]engine.Var
	toExternal []int32 // indexed by engine.Var
}

// NewVarMap creates an empty mapping.
func NewVarMap() *VarMap {
	return &VarMap{toInternal: make(map[int32]engine.Var)}
}

// Lookup returns the internal Var for extVar if already mapped.
func (m *VarMap) Lookup(extVar int32) (engine.Var, bool) {
	v, ok := m.toInternal[extVar]
	return v, ok
}

// Intern returns the internal Var for extVar, allocating a fresh one (the
// next unused slot) if this is the first time extVar is seen.
func (m *VarMap) Intern(extVar int32) engine.Var {
	if v, ok := m.toInternal[extVar]; ok {
		return v
	}
	v := engine.Var(len(m.toExternal))
	m.toInternal[extVar] = v
	m.toExternal = append(m.toExternal, extVar)
	return v
}

// External returns the external variable number for an internal Var.
func (m *VarMap) External(v engine.Var) int32 { return m.toExternal[v] }

// Len returns how many distinct external variables have been interned.
func (m *VarMap) Len() int { return len(m.toExternal) }

// ToInternal translates a signed external literal into an internal one,
// interning its variable if necessary.
func (m *VarMap) ToInternal(extLit int32) engine.Lit {
	v := m.Intern(abs32(extLit))
	if extLit < 0 {
		return v.SignedLit(true)
	}
	return v.SignedLit(false)
}

// ToExternal translates a signed internal literal into the external space.
func (m *VarMap) ToExternal(l engine.Lit) int32 {
	ext := m.External(l.Var())
	if !l.IsPositive() {
		return -ext
	}
	return ext
}

func abs32(i int32) int32 {
	if i < 0 {
		return -i
	}
	return i
}
