package engine

// Value reports the current truth value of l under the engine's model, or
// Indet if unassigned.
func (e *Engine) Value(l Lit) Status { return e.statusOf(l) }

// Fixed reports whether l is implied at the root level (level 1),
// independent of the current (possibly assumption-extended) trail: 1 if l
// is fixed true, -1 if fixed false, 0 if not yet fixed.
func (e *Engine) Fixed(l Lit) int {
	lvl := e.model[l.Var()]
	if abs(lvl) != 1 {
		return 0
	}
	if (lvl > 0) == l.IsPositive() {
		return 1
	}
	return -1
}

// Model returns a snapshot of the full internal model.
func (e *Engine) Model() Model {
	out := make(Model, len(e.model))
	copy(out, e.model)
	return out
}

// Reason returns the clause that forced v's current assignment, or nil if
// v is unassigned, or is a decision or assumption with no antecedent.
func (e *Engine) Reason(v Var) *Clause { return e.reason[v] }

// Trail returns the current assignment trail, oldest first.
func (e *Engine) Trail() []Lit { return e.trail }

// IrredundantClauses returns every live (non-garbage) original clause.
func (e *Engine) IrredundantClauses() []*Clause {
	out := make([]*Clause, 0, len(e.irredundant))
	for _, c := range e.irredundant {
		if !c.garbage {
			out = append(out, c)
		}
	}
	return out
}

// Phase sets v's saved phase, so v's next decision takes the given
// polarity. It is not kept apart from phase saving: once v is assigned and
// later unassigned, backtracking overwrites it with the value v last had.
func (e *Engine) Phase(v Var, positive bool) { e.polarity[v] = positive }

// Unphase has no effect: Phase keeps no separate forced value, so there is
// nothing to release. It exists for API symmetry with Phase.
func (e *Engine) Unphase(Var) {}
