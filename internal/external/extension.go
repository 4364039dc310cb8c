package external

import "github.com/hadaly-sat/satkit/internal/engine"

// ExtensionStack is the append-only witness log inprocessing pushes to
// when it eliminates a variable. Replaying it in reverse ("last eliminated,
// first restored") lets the facade recover a full assignment over
// originally-given variables from a partial model the internal engine
// produced after elimination removed some of them.
type ExtensionStack struct {
	witnesses []engine.Witness
}

// Push records one elimination witness.
func (s *ExtensionStack) Push(w engine.Witness) {
	s.witnesses = append(s.witnesses, w)
}

// Len reports how many witnesses are recorded.
func (s *ExtensionStack) Len() int { return len(s.witnesses) }

// Extend completes a partial model (indexed by engine.Var, as produced by
// the engine after elimination) by replaying witnesses from most to least
// recently pushed, assigning each eliminated variable a value that
// satisfies at least one literal in every run of its witness.
func (s *ExtensionStack) Extend(model engine.Model) engine.Model {
	out := append(engine.Model(nil), model...)
	for i := len(s.witnesses) - 1; i >= 0; i-- {
		w := s.witnesses[i]
		out[w.Var] = satisfyingAssignment(w, out)
	}
	return out
}

// satisfyingAssignment picks a truth value for w.Var that satisfies every
// run (original clause) in the witness under the rest of the model,
// defaulting to true if either sign would work or neither run constrains
// it (e.g. a pure literal eliminated with no residual clauses).
func satisfyingAssignment(w engine.Witness, model engine.Model) engine.Level {
	for _, run := range w.Runs {
		satisfied := false
		want := engine.Level(0)
		for _, l := range run {
			if l.Var() == w.Var {
				if l.IsPositive() {
					want = 1
				} else {
					want = -1
				}
				continue
			}
			if statusSatisfied(model, l) {
				satisfied = true
				break
			}
		}
		if !satisfied && want != 0 {
			return want
		}
	}
	return 1
}

func statusSatisfied(model engine.Model, l engine.Lit) bool {
	lvl := model[l.Var()]
	if lvl == 0 {
		return false
	}
	return (lvl > 0) == l.IsPositive()
}
