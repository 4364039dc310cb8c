package solver

import "github.com/hadaly-sat/satkit/internal/engine"

// Terminator is polled when a Solve call's search starts, at each restart
// and before each decision; once Terminate returns true the current Solve
// call aborts and returns Unknown's "no conclusion" outcome. Simplify does
// not poll it.
type Terminator interface {
	Terminate() bool
}

// Learner receives every clause the engine adds to the formula — original
// clauses, inprocessing resolvents, and clauses learned by conflict
// analysis alike, since all three travel through the same internal Tracer
// hook — filtered to those at most MaxLength literals long (0 means no
// filtering).
type Learner interface {
	MaxLength() int
	Learn(lits []int32)
}

// ClauseIterator is the callback object TraverseClauses invokes for every
// live clause in the formula. Returning false stops the traversal early.
type ClauseIterator interface {
	Clause(lits []int32) bool
}

// WitnessIterator is the callback object TraverseWitnesses invokes for
// every extension-stack entry. Returning false stops the traversal early.
type WitnessIterator interface {
	Witness(eliminatedVar int32, runs [][]int32) bool
}

// terminatorAdapter satisfies engine.Terminator by forwarding to a
// facade-level Terminator, keeping the internal engine free of any
// dependency on the public capability types.
type terminatorAdapter struct {
	t Terminator
}

func (a terminatorAdapter) Terminate() bool {
	return a.t != nil && a.t.Terminate()
}

// tracingLearner wraps a Learner as an engine.Tracer add-hook so learned
// clauses are forwarded without duplicating the engine's own proof
// tracing plumbing; it ignores deletions.
type tracingLearner struct {
	learner    Learner
	toExternal func(engine.Lit) int32
}

func (t tracingLearner) notify(lits []engine.Lit) {
	if t.learner == nil {
		return
	}
	if max := t.learner.MaxLength(); max > 0 && len(lits) > max {
		return
	}
	out := make([]int32, len(lits))
	for i, l := range lits {
		out[i] = t.toExternal(l)
	}
	t.learner.Learn(out)
}
