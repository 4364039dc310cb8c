// Package solver is the public facade: it owns the API state machine and
// forwards every operation to the internal/external layers, translating
// between signed DIMACS-style literals and the engine's dense internal
// space. Nothing here performs search or bookkeeping of its own beyond
// state tracking — see internal/engine and internal/external for that.
package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/hadaly-sat/satkit/internal/engine"
	"github.com/hadaly-sat/satkit/internal/external"
	"github.com/hadaly-sat/satkit/options"
	"github.com/hadaly-sat/satkit/proof"
)

// Stats mirrors engine.Stats at the public boundary.
type Stats = engine.Stats

// Solver is an incremental SAT solver. The zero value is not usable; build
// one with New.
type Solver struct {
	state State

	ext     *external.External
	options *options.Registry
	logger  *logrus.Entry

	terminator Terminator
	learner    Learner
	tracer     proof.Tracer

	limits map[string]int
}

// fanoutTracer forwards clause events to both the proof tracer (if any)
// and the learner-notification hook (if any) — the two concerns the
// header keeps as separate attach points but that both ride on the same
// engine.Tracer plumbing here.
type fanoutTracer struct {
	proof   proof.Tracer
	learner tracingLearner
}

func (f fanoutTracer) AddClause(lits []engine.Lit) {
	if f.proof != nil {
		f.proof.AddClause(lits)
	}
	f.learner.notify(lits)
}

func (f fanoutTracer) DeleteClause(lits []engine.Lit) {
	if f.proof != nil {
		f.proof.DeleteClause(lits)
	}
}

// New creates a Solver with no variables or clauses yet, in the
// CONFIGURING state.
func New() *Solver {
	s := &Solver{
		state:   Configuring,
		ext:     external.New(),
		options: options.NewRegistry(),
		limits:  make(map[string]int),
	}
	s.SetLogger(defaultLogger())
	s.wireTracer()
	return s
}

func (s *Solver) wireTracer() {
	s.ext.Engine.Tracer = fanoutTracer{
		proof:   s.tracer,
		learner: tracingLearner{learner: s.learner, toExternal: s.ext.Vars.ToExternal},
	}
}

func (s *Solver) leaveConfiguring() {
	if s.state == Configuring {
		s.options.Freeze()
		s.state = Unknown
	}
}

// Set assigns an option value. Only valid in CONFIGURING.
func (s *Solver) Set(name string, value float64) error {
	s.require("Set", Configuring)
	return s.options.Set(name, value)
}

// SetLongOption parses and applies a "--name"/"--no-name"/"--name=val"
// style argument. Only valid in CONFIGURING.
func (s *Solver) SetLongOption(arg string) error {
	s.require("SetLongOption", Configuring)
	return s.options.SetLongOption(arg)
}

// Configure applies a named option preset. Only valid in CONFIGURING.
func (s *Solver) Configure(name string) error {
	s.require("Configure", Configuring)
	return s.options.Configure(name)
}

// Optimize sets the elimbound option from level (see
// options.Registry.Optimize); Simplify does not read elimbound, so this
// does not change inprocessing effort. Only valid in CONFIGURING.
func (s *Solver) Optimize(level int) error {
	s.require("Optimize", Configuring)
	return s.options.Optimize(level)
}

// Get returns the current value of an option.
func (s *Solver) Get(name string) (float64, error) { return s.options.Get(name) }

// IsValidOption reports whether name is a known option.
func (s *Solver) IsValidOption(name string) bool { return s.options.IsValidOption(name) }

// Options returns every option spec and its current value.
func (s *Solver) Options() []options.Spec { return s.options.All() }

// Add appends one literal to the clause under construction, or — when lit
// is 0 — finishes it and installs it into the formula. Valid from
// CONFIGURING, UNKNOWN, SATISFIED or UNSATISFIED (starting a new clause)
// or ADDING (continuing one).
func (s *Solver) Add(lit int32) {
	s.require("Add", Configuring, Unknown, Adding, Satisfied, Unsatisfied)
	s.leaveConfiguring()
	if lit == 0 {
		s.ext.AddLiteral(0)
		s.state = Unknown
		return
	}
	s.ext.AddLiteral(lit)
	s.state = Adding
}

// AddClause is a convenience wrapper adding an entire clause (followed by
// its implicit 0) in one call.
func (s *Solver) AddClause(lits ...int32) {
	for _, l := range lits {
		s.Add(l)
	}
	s.Add(0)
}

// Assume adds lit as an assumption for the next Solve call. Valid from
// CONFIGURING, UNKNOWN, SATISFIED or UNSATISFIED.
func (s *Solver) Assume(lit int32) {
	s.require("Assume", Configuring, Unknown, Satisfied, Unsatisfied)
	s.leaveConfiguring()
	s.ext.Assume(lit)
	s.state = Unknown
}

// Reserve widens the variable range to cover at least maxVar. Valid from
// UNKNOWN or CONFIGURING.
func (s *Solver) Reserve(maxVar int32) {
	s.require("Reserve", Configuring, Unknown)
	s.ext.Reserve(maxVar)
}

// Solve runs the search and returns 10 (satisfiable), 20 (unsatisfiable),
// or 0 (no conclusion, e.g. terminated). Valid from CONFIGURING, UNKNOWN,
// SATISFIED or UNSATISFIED.
func (s *Solver) Solve() int {
	s.require("Solve", Configuring, Unknown, Satisfied, Unsatisfied)
	s.leaveConfiguring()
	s.wireTracer()
	s.ext.Engine.Terminator = terminatorAdapter{t: s.terminator}
	if max, ok := s.limits["conflicts"]; ok {
		s.ext.Engine.Terminator = conflictLimiter{base: s.ext.Engine.Terminator, engine: s.ext.Engine, max: s.ext.Engine.Stats.Conflicts + max}
		delete(s.limits, "conflicts")
	}
	s.state = Solving
	status := s.ext.Solve()
	defer s.ext.ClearPendingAssumptions()
	switch status {
	case engine.Sat:
		s.state = Satisfied
		return 10
	case engine.Unsat:
		s.state = Unsatisfied
		return 20
	default:
		s.state = Unknown
		return 0
	}
}

// Limit caps the given resource ("conflicts" is currently implemented) for
// the next Solve call only.
func (s *Solver) Limit(name string, value int) {
	s.require("Limit", Unknown, Configuring)
	s.limits[name] = value
}

// conflictLimiter is a Terminator that fires once the engine's conflict
// count crosses a threshold fixed at Solve entry, composing with any
// caller-supplied Terminator.
type conflictLimiter struct {
	base   engine.Terminator
	engine *engine.Engine
	max    int
}

func (c conflictLimiter) Terminate() bool {
	if c.base != nil && c.base.Terminate() {
		return true
	}
	return c.engine.Stats.Conflicts >= c.max
}

// Val returns lit if it is true in the last model, -lit if false. Valid
// only in SATISFIED.
func (s *Solver) Val(lit int32) int32 {
	s.require("Val", Satisfied)
	return s.ext.Val(lit)
}

// Failed reports whether lit was part of the unsatisfiable core of the
// last Solve call. Valid only in UNSATISFIED.
func (s *Solver) Failed(lit int32) bool {
	s.require("Failed", Unsatisfied)
	return s.ext.Failed(lit)
}

// Fixed returns the root-level implied value of lit: 1 true, -1 false, 0
// unknown. Valid from UNKNOWN, SATISFIED, or UNSATISFIED.
func (s *Solver) Fixed(lit int32) int {
	s.require("Fixed", Unknown, Satisfied, Unsatisfied)
	return s.ext.Fixed(lit)
}

// Freeze increments lit's variable's reference count, excluding it from
// elimination until a matching Melt. Valid from UNKNOWN.
func (s *Solver) Freeze(lit int32) {
	s.require("Freeze", Unknown)
	s.ext.Freeze(lit)
}

// Melt decrements lit's variable's reference count.
func (s *Solver) Melt(lit int32) {
	s.require("Melt", Unknown, Satisfied, Unsatisfied)
	s.ext.Melt(lit)
}

// Frozen reports whether lit's variable currently has a positive
// reference count.
func (s *Solver) Frozen(lit int32) bool { return s.ext.FrozenVar(lit) }

// Phase sets lit's variable's saved phase to lit's sign, so its next
// decision takes that sign. Phase saving replaces it once the variable has
// been assigned and unassigned again.
func (s *Solver) Phase(lit int32) {
	s.require("Phase", Unknown)
	s.ext.Phase(lit)
}

// Unphase has no effect on search: Phase keeps no separate forced value
// to release. Valid from UNKNOWN, SATISFIED or UNSATISFIED.
func (s *Solver) Unphase(v int32) {
	s.require("Unphase", Unknown, Satisfied, Unsatisfied)
	s.ext.Unphase(v)
}

// Simplify runs up to rounds rounds of inprocessing (subsumption,
// self-subsumption, bounded-resolution elimination) without a full
// search. Valid from UNKNOWN.
func (s *Solver) Simplify(rounds int) int {
	s.require("Simplify", Unknown)
	s.leaveConfiguring()
	status := s.ext.Simplify(rounds)
	if status == engine.Unsat {
		s.state = Unsatisfied
		return 20
	}
	return 0
}

// ConnectTerminator attaches t, polled during the next and all subsequent
// Solve calls until disconnected with ConnectTerminator(nil).
func (s *Solver) ConnectTerminator(t Terminator) { s.terminator = t }

// ConnectLearner attaches l, notified of every clause learned during the
// next and all subsequent Solve calls until disconnected with
// ConnectLearner(nil).
func (s *Solver) ConnectLearner(l Learner) {
	s.learner = l
	s.wireTracer()
}

// Terminate is a convenience one-shot Terminator: after calling it, the
// next Terminate() poll (and every one thereafter) reports true.
func (s *Solver) Terminate() { s.ConnectTerminator(alwaysTerminate{}) }

type alwaysTerminate struct{}

func (alwaysTerminate) Terminate() bool { return true }

// TraceProof attaches a proof tracer; clause additions/deletions from this
// point on are forwarded to it. TraceProofASCII and TraceProofBinary attach
// a writer in the ASCII or binary DRAT grammar.
func (s *Solver) TraceProof(w proof.Tracer) {
	s.tracer = w
	s.wireTracer()
}

// FlushProofTrace flushes any buffered proof output.
func (s *Solver) FlushProofTrace() error {
	if s.tracer == nil {
		return nil
	}
	return s.tracer.Flush()
}

// CloseProofTrace flushes and closes the attached proof tracer, if any.
func (s *Solver) CloseProofTrace() error {
	if s.tracer == nil {
		return nil
	}
	err := s.tracer.Close()
	s.tracer = nil
	s.wireTracer()
	return err
}

// TraverseClauses visits every live irredundant clause of the formula in
// external literal numbering. Unit clauses are held as root-level
// assignments (see Fixed) and are not visited.
func (s *Solver) TraverseClauses(it ClauseIterator) {
	s.ext.TraverseClauses(it.Clause)
}

// TraverseWitnesses visits every extension-stack entry, forward (oldest
// first) or backward (most recently pushed first).
func (s *Solver) TraverseWitnesses(forward bool, it WitnessIterator) {
	s.ext.TraverseWitnesses(forward, it.Witness)
}

// GetStats returns a snapshot of the solver's resolution statistics.
func (s *Solver) GetStats() Stats { return s.ext.Engine.Stats }

// NbVars returns the number of distinct external variables seen so far,
// through Add, Assume, or Reserve.
func (s *Solver) NbVars() int { return s.ext.Vars.Len() }

// State returns the solver's current state-machine node, mostly useful
// for tests and diagnostics.
func (s *Solver) State() State { return s.state }
