package external

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/hadaly-sat/satkit/internal/engine"
)

// External ties the dense internal engine to the sparse, user-chosen
// variable numbering, and owns every piece of incremental-solving state
// that must survive across calls but that the engine itself does not know
// about: assumptions, frozen variables, the extension stack, and the
// currently failed core.
type External struct {
	Engine *engine.Engine
	Vars   *VarMap
	Ext    *ExtensionStack
	Frozen *FrozenRefs

	addBuf []engine.Lit

	assumedExt  []int32
	assumedSet  mapset.Set[engine.Var]
	conflictLit engine.Lit // the assumption literal whose propagation conflicted, if any
	failedCore  map[int32]bool
	model       engine.Model // snapshot of the last Sat model, taken before the trail is reset
}

// New creates an External with no variables yet interned.
func New() *External {
	return &External{
		Engine:     engine.New(0),
		Vars:       NewVarMap(),
		Ext:        &ExtensionStack{},
		Frozen:     NewFrozenRefs(),
		assumedSet: mapset.NewThreadUnsafeSet[engine.Var](),
		failedCore: make(map[int32]bool),
	}
}

// growFor ensures the engine can hold extVar, interning it along the way.
func (x *External) growFor(extVar int32) engine.Var {
	v := x.Vars.Intern(extVar)
	if int(v)+1 > x.Engine.NbVars {
		x.Engine.Grow(int(v) + 1)
	}
	return v
}

// AddLiteral buffers extLit, or — if extLit is 0 — finalizes and installs
// the buffered clause. It returns true when a clause was installed.
func (x *External) AddLiteral(extLit int32) bool {
	if extLit == 0 {
		x.finishClause()
		return true
	}
	x.growFor(absInt32(extLit))
	x.addBuf = append(x.addBuf, x.Vars.ToInternal(extLit))
	return false
}

func absInt32(i int32) int32 {
	if i < 0 {
		return -i
	}
	return i
}

// finishClause simplifies the buffered clause (tautology and duplicate
// removal, dropping literals already false at the root level) and hands it
// to the engine, or drops it silently if it is a trivial tautology.
func (x *External) finishClause() {
	lits := x.addBuf
	x.addBuf = nil
	seen := mapset.NewThreadUnsafeSet[engine.Lit]()
	out := lits[:0]
	tautology := false
	for _, l := range lits {
		if x.Engine.Fixed(l) == -1 {
			continue
		}
		if seen.Contains(l.Negation()) {
			tautology = true
			break
		}
		if seen.Contains(l) {
			continue
		}
		seen.Add(l)
		out = append(out, l)
	}
	if tautology || len(out) == 0 {
		if len(out) == 0 && !tautology {
			// An empty clause (not from tautology collapse) proves unsat.
			x.Engine.AddClause(nil)
		}
		return
	}
	x.Engine.AddClause(out)
}

// Reserve widens the variable range to cover at least extVar, interning
// every external variable from 1 to extVar.
func (x *External) Reserve(extVar int32) {
	for v := int32(1); v <= extVar; v++ {
		x.Vars.Intern(v)
	}
	if n := x.Vars.Len(); n > x.Engine.NbVars {
		x.Engine.Grow(n)
	}
}

// Assume records extLit as an assumption; the next Solve pushes it as a
// fake decision. It must be called only while building up a set of
// assumptions before Solve.
func (x *External) Assume(extLit int32) {
	x.growFor(absInt32(extLit))
	x.assumedExt = append(x.assumedExt, extLit)
}

// Solve runs the engine under the currently assumed literals and returns
// the outcome. The failed-core set (if any) is recomputed as a side
// effect when the result is Unsat.
func (x *External) Solve() engine.Status {
	x.failedCore = make(map[int32]bool)
	x.conflictLit = -1
	x.assumedSet.Clear()
	for _, ext := range x.assumedExt {
		v := x.Vars.Intern(absInt32(ext))
		x.assumedSet.Add(v)
		l := x.Vars.ToInternal(ext)
		if conflict := x.Engine.PushAssumption(l); conflict != nil {
			x.conflictLit = l
			x.computeFailedCore(conflict, l)
			x.Engine.PopAssumptions()
			return engine.Unsat
		}
	}
	status := x.Engine.Search()
	if status == engine.Sat {
		x.model = x.Engine.Model()
	}
	if status == engine.Unsat && len(x.assumedExt) > 0 {
		x.computeFailedCoreFromTrail()
	}
	x.Engine.PopAssumptions()
	return status
}

// computeFailedCore handles the case where pushing an assumption conflicts
// immediately. conflict is the reason that forced failing's variable to the
// value that contradicts it; resolving that one clause is not enough in
// general, since failing's antecedent may itself chain back through other
// propagated literals to assumptions made much earlier. Walk the trail
// backward from the conflict, expanding each propagated literal into its
// own reason clause, until only reason-less trail entries remain — those
// are exactly the assumption decisions responsible for the conflict.
func (x *External) computeFailedCore(conflict *engine.Clause, failing engine.Lit) {
	x.failedCore[x.Vars.ToExternal(failing)] = true

	assumedExt := make(map[engine.Var]int32, len(x.assumedExt))
	for _, ext := range x.assumedExt {
		assumedExt[x.Vars.Intern(absInt32(ext))] = ext
	}

	seen := make(map[engine.Var]bool)
	for _, l := range conflict.Lits() {
		seen[l.Var()] = true
	}
	trail := x.Engine.Trail()
	for i := len(trail) - 1; i >= 0; i-- {
		v := trail[i].Var()
		if !seen[v] {
			continue
		}
		seen[v] = false
		if reason := x.Engine.Reason(v); reason != nil {
			for _, rl := range reason.Lits() {
				if rv := rl.Var(); rv != v {
					seen[rv] = true
				}
			}
			continue
		}
		if ext, ok := assumedExt[v]; ok {
			x.failedCore[ext] = true
		}
	}
}

// computeFailedCoreFromTrail keeps every assumed literal that is false on
// the trail when search ends, and blames the whole assumption set when
// none is — a conservative, non-minimal core, consistent with the
// documented contract ("failed core need not be minimal").
func (x *External) computeFailedCoreFromTrail() {
	for _, ext := range x.assumedExt {
		l := x.Vars.ToInternal(ext)
		if x.Engine.Value(l) == engine.Unsat {
			x.failedCore[ext] = true
		}
	}
	if len(x.failedCore) == 0 {
		// Nothing pinpointed individually; conservatively blame the whole set.
		for _, ext := range x.assumedExt {
			x.failedCore[ext] = true
		}
	}
}

// Failed reports whether extLit was part of the unsatisfiable core of the
// last Solve call. Valid only immediately after a Solve returning Unsat.
func (x *External) Failed(extLit int32) bool { return x.failedCore[extLit] }

// ClearAssumptions drops the pending/last-used assumption set and its
// failed core, per the documented "assumptions and failed core reset on
// the next add/assume/solve transition" rule.
func (x *External) ClearAssumptions() {
	x.assumedExt = nil
	x.failedCore = make(map[int32]bool)
}

// ClearPendingAssumptions drops only the assumption list, leaving any
// failed core from the Solve call that just finished queryable until the
// caller's next add/assume/solve transition discards it.
func (x *External) ClearPendingAssumptions() {
	x.assumedExt = nil
}

// Val returns the external literal's value in the last model: extLit if
// true, -extLit if false. Only valid after Solve returned Sat.
func (x *External) Val(extLit int32) int32 {
	model := x.Ext.Extend(x.model)
	v := x.Vars.Intern(absInt32(extLit))
	lvl := model[v]
	positive := lvl >= 0
	if positive == (extLit > 0) {
		return extLit
	}
	return -extLit
}

// Fixed returns the root-level implied value of extLit (1, -1, or 0).
func (x *External) Fixed(extLit int32) int {
	return x.Engine.Fixed(x.Vars.ToInternal(extLit))
}

// Freeze/Melt/Frozen forward to FrozenRefs using interned variables.
func (x *External) Freeze(extVar int32) { x.Frozen.Freeze(x.growFor(absInt32(extVar))) }
func (x *External) Melt(extVar int32)   { x.Frozen.Melt(x.growFor(absInt32(extVar))) }
func (x *External) FrozenVar(extVar int32) bool {
	return x.Frozen.Frozen(x.growFor(absInt32(extVar)))
}

// Phase/Unphase forward to the engine using interned variables.
func (x *External) Phase(extLit int32) {
	x.Engine.Phase(x.growFor(absInt32(extLit)), extLit > 0)
}
func (x *External) Unphase(extVar int32) { x.Engine.Unphase(x.growFor(absInt32(extVar))) }

// Simplify runs bounded inprocessing for up to rounds passes: subsumption,
// self-subsumption, and bounded-resolution elimination of unfrozen,
// unassumed variables, stopping early if the formula collapses to unsat.
func (x *External) Simplify(rounds int) engine.Status {
	excludedSet := x.Frozen.Snapshot(x.assumedSet)
	excluded := func(v engine.Var) bool { return excludedSet.Contains(v) }
	for i := 0; i < rounds && !x.Engine.Unsat(); i++ {
		x.Engine.Subsume(excluded)
		for v := engine.Var(0); v < engine.Var(x.Engine.NbVars); v++ {
			if excluded(v) {
				continue
			}
			if w, did := x.Engine.EliminateBoundedResolution(v, 16); did {
				if x.Engine.Unsat() {
					break
				}
				x.Ext.Push(w)
			}
		}
	}
	if x.Engine.Unsat() {
		return engine.Unsat
	}
	return engine.Indet
}

// TraverseClauses calls visit for every live irredundant clause (as
// external literals), stopping early if visit returns false.
func (x *External) TraverseClauses(visit func(lits []int32) bool) {
	for _, c := range x.Engine.IrredundantClauses() {
		lits := make([]int32, c.Len())
		for i := 0; i < c.Len(); i++ {
			lits[i] = x.Vars.ToExternal(c.Get(i))
		}
		if !visit(lits) {
			return
		}
	}
}

// TraverseWitnesses calls visit for every extension-stack witness, in the
// order requested, translating literals to external numbering.
func (x *External) TraverseWitnesses(forward bool, visit func(extVar int32, runs [][]int32) bool) {
	n := x.Ext.Len()
	for i := 0; i < n; i++ {
		idx := i
		if !forward {
			idx = n - 1 - i
		}
		w := x.Ext.witnesses[idx]
		runs := make([][]int32, len(w.Runs))
		for r, run := range w.Runs {
			runs[r] = make([]int32, len(run))
			for k, l := range run {
				runs[r][k] = x.Vars.ToExternal(l)
			}
		}
		if !visit(x.Vars.External(w.Var), runs) {
			return
		}
	}
}
