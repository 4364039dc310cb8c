package engine

import "sort"

const (
	initialMaxLearned = 2000
	learnedGrowth     = 300
	postponeGrowth    = 1000
	clauseDecayRate   = 0.999
	defaultVarDecay   = 0.8
)

// Stats mirrors the four counters the public header documents (conflicts,
// decisions, propagations, restarts) plus a few gophersat-derived extras
// that are a strict superset and cost nothing extra to track.
type Stats struct {
	Conflicts      int
	Decisions      int
	Propagations   int
	Restarts       int
	UnitsLearned   int
	BinaryLearned  int
	ClausesLearned int
	ClausesDeleted int
}

// Tracer receives every clause addition/removal the engine performs, for
// DRAT-style proof emission. Both methods receive internal literals; the
// caller (external layer) is responsible for external translation.
type Tracer interface {
	AddClause(lits []Lit)
	DeleteClause(lits []Lit)
}

// Terminator is polled when Search starts, at each restart and before each
// decision; once it reports true the current search aborts. Inprocessing
// does not poll it.
type Terminator interface {
	Terminate() bool
}

// Logger is the narrow ambient-logging capability the engine needs; it is
// satisfied by a *logrus.Entry in the facade.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Infof(string, ...interface{})  {}

// Engine is the CDCL core. It knows nothing about external variable
// numbering, assumptions-as-such, or the API state machine; it solves
// exactly the CNF it has been given, optionally under a set of literals
// pushed as "fake decisions" by PushAssumption.
type Engine struct {
	NbVars int

	trail []Lit
	model Model

	reason   []*Clause
	activity []float64
	polarity []bool

	heap      varHeap
	varInc    float64
	varDecay  float64
	clauseInc float32

	watches watchLists
	arena   *arena

	irredundant []*Clause
	redundant   []*Clause
	maxLearned  int
	idxReduce   int

	glue glueStats

	scratchSeen  []bool
	scratchAtLvl []bool
	scratchLits  []Lit

	nbAssumed int // number of fake decisions currently pushed (levels 2..2+nbAssumed-1)

	Stats Stats

	Tracer     Tracer
	Terminator Terminator
	Log        Logger

	unsat bool
}

// New creates an empty engine able to hold nbVars variables.
func New(nbVars int) *Engine {
	e := &Engine{
		NbVars:    nbVars,
		model:     make(Model, nbVars),
		reason:    make([]*Clause, nbVars),
		activity:  make([]float64, nbVars),
		polarity:  make([]bool, nbVars),
		varInc:    1.0,
		varDecay:  defaultVarDecay,
		clauseInc: 1.0,
		watches:   newWatchLists(nbVars),
		arena:     newArena(),
		maxLearned: initialMaxLearned,
		idxReduce:  1,
		Log:        noopLogger{},
	}
	e.heap = newVarHeap(e.activity)
	e.scratchSeen = make([]bool, nbVars)
	e.scratchAtLvl = make([]bool, nbVars)
	e.scratchLits = make([]Lit, 1, 64)
	return e
}

// Grow extends the engine to support nbVars variables, preserving all
// existing state. It is a no-op if nbVars is not larger than the current
// capacity.
func (e *Engine) Grow(nbVars int) {
	if nbVars <= e.NbVars {
		return
	}
	grow := nbVars - e.NbVars
	e.model = append(e.model, make(Model, grow)...)
	e.reason = append(e.reason, make([]*Clause, grow)...)
	e.activity = append(e.activity, make([]float64, grow)...)
	e.polarity = append(e.polarity, make([]bool, grow)...)
	e.scratchSeen = append(e.scratchSeen, make([]bool, grow)...)
	e.scratchAtLvl = append(e.scratchAtLvl, make([]bool, grow)...)
	e.heap.activity = e.activity
	e.watches.grow(nbVars)
	for v := e.NbVars; v < nbVars; v++ {
		e.heap.insert(int32(v))
	}
	e.NbVars = nbVars
}

func (e *Engine) statusOf(l Lit) Status { return e.model.statusOf(l) }

// AddClause installs an already-simplified, non-tautological clause as part
// of the permanent (irredundant) formula. An empty clause marks the engine
// permanently unsat outright. A unit clause is bound directly at level 1; a
// conflict at level 1 (from either case) marks the engine permanently
// unsat. The caller (external layer) is responsible for variable-range
// growth before calling this.
func (e *Engine) AddClause(lits []Lit) {
	if e.unsat {
		return
	}
	if e.Tracer != nil {
		e.Tracer.AddClause(lits)
	}
	if len(lits) == 0 {
		e.unsat = true
		return
	}
	if len(lits) == 1 {
		e.addUnit(lits[0])
		return
	}
	c := NewIrredundant(e.arena.alloc(lits))
	e.irredundant = append(e.irredundant, c)
	e.watches.watch(c)
}

func (e *Engine) addUnit(l Lit) {
	if status := e.statusOf(l); status == Unsat {
		e.unsat = true
		return
	} else if status == Sat {
		return
	}
	e.model[l.Var()] = signedLevel(l, 1)
	e.trail = append(e.trail, l)
	if conflict := e.propagate(l, 1); conflict != nil {
		e.unsat = true
	}
}

// Unsat reports whether root-level unit propagation has already proven the
// formula unsatisfiable, independent of any search.
func (e *Engine) Unsat() bool { return e.unsat }

func (e *Engine) decayVar()    { e.varInc *= 1 / e.varDecay }
func (e *Engine) decayClause() { e.clauseInc *= 1 / clauseDecayRate }

func (e *Engine) bumpVar(v Var) {
	e.activity[v] += e.varInc
	if e.activity[v] > 1e100 {
		for i := range e.activity {
			e.activity[i] *= 1e-100
		}
		e.varInc *= 1e-100
	}
	if e.heap.contains(int32(v)) {
		e.heap.decrease(int32(v))
	}
}

func (e *Engine) bumpClause(c *Clause) {
	if !c.Redundant() {
		return
	}
	c.activity += e.clauseInc
	if c.activity > 1e30 {
		for _, c2 := range e.redundant {
			c2.activity *= 1e-30
		}
		e.clauseInc *= 1e-30
	}
}

// decide picks the next unassigned variable off the VSIDS heap, using its
// saved phase (as set by phase saving or Phase). It returns -1 if every variable is already
// bound.
func (e *Engine) decide() Lit {
	v := Var(-1)
	for v == -1 && !e.heap.empty() {
		if v2 := Var(e.heap.removeMin()); e.model[v2] == 0 {
			v = v2
		}
	}
	if v == -1 {
		return -1
	}
	e.Stats.Decisions++
	return v.SignedLit(!e.polarity[v])
}

// PushAssumption adds lit as a fake decision at the next level, without
// counting it against Stats.Decisions. It must only be called between
// searches, with no conflicting propagation already standing.
func (e *Engine) PushAssumption(lit Lit) *Clause {
	lvl := Level(2 + e.nbAssumed)
	if status := e.statusOf(lit); status == Sat {
		e.nbAssumed++
		return nil
	} else if status == Unsat {
		if r := e.reason[lit.Var()]; r != nil {
			return r
		}
		// lit's negation is a root unit or an earlier assumption.
		return NewIrredundant([]Lit{lit.Negation()})
	}
	conflict := e.propagate(lit, lvl)
	if conflict == nil {
		e.nbAssumed++
	}
	return conflict
}

// PopAssumptions undoes every fake decision pushed by PushAssumption, along
// with any search decisions above them, returning the trail to the root
// level.
func (e *Engine) PopAssumptions() {
	e.backtrackTo(1)
	e.nbAssumed = 0
}

func (e *Engine) rebuildHeap() {
	unbound := make([]int32, 0, e.NbVars)
	for v := 0; v < e.NbVars; v++ {
		if e.model[v] == 0 {
			unbound = append(unbound, int32(v))
		}
	}
	e.heap.rebuild(unbound)
}

// backtrackTo undoes every binding made at a level strictly greater than
// lvl, restoring saved phases and re-inserting freed variables into the
// heap.
func (e *Engine) backtrackTo(lvl Level) {
	i := 0
	for i < len(e.trail) && abs(e.model[e.trail[i].Var()]) <= lvl {
		i++
	}
	reinsert := make([]int32, 0, len(e.trail)-i)
	for j := i; j < len(e.trail); j++ {
		l := e.trail[j]
		v := l.Var()
		e.model[v] = 0
		if e.reason[v] != nil {
			e.reason[v].unlock()
			e.reason[v] = nil
		}
		e.polarity[v] = l.IsPositive()
		if !e.heap.contains(int32(v)) {
			reinsert = append(reinsert, int32(v))
		}
	}
	e.trail = e.trail[:i]
	for k := len(reinsert) - 1; k >= 0; k-- {
		e.heap.insert(reinsert[k])
	}
}

func backjumpLevel(c *Clause, model Model) (Level, Lit) {
	return abs(model[c.Get(1).Var()]), c.Get(0)
}

// installLearned adds a freshly learned clause to the redundant database
// and watches it, bumping reduction bookkeeping.
func (e *Engine) installLearned(c *Clause) {
	e.redundant = append(e.redundant, c)
	e.watches.watch(c)
	e.bumpClause(c)
}

func (e *Engine) reduce() {
	e.sortRedundantByQuality()
	half := len(e.redundant) / 2
	if half > 0 && e.redundant[half].Glue() <= 3 {
		e.maxLearned += postponeGrowth
		return
	}
	removed := 0
	for i := 0; i < half; i++ {
		c := e.redundant[i]
		if c.Glue() <= 2 || c.isLocked() {
			continue
		}
		removed++
		e.Stats.ClausesDeleted++
		if e.Tracer != nil {
			e.Tracer.DeleteClause(c.Lits())
		}
		e.watches.unwatch(c)
		e.redundant[i] = e.redundant[len(e.redundant)-removed]
	}
	e.redundant = e.redundant[:len(e.redundant)-removed]
}

func (e *Engine) sortRedundantByQuality() {
	// Sort by glue desc, breaking ties by rising activity, so the worst
	// clauses (high glue, low activity) sit at the front and are the ones
	// reduce() considers for removal.
	sort.Slice(e.redundant, func(i, j int) bool {
		a, b := e.redundant[i], e.redundant[j]
		return a.Glue() > b.Glue() || (a.Glue() == b.Glue() && a.activity < b.activity)
	})
}
