package engine

// watcher pairs a binary clause with the literal to propagate if its
// watched literal is falsified.
type watcher struct {
	other  Lit
	clause *Clause
}

// watchLists indexes every clause (binary clauses separately, as a fast
// path) by the negation of each of its two watched literals.
type watchLists struct {
	bin [][]watcher
	gen [][]*Clause
}

func newWatchLists(nbVars int) watchLists {
	return watchLists{
		bin: make([][]watcher, nbVars*2),
		gen: make([][]*Clause, nbVars*2),
	}
}

func (w *watchLists) grow(nbVars int) {
	for len(w.bin) < nbVars*2 {
		w.bin = append(w.bin, nil)
		w.gen = append(w.gen, nil)
	}
}

func (w *watchLists) watch(c *Clause) {
	if c.Len() == 2 {
		a, b := c.Get(0), c.Get(1)
		w.bin[a.Negation()] = append(w.bin[a.Negation()], watcher{clause: c, other: b})
		w.bin[b.Negation()] = append(w.bin[b.Negation()], watcher{clause: c, other: a})
		return
	}
	w.gen[c.Get(0).Negation()] = append(w.gen[c.Get(0).Negation()], c)
	w.gen[c.Get(1).Negation()] = append(w.gen[c.Get(1).Negation()], c)
}

func removeClause(lst []*Clause, c *Clause) []*Clause {
	i := 0
	for lst[i] != c {
		i++
	}
	last := len(lst) - 1
	lst[i] = lst[last]
	return lst[:last]
}

func (w *watchLists) unwatch(c *Clause) {
	w.gen[c.Get(0).Negation()] = removeClause(w.gen[c.Get(0).Negation()], c)
	w.gen[c.Get(1).Negation()] = removeClause(w.gen[c.Get(1).Negation()], c)
}

// propagate unifies lit at level lvl as a decision or assumption (no
// antecedent) and runs unit propagation to a fixed point, returning the
// first falsified clause encountered, or nil.
func (e *Engine) propagate(lit Lit, lvl Level) *Clause {
	return e.propagateWithReason(lit, lvl, nil)
}

// propagateWithReason is propagate but records reason as lit's antecedent
// instead of treating lit as a decision. It resumes propagation from an
// asserting literal derived by conflict analysis, whose reason is the
// learned clause that implied it — seeding that explicitly here, rather
// than relying on propagate's own reason-less assignment, keeps the
// implication graph intact for later analyze/minimize calls.
func (e *Engine) propagateWithReason(lit Lit, lvl Level, reason *Clause) *Clause {
	e.model[lit.Var()] = signedLevel(lit, lvl)
	e.reason[lit.Var()] = reason
	if reason != nil {
		reason.lock()
	}
	start := len(e.trail)
	e.trail = append(e.trail, lit)
	for ptr := start; ptr < len(e.trail); ptr++ {
		lit := e.trail[ptr]
		for _, wa := range e.watches.bin[lit] {
			status := e.model.statusOf(wa.other)
			if status == Indet {
				v := wa.other.Var()
				e.reason[v] = wa.clause
				wa.clause.lock()
				e.model[v] = signedLevel(wa.other, lvl)
				e.trail = append(e.trail, wa.other)
			} else if status == Unsat {
				return wa.clause
			}
		}
		for _, c := range e.watches.gen[lit] {
			status, unit := e.simplify(c)
			switch status {
			case Unsat:
				return c
			case Unit:
				v := unit.Var()
				e.reason[v] = c
				c.lock()
				e.model[v] = signedLevel(unit, lvl)
				e.trail = append(e.trail, unit)
			}
		}
	}
	return nil
}

// simplify re-evaluates a non-binary watched clause under the current
// model. It assumes c.Get(0) and c.Get(1) are the watched literals.
func (e *Engine) simplify(c *Clause) (Status, Lit) {
	var freeIdx int
	found := false
	n := c.Len()
	for i := 0; i < n; i++ {
		lit := c.Get(i)
		switch e.model.statusOf(lit) {
		case Sat:
			return Sat, -1
		case Indet:
			if found {
				switch freeIdx {
				case 0:
					e.moveWatch(c, 1, i)
				case 1:
					e.moveWatch(c, 0, i)
				default:
					e.moveWatch(c, 0, freeIdx)
					e.moveWatch(c, 1, i)
				}
				return Many, -1
			}
			freeIdx = i
			found = true
		}
	}
	if !found {
		return Unsat, -1
	}
	return Unit, c.Get(freeIdx)
}

// moveWatch relocates one of c's two watched slots (dst, either 0 or 1) to
// the free literal found at src, updating the watch lists accordingly.
func (e *Engine) moveWatch(c *Clause, dst, src int) {
	oldNeg := c.Get(dst).Negation()
	c.swap(dst, src)
	newNeg := c.Get(dst).Negation()
	e.watches.gen[oldNeg] = removeClause(e.watches.gen[oldNeg], c)
	e.watches.gen[newNeg] = append(e.watches.gen[newNeg], c)
}
