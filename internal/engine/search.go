package engine

// Search runs the CDCL loop until the formula is proven sat or unsat, or
// the Terminator aborts it (in which case Indet is returned; the engine's
// trail is left in a valid, resumable state). Fake decisions pushed via
// PushAssumption occupy levels below baseLvl and are never undone by an
// internal restart or conflict backjump.
func (e *Engine) Search() Status {
	if e.unsat {
		return Unsat
	}
	for {
		if e.checkTerminated() {
			return Indet
		}
		status := e.propagateAndSearch(Level(2 + e.nbAssumed))
		if status != Indet {
			return status
		}
		e.Stats.Restarts++
		e.rebuildHeap()
	}
}

func (e *Engine) checkTerminated() bool {
	return e.Terminator != nil && e.Terminator.Terminate()
}

// propagateAndSearch unifies and propagates decisions starting at lvl,
// backjumping on conflicts, until either a restart is due (Indet), or the
// problem is conclusively solved.
func (e *Engine) propagateAndSearch(baseLvl Level) Status {
	lvl := baseLvl
	lit := e.decide()
	var reason *Clause
	for lit != -1 {
		conflict := e.propagateWithReason(lit, lvl, reason)
		reason = nil
		if conflict == nil {
			if e.glue.shouldRestart() {
				e.glue.reset()
				e.backtrackTo(baseLvl - 1)
				return Indet
			}
			if e.Stats.Conflicts >= e.idxReduce*e.maxLearned {
				e.idxReduce = e.Stats.Conflicts/e.maxLearned + 1
				e.reduce()
				e.maxLearned += learnedGrowth
			}
			if e.checkTerminated() {
				return Indet
			}
			lvl++
			lit = e.decide()
			continue
		}
		e.Stats.Conflicts++
		if e.Stats.Conflicts%5000 == 0 && e.varDecay < 0.95 {
			e.varDecay += 0.01
		}
		learned, unit := e.analyze(conflict, lvl)
		if learned == nil {
			e.Stats.UnitsLearned++
			e.glue.add(1)
			e.backtrackTo(baseLvl - 1)
			if unit == -1 || e.statusOf(unit) == Unsat {
				e.unsat = true
				return Unsat
			}
			if e.Tracer != nil {
				e.Tracer.AddClause([]Lit{unit})
			}
			e.model[unit.Var()] = signedLevel(unit, baseLvl-1)
			e.trail = append(e.trail, unit)
			if conflict = e.propagate(unit, baseLvl-1); conflict != nil {
				e.unsat = true
				return Unsat
			}
			e.rebuildHeap()
			lit = e.decide()
			lvl = baseLvl
			continue
		}
		if learned.Len() == 2 {
			e.Stats.BinaryLearned++
		}
		e.Stats.ClausesLearned++
		e.glue.add(learned.Glue())
		if e.Tracer != nil {
			e.Tracer.AddClause(learned.Lits())
		}
		e.installLearned(learned)
		bjLvl, bjLit := backjumpLevel(learned, e.model)
		if bjLvl < baseLvl-1 {
			bjLvl = baseLvl - 1
		}
		e.backtrackTo(bjLvl)
		lvl = bjLvl
		lit = bjLit
		reason = learned
	}
	return Sat
}
