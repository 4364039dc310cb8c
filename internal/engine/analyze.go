package engine

import "sort"

// computeGlue sets c's glue (LBD): the number of distinct decision levels
// among its literals under the current model.
func (c *Clause) computeGlue(model Model) {
	c.setGlue(1)
	cur := abs(model[c.Get(0).Var()])
	for i := 1; i < c.Len(); i++ {
		if lvl := abs(model[c.Get(i).Var()]); lvl != cur {
			cur = lvl
			c.glue++
		}
	}
}

type litsByLevel struct {
	lits  []Lit
	model Model
}

func (s litsByLevel) Len() int { return len(s.lits) }
func (s litsByLevel) Less(i, j int) bool {
	return abs(s.model[s.lits[i].Var()]) > abs(s.model[s.lits[j].Var()])
}
func (s litsByLevel) Swap(i, j int) { s.lits[i], s.lits[j] = s.lits[j], s.lits[i] }

func sortByLevel(lits []Lit, model Model) {
	sort.Sort(litsByLevel{lits, model})
}

// analyze walks the implication graph from a conflicting clause back to its
// 1-UIP, producing either a learned clause (len >= 2) or a single
// asserting unit literal (learned == nil).
func (e *Engine) analyze(confl *Clause, lvl Level) (learned *Clause, unit Lit) {
	e.bumpClause(confl)
	seen := e.scratchSeen
	atLvl := e.scratchAtLvl
	for i := range seen {
		seen[i] = false
		atLvl[i] = false
	}
	lits := e.scratchLits[:1]

	addLits := func(c *Clause, lits *[]Lit) int {
		n := 0
		for i := 0; i < c.Len(); i++ {
			l := c.Get(i)
			v := l.Var()
			if e.model.statusOf(l) != Unsat {
				continue
			}
			if seen[v] {
				continue
			}
			seen[v] = true
			e.bumpVar(v)
			if abs(e.model[v]) == lvl {
				atLvl[v] = true
				n++
			} else if abs(e.model[v]) != 1 {
				*lits = append(*lits, l)
			}
		}
		return n
	}

	nbAtLvl := addLits(confl, &lits)
	ptr := len(e.trail) - 1
	for nbAtLvl > 1 {
		for !atLvl[e.trail[ptr].Var()] {
			if abs(e.model[e.trail[ptr].Var()]) == lvl {
				seen[e.trail[ptr].Var()] = true
			}
			ptr--
		}
		v := e.trail[ptr].Var()
		ptr--
		nbAtLvl--
		if reason := e.reason[v]; reason != nil {
			e.bumpClause(reason)
			n := addLits(reason, &lits)
			nbAtLvl += n
		}
	}
	for _, l := range e.trail {
		if atLvl[l.Var()] {
			lits[0] = l.Negation()
			break
		}
	}
	e.decayVar()
	e.decayClause()
	sortByLevel(lits, e.model)
	size := e.minimize(seen, lits)
	if size == 1 {
		return nil, lits[0]
	}
	learned = NewRedundant(e.arena.alloc(lits[:size]))
	learned.computeGlue(e.model)
	return learned, -1
}

// minimize drops literals from a freshly learned clause whose reason clause
// is already fully subsumed by literals already present.
func (e *Engine) minimize(seen []bool, lits []Lit) int {
	size := 1
	for i := 1; i < len(lits); i++ {
		reason := e.reason[lits[i].Var()]
		if reason == nil {
			lits[size] = lits[i]
			size++
			continue
		}
		redundant := true
		for k := 0; k < reason.Len(); k++ {
			lit := reason.Get(k)
			if !seen[lit.Var()] && abs(e.model[lit.Var()]) > 1 {
				redundant = false
				break
			}
		}
		if !redundant {
			lits[size] = lits[i]
			size++
		}
	}
	return size
}
