package engine

import "sort"

// Witness is one reconstruction-stack entry produced by inprocessing: each
// run is a copy of one clause that contained the eliminated variable, and
// to restore a value for that variable the caller picks an assignment
// satisfying every run.
type Witness struct {
	Var  Var
	Runs [][]Lit
}

// InprocessResult reports what a single inprocessing round accomplished.
type InprocessResult struct {
	Eliminated  []Witness
	Subsumed    int
	Strengthened int
	Unsat       bool
}

func sortedCopy(lits []Lit) []Lit {
	out := append([]Lit(nil), lits...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// subsumes is true iff c (sorted) subsumes c2 (sorted): every literal of c
// appears in c2.
func subsumes(c, c2 []Lit) bool {
	if len(c) > len(c2) {
		return false
	}
	j := 0
	for _, l := range c {
		for j < len(c2) && c2[j] < l {
			j++
		}
		if j >= len(c2) || c2[j] != l {
			return false
		}
		j++
	}
	return true
}

// selfSubsumes is true iff c self-subsumes c2 through exactly one
// complementary literal, returning that literal (from c2's perspective) so
// the caller can strengthen c2 by removing it.
func selfSubsumes(c, c2 []Lit) (Lit, bool) {
	var flip Lit
	found := false
	j := 0
	for _, l := range c {
		for j < len(c2) && c2[j] < l && c2[j] != l.Negation() {
			j++
		}
		if j < len(c2) && c2[j] == l.Negation() {
			if found {
				return -1, false
			}
			flip = c2[j]
			found = true
			j++
			continue
		}
		if j >= len(c2) || c2[j] != l {
			return -1, false
		}
		j++
	}
	return flip, found
}

// Subsume performs one round of forward subsumption and self-subsuming
// resolution over the irredundant clause set, skipping every candidate
// subsuming clause that involves a frozen or assumed variable (passed by
// the caller, since the engine itself does not track freezing); the clause
// being subsumed or strengthened is not checked. It mutates clauses in
// place (strengthening) and marks fully subsumed clauses as garbage.
func (e *Engine) Subsume(excluded func(Var) bool) InprocessResult {
	var res InprocessResult
	n := len(e.irredundant)
	sorted := make([][]Lit, n)
	for i, c := range e.irredundant {
		sorted[i] = sortedCopy(c.Lits())
	}
	for i := 0; i < n; i++ {
		ci := e.irredundant[i]
		if ci.garbage {
			continue
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			cj := e.irredundant[j]
			if cj.garbage || cj.Len() < ci.Len() {
				continue
			}
			skip := false
			for _, l := range ci.Lits() {
				if excluded(l.Var()) {
					skip = true
					break
				}
			}
			if skip {
				continue
			}
			if subsumes(sorted[i], sorted[j]) {
				e.markGarbage(cj)
				res.Subsumed++
				continue
			}
			if flip, ok := selfSubsumes(sorted[i], sorted[j]); ok {
				e.strengthen(cj, flip)
				sorted[j] = sortedCopy(cj.Lits())
				res.Strengthened++
			}
		}
	}
	e.compact()
	return res
}

func (e *Engine) markGarbage(c *Clause) {
	if c.garbage {
		return
	}
	c.garbage = true
	if e.Tracer != nil {
		e.Tracer.DeleteClause(c.Lits())
	}
	if c.Len() == 2 || c.Len() == 1 {
		// binary-or-unit watches will be dropped wholesale by compact()'s
		// watch-list rebuild; no per-literal unwatch needed here.
		return
	}
	e.watches.unwatch(c)
}

// strengthen removes flip from c and re-watches it if necessary.
func (e *Engine) strengthen(c *Clause, flip Lit) {
	wasWatched := c.Len() > 2
	if wasWatched {
		e.watches.unwatch(c)
	}
	lits := c.Lits()
	out := lits[:0]
	for _, l := range lits {
		if l != flip {
			out = append(out, l)
		}
	}
	c.lits = out
	if c.Len() == 1 {
		e.addUnit(c.lits[0])
		return
	}
	if wasWatched || c.Len() == 2 {
		e.watches.watch(c)
	}
}

// compact physically drops every clause marked garbage and rebuilds watch
// lists from scratch. It is the only place clause slices are relocated.
func (e *Engine) compact() {
	kept := e.irredundant[:0]
	for _, c := range e.irredundant {
		if !c.garbage {
			kept = append(kept, c)
		}
	}
	e.irredundant = kept
	e.watches = newWatchLists(e.NbVars)
	for _, c := range e.irredundant {
		e.watches.watch(c)
	}
	for _, c := range e.redundant {
		e.watches.watch(c)
	}
}

// occurrences returns, for variable v, every irredundant clause containing
// v positively and every one containing it negatively.
func (e *Engine) occurrences(v Var) (pos, neg []*Clause) {
	for _, c := range e.irredundant {
		if c.garbage {
			continue
		}
		for _, l := range c.Lits() {
			if l.Var() != v {
				continue
			}
			if l.IsPositive() {
				pos = append(pos, c)
			} else {
				neg = append(neg, c)
			}
			break
		}
	}
	return pos, neg
}

// resolve returns the resolvent of two clauses on variable v, or (nil,
// false) if it is tautological (contains a literal and its negation other
// than the pivot).
func resolve(a, b []Lit, v Var) ([]Lit, bool) {
	out := make([]Lit, 0, len(a)+len(b)-2)
	seen := make(map[Lit]bool, len(a)+len(b))
	for _, l := range a {
		if l.Var() == v {
			continue
		}
		if seen[l.Negation()] {
			return nil, false
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	for _, l := range b {
		if l.Var() == v {
			continue
		}
		if seen[l.Negation()] {
			return nil, false
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out, true
}

// EliminateBoundedResolution eliminates v by resolving every clause
// containing v positively against every clause containing it negatively,
// provided the product does not grow the clause count beyond
// growthBound. It returns the witness needed to reconstruct v's value and
// true, or false if elimination was not attempted (v occurs in no clause,
// or the cost is too high). It does not check whether v is frozen or
// assumed.
func (e *Engine) EliminateBoundedResolution(v Var, growthBound int) (Witness, bool) {
	pos, neg := e.occurrences(v)
	if len(pos) == 0 && len(neg) == 0 {
		return Witness{}, false
	}
	if len(pos)*len(neg) > len(pos)+len(neg)+growthBound {
		return Witness{}, false
	}
	var resolvents [][]Lit
	for _, cp := range pos {
		for _, cn := range neg {
			r, ok := resolve(cp.Lits(), cn.Lits(), v)
			if !ok {
				continue
			}
			if len(r) == 0 {
				e.unsat = true
				return Witness{}, true
			}
			resolvents = append(resolvents, r)
		}
	}
	w := Witness{Var: v}
	for _, c := range pos {
		w.Runs = append(w.Runs, append([]Lit(nil), c.Lits()...))
		e.markGarbage(c)
	}
	for _, c := range neg {
		w.Runs = append(w.Runs, append([]Lit(nil), c.Lits()...))
		e.markGarbage(c)
	}
	for _, r := range resolvents {
		if e.Tracer != nil {
			e.Tracer.AddClause(r)
		}
		if len(r) == 1 {
			e.addUnit(r[0])
			continue
		}
		c := NewIrredundant(e.arena.alloc(r))
		e.irredundant = append(e.irredundant, c)
	}
	e.compact()
	return w, true
}

// ProbeFailedLiterals tries each candidate literal as a level-2 assumption;
// if propagating it leads to a conflict, its negation is a root-level
// implication and is learned as a unit. Returns how many units were found.
func (e *Engine) ProbeFailedLiterals(candidates []Lit) int {
	found := 0
	for _, l := range candidates {
		if e.unsat || e.statusOf(l) != Indet {
			continue
		}
		conflict := e.propagate(l, 2)
		failed := conflict != nil
		e.backtrackTo(1)
		if failed {
			e.addUnit(l.Negation())
			found++
		}
	}
	return found
}

// Vivify tries to shrink c by assuming its literals' negations one at a
// time; once doing so falsifies all remaining literals (a conflict under
// propagation alone, with no decision needed), the literals not yet
// assumed are redundant and c is strengthened to drop them. Returns true if
// c was shortened.
func (e *Engine) Vivify(c *Clause) bool {
	if c.garbage || c.Len() <= 2 {
		return false
	}
	lits := append([]Lit(nil), c.Lits()...)
	kept := make([]Lit, 0, len(lits))
	shrunk := false
	for i, l := range lits {
		conflict := e.propagate(l.Negation(), 2)
		kept = append(kept, l)
		if conflict != nil {
			shrunk = i < len(lits)-1
			e.backtrackTo(1)
			break
		}
	}
	e.backtrackTo(1)
	if !shrunk || len(kept) == len(lits) {
		return false
	}
	wasWatched := c.Len() > 2
	if wasWatched {
		e.watches.unwatch(c)
	}
	c.lits = kept
	if c.Len() == 1 {
		e.addUnit(c.lits[0])
		return true
	}
	e.watches.watch(c)
	return true
}

// BlockedClauses returns every irredundant clause blocked on variable v:
// a clause containing literal l is blocked if every clause containing
// l.Negation() resolves tautologically against it on v. Blocked clauses can
// be removed (with a witness) without changing satisfiability.
func (e *Engine) BlockedClauses(v Var) []*Clause {
	pos, neg := e.occurrences(v)
	var blocked []*Clause
	for _, cp := range pos {
		allTaut := true
		for _, cn := range neg {
			if _, ok := resolve(cp.Lits(), cn.Lits(), v); ok {
				allTaut = false
				break
			}
		}
		if allTaut {
			blocked = append(blocked, cp)
		}
	}
	for _, cn := range neg {
		allTaut := true
		for _, cp := range pos {
			if _, ok := resolve(cn.Lits(), cp.Lits(), v); ok {
				allTaut = false
				break
			}
		}
		if allTaut {
			blocked = append(blocked, cn)
		}
	}
	return blocked
}
