package solver

import "github.com/hadaly-sat/satkit/internal/engine"

// Lookahead returns a literal expected to be a good splitting point — the
// unassigned variable occurring in the most live clauses, signed toward
// its majority polarity — or 0 if every variable is already assigned.
// Valid from UNKNOWN.
func (s *Solver) Lookahead() int32 {
	s.require("Lookahead", Unknown)
	best, bestScore := engine.Var(-1), -1
	bestSign := false
	for v := engine.Var(0); v < engine.Var(s.ext.Engine.NbVars); v++ {
		if s.ext.Engine.Value(v.Lit()) != engine.Indet {
			continue
		}
		pos, neg := 0, 0
		for _, c := range s.ext.Engine.IrredundantClauses() {
			for _, l := range c.Lits() {
				if l.Var() != v {
					continue
				}
				if l.IsPositive() {
					pos++
				} else {
					neg++
				}
				break
			}
		}
		score := pos + neg
		if score > bestScore {
			best, bestScore = v, score
			bestSign = neg > pos
		}
	}
	if best == -1 {
		return 0
	}
	ext := s.ext.Vars.External(best)
	if bestSign {
		return -ext
	}
	return ext
}

// GenerateCubes splits the current formula into at most maxCubes cubes
// (conjunctions of assumption literals), each recursively refined by
// Lookahead to at least minDepth literals when the formula does not
// resolve by unit propagation alone first. Valid from UNKNOWN.
func (s *Solver) GenerateCubes(maxCubes, minDepth int) [][]int32 {
	s.require("GenerateCubes", Unknown)
	s.ext.ClearAssumptions()
	var cubes [][]int32
	var recurse func(path []int32)
	recurse = func(path []int32) {
		if len(cubes) >= maxCubes {
			return
		}
		if len(path) >= minDepth {
			cubes = append(cubes, append([]int32(nil), path...))
			return
		}
		lit := s.lookaheadExcluding(path)
		if lit == 0 {
			cubes = append(cubes, append([]int32(nil), path...))
			return
		}
		recurse(append(path, lit))
		recurse(append(path, -lit))
	}
	recurse(nil)
	return cubes
}

// lookaheadExcluding is Lookahead run with path's literals pushed as
// assumptions, so variables assigned by path or by unit propagation from
// it are skipped and each branch considers the next free variable rather
// than always the same global best one. It returns 0 when path conflicts
// under propagation.
func (s *Solver) lookaheadExcluding(path []int32) int32 {
	fixed := make(map[int32]bool, len(path))
	for _, l := range path {
		v := l
		if v < 0 {
			v = -v
		}
		fixed[v] = true
	}
	for _, l := range path {
		if s.ext.Engine.PushAssumption(s.ext.Vars.ToInternal(l)) != nil {
			s.ext.Engine.PopAssumptions()
			return 0
		}
	}
	defer s.ext.Engine.PopAssumptions()
	lit := s.Lookahead()
	if lit == 0 {
		return 0
	}
	v := lit
	if v < 0 {
		v = -v
	}
	if fixed[v] {
		return 0
	}
	return lit
}
