package explain

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hadaly-sat/satkit/solver"
)

// A MUS (minimal unsatisfiable subset) is an unsatisfiable subset of a
// problem's clauses such that removing any one of them makes the rest
// satisfiable. MUSes are useful for understanding why a problem is
// UNSAT, but computing one is expensive: it requires several calls to
// the solver on parts of the original problem.

// MUSInsertion computes a MUS by repeatedly trying to extend a growing
// hard set with clauses from an already-known unsatisfiable subset,
// backing off to the last clause that tipped it back to UNSAT. It is
// efficient in many cases since it keeps reusing the same solver in a
// row, but on a problem that is already a MUS it performs on the order
// of n*(n-1) solver calls.
func (pb *Problem) MUSInsertion() (mus *Problem, err error) {
	subset, err := pb.UnsatSubset()
	if err != nil {
		return nil, errors.Wrap(err, "extracting MUS")
	}
	mus = &Problem{NbVars: subset.NbVars}
	remaining := subset.Clauses
	for {
		if pb.Options.Verbose {
			fmt.Printf("c mus currently contains %d clauses\n", mus.nbClauses)
		}
		s := solver.New()
		s.Reserve(int32(mus.NbVars))
		for _, clause := range mus.Clauses {
			s.AddClause(toInt32s(clause)...)
		}
		status := s.Solve()
		if status == 20 {
			return mus, nil
		}
		idx := 0
		for status == 10 {
			s.AddClause(toInt32s(remaining[idx])...)
			idx++
			status = s.Solve()
		}
		idx-- // went one clause too far; that one is the one that mattered
		mus.Clauses = append(mus.Clauses, remaining[idx])
		mus.nbClauses++
		if pb.Options.Verbose {
			fmt.Printf("c removing %d/%d clause(s)\n", len(remaining)-idx, len(remaining))
		}
		remaining = remaining[:idx]
	}
}

// MUSDeletion computes a MUS by relaxing one clause at a time: each
// clause gets its own relax literal appended, and a single pass tries
// negating each relax assumption in turn, keeping the relaxation only if
// the problem stays UNSAT without that clause. It is guaranteed to make
// exactly n solver calls for n clauses, each starting the search from
// the previous call's state rather than from scratch, unlike insertion.
func (pb *Problem) MUSDeletion() (mus *Problem, err error) {
	subset, err := pb.UnsatSubset()
	if err != nil {
		return nil, errors.Wrap(err, "extracting MUS")
	}

	relaxedVars := make([]int32, subset.nbClauses)
	clauses := make([][]int, subset.nbClauses)
	nextVar := int32(subset.NbVars) + 1
	for i, clause := range subset.Clauses {
		relaxedVars[i] = nextVar
		widened := append(append([]int(nil), clause...), int(nextVar))
		clauses[i] = widened
		nextVar++
	}

	s := solver.New()
	s.Reserve(nextVar - 1)
	for _, clause := range clauses {
		s.AddClause(toInt32s(clause)...)
	}

	// At first every relax literal is assumed false, i.e. every clause is
	// fully enforced (its relax literal contributes nothing).
	relaxed := make([]bool, subset.nbClauses)
	for i := range clauses {
		relaxed[i] = true // tentatively relax clause i this round
		status := assumeAndSolve(s, relaxedVars, relaxed)
		if status == 10 {
			relaxed[i] = false // still needed: put it back
			if pb.Options.Verbose {
				fmt.Printf("c clause %d/%d: kept\n", i+1, subset.nbClauses)
			}
		} else if pb.Options.Verbose {
			fmt.Printf("c clause %d/%d: removed\n", i+1, subset.nbClauses)
		}
	}

	mus = &Problem{NbVars: subset.NbVars}
	for i, isRelaxed := range relaxed {
		if !isRelaxed {
			clause := clauses[i][:len(clauses[i])-1] // drop relax lit
			mus.Clauses = append(mus.Clauses, clause)
		}
	}
	mus.nbClauses = len(mus.Clauses)
	return mus, nil
}

// assumeAndSolve pushes one assumption per clause — the clause's relax
// literal if it is marked relaxed in this round, its negation otherwise —
// and returns the resulting Solve status.
func assumeAndSolve(s *solver.Solver, relaxedVars []int32, relaxed []bool) int {
	for i, v := range relaxedVars {
		if relaxed[i] {
			s.Assume(v)
		} else {
			s.Assume(-v)
		}
	}
	return s.Solve()
}

// MUS returns a minimal unsatisfiable subset of the problem, using
// whichever algorithm is currently preferred. Call MUSInsertion or
// MUSDeletion directly to pin the algorithm.
func (pb *Problem) MUS() (mus *Problem, err error) {
	return pb.MUSDeletion()
}
