/*
Package solver gives access to an incremental CDCL SAT solver through an
IPASIR-style contract: add clauses and assumptions, solve, then read back a
model or an unsatisfiable core, repeating as many times as needed without
rebuilding the solver from scratch.

Describing a problem

A problem is built up literal by literal. The following feeds in

    p cnf 3 2
    1 2 0
    -1 -2 3 0

by hand:

    s := solver.New()
    s.AddClause(1, 2)
    s.AddClause(-1, -2, 3)

or, equivalently, from a DIMACS stream:

    s := solver.New()
    _, _, err := s.ReadDIMACS(f)

Solving incrementally

    switch s.Solve() {
    case 10: // satisfiable
        v1 := s.Val(1)
    case 20: // unsatisfiable
        // nothing further can be learned without retracting a clause
    case 0: // no conclusion (terminated)
    }

Assumptions let the same solver be reused across many closely related
queries without re-adding the bulk of the formula:

    s.Assume(1)
    s.Assume(-2)
    if s.Solve() == 20 {
        failed := s.Failed(1) // true iff assumption 1 was part of the core
    }
*/
package solver
