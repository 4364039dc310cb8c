package explain

import (
	"strconv"
	"strings"
)

// Problem is a conjunction of clauses, represented independently of the
// solver's own encoding on purpose: this package exists to audit why a
// formula is unsatisfiable, so its own code stays simple enough to read
// in one sitting even though that costs it some performance.
type Problem struct {
	Clauses   [][]int
	NbVars    int
	nbClauses int
	units     []int // per variable: 0 unbound, 1 true, -1 false
	Options   Options
	tagged    []bool // clauses used while proving the problem unsat, lazily built
}

func (pb *Problem) initTagged() {
	pb.tagged = make([]bool, pb.nbClauses)
	for i, clause := range pb.Clauses {
		pb.tagged[i] = len(clause) == 1 // unit clauses are almost always load-bearing
	}
}

func (pb *Problem) clone() *Problem {
	dup := &Problem{
		Clauses:   make([][]int, pb.nbClauses),
		NbVars:    pb.NbVars,
		nbClauses: pb.nbClauses,
		units:     make([]int, pb.NbVars),
	}
	copy(dup.units, pb.units)
	for i, clause := range pb.Clauses {
		dup.Clauses[i] = append([]int(nil), clause...)
	}
	return dup
}

// restore drops every clause appended past the original set, i.e. any
// RUP lemma accumulated while checking a certificate.
func (pb *Problem) restore() {
	pb.Clauses = pb.Clauses[:pb.nbClauses]
}

// unsat reports whether unit propagation alone, from the bindings
// currently in pb.units, derives the empty clause. It mutates pb.units
// and pb.tagged along the way.
func (pb *Problem) unsat() bool {
	done := make([]bool, len(pb.Clauses))
	changed := true
	for changed {
		changed = false
		for i, clause := range pb.Clauses {
			if done[i] {
				continue
			}
			nbUnbound, unit, satisfied := 0, 0, false
			for _, lit := range clause {
				v := lit
				if v < 0 {
					v = -v
				}
				switch binding := pb.units[v-1]; {
				case binding == 0:
					nbUnbound++
					if nbUnbound == 1 {
						unit = lit
					} else {
						satisfied = false
						break
					}
				case binding*lit == v:
					satisfied = true
				}
				if satisfied || nbUnbound > 1 {
					break
				}
			}
			if satisfied {
				done[i] = true
				continue
			}
			if nbUnbound == 0 {
				if i < pb.nbClauses {
					pb.tagged[i] = true
				}
				return true
			}
			if nbUnbound == 1 {
				if unit < 0 {
					pb.units[-unit-1] = -1
				} else {
					pb.units[unit-1] = 1
				}
				done[i] = true
				if i < pb.nbClauses {
					pb.tagged[i] = true
				}
				changed = true
			}
		}
	}
	return false
}

// CNF renders the problem in DIMACS syntax.
func (pb *Problem) CNF() string {
	var b strings.Builder
	b.WriteString("p cnf ")
	b.WriteString(strconv.Itoa(pb.NbVars))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(pb.nbClauses))
	for i := 0; i < pb.nbClauses; i++ {
		b.WriteByte('\n')
		for _, lit := range pb.Clauses[i] {
			b.WriteString(strconv.Itoa(lit))
			b.WriteByte(' ')
		}
		b.WriteByte('0')
	}
	return b.String()
}
