// Package explain provides facilities to check and understand UNSAT
// instances: certificate validation, unsatisfiable-subset extraction, and
// minimal unsatisfiable subset (MUS) computation. It deliberately does
// not reuse the solver package's clause representation, so that the
// checking code stays simple enough to audit independently of the
// engine it is checking.
package explain

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hadaly-sat/satkit/solver"
)

// Options holds flags that may be set before checking or extracting.
type Options struct {
	// Verbose makes resolution progress reported on stdout.
	Verbose bool
}

// unsat reports whether the problem's clauses, together with the
// negation of clause's literals asserted as units, derive the empty
// clause through unit propagation alone. It is the RUP check: clause is
// assumed to already be implied by the problem.
func unsat(pb *Problem, clause []int) bool {
	saved := make([]int, len(pb.units))
	copy(saved, pb.units)
	for _, lit := range clause {
		if lit > 0 {
			pb.units[lit-1] = -1
		} else {
			pb.units[-lit-1] = 1
		}
	}
	res := pb.unsat()
	pb.units = saved
	return res
}

// UnsatChan consumes RUP-certificate lines from ch and checks each one
// against the problem as it arrives, appending it once verified. Returns
// false as soon as a line fails the RUP check, and true once a verified
// line is the empty clause. Exhausting ch without ever deriving the empty
// clause also returns true: the lines read so far are not checked to
// make the problem UNSAT on their own.
func (pb *Problem) UnsatChan(ch chan string) (valid bool, err error) {
	defer pb.restore()
	pb.initTagged()
	for line := range ch {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			continue // not a clause line
		}
		clause, err := parseClause(fields)
		if err != nil {
			return false, err
		}
		if !unsat(pb, clause) {
			return false, nil
		}
		if len(clause) == 0 {
			return true, nil
		}
		pb.Clauses = append(pb.Clauses, clause)
	}
	return true, nil
}

// Unsat checks a RUP certificate read from cert the same way UnsatChan
// does, but synchronously from a reader instead of a channel.
func (pb *Problem) Unsat(cert io.Reader) (valid bool, err error) {
	defer pb.restore()
	pb.initTagged()
	sc := bufio.NewScanner(cert)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			continue
		}
		clause, err := parseClause(fields)
		if err != nil {
			return false, err
		}
		if !unsat(pb, clause) {
			return false, nil
		}
		pb.Clauses = append(pb.Clauses, clause)
	}
	if err := sc.Err(); err != nil {
		return false, errors.Wrap(err, "reading certificate")
	}
	return true, nil
}

// UnsatSubset returns an unsatisfiable subset of the problem: not
// guaranteed to be a MUS (some of its clauses might still be droppable
// without making it satisfiable again), but cheap to compute since it
// calls the solver exactly once. It drives a Solver with its own proof
// trace attached, and feeds the trace straight into UnsatChan to both
// validate it and tag which original clauses were actually used.
func (pb *Problem) UnsatSubset() (subset *Problem, err error) {
	s := solver.New()
	s.Reserve(int32(pb.NbVars))
	for _, clause := range pb.Clauses {
		s.AddClause(toInt32s(clause)...)
	}

	pr, pw := io.Pipe()
	s.TraceProofASCII(pw)

	statusCh := make(chan int, 1)
	go func() {
		statusCh <- s.Solve()
		pw.Close()
	}()

	lines := make(chan string)
	go func() {
		sc := bufio.NewScanner(pr)
		for sc.Scan() {
			lines <- sc.Text()
		}
		close(lines)
	}()

	valid, checkErr := pb.UnsatChan(lines)
	status := <-statusCh
	if checkErr != nil {
		return nil, errors.Wrap(checkErr, "validating proof trace")
	}
	if !valid || status == 10 {
		return nil, errors.New("problem is not UNSAT")
	}

	subset = &Problem{NbVars: pb.NbVars}
	for i, clause := range pb.Clauses {
		if pb.tagged[i] {
			subset.Clauses = append(subset.Clauses, clause)
			subset.nbClauses++
		}
	}
	return subset, nil
}

func toInt32s(clause []int) []int32 {
	out := make([]int32, len(clause))
	for i, lit := range clause {
		out[i] = int32(lit)
	}
	return out
}
