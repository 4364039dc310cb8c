package solver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hadaly-sat/satkit/internal/engine"
)

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

// readInt reads one (possibly negative) integer from r, skipping leading
// whitespace. b holds the last byte read and is updated in place.
func readInt(b *byte, r *bufio.Reader) (res int32, err error) {
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return res, io.EOF
	}
	if err != nil {
		return res, errors.Wrap(err, "reading digit")
	}
	neg := int32(1)
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, errors.Wrap(err, "reading int")
		}
	}
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, errors.Errorf("%q is not a digit", *b)
		}
		res = 10*res + int32(*b-'0')
		*b, err = r.ReadByte()
		if isSpace(*b) {
			break
		}
	}
	return res * neg, err
}

func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return 0, 0, errors.Wrap(err, "reading DIMACS header")
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, errors.Errorf("invalid DIMACS header %q", line)
	}
	nbVars, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "parsing nbvars %q", fields[1])
	}
	nbClauses, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "parsing nbclauses %q", fields[2])
	}
	return nbVars, nbClauses, nil
}

// ReadDIMACS parses a DIMACS CNF stream and feeds every clause it contains
// into s via Add, in order. s must be in a state where Add is valid
// (UNKNOWN or CONFIGURING). Returns the declared variable/clause counts.
func (s *Solver) ReadDIMACS(f io.Reader) (nbVars, nbClauses int, err error) {
	r := bufio.NewReader(f)
	b, err := r.ReadByte()
	for err == nil {
		switch {
		case b == 'c':
			for err == nil && b != '\n' {
				b, err = r.ReadByte()
			}
		case b == 'p':
			nbVars, nbClauses, err = parseHeader(r)
			if err != nil {
				return 0, 0, errors.Wrap(err, "parsing DIMACS header")
			}
			s.Reserve(int32(nbVars))
		default:
			for {
				val, ierr := readInt(&b, r)
				if ierr == io.EOF {
					return nbVars, nbClauses, nil
				}
				if ierr != nil {
					return 0, 0, errors.Wrap(ierr, "parsing clause")
				}
				s.Add(val)
				if val == 0 {
					break
				}
			}
		}
		if err == nil {
			b, err = r.ReadByte()
		}
	}
	if err != io.EOF {
		return 0, 0, errors.Wrap(err, "reading DIMACS stream")
	}
	return nbVars, nbClauses, nil
}

// WriteDIMACS renders the live formula (irredundant clauses only, with
// root-level fixed literals written as unit clauses) in DIMACS syntax.
func (s *Solver) WriteDIMACS(w io.Writer) error {
	var lines []string
	nbClauses := 0
	for i := 0; i < s.ext.Vars.Len(); i++ {
		ext := s.ext.Vars.External(engine.Var(i))
		if f := s.ext.Fixed(ext); f != 0 {
			lines = append(lines, fmt.Sprintf("%d 0", int32(f)*ext))
			nbClauses++
		}
	}
	s.TraverseClauses(clauseIteratorFunc(func(lits []int32) bool {
		strs := make([]string, len(lits)+1)
		for i, l := range lits {
			strs[i] = fmt.Sprintf("%d", l)
		}
		strs[len(lits)] = "0"
		lines = append(lines, strings.Join(strs, " "))
		nbClauses++
		return true
	}))
	nbVars := s.ext.Vars.Len()
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", nbVars, nbClauses); err != nil {
		return errors.Wrap(err, "writing DIMACS header")
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "writing DIMACS clause")
		}
	}
	return nil
}
