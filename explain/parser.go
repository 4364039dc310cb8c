package explain

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseClause parses a DIMACS clause line already split into fields.
func parseClause(fields []string) ([]int, error) {
	clause := make([]int, 0, len(fields)-1)
	for _, raw := range fields {
		lit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing clause %v", fields)
		}
		if lit != 0 {
			clause = append(clause, lit)
		}
	}
	return clause, nil
}

// ParseCNF parses a DIMACS CNF stream into a Problem.
func ParseCNF(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	var pb Problem
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c":
			continue
		case "p":
			if err := pb.parseHeader(fields); err != nil {
				return nil, errors.Wrapf(err, "parsing header %q", sc.Text())
			}
		default:
			if err := pb.parseClause(fields); err != nil {
				return nil, errors.Wrapf(err, "parsing clause %q", sc.Text())
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading problem")
	}
	return &pb, nil
}

func (pb *Problem) parseHeader(fields []string) error {
	if len(fields) != 4 {
		return errors.Errorf("expected 4 fields, got %d", len(fields))
	}
	var err error
	pb.NbVars, err = strconv.Atoi(fields[2])
	if err != nil {
		return errors.Wrapf(err, "invalid number of vars %q", fields[2])
	}
	if pb.NbVars < 0 {
		return errors.Errorf("negative number of vars %d", pb.NbVars)
	}
	pb.units = make([]int, pb.NbVars)
	pb.nbClauses, err = strconv.Atoi(fields[3])
	if err != nil {
		return errors.Wrapf(err, "invalid number of clauses %q", fields[3])
	}
	if pb.nbClauses < 0 {
		return errors.Errorf("negative number of clauses %d", pb.nbClauses)
	}
	pb.Clauses = make([][]int, 0, pb.nbClauses)
	return nil
}

func (pb *Problem) parseClause(fields []string) error {
	clause, err := parseClause(fields)
	if err != nil {
		return err
	}
	pb.Clauses = append(pb.Clauses, clause)
	if len(clause) == 1 {
		lit := clause[0]
		v := lit
		if v < 0 {
			v = -v
		}
		if v > pb.NbVars {
			return errors.Errorf("literal %d exceeds declared %d vars", lit, pb.NbVars)
		}
		if lit > 0 {
			pb.units[v-1] = 1
		} else {
			pb.units[v-1] = -1
		}
	}
	return nil
}
