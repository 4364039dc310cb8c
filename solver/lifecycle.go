package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hadaly-sat/satkit/internal/engine"
)

// Copy returns a deep-enough clone of s: its irredundant clauses (root-level
// fixed literals included, as unit clauses), its option values, and its
// inprocessing flags. Redundant (learned) clauses
// and pending assumptions are not copied, matching the documented
// contract. Valid from UNKNOWN.
func (s *Solver) Copy() (*Solver, error) {
	s.require("Copy", Unknown)
	dst := New()
	dst.state = Unknown
	for _, spec := range s.options.All() {
		v, _ := s.options.Get(spec.Name)
		dst.options.Unfreeze()
		if err := dst.options.Set(spec.Name, v); err != nil {
			return nil, errors.Wrap(err, "copying option values")
		}
	}
	dst.options.Freeze()
	var copyErr error
	for i := 0; i < s.ext.Vars.Len(); i++ {
		ext := s.ext.Vars.External(engine.Var(i))
		switch s.ext.Fixed(ext) {
		case 1:
			dst.AddClause(ext)
		case -1:
			dst.AddClause(-ext)
		}
	}
	s.TraverseClauses(clauseIteratorFunc(func(lits []int32) bool {
		dst.AddClause(lits...)
		return true
	}))
	if copyErr != nil {
		return nil, copyErr
	}
	return dst, nil
}

type clauseIteratorFunc func(lits []int32) bool

func (f clauseIteratorFunc) Clause(lits []int32) bool { return f(lits) }

// ReadSolution reads a competition-format solution file ("SAT"/"UNSAT"
// header followed by "v"-prefixed literal lines, or a single line of
// literals) and returns the literals it lists. This is a test/debug
// convenience, not used by Solve itself.
func ReadSolution(r io.Reader) ([]int32, error) {
	var lits []int32
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line == "SAT" || line == "UNSAT" || line == "INDETERMINATE" {
			continue
		}
		line = strings.TrimPrefix(line, "v ")
		line = strings.TrimPrefix(line, "v")
		for _, tok := range strings.Fields(line) {
			n, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing solution literal %q", tok)
			}
			if n == 0 {
				continue
			}
			lits = append(lits, int32(n))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading solution")
	}
	return lits, nil
}

// Build is a static, non-instance report of how this library identifies
// itself — the header's documented build()/usage() style report, without
// compiler/version metadata this repo does not track.
func Build() string { return "satkit incremental CDCL SAT engine" }

// Usage returns a short usage summary of the CLI-facing option surface.
func Usage() string {
	return "set(name, value) / set_long_option(\"--name[=value]\") / configure(preset) / optimize(level)"
}

// Configurations lists the named option presets understood by Configure.
func Configurations() []string { return []string{"plain", "sat", "unsat"} }

// Resources returns a human-readable line describing the solver's current
// memory footprint in terms of live clause counts (the header's richer
// process-level rusage report has no portable Go stdlib equivalent across
// platforms and is out of scope here).
func (s *Solver) Resources() string {
	nb := len(s.ext.Engine.IrredundantClauses())
	return "irredundant clauses: " + strconv.Itoa(nb)
}
