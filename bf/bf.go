// Package bf builds arbitrary boolean formulas (not necessarily in
// clausal form) and converts them to CNF for solving with the solver
// package, tracking which original variable names landed at which
// DIMACS index along the way.
package bf

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/hadaly-sat/satkit/solver"
)

// Formula is any boolean formula, not necessarily in CNF.
type Formula interface {
	nnf() Formula
	String() string
	Eval(model map[string]bool) bool
}

// Solve converts f to CNF and feeds it to a fresh Solver, returning the
// satisfying assignment keyed by variable name, or nil if f is
// unsatisfiable.
func Solve(f Formula) map[string]bool {
	return asCnf(f).solve()
}

// Dimacs writes the DIMACS CNF rendering of f to w. The mapping from
// original variable names to their DIMACS index is recorded as "c
// name=idx" comment lines between the header and the clauses.
func Dimacs(f Formula, w io.Writer) error {
	cnf := asCnf(f)
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", len(cnf.vars.all), len(cnf.clauses)); err != nil {
		return fmt.Errorf("writing DIMACS header: %w", err)
	}
	var names []string
	for v := range cnf.vars.pb {
		if !v.dummy {
			names = append(names, v.name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "c %s=%d\n", name, cnf.vars.pb[pbVar(name)]); err != nil {
			return fmt.Errorf("writing DIMACS variable map: %w", err)
		}
	}
	for _, clause := range cnf.clauses {
		parts := make([]string, len(clause))
		for i, lit := range clause {
			parts[i] = strconv.Itoa(lit)
		}
		if _, err := fmt.Fprintf(w, "%s 0\n", strings.Join(parts, " ")); err != nil {
			return fmt.Errorf("writing DIMACS clause: %w", err)
		}
	}
	return nil
}

type trueConst struct{}

// True is the tautology constant.
var True Formula = trueConst{}

func (trueConst) nnf() Formula                    { return True }
func (trueConst) String() string                  { return "⊤" }
func (trueConst) Eval(model map[string]bool) bool { return true }

type falseConst struct{}

// False is the contradiction constant.
var False Formula = falseConst{}

func (falseConst) nnf() Formula                    { return False }
func (falseConst) String() string                  { return "⊥" }
func (falseConst) Eval(model map[string]bool) bool { return false }

// Var builds a named boolean variable.
func Var(name string) Formula { return pbVar(name) }

func pbVar(name string) variable    { return variable{name: name} }
func dummyVar(name string) variable { return variable{name: name, dummy: true} }

type variable struct {
	name  string
	dummy bool
}

func (v variable) nnf() Formula   { return lit{v: v} }
func (v variable) String() string { return v.name }

func (v variable) Eval(model map[string]bool) bool {
	b, ok := model[v.name]
	if !ok {
		panic(fmt.Errorf("model lacks a binding for variable %s", v.name))
	}
	return b
}

type lit struct {
	v      variable
	signed bool
}

func (l lit) nnf() Formula { return l }

func (l lit) String() string {
	if l.signed {
		return "not(" + l.v.name + ")"
	}
	return l.v.name
}

func (l lit) Eval(model map[string]bool) bool {
	b := l.v.Eval(model)
	if l.signed {
		return !b
	}
	return b
}

// Not negates a subformula.
func Not(f Formula) Formula { return not{f} }

type not [1]Formula

func (n not) nnf() Formula {
	switch f := n[0].(type) {
	case variable:
		l := f.nnf().(lit)
		l.signed = true
		return l
	case lit:
		f.signed = !f.signed
		return f
	case not:
		return f[0].nnf()
	case and:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}.nnf()
		}
		return or(subs).nnf()
	case or:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}.nnf()
		}
		return and(subs).nnf()
	case trueConst:
		return False
	case falseConst:
		return True
	default:
		panic("bf: not of unsupported formula type")
	}
}

func (n not) String() string                  { return "not(" + n[0].String() + ")" }
func (n not) Eval(model map[string]bool) bool { return !n[0].Eval(model) }

// And builds a conjunction of subformulas.
func And(subs ...Formula) Formula { return and(subs) }

type and []Formula

func (a and) nnf() Formula {
	var res and
	for _, s := range a {
		switch sub := s.nnf().(type) {
		case and:
			res = append(res, sub...)
		case trueConst:
		case falseConst:
			return False
		default:
			res = append(res, sub)
		}
	}
	switch len(res) {
	case 0:
		return False
	case 1:
		return res[0]
	default:
		return res
	}
}

func (a and) String() string {
	strs := make([]string, len(a))
	for i, f := range a {
		strs[i] = f.String()
	}
	return "and(" + strings.Join(strs, ", ") + ")"
}

func (a and) Eval(model map[string]bool) (res bool) {
	for i, s := range a {
		if i == 0 {
			res = s.Eval(model)
		} else {
			res = res && s.Eval(model)
		}
	}
	return res
}

// Or builds a disjunction of subformulas.
func Or(subs ...Formula) Formula { return or(subs) }

type or []Formula

func (o or) nnf() Formula {
	var res or
	for _, s := range o {
		switch sub := s.nnf().(type) {
		case or:
			res = append(res, sub...)
		case falseConst:
		case trueConst:
			return True
		default:
			res = append(res, sub)
		}
	}
	switch len(res) {
	case 0:
		return True
	case 1:
		return res[0]
	default:
		return res
	}
}

func (o or) String() string {
	strs := make([]string, len(o))
	for i, f := range o {
		strs[i] = f.String()
	}
	return "or(" + strings.Join(strs, ", ") + ")"
}

func (o or) Eval(model map[string]bool) (res bool) {
	for i, s := range o {
		if i == 0 {
			res = s.Eval(model)
		} else {
			res = res || s.Eval(model)
		}
	}
	return res
}

// Implies builds "f1 implies f2".
func Implies(f1, f2 Formula) Formula { return or{not{f1}, f2} }

// Eq builds "f1 is equivalent to f2".
func Eq(f1, f2 Formula) Formula { return and{or{not{f1}, f2}, or{f1, not{f2}}} }

// Xor builds "exactly one of f1, f2 holds".
func Xor(f1, f2 Formula) Formula { return and{or{not{f1}, not{f2}}, or{f1, f2}} }

// Unique builds a formula asserting that exactly one of the named
// variables is true, introducing dummy variables as needed to keep the
// clause count roughly linear rather than quadratic for large sets.
func Unique(vars ...string) Formula {
	pbVars := make([]variable, len(vars))
	for i, v := range vars {
		pbVars[i] = pbVar(v)
	}
	return uniqueRec(pbVars...)
}

// uniqueSmall is the quadratic at-most-one + at-least-one encoding,
// suitable when len(vars) is small (typically <= 4).
func uniqueSmall(vars ...variable) Formula {
	forms := make([]Formula, len(vars))
	for i, v := range vars {
		forms[i] = v
	}
	clauses := make([]Formula, 1, 1+(len(vars)*len(vars)-1)/2)
	clauses[0] = Or(forms...)
	for i := 0; i < len(vars)-1; i++ {
		for j := i + 1; j < len(vars); j++ {
			clauses = append(clauses, Or(Not(forms[i]), Not(forms[j])))
		}
	}
	return And(clauses...)
}

// uniqueRec arranges vars into a roughly square grid of dummy
// line/column variables and recurses on each axis, turning an O(n^2)
// pairwise encoding into a roughly linear number of clauses.
func uniqueRec(vars ...variable) Formula {
	if len(vars) <= 4 {
		return uniqueSmall(vars...)
	}
	sqrt := math.Sqrt(float64(len(vars)))
	nbLines := int(sqrt + 0.5)
	nbCols := int(math.Ceil(sqrt))
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.name
	}
	tag := strings.Join(names, "-")

	lines := make([]variable, nbLines)
	lineMembers := make([][]Formula, nbLines)
	for i := range lines {
		lines[i] = dummyVar(fmt.Sprintf("line-%d-%s", i, tag))
	}
	cols := make([]variable, nbCols)
	colMembers := make([][]Formula, nbCols)
	for i := range cols {
		cols[i] = dummyVar(fmt.Sprintf("col-%d-%s", i, tag))
	}
	for i, v := range vars {
		lineMembers[i/nbCols] = append(lineMembers[i/nbCols], v)
		colMembers[i%nbCols] = append(colMembers[i%nbCols], v)
	}

	res := make([]Formula, 0, 2*len(vars)+1)
	for i := range lines {
		res = append(res, Eq(lines[i], Or(lineMembers[i]...)))
	}
	for i := range cols {
		res = append(res, Eq(cols[i], Or(colMembers[i]...)))
	}
	res = append(res, uniqueRec(lines...), uniqueRec(cols...))
	return And(res...)
}

// vars tracks the mapping from a formula's variables to DIMACS indices.
type vars struct {
	all map[variable]int // every variable, including dummies introduced while flattening to CNF
	pb  map[variable]int // only the variables that appeared in the original formula
}

func (vs *vars) litValue(l lit) int {
	val, ok := vs.all[l.v]
	if !ok {
		val = len(vs.all) + 1
		vs.all[l.v] = val
		vs.pb[l.v] = val
	}
	if l.signed {
		return -val
	}
	return val
}

func (vs *vars) dummy() int {
	val := len(vs.all) + 1
	vs.all[dummyVar(fmt.Sprintf("dummy-%d", val))] = val
	return val
}

// cnf is a boolean formula flattened into a conjunction of disjunctions,
// ready to hand to a Solver.
type cnf struct {
	vars    vars
	clauses [][]int
}

func (c *cnf) solve() map[string]bool {
	s := solver.New()
	s.Reserve(int32(len(c.vars.all)))
	for _, clause := range c.clauses {
		lits := make([]int32, len(clause))
		for i, lit := range clause {
			lits[i] = int32(lit)
		}
		s.AddClause(lits...)
	}
	if s.Solve() != 10 {
		return nil
	}
	model := make(map[string]bool, len(c.vars.pb))
	for v, idx := range c.vars.pb {
		model[v.name] = s.Val(int32(idx)) > 0
	}
	return model
}

func asCnf(f Formula) *cnf {
	vs := vars{all: make(map[variable]int), pb: make(map[variable]int)}
	return &cnf{vars: vs, clauses: cnfRec(f.nnf(), &vs)}
}

// cnfRec flattens an NNF formula into clauses, introducing a dummy
// variable per and-inside-or the way the Tseitin transformation does.
func cnfRec(f Formula, vs *vars) [][]int {
	switch f := f.(type) {
	case lit:
		return [][]int{{vs.litValue(f)}}
	case and:
		var res [][]int
		for _, sub := range f {
			res = append(res, cnfRec(sub, vs)...)
		}
		return res
	case or:
		var res [][]int
		var lits []int
		for _, sub := range f {
			switch sub := sub.(type) {
			case lit:
				lits = append(lits, vs.litValue(sub))
			case and:
				d := vs.dummy()
				lits = append(lits, d)
				for _, sub2 := range sub {
					sub2Clauses := cnfRec(sub2, vs)
					sub2Clauses[0] = append(sub2Clauses[0], -d)
					res = append(res, sub2Clauses...)
				}
			default:
				panic("bf: or directly nesting another or after nnf")
			}
		}
		return append(res, lits)
	case trueConst:
		return [][]int{}
	case falseConst:
		return [][]int{{}}
	default:
		panic("bf: unsupported NNF formula type")
	}
}
