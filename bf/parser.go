package bf

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// formulaAST mirrors the grammar from lowest to highest binding
// precedence: equivalence ("="), implication ("->"), disjunction ("|"),
// conjunction ("&"), negation ("^" prefix), and parenthesized groups or
// bare identifiers at the bottom. Each level's Right field is optional
// so a single Left alone collapses to that subformula.
type formulaAST struct {
	Equiv *equivAST `@@`
}

type equivAST struct {
	Left  *impliesAST `@@`
	Right *equivAST   `( "=" @@ )?`
}

type impliesAST struct {
	Left  *orAST      `@@`
	Right *impliesAST `( "->" @@ )?`
}

type orAST struct {
	Left  *andAST `@@`
	Right *orAST  `( "|" @@ )?`
}

type andAST struct {
	Left  *notAST `@@`
	Right *andAST `( "&" @@ )?`
}

type notAST struct {
	Carets []string `@"^"*`
	Atom   *atomAST `@@`
}

type atomAST struct {
	Ident *string   `  @Ident`
	Group *equivAST `| "(" @@ ")"`
}

var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Punct", Pattern: `[=|&^()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var formulaParser = participle.MustBuild[formulaAST](
	participle.Lexer(formulaLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse reads a boolean formula from r. Operators, from lowest to
// highest priority: "=" (equivalence), "->" (implication), "|"
// (disjunction), "&" (conjunction), and the unary prefix "^" (negation).
// Parentheses group subformulas.
func Parse(r io.Reader) (Formula, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	ast, err := formulaParser.ParseBytes("", data)
	if err != nil {
		return nil, err
	}
	return equivToFormula(ast.Equiv), nil
}

func equivToFormula(e *equivAST) Formula {
	f := impliesToFormula(e.Left)
	if e.Right == nil {
		return f
	}
	return Eq(f, equivToFormula(e.Right))
}

func impliesToFormula(i *impliesAST) Formula {
	f := orToFormula(i.Left)
	if i.Right == nil {
		return f
	}
	return Implies(f, impliesToFormula(i.Right))
}

func orToFormula(o *orAST) Formula {
	f := andToFormula(o.Left)
	if o.Right == nil {
		return f
	}
	return Or(f, orToFormula(o.Right))
}

func andToFormula(a *andAST) Formula {
	f := notToFormula(a.Left)
	if a.Right == nil {
		return f
	}
	return And(f, andToFormula(a.Right))
}

func notToFormula(n *notAST) Formula {
	f := atomToFormula(n.Atom)
	for range n.Carets {
		f = Not(f)
	}
	return f
}

func atomToFormula(a *atomAST) Formula {
	if a.Ident != nil {
		return Var(*a.Ident)
	}
	return equivToFormula(a.Group)
}
