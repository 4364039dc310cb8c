package engine

import "fmt"

// Clause is a disjunction of literals. Redundant (learned) clauses additionally
// carry a glue/LBD value and an activity score used by reduction.
type Clause struct {
	lits     []Lit
	flags    uint32 // bit 31: redundant, bit 30: locked (protected from reduction)
	glue     uint32
	activity float32
	garbage  bool // marked for removal by compact(), not yet physically removed
}

const (
	redundantFlag uint32 = 1 << 31
	lockedFlag    uint32 = 1 << 30
)

// NewIrredundant builds an original (non-learned) clause.
func NewIrredundant(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// NewRedundant builds a learned clause.
func NewRedundant(lits []Lit) *Clause {
	return &Clause{lits: lits, flags: redundantFlag}
}

// Redundant is true iff c was derived by conflict analysis rather than
// given as input.
func (c *Clause) Redundant() bool { return c.flags&redundantFlag != 0 }

func (c *Clause) lock()        { c.flags |= lockedFlag }
func (c *Clause) unlock()      { c.flags &^= lockedFlag }
func (c *Clause) isLocked() bool { return c.flags&lockedFlag != 0 }

// Glue returns the clause's LBD (Literal Block Distance).
func (c *Clause) Glue() int { return int(c.glue) }

func (c *Clause) setGlue(g int) { c.glue = uint32(g) }

// Len returns the number of literals still in the clause.
func (c *Clause) Len() int { return len(c.lits) }

// Lits returns the clause's literals. Callers must not retain the slice
// across a call that might shrink or relocate the clause.
func (c *Clause) Lits() []Lit { return c.lits }

// Get returns the i-th literal.
func (c *Clause) Get(i int) Lit { return c.lits[i] }

// Set overwrites the i-th literal.
func (c *Clause) Set(i int, l Lit) { c.lits[i] = l }

func (c *Clause) swap(i, j int) { c.lits[i], c.lits[j] = c.lits[j], c.lits[i] }

// Shrink truncates the clause to its first newLen literals.
func (c *Clause) Shrink(newLen int) { c.lits = c.lits[:newLen] }

// CNF renders the clause in DIMACS syntax, terminated by "0".
func (c *Clause) CNF() string {
	res := ""
	for _, l := range c.lits {
		res += fmt.Sprintf("%d ", l.Int())
	}
	return res + "0"
}
