package solver

import (
	"bytes"
	"strings"
	"testing"
)

const tinyCNF = `c a comment line
p cnf 3 2
1 2 0
-1 -2 3 0
`

func TestReadDIMACSFeedsClauses(t *testing.T) {
	s := New()
	nbVars, nbClauses, err := s.ReadDIMACS(strings.NewReader(tinyCNF))
	if err != nil {
		t.Fatalf("ReadDIMACS returned an error: %v", err)
	}
	if nbVars != 3 || nbClauses != 2 {
		t.Errorf("ReadDIMACS() = (%d, %d), want (3, 2)", nbVars, nbClauses)
	}
	if got := s.Solve(); got != 10 {
		t.Fatalf("Solve() = %d, want 10", got)
	}
}

func TestReadDIMACSRejectsMalformedHeader(t *testing.T) {
	s := New()
	_, _, err := s.ReadDIMACS(strings.NewReader("p cnf\n"))
	if err == nil {
		t.Errorf("expected an error for a malformed header")
	}
}

func TestWriteDIMACSRoundTrips(t *testing.T) {
	s := New()
	s.AddClause(1, 2)
	s.AddClause(-1, -2, 3)
	var buf bytes.Buffer
	if err := s.WriteDIMACS(&buf); err != nil {
		t.Fatalf("WriteDIMACS returned an error: %v", err)
	}
	out := New()
	nbVars, nbClauses, err := out.ReadDIMACS(&buf)
	if err != nil {
		t.Fatalf("re-reading written DIMACS failed: %v", err)
	}
	if nbVars != 3 || nbClauses != 2 {
		t.Errorf("round trip = (%d, %d), want (3, 2)", nbVars, nbClauses)
	}
	if got := out.Solve(); got != 10 {
		t.Errorf("re-read Solve() = %d, want 10", got)
	}
}
