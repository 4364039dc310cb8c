package solver

import (
	"io"

	"github.com/hadaly-sat/satkit/proof"
)

// TraceProofASCII attaches a DRAT proof tracer writing the textual grammar
// to w, translating every traced literal back to this Solver's external
// numbering. Equivalent to TraceProof(proof.NewASCIIWriter(w, ...)) without
// requiring the caller to reach into internal literal-mapping plumbing.
func (s *Solver) TraceProofASCII(w io.Writer) {
	s.TraceProof(proof.NewASCIIWriter(w, s.ext.Vars.ToExternal))
}

// TraceProofBinary attaches a DRAT proof tracer writing the binary grammar
// to w, translating every traced literal back to this Solver's external
// numbering.
func (s *Solver) TraceProofBinary(w io.Writer) {
	s.TraceProof(proof.NewBinaryWriter(w, s.ext.Vars.ToExternal))
}
