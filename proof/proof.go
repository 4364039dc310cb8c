// Package proof implements DRAT proof tracing: every clause the engine
// adds or deletes is forwarded here and rendered in either the ASCII or
// binary DRAT grammar. It is grounded on gophersat's
// explain.UnsatSubset Certified/CertChan hook (solver/explain/check.go),
// generalized from emitting a single empty-clause line on UNSAT to full
// addition/deletion emission.
package proof

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/hadaly-sat/satkit/internal/engine"
)

// Tracer receives clause events from the engine. It satisfies
// engine.Tracer.
type Tracer interface {
	AddClause(lits []engine.Lit)
	DeleteClause(lits []engine.Lit)
	Flush() error
	Close() error
}

// ASCIIWriter emits the textual DRAT grammar: additions as a bare literal
// line, deletions prefixed with "d ", both terminated by "0".
type ASCIIWriter struct {
	w   *bufio.Writer
	vm  func(engine.Lit) int32
	err error
}

// NewASCIIWriter wraps w, using toExternal to render internal literals in
// the caller's original numbering.
func NewASCIIWriter(w io.Writer, toExternal func(engine.Lit) int32) *ASCIIWriter {
	return &ASCIIWriter{w: bufio.NewWriter(w), vm: toExternal}
}

func (a *ASCIIWriter) writeLine(prefix string, lits []engine.Lit) {
	if a.err != nil {
		return
	}
	if prefix != "" {
		if _, a.err = a.w.WriteString(prefix); a.err != nil {
			return
		}
	}
	for _, l := range lits {
		if _, a.err = a.w.WriteString(itoa(a.vm(l)) + " "); a.err != nil {
			return
		}
	}
	if _, a.err = a.w.WriteString("0\n"); a.err != nil {
		return
	}
	a.err = a.w.Flush()
}

// AddClause emits an addition line.
func (a *ASCIIWriter) AddClause(lits []engine.Lit) { a.writeLine("", lits) }

// DeleteClause emits a deletion line.
func (a *ASCIIWriter) DeleteClause(lits []engine.Lit) { a.writeLine("d ", lits) }

// Flush pushes buffered bytes to the underlying writer.
func (a *ASCIIWriter) Flush() error {
	if a.err != nil {
		return errors.Wrap(a.err, "proof trace write failed")
	}
	return a.w.Flush()
}

// Close flushes buffered output. It does not close the underlying writer,
// which stays owned by the caller.
func (a *ASCIIWriter) Close() error {
	if err := a.Flush(); err != nil {
		return err
	}
	return nil
}

func itoa(i int32) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [12]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// BinaryWriter emits the binary DRAT grammar: each literal is encoded as
// 2*|lit| + sign-bit in a base-128 varint, additions have no marker byte,
// deletions are preceded by 0x64 ('d'), and each clause is terminated by a
// zero byte.
type BinaryWriter struct {
	w   *bufio.Writer
	vm  func(engine.Lit) int32
	err error
}

// NewBinaryWriter wraps w using toExternal for literal translation.
func NewBinaryWriter(w io.Writer, toExternal func(engine.Lit) int32) *BinaryWriter {
	return &BinaryWriter{w: bufio.NewWriter(w), vm: toExternal}
}

func (b *BinaryWriter) putVarint(u uint32) {
	for u >= 0x80 {
		b.w.WriteByte(byte(u&0x7f) | 0x80)
		u >>= 7
	}
	b.w.WriteByte(byte(u))
}

func (b *BinaryWriter) writeClause(marker byte, lits []engine.Lit) {
	if b.err != nil {
		return
	}
	if marker != 0 {
		if b.err = b.w.WriteByte(marker); b.err != nil {
			return
		}
	}
	for _, l := range lits {
		ext := b.vm(l)
		var u uint32
		if ext < 0 {
			u = uint32(-ext)*2 + 1
		} else {
			u = uint32(ext) * 2
		}
		b.putVarint(u)
	}
	b.err = b.w.WriteByte(0)
}

// AddClause emits a binary addition record.
func (b *BinaryWriter) AddClause(lits []engine.Lit) { b.writeClause(0, lits) }

// DeleteClause emits a binary deletion record.
func (b *BinaryWriter) DeleteClause(lits []engine.Lit) { b.writeClause('d', lits) }

// Flush pushes buffered bytes to the underlying writer.
func (b *BinaryWriter) Flush() error {
	if b.err != nil {
		return errors.Wrap(b.err, "binary proof trace write failed")
	}
	return b.w.Flush()
}

// Close flushes the writer.
func (b *BinaryWriter) Close() error { return b.Flush() }
