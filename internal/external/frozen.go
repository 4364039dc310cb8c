package external

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/hadaly-sat/satkit/internal/engine"
)

// FrozenRefs implements the header's freeze/melt reference counting: a
// variable with a positive ref-count must not be eliminated, since some
// external caller still wants to query its value after the fact (e.g. via
// repeated incremental assume/solve cycles).
type FrozenRefs struct {
	refs map[engine.Var]int
}

// NewFrozenRefs creates an empty ref-count table.
func NewFrozenRefs() *FrozenRefs {
	return &FrozenRefs{refs: make(map[engine.Var]int)}
}

// Freeze increments v's ref-count.
func (f *FrozenRefs) Freeze(v engine.Var) { f.refs[v]++ }

// Melt decrements v's ref-count, removing the entry once it reaches zero.
func (f *FrozenRefs) Melt(v engine.Var) {
	if f.refs[v] <= 1 {
		delete(f.refs, v)
		return
	}
	f.refs[v]--
}

// Frozen reports whether v currently has a positive ref-count.
func (f *FrozenRefs) Frozen(v engine.Var) bool { return f.refs[v] > 0 }

// Snapshot returns the current frozen set, united with extra (e.g. the
// variables under active assumption), as a single membership set for
// inprocessing's exclusion test.
func (f *FrozenRefs) Snapshot(extra mapset.Set[engine.Var]) mapset.Set[engine.Var] {
	out := mapset.NewThreadUnsafeSet[engine.Var]()
	for v, n := range f.refs {
		if n > 0 {
			out.Add(v)
		}
	}
	if extra != nil {
		out = out.Union(extra)
	}
	return out
}
