// Package options implements the runtime option registry: a statically
// declared table of clamped, typed, named values, mutable through the
// set/set_long_option/configure/optimize surface the header documents.
// This deliberately stays on a hand-rolled table rather than a
// general-purpose CLI flag library (see DESIGN.md): the registry needs
// runtime string-keyed mutation with range clamping and bulk named
// presets, which is a different contract than parse-once CLI flags.
package options

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind is the declared type of an option's value.
type Kind int

const (
	// Bool options only take 0 or 1.
	Bool Kind = iota
	// Int options take any integer within [Min, Max].
	Int
	// Double options take any float64 within [Min, Max].
	Double
)

// Category groups options for reporting purposes (e.g. "--options").
type Category string

const (
	CategoryGeneral       Category = "general"
	CategorySearch        Category = "search"
	CategoryRestart       Category = "restart"
	CategoryReduce        Category = "reduce"
	CategoryInprocessing  Category = "inprocessing"
)

// Spec declares one option.
type Spec struct {
	Name     string
	Kind     Kind
	Min, Max float64
	Default  float64
	Category Category
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// defaultSpecs mirrors the header's documented option set closely enough
// to exercise every verb in the registry surface (set/get/configure/
// optimize), without attempting to reproduce CaDiCaL's exact tuning
// constants, which are not part of this system's observable contract.
var defaultSpecs = []Spec{
	{Name: "verbose", Kind: Int, Min: 0, Max: 3, Default: 0, Category: CategoryGeneral},
	{Name: "restartint", Kind: Int, Min: 1, Max: 1e6, Default: 2, Category: CategoryRestart},
	{Name: "reduceint", Kind: Int, Min: 10, Max: 1e7, Default: 2000, Category: CategoryReduce},
	{Name: "elim", Kind: Bool, Min: 0, Max: 1, Default: 1, Category: CategoryInprocessing},
	{Name: "subsume", Kind: Bool, Min: 0, Max: 1, Default: 1, Category: CategoryInprocessing},
	{Name: "probe", Kind: Bool, Min: 0, Max: 1, Default: 1, Category: CategoryInprocessing},
	{Name: "vivify", Kind: Bool, Min: 0, Max: 1, Default: 1, Category: CategoryInprocessing},
	{Name: "block", Kind: Bool, Min: 0, Max: 1, Default: 1, Category: CategoryInprocessing},
	{Name: "elimbound", Kind: Int, Min: 0, Max: 1 << 20, Default: 16, Category: CategoryInprocessing},
}

// presets groups multiple option values under one configure() name.
var presets = map[string]map[string]float64{
	"plain": {"elim": 0, "subsume": 0, "probe": 0, "vivify": 0, "block": 0},
	"sat":   {"elim": 1, "subsume": 1, "probe": 1, "vivify": 1, "block": 1},
	"unsat": {"elim": 1, "subsume": 1, "probe": 1, "vivify": 0, "block": 0, "elimbound": 64},
}

// Registry holds live option values, keyed by name.
type Registry struct {
	specs  map[string]Spec
	values map[string]float64
	frozen bool // true once Solve has started; set disallowed per the state machine
}

// NewRegistry builds a registry at its documented defaults.
func NewRegistry() *Registry {
	r := &Registry{specs: make(map[string]Spec), values: make(map[string]float64)}
	for _, s := range defaultSpecs {
		r.specs[s.Name] = s
		r.values[s.Name] = s.Default
	}
	return r
}

// Freeze/Unfreeze mark the registry read-only/mutable, mirroring the
// "set is only valid before the first add/assume" contract; the facade
// calls these at the appropriate state transitions.
func (r *Registry) Freeze()   { r.frozen = true }
func (r *Registry) Unfreeze() { r.frozen = false }

// IsValidOption reports whether name is a known option.
func (r *Registry) IsValidOption(name string) bool {
	_, ok := r.specs[name]
	return ok
}

// IsPreprocessingOption reports whether name belongs to the inprocessing
// category.
func (r *Registry) IsPreprocessingOption(name string) bool {
	s, ok := r.specs[name]
	return ok && s.Category == CategoryInprocessing
}

// Set assigns value to name, clamped to its declared range. It returns an
// error if name is unknown or the registry is frozen.
func (r *Registry) Set(name string, value float64) error {
	if r.frozen {
		return errors.Errorf("option %q cannot be set while the solver is not in the CONFIGURING state", name)
	}
	s, ok := r.specs[name]
	if !ok {
		return errors.Errorf("unknown option %q", name)
	}
	r.values[name] = clamp(value, s.Min, s.Max)
	return nil
}

// Get returns the current value of name.
func (r *Registry) Get(name string) (float64, error) {
	v, ok := r.values[name]
	if !ok {
		return 0, errors.Errorf("unknown option %q", name)
	}
	return v, nil
}

// SetLongOption parses a CLI-style "--name", "--no-name", or "--name=val"
// string and applies it. Boolean options accept the no-prefix negation
// form; others require "=val".
func (r *Registry) SetLongOption(arg string) error {
	arg = strings.TrimPrefix(arg, "--")
	if name, ok := cut(arg, "="); ok {
		val, err := strconv.ParseFloat(name.value, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid value for option %q", name.name)
		}
		return r.Set(name.name, val)
	}
	if strings.HasPrefix(arg, "no-") {
		name := strings.TrimPrefix(arg, "no-")
		if s, ok := r.specs[name]; ok && s.Kind == Bool {
			return r.Set(name, 0)
		}
		return errors.Errorf("unknown boolean option %q", name)
	}
	if s, ok := r.specs[arg]; ok && s.Kind == Bool {
		return r.Set(arg, 1)
	}
	return errors.Errorf("unknown long option %q", arg)
}

type nameValue struct {
	name, value string
}

func cut(s, sep string) (nameValue, bool) {
	i := strings.Index(s, sep)
	if i < 0 {
		return nameValue{}, false
	}
	return nameValue{name: s[:i], value: s[i+len(sep):]}, true
}

// IsValidConfiguration reports whether name is a known preset.
func (r *Registry) IsValidConfiguration(name string) bool {
	_, ok := presets[name]
	return ok
}

// Configure applies every value in the named preset.
func (r *Registry) Configure(name string) error {
	preset, ok := presets[name]
	if !ok {
		return errors.Errorf("unknown configuration %q", name)
	}
	for k, v := range preset {
		if err := r.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Optimize sets elimbound to 16*(v+1), with v clamped to [0, 9]. Nothing
// else changes; the solver's inprocessing does not read elimbound, so its
// effort is the same at every level.
func (r *Registry) Optimize(v int) error {
	if v < 0 {
		v = 0
	}
	if v > 9 {
		v = 9
	}
	return r.Set("elimbound", float64(16*(v+1)))
}

// All returns a stable-ordered snapshot of every spec, with Default
// overridden to reflect its current live value, for reporting (--options).
func (r *Registry) All() []Spec {
	out := make([]Spec, 0, len(defaultSpecs))
	for _, s := range defaultSpecs {
		s.Default = r.values[s.Name]
		out = append(out, s)
	}
	return out
}
