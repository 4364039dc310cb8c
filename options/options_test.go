package options

import "testing"

func TestSetAndGet(t *testing.T) {
	r := NewRegistry()
	if err := r.Set("verbose", 2); err != nil {
		t.Fatalf("Set returned an error: %v", err)
	}
	v, err := r.Get("verbose")
	if err != nil {
		t.Fatalf("Get returned an error: %v", err)
	}
	if v != 2 {
		t.Errorf("Get(verbose) = %v, want 2", v)
	}
}

func TestSetClampsToRange(t *testing.T) {
	r := NewRegistry()
	if err := r.Set("verbose", 99); err != nil {
		t.Fatalf("Set returned an error: %v", err)
	}
	v, _ := r.Get("verbose")
	if v != 3 {
		t.Errorf("expected verbose clamped to its max (3), got %v", v)
	}
	if err := r.Set("verbose", -5); err != nil {
		t.Fatalf("Set returned an error: %v", err)
	}
	v, _ = r.Get("verbose")
	if v != 0 {
		t.Errorf("expected verbose clamped to its min (0), got %v", v)
	}
}

func TestSetUnknownOption(t *testing.T) {
	r := NewRegistry()
	if err := r.Set("nosuchoption", 1); err == nil {
		t.Errorf("expected an error setting an unknown option")
	}
	if _, err := r.Get("nosuchoption"); err == nil {
		t.Errorf("expected an error getting an unknown option")
	}
}

func TestSetWhileFrozen(t *testing.T) {
	r := NewRegistry()
	r.Freeze()
	if err := r.Set("verbose", 1); err == nil {
		t.Errorf("expected Set to fail once the registry is frozen")
	}
	r.Unfreeze()
	if err := r.Set("verbose", 1); err != nil {
		t.Errorf("expected Set to succeed after Unfreeze, got %v", err)
	}
}

func TestSetLongOption(t *testing.T) {
	r := NewRegistry()
	if err := r.SetLongOption("--no-elim"); err != nil {
		t.Fatalf("SetLongOption(--no-elim) failed: %v", err)
	}
	if v, _ := r.Get("elim"); v != 0 {
		t.Errorf("expected elim=0 after --no-elim, got %v", v)
	}
	if err := r.SetLongOption("--elim"); err != nil {
		t.Fatalf("SetLongOption(--elim) failed: %v", err)
	}
	if v, _ := r.Get("elim"); v != 1 {
		t.Errorf("expected elim=1 after --elim, got %v", v)
	}
	if err := r.SetLongOption("--reduceint=500"); err != nil {
		t.Fatalf("SetLongOption(--reduceint=500) failed: %v", err)
	}
	if v, _ := r.Get("reduceint"); v != 500 {
		t.Errorf("expected reduceint=500, got %v", v)
	}
	if err := r.SetLongOption("--bogus"); err == nil {
		t.Errorf("expected an error for an unknown long option")
	}
}

func TestConfigure(t *testing.T) {
	r := NewRegistry()
	if !r.IsValidConfiguration("plain") {
		t.Fatalf("expected 'plain' to be a known configuration")
	}
	if err := r.Configure("plain"); err != nil {
		t.Fatalf("Configure(plain) failed: %v", err)
	}
	if v, _ := r.Get("elim"); v != 0 {
		t.Errorf("expected elim=0 after configure(plain), got %v", v)
	}
	if err := r.Configure("nosuchpreset"); err == nil {
		t.Errorf("expected an error for an unknown configuration")
	}
}

func TestOptimize(t *testing.T) {
	r := NewRegistry()
	if err := r.Optimize(3); err != nil {
		t.Fatalf("Optimize(3) failed: %v", err)
	}
	if v, _ := r.Get("elimbound"); v != 64 {
		t.Errorf("Optimize(3) should set elimbound=64, got %v", v)
	}
	if err := r.Optimize(20); err != nil {
		t.Fatalf("Optimize(20) failed: %v", err)
	}
	if v, _ := r.Get("elimbound"); v != 160 {
		t.Errorf("Optimize clamps its level to 9, expected elimbound=160, got %v", v)
	}
}

func TestAllReflectsLiveValues(t *testing.T) {
	r := NewRegistry()
	if err := r.Set("verbose", 2); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	for _, s := range r.All() {
		if s.Name == "verbose" && s.Default != 2 {
			t.Errorf("All() should reflect the live value for verbose, got %v", s.Default)
		}
	}
}

func TestIsValidOption(t *testing.T) {
	r := NewRegistry()
	if !r.IsValidOption("elim") {
		t.Errorf("expected 'elim' to be a known option")
	}
	if r.IsValidOption("nosuchoption") {
		t.Errorf("did not expect 'nosuchoption' to be known")
	}
	if !r.IsPreprocessingOption("elim") {
		t.Errorf("expected 'elim' to be categorized as inprocessing")
	}
	if r.IsPreprocessingOption("verbose") {
		t.Errorf("did not expect 'verbose' to be categorized as inprocessing")
	}
}
