package vcdgen

import (
	"github.com/pkg/errors"
)

const (
	KiB = 1024
	MiB = 1024 * KiB
)

// Spec configures the behaviour of the VCD generator.
type Spec struct {
	// SingleBitSignals is the number of 1-bit wires to declare.
	SingleBitSignals int `yaml:"singleBitSignals"`

	// MultiBitSignals is the number of vector wires to declare. Their widths
	// are taken round-robin from Widths.
	MultiBitSignals int   `yaml:"multiBitSignals"`
	Widths          []int `yaml:"widths"`

	// Timescale is written verbatim into the $timescale declaration.
	Timescale string `yaml:"timescale"`

	// TimeStep is how much simulated time passes between two cycles.
	TimeStep uint64 `yaml:"timeStep"`

	// ToggleBudget is the upper bound of single-bit changes per cycle. Every
	// cycle changes between ToggleBudget/2 and ToggleBudget single-bit signals.
	ToggleBudget int `yaml:"toggleBudget"`

	// Seed makes the value change stream repeatable. Header and $dumpvars do
	// not depend on it.
	Seed int64 `yaml:"seed"`

	// TargetBytes is the minimal size of the dump. Generation stops after the
	// first cycle that reaches it, so the dump overshoots by at most one cycle.
	TargetBytes uint64 `yaml:"targetBytes"`

	// ReportInterval is how often, in bytes written, progress is logged.
	ReportInterval uint64 `yaml:"reportInterval"`

	// Root is the module hierarchy. Signals are spread over all its scopes.
	Root Scope `yaml:"root"`
}

// DefaultSpec is the default configuration with specified target size.
func DefaultSpec(targetBytes uint64) Spec {
	return Spec{
		SingleBitSignals: 64,
		MultiBitSignals:  32,
		Widths:           []int{8, 16, 32, 64},
		Timescale:        "1ns",
		TimeStep:         5,
		ToggleBudget:     30,
		Seed:             42,
		TargetBytes:      targetBytes,
		ReportInterval:   10 * MiB,
		Root:             DefaultScopes(),
	}
}

// Validate performs basic sanity checks.
func (s Spec) Validate() error {
	if s.SingleBitSignals < 0 {
		return errors.New("singleBitSignals must not be negative")
	}
	if s.MultiBitSignals < 0 {
		return errors.New("multiBitSignals must not be negative")
	}
	if s.MultiBitSignals > 0 && len(s.Widths) == 0 {
		return errors.New("widths must not be empty when multi-bit signals are requested")
	}
	for _, w := range s.Widths {
		switch w {
		case 8, 16, 32, 64:
		default:
			return errors.Errorf("unsupported width %d, expected one of 8, 16, 32, 64", w)
		}
	}
	if s.Timescale == "" {
		return errors.New("timescale must not be empty")
	}
	if s.TimeStep == 0 {
		return errors.New("timeStep must be positive")
	}
	if s.ToggleBudget < 0 {
		return errors.New("toggleBudget must not be negative")
	}
	if s.ReportInterval == 0 {
		return errors.New("reportInterval must be positive")
	}
	return validateScope(s.Root)
}

func validateScope(s Scope) error {
	if !validScopeName(s.Name) {
		return errors.Errorf("invalid scope name %q", s.Name)
	}
	seen := make(map[string]struct{}, len(s.Children))
	for _, c := range s.Children {
		// Signals are owned by dotted path, so siblings must differ.
		if _, dup := seen[c.Name]; dup {
			return errors.Errorf("scope %s: duplicate child scope %q", s.Name, c.Name)
		}
		seen[c.Name] = struct{}{}
		if err := validateScope(c); err != nil {
			return errors.Wrapf(err, "scope %s", s.Name)
		}
	}
	return nil
}
