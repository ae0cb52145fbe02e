package recurbench

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// AssertionConfig contains tolerances for recurrence invariants.
type AssertionConfig struct {
	// Relative tolerance on the unit-sum invariant
	SumTolerance float64

	// Absolute tolerance for idempotence and trajectory comparison
	ValueTolerance float64
}

// DefaultAssertionConfig returns conservative tolerances.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		SumTolerance:   1e-9,
		ValueTolerance: 1e-12,
	}
}

// AssertUnitSum verifies the entries of v sum to 1 within tolerance.
//
// Invariant: every reachable state is a probability-like distribution,
//
//	Σᵢ vᵢ = 1
func AssertUnitSum(t *testing.T, v []float64, cfg AssertionConfig) {
	t.Helper()

	sum := floats.Sum(v)
	if math.Abs(sum-1) > cfg.SumTolerance {
		t.Errorf("Sum invariant violated: Σv = %.15f (tolerance: %g)", sum, cfg.SumTolerance)
		return
	}

	t.Logf("✓ Unit sum: Σv = %.15f", sum)
}

// AssertNonNegative verifies every entry of v is ≥ 0. The normalizer's
// floor makes every entry strictly positive, so zero or negative
// entries indicate a broken normalization path.
func AssertNonNegative(t *testing.T, v []float64) {
	t.Helper()

	for i, x := range v {
		if x < 0 {
			t.Errorf("Non-negativity violated: v[%d] = %g", i, x)
			return
		}
	}

	t.Logf("✓ Non-negative: all %d entries ≥ 0", len(v))
}

// AssertIdempotentNormalize verifies normalize(normalize(v)) equals
// normalize(v) within tolerance for the given input.
func AssertIdempotentNormalize(t *testing.T, v []float64, cfg AssertionConfig) {
	t.Helper()

	once := Normalize(v)
	twice := Normalize(once)

	for i := range once {
		if math.Abs(once[i]-twice[i]) > cfg.ValueTolerance {
			t.Errorf("Idempotence violated at index %d: %.15g != %.15g",
				i, once[i], twice[i])
			return
		}
	}

	t.Logf("✓ Idempotent: normalize∘normalize = normalize (n=%d)", len(v))
}

// AssertHistoryBounded verifies the distance history has one entry per
// executed step and never exceeds the step budget.
func AssertHistoryBounded(t *testing.T, o Outcome, cfg Config) {
	t.Helper()

	if len(o.History) > cfg.Steps {
		t.Errorf("History exceeds step budget: %d > %d", len(o.History), cfg.Steps)
	}

	switch o.Phase {
	case PhaseSucceeded:
		if o.Step != len(o.History) {
			t.Errorf("Recurrence step %d does not match history length %d", o.Step, len(o.History))
		}
	case PhaseExhausted:
		if len(o.History) != cfg.Steps {
			t.Errorf("Exhausted run executed %d steps, budget was %d", len(o.History), cfg.Steps)
		}
	default:
		t.Errorf("Run stopped in non-terminal phase %s", o.Phase)
	}

	t.Logf("✓ History bounded: %d entries ≤ budget %d", len(o.History), cfg.Steps)
}

// AssertDeterministic verifies two runs with the same config produce
// identical outcomes, including the full distance history.
func AssertDeterministic(t *testing.T, cfg Config) {
	t.Helper()

	first, err := Run(cfg)
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	second, err := Run(cfg)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if first.Phase != second.Phase || first.Step != second.Step {
		t.Errorf("Terminal state differs: (%s, %d) vs (%s, %d)",
			first.Phase, first.Step, second.Phase, second.Step)
	}
	if len(first.History) != len(second.History) {
		t.Fatalf("History length differs: %d vs %d", len(first.History), len(second.History))
	}
	for i := range first.History {
		if first.History[i] != second.History[i] {
			t.Errorf("History diverges at step %d: %.17g vs %.17g",
				i+1, first.History[i], second.History[i])
			return
		}
	}

	t.Logf("✓ Deterministic: seed %d reproduced %d identical distances", cfg.Seed, len(first.History))
}

// AssertTerminates verifies the driver reaches a terminal phase within
// the step budget.
func AssertTerminates(t *testing.T, cfg Config) {
	t.Helper()

	o, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if o.Phase != PhaseSucceeded && o.Phase != PhaseExhausted {
		t.Errorf("Driver did not terminate: phase = %s", o.Phase)
	}

	AssertHistoryBounded(t, o, cfg)
	t.Logf("✓ Terminated: %s after %d steps", o.Phase, len(o.History))
}

// PrintRunAnalysis outputs a detailed account of an outcome to the
// test log.
func PrintRunAnalysis(t *testing.T, o Outcome, cfg Config) {
	t.Helper()

	t.Logf("\n=== Run Analysis ===")
	t.Logf("Config: dim=%d steps=%d epsilon=%g seed=%d", cfg.Dim, cfg.Steps, cfg.Epsilon, cfg.Seed)
	t.Logf("Phase:  %s", o.Phase)
	if o.Recurred() {
		t.Logf("Recurrence step: %d", o.Step)
	}
	t.Logf("Terminal distance: %.6g", o.Distance)
	t.Logf("Steps executed:    %d", len(o.History))

	if len(o.History) > 0 {
		min, max := o.History[0], o.History[0]
		for _, d := range o.History {
			if d < min {
				min = d
			}
			if d > max {
				max = d
			}
		}
		t.Logf("Distance range:    [%.6g, %.6g]", min, max)
	}

	t.Logf("First distances:   %s", formatDistances(headDistances(o.History, 10)))
	t.Logf("Last distances:    %s", formatDistances(tailDistances(o.History, 10)))
}
