package recurbench

import (
	"fmt"
	"sync"
)

// Phase identifies where the recurrence driver stopped.
type Phase string

const (
	PhaseRunning   Phase = "RUNNING"   // step budget not consumed, threshold not met
	PhaseSucceeded Phase = "SUCCEEDED" // distance dropped below ε
	PhaseExhausted Phase = "EXHAUSTED" // budget consumed without recurrence
)

// Config controls one recurrence simulation.
type Config struct {
	Dim     int     // State vector dimension
	Steps   int     // Step budget (transform applications)
	Epsilon float64 // Recurrence threshold on ‖s_t − s₀‖
	Seed    uint64  // Explicit RNG seed (no process-global state)
}

// DefaultConfig returns the standard verification parameters.
func DefaultConfig() Config {
	return Config{
		Dim:     300,
		Steps:   5000,
		Epsilon: 1e-3,
		Seed:    42,
	}
}

func (c Config) validate() error {
	if c.Dim <= 0 {
		return fmt.Errorf("dimension must be positive, got %d", c.Dim)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("step budget must be positive, got %d", c.Steps)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("epsilon must be non-negative, got %g", c.Epsilon)
	}
	return nil
}

// Outcome is the structured result of one run. Presentation is a
// separate concern (see Report); the driver never prints.
type Outcome struct {
	Phase    Phase
	Step     int       // 1-indexed step of recurrence; 0 when exhausted
	Distance float64   // distance at the terminal step
	History  []float64 // one entry per executed step, append-only
}

// Recurred reports whether the trajectory returned within ε of the
// starting state inside the step budget.
func (o Outcome) Recurred() bool {
	return o.Phase == PhaseSucceeded
}

// Run executes one recurrence simulation and returns its outcome.
// The only error path is invalid configuration; exhausting the step
// budget is a domain outcome, not an error.
func Run(cfg Config) (Outcome, error) {
	if err := cfg.validate(); err != nil {
		return Outcome{}, fmt.Errorf("invalid config: %w", err)
	}
	return runSystem(NewSystem(cfg.Dim, cfg.Seed), cfg), nil
}

// runSystem drives the state machine: step, measure, append, test.
func runSystem(sys *System, cfg Config) Outcome {
	state := sys.Initial()
	history := make([]float64, 0, cfg.Steps)

	for t := 1; t <= cfg.Steps; t++ {
		state = sys.Step(state)
		dist := sys.DistanceFromInitial(state)
		history = append(history, dist)

		if dist < cfg.Epsilon {
			return Outcome{
				Phase:    PhaseSucceeded,
				Step:     t,
				Distance: dist,
				History:  history,
			}
		}
	}

	return Outcome{
		Phase:    PhaseExhausted,
		Distance: history[len(history)-1],
		History:  history,
	}
}

// RunEnsemble executes runs independent simulations in parallel, one
// goroutine per run. Run i uses seed cfg.Seed+i, so the ensemble is as
// deterministic as a single run; each goroutine owns its own System
// and state, so no locking is needed.
func RunEnsemble(cfg Config, runs int) ([]Outcome, error) {
	if runs <= 0 {
		return nil, fmt.Errorf("ensemble size must be positive, got %d", runs)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	outcomes := make([]Outcome, runs)
	var wg sync.WaitGroup

	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			c := cfg
			c.Seed = cfg.Seed + uint64(i)
			outcomes[i] = runSystem(NewSystem(c.Dim, c.Seed), c)
		}(i)
	}

	wg.Wait()
	return outcomes, nil
}

// EnsembleStatistics summarizes recurrence behavior across an ensemble.
type EnsembleStatistics struct {
	Runs         int
	Recurred     int
	HitRate      float64 // Recurred / Runs
	MeanStep     float64 // mean recurrence step over recurred runs (0 if none)
	MinDistance  float64 // smallest terminal distance across the ensemble
	MeanDistance float64 // mean terminal distance across the ensemble
}

// CalculateEnsembleStatistics aggregates the outcomes of RunEnsemble.
func CalculateEnsembleStatistics(outcomes []Outcome) EnsembleStatistics {
	if len(outcomes) == 0 {
		return EnsembleStatistics{}
	}

	stats := EnsembleStatistics{
		Runs:        len(outcomes),
		MinDistance: outcomes[0].Distance,
	}

	var stepSum, distSum float64
	for _, o := range outcomes {
		distSum += o.Distance
		if o.Distance < stats.MinDistance {
			stats.MinDistance = o.Distance
		}
		if o.Recurred() {
			stats.Recurred++
			stepSum += float64(o.Step)
		}
	}

	stats.HitRate = float64(stats.Recurred) / float64(stats.Runs)
	stats.MeanDistance = distSum / float64(stats.Runs)
	if stats.Recurred > 0 {
		stats.MeanStep = stepSum / float64(stats.Recurred)
	}

	return stats
}
