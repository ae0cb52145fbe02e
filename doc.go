// Package recurbench verifies Poincaré-style recurrence of a
// probability-like state vector under a fixed pseudo-unitary transform.
//
// # Overview
//
// A normalized random state s₀ of dimension dim evolves under a random
// orthonormal matrix Q:
//
//	s_{t+1} = normalize(Q · s_t)
//
// Recurrence is declared when the trajectory returns within ε of its
// starting point:
//
//	‖s_t − s₀‖ < ε
//
// The driver runs until that threshold is met (SUCCEEDED) or a fixed
// step budget is consumed (EXHAUSTED), recording the distance to s₀ at
// every step.
//
// # Quick Start
//
// Run one simulation with the standard parameters (dim=300, 5000 steps,
// ε=1e-3, seed 42):
//
//	outcome, err := recurbench.Run(recurbench.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if outcome.Recurred() {
//	    fmt.Printf("recurrence at step %d (distance %g)\n", outcome.Step, outcome.Distance)
//	}
//
//	recurbench.Report(os.Stdout, outcome)
//
// # The State Machine
//
// Each run moves through exactly one path:
//
//	RUNNING → SUCCEEDED   distance dropped below ε at some step t ≤ budget
//	RUNNING → EXHAUSTED   budget consumed, threshold never met
//
// EXHAUSTED is a domain outcome, not an error: the computation is total
// over its input domain. Errors are reported only for invalid
// configuration (non-positive dimension or budget, negative ε).
//
// # Determinism
//
// The seed is an explicit parameter, never process-global state. The
// same seed reproduces the same initial state, the same transform, and
// the same distance history bit-for-bit within one binary. The QR
// sign/ordering convention is library-defined; it does not affect the
// recurrence property.
//
// # Ensembles
//
// Independent runs with derived seeds can execute in parallel; the
// transform of each run is immutable after construction:
//
//	outcomes, err := recurbench.RunEnsemble(cfg, 32)
//	stats := recurbench.CalculateEnsembleStatistics(outcomes)
//	fmt.Printf("hit rate: %.1f%%\n", stats.HitRate*100)
//
// # Testing
//
// Use the exported assertions to validate the invariants of a run:
//
//	func TestMyRun(t *testing.T) {
//	    cfg := recurbench.DefaultConfig()
//
//	    // Same seed, same trajectory
//	    recurbench.AssertDeterministic(t, cfg)
//
//	    // Terminates within the step budget
//	    recurbench.AssertTerminates(t, cfg)
//	}
package recurbench
