// Command recurbench runs a single recurrence verification with the
// standard parameters (dim=300, 5000 steps, ε=1e-3, seed 42) and
// prints the result to stdout.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/alexshd/recurbench"
	"github.com/lmittmann/tint"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	cfg := recurbench.DefaultConfig()
	slog.Info("starting recurrence verification",
		"dim", cfg.Dim,
		"steps", cfg.Steps,
		"epsilon", cfg.Epsilon,
		"seed", cfg.Seed)

	start := time.Now()
	outcome, err := recurbench.Run(cfg)
	if err != nil {
		slog.Error("verification failed", "err", err)
		os.Exit(1)
	}

	slog.Info("verification complete",
		"phase", string(outcome.Phase),
		"steps", len(outcome.History),
		"distance", outcome.Distance,
		"elapsed", time.Since(start))

	recurbench.Report(os.Stdout, outcome)
}
