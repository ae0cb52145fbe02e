package recurbench

import (
	"fmt"
	"io"
	"strings"
)

// Report renders a human-readable account of one outcome: the terminal
// marker, the head and tail of the distance history, and a fixed
// interpretation note. It is the only place output formatting lives;
// the driver itself is pure.
func Report(w io.Writer, o Outcome) {
	fmt.Fprintf(w, "\n=== Recurrence Verification ===\n\n")

	switch o.Phase {
	case PhaseSucceeded:
		fmt.Fprintf(w, "[SUCCESS] Recurrence achieved at step %d\n", o.Step)
		fmt.Fprintf(w, "Distance from initial state: %.6g\n", o.Distance)
	default:
		fmt.Fprintf(w, "[WARNING] Recurrence threshold not reached.\n")
		fmt.Fprintf(w, "Final distance: %.6g\n", o.Distance)
	}

	fmt.Fprintf(w, "\nFirst 10 distances: %s\n", formatDistances(headDistances(o.History, 10)))
	fmt.Fprintf(w, "Last 10 distances:  %s\n", formatDistances(tailDistances(o.History, 10)))

	fmt.Fprintf(w, "\nInterpretation:\n")
	fmt.Fprintf(w, "If recurrence was achieved, the trajectory returned within epsilon of its start.\n")
	fmt.Fprintf(w, "If not, recurrence was not detected within the step budget but remains possible.\n")
}

// ReportEnsemble renders aggregate statistics for an ensemble of runs.
func ReportEnsemble(w io.Writer, stats EnsembleStatistics) {
	fmt.Fprintf(w, "\n=== Ensemble Summary ===\n\n")
	fmt.Fprintf(w, "Runs:           %d\n", stats.Runs)
	fmt.Fprintf(w, "Recurred:       %d (%.1f%%)\n", stats.Recurred, stats.HitRate*100)
	if stats.Recurred > 0 {
		fmt.Fprintf(w, "Mean step:      %.1f\n", stats.MeanStep)
	}
	fmt.Fprintf(w, "Min distance:   %.6g\n", stats.MinDistance)
	fmt.Fprintf(w, "Mean distance:  %.6g\n", stats.MeanDistance)
}

func headDistances(history []float64, n int) []float64 {
	if len(history) < n {
		n = len(history)
	}
	return history[:n]
}

func tailDistances(history []float64, n int) []float64 {
	if len(history) < n {
		n = len(history)
	}
	return history[len(history)-n:]
}

func formatDistances(distances []float64) string {
	parts := make([]string, len(distances))
	for i, d := range distances {
		parts[i] = fmt.Sprintf("%.6g", d)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
