package recurbench

import "gonum.org/v1/gonum/floats"

// WeightFloor is the smallest admissible entry of a state vector.
// Clamping to a positive floor before dividing by the sum keeps every
// weight strictly positive and makes normalization total: even an
// all-zero or partially negative input normalizes to a valid
// distribution.
const WeightFloor = 1e-15

// Normalize clamps every entry of v to at least WeightFloor and divides
// by the sum of the clamped entries, so the result sums to 1. The input
// is not modified. Defined for every finite input; idempotent within
// floating tolerance.
func Normalize(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	normalizeInPlace(out)
	return out
}

// normalizeInPlace is the hot-path variant used by the stepper.
func normalizeInPlace(v []float64) {
	for i, x := range v {
		if x < WeightFloor {
			v[i] = WeightFloor
		}
	}
	// Sum is ≥ len(v)·WeightFloor > 0, so the division is always safe.
	floats.Scale(1/floats.Sum(v), v)
}
