package recurbench

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// System holds the fixed ingredients of one recurrence run: the
// normalized initial state and the orthonormal transform. Both are a
// deterministic function of (dim, seed) and immutable after
// construction, so a System may be shared read-only between runs.
type System struct {
	Dim  int
	Seed uint64

	initial   *mat.VecDense
	transform *mat.Dense
}

// NewSystem draws the initial state and the transform from a single
// pseudo-random stream seeded with seed.
//
// The state is dim uniform values in [0,1), floor-clamped and scaled to
// unit sum. The transform is the orthonormal Q factor of the QR
// decomposition of a dim×dim standard-normal matrix; the sign and
// ordering convention of the factorization is library-defined but
// stable within one binary, which is all reproducibility requires.
//
// dim must be positive; Config.validate enforces this before any
// System is built.
func NewSystem(dim int, seed uint64) *System {
	src := rand.NewSource(seed)

	// Initial state: one multivariate draw over [0,1)^dim.
	bounds := make([]r1.Interval, dim)
	for i := range bounds {
		bounds[i] = r1.Interval{Min: 0, Max: 1}
	}
	state := distmv.NewUniform(bounds, src).Rand(nil)
	normalizeInPlace(state)

	// Transform: standard-normal entries, orthonormalized via QR.
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	raw := make([]float64, dim*dim)
	for i := range raw {
		raw[i] = normal.Rand()
	}

	var qr mat.QR
	qr.Factorize(mat.NewDense(dim, dim, raw))
	var q mat.Dense
	qr.QTo(&q)

	return &System{
		Dim:       dim,
		Seed:      seed,
		initial:   mat.NewVecDense(dim, state),
		transform: &q,
	}
}

// Initial returns a copy of the normalized starting state.
func (s *System) Initial() *mat.VecDense {
	return mat.VecDenseCopyOf(s.initial)
}

// Transform returns the orthonormal transform as a read-only matrix.
func (s *System) Transform() mat.Matrix {
	return s.transform
}

// Step applies the transform to state and renormalizes the product.
// The input state and the transform are left untouched; the new state
// is returned.
func (s *System) Step(state *mat.VecDense) *mat.VecDense {
	next := mat.NewVecDense(s.Dim, nil)
	next.MulVec(s.transform, state)
	normalizeInPlace(next.RawVector().Data)
	return next
}

// DistanceFromInitial returns the Euclidean distance between state and
// the starting state s₀.
func (s *System) DistanceFromInitial(state *mat.VecDense) float64 {
	return floats.Distance(state.RawVector().Data, s.initial.RawVector().Data, 2)
}
