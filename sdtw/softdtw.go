package sdtw

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SoftDTW — differentiable Dynamic Time Warping
//
// Description:
//
//	Soft-DTW replaces the hard minimum of classic DTW with a smoothed
//	soft-minimum at temperature Gamma, producing a scalar distance that
//	is differentiable everywhere with respect to the cost matrix. The
//	gradient makes the distance usable as a loss in gradient-based
//	learning over time series.
//
// Algorithm Outline (forward, Compute):
//  1. Let D be the n×m cost matrix. Allocate (n+1)×(m+1) matrix R.
//  2. Initialize:
//     R[0][0] = 0
//     R[i][0] = +∞ for i=1..n
//     R[0][j] = +∞ for j=1..m
//  3. For i = 1..n:
//     For j = 1..m:
//     if |i-j| > Band (when Band >= 0): R[i][j] = +∞
//     else: R[i][j] = D[i-1][j-1] +
//     softmin(R[i-1][j-1], R[i-1][j], R[i][j-1])
//  4. distance = R[n][m]. R is retained for Grad.
//
// Algorithm Outline (backward, Grad):
//  1. Build (n+2)×(m+2) buffers R', D', E. R' mirrors R with every +∞
//     replaced by -∞, far border -∞, R'[n+1][m+1] = R[n][m]. D' holds D
//     in its interior and 0 on the padding. E[n+1][m+1] = 1.
//  2. For i = n..1, j = m..1 (descending), in-band cells only:
//     w↓ = exp((R'[i+1][j]   - R'[i][j] - D'[i+1][j])   / Gamma)
//     w→ = exp((R'[i][j+1]   - R'[i][j] - D'[i][j+1])   / Gamma)
//     w↘ = exp((R'[i+1][j+1] - R'[i][j] - D'[i+1][j+1]) / Gamma)
//     E[i][j] = E[i+1][j]·w↓ + E[i][j+1]·w→ + E[i+1][j+1]·w↘
//  3. The interior n×m block of E is ∂(soft-DTW)/∂D.
//
// Complexity:
//
//	Time   = O(n·m) per pass
//	Memory = O(n·m) for R, plus O(n·m) for E during Grad
//
// Errors: see the sentinel set in types.go.
type SoftDTW struct {
	d    [][]float64 // n×m cost snapshot, read-only after construction
	r    [][]float64 // (n+1)×(m+1) accumulated costs, built by Compute
	n, m int

	gamma float64
	band  int

	value    float64
	computed bool
}

// New builds a SoftDTW engine over an explicit cost matrix d (typically
// squared pairwise distances between two sequences).
//
// A non-negative Band requires d to be square: a rectangular matrix comes
// from sequences of different lengths, for which the band semantics are
// undefined, so construction fails with ErrBandNeedsSquared. The matrix is
// snapshotted: later mutation of d by the caller does not affect the
// engine.
func New(d mat.Matrix, opts Options) (*SoftDTW, error) {
	if d == nil {
		return nil, ErrNilCost
	}

	return newEngine(d, opts)
}

// NewFromCoster builds a SoftDTW engine over the cost matrix produced by c.
//
// When c implements SquaredCoster, a non-negative Band is accepted only if
// the provider reports equal-length sequences; otherwise the square-matrix
// rule of New applies. A negative Band is always accepted.
func NewFromCoster(c Coster, opts Options) (*SoftDTW, error) {
	if c == nil {
		return nil, ErrNilCost
	}
	if opts.Band >= 0 {
		if sq, ok := c.(SquaredCoster); ok && !sq.SquaredEqualLength() {
			return nil, ErrBandNeedsSquared
		}
	}
	d := c.CostMatrix()
	if d == nil {
		return nil, ErrNilCost
	}

	return newEngine(d, opts)
}

// newEngine validates shape, finiteness and gamma, then snapshots d.
func newEngine(d mat.Matrix, opts Options) (*SoftDTW, error) {
	n, m := d.Dims()
	if n < 1 || m < 1 {
		return nil, ErrEmptyCost
	}
	if opts.Band >= 0 && n != m {
		return nil, ErrBandNeedsSquared
	}
	// !(x > 0) instead of x <= 0 so NaN gammas are rejected too.
	if !(opts.Gamma > 0) {
		return nil, ErrBadGamma
	}

	cost := make([][]float64, n)
	for i := 0; i < n; i++ {
		cost[i] = make([]float64, m)
		for j := 0; j < m; j++ {
			v := d.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonFiniteCost
			}
			cost[i][j] = v
		}
	}

	return &SoftDTW{
		d:     cost,
		n:     n,
		m:     m,
		gamma: opts.Gamma,
		band:  opts.Band,
	}, nil
}

// inBand reports whether DP cell (i,j) participates in the alignment.
// Indices are the 1-based indices of the accumulated-cost matrix R.
func (s *SoftDTW) inBand(i, j int) bool {
	if s.band < 0 {
		return true
	}
	diff := i - j
	if diff < 0 {
		diff = -diff
	}

	return diff <= s.band
}

// Compute runs the forward recursion and returns the soft-DTW distance.
// The accumulated-cost matrix is retained for a subsequent Grad call.
// Compute is idempotent: repeat calls rebuild the recursion from scratch
// and return the same value.
func (s *SoftDTW) Compute() float64 {
	inf := math.Inf(1)

	r := make([][]float64, s.n+1)
	for i := range r {
		r[i] = make([]float64, s.m+1)
	}
	for i := 1; i <= s.n; i++ {
		r[i][0] = inf
	}
	for j := 1; j <= s.m; j++ {
		r[0][j] = inf
	}

	for i := 1; i <= s.n; i++ {
		for j := 1; j <= s.m; j++ {
			if !s.inBand(i, j) {
				r[i][j] = inf
				continue
			}
			v, _, _, _ := softMin(r[i-1][j-1], r[i-1][j], r[i][j-1], s.gamma)
			r[i][j] = s.d[i-1][j-1] + v
		}
	}

	s.r = r
	s.value = r[s.n][s.m]
	s.computed = true

	return s.value
}

// Value returns the distance from the last Compute call without
// recomputing. Fails with ErrComputeFirst if Compute has not run.
func (s *SoftDTW) Value() (float64, error) {
	if !s.computed {
		return 0, ErrComputeFirst
	}

	return s.value, nil
}

// Grad runs the backward recursion and returns the gradient of the
// soft-DTW distance with respect to every entry of the cost matrix, as a
// new n×m dense matrix. Requires a prior Compute (ErrComputeFirst
// otherwise).
//
// The backward weights are recomputed analytically from the stored R and
// D values rather than cached during the forward pass: the weight of a
// predecessor equals the softmax weight the successor cell assigned to it,
// which is exp((R[succ] - D[succ] - R[pred]) / Gamma).
func (s *SoftDTW) Grad() (*mat.Dense, error) {
	if !s.computed {
		return nil, ErrComputeFirst
	}

	n, m := s.n, s.m
	ninf := math.Inf(-1)

	// Augmented copies with one extra row/column on the far side.
	// +Inf cells of R (border and out-of-band) become -Inf so that their
	// backward weights vanish as exp(-Inf)=0 instead of overflowing.
	rb := make([][]float64, n+2)
	db := make([][]float64, n+2)
	e := make([][]float64, n+2)
	for i := range rb {
		rb[i] = make([]float64, m+2)
		db[i] = make([]float64, m+2)
		e[i] = make([]float64, m+2)
	}
	for i := 0; i <= n; i++ {
		for j := 0; j <= m; j++ {
			if math.IsInf(s.r[i][j], 1) {
				rb[i][j] = ninf
			} else {
				rb[i][j] = s.r[i][j]
			}
		}
	}
	for i := 0; i <= n+1; i++ {
		rb[i][m+1] = ninf
	}
	for j := 0; j <= m+1; j++ {
		rb[n+1][j] = ninf
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			db[i][j] = s.d[i-1][j-1]
		}
	}

	// Virtual terminal cell: finite zero cost, seeds the recursion.
	rb[n+1][m+1] = s.r[n][m]
	e[n+1][m+1] = 1

	for i := n; i >= 1; i-- {
		for j := m; j >= 1; j-- {
			if !s.inBand(i, j) {
				continue // out-of-band cells contribute no gradient
			}
			down := math.Exp((rb[i+1][j] - rb[i][j] - db[i+1][j]) / s.gamma)
			right := math.Exp((rb[i][j+1] - rb[i][j] - db[i][j+1]) / s.gamma)
			diag := math.Exp((rb[i+1][j+1] - rb[i][j] - db[i+1][j+1]) / s.gamma)
			e[i][j] = e[i+1][j]*down + e[i][j+1]*right + e[i+1][j+1]*diag
		}
	}

	grad := mat.NewDense(n, m, nil)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			grad.Set(i-1, j-1, e[i][j])
		}
	}

	return grad, nil
}
