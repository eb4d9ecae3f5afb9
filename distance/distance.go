package distance

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilSequence indicates a nil input sequence.
	ErrNilSequence = errors.New("distance: sequence is nil")

	// ErrEmptySequence indicates a sequence with zero rows or zero features.
	ErrEmptySequence = errors.New("distance: sequence must be non-empty")

	// ErrDimensionMismatch indicates incompatible dimensions: sequences
	// with different feature widths, or an output gradient whose shape
	// does not match the cost matrix.
	ErrDimensionMismatch = errors.New("distance: dimension mismatch")
)

// SquaredEuclidean is a pairwise squared-Euclidean cost provider over two
// sequences x (n×d) and y (m×d): cell (i,j) of the cost matrix holds
// ‖xᵢ − yⱼ‖². It satisfies sdtw.SquaredCoster, so engines built from it
// may carry a Sakoe-Chiba band when n == m.
//
// The sequences are borrowed read-only; the provider never mutates them.
type SquaredEuclidean struct {
	x, y *mat.Dense
	n    int // rows of x
	m    int // rows of y
	d    int // shared feature width
}

// NewSquaredEuclidean validates and wraps the two sequences. Both must be
// non-empty and share the same feature width d.
func NewSquaredEuclidean(x, y *mat.Dense) (*SquaredEuclidean, error) {
	if x == nil || y == nil {
		return nil, ErrNilSequence
	}
	n, dx := x.Dims()
	m, dy := y.Dims()
	if n < 1 || m < 1 || dx < 1 {
		return nil, ErrEmptySequence
	}
	if dx != dy {
		return nil, ErrDimensionMismatch
	}

	return &SquaredEuclidean{x: x, y: y, n: n, m: m, d: dx}, nil
}

// CostMatrix returns the n×m matrix of squared Euclidean distances,
// computed as ‖xᵢ‖² + ‖yⱼ‖² − 2·xᵢ·yⱼ with the cross term as a single
// matrix product.
func (s *SquaredEuclidean) CostMatrix() *mat.Dense {
	xx := make([]float64, s.n) // row norms of x
	for i := 0; i < s.n; i++ {
		row := s.x.RawRowView(i)
		var sum float64
		for _, v := range row {
			sum += v * v
		}
		xx[i] = sum
	}
	yy := make([]float64, s.m) // row norms of y
	for j := 0; j < s.m; j++ {
		row := s.y.RawRowView(j)
		var sum float64
		for _, v := range row {
			sum += v * v
		}
		yy[j] = sum
	}

	cost := mat.NewDense(s.n, s.m, nil)
	cost.Mul(s.x, s.y.T())
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.m; j++ {
			v := xx[i] + yy[j] - 2*cost.At(i, j)
			if v < 0 {
				v = 0 // cancellation can leave a tiny negative residue
			}
			cost.Set(i, j, v)
		}
	}

	return cost
}

// SquaredEqualLength reports whether the two sequences have equal length,
// the precondition for a Sakoe-Chiba band restriction.
func (s *SquaredEuclidean) SquaredEqualLength() bool {
	return s.n == s.m
}

// JacobianProduct maps a gradient e on the cost matrix back through the
// squared-Euclidean Jacobian to gradients on the original sequences:
//
//	gx[i] = 2 · Σⱼ e[i][j]·(xᵢ − yⱼ)
//	gy[j] = 2 · Σᵢ e[i][j]·(yⱼ − xᵢ)
//
// e must be n×m; gx is n×d and gy is m×d.
func (s *SquaredEuclidean) JacobianProduct(e *mat.Dense) (gx, gy *mat.Dense, err error) {
	if e == nil {
		return nil, nil, ErrNilSequence
	}
	if r, c := e.Dims(); r != s.n || c != s.m {
		return nil, nil, ErrDimensionMismatch
	}

	// gx = 2·(diag(rowSums(e))·x − e·y)
	gx = mat.NewDense(s.n, s.d, nil)
	gx.Mul(e, s.y)
	for i := 0; i < s.n; i++ {
		var rowSum float64
		for j := 0; j < s.m; j++ {
			rowSum += e.At(i, j)
		}
		for k := 0; k < s.d; k++ {
			gx.Set(i, k, 2*(rowSum*s.x.At(i, k)-gx.At(i, k)))
		}
	}

	// gy = 2·(diag(colSums(e))·y − eᵀ·x)
	gy = mat.NewDense(s.m, s.d, nil)
	gy.Mul(e.T(), s.x)
	for j := 0; j < s.m; j++ {
		var colSum float64
		for i := 0; i < s.n; i++ {
			colSum += e.At(i, j)
		}
		for k := 0; k < s.d; k++ {
			gy.Set(j, k, 2*(colSum*s.y.At(j, k)-gy.At(j, k)))
		}
	}

	return gx, gy, nil
}
