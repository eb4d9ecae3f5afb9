// Package sdtw: options, sentinel errors and cost-provider contracts.
package sdtw

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// NoBand disables the Sakoe-Chiba constraint: every cell of the cost
// matrix participates in the alignment search.
const NoBand = -1

// DefaultGamma is the soft-min temperature used by DefaultOptions.
// Gamma must always be strictly positive; as Gamma approaches 0 the
// soft-DTW value approaches the classic (hard-min) DTW distance.
const DefaultGamma = 1.0

// Options configures a SoftDTW engine.
//
// Fields:
//   - Gamma — soft-min temperature (> 0). Small values sharpen the
//     soft-min toward a hard minimum; large values smooth aggressively.
//   - Band  — Sakoe-Chiba band radius. Negative (NoBand) means no
//     restriction; k >= 0 restricts alignment to cells with |i-j| <= k.
//     A non-negative Band is only legal for equal-length sequences: the
//     cost matrix must be square, and a SquaredCoster provider must
//     report SquaredEqualLength (see New and NewFromCoster).
//
// Example:
//
//	opts := sdtw.DefaultOptions()
//	opts.Gamma = 0.1
//	engine, err := sdtw.New(costMatrix, opts)
type Options struct {
	Gamma float64
	Band  int
}

// DefaultOptions returns Options with Gamma=1 and no band restriction.
func DefaultOptions() Options {
	return Options{Gamma: DefaultGamma, Band: NoBand}
}

// Coster produces a pairwise alignment cost matrix. distance.SquaredEuclidean
// is the canonical implementation; any provider returning an n×m matrix of
// finite costs satisfies the contract.
type Coster interface {
	// CostMatrix returns the n×m cost matrix. The engine borrows the
	// returned matrix read-only and never mutates it.
	CostMatrix() *mat.Dense
}

// SquaredCoster marks cost providers whose matrix holds squared distances
// between two sequences. Only such providers, and only when the two
// sequences have equal length, admit a Sakoe-Chiba band restriction.
type SquaredCoster interface {
	Coster

	// SquaredEqualLength reports whether the underlying sequences have
	// equal length (the precondition for a band restriction).
	SquaredEqualLength() bool
}

// Sentinel errors. All constructors and methods return these; match them
// with errors.Is. No public entry point panics on bad input.
var (
	// ErrNilCost indicates a nil cost matrix or nil Coster.
	ErrNilCost = errors.New("sdtw: cost matrix is nil")

	// ErrEmptyCost indicates a cost matrix with zero rows or columns.
	ErrEmptyCost = errors.New("sdtw: cost matrix must be non-empty")

	// ErrNonFiniteCost indicates a NaN or ±Inf entry in the cost matrix.
	ErrNonFiniteCost = errors.New("sdtw: cost matrix entries must be finite")

	// ErrBadGamma indicates a non-positive soft-min temperature.
	ErrBadGamma = errors.New("sdtw: gamma must be positive")

	// ErrBandNeedsSquared indicates a non-negative Band combined with a
	// cost matrix not confirmed to hold squared distances between
	// equal-length sequences.
	ErrBandNeedsSquared = errors.New("sdtw: Sakoe-Chiba band requires squared distances over equal-length sequences")

	// ErrComputeFirst indicates Grad was called before Compute.
	ErrComputeFirst = errors.New("sdtw: Grad requires a prior Compute")
)
