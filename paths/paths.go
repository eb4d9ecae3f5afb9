package paths

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrBadShape indicates a grid with non-positive dimensions.
var ErrBadShape = errors.New("paths: grid dimensions must be positive")

// All enumerates every monotonic warping path through an n×m grid, from
// cell (0,0) to cell (n-1,m-1), moving only down, right, or diagonally.
// Each path is returned as an n×m binary incidence matrix with 1 on every
// visited cell.
//
// The number of paths is the Delannoy number D(n-1, m-1), which grows
// exponentially; All is meant for small grids (verification against the
// sdtw recursion), not for production use.
func All(n, m int) ([]*mat.Dense, error) {
	if n < 1 || m < 1 {
		return nil, ErrBadShape
	}

	var out []*mat.Dense
	mask := make([]float64, n*m)

	var walk func(i, j int)
	walk = func(i, j int) {
		mask[i*m+j] = 1
		if i == n-1 && j == m-1 {
			full := make([]float64, len(mask))
			copy(full, mask)
			out = append(out, mat.NewDense(n, m, full))
		} else {
			if i+1 < n {
				walk(i+1, j)
			}
			if j+1 < m {
				walk(i, j+1)
			}
			if i+1 < n && j+1 < m {
				walk(i+1, j+1)
			}
		}
		mask[i*m+j] = 0
	}
	walk(0, 0)

	return out, nil
}

// Count returns the number of monotonic warping paths through an n×m grid
// without enumerating them: the Delannoy number D(n-1, m-1).
func Count(n, m int) (int, error) {
	if n < 1 || m < 1 {
		return 0, ErrBadShape
	}

	row := make([]int, m)
	for j := range row {
		row[j] = 1
	}
	for i := 1; i < n; i++ {
		prev := row[0] // row[j-1] of the previous grid row
		for j := 1; j < m; j++ {
			cur := row[j]
			row[j] += row[j-1] + prev
			prev = cur
		}
	}

	return row[m-1], nil
}
