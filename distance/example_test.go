package distance_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/vishalbelsare/alphacsc/distance"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSquaredEuclidean
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two 1-dimensional sequences of length 3 and 2. Each cost cell is the
//	squared difference of the paired samples; since the lengths differ,
//	the provider reports band-ineligibility.
func ExampleSquaredEuclidean() {
	x := mat.NewDense(3, 1, []float64{0, 1, 2})
	y := mat.NewDense(2, 1, []float64{0, 2})

	dist, err := distance.NewSquaredEuclidean(x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	cost := dist.CostMatrix()
	n, m := cost.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if j > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%.0f", cost.At(i, j))
		}
		fmt.Println()
	}
	fmt.Println("band-eligible:", dist.SquaredEqualLength())
	// Output:
	// 0 4
	// 1 1
	// 4 0
	// band-eligible: false
}
