package paths_test

import (
	"fmt"

	"github.com/vishalbelsare/alphacsc/paths"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCount
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	How many monotonic warping paths cross a 3×3 alignment grid? The
//	answer is the Delannoy number D(2,2) = 13 — the size of the set the
//	sdtw recursion soft-minimizes over without enumerating it.
func ExampleCount() {
	count, err := paths.Count(3, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	masks, err := paths.All(3, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("count=%d enumerated=%d\n", count, len(masks))
	// Output:
	// count=13 enumerated=13
}
