// Package alphacsc provides a differentiable Dynamic Time Warping core:
// the Soft-DTW distance between two time series and its exact gradient,
// ready for use as a loss in gradient-based learning.
//
// 🚀 What is Soft-DTW?
//
//	Classic DTW finds the minimum-cost monotonic alignment between two
//	sequences. Soft-DTW replaces that hard minimum by a soft-minimum at
//	temperature Gamma, making the distance smooth in every entry of the
//	pairwise cost matrix — and therefore in the sequences themselves.
//
// ✨ What's inside:
//   - engine with forward (Compute) and backward (Grad) passes, both
//     O(N·M), with an optional Sakoe-Chiba band corridor
//   - gradients validated against central finite differences across six
//     orders of magnitude of Gamma
//   - pluggable cost providers with Jacobian-vector products to carry
//     gradients back onto the raw sequences
//   - a brute-force path enumeration defining the quantity the recursion
//     accelerates, used to verify correctness on small grids
//
// Everything is organized under three subpackages:
//
//	sdtw/     — the Soft-DTW engine: soft-min operator, forward and
//	            backward recursions, Sakoe-Chiba banding
//	distance/ — squared-Euclidean cost matrices + Jacobian products
//	paths/    — monotonic warping-path enumeration (verification only)
//
// Quick start:
//
//	dist, _ := distance.NewSquaredEuclidean(x, y)
//	engine, _ := sdtw.NewFromCoster(dist, sdtw.DefaultOptions())
//	value := engine.Compute()
//	g, _ := engine.Grad()
//	gx, gy, _ := dist.JacobianProduct(g)
//
// See examples/ for a complete runnable alignment scenario.
package alphacsc
