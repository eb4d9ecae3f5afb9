// Package distance provides pairwise cost-matrix providers for the sdtw
// engine, together with the Jacobian-vector products that carry a
// cost-matrix gradient back onto the original sequences.
//
// The only provider here is SquaredEuclidean, the canonical choice for
// Soft-DTW: its cost cell (i,j) is the squared Euclidean distance between
// element i of the first sequence and element j of the second. Because its
// costs are confirmed squared distances, it unlocks the Sakoe-Chiba band
// option of the engine when the sequences have equal length.
//
// Chain rule:
//
//	value = SoftDTW(CostMatrix(x, y))
//	∂value/∂x, ∂value/∂y = JacobianProduct(∂value/∂D)
//
// Complexity: cost matrix O(n·m·d), Jacobian product O(n·m·d).
package distance
