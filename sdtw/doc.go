// Package sdtw computes Soft-DTW: a smoothed, everywhere-differentiable
// relaxation of Dynamic Time Warping, together with its gradient with
// respect to the pairwise cost matrix.
//
// 🚀 What is Soft-DTW?
//
//	Classic DTW aligns two sequences by a minimum-cost monotonic warping
//	path. Soft-DTW replaces the hard minimum with a soft-minimum
//	(log-sum-exp at temperature Gamma), which makes the distance smooth
//	in every cost entry. It is widely used as a loss function for:
//	  • Time-series regression & forecasting
//	  • Sequence-to-sequence model training
//	  • Averaging / clustering under warping invariance
//
// ✨ Key features:
//   - forward pass (Compute): O(N·M) soft-min recursion over an
//     (N+1)×(M+1) accumulated-cost matrix
//   - backward pass (Grad): O(N·M) analytic gradient w.r.t. the full
//     cost matrix, validated against finite differences
//   - optional Sakoe-Chiba band (|i−j| ≤ k) for speed & regularization,
//     accepted only for squared-distance matrices over equal-length
//     sequences
//   - numerically stable soft-min (max-subtracted log-sum-exp), safe
//     across Gamma from 1e-3 to 1e3
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/vishalbelsare/alphacsc/distance"
//	  "github.com/vishalbelsare/alphacsc/sdtw"
//	)
//
//	dist, _ := distance.NewSquaredEuclidean(x, y) // x: n×d, y: m×d
//	opts := sdtw.DefaultOptions()
//	opts.Gamma = 0.1
//	engine, _ := sdtw.NewFromCoster(dist, opts)
//
//	value := engine.Compute()      // scalar soft-DTW distance
//	g, _ := engine.Grad()          // ∂value/∂D, n×m
//	gx, gy, _ := dist.JacobianProduct(g) // chain rule back to x and y
//
// Behavior in the Gamma limit:
//
//	Gamma → 0   soft-DTW → classic DTW (hard minimum)
//	Gamma large soft-DTW → smooth average over all alignments
//
// Performance:
//
//	Time:   O(N·M) per pass
//	Memory: O(N·M)
//
// See example_test.go for worked scenarios and the paths package for the
// brute-force definition the recursion accelerates.
package sdtw
