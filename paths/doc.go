// Package paths enumerates monotonic warping paths through an alignment
// grid. It is the brute-force counterpart of the sdtw recursion: the
// soft-DTW distance is, by definition, the soft-minimum over the total
// costs of all such paths, and the recursion merely computes that value in
// polynomial instead of exponential time. The enumeration exists to verify
// the recursion on small grids; it is not part of the production flow.
package paths
