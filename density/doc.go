// Package density implements the three density estimators of §4.6, each
// consuming an ann.Backend and producing the scalar density vector f that
// package tomato sweeps over.
//
// What
//
//   - KnnLog: f[i] = -D * ln(sqrt(max k-NN squared distance + eps)), a
//     log-density estimate driven only by the k-th neighbor radius.
//   - KdeGaussianKnn: a Gaussian kernel density estimate summed over each
//     point's k nearest neighbors.
//   - KdeGaussianFullBrute: the same kernel summed over all N-1 other
//     points; dense, intended for small N.
//
// Why
//
//   - All three reduce to a per-vertex reduction (max or sum) over a
//     neighbor list already ranked by ann.Backend, so the same parallel
//     fan-out strategy backend.KNNAll uses (§5) applies here too: each
//     worker owns a disjoint shard of vertex indices.
//
// Determinism
//
//	Gaussian-kernel sums are mathematically associative; gonum/floats.Sum
//	accumulates left-to-right like a sequential loop would, so results
//	match a single-threaded reference up to ordinary floating-point
//	rounding (§5).
package density
