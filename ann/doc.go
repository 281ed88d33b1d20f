// Package ann defines the nearest-neighbor backend capability that the
// ToMATo core treats as a replaceable collaborator (§4.1). The core never
// sees point coordinates directly; it only ever calls Dim, Len, KNN, and
// KNNAll through the Backend interface.
//
// What
//
//   - Backend: the minimal capability set {Dim, Len, KNN, KNNAll}.
//   - BruteBackend: an exact, O(N log N) per query implementation (a
//     full scan followed by a sort of all N-1 candidates).
//   - ApproxBackend: a seeded, bucketed approximate implementation that
//     trades recall for speed, standing in for an external ANN index the
//     way original_source/src/backend/hnsw.rs stands in for hnsw_rs.
//
// Why
//
//   - Keeping ANN index construction outside the core (§1 Non-goals) means
//     graph builders and density estimators can be written, and tested,
//     against a small interface rather than a concrete index; swapping
//     BruteBackend for ApproxBackend (or any future backend) never touches
//     package graph, density, or tomato.
//
// Determinism
//
//	BruteBackend is exact: given identical points, two KNN/KNNAll calls
//	return byte-identical results, and so does the rest of the pipeline
//	built on it (§6). ApproxBackend is deterministic per (points, seed)
//	but may disagree across seeds — that nondeterminism is confined to
//	this package, per §6.
package ann
