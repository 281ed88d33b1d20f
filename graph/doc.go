// Package graph defines the immutable neighborhood graph used by the
// ToMATo persistence sweep, and the builders that produce one from an
// ann.Backend.
//
// What
//
//   - Graph is an adjacency-list structure over the fixed vertex set
//     [0,N), validated once at construction and never mutated afterward.
//   - SymmetrizeAndDedup turns a one-directional adjacency list into a
//     symmetric, sorted, duplicate- and self-loop-free one.
//   - BuildGraph runs one of three Spec kinds against an
//     ann.Backend: KNN, RipsBrute, RipsFromKNNApprox.
//
// Why
//
//   - The sweep in package tomato only ever asks "who are v's active
//     neighbors" — it never needs weights, vertex IDs, or mutation, so the
//     representation here is deliberately the thinnest one that still
//     carries the invariants §4.2 of the specification requires. New
//     checks that every adjacency entry is in range and that there are no
//     self-loops; the builders additionally emit rows that are sorted,
//     deduplicated, and (when requested) symmetric. New does not sort or
//     deduplicate rows it is given.
//
// Determinism
//
//	Graph construction and SymmetrizeAndDedup are pure functions of their
//	input adjacency; two calls with equal input produce byte-identical
//	output. BuildGraph is deterministic for a given backend state (§6).
//
// Errors
//
//   - ErrInvalidGraph / InvalidGraphError: out-of-range adjacency entry,
//     or a negative radius2 passed to a Rips variant.
package graph
