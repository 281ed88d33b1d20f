// Package tomato implements ToMATo (Topological Mode Analysis Tool):
// topological mode-seeking clustering over a finite point set, driven by
// a single persistence threshold τ.
//
// What
//
//   - Cluster runs the persistence-driven merge sweep of §4.7 over a
//     pre-built graph.Graph and density vector, producing a cluster
//     assignment and the list of τ-persistent modes.
//   - RunPipeline wires the fixed orchestration
//     ann.Backend → graph.BuildGraph → density.Estimate → Cluster (§6).
//
// Why
//
//   - ToMATo sweeps vertices in decreasing density order, incrementally
//     activating a neighborhood graph, and merges emerging clusters whose
//     density-mode "lifetime" falls below τ — leaving exactly the
//     τ-persistent modes as cluster representatives. Subpackages ann,
//     graph, order, unionfind, and density each own one collaborator in
//     that pipeline; this package owns only the sweep itself and the
//     orchestration that stitches the collaborators together.
//
// Determinism
//
//	Given an exact ann.Backend (ann.BruteBackend), two RunPipeline calls
//	with identical inputs return bit-identical results. An approximate
//	backend's nondeterminism, if any, is confined to that backend (§6).
//
// Non-goals
//
//	No streaming/online updates, no metric other than squared Euclidean
//	as surfaced by ann.Backend, no persistence-diagram output, no
//	multi-τ hierarchical output in a single run (§1).
package tomato
