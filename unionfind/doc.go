// Package unionfind implements the tomato-specialized disjoint-set
// structure of §4.4: five parallel slices keyed by vertex id (parent,
// size, mode, protected, active), deliberately arena-of-integers rather
// than pointer-rich, per §9's design note.
//
// What
//
//   - New(n) allocates the structure with every vertex inactive.
//   - Activate brings a vertex into the sweep as a fresh singleton root.
//   - Find resolves a vertex to its current root, with path halving.
//   - UnionSurvivor merges two roots, carrying the higher-≻ mode and the
//     protected flag from the caller-designated survivor side (the
//     carried-mode discipline that makes a second normalization pass
//     over labels unnecessary).
//
// Why
//
//   - Carrying mode by the higher-≻ endpoint, not by which side wins the
//     size-based union direction, is what makes union produce the
//     correct cluster representative in one pass (§4.4 rationale).
//
// Invariants
//
//	At any root r with set S: mode[r] = argmax≻ {f[w] : w in S, active[w]}.
//	Only active vertices ever appear in a set. protected[r] == true
//	persists across unions where r survives as the new root, and a root
//	with protected[r] == true is never chosen as the absorbed side of any
//	later union in the same sweep — package tomato enforces that rule; this
//	package only carries the flag faithfully through unions.
package unionfind
