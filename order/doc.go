// Package order implements the strict total order ≻ the ToMATo sweep runs
// over (§4.3): density descending, index ascending on ties.
//
// What
//
//   - Higher(f, a, b) reports whether a ≻ b.
//   - VerticesDescByDensity(f) returns the permutation π with
//     π[0] ≻ π[1] ≻ ... ≻ π[N-1].
//
// Why
//
//   - Every "which mode wins" decision in package tomato and package
//     unionfind reduces to Higher; keeping it as a single pure function
//     (rather than inlining the comparison everywhere) is what makes the
//     tie-break rule auditable in one place.
package order
