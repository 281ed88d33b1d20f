package tomato

import (
	"math"

	"github.com/katalvlaran/tomato/graph"
	"github.com/katalvlaran/tomato/order"
	"github.com/katalvlaran/tomato/unionfind"
)

// Params configures the persistence sweep. Tau is the single persistence
// threshold τ: a candidate mode whose lifetime is strictly below Tau is
// absorbed into a denser neighbor; a lifetime of exactly Tau or above is
// certified as a persistent mode (§4.7, §9 "Persistence semantics
// choice").
type Params struct {
	Tau float64
}

// Result is the outcome of a sweep: a cluster label per vertex, and the
// distinct labels (the persistent modes) sorted densest-first.
type Result struct {
	// ClusterOf[v] is the mode (vertex id) labeling v's cluster.
	ClusterOf []int

	// Modes lists the distinct values of ClusterOf, sorted by ≻
	// (highest density first, index ascending on ties).
	Modes []int
}

func validateDensity(f []float64) error {
	for i, x := range f {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &NonFiniteDensityError{Index: i}
		}
	}
	return nil
}

// Cluster runs the persistence sweep of §4.7 over g and f, returning the
// τ-persistent clustering.
//
// Algorithm (§4.7):
//  1. Compute the ≻ ordering over V and allocate a fresh union-find.
//  2. For each v in ≻ order: activate v, collect the distinct roots of
//     v's already-active neighbors (v's own fresh root is never one of
//     them). If there are none, v is (or remains) an isolated root.
//  3. Otherwise pick the winner among those neighbor roots — the one
//     whose carried mode is highest-≻ — and unconditionally union v's
//     root into it: v always flows up to its densest active neighbor's
//     component, never its own persistence test. Only then does the
//     persistence loop run over the *other* neighbor roots: for each
//     one r0, re-resolved to r, either absorb r into the winner (if its
//     lifetime f[mode(r)] - f[v] < τ) or protect it (lifetime >= τ),
//     re-resolving the winner's root after every absorption since a
//     prior union in the same batch can move it (the "batched-union
//     counterexample" this exact re-resolution guards against, §8
//     scenario S2).
//  4. Read ClusterOf off the final forest and collect Modes.
//
// Internal invariant violations (a union's directionality, find
// returning a non-root) are programming errors and may panic, per §7.
func Cluster(g *graph.Graph, f []float64, p Params) (*Result, error) {
	if err := validateDensity(f); err != nil {
		return nil, err
	}
	n := g.N()
	if len(f) != n {
		return nil, ErrDensityLengthMismatch
	}
	if !(p.Tau >= 0) {
		return nil, ErrInvalidTau
	}

	tau := p.Tau
	ord := order.VerticesDescByDensity(f)
	uf := unionfind.New(n)

	peerRoots := make([]int, 0, 8)
	batch := make([]int, 0, 8)

	for _, v := range ord {
		uf.Activate(v)

		rv := uf.Find(v)

		peerRoots = peerRoots[:0]
		for _, u := range g.Neighbors(v) {
			if !uf.IsActive(u) {
				continue
			}
			ru := uf.Find(u)
			if ru == rv {
				continue
			}
			found := false
			for _, x := range peerRoots {
				if x == ru {
					found = true
					break
				}
			}
			if !found {
				peerRoots = append(peerRoots, ru)
			}
		}

		if len(peerRoots) == 0 {
			continue
		}

		winnerRoot := peerRoots[0]
		winnerMode := uf.ModeOfRoot(winnerRoot)
		for _, r := range peerRoots[1:] {
			m := uf.ModeOfRoot(r)
			if order.Higher(f, m, winnerMode) {
				winnerRoot = r
				winnerMode = m
			}
		}

		// v unconditionally joins its densest active neighbor's
		// component: the just-activated vertex is never itself subject
		// to the persistence test below (that test only decides the
		// fate of pre-existing peer roots).
		origWinnerRoot := winnerRoot
		winnerRoot = uf.UnionSurvivor(f, winnerRoot, rv)

		fv := f[v]

		// Snapshot the batch before the loop below mutates the forest
		// further: step e iterates
		// the peer roots observed when the batch was formed, but
		// re-resolves each one's current root on every iteration (see
		// doc comment).
		batch = append(batch[:0], peerRoots...)
		for _, r0 := range batch {
			if r0 == origWinnerRoot {
				continue
			}

			r := uf.Find(r0)
			w := uf.Find(winnerRoot)
			if r == w {
				winnerRoot = w
				continue
			}

			if uf.IsProtectedRoot(r) {
				continue
			}

			m := uf.ModeOfRoot(r)
			lifetime := f[m] - fv

			if lifetime < tau {
				winnerRoot = uf.UnionSurvivor(f, w, r)
			} else {
				uf.ProtectRoot(r)
			}
		}
	}

	clusterOf := make([]int, n)
	for v := 0; v < n; v++ {
		r := uf.Find(v)
		clusterOf[v] = uf.ModeOfRoot(r)
	}

	modes := make([]int, 0)
	seen := make(map[int]bool, n)
	for _, m := range clusterOf {
		if !seen[m] {
			seen[m] = true
			modes = append(modes, m)
		}
	}
	orderModes(f, modes)

	return &Result{ClusterOf: clusterOf, Modes: modes}, nil
}

func orderModes(f []float64, modes []int) {
	// insertion sort is fine here: |modes| is bounded by the number of
	// persistent clusters, which is small relative to N in practice.
	for i := 1; i < len(modes); i++ {
		j := i
		for j > 0 && order.Higher(f, modes[j], modes[j-1]) {
			modes[j], modes[j-1] = modes[j-1], modes[j]
			j--
		}
	}
}
