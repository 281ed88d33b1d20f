package graph

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tomato/ann"
)

// Kind selects which graph builder BuildGraph runs (§4.5, §6).
type Kind int

const (
	// KNN connects each vertex to its k nearest neighbors.
	KNN Kind = iota
	// RipsBrute connects every pair within a fixed squared-distance
	// radius, scanning all pairs exactly.
	RipsBrute
	// RipsFromKNNApprox restricts the Rips radius test to each vertex's
	// k-NN prefilter, trading recall for speed.
	RipsFromKNNApprox
)

// Spec configures BuildGraph. Only the fields relevant to Kind are read:
// KNN uses K and Symmetrize; RipsBrute uses Radius2 (always symmetrizes);
// RipsFromKNNApprox uses K, Radius2, and Symmetrize.
type Spec struct {
	Kind       Kind
	K          int
	Radius2    float64
	Symmetrize bool
}

// KNNSpec builds a Spec for the k-NN graph builder.
func KNNSpec(k int, symmetrize bool) Spec {
	return Spec{Kind: KNN, K: k, Symmetrize: symmetrize}
}

// RipsBruteSpec builds a Spec for the brute-force Rips graph builder.
func RipsBruteSpec(radius2 float64) Spec {
	return Spec{Kind: RipsBrute, Radius2: radius2}
}

// RipsFromKNNApproxSpec builds a Spec for the k-NN-prefiltered Rips
// graph builder.
func RipsFromKNNApproxSpec(k int, radius2 float64, symmetrize bool) Spec {
	return Spec{Kind: RipsFromKNNApprox, K: k, Radius2: radius2, Symmetrize: symmetrize}
}

// BuildGraph runs the builder named by spec.Kind against backend,
// producing a Graph that satisfies the invariants of §4.2.
func BuildGraph(backend ann.Backend, spec Spec) (*Graph, error) {
	switch spec.Kind {
	case KNN:
		return buildKNN(backend, spec.K, spec.Symmetrize)
	case RipsBrute:
		return buildRipsBrute(backend, spec.Radius2)
	case RipsFromKNNApprox:
		return buildRipsFromKNNApprox(backend, spec.K, spec.Radius2, spec.Symmetrize)
	default:
		return nil, invalidGraphf("unknown graph spec kind %d", spec.Kind)
	}
}

func buildKNN(backend ann.Backend, k int, symmetrize bool) (*Graph, error) {
	n := backend.Len()
	knn := backend.KNNAll(k)

	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		nbrs := make([]int, len(knn[i]))
		for j, nb := range knn[i] {
			nbrs[j] = nb.Index
		}
		adj[i] = sortDedupNoSelf(nbrs, i)
	}
	if symmetrize {
		adj = SymmetrizeAndDedup(adj)
	}
	return New(adj)
}

func buildRipsBrute(backend ann.Backend, radius2 float64) (*Graph, error) {
	if !(radius2 >= 0) {
		return nil, invalidGraphf("radius2 must be >= 0, got %g", radius2)
	}

	n := backend.Len()
	adj := make([][]int, n)

	workers := workerCount(n)
	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start, end := chunkBounds(w, chunk, n)
		if start >= end {
			continue
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				kAll := n - 1
				if kAll < 0 {
					kAll = 0
				}
				nbrs := backend.KNN(i, kAll)
				row := make([]int, 0, len(nbrs))
				for _, nb := range nbrs {
					if nb.Dist2 <= radius2 {
						row = append(row, nb.Index)
					}
				}
				adj[i] = row
			}
			return nil
		})
	}
	_ = g.Wait()

	adj = SymmetrizeAndDedup(adj)
	return New(adj)
}

func buildRipsFromKNNApprox(backend ann.Backend, k int, radius2 float64, symmetrize bool) (*Graph, error) {
	if !(radius2 >= 0) {
		return nil, invalidGraphf("radius2 must be >= 0, got %g", radius2)
	}

	n := backend.Len()
	knn := backend.KNNAll(k)

	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		row := make([]int, 0, len(knn[i]))
		for _, nb := range knn[i] {
			if nb.Dist2 <= radius2 {
				row = append(row, nb.Index)
			}
		}
		adj[i] = sortDedupNoSelf(row, i)
	}
	if symmetrize {
		adj = SymmetrizeAndDedup(adj)
	}
	return New(adj)
}

func workerCount(n int) int {
	const maxWorkers = 8
	if n < maxWorkers {
		if n < 1 {
			return 1
		}
		return n
	}
	return maxWorkers
}

func chunkBounds(w, chunk, n int) (int, int) {
	start := w * chunk
	end := start + chunk
	if end > n {
		end = n
	}
	return start, end
}
