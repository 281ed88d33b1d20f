package ann

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// BruteBackend is the exact nearest-neighbor backend: every KNN query
// scans all N points. It is grounded directly on
// original_source/src/backend/brute.rs, ported to a worker-sharded
// KNNAll the way §5 of the specification sanctions.
type BruteBackend struct {
	points [][]float64
	dim    int
}

// NewBruteBackend validates points (equal row length, all-finite
// coordinates) and returns a BruteBackend over them.
func NewBruteBackend(points [][]float64) (*BruteBackend, error) {
	dim, err := validatePoints(points)
	if err != nil {
		return nil, err
	}
	return &BruteBackend{points: points, dim: dim}, nil
}

// Dim returns the dimensionality of the point set.
func (b *BruteBackend) Dim() int { return b.dim }

// Len returns the number of points.
func (b *BruteBackend) Len() int { return len(b.points) }

func (b *BruteBackend) dist2(a, c int) float64 {
	pa, pc := b.points[a], b.points[c]
	var s float64
	for j := 0; j < b.dim; j++ {
		d := pa[j] - pc[j]
		s += d * d
	}
	return s
}

// KNN scans every other point, keeps the k closest by squared distance,
// and breaks ties by ascending index.
func (b *BruteBackend) KNN(i, k int) []Neighbor {
	n := b.Len()
	kk := k
	if kk > n-1 {
		kk = n - 1
	}
	if kk < 0 {
		kk = 0
	}

	buf := make([]Neighbor, 0, n-1)
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		buf = append(buf, Neighbor{Index: j, Dist2: b.dist2(i, j)})
	}
	sort.Slice(buf, func(x, y int) bool {
		if buf[x].Dist2 != buf[y].Dist2 {
			return buf[x].Dist2 < buf[y].Dist2
		}
		return buf[x].Index < buf[y].Index
	})
	if len(buf) > kk {
		buf = buf[:kk]
	}
	return buf
}

// KNNAll runs KNN(i, k) for every i, fanned out across a small worker
// pool via errgroup.Group. Each worker owns a disjoint shard of indices
// and writes only into its own slots of the preallocated result slice, so
// the output is byte-identical to a sequential loop (§5).
func (b *BruteBackend) KNNAll(k int) [][]Neighbor {
	n := b.Len()
	out := make([][]Neighbor, n)
	if n == 0 {
		return out
	}

	workers := numWorkers(n)
	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = b.KNN(i, k)
			}
			return nil
		})
	}
	_ = g.Wait() // no worker returns an error; retained for the errgroup idiom

	return out
}
