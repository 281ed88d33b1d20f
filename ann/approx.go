package ann

import (
	"math/rand/v2"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ApproxParams configures ApproxBackend's random-hyperplane LSH index.
//
//   - Planes: number of random hyperplanes; points sharing a sign on every
//     plane land in the same bucket. More planes means smaller, more
//     selective buckets (faster, lower recall).
//   - Probes: number of nearby buckets (by Hamming distance over the
//     plane signs) merged into the candidate set before the exact
//     re-ranking pass. Probes=1 searches only the query's own bucket.
//   - Seed: seeds the plane generator; identical (points, params) produce
//     an identical index and therefore identical KNN output (§6).
type ApproxParams struct {
	Planes int
	Probes int
	Seed   uint64
}

// DefaultApproxParams returns a modest, generally-useful configuration.
func DefaultApproxParams() ApproxParams {
	return ApproxParams{Planes: 8, Probes: 2, Seed: 1}
}

// ApproxBackend is a seeded, bucketed approximate nearest-neighbor
// backend. It plays the role original_source/src/backend/hnsw.rs plays
// in the Rust source — a second, interchangeable Backend implementation
// that trades recall for speed — built on random-hyperplane locality
// sensitive hashing instead of a graph index, since no Go ANN/HNSW
// library is available in the example pack (see DESIGN.md). Accuracy
// loss relative to BruteBackend is expected and acceptable (§4.1).
type ApproxBackend struct {
	points  [][]float64
	dim     int
	planes  [][]float64
	buckets map[uint64][]int
	keys    []uint64
	probes  int
}

// NewApproxBackend validates points and builds the LSH index described by
// params.
func NewApproxBackend(points [][]float64, params ApproxParams) (*ApproxBackend, error) {
	dim, err := validatePoints(points)
	if err != nil {
		return nil, err
	}
	if params.Planes <= 0 {
		params.Planes = DefaultApproxParams().Planes
	}
	if params.Probes <= 0 {
		params.Probes = DefaultApproxParams().Probes
	}

	rng := rand.New(rand.NewPCG(params.Seed, params.Seed^0x9e3779b97f4a7c15))
	planes := make([][]float64, params.Planes)
	for p := range planes {
		plane := make([]float64, dim)
		for j := range plane {
			plane[j] = rng.NormFloat64()
		}
		planes[p] = plane
	}

	b := &ApproxBackend{
		points:  points,
		dim:     dim,
		planes:  planes,
		buckets: make(map[uint64][]int),
		keys:    make([]uint64, len(points)),
		probes:  params.Probes,
	}
	for i := range points {
		key := b.bucketKey(i)
		b.keys[i] = key
		b.buckets[key] = append(b.buckets[key], i)
	}
	return b, nil
}

// Dim returns the dimensionality of the point set.
func (b *ApproxBackend) Dim() int { return b.dim }

// Len returns the number of points.
func (b *ApproxBackend) Len() int { return len(b.points) }

func (b *ApproxBackend) bucketKey(i int) uint64 {
	var key uint64
	p := b.points[i]
	for pi, plane := range b.planes {
		var dot float64
		for j := 0; j < b.dim; j++ {
			dot += plane[j] * p[j]
		}
		if dot >= 0 {
			key |= 1 << uint(pi)
		}
	}
	return key
}

func (b *ApproxBackend) dist2(a, c int) float64 {
	pa, pc := b.points[a], b.points[c]
	var s float64
	for j := 0; j < b.dim; j++ {
		d := pa[j] - pc[j]
		s += d * d
	}
	return s
}

// popcount is the Hamming weight of x, used to rank candidate buckets by
// distance from the query's own bucket key.
func popcount(x uint64) int {
	count := 0
	for x != 0 {
		x &= x - 1
		count++
	}
	return count
}

// KNN gathers candidates from the query's bucket and its Probes-1 nearest
// (by Hamming distance over the plane signs) neighboring buckets, then
// exactly re-ranks that candidate set by squared distance. When the
// candidate set is smaller than k, the result may contain fewer than
// min(k, N-1) neighbors — an accepted recall loss of an approximate
// backend (§4.1).
func (b *ApproxBackend) KNN(i, k int) []Neighbor {
	n := b.Len()
	kk := k
	if kk > n-1 {
		kk = n - 1
	}
	if kk < 0 {
		kk = 0
	}

	myKey := b.keys[i]
	type bucketDist struct {
		key  uint64
		dist int
	}
	all := make([]bucketDist, 0, len(b.buckets))
	for key := range b.buckets {
		all = append(all, bucketDist{key: key, dist: popcount(key ^ myKey)})
	}
	sort.Slice(all, func(x, y int) bool {
		if all[x].dist != all[y].dist {
			return all[x].dist < all[y].dist
		}
		return all[x].key < all[y].key
	})

	probes := b.probes
	if probes > len(all) {
		probes = len(all)
	}

	candidates := make([]Neighbor, 0, kk*4+1)
	for _, bd := range all[:probes] {
		for _, j := range b.buckets[bd.key] {
			if j == i {
				continue
			}
			candidates = append(candidates, Neighbor{Index: j, Dist2: b.dist2(i, j)})
		}
	}

	sort.Slice(candidates, func(x, y int) bool {
		if candidates[x].Dist2 != candidates[y].Dist2 {
			return candidates[x].Dist2 < candidates[y].Dist2
		}
		return candidates[x].Index < candidates[y].Index
	})
	if len(candidates) > kk {
		candidates = candidates[:kk]
	}
	return candidates
}

// KNNAll runs KNN(i, k) for every i, fanned out across a small worker
// pool via errgroup.Group, mirroring BruteBackend.KNNAll.
func (b *ApproxBackend) KNNAll(k int) [][]Neighbor {
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
	_ = g.Wait()

	return out
}
