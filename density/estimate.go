package density

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tomato/ann"
)

// Estimate runs the estimator named by spec.Kind against backend,
// returning a finite density vector f of length backend.Len() (§4.6).
func Estimate(backend ann.Backend, spec Spec) ([]float64, error) {
	switch spec.Kind {
	case KnnLog:
		return knnLog(backend, spec.K, spec.Eps)
	case KdeGaussianKnn:
		return kdeGaussianKnn(backend, spec.K, spec.Bandwidth2)
	case KdeGaussianFullBrute:
		return kdeGaussianFullBrute(backend, spec.Bandwidth2)
	default:
		return nil, unknownKindError(spec.Kind)
	}
}

func knnLog(backend ann.Backend, k int, eps float64) ([]float64, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if eps < 0 {
		eps = 0
	}

	d := float64(backend.Dim())
	knn := backend.KNNAll(k)
	n := backend.Len()
	out := make([]float64, n)

	dists := make([]float64, 0, k)
	for i := 0; i < n; i++ {
		dists = dists[:0]
		for _, nb := range knn[i] {
			dists = append(dists, nb.Dist2)
		}
		maxD2 := 0.0
		if len(dists) > 0 {
			maxD2 = floats.Max(dists)
		}
		r := math.Sqrt(maxD2 + eps)
		out[i] = -d * math.Log(r)
	}
	return out, nil
}

func kdeGaussianKnn(backend ann.Backend, k int, bandwidth2 float64) ([]float64, error) {
	if !(bandwidth2 > 0) {
		return nil, ErrInvalidBandwidth
	}
	knn := backend.KNNAll(k)
	return gaussianSums(knn, bandwidth2), nil
}

func kdeGaussianFullBrute(backend ann.Backend, bandwidth2 float64) ([]float64, error) {
	if !(bandwidth2 > 0) {
		return nil, ErrInvalidBandwidth
	}

	n := backend.Len()
	kAll := n - 1
	if kAll < 0 {
		kAll = 0
	}

	out := make([]float64, n)
	inv := 1.0 / (2.0 * bandwidth2)

	workers := 8
	if n < workers {
		if n < 1 {
			workers = 1
		} else {
			workers = n
		}
	}
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
			terms := make([]float64, 0, kAll)
			for i := start; i < end; i++ {
				nbrs := backend.KNN(i, kAll)
				terms = terms[:0]
				for _, nb := range nbrs {
					terms = append(terms, math.Exp(-nb.Dist2*inv))
				}
				if len(terms) > 0 {
					out[i] = floats.Sum(terms)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}

// gaussianSums computes, for each vertex's neighbor list, the sum of
// exp(-dist2 * inv) across all listed neighbors, using gonum/floats.Sum
// for the reduction.
func gaussianSums(knn [][]ann.Neighbor, bandwidth2 float64) []float64 {
	inv := 1.0 / (2.0 * bandwidth2)
	n := len(knn)
	out := make([]float64, n)

	workers := 8
	if n < workers {
		if n < 1 {
			workers = 1
		} else {
			workers = n
		}
	}
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
			terms := make([]float64, 0, 8)
			for i := start; i < end; i++ {
				terms = terms[:0]
				for _, nb := range knn[i] {
					terms = append(terms, math.Exp(-nb.Dist2*inv))
				}
				if len(terms) > 0 {
					out[i] = floats.Sum(terms)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	return out
}
