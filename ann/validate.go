package ann

import "math"

// validatePoints checks that every row shares the first row's length and
// that every coordinate is finite, mirroring the constructor checks in
// original_source/src/backend/brute.rs and hnsw.rs. Returns the common
// dimension (0 for an empty point set).
func validatePoints(points [][]float64) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return 0, &DimensionMismatchError{Row: i, Got: len(p), Expected: dim}
		}
		for j, x := range p {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return 0, &NonFiniteCoordinateError{Row: i, Col: j}
			}
		}
	}
	return dim, nil
}

// numWorkers returns a worker-shard count for fanning a length-n loop out
// across goroutines: never more shards than items, never fewer than one.
func numWorkers(n int) int {
	const maxWorkers = 8
	if n < maxWorkers {
		if n < 1 {
			return 1
		}
		return n
	}
	return maxWorkers
}
