package order

import "sort"

// Higher implements a ≻ b: f[a] > f[b], or f[a] == f[b] and a < b.
func Higher(f []float64, a, b int) bool {
	fa, fb := f[a], f[b]
	return fa > fb || (fa == fb && a < b)
}

// VerticesDescByDensity returns a permutation of [0, len(f)) sorted by ≻:
// density descending, index ascending on ties. The sort is stable and
// total, so the result is the unique such permutation.
func VerticesDescByDensity(f []float64) []int {
	ord := make([]int, len(f))
	for i := range ord {
		ord[i] = i
	}
	sort.SliceStable(ord, func(i, j int) bool {
		a, b := ord[i], ord[j]
		fa, fb := f[a], f[b]
		if fa != fb {
			return fa > fb
		}
		return a < b
	})
	return ord
}
