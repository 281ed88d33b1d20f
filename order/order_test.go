package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tomato/order"
)

func TestHigher_DensityDescending(t *testing.T) {
	f := []float64{5, 3}
	assert.True(t, order.Higher(f, 0, 1))
	assert.False(t, order.Higher(f, 1, 0))
}

func TestHigher_TieBreaksByAscendingIndex(t *testing.T) {
	f := []float64{1, 1}
	assert.True(t, order.Higher(f, 0, 1))
	assert.False(t, order.Higher(f, 1, 0))
}

func TestVerticesDescByDensity_OrdersAndBreaksTies(t *testing.T) {
	f := []float64{1, 3, 3, 0}
	ord := order.VerticesDescByDensity(f)
	assert.Equal(t, []int{1, 2, 0, 3}, ord)
}

func TestVerticesDescByDensity_IsTotalAndStable(t *testing.T) {
	f := []float64{0, 1, 3}
	ord := order.VerticesDescByDensity(f)
	for i := 0; i+1 < len(ord); i++ {
		assert.True(t, order.Higher(f, ord[i], ord[i+1]))
	}
}
