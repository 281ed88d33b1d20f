package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tomato/ann"
	"github.com/katalvlaran/tomato/graph"
)

func squarePoints() [][]float64 {
	return [][]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
}

func TestBuildGraph_KnnSymmetrized(t *testing.T) {
	b, err := ann.NewBruteBackend(squarePoints())
	require.NoError(t, err)

	g, err := graph.BuildGraph(b, graph.KNNSpec(2, true))
	require.NoError(t, err)
	assert.Equal(t, 4, g.N())
	for u := 0; u < 4; u++ {
		for _, v := range g.Neighbors(u) {
			assert.Contains(t, g.Neighbors(v), u)
		}
	}
}

func TestBuildGraph_RipsBruteRejectsNegativeRadius(t *testing.T) {
	b, err := ann.NewBruteBackend(squarePoints())
	require.NoError(t, err)

	_, err = graph.BuildGraph(b, graph.RipsBruteSpec(-1))
	assert.ErrorIs(t, err, graph.ErrInvalidGraph)
}

func TestBuildGraph_RipsBruteConnectsWithinRadius(t *testing.T) {
	b, err := ann.NewBruteBackend(squarePoints())
	require.NoError(t, err)

	// Every pair of adjacent square corners is at squared distance 2;
	// opposite corners are at squared distance 4.
	g, err := graph.BuildGraph(b, graph.RipsBruteSpec(2.0))
	require.NoError(t, err)

	assert.Len(t, g.Neighbors(0), 2)
	assert.NotContains(t, g.Neighbors(0), 2)
}

func TestBuildGraph_RipsFromKnnApprox(t *testing.T) {
	b, err := ann.NewBruteBackend(squarePoints())
	require.NoError(t, err)

	g, err := graph.BuildGraph(b, graph.RipsFromKNNApproxSpec(3, 2.0, true))
	require.NoError(t, err)
	assert.Equal(t, 4, g.N())
}
