package tomato_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tomato"
	"github.com/katalvlaran/tomato/graph"
)

func mustGraph(t *testing.T, adj [][]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(adj)
	require.NoError(t, err)
	return g
}

// S1: huge-tau collapse — a single large tau merges every connected
// component into one mode, leaving the densest vertex of each component
// as its label.
func TestS1_HugeTauCollapsesEachComponent(t *testing.T) {
	g := mustGraph(t, [][]int{{1}, {0, 2}, {1}, {4}, {3}})
	f := []float64{5, 4, 3, 2, 1}

	res, err := tomato.Cluster(g, f, tomato.Params{Tau: 1e100})
	require.NoError(t, err)

	assert.Equal(t, res.ClusterOf[0], res.ClusterOf[1])
	assert.Equal(t, res.ClusterOf[1], res.ClusterOf[2])
	assert.Equal(t, res.ClusterOf[3], res.ClusterOf[4])
	assert.NotEqual(t, res.ClusterOf[0], res.ClusterOf[3])
	assert.Equal(t, []int{0, 3}, res.Modes)
}

// S2: batched-union regression. This is the scenario that fails if an
// implementation caches winner_root's root at the top of the batch loop
// instead of re-resolving it after every absorption within the batch.
func TestS2_BatchedUnionRegression(t *testing.T) {
	a, b, c, v := 0, 1, 2, 3
	g := mustGraph(t, [][]int{
		{v},          // a -> v
		{v},          // b -> v
		{v},          // c -> v
		{b, a, c},    // v -> b, a, c (this exact order matters for the regression)
	})
	f := []float64{4, 5, 10, 0}

	res, err := tomato.Cluster(g, f, tomato.Params{Tau: 4.5})
	require.NoError(t, err)

	assert.Equal(t, res.ClusterOf[a], res.ClusterOf[c])
	assert.NotEqual(t, res.ClusterOf[b], res.ClusterOf[c])
	assert.Len(t, res.Modes, 2)
}

// S3: tie-breaking — equal density, tie broken by ascending index.
func TestS3_TieBreakingByAscendingIndex(t *testing.T) {
	g := mustGraph(t, [][]int{{1}, {0}})
	f := []float64{1.0, 1.0}

	res, err := tomato.Cluster(g, f, tomato.Params{Tau: 0})
	require.NoError(t, err)

	assert.Equal(t, res.ClusterOf[0], res.ClusterOf[1])
	assert.Equal(t, 0, res.ClusterOf[0])
}

// S4: isolated high-density point stays its own mode even at tau=0.
func TestS4_IsolatedHighDensityPoint(t *testing.T) {
	g := mustGraph(t, [][]int{{}, {2}, {1}})
	f := []float64{10, 1, 2}

	res, err := tomato.Cluster(g, f, tomato.Params{Tau: 0})
	require.NoError(t, err)

	assert.Equal(t, 0, res.ClusterOf[0])
	assert.Equal(t, 2, res.ClusterOf[1])
	assert.Equal(t, 2, res.ClusterOf[2])
	assert.Equal(t, []int{0, 2}, res.Modes)
}

// S6: on a monotonic density ramp along a path, every vertex flows
// unconditionally up to its one denser neighbor, so the whole path
// collapses into a single mode regardless of tau — there is no second
// peak for the persistence test to ever protect. Vertex 0 is the lone
// local maximum; a label other than 0 on any vertex would violate
// property 3 (a cluster's label must be at least as dense as its
// members).
func TestS6_MonotonicRampCollapsesToOneMode(t *testing.T) {
	g := mustGraph(t, [][]int{{1}, {0, 2}, {1}})
	f := []float64{3, 2, 1}

	res, err := tomato.Cluster(g, f, tomato.Params{Tau: 1.0})
	require.NoError(t, err)

	assert.Equal(t, 0, res.ClusterOf[0])
	assert.Equal(t, 0, res.ClusterOf[1])
	assert.Equal(t, 0, res.ClusterOf[2])
	assert.Len(t, res.Modes, 1)
}

// Property 2 & 3: every mode is self-assigned, and every cluster label is
// at least as dense as the members it labels.
func TestProperty_ModesSelfAssignedAndMonotone(t *testing.T) {
	g := mustGraph(t, [][]int{{1}, {0, 2}, {1}, {4}, {3}})
	f := []float64{5, 4, 3, 2, 1}

	res, err := tomato.Cluster(g, f, tomato.Params{Tau: 0.5})
	require.NoError(t, err)

	for _, m := range res.Modes {
		assert.Equal(t, m, res.ClusterOf[m])
	}
	for v, m := range res.ClusterOf {
		assert.GreaterOrEqual(t, f[m], f[v])
	}
}

// Property 4: for tau = +Inf-like values, cluster_of[i] == cluster_of[j]
// iff i and j share a connected component of G.
func TestProperty_HugeTauMatchesConnectedComponents(t *testing.T) {
	adj := [][]int{
		{1}, {0, 2}, {1}, {4, 5}, {3}, {3},
		{},
	}
	g := mustGraph(t, adj)
	f := []float64{6, 5, 4, 3, 2, 1, 0}

	res, err := tomato.Cluster(g, f, tomato.Params{Tau: 1e100})
	require.NoError(t, err)

	comp := connectedComponents(adj)
	for i := range f {
		for j := range f {
			assert.Equal(t, comp[i] == comp[j], res.ClusterOf[i] == res.ClusterOf[j])
		}
	}
}

// Property 6: determinism — two invocations on identical inputs agree.
func TestProperty_Deterministic(t *testing.T) {
	g := mustGraph(t, [][]int{{1, 2}, {0, 2}, {0, 1}, {4}, {3}})
	f := []float64{1, 2, 3, 4, 5}

	res1, err := tomato.Cluster(g, f, tomato.Params{Tau: 1.5})
	require.NoError(t, err)
	res2, err := tomato.Cluster(g, f, tomato.Params{Tau: 1.5})
	require.NoError(t, err)

	assert.Equal(t, res1.ClusterOf, res2.ClusterOf)
	assert.Equal(t, res1.Modes, res2.Modes)
}

func TestCluster_RejectsDensityLengthMismatch(t *testing.T) {
	g := mustGraph(t, [][]int{{1}, {0}})
	_, err := tomato.Cluster(g, []float64{1}, tomato.Params{Tau: 0})
	assert.ErrorIs(t, err, tomato.ErrDensityLengthMismatch)
}

func TestCluster_RejectsNegativeTau(t *testing.T) {
	g := mustGraph(t, [][]int{{1}, {0}})
	_, err := tomato.Cluster(g, []float64{1, 1}, tomato.Params{Tau: -1})
	assert.ErrorIs(t, err, tomato.ErrInvalidTau)
}

func TestCluster_RejectsNaNTau(t *testing.T) {
	g := mustGraph(t, [][]int{{1}, {0}})
	_, err := tomato.Cluster(g, []float64{1, 1}, tomato.Params{Tau: math.NaN()})
	assert.ErrorIs(t, err, tomato.ErrInvalidTau)
}

func TestCluster_RejectsNonFiniteDensity(t *testing.T) {
	g := mustGraph(t, [][]int{{1}, {0}})
	_, err := tomato.Cluster(g, []float64{1, math.Inf(1)}, tomato.Params{Tau: 0})
	var nf *tomato.NonFiniteDensityError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 1, nf.Index)
}

func connectedComponents(adj [][]int) []int {
	n := len(adj)
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	cid := 0
	for i := 0; i < n; i++ {
		if comp[i] != -1 {
			continue
		}
		stack := []int{i}
		comp[i] = cid
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, u := range adj[v] {
				if comp[u] == -1 {
					comp[u] = cid
					stack = append(stack, u)
				}
			}
		}
		cid++
	}
	return comp
}
