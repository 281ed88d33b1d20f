package tomato

import (
	"github.com/katalvlaran/tomato/ann"
	"github.com/katalvlaran/tomato/density"
	"github.com/katalvlaran/tomato/graph"
)

// PipelineParams bundles the three specs a full run needs: how to build
// the neighborhood graph, how to estimate density, and the persistence
// threshold for the sweep (§6).
type PipelineParams struct {
	Graph   graph.Spec
	Density density.Spec
	Tau     float64
}

// PipelineResult carries every intermediate artifact of a run, not just
// the final clustering — the graph and density vector are often useful
// for diagnostics or a second Cluster call at a different τ over the
// same graph/density pair.
type PipelineResult struct {
	Graph   *graph.Graph
	Density []float64
	Tomato  *Result
}

// RunPipeline performs the fixed orchestration backend -> BuildGraph ->
// Estimate -> Cluster (§6). It fails fast on the first error and returns
// no partial result (§7).
func RunPipeline(backend ann.Backend, p PipelineParams) (*PipelineResult, error) {
	g, err := graph.BuildGraph(backend, p.Graph)
	if err != nil {
		return nil, err
	}

	f, err := density.Estimate(backend, p.Density)
	if err != nil {
		return nil, err
	}

	res, err := Cluster(g, f, Params{Tau: p.Tau})
	if err != nil {
		return nil, err
	}

	return &PipelineResult{Graph: g, Density: f, Tomato: res}, nil
}
