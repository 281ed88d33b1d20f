package graph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidGraph is the sentinel wrapped by InvalidGraphError; use
// errors.Is(err, ErrInvalidGraph) to test for any graph-construction
// failure regardless of its specific reason.
var ErrInvalidGraph = errors.New("graph: invalid graph")

// InvalidGraphError reports why a Graph could not be constructed.
// It always wraps ErrInvalidGraph.
type InvalidGraphError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidGraphError) Error() string {
	return fmt.Sprintf("graph: invalid graph: %s", e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidGraph) to succeed.
func (e *InvalidGraphError) Unwrap() error {
	return ErrInvalidGraph
}

func invalidGraphf(format string, args ...interface{}) error {
	return &InvalidGraphError{Reason: fmt.Sprintf(format, args...)}
}

// Graph is the immutable adjacency-list neighborhood graph of §3/§4.2.
// V is always the contiguous range [0,N). Every adj[u] entry is in range
// and adj[u] is free of self-loops. Rows produced by BuildGraph or
// SymmetrizeAndDedup are also sorted ascending and duplicate-free; rows
// passed directly to New keep the order and duplicates they were given.
type Graph struct {
	adj [][]int
}

// New checks that every entry of adj is in [0, len(adj)) and that no row
// contains its own vertex, and returns a Graph. Row order and duplicates
// are neither checked nor changed.
// adj is not copied defensively by mutation after construction — callers
// must treat the slice as consumed, the way a move-only value would be in
// the source this was ported from.
//
// Complexity: O(V + E).
func New(adj [][]int) (*Graph, error) {
	n := len(adj)
	for u, nbrs := range adj {
		for _, v := range nbrs {
			if v < 0 || v >= n {
				return nil, invalidGraphf("edge %d -> %d out of range for n=%d", u, v, n)
			}
			if v == u {
				return nil, invalidGraphf("self-loop at vertex %d", u)
			}
		}
	}
	return &Graph{adj: adj}, nil
}

// N returns the number of vertices.
func (g *Graph) N() int {
	return len(g.adj)
}

// Neighbors returns the adjacency list of v as stored (sorted and
// deduplicated for graphs built by BuildGraph).
// The returned slice must not be mutated by the caller.
func (g *Graph) Neighbors(v int) []int {
	return g.adj[v]
}

// SymmetrizeAndDedup makes adj symmetric (v in adj'[u] iff u in adj[v] or
// v in adj[u]), sorts each row ascending, removes duplicates, and drops
// self-loops. It is a pure function: the output is uniquely determined by
// the input, and applying it twice equals applying it once (§4.2, §8
// property 8).
//
// Complexity: O(E log E).
func SymmetrizeAndDedup(adj [][]int) [][]int {
	n := len(adj)
	out := make([][]int, n)
	for u := range adj {
		out[u] = append([]int(nil), adj[u]...)
	}
	for u, nbrs := range adj {
		for _, v := range nbrs {
			if v >= 0 && v < n {
				out[v] = append(out[v], u)
			}
		}
	}
	for u := range out {
		out[u] = sortDedupNoSelf(out[u], u)
	}
	return out
}

// sortDedupNoSelf sorts s ascending, removes duplicates, and drops any
// entry equal to self.
func sortDedupNoSelf(s []int, self int) []int {
	sort.Ints(s)
	result := s[:0]
	prev := -1
	first := true
	for _, v := range s {
		if v == self {
			continue
		}
		if !first && v == prev {
			continue
		}
		result = append(result, v)
		prev = v
		first = false
	}
	return result
}
