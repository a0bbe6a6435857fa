package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsearch/astar"
	"github.com/katalvlaran/lvlsearch/core"
)

// ShortestPath finds a minimum-weight route between Options.Source and
// Options.Target in g by running the A* engine with the zero heuristic.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. Target must be non-empty (ErrEmptyTarget).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must be weighted (ErrUnweightedGraph).
//  5. g must contain Source (ErrVertexNotFound) and Target (ErrTargetNotFound).
//  6. Timeout must be ≥ 0 (ErrBadTimeout).
//
// An unreachable target or an exhausted budget is not an error: the Route
// carries astar.StatusFailure or astar.StatusTimeout and Cost −1.
// Costs are accumulated as float64, so totals above 2^53 lose precision.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, opts ...Option) (Route, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate endpoints and graph.
	if cfg.Source == "" {
		return Route{}, ErrEmptySource
	}
	if cfg.Target == "" {
		return Route{}, ErrEmptyTarget
	}
	if g == nil {
		return Route{}, ErrNilGraph
	}
	if !g.Weighted() {
		return Route{}, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return Route{}, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	if !g.HasVertex(cfg.Target) {
		return Route{}, fmt.Errorf("%w: %q", ErrTargetNotFound, cfg.Target)
	}
	if cfg.Timeout < 0 {
		return Route{}, fmt.Errorf("%w: %s", ErrBadTimeout, cfg.Timeout)
	}

	// 3) Hide impassable edges only when a threshold is set.
	var view astar.Graph[string] = g
	if cfg.InfEdgeThreshold != math.MaxInt64 {
		limit := cfg.InfEdgeThreshold
		view = g.Filtered(func(e *core.Edge) bool { return e.Weight < limit })
	}

	// 4) Search with h ≡ 0, which makes A* expand in Dijkstra order.
	res := astar.Search[string](view, cfg.Source, astar.GoalSet(cfg.Target), astar.Zero[string](), cfg.Timeout, cfg.Search...)

	route := Route{
		Status:   res.Status,
		Cost:     -1,
		Visited:  res.Visited,
		Expanded: res.Expanded,
		Elapsed:  res.Elapsed,
	}
	if res.Found() {
		route.Vertices = res.Nodes(cfg.Source)
		route.Cost = int64(res.Cost)
	}

	return route, nil
}
