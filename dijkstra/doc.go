// Package dijkstra provides validated single-pair shortest paths over a
// *core.Graph with non-negative integer edge weights.
//
// Overview:
//
//   - ShortestPath runs the A* engine with the zero heuristic, so vertices
//     are settled in increasing distance from the source, exactly as in
//     Dijkstra's algorithm, and the search stops once the target is settled.
//   - Inputs are checked up front and reported through sentinel errors;
//     search outcomes (no route, budget exhausted) are reported through
//     Route.Status instead.
//
// Key features:
//
//   - Functional options: Source, Target, WithTimeout, WithInfEdgeThreshold.
//   - InfEdgeThreshold: any edge with weight ≥ threshold is treated as a wall.
//   - WithSearchOptions: forwards hooks, a context or a clock to the engine,
//     e.g. the metrics package's collectors.
//   - Works on directed, undirected and multi-edge graphs.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E) for the part of the graph explored.
//   - Space: O(V + E).
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrEmptyTarget: an endpoint was not given.
//   - ErrNilGraph: g is nil.
//   - ErrUnweightedGraph: g was not built with core.WithWeighted().
//   - ErrVertexNotFound, ErrTargetNotFound: an endpoint is not in g.
//   - ErrBadTimeout: negative budget.
//   - ErrBadInfThreshold: raised (via panic) by WithInfEdgeThreshold(≤0).
//
// Thread safety:
//
//   - ShortestPath only reads g under its lock and keeps all search state
//     per call, so concurrent queries on one graph are safe.
package dijkstra
