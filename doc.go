// Package lvlsearch is a time-bounded A* search toolkit: a generic engine
// plus the graph stores, adapters and tools built around it.
//
// What is inside?
//
//	• astar/     – generic A* Search[N] with a wall-clock budget, hooks and assertions
//	• core/      – thread-safe, string-keyed weighted graph store (an astar.Graph[string])
//	• gridgraph/ – 2D cost grids with 4/8-connectivity and admissible distance heuristics
//	• dijkstra/  – validated single-pair shortest paths over core graphs
//	• bfs/       – fewest-hop traversal over unweighted core graphs
//	• scenario/  – YAML scenario files: load, run, report, batch
//	• metrics/   – Prometheus collectors fed by engine hooks
//	• cmd/lvlsearch – CLI with run, batch and serve commands
//
// Quick ASCII example:
//
//	    A─1─B
//	    │   │
//	    4   1
//	    │   │
//	    C─1─D
//
//	res := astar.Search[string](g, "A", astar.GoalSet("C"), astar.Zero[string](), time.Second)
//	// res.Status == astar.StatusSuccess, res.Cost == 3, path A→B→D→C
//
//	go get github.com/katalvlaran/lvlsearch
package lvlsearch
