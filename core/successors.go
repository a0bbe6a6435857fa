package core

import "github.com/katalvlaran/lvlsearch/astar"

// Graph satisfies the search engine's successor capability.
var _ astar.Graph[string] = (*Graph)(nil)

// Successors lists the vertices reachable in one step from id, with the edge
// weight as cost, in adjacency insertion order. An undirected edge is walked
// towards its far endpoint. Unknown vertices have no successors.
// Complexity: O(deg(id)).
func (g *Graph) Successors(id string) []astar.Successor[string] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj := g.adjacency[id]
	out := make([]astar.Successor[string], 0, len(adj))
	for _, e := range adj {
		out = append(out, step(e, id))
	}

	return out
}

// Filtered returns a view of g that hides edges for which keep returns false.
// The view reads g on every call, so later mutations of g are visible.
func (g *Graph) Filtered(keep func(*Edge) bool) astar.Graph[string] {
	return astar.GraphFunc[string](func(id string) []astar.Successor[string] {
		g.mu.RLock()
		defer g.mu.RUnlock()
		var out []astar.Successor[string]
		for _, e := range g.adjacency[id] {
			if !keep(e) {
				continue
			}
			out = append(out, step(e, id))
		}

		return out
	})
}

// step turns e into a successor of id, walking undirected edges outward.
func step(e *Edge, id string) astar.Successor[string] {
	child := e.To
	if e.From != id {
		child = e.From
	}

	return astar.Successor[string]{Child: child, Cost: float64(e.Weight)}
}
