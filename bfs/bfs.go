// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// The traversal is driven by the A* engine with unit edge costs and the zero
// heuristic: equal-depth vertices leave the frontier oldest first, which is
// exactly FIFO order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlsearch/astar"
	"github.com/katalvlaran/lvlsearch/core"
)

// walker encapsulates mutable BFS state fed by engine hooks.
type walker struct {
	opts     BFSOptions
	cancel   context.CancelFunc
	current  string // vertex being expanded
	visitErr error
	res      *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrWeightedGraph for weighted graphs, ErrOptionViolation for bad options,
// the context error on cancellation, ErrTimeout when the budget runs out,
// or any user-supplied hook error. The partial result is returned with
// every error that arises after the traversal has started.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	ctx, cancel := context.WithCancel(o.Ctx)
	defer cancel()
	n := g.VertexCount()
	w := &walker{
		opts:   o,
		cancel: cancel,
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	res := astar.Search[string](w.view(g), startID, func(string) bool { return false }, astar.Zero[string](), o.Timeout,
		astar.WithContext(ctx),
		astar.WithOnEnqueue(w.enqueued),
		astar.WithOnExpand(w.visit),
	)

	switch {
	case w.visitErr != nil:
		return w.res, w.visitErr
	case res.Status == astar.StatusCanceled:
		return w.res, o.Ctx.Err()
	case res.Status == astar.StatusTimeout:
		return w.res, fmt.Errorf("%w after %d visits", ErrTimeout, len(w.res.Order))
	}

	return w.res, nil
}

// view adapts g to unit costs, applying FilterNeighbor and MaxDepth.
func (w *walker) view(g *core.Graph) astar.Graph[string] {
	return astar.GraphFunc[string](func(id string) []astar.Successor[string] {
		if w.visitErr != nil || w.opts.MaxDepth > 0 && w.res.Depth[id] >= w.opts.MaxDepth {
			return nil
		}
		succ := g.Successors(id)
		out := succ[:0]
		for _, s := range succ {
			if !w.opts.FilterNeighbor(id, s.Child) {
				continue
			}
			s.Cost = 1
			out = append(out, s)
		}

		return out
	})
}

// enqueued records depth and parent of a newly discovered vertex.
func (w *walker) enqueued(node any, g, _ float64, _ bool) {
	id := node.(string)
	d := int(g)
	w.res.Depth[id] = d
	if d > 0 {
		w.res.Parent[id] = w.current
	}
	w.opts.OnEnqueue(id, d)
}

// visit records the vertex in Order and calls OnVisit. A hook error
// cancels the traversal before the next visit.
func (w *walker) visit(node any, g, _ float64) {
	id := node.(string)
	w.current = id
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, int(g)); err != nil && w.visitErr == nil {
		w.visitErr = fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
		w.cancel()
	}
}
