// Package astar implements a generic best-first (A*) graph search.
//
// Search finds a minimum-cost path from a start node to any node satisfying
// a goal predicate. It is guided by a heuristic and bounded by a wall-clock
// budget that is checked once per dequeue iteration.
//
// Complexity:
//
//   - Time:  O((V + E) log E) for the nodes and edges actually explored.
//   - Space: O(V + E); one arena record per improvement plus heap entries.
//
// Notes on implementation choices:
//
//   - Records live in an arena slice and point to their predecessor by index.
//   - Improvements push a new record instead of decreasing a key; superseded
//     records are discarded when popped because their node is already closed.
//   - Closed nodes are never re-opened, which is exact for consistent heuristics.
package astar

import (
	"container/heap"
	"fmt"
	"time"
)

// Search runs A* on g from start until a node satisfying isGoal is expanded,
// the frontier empties, or timeout elapses.
//
// The first iteration always runs; the budget (and the optional context) is
// checked before every later dequeue. A start node that satisfies isGoal
// therefore yields StatusSuccess even with a zero budget.
//
// Caller obligations, not verified unless WithAssertions is given:
//  1. Every Successor.Cost is ≥ 0.
//  2. h is non-negative, admissible and consistent.
//  3. g, isGoal and h are deterministic and free of side effects.
//
// Complexity: O((V + E) log E) time, O(V + E) space.
func Search[N comparable](
	g Graph[N],
	start N,
	isGoal Goal[N],
	h Heuristic[N],
	timeout time.Duration,
	opts ...Option,
) Result[N] {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Fix the deadline once, at call start.
	began := cfg.Now()
	deadline := began.Add(timeout)

	// 3) Allocate per-call state and run.
	r := &runner[N]{
		graph:     g,
		goal:      isGoal,
		heuristic: h,
		opts:      cfg,
		best:      make(map[N]int),
		closed:    make(map[N]struct{}),
	}
	r.open.arena = &r.arena
	res := r.run(start, deadline)
	res.Elapsed = cfg.Now().Sub(began)

	return res
}

// runner holds the mutable state for a single Search execution.
type runner[N comparable] struct {
	graph     Graph[N]
	goal      Goal[N]
	heuristic Heuristic[N]
	opts      Options

	arena    []record[N]    // every record created, in creation order
	open     frontier[N]    // min-heap over arena indexes
	best     map[N]int      // node → arena index of its cheapest record
	closed   map[N]struct{} // expanded nodes
	expanded int
}

// run seeds the frontier with start and drives the main loop.
func (r *runner[N]) run(start N, deadline time.Time) Result[N] {
	r.push(record[N]{node: start, prev: noPrev, g: 0, h: r.estimate(start)}, false)

	for first := true; ; first = false {
		// Budget and cancellation are polled once per iteration, never on the first.
		if !first {
			if r.opts.Ctx.Err() != nil {
				return r.finish(StatusCanceled)
			}
			if !r.opts.Now().Before(deadline) {
				return r.finish(StatusTimeout)
			}
		}

		if r.open.Len() == 0 {
			return r.finish(StatusFailure)
		}
		idx := heap.Pop(&r.open).(int)
		node := r.arena[idx].node

		// A cheaper record for this node was already expanded.
		if _, done := r.closed[node]; done {
			continue
		}
		r.closed[node] = struct{}{}
		r.expanded++
		if r.opts.OnExpand != nil {
			r.opts.OnExpand(node, r.arena[idx].g, r.arena[idx].h)
		}

		if r.goal(node) {
			res := r.finish(StatusSuccess)
			res.Path = pathTo(r.arena, idx)
			res.Cost = r.arena[idx].g

			return res
		}

		r.expand(idx)
	}
}

// expand relaxes every successor of the record at idx that is not closed.
// A child gets a new record only when it is unseen or strictly improved.
func (r *runner[N]) expand(idx int) {
	cur := r.arena[idx]
	for _, s := range r.graph.Successors(cur.node) {
		if _, done := r.closed[s.Child]; done {
			continue
		}
		if r.opts.Assertions && s.Cost < 0 {
			panic(fmt.Errorf("%w: %v→%v cost=%g", ErrNegativeCost, cur.node, s.Child, s.Cost))
		}

		tentative := cur.g + s.Cost
		var hv float64
		bi, seen := r.best[s.Child]
		if seen {
			if tentative >= r.arena[bi].g {
				continue // dominated
			}
			hv = r.arena[bi].h // reuse the cached estimate
		} else {
			hv = r.estimate(s.Child)
		}

		r.push(record[N]{node: s.Child, prev: idx, via: s, g: tentative, h: hv}, seen)
	}
}

// push stores rec in the arena, makes it the best record for its node and
// queues it.
func (r *runner[N]) push(rec record[N], improved bool) {
	idx := len(r.arena)
	r.arena = append(r.arena, rec)
	r.best[rec.node] = idx
	heap.Push(&r.open, idx)
	if r.opts.OnEnqueue != nil {
		r.opts.OnEnqueue(rec.node, rec.g, rec.h, improved)
	}
}

// estimate evaluates the heuristic once for n.
func (r *runner[N]) estimate(n N) float64 {
	v := r.heuristic(n)
	if r.opts.Assertions && v < 0 {
		panic(fmt.Errorf("%w: h(%v)=%g", ErrNegativeHeuristic, n, v))
	}

	return v
}

// finish builds a Result without a path. Success callers fill Path and Cost.
func (r *runner[N]) finish(status Status) Result[N] {
	return Result[N]{
		Status:   status,
		Cost:     -1,
		Visited:  len(r.closed) + r.pending(),
		Expanded: r.expanded,
	}
}

// pending counts distinct nodes discovered but not yet expanded.
// Every closed node has a best record, so this is a difference of sizes.
func (r *runner[N]) pending() int {
	return len(r.best) - len(r.closed)
}
