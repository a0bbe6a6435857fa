// Package astar defines the graph, heuristic and result types, sentinel
// errors and functional options for the best-first A* search engine.
package astar

import (
	"context"
	"errors"
	"math"
	"time"
)

// Sentinel errors raised by the optional assertion layer (WithAssertions).
// Search itself never returns an error: these only surface as panic values.
var (
	// ErrNegativeCost indicates a successor with a negative traversal cost.
	ErrNegativeCost = errors.New("astar: negative edge cost")

	// ErrNegativeHeuristic indicates a heuristic returned a negative estimate.
	ErrNegativeHeuristic = errors.New("astar: negative heuristic estimate")
)

// Status is the outcome of a single Search call.
type Status int

const (
	// StatusSuccess means a node satisfying the goal predicate was expanded.
	StatusSuccess Status = iota

	// StatusFailure means the frontier emptied before any goal was found.
	StatusFailure

	// StatusTimeout means the time budget ran out before the search resolved.
	StatusTimeout

	// StatusCanceled means the context given via WithContext was done.
	StatusCanceled
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusTimeout:
		return "timeout"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Successor is a directed edge from an implicit parent to Child.
// Cost must be non-negative.
type Successor[N comparable] struct {
	Child N
	Cost  float64
}

// Graph enumerates the outgoing edges of a node.
// The returned order is preserved by Search and decides the outcome of
// otherwise exact ties, so it should be deterministic.
type Graph[N comparable] interface {
	Successors(n N) []Successor[N]
}

// GraphFunc adapts an ordinary function to the Graph interface.
type GraphFunc[N comparable] func(n N) []Successor[N]

// Successors calls f(n).
func (f GraphFunc[N]) Successors(n N) []Successor[N] { return f(n) }

// Goal reports whether n satisfies the search target.
type Goal[N comparable] func(n N) bool

// Heuristic estimates the remaining cost from n to the nearest goal.
// It must be pure, non-negative and, for the optimality guarantee,
// admissible and consistent.
type Heuristic[N comparable] func(n N) float64

// Zero returns the constant zero heuristic, which turns Search into
// Dijkstra's algorithm with early exit.
func Zero[N comparable]() Heuristic[N] {
	return func(N) float64 { return 0 }
}

// GoalSet returns a Goal that holds for any of the given nodes.
func GoalSet[N comparable](nodes ...N) Goal[N] {
	set := make(map[N]struct{}, len(nodes))
	for _, n := range nodes {
		set[n] = struct{}{}
	}

	return func(n N) bool {
		_, ok := set[n]
		return ok
	}
}

// Seconds converts a budget in (fractional) seconds to a time.Duration.
// Negative and NaN budgets become zero; budgets beyond the range of
// time.Duration, +Inf included, saturate at math.MaxInt64.
func Seconds(s float64) time.Duration {
	if math.IsNaN(s) || s <= 0 {
		return 0
	}
	if s >= float64(math.MaxInt64)/float64(time.Second) {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(s * float64(time.Second))
}

// Result is the outcome of a Search call.
//
//   - Status:   success, failure, timeout or canceled.
//   - Path:     edges from start to goal in traversal order; empty unless success.
//   - Cost:     total path cost, or -1 when no path was produced.
//   - Visited:  nodes touched (closed nodes plus nodes still awaiting expansion).
//   - Expanded: number of nodes dequeued and processed.
//   - Elapsed:  wall-clock time spent inside Search.
type Result[N comparable] struct {
	Status   Status
	Path     []Successor[N]
	Cost     float64
	Visited  int
	Expanded int
	Elapsed  time.Duration
}

// Found reports whether the search ended with StatusSuccess.
func (r Result[N]) Found() bool { return r.Status == StatusSuccess }

// Nodes returns the node sequence of the path: start followed by the child
// of every edge. It returns nil when no path was found.
func (r Result[N]) Nodes(start N) []N {
	if !r.Found() {
		return nil
	}
	nodes := make([]N, 0, len(r.Path)+1)
	nodes = append(nodes, start)
	for _, s := range r.Path {
		nodes = append(nodes, s.Child)
	}

	return nodes
}

// Options configures optional behavior of Search.
//
//   - Ctx: polled once per iteration; a done context ends the search with
//     StatusCanceled. Default context.Background().
//   - Now: clock used for the time budget. Default time.Now.
//   - Assertions: check costs and heuristic values, panicking on violations.
//   - OnExpand: called for each node right after it is closed.
//   - OnEnqueue: called for each record pushed onto the frontier; improved
//     is true when the record replaces an existing best record.
//
// Nil hooks are skipped, so unobserved searches never box nodes into any.
type Options struct {
	Ctx        context.Context
	Now        func() time.Time
	Assertions bool
	OnExpand   func(node any, g, h float64)
	OnEnqueue  func(node any, g, h float64, improved bool)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with a background context, the system clock,
// no assertions and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Now:        time.Now,
		Assertions: false,
	}
}

// WithContext enables cooperative cancellation, checked at the same
// per-iteration granularity as the time budget.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithClock replaces the clock used to measure the budget.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}

// WithAssertions enables the debug assertion layer. A negative edge cost or
// heuristic estimate then panics with an error wrapping ErrNegativeCost or
// ErrNegativeHeuristic.
func WithAssertions() Option {
	return func(o *Options) {
		o.Assertions = true
	}
}

// WithOnExpand registers a callback invoked for every expanded node.
// Callbacks accumulate and run in registration order.
func WithOnExpand(fn func(node any, g, h float64)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		if prev := o.OnExpand; prev != nil {
			o.OnExpand = func(node any, g, h float64) {
				prev(node, g, h)
				fn(node, g, h)
			}
			return
		}
		o.OnExpand = fn
	}
}

// WithOnEnqueue registers a callback invoked for every frontier push.
// Callbacks accumulate and run in registration order.
func WithOnEnqueue(fn func(node any, g, h float64, improved bool)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		if prev := o.OnEnqueue; prev != nil {
			o.OnEnqueue = func(node any, g, h float64, improved bool) {
				prev(node, g, h, improved)
				fn(node, g, h, improved)
			}
			return
		}
		o.OnEnqueue = fn
	}
}
