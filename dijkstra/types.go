package dijkstra

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/lvlsearch/astar"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrEmptyTarget indicates that the provided target vertex ID is empty.
	ErrEmptyTarget = errors.New("dijkstra: target vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrTargetNotFound indicates that the target vertex does not exist in the graph.
	ErrTargetNotFound = errors.New("dijkstra: target vertex not found in graph")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadTimeout indicates a negative time budget.
	ErrBadTimeout = errors.New("dijkstra: timeout must be non-negative")
)

// DefaultTimeout is the search budget used when WithTimeout is not given.
const DefaultTimeout = 30 * time.Second

// Options configures ShortestPath.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// Target           – destination vertex ID (must be non-empty and present in the graph).
// Timeout          – wall-clock budget handed to the A* engine.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
// Search           – extra engine options (hooks, context, clock).
type Options struct {
	Source           string
	Target           string
	Timeout          time.Duration
	InfEdgeThreshold int64
	Search           []astar.Option
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets the destination vertex ID. Required.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithTimeout sets the search budget. Negative values cause ErrBadTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are non-traversable. Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithSearchOptions forwards options to the underlying astar.Search call.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// DefaultOptions returns Options with no endpoints, DefaultTimeout and no
// impassable edges.
func DefaultOptions() Options {
	return Options{
		Timeout:          DefaultTimeout,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Route is the outcome of ShortestPath.
//
// Vertices lists the route from Source to Target inclusive and is nil
// unless Status is astar.StatusSuccess; Cost is then the total weight,
// otherwise −1.
type Route struct {
	Status   astar.Status
	Vertices []string
	Cost     int64
	Visited  int
	Expanded int
	Elapsed  time.Duration
}

// Found reports whether a route was found.
func (r Route) Found() bool { return r.Status == astar.StatusSuccess }
