// Package metrics exposes Prometheus collectors for A* searches.
//
// A Collector is fed in two ways: its Options attach engine hooks that
// count expansions and frontier pushes while a search runs, and Observe
// records the outcome once it returns.
//
//	c := metrics.New("lvlsearch")
//	reg.MustRegister(c)
//	res := astar.Search(g, start, goal, h, budget, c.Options()...)
//	metrics.Observe(c, res)
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvlsearch/astar"
)

var _ prometheus.Collector = (*Collector)(nil)

// Collector groups the search metrics. It is safe for concurrent use.
type Collector struct {
	expansions prometheus.Counter
	enqueues   *prometheus.CounterVec
	searches   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	visited    prometheus.Histogram
}

// New creates the collectors under namespace. Register the Collector itself
// with a prometheus.Registerer.
func New(namespace string) *Collector {
	return &Collector{
		expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expansions_total",
			Help:      "Total number of nodes expanded by A* searches",
		}),
		enqueues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enqueues_total",
			Help:      "Total number of frontier pushes, by kind (new or improved)",
		}, []string{"kind"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of completed searches, by status",
		}, []string{"status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall-clock time spent inside searches, by status",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"status"}),
		visited: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_visited_nodes",
			Help:      "Nodes touched per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.expansions.Describe(ch)
	c.enqueues.Describe(ch)
	c.searches.Describe(ch)
	c.duration.Describe(ch)
	c.visited.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.expansions.Collect(ch)
	c.enqueues.Collect(ch)
	c.searches.Collect(ch)
	c.duration.Collect(ch)
	c.visited.Collect(ch)
}

// Options returns the engine hooks that feed the live counters.
func (c *Collector) Options() []astar.Option {
	fresh := c.enqueues.WithLabelValues("new")
	improved := c.enqueues.WithLabelValues("improved")

	return []astar.Option{
		astar.WithOnExpand(func(any, float64, float64) { c.expansions.Inc() }),
		astar.WithOnEnqueue(func(_ any, _, _ float64, better bool) {
			if better {
				improved.Inc()
				return
			}
			fresh.Inc()
		}),
	}
}

// Record counts one finished search.
func (c *Collector) Record(status astar.Status, visited int, elapsed time.Duration) {
	label := status.String()
	c.searches.WithLabelValues(label).Inc()
	c.duration.WithLabelValues(label).Observe(elapsed.Seconds())
	c.visited.Observe(float64(visited))
}

// Observe records the outcome of res in c.
func Observe[N comparable](c *Collector, res astar.Result[N]) {
	c.Record(res.Status, res.Visited, res.Elapsed)
}
