package scenario

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlsearch/astar"
	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/gridgraph"
)

// Run builds the scenario's topology and searches it under ctx and the
// scenario's budget. opts are passed through to astar.Search after the
// context option, so hooks and clocks can be attached by the caller.
//
// Errors are returned for topologies that cannot be built or endpoints that
// do not exist. Search outcomes, including failure and timeout, are
// reported through Report.Status.
func Run(ctx context.Context, sc *Scenario, opts ...astar.Option) (Report, error) {
	if err := sc.Validate(); err != nil {
		return Report{}, err
	}
	all := append([]astar.Option{astar.WithContext(ctx)}, opts...)
	if sc.Grid != nil {
		return runGrid(sc, all)
	}

	return runEdges(sc, all)
}

// runEdges searches an edge-list scenario stored in a core.Graph.
func runEdges(sc *Scenario, opts []astar.Option) (Report, error) {
	g := core.NewGraph(
		core.WithWeighted(),
		core.WithDirected(sc.Directed),
		core.WithMultiEdges(),
		core.WithLoops(),
	)
	for i, e := range sc.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Cost); err != nil {
			return Report{}, fmt.Errorf("scenario %s: edge %d (%s→%s): %w", sc.Name, i, e.From, e.To, err)
		}
	}
	if !g.HasVertex(sc.Start) {
		return Report{}, fmt.Errorf("%w: start %q", ErrUnknownNode, sc.Start)
	}
	for _, goal := range sc.Goals {
		if !g.HasVertex(goal) {
			return Report{}, fmt.Errorf("%w: goal %q", ErrUnknownNode, goal)
		}
	}

	var h astar.Heuristic[string]
	switch sc.Heuristic {
	case "", "table":
		table := sc.Estimates
		h = func(n string) float64 { return table[n] }
	case "zero":
		h = astar.Zero[string]()
	default:
		return Report{}, fmt.Errorf("%w: %q for an edge scenario", ErrUnknownHeuristic, sc.Heuristic)
	}

	res := astar.Search[string](g, sc.Start, astar.GoalSet(sc.Goals...), h, sc.Budget(), opts...)

	return newReport(sc.Name, res, res.Nodes(sc.Start)), nil
}

// runGrid searches a grid scenario.
func runGrid(sc *Scenario, opts []astar.Option) (Report, error) {
	gopts := gridgraph.DefaultGridOptions()
	if sc.Grid.Conn == 8 {
		gopts.Conn = gridgraph.Conn8
	}
	if sc.Grid.Threshold != nil {
		gopts.Threshold = *sc.Grid.Threshold
	}
	gg, err := gridgraph.NewGridGraph(sc.Grid.Rows, gopts)
	if err != nil {
		return Report{}, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	start, err := gridCell(gg, sc.Start)
	if err != nil {
		return Report{}, fmt.Errorf("start: %w", err)
	}
	goals := make([]gridgraph.Cell, 0, len(sc.Goals))
	for _, s := range sc.Goals {
		c, err := gridCell(gg, s)
		if err != nil {
			return Report{}, fmt.Errorf("goal: %w", err)
		}
		goals = append(goals, c)
	}

	h, err := gg.Heuristic(sc.Heuristic, goals...)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrUnknownHeuristic, err)
	}

	res := astar.Search[gridgraph.Cell](gg, start, gridgraph.Goal(goals...), h, sc.Budget(), opts...)

	var path []string
	for _, c := range res.Nodes(start) {
		path = append(path, gridgraph.VertexID(c))
	}

	return newReport(sc.Name, res, path), nil
}

// gridCell parses s and checks that it names a passable cell of gg.
func gridCell(gg *gridgraph.GridGraph, s string) (gridgraph.Cell, error) {
	c, err := ParseCell(s)
	if err != nil {
		return c, err
	}
	if err := gg.Check(c); err != nil {
		return c, fmt.Errorf("%w: %w", ErrUnknownNode, err)
	}

	return c, nil
}
