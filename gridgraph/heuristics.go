package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsearch/astar"
)

// distance is a unit-cost metric between two cells.
type distance func(dx, dy float64) float64

var metrics = map[string]distance{
	"manhattan": func(dx, dy float64) float64 { return dx + dy },
	"euclidean": func(dx, dy float64) float64 { return math.Hypot(dx, dy) },
	"chebyshev": func(dx, dy float64) float64 { return math.Max(dx, dy) },
	"octile": func(dx, dy float64) float64 {
		return dx + dy + (math.Sqrt2-2)*math.Min(dx, dy)
	},
	"zero": func(float64, float64) float64 { return 0 },
}

// Heuristic returns the named distance heuristic towards the nearest of
// goals, scaled by the cheapest passable cell value so that it stays
// admissible on weighted terrain.
//
// Names: "manhattan", "octile", "euclidean", "chebyshev", "zero" and
// "default" (manhattan for Conn4, octile for Conn8).
// Manhattan overestimates diagonal moves and is only admissible on Conn4.
// Returns ErrUnknownHeuristic for any other name.
func (gg *GridGraph) Heuristic(name string, goals ...Cell) (astar.Heuristic[Cell], error) {
	if name == "default" || name == "" {
		name = "manhattan"
		if gg.Conn == Conn8 {
			name = "octile"
		}
	}
	metric, ok := metrics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
	scale := float64(gg.minCost)
	targets := append([]Cell(nil), goals...)

	return func(c Cell) float64 {
		best := math.Inf(1)
		for _, t := range targets {
			dx := math.Abs(float64(t.X - c.X))
			dy := math.Abs(float64(t.Y - c.Y))
			if d := metric(dx, dy); d < best {
				best = d
			}
		}
		if math.IsInf(best, 1) {
			return 0
		}

		return best * scale
	}, nil
}

// Goal returns a goal predicate satisfied by any of the given cells.
func Goal(goals ...Cell) astar.Goal[Cell] {
	return astar.GoalSet(goals...)
}
