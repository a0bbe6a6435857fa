// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a weighted graph for the A* engine. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Terrain costs: stepping onto a cell costs its value
//   - Admissible distance heuristics scaled by the cheapest terrain
//   - Conversion of Conn4 grids to a *core.Graph
//
// Cells with value < Threshold are walls; cells with value ≥ Threshold are passable.
package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsearch/astar"
	"github.com/katalvlaran/lvlsearch/core"
)

var _ astar.Graph[Cell] = (*GridGraph)(nil)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation; track the cheapest passable cell.
	minCost := math.MaxInt
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range values[y] {
			if v >= opts.Threshold && v < minCost {
				minCost = v
			}
		}
	}
	if minCost == math.MaxInt || minCost < 0 {
		minCost = 0
	}
	// Precompute neighbor offsets; orthogonal moves first so they win exact ties.
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		Threshold:       opts.Threshold,
		minCost:         minCost,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether c is inside the grid and not a wall.
func (gg *GridGraph) Passable(c Cell) bool {
	return gg.InBounds(c.X, c.Y) && gg.CellValues[c.Y][c.X] >= gg.Threshold
}

// Check returns nil if c can be used as a start or goal,
// ErrOutOfBounds or ErrBlocked otherwise.
func (gg *GridGraph) Check(c Cell) error {
	if !gg.InBounds(c.X, c.Y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, c.X, c.Y, gg.Width, gg.Height)
	}
	if !gg.Passable(c) {
		return fmt.Errorf("%w: (%d,%d) value %d < %d", ErrBlocked, c.X, c.Y, gg.CellValues[c.Y][c.X], gg.Threshold)
	}

	return nil
}

// MinCost returns the cheapest passable cell value (0 if none).
func (gg *GridGraph) MinCost() int { return gg.minCost }

// Successors lists passable neighbors of c in N, E, S, W order, followed
// by NE, SE, SW, NW under Conn8. A diagonal is offered only when both
// orthogonal cells it passes between are passable.
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Successors(c Cell) []astar.Successor[Cell] {
	out := make([]astar.Successor[Cell], 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !gg.Passable(n) {
			continue
		}
		cost := float64(gg.CellValues[n.Y][n.X])
		if d[0] != 0 && d[1] != 0 {
			if !gg.Passable(Cell{X: c.X + d[0], Y: c.Y}) || !gg.Passable(Cell{X: c.X, Y: c.Y + d[1]}) {
				continue // no corner cutting
			}
			cost *= math.Sqrt2
		}
		out = append(out, astar.Successor[Cell]{Child: n, Cost: cost})
	}

	return out
}

// VertexID formats the core.Graph vertex identifier for cell c.
func VertexID(c Cell) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// ToCoreGraph converts a Conn4 GridGraph into a directed, weighted *core.Graph.
// Each passable cell becomes vertex "x,y"; every move becomes an edge whose
// weight is the value of the destination cell. Conn8 grids are rejected with
// ErrDiagonalWeights because core weights are integers.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	if gg.Conn == Conn8 {
		return nil, ErrDiagonalWeights
	}
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := Cell{X: x, Y: y}
			if !gg.Passable(c) {
				continue
			}
			if err := g.AddVertex(VertexID(c)); err != nil {
				return nil, err
			}
			for _, s := range gg.Successors(c) {
				if _, err := g.AddEdge(VertexID(c), VertexID(s.Child), int64(s.Cost)); err != nil {
					return nil, fmt.Errorf("gridgraph: edge %s→%s: %w", VertexID(c), VertexID(s.Child), err)
				}
			}
		}
	}

	return g, nil
}
