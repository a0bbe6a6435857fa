// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvlsearch.
package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlocked indicates a cell whose value is below the passable threshold.
	ErrBlocked = errors.New("gridgraph: cell is blocked")
	// ErrDiagonalWeights indicates a Conn8 grid cannot be exported with integer weights.
	ErrDiagonalWeights = errors.New("gridgraph: diagonal moves have non-integer cost")
	// ErrUnknownHeuristic indicates an unrecognized heuristic name.
	ErrUnknownHeuristic = errors.New("gridgraph: unknown heuristic")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid coordinate and the search node type of a GridGraph.
type Cell struct {
	X, Y int
}

// GridOptions contains tunable parameters for grid search.
type GridOptions struct {
	// Threshold is the minimum cell value considered passable.
	// Cells below it are walls.
	Threshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// Threshold=1 (values ≥1 are passable), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Threshold: 1,
		Conn:      Conn4,
	}
}

// GridGraph treats a 2D integer grid as a weighted graph. It is immutable once built.
//
// The value of a passable cell is the cost of stepping onto it; a diagonal
// step costs that value times √2. Diagonals never cut a blocked corner.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	Threshold       int
	minCost         int // cheapest passable value, scales heuristics
	neighborOffsets [][2]int
}
