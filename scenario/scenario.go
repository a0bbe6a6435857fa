// Package scenario loads search problems from YAML (or JSON) documents and
// runs them through the A* engine.
//
// A scenario describes its topology either as an explicit edge list, stored
// in a *core.Graph, or as a grid of cell costs, served by a
// *gridgraph.GridGraph. Exactly one of the two must be present.
//
//	name: detour
//	directed: true
//	timeout: 0.5
//	start: A
//	goals: [D]
//	estimates: {A: 2, B: 1, C: 1}
//	edges:
//	  - {from: A, to: B, cost: 1}
//	  - {from: B, to: D, cost: 1}
//
//	name: maze
//	heuristic: octile
//	start: "0,0"
//	goals: ["4,0"]
//	grid:
//	  conn: 8
//	  rows:
//	    - [1, 1, 0, 1, 1]
//	    - [1, 1, 1, 1, 1]
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlsearch/astar"
	"github.com/katalvlaran/lvlsearch/gridgraph"
)

// DefaultTimeout applies when a scenario has no timeout key.
const DefaultTimeout = 10 * time.Second

// Sentinel errors for scenario validation.
var (
	ErrNoStart          = errors.New("scenario: start is empty")
	ErrNoGoals          = errors.New("scenario: no goals")
	ErrNoTopology       = errors.New("scenario: neither edges nor grid given")
	ErrBothTopologies   = errors.New("scenario: edges and grid are mutually exclusive")
	ErrNegativeTimeout  = errors.New("scenario: timeout must be a non-negative number")
	ErrNegativeEstimate = errors.New("scenario: estimate must be non-negative")
	ErrUnknownNode      = errors.New("scenario: unknown node")
	ErrBadCell          = errors.New(`scenario: cell must look like "x,y"`)
	ErrBadConn          = errors.New("scenario: grid conn must be 4 or 8")
	ErrBadThreshold     = errors.New("scenario: grid threshold must be at least 1")
	ErrUnknownHeuristic = errors.New("scenario: unknown heuristic")
)

// Scenario is one search problem.
type Scenario struct {
	Name     string   `yaml:"name"`
	Directed bool     `yaml:"directed"`
	Timeout  *float64 `yaml:"timeout"` // seconds; .inf means unbounded
	Start    string   `yaml:"start"`
	Goals    []string `yaml:"goals"`

	// Heuristic names the estimate to use. Edge scenarios accept "table"
	// (the default, reading Estimates) and "zero". Grid scenarios accept
	// the gridgraph metric names.
	Heuristic string             `yaml:"heuristic"`
	Estimates map[string]float64 `yaml:"estimates"`

	Edges []Edge `yaml:"edges"`
	Grid  *Grid  `yaml:"grid"`
}

// Edge is one weighted link of an edge scenario.
type Edge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Cost int64  `yaml:"cost"`
}

// Grid is the topology of a grid scenario. Threshold defaults to 1 and
// Conn to 4. Threshold may be raised but never below 1.
type Grid struct {
	Conn      int     `yaml:"conn"`
	Threshold *int    `yaml:"threshold"`
	Rows      [][]int `yaml:"rows"`
}

// Load reads and validates the scenario at path. A scenario without a
// name is named after the file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}

	return sc, nil
}

// Parse decodes and validates a scenario document. JSON input is accepted
// as a YAML subset. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Validate checks the fields that do not depend on the topology contents.
func (sc *Scenario) Validate() error {
	if sc.Start == "" {
		return ErrNoStart
	}
	if len(sc.Goals) == 0 {
		return ErrNoGoals
	}
	switch {
	case len(sc.Edges) == 0 && sc.Grid == nil:
		return ErrNoTopology
	case len(sc.Edges) > 0 && sc.Grid != nil:
		return ErrBothTopologies
	}
	if sc.Timeout != nil && (*sc.Timeout < 0 || math.IsNaN(*sc.Timeout)) {
		return fmt.Errorf("%w: %g", ErrNegativeTimeout, *sc.Timeout)
	}
	for node, v := range sc.Estimates {
		if v < 0 {
			return fmt.Errorf("%w: %s=%g", ErrNegativeEstimate, node, v)
		}
	}
	if sc.Grid != nil && sc.Grid.Conn != 0 && sc.Grid.Conn != 4 && sc.Grid.Conn != 8 {
		return fmt.Errorf("%w: got %d", ErrBadConn, sc.Grid.Conn)
	}
	// Cells below 1 would be stepped onto at zero or negative cost.
	if sc.Grid != nil && sc.Grid.Threshold != nil && *sc.Grid.Threshold < 1 {
		return fmt.Errorf("%w: got %d", ErrBadThreshold, *sc.Grid.Threshold)
	}

	return nil
}

// Budget returns the search time budget.
func (sc *Scenario) Budget() time.Duration {
	if sc.Timeout == nil {
		return DefaultTimeout
	}

	return astar.Seconds(*sc.Timeout)
}

// ParseCell parses a grid coordinate written as "x,y".
func ParseCell(s string) (gridgraph.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}

	return gridgraph.Cell{X: x, Y: y}, nil
}
