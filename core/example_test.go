package core_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvlsearch/astar"
	"github.com/katalvlaran/lvlsearch/core"
)

// ExampleGraph_Successors builds a weighted square and searches it.
//
//	A───1───B
//	│       │
//	4       1
//	│       │
//	C───1───D
func ExampleGraph_Successors() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "C", 4)
	_, _ = g.AddEdge("B", "D", 1)
	_, _ = g.AddEdge("C", "D", 1)

	res := astar.Search[string](g, "A", astar.GoalSet("C"), astar.Zero[string](), time.Second)
	fmt.Println(res.Status, res.Cost, res.Nodes("A"))
	// Output: success 3 [A B D C]
}
