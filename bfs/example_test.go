package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsearch/bfs"
	"github.com/katalvlaran/lvlsearch/core"
)

// ExampleBFS finds the fewest-hop route through a small office network.
//
//	router ─ switch1 ─ printer
//	   │        │
//	switch2 ─ laptop
func ExampleBFS() {
	g := core.NewGraph()
	_, _ = g.AddEdge("router", "switch1", 0)
	_, _ = g.AddEdge("router", "switch2", 0)
	_, _ = g.AddEdge("switch1", "printer", 0)
	_, _ = g.AddEdge("switch1", "laptop", 0)
	_, _ = g.AddEdge("switch2", "laptop", 0)

	res, err := bfs.BFS(g, "router")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("laptop")
	fmt.Println(res.Order)
	fmt.Println(path, res.Depth["laptop"])
	// Output:
	// [router switch1 switch2 printer laptop]
	// [router switch1 laptop] 2
}
