package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/linkgraph/bfs"
	"github.com/katalvlaran/linkgraph/core"
)

// ExampleBFS demonstrates level layering on a small network.
// Graph structure:
//
//	A───B───C───D
//	 \         /
//	  E───────┘
//
// From A: level 1 is {B, E}, level 2 is {C, D}.
func ExampleBFS() {
	m := core.NewAdjacencyMap(5)
	m.Set("A", "B", "E")
	m.Set("B", "A", "C")
	m.Set("C", "B", "D")
	m.Set("D", "C", "E")
	m.Set("E", "A", "D")
	g := core.NewGraph(m)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for d := 0; d <= res.MaxDepth(); d++ {
		fmt.Println(d, res.AtDepth(d))
	}
	// Output:
	// 0 [A]
	// 1 [B E]
	// 2 [C D]
}

// ExampleWithMaxDepth limits the search to direct connections.
func ExampleWithMaxDepth() {
	m := core.NewAdjacencyMap(3)
	m.Set("A", "B")
	m.Set("B", "A", "C")
	m.Set("C", "B")
	g := core.NewGraph(m)

	res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	fmt.Println(res.Order)
	// Output:
	// [A B]
}

// ExampleBFS_notFound shows the error for a person without an entry.
func ExampleBFS_notFound() {
	g := core.NewGraph(core.NewAdjacencyMap(0))

	_, err := bfs.BFS(g, "Z")
	fmt.Println(err)
	// Output:
	// bfs: start vertex not found: "Z"
}
