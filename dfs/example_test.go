package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linkgraph/core"
	"github.com/katalvlaran/linkgraph/dfs"
)

// ExampleDFS demonstrates a full depth-first pass over a small network.
// Graph structure:
//
//	A───B───C     D
//
// Expected discovery order: A B C D, finish order: C B A D.
func ExampleDFS() {
	// Build the ordered input; the key order decides root order.
	m := core.NewAdjacencyMap(4)
	m.Set("A", "B")
	m.Set("B", "A", "C")
	m.Set("C", "B")
	m.Set("D")
	g := core.NewGraph(m)

	// Print each person as it is discovered.
	res, err := dfs.DFS(g, dfs.WithOnVisit(func(name string) error {
		fmt.Println("visit", name)
		return nil
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("finish:", strings.Join(res.Order, " "))
	fmt.Println("visited:", res.Visited())
	fmt.Println("cycle:", res.HasCycle)

	// Output:
	// visit A
	// visit B
	// visit C
	// visit D
	// finish: C B A D
	// visited: 4
	// cycle: true
}

// ExampleWithIgnoreParentEdge contrasts the literal cycle flag with undirected semantics.
func ExampleWithIgnoreParentEdge() {
	m := core.NewAdjacencyMap(2)
	m.Set("A", "B")
	m.Set("B", "A")
	g := core.NewGraph(m)

	literal, _ := dfs.DFS(g)
	undirected, _ := dfs.DFS(g, dfs.WithIgnoreParentEdge())
	fmt.Println(literal.HasCycle, undirected.HasCycle)

	// Output:
	// true false
}
