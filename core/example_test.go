package core_test

import (
	"fmt"

	"github.com/katalvlaran/eqcover/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected simple graph.
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices A, B, C).
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")

	// 3) Inspect vertices and edges.
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B–A exists?", g.HasEdge("B", "A"))
	fmt.Println("Complete?", g.IsComplete())

	// 4) Remove a vertex and its edges.
	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.Pairs())

	// Output:
	// Vertices: [A B C]
	// Edge B–A exists? true
	// Complete? true
	// After removing B: [A C] [A–C]
}

// ExampleInducedSubgraph shows how a vertex group is checked for completeness.
func ExampleInducedSubgraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")

	fmt.Println(core.InducedBy(g, []string{"A", "B"}).IsComplete())
	fmt.Println(core.InducedBy(g, []string{"A", "B", "C"}).IsComplete())

	// Output:
	// true
	// false
}
