package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvclique/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected simple graph:
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices A, B, C):
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B-A exists?", g.HasEdge("B", "A"))

	// 4) Remove a vertex and its edges:
	_ = g.RemoveVertex("B")
	fmt.Println("After removing B, vertices:", g.Vertices())
	fmt.Println("Edge A-B exists?", g.HasEdge("A", "B"))

	// Output:
	// Vertices: [A B C]
	// Edge B-A exists? true
	// After removing B, vertices: [A C]
	// Edge A-B exists? false
}

// ExampleInducedSubgraph keeps a closed neighborhood of one vertex.
func ExampleInducedSubgraph() {
	g := core.NewGraph()
	_ = g.AddEdge("P", "A")
	_ = g.AddEdge("P", "B")
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "Z")

	keep := map[string]bool{"P": true}
	nbrs, _ := g.NeighborIDs("P")
	for _, id := range nbrs {
		keep[id] = true
	}
	sub := core.InducedSubgraph(g, keep)
	fmt.Println(sub.Vertices(), sub.EdgeCount())
	fmt.Println(g.VertexCount(), g.EdgeCount())

	// Output:
	// [A B P] 3
	// 4 4
}
