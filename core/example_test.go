package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citygraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty graph; cities appear with their first edge.
	g := core.NewGraph()

	// 2) Add undirected edges.
	_ = g.AddEdge("Paris", "Lyon", 465)
	_ = g.AddEdge("Lyon", "Marseille", 315)

	// 3) Inspect cities and neighbors.
	fmt.Println("Cities:", g.Cities())
	fmt.Println("Lyon:", g.Neighbors("Lyon"))

	// 4) Degenerate edges are rejected.
	err := g.AddEdge("Paris", "Paris", 1)
	fmt.Println("self loop rejected:", errors.Is(err, core.ErrInvalidEdge))

	// Output:
	// Cities: [Lyon Marseille Paris]
	// Lyon: [{Paris 465} {Marseille 315}]
	// self loop rejected: true
}

// ExampleGraph_Edges shows that each undirected edge is listed once.
func ExampleGraph_Edges() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)

	for _, e := range g.Edges() {
		fmt.Printf("%s-%s %g\n", e.City1, e.City2, e.Distance)
	}

	// Output:
	// A-B 1
	// B-C 2
}
