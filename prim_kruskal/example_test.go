package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/prim_kruskal"
)

// ExampleKruskal keeps the two short roads of a triangle and drops the long one.
func ExampleKruskal() {
	g := core.NewGraph()
	_ = g.AddEdge("Paris", "Lyon", 5)
	_ = g.AddEdge("Paris", "Marseille", 10)
	_ = g.AddEdge("Lyon", "Marseille", 3)

	tree, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges: ", tree.Total)
	for i, e := range tree.Edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", e.City1, e.City2)
	}
	// Output: Total: 8, Edges: Lyon-Marseille Paris-Lyon
}

// ExamplePrim grows the tree of a pentagon from A.
func ExamplePrim() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "E", 12)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("C", "D", 3)
	_ = g.AddEdge("D", "E", 5)

	tree, err := prim_kruskal.Prim(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges: ", tree.Total)
	for i, e := range tree.Edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", e.City1, e.City2)
	}
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}
