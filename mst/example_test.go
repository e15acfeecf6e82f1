package mst_test

import (
	"fmt"

	"github.com/katalvlaran/salesman/builder"
	"github.com/katalvlaran/salesman/mst"
)

// ExamplePrim grows a tree over a triangle A(0)–B(1)=1, B–C(2)=2, A–C=4.
func ExamplePrim() {
	g, _ := builder.BuildGraph(nil, builder.FromMatrix([][]float64{
		{0, 1, 4},
		{1, 0, 2},
		{4, 2, 0},
	}))

	tr, err := mst.Prim(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Total: %g, Edges:", tr.Weight)
	for _, e := range tr.Edges {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 3, Edges: 0-1 1-2
}
