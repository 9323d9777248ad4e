package core_test

import (
	"fmt"

	"github.com/A-Alhammadi/Intro-to-AI/core"
)

// ExampleFromEdges builds a small road network and lists neighbors in the
// order the edges were supplied.
func ExampleFromEdges() {
	g, err := core.FromEdges([]core.Edge{
		{From: "Anthony", To: "Harper"},
		{From: "Anthony", To: "Argonia"},
		{From: "Harper", To: "Anthony"}, // duplicate, ignored
		{From: "Argonia", To: "Mayfield"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	nbs, _ := g.Neighbors("Anthony")
	fmt.Println(nbs)
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output:
	// [Harper Argonia]
	// 4 3
}
