package bfs_test

import (
	"fmt"

	"github.com/A-Alhammadi/Intro-to-AI/bfs"
	"github.com/A-Alhammadi/Intro-to-AI/core"
)

// ExampleSearch finds the fewest-edge route across a small road map.
func ExampleSearch() {
	g, _ := core.FromEdges([]core.Edge{
		{From: "Oradea", To: "Zerind"},
		{From: "Zerind", To: "Arad"},
		{From: "Arad", To: "Sibiu"},
		{From: "Oradea", To: "Sibiu"},
		{From: "Sibiu", To: "Fagaras"},
		{From: "Fagaras", To: "Bucharest"},
	})

	res, err := bfs.Search(g, "Arad", "Bucharest")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	fmt.Println("hops:", res.Path.Hops())
	// Output:
	// Arad -> Sibiu -> Fagaras -> Bucharest
	// hops: 3
}
