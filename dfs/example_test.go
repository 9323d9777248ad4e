package dfs_test

import (
	"fmt"

	"github.com/A-Alhammadi/Intro-to-AI/core"
	"github.com/A-Alhammadi/Intro-to-AI/dfs"
)

// ExampleIterativeDeepening contrasts DFS with iterative deepening on a map
// where the first-listed road is the long way round.
func ExampleIterativeDeepening() {
	g, _ := core.FromEdges([]core.Edge{
		{From: "Arad", To: "Timisoara"},
		{From: "Timisoara", To: "Lugoj"},
		{From: "Lugoj", To: "Mehadia"},
		{From: "Mehadia", To: "Sibiu"},
		{From: "Arad", To: "Sibiu"},
	})

	deep, _ := dfs.Search(g, "Arad", "Sibiu")
	fmt.Println("dfs:  ", deep.Path)

	iter, _ := dfs.IterativeDeepening(g, "Arad", "Sibiu", 5)
	fmt.Println("iddfs:", iter.Path, "limit", iter.Limit)
	// Output:
	// dfs:   Arad -> Timisoara -> Lugoj -> Mehadia -> Sibiu
	// iddfs: Arad -> Sibiu limit 1
}
