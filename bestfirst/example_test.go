package bestfirst_test

import (
	"fmt"

	"github.com/A-Alhammadi/Intro-to-AI/bestfirst"
	"github.com/A-Alhammadi/Intro-to-AI/core"
	"github.com/A-Alhammadi/Intro-to-AI/geo"
)

// ExampleAStar routes between three towns laid out 10 km apart.
func ExampleAStar() {
	g, _ := core.FromEdges([]core.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}})

	m := geo.NewModel()
	origin := geo.Coordinate{Lat: 37, Lon: -97}
	_ = m.Set("A", origin)
	_ = m.Set("B", geo.Offset(origin, 10, 0))
	_ = m.Set("C", geo.Offset(origin, 20, 0))

	res, err := bestfirst.AStar(g, m, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Found)
	// Output:
	// A -> B -> C true
}
