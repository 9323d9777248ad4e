package bestfirst_test

import (
	"testing"

	"github.com/A-Alhammadi/Intro-to-AI/bestfirst"
	"github.com/A-Alhammadi/Intro-to-AI/builder"
)

func benchmarkGrid(b *testing.B, search searchFn) {
	net, err := builder.Build(nil, builder.Grid(60, 60))
	if err != nil {
		b.Fatal(err)
	}
	goal := builder.GridID(59, 59)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search(net.Graph, net.Geo, "r0c0", goal); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGreedy_Grid60x60(b *testing.B) { benchmarkGrid(b, bestfirst.Greedy) }

func BenchmarkAStar_Grid60x60(b *testing.B) { benchmarkGrid(b, bestfirst.AStar) }
