package bfs_test

import (
	"testing"

	"github.com/A-Alhammadi/Intro-to-AI/bfs"
	"github.com/A-Alhammadi/Intro-to-AI/builder"
)

func BenchmarkSearch_Grid100x100(b *testing.B) {
	net, err := builder.Build(nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	goal := builder.GridID(99, 99)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.Search(net.Graph, "r0c0", goal); err != nil {
			b.Fatal(err)
		}
	}
}
