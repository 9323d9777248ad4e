package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Alhammadi/Intro-to-AI/bfs"
	"github.com/A-Alhammadi/Intro-to-AI/builder"
	"github.com/A-Alhammadi/Intro-to-AI/core"
)

// mustGraph builds an undirected graph from "a b" pairs.
func mustGraph(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, core.Edge{From: p[0], To: p[1]})
	}
	g, err := core.FromEdges(edges)
	require.NoError(t, err)

	return g
}

func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(nil, "A", "B")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := mustGraph(t, [2]string{"A", "B"})
	_, err = bfs.Search(g, "X", "B")
	assert.ErrorIs(t, err, core.ErrUnknownNode)
	_, err = bfs.Search(g, "A", "X")
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestSearch_Line(t *testing.T) {
	g := mustGraph(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	res, err := bfs.Search(g, "A", "C")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, core.Path{"A", "B", "C"}, res.Path)
	require.NoError(t, res.Path.Validate(g, "A", "C"))
}

func TestSearch_StartIsGoal(t *testing.T) {
	g := mustGraph(t, [2]string{"A", "B"})

	res, err := bfs.Search(g, "A", "A")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, core.Path{"A"}, res.Path)
	assert.Equal(t, 0, res.Expanded)
}

func TestSearch_Unreachable(t *testing.T) {
	g := mustGraph(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	require.NoError(t, g.AddVertex("D"))

	res, err := bfs.Search(g, "A", "D")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, 3, res.Expanded)
}

// TestSearch_PrefersFewestEdges has a long detour listed first.
func TestSearch_PrefersFewestEdges(t *testing.T) {
	g := mustGraph(t,
		[2]string{"S", "a1"}, [2]string{"a1", "a2"}, [2]string{"a2", "a3"}, [2]string{"a3", "G"},
		[2]string{"S", "b1"}, [2]string{"b1", "G"},
	)

	res, err := bfs.Search(g, "S", "G")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"S", "b1", "G"}, res.Path)
}

// TestSearch_GridMinimal checks hop counts against the Manhattan distance.
func TestSearch_GridMinimal(t *testing.T) {
	const rows, cols = 6, 7
	net, err := builder.Build(nil, builder.Grid(rows, cols))
	require.NoError(t, err)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			goal := builder.GridID(r, c)
			res, err := bfs.Search(net.Graph, "r0c0", goal)
			require.NoError(t, err)
			require.True(t, res.Found, goal)
			assert.Equal(t, r+c, res.Path.Hops(), goal)
			assert.NoError(t, res.Path.Validate(net.Graph, "r0c0", goal))
		}
	}
}

func TestSearch_Deterministic(t *testing.T) {
	net, err := builder.Build([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(40, 0.08))
	require.NoError(t, err)

	first, err := bfs.Search(net.Graph, "0", "39")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := bfs.Search(net.Graph, "0", "39")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSearch_Hooks(t *testing.T) {
	g := mustGraph(t, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"})

	var expanded, enqueued []string
	depths := map[string]int{}
	res, err := bfs.Search(g, "A", "D",
		bfs.WithOnExpand(func(id string, _ int) { expanded = append(expanded, id) }),
		bfs.WithOnEnqueue(func(id string, depth int) {
			enqueued = append(enqueued, id)
			depths[id] = depth
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, expanded)
	assert.Equal(t, []string{"A", "B", "C", "D"}, enqueued)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, depths)
	assert.Equal(t, len(expanded), res.Expanded)
	assert.Equal(t, len(enqueued), res.Generated)
}

func TestSearch_SelfLoopIgnored(t *testing.T) {
	g := mustGraph(t, [2]string{"A", "A"}, [2]string{"A", "B"})

	res, err := bfs.Search(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "B"}, res.Path)
}
