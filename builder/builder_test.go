package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Alhammadi/Intro-to-AI/builder"
	"github.com/A-Alhammadi/Intro-to-AI/geo"
)

func TestChain(t *testing.T) {
	net, err := builder.Build(
		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("v")), builder.WithSpacingKm(5)},
		builder.Chain(4),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"v0", "v1", "v2", "v3"}, net.Graph.Vertices())
	assert.Equal(t, 3, net.Graph.EdgeCount())
	assert.Equal(t, 4, net.Geo.Len())

	nbs, err := net.Graph.Neighbors("v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v2"}, nbs)

	d, err := net.Geo.Distance("v0", "v3")
	require.NoError(t, err)
	assert.InDelta(t, 15.0, d, 1e-6)
}

func TestGrid(t *testing.T) {
	net, err := builder.Build(nil, builder.Grid(3, 4))
	require.NoError(t, err)

	st := net.Graph.Stats()
	assert.Equal(t, 12, st.Vertices)
	assert.Equal(t, 3*3+4*2, st.Edges)
	assert.Equal(t, 4, st.MaxDegree)

	nbs, err := net.Graph.Neighbors(builder.GridID(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"r0c1", "r1c0", "r1c2", "r2c1"}, nbs)

	d, err := net.Geo.Distance("r0c0", "r1c0")
	require.NoError(t, err)
	assert.InDelta(t, builder.DefaultSpacingKm, d, 1e-6)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *builder.Network {
		net, err := builder.Build([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.15))
		require.NoError(t, err)
		return net
	}
	a, b := build(), build()

	assert.Equal(t, a.Graph.Edges(), b.Graph.Edges())
	for _, id := range a.Geo.IDs() {
		ca, err := a.Geo.Coordinate(id)
		require.NoError(t, err)
		cb, err := b.Geo.Coordinate(id)
		require.NoError(t, err)
		assert.Equal(t, ca, cb)
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	net, err := builder.Build([]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(1)))},
		builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, net.Graph.EdgeCount())

	net, err = builder.Build([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, net.Graph.EdgeCount())
	assert.Equal(t, 6, net.Graph.VertexCount())
}

func TestLink_JoinsComponents(t *testing.T) {
	net, err := builder.Build(
		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("a"))},
		builder.Chain(2),
		builder.Link("a1", "r0c0"),
		builder.Grid(1, 2),
	)
	require.NoError(t, err)
	assert.True(t, net.Graph.HasEdge("a1", "r0c0"))
	assert.True(t, net.Geo.Has("r0c0"))
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		{"chain too short", nil, builder.Chain(1), builder.ErrTooFewVertices},
		{"grid zero rows", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"random no vertices", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"random bad p", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"random no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			net, err := builder.Build(tc.opts, tc.con)
			assert.Nil(t, net)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithSpacingKm(0) })
	assert.Panics(t, func() { builder.WithOrigin(geo.Coordinate{Lat: 100}) })
}

func TestIDFns(t *testing.T) {
	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},
		{"AlphanumericIDFn_low", builder.AlphanumericIDFn, 10, "a", false},
		{"AlphanumericIDFn_neg", builder.AlphanumericIDFn, -5, "", true},
		{"ExcelColumnIDFn_startDouble", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"PrefixIDFn", builder.PrefixIDFn("city"), 7, "city7", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestIDScheme(t *testing.T) {
	for _, name := range []string{"", "decimal", "alnum", "excel"} {
		fn, ok := builder.IDScheme(name)
		assert.True(t, ok, name)
		assert.NotNil(t, fn, name)
	}
	_, ok := builder.IDScheme("letters")
	assert.False(t, ok)
}
