package loader_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Alhammadi/Intro-to-AI/builder"
	"github.com/A-Alhammadi/Intro-to-AI/loader"
)

func TestLoadEdges(t *testing.T) {
	in := `# towns
Anthony Bluff_City

Bluff_City  Caldwell   extra ignored
Anthony	Harper
Harper Anthony
`
	g, err := loader.LoadEdges(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Anthony", "Bluff_City", "Caldwell", "Harper"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())

	nbs, err := g.Neighbors("Anthony")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bluff_City", "Harper"}, nbs)
}

func TestLoadEdges_Malformed(t *testing.T) {
	_, err := loader.LoadEdges(strings.NewReader("A B\nlonely\nC D\n"))
	assert.ErrorIs(t, err, loader.ErrMalformedEdge)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadCoordinates_SkipsBadRows(t *testing.T) {
	in := `Anthony,37.1534,-98.0312
# comment
Bluff_City, 37.0756 ,-97.8745
Caldwell,37.0322
Harper,north,-98.0259
Mayfield,95.0,-97.5
Argonia,37.2664,-97.7653,extra
`
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m, st, err := loader.LoadCoordinates(strings.NewReader(in), loader.WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, loader.CoordinateStats{Loaded: 2, Skipped: 4}, st)
	assert.Equal(t, []string{"Anthony", "Bluff_City"}, m.IDs())

	c, err := m.Coordinate("Bluff_City")
	require.NoError(t, err)
	assert.Equal(t, 37.0756, c.Lat)
	assert.Equal(t, -97.8745, c.Lon)

	assert.Equal(t, 4, strings.Count(logs.String(), "skipping malformed coordinate row"))
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "line=4")
}

func TestRoundTrip(t *testing.T) {
	net, err := builder.Build([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(25, 0.2))
	require.NoError(t, err)

	var edges, coords bytes.Buffer
	require.NoError(t, loader.WriteEdges(&edges, net.Graph))
	require.NoError(t, loader.WriteCoordinates(&coords, net.Geo))

	g, err := loader.LoadEdges(&edges)
	require.NoError(t, err)
	assert.Equal(t, net.Graph.EdgeCount(), g.EdgeCount())
	for _, e := range net.Graph.Edges() {
		assert.True(t, g.HasEdge(e.From, e.To), "%s-%s", e.From, e.To)
	}

	m, st, err := loader.LoadCoordinates(&coords)
	require.NoError(t, err)
	assert.Equal(t, 25, st.Loaded)
	assert.Zero(t, st.Skipped)
	for _, id := range net.Geo.IDs() {
		want, err := net.Geo.Coordinate(id)
		require.NoError(t, err)
		got, err := m.Coordinate(id)
		require.NoError(t, err)
		assert.Equal(t, want, got, id)
	}
}

func TestLoad_Files(t *testing.T) {
	dir := t.TempDir()
	edges := filepath.Join(dir, "edges.txt")
	coords := filepath.Join(dir, "coords.csv")
	require.NoError(t, os.WriteFile(edges, []byte("A B\nB C\n"), 0o600))
	require.NoError(t, os.WriteFile(coords, []byte("A,37,-97\nB,37.1,-97\n"), 0o600))

	ds, err := loader.Load(edges, coords)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Graph.VertexCount())
	assert.Equal(t, 2, ds.Geo.Len())
	assert.Equal(t, 2, ds.Coordinates.Loaded)

	ds, err = loader.Load(edges, "")
	require.NoError(t, err)
	assert.Nil(t, ds.Geo)

	_, err = loader.Load(filepath.Join(dir, "missing.txt"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = loader.Load(edges, filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
