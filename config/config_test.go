package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Alhammadi/Intro-to-AI/config"
	"github.com/A-Alhammadi/Intro-to-AI/route"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "waypath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, route.AStar, cfg.Strategy())
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
data:
  edges: towns.txt
search:
  strategy: "3"
  max_depth: 12
  reopen_closed: true
server:
  read_timeout: 2s
log:
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "towns.txt", cfg.Data.Edges)
	assert.Equal(t, "coordinates.csv", cfg.Data.Coordinates)
	assert.Equal(t, route.IterativeDeepening, cfg.Strategy())
	assert.Equal(t, 12, cfg.Search.MaxDepth)
	assert.True(t, cfg.Search.ReopenClosed)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("WAYPATH_STRATEGY", "bfs")
	t.Setenv("WAYPATH_MAX_DEPTH", "7")
	t.Setenv("WAYPATH_LOG_LEVEL", "debug")

	cfg, err := config.Load(writeFile(t, "search:\n  strategy: dfs\n"))
	require.NoError(t, err)
	assert.Equal(t, route.BreadthFirst, cfg.Strategy())
	assert.Equal(t, 7, cfg.Search.MaxDepth)
	assert.Equal(t, "debug", cfg.Log.Level)

	t.Setenv("WAYPATH_MAX_DEPTH", "deep")
	_, err = config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "search:\n  strategyy: bfs\n"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "search: [unclosed\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"strategy", func(c *config.Config) { c.Search.Strategy = "dijkstra" }},
		{"max depth", func(c *config.Config) { c.Search.MaxDepth = -1 }},
		{"addr", func(c *config.Config) { c.Server.Addr = "" }},
		{"read timeout", func(c *config.Config) { c.Server.ReadTimeout = 0 }},
		{"shutdown grace", func(c *config.Config) { c.Server.ShutdownGrace = -time.Second }},
		{"log level", func(c *config.Config) { c.Log.Level = "verbose" }},
		{"log format", func(c *config.Config) { c.Log.Format = "xml" }},
		{"trace exporter", func(c *config.Config) { c.Trace.Exporter = "zipkin" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
