// SPDX-License-Identifier: MIT

// Package loader reads and writes the two data files of a road network.
//
// Edge list: one undirected edge per line, two whitespace-separated node
// IDs. Blank lines and lines starting with '#' are ignored, extra fields
// are ignored, and a line with a single field is an error carrying its line
// number (ErrMalformedEdge).
//
// Coordinates: CSV rows "node,lat,lon" in degrees. A row with a different
// field count, an unparsable number or an out-of-range coordinate is
// skipped with a warning and counted in CoordinateStats.Skipped; it never
// fails the load.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/A-Alhammadi/Intro-to-AI/core"
)

// ErrMalformedEdge indicates an edge line with fewer than two fields.
var ErrMalformedEdge = errors.New("loader: malformed edge line")

// maxLineBytes bounds a single edge-list line.
const maxLineBytes = 1 << 20

// Option configures a load.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for diagnostics; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func resolve(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// LoadEdges builds a graph from an edge list.
func LoadEdges(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := resolve(opts)
	g := core.NewGraph()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedEdge, line, text)
		}
		if _, err := g.AddEdge(fields[0], fields[1]); err != nil {
			return nil, fmt.Errorf("loader: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read edges: %w", err)
	}

	st := g.Stats()
	o.logger.Debug("edges loaded", "vertices", st.Vertices, "edges", st.Edges, "lines", line)

	return g, nil
}

// LoadEdgesFile opens path and calls LoadEdges.
func LoadEdgesFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	g, err := LoadEdges(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// WriteEdges writes every edge of g once, in the graph's edge order.
// Isolated nodes cannot be expressed in an edge list and are omitted.
func WriteEdges(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%s %s\n", e.From, e.To); err != nil {
			return fmt.Errorf("loader: write edges: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("loader: write edges: %w", err)
	}

	return nil
}
