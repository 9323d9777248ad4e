// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and sentinel errors of the route graph index.
// Policy:
//   - The graph is undirected; every AddEdge records both directions.
//   - Neighbor order is the order of first insertion and never changes.
//   - Parallel edges are collapsed; self-loops are kept once.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node identifier was the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrUnknownNode indicates an operation referenced a node absent from the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrInvalidPath indicates that a Path does not satisfy its invariants.
	ErrInvalidPath = errors.New("core: invalid path")
)

// Edge is one undirected connection between two named nodes.
type Edge struct {
	// From is one endpoint of the edge.
	From string

	// To is the other endpoint of the edge.
	To string
}

// Graph is an undirected adjacency index over string node identifiers.
//
// adjacency[id] lists neighbors in first-insertion order; linked[id] mirrors
// it as a set so duplicate edges are rejected in O(1). order keeps nodes in
// the order they were first seen so Vertices() is reproducible.
//
// A Graph is safe for concurrent use. Searches only read it, so one built
// Graph may be shared by any number of sequential or concurrent searches.
type Graph struct {
	mu sync.RWMutex // guards every field below

	order     []string                       // node IDs in first-seen order
	adjacency map[string][]string            // node → neighbors (insertion order)
	linked    map[string]map[string]struct{} // node → neighbor set
	edges     int                            // undirected edge count
	loops     int                            // self-loop count (subset of edges)
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	Vertices  int // number of nodes
	Edges     int // number of distinct undirected edges
	SelfLoops int // edges whose endpoints coincide
	Isolated  int // nodes without any neighbor
	MaxDegree int // largest neighbor count
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string][]string),
		linked:    make(map[string]map[string]struct{}),
	}
}
