// Package core provides the graph index shared by every route search
// strategy in this module.
//
// A Graph G = (V, E) here is:
//
//   - Undirected: AddEdge(a, b) makes b a neighbor of a and a a neighbor of b.
//   - Simple: a second AddEdge between the same pair is ignored.
//   - Ordered: neighbors are returned in the order their edge was first
//     added, and Vertices() in the order nodes were first seen. All search
//     strategies are sensitive to this order for tie-breaking, so it is part
//     of the contract rather than an implementation detail.
//   - Loop-tolerant: a self-loop is stored once and never disturbs a search.
//
// Core Methods:
//
//	FromEdges(edges []Edge) (*Graph, error)   // O(E)
//	AddVertex(id string) error                // O(1)
//	AddEdge(a, b string) (added bool, err)    // O(1)†
//	Neighbors(id string) ([]string, error)    // O(1), read-only slice
//	HasVertex / HasEdge                       // O(1)
//	Vertices() []string                       // O(V) copy
//	Edges() []Edge                            // O(V+E)
//	Stats() GraphStats                        // O(V)
//
// Values:
//
//	Path     ordered node IDs from start to goal; Validate(g, start, goal).
//	Result   Path + Found flag + expansion diagnostics of one search.
//
// Errors:
//
//	ErrEmptyNodeID, ErrUnknownNode, ErrInvalidPath. Errors are wrapped with
//	the offending node ID; test with errors.Is.
//
// Concurrency:
//
//	A single sync.RWMutex guards the graph. Searches only read, so a graph
//	built once may be shared freely; mutating it during a search is
//	unsupported.
package core
