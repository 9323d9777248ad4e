// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Mutation and query methods of Graph.
// Determinism:
//   - Vertices() returns nodes in first-seen order.
//   - Neighbors() returns neighbors in first-insertion order.
// Concurrency:
//   - Mutations take the write lock; queries take the read lock.

package core

import "fmt"

// FromEdges builds a Graph from an edge list, inserting both directions of
// every edge and dropping parallel duplicates. The first occurrence of an
// edge fixes its position in both endpoints' neighbor lists.
//
// Errors:
//   - ErrEmptyNodeID if any endpoint is "".
//
// Complexity: O(len(edges)).
func FromEdges(edges []Edge) (*Graph, error) {
	g := NewGraph()
	for i, e := range edges {
		if _, err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("core: edge #%d (%q,%q): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// AddVertex inserts id without neighbors. Adding an existing node is a no-op.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// AddEdge records the undirected edge a–b, creating missing endpoints.
// It reports added == false when the edge already existed; the graph is
// unchanged in that case, so the original neighbor order is preserved.
//
// A self-loop (a == b) appears once in a's neighbor list.
//
// Errors:
//   - ErrEmptyNodeID if either endpoint is "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string) (bool, error) {
	if a == "" || b == "" {
		return false, ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(a)
	g.ensureVertex(b)

	// Symmetry is an invariant, so checking one direction is enough.
	if _, dup := g.linked[a][b]; dup {
		return false, nil
	}

	g.link(a, b)
	if a != b {
		g.link(b, a)
	} else {
		g.loops++
	}
	g.edges++

	return true, nil
}

// HasVertex reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether a and b are neighbors.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.linked[a][b]

	return ok
}

// Neighbors returns the neighbors of id in first-insertion order.
//
// The returned slice is the live adjacency list and must be treated as
// read-only. Later AddEdge calls never reorder it, they only append.
//
// Errors:
//   - ErrUnknownNode (wrapped with the node ID) if id is absent.
//
// Complexity: O(1).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	// Clip capacity so an append by the caller cannot write into our backing array.
	return nbs[:len(nbs):len(nbs)], nil
}

// Degree returns the number of distinct neighbors of id.
//
// Errors:
//   - ErrUnknownNode if id is absent.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return len(nbs), nil
}

// Vertices returns a copy of all node IDs in first-seen order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns every undirected edge once, ordered by the first-seen
// position of its From endpoint and then by that endpoint's neighbor order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]bool, len(g.order))
	out := make([]Edge, 0, g.edges)
	for _, u := range g.order {
		for _, v := range g.adjacency[u] {
			// v already emitted every edge it shares with u.
			if seen[v] {
				continue
			}
			out = append(out, Edge{From: u, To: v})
		}
		seen[u] = true
	}

	return out
}

// VertexCount returns the number of nodes.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Stats produces a snapshot of catalog sizes for diagnostics.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		Vertices:  len(g.order),
		Edges:     g.edges,
		SelfLoops: g.loops,
	}
	for _, id := range g.order {
		d := len(g.adjacency[id])
		if d == 0 {
			st.Isolated++
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}

	return st
}

// ensureVertex creates id if missing. Caller holds the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.order = append(g.order, id)
	g.adjacency[id] = nil
	g.linked[id] = make(map[string]struct{})
}

// link appends to as a neighbor of from. Caller holds the write lock.
func (g *Graph) link(from, to string) {
	g.adjacency[from] = append(g.adjacency[from], to)
	g.linked[from][to] = struct{}{}
}
