// Package bfs finds the fewest-edge route between two nodes of a core.Graph
// with breadth-first search.
//
// Nodes are explored in non-decreasing distance (edge count) from the start.
// A node is marked visited when it is enqueued, never when it is dequeued, so
// no node enters the queue twice and the first time the goal is dequeued its
// path has the minimum possible number of edges.
//
// Determinism:
//
//	Neighbors are enqueued in core.Graph insertion order, so the returned
//	path is fully reproducible for a fixed graph.
//
// Complexity (V = |Vertices|, E = |Edges|):
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, visited set and parent links
//
// Errors:
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - core.ErrUnknownNode  if start or goal is absent.
//
// An unreachable goal is not an error: Search returns Result.Found == false.
package bfs

import (
	"fmt"

	"github.com/A-Alhammadi/Intro-to-AI/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for a single invocation.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	parent  map[string]string
	res     *core.Result
}

// Search runs breadth-first search on g from start until goal is dequeued
// or the queue is exhausted.
func Search(g *core.Graph, start, goal string, opts ...Option) (*core.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate endpoints
	for _, id := range [...]string{start, goal} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("bfs: %w: %q", core.ErrUnknownNode, id)
		}
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		parent:  make(map[string]string, n),
		res:     &core.Result{},
	}

	// Seed queue with start (no parent)
	w.enqueue(start, 0, "")

	return w.res, w.loop(goal)
}

// enqueue marks id visited, records its parent and appends it to the queue.
func (w *walker) enqueue(id string, depth int, parent string) {
	w.visited[id] = true
	if parent != "" {
		w.parent[id] = parent
	}
	w.res.Generated++
	w.opts.OnEnqueue(id, depth)
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// loop processes the queue until the goal is dequeued or the queue is empty.
func (w *walker) loop(goal string) error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if item.id == goal {
			w.res.Found = true
			w.res.Path = w.pathTo(goal)

			return nil
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen neighbor of item one level deeper.
func (w *walker) expand(item queueItem) error {
	w.res.Expanded++
	w.opts.OnExpand(item.id, item.depth)

	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, item.depth+1, item.id)
		}
	}

	return nil
}

// pathTo walks parent links back from dest and returns start → dest.
func (w *walker) pathTo(dest string) core.Path {
	path := core.Path{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
