// Package dfs finds a route between two nodes of a core.Graph by depth-first
// search, and the fewest-edge route by iterative deepening.
//
// Search follows the first unvisited neighbor as deep as it can before
// backtracking and returns the first path that reaches the goal. That path
// is simple but usually not the shortest.
//
// Traversal uses an explicit stack of frames rather than recursion, so
// arbitrarily long chains cannot overflow the goroutine stack. The stack
// always holds exactly the current start → node path, and the visiting
// order is identical to the classic recursive formulation:
//
//	visit(u): mark u; if u == goal stop; for v in neighbors(u): if !marked(v) visit(v)
//
// Determinism:
//
//	Neighbors are tried in core.Graph insertion order.
//
// Complexity (V = |Vertices|, E = |Edges|):
//
//   - Search:             O(V + E) time, O(V) memory.
//   - IterativeDeepening: O(d·(V + E)) time for goal depth d, O(V) memory.
//
// Errors:
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrNegativeDepth     if IterativeDeepening gets maxDepth < 0.
//   - core.ErrUnknownNode  if start or goal is absent.
//
// An unreachable goal is not an error: Result.Found == false.
package dfs

import (
	"fmt"

	"github.com/A-Alhammadi/Intro-to-AI/core"
)

// frame is one level of the explicit DFS stack.
type frame struct {
	id    string
	depth int
	nbrs  []string // neighbors still to try, in graph order
	next  int      // index into nbrs of the next neighbor to try
}

// walker encapsulates mutable DFS state for a single invocation.
type walker struct {
	graph   *core.Graph
	opts    Options
	goal    string
	stack   []frame
	visited map[string]bool
	res     *core.Result
}

// Search runs depth-first search on g from start and returns the first path
// found to goal.
func Search(g *core.Graph, start, goal string, opts ...Option) (*core.Result, error) {
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	w := &walker{
		graph:   g,
		opts:    o,
		goal:    goal,
		visited: make(map[string]bool, g.VertexCount()),
		res:     &core.Result{},
	}
	if err := w.run(start); err != nil {
		return nil, err
	}

	return w.res, nil
}

// prepare validates inputs shared by Search and IterativeDeepening and
// resolves options.
func prepare(g *core.Graph, start, goal string, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	for _, id := range [...]string{start, goal} {
		if !g.HasVertex(id) {
			return Options{}, fmt.Errorf("dfs: %w: %q", core.ErrUnknownNode, id)
		}
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, nil
}

// run drives the stack until the goal is entered or every reachable node
// has been visited.
func (w *walker) run(start string) error {
	if err := w.enter(start, 0); err != nil {
		return err
	}
	for len(w.stack) > 0 && !w.res.Found {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbrs) {
			w.stack = w.stack[:len(w.stack)-1] // backtrack
			continue
		}
		nbr := top.nbrs[top.next]
		top.next++
		if !w.visited[nbr] {
			if err := w.enter(nbr, top.depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}

// enter marks id visited and pushes its frame. Entering the goal finishes
// the search with the stack as the path.
func (w *walker) enter(id string, depth int) error {
	w.visited[id] = true
	w.res.Generated++
	w.stack = append(w.stack, frame{id: id, depth: depth})

	if id == w.goal {
		w.res.Found = true
		w.res.Path = stackPath(w.stack)

		return nil
	}

	w.res.Expanded++
	w.opts.OnExpand(id, depth)
	nbrs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	w.stack[len(w.stack)-1].nbrs = nbrs

	return nil
}

// stackPath copies the node IDs on the stack, start first.
func stackPath(stack []frame) core.Path {
	path := make(core.Path, len(stack))
	for i, f := range stack {
		path[i] = f.id
	}

	return path
}
