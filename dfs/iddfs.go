package dfs

import (
	"fmt"

	"github.com/A-Alhammadi/Intro-to-AI/core"
)

// limitedWalker runs one depth-limited pass.
//
// A plain visited set makes a depth-limited pass incomplete: a node first
// reached through a long branch would block the shorter branch explored
// later. Instead each pass keeps the shallowest depth at which a node was
// entered and re-enters it only from a strictly shallower depth. Nodes on
// the current path are always shallower than the frontier, so cycles are
// still never followed.
type limitedWalker struct {
	graph   *core.Graph
	opts    Options
	goal    string
	limit   int
	stack   []frame
	depthOf map[string]int
	cutoff  bool // some node was not expanded because of the limit
	res     *core.Result
}

// IterativeDeepening runs depth-limited DFS from start with limits
// 0, 1, …, maxDepth and stops at the first pass that enters goal. The
// returned path therefore has the fewest possible edges, the same count BFS
// finds, while memory stays proportional to the path length.
//
// The run also stops early, with Found == false, once a pass completes
// without pruning any node at the limit: deeper passes could not reach
// anything new. Result.Limit reports the last limit tried. Expanded and
// Generated accumulate over all passes.
func IterativeDeepening(g *core.Graph, start, goal string, maxDepth int, opts ...Option) (*core.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, maxDepth)
	}
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	res := &core.Result{}
	for limit := 0; limit <= maxDepth; limit++ {
		res.Limit = limit
		o.OnIteration(limit)

		w := &limitedWalker{
			graph:   g,
			opts:    o,
			goal:    goal,
			limit:   limit,
			depthOf: make(map[string]int),
			res:     res,
		}
		if err := w.run(start); err != nil {
			return nil, err
		}
		if res.Found || !w.cutoff {
			break
		}
	}

	return res, nil
}

// run performs a single depth-limited pass.
func (w *limitedWalker) run(start string) error {
	if err := w.enter(start, 0); err != nil {
		return err
	}
	for len(w.stack) > 0 && !w.res.Found {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbrs) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		nbr := top.nbrs[top.next]
		top.next++
		depth := top.depth + 1
		if seen, ok := w.depthOf[nbr]; ok && seen <= depth {
			continue
		}
		if err := w.enter(nbr, depth); err != nil {
			return err
		}
	}

	return nil
}

// enter records id at depth and pushes its frame. Nodes at the limit are
// pushed without neighbors, so they are popped again immediately.
func (w *limitedWalker) enter(id string, depth int) error {
	w.depthOf[id] = depth
	w.res.Generated++
	w.stack = append(w.stack, frame{id: id, depth: depth})

	if id == w.goal {
		w.res.Found = true
		w.res.Path = stackPath(w.stack)

		return nil
	}

	nbrs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	if depth == w.limit {
		if len(nbrs) > 0 {
			w.cutoff = true
		}

		return nil
	}

	w.res.Expanded++
	w.opts.OnExpand(id, depth)
	w.stack[len(w.stack)-1].nbrs = nbrs

	return nil
}
