package bestfirst

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/A-Alhammadi/Intro-to-AI/core"
	"github.com/A-Alhammadi/Intro-to-AI/geo"
)

// strategy selects how an entry's priority is derived.
type strategy int

const (
	greedy strategy = iota
	astar
)

// Greedy runs Greedy Best-First search from start to goal.
//
// The frontier is ordered by straight-line distance to the goal alone. A
// node is closed when popped and unclosed neighbors are pushed. The first
// route to reach the goal is returned; it is usually short but carries no
// optimality guarantee.
//
// Complexity: O((V + E) log E) time, O(V + E) memory.
func Greedy(g *core.Graph, m *geo.Model, start, goal string, opts ...Option) (*core.Result, error) {
	return run(greedy, g, m, start, goal, opts)
}

// AStar runs A* search from start to goal.
//
// The frontier is ordered by g + w·h. The great-circle heuristic is
// admissible and consistent, so with w ≤ 1 the returned route has the
// minimum total distance. Closed nodes are not reopened unless WithReopen
// is given.
//
// Complexity: O((V + E) log E) time, O(V + E) memory.
func AStar(g *core.Graph, m *geo.Model, start, goal string, opts ...Option) (*core.Result, error) {
	return run(astar, g, m, start, goal, opts)
}

// run validates inputs and drives a single search.
func run(kind strategy, g *core.Graph, m *geo.Model, start, goal string, opts []Option) (*core.Result, error) {
	// 1) Validate graph, model and options.
	if g == nil {
		return nil, ErrGraphNil
	}
	if m == nil {
		return nil, ErrModelNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	w := cfg.HeuristicWeight
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return nil, fmt.Errorf("%w: heuristic weight %g", ErrOptionViolation, w)
	}

	// 2) Endpoints must exist in the graph.
	for _, id := range [...]string{start, goal} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("bestfirst: %w: %q", core.ErrUnknownNode, id)
		}
	}

	// 3) Prepare state and run.
	n := g.VertexCount()
	r := &runner{
		g:      g,
		m:      m,
		kind:   kind,
		goal:   goal,
		opts:   cfg,
		pq:     make(frontier, 0, n),
		closed: make(map[string]bool, n),
		best:   make(map[string]float64, n),
		parent: make(map[string]string, n),
		h:      make(map[string]float64, n),
		res:    &core.Result{},
	}
	if err := r.init(start); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state of one informed search.
type runner struct {
	g      *core.Graph
	m      *geo.Model
	kind   strategy
	goal   string
	opts   Options
	pq     frontier
	seq    uint64
	closed map[string]bool    // popped nodes
	best   map[string]float64 // A*: cheapest cost pushed so far per node
	parent map[string]string  // predecessor of each closed node
	h      map[string]float64 // heuristic cache
	res    *core.Result
}

// reopen reports whether closed nodes may be expanded again.
func (r *runner) reopen() bool {
	return r.kind == astar && r.opts.Reopen
}

// init pushes the start entry.
func (r *runner) init(start string) error {
	h, err := r.heuristic(start)
	if err != nil {
		return err
	}
	heap.Init(&r.pq)
	r.best[start] = 0
	r.push(&entry{priority: r.priority(0, h), node: start, root: true})

	return nil
}

// process pops entries until the goal is popped or the frontier empties.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the best entry and drop it if outdated.
		e := heap.Pop(&r.pq).(*entry)
		if r.stale(e) {
			continue
		}

		// 2) Close the node and fix its predecessor.
		r.closed[e.node] = true
		if !e.root {
			r.parent[e.node] = e.parent
		}

		// 3) Goal test on pop.
		if e.node == r.goal {
			r.res.Found = true
			r.res.Path = r.pathTo(e.node)

			return nil
		}

		// 4) Expand.
		r.res.Expanded++
		r.opts.OnExpand(e.node, e.cost, r.h[e.node])
		if err := r.expand(e); err != nil {
			return err
		}
	}

	return nil
}

// stale reports whether e no longer describes the best route to its node.
func (r *runner) stale(e *entry) bool {
	if r.reopen() {
		return e.cost > r.best[e.node]
	}

	return r.closed[e.node]
}

// expand pushes an entry for every neighbor of e that may still improve.
func (r *runner) expand(e *entry) error {
	neighbors, err := r.g.Neighbors(e.node)
	if err != nil {
		return fmt.Errorf("bestfirst: neighbors of %q: %w", e.node, err)
	}

	for _, nbr := range neighbors {
		if r.closed[nbr] && !r.reopen() {
			continue
		}

		step, err := r.m.Distance(e.node, nbr)
		if err != nil {
			return fmt.Errorf("bestfirst: edge %q-%q: %w", e.node, nbr, err)
		}
		cost := e.cost + step

		// A* keeps only strictly cheaper routes (lazy decrease-key).
		if r.kind == astar {
			if b, ok := r.best[nbr]; ok && cost >= b {
				continue
			}
			r.best[nbr] = cost
		}

		h, err := r.heuristic(nbr)
		if err != nil {
			return err
		}
		r.push(&entry{priority: r.priority(cost, h), cost: cost, node: nbr, parent: e.node})
	}

	return nil
}

// push stamps e with the next sequence number and adds it to the frontier.
func (r *runner) push(e *entry) {
	e.seq = r.seq
	r.seq++
	r.res.Generated++
	heap.Push(&r.pq, e)
}

// priority combines accumulated cost and heuristic for the strategy.
func (r *runner) priority(cost, h float64) float64 {
	if r.kind == greedy {
		return h
	}

	return cost + r.opts.HeuristicWeight*h
}

// heuristic returns the straight-line distance from id to the goal.
func (r *runner) heuristic(id string) (float64, error) {
	if h, ok := r.h[id]; ok {
		return h, nil
	}
	h, err := r.m.Distance(id, r.goal)
	if err != nil {
		return 0, fmt.Errorf("bestfirst: heuristic for %q: %w", id, err)
	}
	r.h[id] = h

	return h, nil
}

// pathTo follows parent links back from dest and returns start → dest.
func (r *runner) pathTo(dest string) core.Path {
	path := core.Path{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
