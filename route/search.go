package route

import (
	"fmt"

	"github.com/A-Alhammadi/Intro-to-AI/bestfirst"
	"github.com/A-Alhammadi/Intro-to-AI/bfs"
	"github.com/A-Alhammadi/Intro-to-AI/core"
	"github.com/A-Alhammadi/Intro-to-AI/dfs"
	"github.com/A-Alhammadi/Intro-to-AI/geo"
)

// SearchOption tunes a single Search call.
type SearchOption func(*searchOptions)

type searchOptions struct {
	reopen   bool
	onExpand func(id string)
}

// WithReopen enables reopening of closed nodes in A*.
func WithReopen(on bool) SearchOption {
	return func(o *searchOptions) {
		o.reopen = on
	}
}

// WithExpandHook registers fn to run for every node any strategy expands.
func WithExpandHook(fn func(id string)) SearchOption {
	return func(o *searchOptions) {
		o.onExpand = fn
	}
}

// Search runs strategy from start to goal.
//
// m is required only for GreedyBestFirst and AStar (ErrGeoRequired) and
// maxDepth is used only by IterativeDeepening. A missing route yields a
// Result with Found == false and a nil error.
//
// Errors:
//   - ErrUnknownStrategy for an invalid strategy.
//   - ErrGeoRequired for an informed strategy with m == nil.
//   - core.ErrUnknownNode, geo.ErrUnknownCoordinate, dfs.ErrNegativeDepth
//     and the other package sentinels, passed through unchanged.
func Search(strategy Strategy, g *core.Graph, m *geo.Model, start, goal string, maxDepth int, opts ...SearchOption) (*core.Result, error) {
	o := searchOptions{onExpand: func(string) {}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.onExpand == nil {
		o.onExpand = func(string) {}
	}

	switch strategy {
	case BreadthFirst:
		return bfs.Search(g, start, goal,
			bfs.WithOnExpand(func(id string, _ int) { o.onExpand(id) }))
	case DepthFirst:
		return dfs.Search(g, start, goal,
			dfs.WithOnExpand(func(id string, _ int) { o.onExpand(id) }))
	case IterativeDeepening:
		return dfs.IterativeDeepening(g, start, goal, maxDepth,
			dfs.WithOnExpand(func(id string, _ int) { o.onExpand(id) }))
	case GreedyBestFirst, AStar:
		if m == nil {
			return nil, fmt.Errorf("%w: %s", ErrGeoRequired, strategy)
		}
		bopts := []bestfirst.Option{
			bestfirst.WithOnExpand(func(id string, _, _ float64) { o.onExpand(id) }),
		}
		if strategy == GreedyBestFirst {
			return bestfirst.Greedy(g, m, start, goal, bopts...)
		}
		if o.reopen {
			bopts = append(bopts, bestfirst.WithReopen())
		}

		return bestfirst.AStar(g, m, start, goal, bopts...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
}
