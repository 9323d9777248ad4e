// Package dfs provides options and error definitions
// for goal-directed depth-first and iterative-deepening search.
package dfs

import "errors"

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNegativeDepth is returned when IterativeDeepening gets maxDepth < 0.
	ErrNegativeDepth = errors.New("dfs: max depth is negative")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to observe a run.
type Options struct {
	// OnExpand is called when a node's neighbors are about to be examined,
	// with its depth on the current path.
	OnExpand func(id string, depth int)

	// OnIteration is called by IterativeDeepening before each depth-limited
	// pass with the limit of that pass.
	OnIteration func(limit int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExpand:    func(string, int) {},
		OnIteration: func(int) {},
	}
}

// WithOnExpand registers a callback to run before a node is expanded.
func WithOnExpand(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnIteration registers a callback to run before each deepening pass.
func WithOnIteration(fn func(limit int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}
