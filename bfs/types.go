// Package bfs provides options and error definitions
// for goal-directed breadth-first search over a core.Graph.
package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to observe a BFS run.
type Options struct {
	// OnEnqueue is called when a node is discovered and enqueued,
	// with its depth (edges from the start).
	OnEnqueue func(id string, depth int)

	// OnExpand is called when a dequeued node has its neighbors examined.
	OnExpand func(id string, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(string, int) {},
		OnExpand:  func(string, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback to run before a node's neighbors are examined.
func WithOnExpand(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
