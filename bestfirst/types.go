// Package bestfirst defines core types and configuration options for the
// informed route searches: Greedy Best-First and A*.
//
// Both searches order their frontier by a priority derived from the
// straight-line (great-circle) distance between a node and the goal, taken
// from a geo.Model:
//
//	Greedy: priority = h(n)
//	A*:     priority = g(n) + w·h(n)     (w = 1 unless WithHeuristicWeight)
//
// where g(n) is the accumulated road distance from start to n.
//
// Options:
//
//	– Reopen:          A* only. Re-expand a closed node when a strictly
//	                   cheaper route to it is found later.
//	– HeuristicWeight: A* only. Scales h; w > 1 trades optimality for speed.
//	– OnExpand:        hook called for each expanded node.
//
// Errors (sentinel):
//
//	– ErrGraphNil           if the graph pointer is nil.
//	– ErrModelNil           if the geo model pointer is nil.
//	– ErrOptionViolation    if HeuristicWeight is negative or not finite.
//	– core.ErrUnknownNode   if start or goal is absent from the graph.
//	– geo.ErrUnknownCoordinate if a node reached by the search has no coordinate.
package bestfirst

import (
	"errors"
)

// Sentinel errors returned by the informed searches.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("bestfirst: graph is nil")

	// ErrModelNil indicates that a nil *geo.Model was passed.
	ErrModelNil = errors.New("bestfirst: geo model is nil")

	// ErrOptionViolation indicates an option value outside its domain.
	ErrOptionViolation = errors.New("bestfirst: invalid option value")
)

// Options configures the informed searches.
//
// Reopen          – A* re-expands closed nodes reached more cheaply (default false).
// HeuristicWeight – multiplier applied to h in A* (default 1, must be ≥ 0).
// OnExpand        – called with the node, its accumulated cost and its h value.
type Options struct {
	Reopen          bool
	HeuristicWeight float64
	OnExpand        func(id string, cost, heuristic float64)
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the behavior described in the package doc:
// no reopening, unit heuristic weight and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Reopen:          false,
		HeuristicWeight: 1,
		OnExpand:        func(string, float64, float64) {},
	}
}

// WithReopen lets A* re-expand a closed node when a strictly cheaper route
// to it is discovered. With the great-circle heuristic this never changes
// the answer; it guards A* when the heuristic is weakened or reweighted.
func WithReopen() Option {
	return func(o *Options) {
		o.Reopen = true
	}
}

// WithHeuristicWeight scales the heuristic term of A* by w.
// A negative or non-finite w makes the search return ErrOptionViolation.
func WithHeuristicWeight(w float64) Option {
	return func(o *Options) {
		o.HeuristicWeight = w
	}
}

// WithOnExpand registers a callback run each time a node is expanded.
func WithOnExpand(fn func(id string, cost, heuristic float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
