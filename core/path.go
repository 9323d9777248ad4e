// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Path and Result values produced by the search strategies.

package core

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of node IDs from a start to a goal.
// A path for start == goal holds a single element.
type Path []string

// Start returns the first node, or "" for an empty path.
func (p Path) Start() string {
	if len(p) == 0 {
		return ""
	}

	return p[0]
}

// Goal returns the last node, or "" for an empty path.
func (p Path) Goal() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

// Hops returns the number of edges traversed; 0 for empty or single-node paths.
func (p Path) Hops() int {
	if len(p) < 2 {
		return 0
	}

	return len(p) - 1
}

// String renders the path as "A -> B -> C".
func (p Path) String() string {
	return strings.Join(p, " -> ")
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Validate checks that p starts at start, ends at goal and that every
// consecutive pair is an edge of g.
//
// Errors:
//   - ErrInvalidPath wrapped with the first violated condition.
func (p Path) Validate(g *Graph, start, goal string) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if p[0] != start {
		return fmt.Errorf("%w: starts at %q, want %q", ErrInvalidPath, p[0], start)
	}
	if p[len(p)-1] != goal {
		return fmt.Errorf("%w: ends at %q, want %q", ErrInvalidPath, p[len(p)-1], goal)
	}
	if start == goal && len(p) != 1 {
		return fmt.Errorf("%w: start equals goal but path has %d nodes", ErrInvalidPath, len(p))
	}
	for i := 1; i < len(p); i++ {
		if !g.HasEdge(p[i-1], p[i]) {
			return fmt.Errorf("%w: %q and %q are not adjacent (step %d)", ErrInvalidPath, p[i-1], p[i], i)
		}
	}

	return nil
}

// Result is the outcome of a single search invocation.
//
// Found == false with a nil error means the goal is unreachable from the
// start (within the depth bound for iterative deepening). It is a normal
// outcome, not a failure.
type Result struct {
	// Path is the route found; nil when Found is false.
	Path Path

	// Found reports whether the goal was reached.
	Found bool

	// Expanded counts nodes whose neighbors were examined.
	Expanded int

	// Generated counts frontier insertions (queue, stack or heap pushes).
	Generated int

	// Limit is the depth limit that produced Path in iterative deepening,
	// or the last limit tried when nothing was found. Zero for other strategies.
	Limit int
}
