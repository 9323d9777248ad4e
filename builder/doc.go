// SPDX-License-Identifier: MIT

// Package builder assembles deterministic road-network fixtures: a core.Graph
// together with a geo.Model that places every node on the map.
//
// Build resolves BuilderOptions into an immutable configuration and applies
// Constructors in order. Each Constructor adds nodes with coordinates laid
// out on a kilometer grid around an origin, so the great-circle heuristic of
// the informed strategies is meaningful on every fixture.
//
// Constructors:
//
//	Chain(n)             n nodes north of the origin, each linked to the next.
//	Grid(rows, cols)     4-neighborhood lattice with IDs "r<row>c<col>".
//	RandomSparse(n, p)   n nodes scattered in a square, each pair linked with
//	                     probability p (requires WithSeed or WithRand).
//	Link(a, b)           a single extra edge, e.g. to join two components.
//
// Determinism:
//
//	Same options, same seed and same constructor order produce identical
//	graphs, identical neighbor order and identical coordinates.
//
// Errors (use errors.Is):
//
//	ErrTooFewVertices      size parameter below the constructor minimum.
//	ErrInvalidProbability  p outside [0, 1].
//	ErrNeedRandSource      stochastic constructor without an RNG.
//	ErrConstructFailed     nil constructor passed to Build.
//
// Option constructors panic on meaningless input (nil ID function, nil RNG,
// non-positive spacing, invalid origin). Constructors never panic.
package builder
