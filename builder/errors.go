// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors of the fixture builder.
//
// Error policy:
//   - Callers branch with errors.Is(err, ErrX).
//   - Constructors wrap sentinels with method context: "Chain: n=1 < min=2: <sentinel>".
//   - Build adds a single "Build: " prefix at the API boundary.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that Build could not run a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
