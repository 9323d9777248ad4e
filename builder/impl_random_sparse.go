// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - RandomSparse(n, p): scattered towns with random roads.
//
// Model:
//   - n nodes placed uniformly in a square of side spacing*√n km whose
//     south-west corner is the origin.
//   - Each unordered pair {i, j}, i < j, is linked independently with
//     probability p (Erdős–Rényi).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource); positions are random
//     even when p ∈ {0, 1}.
//
// Determinism:
//   - All n positions are drawn first (i asc), then edge trials run for
//     i asc, j asc (j > i).
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.

package builder

import (
	"fmt"
	"math"

	"github.com/A-Alhammadi/Intro-to-AI/geo"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random road network over
// n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(net *Network, cfg builderConfig) error {
		// 1) Validate parameters before any side effect.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		rng := cfg.rng

		// 2) Scatter the nodes.
		side := cfg.spacingKm * math.Sqrt(float64(n))
		for i := 0; i < n; i++ {
			pos := geo.Offset(geo.Offset(cfg.origin, rng.Float64()*side, 0), 0, rng.Float64()*side)
			if err := net.place(methodRandomSparse, cfg.idFn(i), pos); err != nil {
				return err
			}
		}

		// 3) Bernoulli trial per unordered pair.
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				if rng.Float64() < p || p == probMax {
					if err := net.link(methodRandomSparse, u, cfg.idFn(j)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
