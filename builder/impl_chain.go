// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_chain.go - Chain(n): a straight road of n towns.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Node i is cfg.idFn(i), placed i*spacing km north of the origin.
//   - Edges (i, i+1) for i = 0..n-2, emitted in ascending order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/A-Alhammadi/Intro-to-AI/geo"
)

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor that builds a path of n nodes.
func Chain(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			pos := geo.Offset(cfg.origin, float64(i)*cfg.spacingKm, 0)
			if err := net.place(methodChain, cfg.idFn(i), pos); err != nil {
				return err
			}
		}
		for i := 0; i+1 < n; i++ {
			if err := net.link(methodChain, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Link returns a Constructor that adds the single edge a-b. Endpoints that
// do not exist yet are created without coordinates.
func Link(a, b string) Constructor {
	return func(net *Network, _ builderConfig) error {
		return net.link("Link", a, b)
	}
}
