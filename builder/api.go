// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Creates the Network, resolves
//     cfg, runs cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     graphs and coordinates.
//   - Safety: never panic; constructors return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/A-Alhammadi/Intro-to-AI/core"
	"github.com/A-Alhammadi/Intro-to-AI/geo"
)

// Network is a built fixture: the road graph and the coordinates of its nodes.
type Network struct {
	Graph *core.Graph
	Geo   *geo.Model
}

// Constructor applies a deterministic mutation to a Network using the
// resolved builderConfig. Constructors validate parameters before touching
// the network and return sentinel errors instead of panicking.
type Constructor func(n *Network, cfg builderConfig) error

// Build creates an empty Network, resolves the builder configuration from
// bopts and applies all constructors in order. The first constructor error is
// wrapped with "Build: %w" and returned; no partial network is returned.
//
// Complexity: O(len(bopts)) to resolve options plus Σ constructor costs.
func Build(bopts []BuilderOption, cons ...Constructor) (*Network, error) {
	n := &Network{Graph: core.NewGraph(), Geo: geo.NewModel()}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return n, nil
}

// place adds id to the graph and records its coordinate.
func (n *Network) place(method, id string, c geo.Coordinate) error {
	if err := n.Graph.AddVertex(id); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}
	if err := n.Geo.Set(id, c); err != nil {
		return fmt.Errorf("%s: Set(%s): %w", method, id, err)
	}

	return nil
}

// link adds the undirected edge u-v.
func (n *Network) link(method, u, v string) error {
	if _, err := n.Graph.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}
