// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options and the resolved builder configuration.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   - Later options override earlier ones.
//
// Deterministic defaults:
//   - idFn      = DefaultIDFn        ("0","1","2",...)
//   - rng       = nil                (no randomness unless seeded)
//   - origin    = DefaultOrigin      (37°N 97°W)
//   - spacingKm = DefaultSpacingKm   (10 km between neighbors)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/A-Alhammadi/Intro-to-AI/geo"
)

// Layout defaults.
const (
	// DefaultSpacingKm is the distance between adjacent fixture nodes.
	DefaultSpacingKm = 10.0
)

// DefaultOrigin anchors generated fixtures when WithOrigin is not given.
var DefaultOrigin = geo.Coordinate{Lat: 37, Lon: -97}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn      IDFn           // index -> node ID
	rng       *rand.Rand     // nil means no randomness
	origin    geo.Coordinate // position of index 0 / row 0 col 0
	spacingKm float64        // kilometers between lattice neighbors
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts in order over the deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		origin:    DefaultOrigin,
		spacingKm: DefaultSpacingKm,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithIDScheme sets the vertex ID generator used by Chain and RandomSparse.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOrigin moves the anchor of the layout. Panics on an invalid coordinate.
func WithOrigin(origin geo.Coordinate) BuilderOption {
	if !origin.Valid() {
		panic(fmt.Sprintf("builder: WithOrigin(%s): invalid coordinate", origin))
	}
	return func(c *builderConfig) {
		c.origin = origin
	}
}

// WithSpacingKm sets the distance between adjacent nodes. Panics unless km > 0.
func WithSpacingKm(km float64) BuilderOption {
	if !(km > 0) {
		panic(fmt.Sprintf("builder: WithSpacingKm(%g): must be > 0", km))
	}
	return func(c *builderConfig) {
		c.spacingKm = km
	}
}
