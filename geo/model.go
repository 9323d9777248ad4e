// SPDX-License-Identifier: MIT
//
// File: model.go
// Role: Node-to-coordinate catalog and the distance primitive used as both
//       edge cost and heuristic by the informed strategies.

// Package geo anchors graph nodes on the Earth's surface.
//
// A Model maps node IDs to Coordinates. Model.Distance is the single cost
// primitive of the module: it is the edge cost summed by A* and the route
// reporter, and the straight-line heuristic (node → goal) used by Greedy
// Best-First and A*. Being a great-circle distance it never exceeds the
// length of a road path over the same sphere, so it is admissible, and by
// the triangle inequality it is also consistent.
//
// Errors:
//
//	ErrUnknownCoordinate - the node has no coordinate in the model.
//	ErrBadCoordinate     - latitude/longitude outside WGS84 ranges or NaN.
package geo

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for the geo model.
var (
	// ErrUnknownCoordinate indicates that a node has no coordinate.
	ErrUnknownCoordinate = errors.New("geo: unknown coordinate")

	// ErrBadCoordinate indicates a coordinate outside [-90,90]×[-180,180].
	ErrBadCoordinate = errors.New("geo: coordinate out of range")

	// ErrEmptyNodeID indicates that a coordinate was set for the empty ID.
	ErrEmptyNodeID = errors.New("geo: node ID is empty")
)

// Model maps node IDs to coordinates. It is safe for concurrent use.
type Model struct {
	mu     sync.RWMutex
	coords map[string]Coordinate
	order  []string // IDs in first-set order
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{coords: make(map[string]Coordinate)}
}

// Set records the coordinate of id, replacing any previous value.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrBadCoordinate if c is not Valid.
func (m *Model) Set(id string, c Coordinate) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if !c.Valid() {
		return fmt.Errorf("%w: %q at %s", ErrBadCoordinate, id, c)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.coords[id]; !ok {
		m.order = append(m.order, id)
	}
	m.coords[id] = c

	return nil
}

// Coordinate returns the coordinate of id.
//
// Errors:
//   - ErrUnknownCoordinate (wrapped with id) if none is recorded.
func (m *Model) Coordinate(id string) (Coordinate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.coords[id]
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrUnknownCoordinate, id)
	}

	return c, nil
}

// Has reports whether id has a coordinate.
func (m *Model) Has(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.coords[id]

	return ok
}

// Len returns the number of nodes with a coordinate.
func (m *Model) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.coords)
}

// IDs returns the node IDs in the order they were first set.
func (m *Model) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.order))
	copy(out, m.order)

	return out
}

// Distance returns the great-circle distance in kilometers between a and b.
//
// Errors:
//   - ErrUnknownCoordinate if either node lacks a coordinate.
func (m *Model) Distance(a, b string) (float64, error) {
	ca, err := m.Coordinate(a)
	if err != nil {
		return 0, err
	}
	cb, err := m.Coordinate(b)
	if err != nil {
		return 0, err
	}

	return Haversine(ca, cb), nil
}
