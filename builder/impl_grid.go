// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go - Grid(rows, cols): a Manhattan-style street lattice.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   - IDs are fixed as "r<row>c<col>" (cfg.idFn is not used).
//   - Cell (r, c) sits r*spacing km north of the origin, then c*spacing km east.
//   - Vertices are added row-major; for each cell the right edge is emitted
//     before the bottom edge.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/A-Alhammadi/Intro-to-AI/geo"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "r%dc%d"
)

// GridID returns the node ID Grid assigns to cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			rowStart := geo.Offset(cfg.origin, float64(r)*cfg.spacingKm, 0)
			for c := 0; c < cols; c++ {
				pos := geo.Offset(rowStart, 0, float64(c)*cfg.spacingKm)
				if err := net.place(methodGrid, GridID(r, c), pos); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := net.link(methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := net.link(methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
