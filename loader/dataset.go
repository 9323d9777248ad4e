package loader

import (
	"fmt"

	"github.com/A-Alhammadi/Intro-to-AI/core"
	"github.com/A-Alhammadi/Intro-to-AI/geo"
)

// Dataset is a loaded road network.
type Dataset struct {
	Graph       *core.Graph
	Geo         *geo.Model // nil when no coordinate file was given
	Coordinates CoordinateStats
}

// Load reads the edge list at edgesPath and, when coordsPath is not empty,
// the coordinate file. Graph nodes without a coordinate are reported at
// WARN since informed strategies will fail on them.
func Load(edgesPath, coordsPath string, opts ...Option) (*Dataset, error) {
	o := resolve(opts)

	g, err := LoadEdgesFile(edgesPath, opts...)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{Graph: g}
	if coordsPath == "" {
		return ds, nil
	}

	m, st, err := LoadCoordinatesFile(coordsPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", coordsPath, err)
	}
	ds.Geo, ds.Coordinates = m, st

	missing := 0
	for _, id := range g.Vertices() {
		if !m.Has(id) {
			missing++
		}
	}
	if missing > 0 {
		o.logger.Warn("nodes without coordinates", "count", missing, "vertices", g.VertexCount())
	}

	return ds, nil
}
