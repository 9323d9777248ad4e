package route

import (
	"fmt"
	"time"

	"github.com/A-Alhammadi/Intro-to-AI/core"
	"github.com/A-Alhammadi/Intro-to-AI/geo"
)

// Cost returns the total great-circle length of path in kilometers: the sum
// of the distances between consecutive nodes. A single-node path costs 0.
//
// Errors:
//   - ErrNoRoute if path is empty.
//   - geo.ErrUnknownCoordinate if a node on the path has no coordinate.
func Cost(path core.Path, m *geo.Model) (float64, error) {
	if len(path) == 0 {
		return 0, ErrNoRoute
	}
	if m == nil {
		return 0, ErrGeoRequired
	}

	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		d, err := m.Distance(path[i], path[i+1])
		if err != nil {
			return 0, fmt.Errorf("route: cost of hop %d: %w", i, err)
		}
		total += d
	}

	return total, nil
}

// Report is the outcome of one planned search.
type Report struct {
	Strategy   Strategy      `json:"strategy"`
	Start      string        `json:"start"`
	Goal       string        `json:"goal"`
	Found      bool          `json:"found"`
	Path       core.Path     `json:"path"`
	Hops       int           `json:"hops"`
	DistanceKm float64       `json:"distance_km"`
	Expanded   int           `json:"expanded"`
	Generated  int           `json:"generated"`
	Limit      int           `json:"limit,omitempty"`
	Elapsed    time.Duration `json:"-"`
	ElapsedMS  float64       `json:"elapsed_ms"`
	Error      string        `json:"error,omitempty"`
}

// newReport fills the search part of a Report from res.
func newReport(strategy Strategy, start, goal string, res *core.Result, elapsed time.Duration) *Report {
	r := &Report{
		Strategy:  strategy,
		Start:     start,
		Goal:      goal,
		Elapsed:   elapsed,
		ElapsedMS: float64(elapsed) / float64(time.Millisecond),
		Path:      core.Path{},
	}
	if res == nil {
		return r
	}
	r.Found = res.Found
	r.Expanded = res.Expanded
	r.Generated = res.Generated
	if strategy == IterativeDeepening {
		r.Limit = res.Limit
	}
	if res.Found {
		r.Path = res.Path.Clone()
		r.Hops = res.Path.Hops()
	}

	return r
}

// String renders the route and its length, e.g. "A -> B -> C (20.000 km)",
// or "no route found".
func (r *Report) String() string {
	if r == nil || !r.Found {
		return "no route found"
	}

	return fmt.Sprintf("%s (%.3f km)", r.Path, r.DistanceKm)
}
