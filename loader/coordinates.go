package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/A-Alhammadi/Intro-to-AI/geo"
)

// coordinateFields is the exact field count of a coordinate row.
const coordinateFields = 3

// CoordinateStats summarises a coordinate load.
type CoordinateStats struct {
	Loaded  int // rows stored in the model
	Skipped int // rows rejected with a warning
}

// LoadCoordinates reads "node,lat,lon" rows into a new geo.Model.
// Bad rows are skipped and logged at WARN with their line number; only an
// I/O failure returns an error.
func LoadCoordinates(r io.Reader, opts ...Option) (*geo.Model, CoordinateStats, error) {
	o := resolve(opts)
	m := geo.NewModel()
	var st CoordinateStats

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				st.Skipped++
				o.logger.Warn("skipping malformed coordinate row", "line", perr.StartLine, "error", perr.Err)
				continue
			}
			return nil, st, fmt.Errorf("loader: read coordinates: %w", err)
		}

		if err := storeRow(m, rec); err != nil {
			line, _ := cr.FieldPos(0)
			st.Skipped++
			o.logger.Warn("skipping malformed coordinate row", "line", line, "row", rec, "error", err)
			continue
		}
		st.Loaded++
	}

	o.logger.Debug("coordinates loaded", "loaded", st.Loaded, "skipped", st.Skipped)

	return m, st, nil
}

// storeRow parses one CSV record and stores it in m.
func storeRow(m *geo.Model, rec []string) error {
	if len(rec) != coordinateFields {
		return fmt.Errorf("want %d fields, got %d", coordinateFields, len(rec))
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	if err != nil {
		return fmt.Errorf("latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return fmt.Errorf("longitude: %w", err)
	}

	return m.Set(strings.TrimSpace(rec[0]), geo.Coordinate{Lat: lat, Lon: lon})
}

// LoadCoordinatesFile opens path and calls LoadCoordinates.
func LoadCoordinatesFile(path string, opts ...Option) (*geo.Model, CoordinateStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CoordinateStats{}, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	return LoadCoordinates(f, opts...)
}

// WriteCoordinates writes one "node,lat,lon" row per coordinate in m, in
// first-set order. Floats use the shortest exact representation so a
// written model reloads unchanged.
func WriteCoordinates(w io.Writer, m *geo.Model) error {
	cw := csv.NewWriter(w)
	for _, id := range m.IDs() {
		c, err := m.Coordinate(id)
		if err != nil {
			return fmt.Errorf("loader: write coordinates: %w", err)
		}
		rec := []string{
			id,
			strconv.FormatFloat(c.Lat, 'f', -1, 64),
			strconv.FormatFloat(c.Lon, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("loader: write coordinates: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("loader: write coordinates: %w", err)
	}

	return nil
}
