// SPDX-License-Identifier: MIT
//
// File: coordinate.go
// Role: Coordinate value, great-circle distance and destination helpers.

package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by every distance in this module.
const EarthRadiusKm = 6371.0

const (
	minLat, maxLat = -90.0, 90.0
	minLon, maxLon = -180.0, 180.0
)

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Valid reports whether c lies inside the WGS84 degree ranges and is finite.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		return false
	}

	return c.Lat >= minLat && c.Lat <= maxLat && c.Lon >= minLon && c.Lon <= maxLon
}

// String implements fmt.Stringer, e.g. "(37.0000000, -97.0000000)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%.7f, %.7f)", c.Lat, c.Lon)
}

// Haversine returns the great-circle distance between a and b in kilometers.
//
//	a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlon/2)
//	c = 2·asin(√a)
//	d = R·c
//
// The result is symmetric, non-negative and zero for identical points.
// √a is clamped to 1 because rounding can push it slightly above for
// antipodal points, where asin would return NaN.
func Haversine(a, b Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := lat2 - lat1
	dLon := toRadians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return EarthRadiusKm * 2 * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Offset returns the point reached from origin by travelling northKm north
// and eastKm east along a single great circle (negative values go south or
// west). Travelling purely along one axis keeps Haversine(origin, Offset(...))
// equal to the distance travelled.
func Offset(origin Coordinate, northKm, eastKm float64) Coordinate {
	dist := math.Hypot(northKm, eastKm)
	if dist == 0 {
		return origin
	}
	delta := dist / EarthRadiusKm
	bearing := math.Atan2(eastKm, northKm)

	lat1 := toRadians(origin.Lat)
	lon1 := toRadians(origin.Lon)

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) + math.Cos(lat1)*math.Sin(delta)*math.Cos(bearing))
	lon2 := lon1 + math.Atan2(
		math.Sin(bearing)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2),
	)

	return Coordinate{Lat: toDegrees(lat2), Lon: normalizeLon(toDegrees(lon2))}
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// normalizeLon folds lon into [-180, 180].
func normalizeLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}

	return lon - 180
}
