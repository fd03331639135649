// Package geo exposes the point-to-point distance capability used to annotate
// bookstores. The computation is delegated to golang/geo's s2 package.
package geo

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius used to turn s2 angles into meters.
const EarthRadiusMeters = 6371010.0

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate lies within the degree ranges.
func (p Point) Valid() bool {
	return s2.LatLngFromDegrees(p.Lat, p.Lng).IsValid()
}

// DistanceFunc computes the distance in meters between two points.
type DistanceFunc func(a, b Point) float64

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b Point) float64 {
	angle := s2.LatLngFromDegrees(a.Lat, a.Lng).Distance(s2.LatLngFromDegrees(b.Lat, b.Lng))
	return angle.Radians() * EarthRadiusMeters
}
