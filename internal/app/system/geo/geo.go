// Package geo provides great-circle distance helpers over content coordinates.
package geo

import (
	"github.com/dalemusser/stratatour/internal/domain/models"
	orbgeo "github.com/paulmach/orb/geo"
)

// DistanceKm returns the haversine distance between a and b in kilometres.
func DistanceKm(a, b models.Coordinates) float64 {
	return orbgeo.DistanceHaversine(a.Point(), b.Point()) / 1000
}

// WithinKm reports whether b lies within radiusKm of a. A non-positive
// radius matches nothing.
func WithinKm(a, b models.Coordinates, radiusKm float64) bool {
	if radiusKm <= 0 {
		return false
	}
	return DistanceKm(a, b) <= radiusKm
}
