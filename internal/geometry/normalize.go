// Package geometry implements the planar spatial math used by the boundary
// resolver: coordinate normalization, bounding-box prefilters with
// antimeridian wrap-around, and even-odd point-in-polygon containment over
// orb geometry types. All operations treat (longitude, latitude) degrees as
// planar coordinates, which is accurate enough at country and state
// granularity.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFiniteCoordinate is returned when a latitude or longitude is NaN or
// infinite. Such inputs are rejected before normalization instead of being
// wrapped into a nonsensical but valid-looking coordinate.
var ErrNonFiniteCoordinate = errors.New("coordinate is not a finite number")

// maxWrapSteps caps the normalization loop. Any finite longitude converges
// in far fewer steps; the bound only matters if validation was skipped.
const maxWrapSteps = 1000000

// ValidateCoordinate rejects non-finite latitude or longitude values.
func ValidateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return fmt.Errorf("latitude %v: %w", lat, ErrNonFiniteCoordinate)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return fmt.Errorf("longitude %v: %w", lon, ErrNonFiniteCoordinate)
	}
	return nil
}

// NormalizeLongitude wraps a longitude into [-180, 180] by shifting whole
// turns. The result is congruent to the input mod 360.
func NormalizeLongitude(lon float64) float64 {
	for i := 0; lon > 180 && i < maxWrapSteps; i++ {
		lon -= 360
	}
	for i := 0; lon < -180 && i < maxWrapSteps; i++ {
		lon += 360
	}
	return lon
}

// ClampLatitude limits a latitude to [-90, 90].
func ClampLatitude(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}
