// Package heatflow prepares the geothermal dataset the globe renders:
// heat-flow measurements combined with plate-boundary proximity into a
// single [0,1] score per point.
package heatflow

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"thermaglobe/internal/types"
)

// Measurement is one heat-flow observation in mW/m². Value is the
// corrected heat flow where available, the raw measurement otherwise.
type Measurement struct {
	Coords types.Coords
	Value  float64
}

// Record is the compact export consumed by the globe client.
type Record struct {
	Coordinates [2]float64 `json:"coordinates"` // lon, lat
	Score       float64    `json:"score"`
}

const (
	// capQuantile caps heat-flow outliers before normalization.
	capQuantile = 0.995
	// sigmaKm is the decay length of the plate-boundary proximity term:
	// 1.0 at a boundary, ~0.37 at 300 km, ~0.05 at 900 km.
	sigmaKm = 300.0
	// Heat flow is the primary signal; proximity lifts geologically
	// plausible areas.
	heatWeight      = 0.70
	proximityWeight = 0.30

	earthRadiusKm = 6371.0
)

// Score computes the composite geothermal score for every measurement:
// normalized capped heat flow weighted with exponential plate-boundary
// proximity, rounded to four decimals.
func Score(measurements []Measurement, boundaries []types.Coords) ([]Record, error) {
	if len(measurements) == 0 {
		return nil, fmt.Errorf("no measurements to score")
	}
	if len(boundaries) == 0 {
		return nil, fmt.Errorf("no plate boundary points")
	}

	values := make([]float64, len(measurements))
	for i, m := range measurements {
		values[i] = m.Value
	}
	ceiling := quantile(values, capQuantile)
	if ceiling <= 0 {
		return nil, fmt.Errorf("non-positive heat flow cap %v", ceiling)
	}

	tree := newBoundaryTree(boundaries)

	records := make([]Record, len(measurements))
	for i, m := range measurements {
		heat := math.Min(m.Value, ceiling) / ceiling
		proximity := math.Exp(-tree.nearestKm(m.Coords) / sigmaKm)
		score := heatWeight*heat + proximityWeight*proximity
		records[i] = Record{
			Coordinates: [2]float64{round4(m.Coords.Longitude), round4(m.Coords.Latitude)},
			Score:       round4(score),
		}
	}
	return records, nil
}

const degToRad = math.Pi / 180

// boundaryTree answers nearest-plate-boundary queries. Points are indexed
// as 3-D unit-sphere coordinates, where Euclidean nearest-neighbor matches
// great-circle nearest-neighbor; a plain lat/lon search would pick the
// wrong point across the antimeridian (longitudes 179.9 and -179.9 are
// 359.8 degrees apart in that space but 22 km apart on the sphere).
type boundaryTree struct {
	tree *kdtree.Tree
}

func newBoundaryTree(boundaries []types.Coords) *boundaryTree {
	points := make(kdtree.Points, len(boundaries))
	for i, b := range boundaries {
		points[i] = unitSphere(b.Latitude, b.Longitude)
	}
	return &boundaryTree{tree: kdtree.New(points, false)}
}

func (t *boundaryTree) nearestKm(c types.Coords) float64 {
	got, _ := t.tree.Nearest(unitSphere(c.Latitude, c.Longitude))
	nearest := got.(kdtree.Point)
	lat := math.Asin(nearest[2]) / degToRad
	lon := math.Atan2(nearest[1], nearest[0]) / degToRad
	return haversineKm(c.Latitude, c.Longitude, lat, lon)
}

// unitSphere projects a coordinate onto the unit sphere.
func unitSphere(lat, lon float64) kdtree.Point {
	phi := lat * degToRad
	lambda := lon * degToRad
	return kdtree.Point{
		math.Cos(phi) * math.Cos(lambda),
		math.Cos(phi) * math.Sin(lambda),
		math.Sin(phi),
	}
}

// haversineKm is the great-circle distance between two coordinates.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * degToRad
	phi2 := lat2 * degToRad
	dPhi := (lat2 - lat1) * degToRad
	dLambda := (lon2 - lon1) * degToRad

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// quantile returns the q-th quantile of the values with linear
// interpolation between order statistics.
func quantile(values []float64, q float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
