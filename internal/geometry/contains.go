package geometry

import "github.com/paulmach/orb"

// GeometryContains reports whether a Polygon or MultiPolygon geometry
// contains the point. Any other geometry type never matches.
func GeometryContains(g orb.Geometry, lon, lat float64) bool {
	switch geom := g.(type) {
	case orb.Polygon:
		return PolygonContains(geom, lon, lat)
	case orb.MultiPolygon:
		for _, poly := range geom {
			if PolygonContains(poly, lon, lat) {
				return true
			}
		}
	}
	return false
}

// PolygonContains reports whether the point is inside the polygon's outer
// ring and outside every hole ring.
func PolygonContains(poly orb.Polygon, lon, lat float64) bool {
	if len(poly) == 0 {
		return false
	}
	if !ringContains(poly[0], lon, lat) {
		return false
	}
	for _, hole := range poly[1:] {
		if ringContains(hole, lon, lat) {
			return false
		}
	}
	return true
}

// ringContains runs the even-odd (ray-casting) test against the ring's
// vertex sequence. The edge walked from the last vertex back to the first
// closes the ring implicitly, so closed rings (first point repeated at the
// end, per the GeoJSON convention) and open rings both work: the duplicate
// closing edge of a closed ring is degenerate and never counts as a
// crossing. Points exactly on an edge get whatever answer the crossing
// count naturally produces.
func ringContains(ring orb.Ring, lon, lat float64) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]
		if (yi > lat) != (yj > lat) &&
			lon < (xj-xi)*(lat-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}
