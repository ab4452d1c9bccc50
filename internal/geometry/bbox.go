package geometry

import "github.com/paulmach/orb"

// BBox is an axis-aligned bounding box in degrees. When MinLon > MaxLon the
// box crosses the antimeridian and its longitude range wraps through ±180:
// a longitude is inside when lon >= MinLon OR lon <= MaxLon.
type BBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// Contains reports whether the point is inside the box, honoring the
// wrap-around convention for antimeridian-crossing boxes.
func (b BBox) Contains(lon, lat float64) bool {
	if lat < b.MinLat || lat > b.MaxLat {
		return false
	}
	if b.MinLon > b.MaxLon {
		return lon >= b.MinLon || lon <= b.MaxLon
	}
	return lon >= b.MinLon && lon <= b.MaxLon
}

// GeometryBBox computes the bounding box of a Polygon or MultiPolygon by
// scanning every ring vertex. A MultiPolygon's box is the union of its
// parts' extents.
//
// Features whose parts are split at the ±180 line (Fiji, the Aleutians)
// produce a naive box spanning nearly the whole longitude axis, which would
// defeat the prefilter. When the naive span exceeds 180 degrees the box is
// recomputed in a frame shifted by 360 and stored in wrapped form.
func GeometryBBox(g orb.Geometry) (BBox, bool) {
	var rings []orb.Ring
	switch geom := g.(type) {
	case orb.Polygon:
		rings = geom
	case orb.MultiPolygon:
		for _, poly := range geom {
			rings = append(rings, poly...)
		}
	default:
		return BBox{}, false
	}

	box, ok := scanRings(rings, false)
	if !ok {
		return BBox{}, false
	}
	if box.MaxLon-box.MinLon <= 180 {
		return box, true
	}

	shifted, ok := scanRings(rings, true)
	if !ok || shifted.MaxLon-shifted.MinLon >= box.MaxLon-box.MinLon {
		// Shifting did not tighten the box; the feature genuinely spans
		// most of the longitude axis, keep the naive extent.
		return box, true
	}
	if shifted.MaxLon > 180 {
		shifted.MaxLon -= 360
	}
	return shifted, true
}

// scanRings folds every vertex into a min/max extent. With shift set,
// longitudes west of 0 are moved up by 360 so antimeridian-split parts
// become contiguous.
func scanRings(rings []orb.Ring, shift bool) (BBox, bool) {
	box := BBox{MinLon: 181, MinLat: 91, MaxLon: -181, MaxLat: -91}
	found := false
	for _, ring := range rings {
		for _, pt := range ring {
			lon, lat := pt[0], pt[1]
			if shift && lon < 0 {
				lon += 360
			}
			if lon < box.MinLon {
				box.MinLon = lon
			}
			if lon > box.MaxLon {
				box.MaxLon = lon
			}
			if lat < box.MinLat {
				box.MinLat = lat
			}
			if lat > box.MaxLat {
				box.MaxLat = lat
			}
			found = true
		}
	}
	return box, found
}
