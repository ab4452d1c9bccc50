package geometry

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
)

func TestBBoxContains(t *testing.T) {
	plain := BBox{MinLon: -10, MinLat: 20, MaxLon: 30, MaxLat: 50}
	wrapped := BBox{MinLon: 170, MinLat: -30, MaxLon: -160, MaxLat: 10}

	tests := []struct {
		name     string
		box      BBox
		lon, lat float64
		want     bool
	}{
		{name: "inside plain box", box: plain, lon: 0, lat: 35, want: true},
		{name: "west of plain box", box: plain, lon: -11, lat: 35, want: false},
		{name: "north of plain box", box: plain, lon: 0, lat: 51, want: false},
		{name: "on plain box edge", box: plain, lon: 30, lat: 20, want: true},
		{name: "wrapped box east side", box: wrapped, lon: 175, lat: 0, want: true},
		{name: "wrapped box west side", box: wrapped, lon: -170, lat: 0, want: true},
		{name: "wrapped box gap", box: wrapped, lon: 0, lat: 0, want: false},
		{name: "wrapped box wrong latitude", box: wrapped, lon: 175, lat: 40, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Contains(tt.lon, tt.lat); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
			}
		})
	}
}

func TestGeometryBBoxPolygon(t *testing.T) {
	poly := orb.Polygon{{{-8.7, 19}, {12, 19}, {12, 37}, {-8.7, 37}, {-8.7, 19}}}

	box, ok := GeometryBBox(poly)
	if !ok {
		t.Fatal("GeometryBBox returned no box for a polygon")
	}
	want := BBox{MinLon: -8.7, MinLat: 19, MaxLon: 12, MaxLat: 37}
	if box != want {
		t.Errorf("GeometryBBox = %+v, want %+v", box, want)
	}
}

func TestGeometryBBoxMultiPolygonUnion(t *testing.T) {
	mp := orb.MultiPolygon{
		{{{-120, 30}, {-100, 30}, {-100, 45}, {-120, 45}, {-120, 30}}},
		{{{-90, 25}, {-80, 25}, {-80, 35}, {-90, 35}, {-90, 25}}},
	}

	box, ok := GeometryBBox(mp)
	if !ok {
		t.Fatal("GeometryBBox returned no box for a multipolygon")
	}
	want := BBox{MinLon: -120, MinLat: 25, MaxLon: -80, MaxLat: 45}
	if box != want {
		t.Errorf("GeometryBBox = %+v, want %+v", box, want)
	}
}

// Parts split at the ±180 line must come out as a wrapped box instead of a
// near-global one, otherwise the prefilter would pass almost every point.
func TestGeometryBBoxAntimeridian(t *testing.T) {
	mp := orb.MultiPolygon{
		{{{177, -20}, {180, -20}, {180, -15}, {177, -15}, {177, -20}}},
		{{{-180, -20}, {-176, -20}, {-176, -15}, {-180, -15}, {-180, -20}}},
	}

	box, ok := GeometryBBox(mp)
	if !ok {
		t.Fatal("GeometryBBox returned no box")
	}
	if box.MinLon <= box.MaxLon {
		t.Fatalf("GeometryBBox = %+v, want a wrapped box (MinLon > MaxLon)", box)
	}
	if !box.Contains(-179, -18) {
		t.Error("wrapped box should contain (-179, -18)")
	}
	if !box.Contains(178, -18) {
		t.Error("wrapped box should contain (178, -18)")
	}
	if box.Contains(0, -18) {
		t.Error("wrapped box should not contain (0, -18)")
	}
}

func TestGeometryBBoxUnsupported(t *testing.T) {
	if _, ok := GeometryBBox(orb.Point{0, 0}); ok {
		t.Error("GeometryBBox should reject point geometries")
	}
	if _, ok := GeometryBBox(orb.Polygon{}); ok {
		t.Error("GeometryBBox should reject an empty polygon")
	}
}

// The prefilter must never reject a feature that actually contains the
// point: every containment hit must also be a bbox hit.
func TestBBoxPrefilterIsSuperset(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	geoms := []orb.Geometry{
		orb.Polygon{{{-8.7, 19}, {12, 19}, {12, 37}, {-8.7, 37}, {-8.7, 19}}},
		orb.Polygon{{{-4.8, 48.5}, {2.5, 51}, {8.2, 48.9}, {7.6, 43.7}, {3, 42.4}, {-1.8, 43.3}, {-4.8, 48.5}}},
		orb.Polygon{
			{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}, {-10, -10}},
			{{-3, -3}, {3, -3}, {3, 3}, {-3, 3}, {-3, -3}}, // hole
		},
		orb.MultiPolygon{
			{{{177, -20}, {180, -20}, {180, -15}, {177, -15}, {177, -20}}},
			{{{-180, -20}, {-176, -20}, {-176, -15}, {-180, -15}, {-180, -20}}},
		},
	}

	for _, g := range geoms {
		box, ok := GeometryBBox(g)
		if !ok {
			t.Fatal("GeometryBBox returned no box")
		}
		for i := 0; i < 2000; i++ {
			lon := rng.Float64()*360 - 180
			lat := rng.Float64()*180 - 90
			if GeometryContains(g, lon, lat) && !box.Contains(lon, lat) {
				t.Fatalf("bbox rejected a containing feature at (%v, %v) for %T", lon, lat, g)
			}
		}
	}
}
