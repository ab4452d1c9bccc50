// Package boundary models the static boundary datasets the resolver scans:
// ordered GeoJSON feature collections with a bounding-box index built once
// at construction, and the ordered list of sources they are loaded from.
package boundary

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb/geojson"

	"thermaglobe/internal/geometry"
)

// nameKeys is the ordered list of property keys tried when extracting a
// feature's display name. The first key holding a non-empty string wins.
// Natural Earth files carry lowercase keys in some releases and uppercase
// in others, so both case variants are listed.
var nameKeys = []string{"name", "NAME", "admin", "ADMIN"}

// UnknownName labels features whose properties carry none of the
// recognized name keys.
const UnknownName = "Unknown"

// Entry is one indexed feature: its display name and precomputed bounding
// box alongside the feature itself.
type Entry struct {
	Feature *geojson.Feature
	Name    string
	BBox    geometry.BBox
}

// Collection is an immutable ordered set of polygonal features. Order is
// load order from the dataset: the resolver returns the first containing
// feature, so overlapping polygons are disambiguated by position, never by
// area or priority.
type Collection struct {
	entries []Entry
}

// NewCollection indexes the polygonal features of a decoded feature
// collection. Features with other geometry types are dropped here so the
// scan loop only ever sees entries it can test.
func NewCollection(fc *geojson.FeatureCollection) *Collection {
	entries := make([]Entry, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		box, ok := geometry.GeometryBBox(f.Geometry)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Feature: f,
			Name:    displayName(f.Properties),
			BBox:    box,
		})
	}
	return &Collection{entries: entries}
}

// Entries returns the indexed features in dataset order. The returned
// slice must not be mutated.
func (c *Collection) Entries() []Entry {
	return c.entries
}

// Len reports the number of indexed features.
func (c *Collection) Len() int {
	return len(c.entries)
}

// Decode parses GeoJSON bytes into an indexed Collection. Features are
// decoded one at a time so a single malformed entry is skipped instead of
// failing the whole dataset; reference datasets occasionally contain such
// entries. A collection whose features are all malformed is treated as
// unparseable.
func Decode(data []byte) (*Collection, error) {
	var envelope struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parsing feature collection: %w", err)
	}
	if envelope.Type != "FeatureCollection" {
		return nil, fmt.Errorf("expected a FeatureCollection, got %q", envelope.Type)
	}

	fc := geojson.NewFeatureCollection()
	for _, raw := range envelope.Features {
		f, err := geojson.UnmarshalFeature(raw)
		if err != nil {
			continue
		}
		fc.Append(f)
	}
	if len(envelope.Features) > 0 && len(fc.Features) == 0 {
		return nil, fmt.Errorf("no decodable features among %d entries", len(envelope.Features))
	}
	return NewCollection(fc), nil
}

// displayName tries each recognized name key in priority order.
func displayName(props geojson.Properties) string {
	for _, key := range nameKeys {
		if name := props.MustString(key, ""); name != "" {
			return name
		}
	}
	return UnknownName
}
