package types

// LabelOpenOcean is the label reported when no boundary feature contains
// the requested coordinate.
const LabelOpenOcean = "Open ocean"

// Resolution is the outcome of resolving a coordinate against boundary
// datasets. Country is empty when no feature contained the point, in which
// case Label carries the open-ocean sentinel. Latitude and Longitude are
// the normalized values the containment scan actually used.
type Resolution struct {
	Country   string  `json:"country,omitempty"`
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsLand reports whether some boundary feature contained the coordinate.
func (r Resolution) IsLand() bool {
	return r.Country != ""
}
