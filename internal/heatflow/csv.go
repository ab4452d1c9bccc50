package heatflow

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"thermaglobe/internal/types"
)

// ReadMeasurements parses the heat-flow database CSV export. Recognized
// columns are lat_NS, long_EW, qc (corrected heat flow) and q (raw); qc is
// preferred per row. Rows with missing coordinates or non-positive heat
// flow are dropped.
func ReadMeasurements(r io.Reader) ([]Measurement, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols := columnIndex(header)
	latCol, ok := cols["lat_ns"]
	if !ok {
		return nil, fmt.Errorf("missing lat_NS column")
	}
	lonCol, ok := cols["long_ew"]
	if !ok {
		return nil, fmt.Errorf("missing long_EW column")
	}
	qcCol, hasQC := cols["qc"]
	qCol, hasQ := cols["q"]
	if !hasQC && !hasQ {
		return nil, fmt.Errorf("missing qc and q columns")
	}

	var out []Measurement
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		lat, latOK := field(row, latCol)
		lon, lonOK := field(row, lonCol)
		if !latOK || !lonOK {
			continue
		}

		value, valueOK := 0.0, false
		if hasQC {
			value, valueOK = field(row, qcCol)
		}
		if !valueOK && hasQ {
			value, valueOK = field(row, qCol)
		}
		if !valueOK || value <= 0 {
			continue
		}

		out = append(out, Measurement{
			Coords: types.NewCoords(lat, lon),
			Value:  value,
		})
	}
	return out, nil
}

// ReadBoundaries parses the plate-boundary points CSV (lat, lon columns).
func ReadBoundaries(r io.Reader) ([]types.Coords, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols := columnIndex(header)
	latCol, ok := cols["lat"]
	if !ok {
		return nil, fmt.Errorf("missing lat column")
	}
	lonCol, ok := cols["lon"]
	if !ok {
		return nil, fmt.Errorf("missing lon column")
	}

	var out []types.Coords
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		lat, latOK := field(row, latCol)
		lon, lonOK := field(row, lonCol)
		if !latOK || !lonOK {
			continue
		}
		out = append(out, types.NewCoords(lat, lon))
	}
	return out, nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func field(row []string, col int) (float64, bool) {
	if col >= len(row) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
