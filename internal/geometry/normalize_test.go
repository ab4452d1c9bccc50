package geometry

import (
	"math"
	"testing"
)

func TestNormalizeLongitude(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want float64
	}{
		{name: "already in range", lon: 32.56, want: 32.56},
		{name: "lower bound", lon: -180, want: -180},
		{name: "upper bound", lon: 180, want: 180},
		{name: "just past the antimeridian", lon: 181, want: -179},
		{name: "just before the antimeridian", lon: -181, want: 179},
		{name: "one full turn east", lon: 360 + 2, want: 2},
		{name: "several turns west", lon: -720 - 97.74, want: -97.74},
		{name: "zero", lon: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLongitude(tt.lon)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizeLongitude(%v) = %v, want %v", tt.lon, got, tt.want)
			}
		})
	}
}

// The output must stay in [-180, 180] and remain congruent to the input
// mod 360 for any finite longitude.
func TestNormalizeLongitudeProperties(t *testing.T) {
	for lon := -2000.0; lon <= 2000.0; lon += 13.7 {
		got := NormalizeLongitude(lon)
		if got < -180 || got > 180 {
			t.Fatalf("NormalizeLongitude(%v) = %v, out of range", lon, got)
		}
		diff := math.Mod(got-lon, 360)
		if math.Abs(diff) > 1e-6 && math.Abs(math.Abs(diff)-360) > 1e-6 {
			t.Fatalf("NormalizeLongitude(%v) = %v, not congruent mod 360", lon, got)
		}
	}
}

func TestClampLatitude(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		want float64
	}{
		{name: "in range unchanged", lat: 46, want: 46},
		{name: "negative in range unchanged", lat: -33.9, want: -33.9},
		{name: "above north pole", lat: 91, want: 90},
		{name: "below south pole", lat: -123, want: -90},
		{name: "exactly north pole", lat: 90, want: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampLatitude(tt.lat); got != tt.want {
				t.Errorf("ClampLatitude(%v) = %v, want %v", tt.lat, got, tt.want)
			}
		})
	}
}

func TestValidateCoordinate(t *testing.T) {
	if err := ValidateCoordinate(15.5, 32.56); err != nil {
		t.Errorf("ValidateCoordinate(15.5, 32.56) = %v, want nil", err)
	}

	invalid := []struct {
		name     string
		lat, lon float64
	}{
		{name: "NaN latitude", lat: math.NaN(), lon: 0},
		{name: "NaN longitude", lat: 0, lon: math.NaN()},
		{name: "positive infinite latitude", lat: math.Inf(1), lon: 0},
		{name: "negative infinite longitude", lat: 0, lon: math.Inf(-1)},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate(tt.lat, tt.lon)
			if err == nil {
				t.Fatalf("ValidateCoordinate(%v, %v) = nil, want error", tt.lat, tt.lon)
			}
		})
	}
}
