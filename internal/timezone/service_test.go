package timezone

import (
	"testing"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "Khartoum, Sudan",
			latitude:  15.5,
			longitude: 32.56,
			want:      "Africa/Khartoum",
		},
		{
			name:      "Austin, Texas",
			latitude:  30.27,
			longitude: -97.74,
			want:      "America/Chicago",
		},
		{
			name:      "central France",
			latitude:  46.0,
			longitude: 2.0,
			want:      "Europe/Paris",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.GetTimezone(tt.latitude, tt.longitude)
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_GetTimezoneOpenWater(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	// tzf covers oceans with etc zones, so the lookup still answers far
	// from land.
	if got := svc.GetTimezone(0, -30); got == "" {
		t.Log("no timezone over the mid Atlantic; acceptable for enrichment")
	}
}

func TestService_Singleton(t *testing.T) {
	a, err := NewService()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewService()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("NewService() returned distinct instances")
	}
}
