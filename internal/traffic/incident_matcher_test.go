package traffic

import (
	"testing"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

func TestCountNearbyIncidents(t *testing.T) {
	// Offsets are in latitude degrees; one degree of latitude is ~111.2 km,
	// so 0.0036 is ~400 m and 0.0054 is ~600 m.
	points := []models.LatLng{
		{Lat: -1.2921, Lng: 36.8219},
		{Lat: -1.3073, Lng: 36.8219},
	}

	tests := []struct {
		name      string
		incidents []models.Incident
		want      int
	}{
		{
			name: "inside radius",
			incidents: []models.Incident{
				{Lat: -1.2921 + 0.0036, Lng: 36.8219},
			},
			want: 1,
		},
		{
			name: "outside radius",
			incidents: []models.Incident{
				{Lat: -1.2921 + 0.0054, Lng: 36.8219},
			},
			want: 0,
		},
		{
			name: "near second point only",
			incidents: []models.Incident{
				{Lat: -1.3073, Lng: 36.8219},
			},
			want: 1,
		},
		{
			name: "each incident counts separately",
			incidents: []models.Incident{
				{Lat: -1.2921, Lng: 36.8219},
				{Lat: -1.2921, Lng: 36.8219},
			},
			want: 2,
		},
		{
			name:      "no incidents",
			incidents: nil,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountNearbyIncidents(points, tt.incidents, IncidentRadiusMeters)
			if got != tt.want {
				t.Errorf("expected %d incidents, got %d", tt.want, got)
			}
		})
	}
}

func TestCountNearbyIncidentsSinglePointRoad(t *testing.T) {
	points := []models.LatLng{{Lat: -1.30, Lng: 36.85}}
	incidents := []models.Incident{
		{Lat: -1.30, Lng: 36.85},
		{Lat: -1.35, Lng: 36.85},
	}

	if got := CountNearbyIncidents(points, incidents, IncidentRadiusMeters); got != 1 {
		t.Errorf("expected 1 incident, got %d", got)
	}
}
