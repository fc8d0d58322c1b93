package traffic

import (
	"context"
	"testing"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

func TestForecastText(t *testing.T) {
	tests := []struct {
		name       string
		congestion int
		incidents  int
		want       string
	}{
		{"major by congestion", 76, 0, forecastMajor},
		{"major by incidents", 10, 11, forecastMajor},
		{"heavy by congestion", 51, 0, forecastHeavy},
		{"heavy by incidents", 10, 6, forecastHeavy},
		{"moderate", 26, 0, forecastModerate},
		{"smooth", 25, 5, forecastSmooth},
		{"smooth at zero", 0, 0, forecastSmooth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := forecastText(tt.congestion, tt.incidents); got != tt.want {
				t.Errorf("forecastText(%d, %d) = %q, want %q", tt.congestion, tt.incidents, got, tt.want)
			}
		})
	}
}

func TestTravelTimePer10Km(t *testing.T) {
	tests := []struct {
		speed float64
		want  int
	}{
		{60, 10},
		{30, 20},
		{40, 15},
		{0, 99},
		{-5, 99},
	}

	for _, tt := range tests {
		if got := travelTimePer10Km(tt.speed); got != tt.want {
			t.Errorf("travelTimePer10Km(%v) = %d, want %d", tt.speed, got, tt.want)
		}
	}
}

func TestGetCitySummaryLive(t *testing.T) {
	flow := &fakeFlowSampler{samples: map[models.LatLng]models.FlowSample{
		{Lat: -1.2921, Lng: 36.8219}: {CurrentSpeedKmh: 30, FreeFlowSpeedKmh: 60, TravelTimeSeconds: 600},
	}}
	incidents := &fakeIncidentSource{incidents: []models.Incident{
		{Lat: -1.29, Lng: 36.82},
		{Lat: -1.31, Lng: 36.82},
	}}

	ts := newTestTrafficService("test-key", flow, incidents)
	summary := ts.GetCitySummary(context.Background(), "testville")

	if summary.City != "testville" {
		t.Errorf("expected city 'testville', got %q", summary.City)
	}
	if summary.CongestionLevel != 50 {
		t.Errorf("expected congestion 50, got %d", summary.CongestionLevel)
	}
	if summary.AvgTravelTime != 20 {
		t.Errorf("expected travel time 20, got %d", summary.AvgTravelTime)
	}
	if summary.LiveIncidents != 2 {
		t.Errorf("expected 2 incidents, got %d", summary.LiveIncidents)
	}
	if summary.Forecast != forecastModerate {
		t.Errorf("expected moderate forecast, got %q", summary.Forecast)
	}
	if !summary.IsLive {
		t.Error("expected live summary")
	}
}

func TestGetCitySummarySimulated(t *testing.T) {
	ts := newTestTrafficService("", nil, nil)
	ts.Rand = fixedRand{value: 10}

	summary := ts.GetCitySummary(context.Background(), "testville")

	if summary.IsLive {
		t.Error("expected simulated summary without a provider key")
	}
	if summary.CongestionLevel != 30 {
		t.Errorf("expected congestion 30, got %d", summary.CongestionLevel)
	}
	if summary.LiveIncidents != 0 {
		t.Errorf("expected no incidents without a provider key, got %d", summary.LiveIncidents)
	}
	if summary.Forecast == "" {
		t.Error("expected a forecast line")
	}
}

func TestGetCitySummaryCenterSampleFails(t *testing.T) {
	// A provider key is configured but the center lookup fails; the summary
	// degrades to the simulated band and stays total.
	ts := newTestTrafficService("test-key", &fakeFlowSampler{}, &fakeIncidentSource{})
	summary := ts.GetCitySummary(context.Background(), "testville")

	if summary.IsLive {
		t.Error("expected degraded summary when the center sample fails")
	}
	if summary.CongestionLevel < 20 || summary.CongestionLevel > 80 {
		t.Errorf("simulated congestion out of band: %d", summary.CongestionLevel)
	}
}

func TestGetCitySummaryUnknownCity(t *testing.T) {
	ts := newTestTrafficService("", nil, nil)
	summary := ts.GetCitySummary(context.Background(), "atlantis")

	if summary.City != "atlantis" {
		t.Errorf("expected city echoed, got %q", summary.City)
	}
	if summary.IsLive {
		t.Error("expected simulated summary for an unknown city")
	}
	if summary.Forecast == "" {
		t.Error("expected a forecast line")
	}
}
