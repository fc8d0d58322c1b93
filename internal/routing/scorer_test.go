package routing

import (
	"testing"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

func TestScoreRoute(t *testing.T) {
	tests := []struct {
		name    string
		summary models.RouteSummary
		prefs   models.RoutePreferences
		want    int
	}{
		{
			name: "short clean toll-free route clamps at 100",
			summary: models.RouteSummary{
				TravelTimeSeconds:     900,
				TrafficDelaySeconds:   30,
				FuelConsumptionLiters: 1.5,
			},
			prefs: models.RoutePreferences{AvoidTolls: true},
			want:  100,
		},
		{
			name: "mid-length route with mild delay",
			summary: models.RouteSummary{
				TravelTimeSeconds:     1800, // 30 min
				TrafficDelaySeconds:   120,
				FuelConsumptionLiters: 3,
			},
			want: 80,
		},
		{
			name: "long congested thirsty route clamps at 50",
			summary: models.RouteSummary{
				TravelTimeSeconds:     5400, // 90 min
				TrafficDelaySeconds:   600,
				FuelConsumptionLiters: 8,
			},
			want: 50,
		},
		{
			name: "toll bonus only applies when tolls are avoided",
			summary: models.RouteSummary{
				TravelTimeSeconds:     3000, // 50 min, no band
				TrafficDelaySeconds:   120,
				FuelConsumptionLiters: 3,
			},
			want: 70,
		},
		{
			name: "toll section cancels avoidance bonus",
			summary: models.RouteSummary{
				TravelTimeSeconds:     3000,
				TrafficDelaySeconds:   120,
				FuelConsumptionLiters: 3,
				TollDistanceMeters:    2000,
			},
			prefs: models.RoutePreferences{AvoidTolls: true},
			want:  70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreRoute(tt.summary, tt.prefs); got != tt.want {
				t.Errorf("ScoreRoute() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFallbackRoute(t *testing.T) {
	// Roughly 10 km apart along a meridian.
	start := models.LatLng{Lat: -1.2921, Lng: 36.8219}
	end := models.LatLng{Lat: -1.3820, Lng: 36.8219}

	route := FallbackRoute(start, end, models.RoutePreferences{Fastest: true})

	if !route.Summary.Estimated {
		t.Error("expected the fallback route to be flagged as estimated")
	}
	if route.Summary.DistanceKm < 9.5 || route.Summary.DistanceKm > 10.5 {
		t.Fatalf("expected ~10 km distance, got %v", route.Summary.DistanceKm)
	}
	if route.DurationMin != 25 {
		t.Errorf("expected 25 min for 10 km, got %d", route.DurationMin)
	}
	if route.Summary.TravelTimeSeconds != route.DurationMin*60 {
		t.Errorf("expected travel time to mirror duration, got %d", route.Summary.TravelTimeSeconds)
	}
	if route.FuelCostKsh != 120 {
		t.Errorf("expected fuel cost 120 Ksh, got %d", route.FuelCostKsh)
	}
	if route.Co2Kg != 2.1 {
		t.Errorf("expected 2.1 kg CO2, got %v", route.Co2Kg)
	}
	if route.HasToll {
		t.Error("expected no toll under 15 km")
	}
	if route.AiScore != 85 {
		t.Errorf("expected fastest score 85, got %d", route.AiScore)
	}
}

func TestFallbackRouteScoresByPreference(t *testing.T) {
	start := models.LatLng{Lat: -1.2921, Lng: 36.8219}
	end := models.LatLng{Lat: -1.30, Lng: 36.83}

	tests := []struct {
		name  string
		prefs models.RoutePreferences
		want  int
	}{
		{"fastest", models.RoutePreferences{Fastest: true}, 85},
		{"greenest", models.RoutePreferences{Greenest: true}, 80},
		{"default", models.RoutePreferences{}, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FallbackRoute(start, end, tt.prefs).AiScore; got != tt.want {
				t.Errorf("expected score %d, got %d", tt.want, got)
			}
		})
	}
}

func TestFallbackRouteFloorsAndTolls(t *testing.T) {
	// A few hundred meters apart; duration floors at 10 minutes.
	near := FallbackRoute(
		models.LatLng{Lat: -1.2921, Lng: 36.8219},
		models.LatLng{Lat: -1.2930, Lng: 36.8219},
		models.RoutePreferences{},
	)
	if near.DurationMin != 10 {
		t.Errorf("expected duration floor 10, got %d", near.DurationMin)
	}

	// Roughly 44 km apart; long routes are assumed to touch a toll road
	// unless the caller opts out.
	far := FallbackRoute(
		models.LatLng{Lat: -1.2921, Lng: 36.8219},
		models.LatLng{Lat: -1.6921, Lng: 36.8219},
		models.RoutePreferences{},
	)
	if !far.HasToll {
		t.Error("expected a toll on a 44 km route")
	}

	farAvoiding := FallbackRoute(
		models.LatLng{Lat: -1.2921, Lng: 36.8219},
		models.LatLng{Lat: -1.6921, Lng: 36.8219},
		models.RoutePreferences{AvoidTolls: true},
	)
	if farAvoiding.HasToll {
		t.Error("expected no toll when tolls are avoided")
	}
}
