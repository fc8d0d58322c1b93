package routing

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

type stubRouteProvider struct {
	summaries []models.RouteSummary
	err       error
}

func (s *stubRouteProvider) Routes(ctx context.Context, start, end models.LatLng, prefs models.RoutePreferences) ([]models.RouteSummary, error) {
	return s.summaries, s.err
}

func newTestRouteService(provider RouteProvider) *RouteService {
	return NewRouteService(provider, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCompareRoutesScoresProviderRoutes(t *testing.T) {
	provider := &stubRouteProvider{summaries: []models.RouteSummary{
		{TravelTimeSeconds: 900, TrafficDelaySeconds: 30, FuelConsumptionLiters: 1.5, DistanceKm: 8},
		{TravelTimeSeconds: 5400, TrafficDelaySeconds: 600, FuelConsumptionLiters: 8, DistanceKm: 60, TollDistanceMeters: 12000},
	}}

	rs := newTestRouteService(provider)
	routes := rs.CompareRoutes(context.Background(),
		models.LatLng{Lat: -1.29, Lng: 36.82},
		models.LatLng{Lat: -1.30, Lng: 36.83},
		models.RoutePreferences{})

	if len(routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(routes))
	}

	if routes[0].AiScore != 100 {
		t.Errorf("expected first route clamped to 100, got %d", routes[0].AiScore)
	}
	if routes[0].DurationMin != 15 {
		t.Errorf("expected 15 min, got %d", routes[0].DurationMin)
	}
	if routes[0].HasToll {
		t.Error("expected no toll on first route")
	}

	if routes[1].AiScore != 50 {
		t.Errorf("expected second route clamped to 50, got %d", routes[1].AiScore)
	}
	if !routes[1].HasToll {
		t.Error("expected toll on second route")
	}
}

func TestCompareRoutesProviderFailure(t *testing.T) {
	rs := newTestRouteService(&stubRouteProvider{err: errors.New("provider down")})

	routes := rs.CompareRoutes(context.Background(),
		models.LatLng{Lat: -1.2921, Lng: 36.8219},
		models.LatLng{Lat: -1.3820, Lng: 36.8219},
		models.RoutePreferences{Greenest: true})

	if len(routes) != 1 {
		t.Fatalf("expected a single fallback route, got %d", len(routes))
	}
	if !routes[0].Summary.Estimated {
		t.Error("expected the fallback route to be flagged as estimated")
	}
	if routes[0].AiScore != 80 {
		t.Errorf("expected greenest fallback score 80, got %d", routes[0].AiScore)
	}
}
