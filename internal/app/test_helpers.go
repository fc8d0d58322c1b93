package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/config"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/geocoding"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/metrics"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/routing"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/traffic"
)

// failingRouteProvider always errors so tests exercise the distance fallback.
type failingRouteProvider struct{}

func (failingRouteProvider) Routes(ctx context.Context, start, end models.LatLng, prefs models.RoutePreferences) ([]models.RouteSummary, error) {
	return nil, errors.New("provider unavailable")
}

// newTestApplication wires an Application without a provider key, so every
// traffic figure comes from the simulated band and no network calls happen.
func newTestApplication(t *testing.T) *Application {
	t.Helper()

	cfg := config.NewConfig(4000, "testing", "", []models.CityConfig{
		{
			ID:     "testville",
			Name:   "Testville",
			Center: models.LatLng{Lat: -1.286389, Lng: 36.817223},
			Roads: []models.RoadGeometry{
				{Name: "Main Street", Center: models.LatLng{Lat: -1.2833, Lng: 36.8167}},
			},
		},
	})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	return &Application{
		ConfigService:  config.NewConfigService(logger, nil, cfg),
		TrafficService: traffic.NewTrafficService(cfg, nil, nil, logger),
		RouteService:   routing.NewRouteService(failingRouteProvider{}, logger),
		Geocoder:       geocoding.NewClient("", nil),
		MetricsService: metrics.NewMetricsService(logger),
		BackoffStore:   config.NewBackoffStore(),
		Logger:         logger,
		Version:        "test-version",
	}
}
