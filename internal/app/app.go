package app

import (
	"log/slog"
	"net/http"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/config"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/geocoding"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/incidents"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/metrics"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/routing"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/traffic"
)

// Application wires all dependencies together: configuration, the traffic
// aggregation service, route comparison, geocoding, Prometheus export, and
// the logger. It is initialized once at startup and shared by the HTTP
// handlers and the collection loop.
type Application struct {
	ConfigService  *config.ConfigService
	TrafficService *traffic.TrafficService
	RouteService   *routing.RouteService
	Geocoder       *geocoding.Client
	MetricsService *metrics.MetricsService
	BackoffStore   *config.BackoffStore
	Logger         *slog.Logger
	Version        string
}

// New creates and wires all dependencies for the Application.
// Accepts config, logger, client, and version as arguments.
func New(cfg *config.Config, logger *slog.Logger, client *http.Client, version string) *Application {
	flowClient := traffic.NewFlowClient(cfg.TomTomAPIKey, client)
	incidentClient := incidents.NewClient(cfg.TomTomAPIKey, client)
	routingClient := routing.NewClient(cfg.TomTomAPIKey, client)

	configService := config.NewConfigService(logger, client, cfg)
	trafficService := traffic.NewTrafficService(cfg, flowClient, incidentClient, logger)
	routeService := routing.NewRouteService(routingClient, logger)
	geocoder := geocoding.NewClient(cfg.TomTomAPIKey, client)
	metricsService := metrics.NewMetricsService(logger)

	return &Application{
		ConfigService:  configService,
		TrafficService: trafficService,
		RouteService:   routeService,
		Geocoder:       geocoder,
		MetricsService: metricsService,
		BackoffStore:   config.NewBackoffStore(),
		Logger:         logger,
		Version:        version,
	}
}
