package routing

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/report"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/utils"
)

// RouteProvider fetches candidate route summaries between two points.
type RouteProvider interface {
	Routes(ctx context.Context, start, end models.LatLng, prefs models.RoutePreferences) ([]models.RouteSummary, error)
}

// RouteService scores provider routes and degrades to the Haversine estimate
// when the provider is unavailable. CompareRoutes is total from the caller's
// point of view.
type RouteService struct {
	Provider RouteProvider
	Logger   *slog.Logger
}

func NewRouteService(provider RouteProvider, logger *slog.Logger) *RouteService {
	return &RouteService{
		Provider: provider,
		Logger:   logger,
	}
}

// CompareRoutes returns scored route alternatives between start and end.
// Provider failures degrade to a single distance-estimated route rather than
// an error.
func (rs *RouteService) CompareRoutes(ctx context.Context, start, end models.LatLng, prefs models.RoutePreferences) []models.ScoredRoute {
	summaries, err := rs.Provider.Routes(ctx, start, end, prefs)
	if err != nil {
		rs.Logger.Warn("routing provider unavailable, serving distance estimate", "error", err)
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("component", "route_provider"),
			Level: sentry.LevelWarning,
		})
		return []models.ScoredRoute{FallbackRoute(start, end, prefs)}
	}

	scored := make([]models.ScoredRoute, 0, len(summaries))
	for _, summary := range summaries {
		scored = append(scored, models.ScoredRoute{
			Summary:     summary,
			AiScore:     ScoreRoute(summary, prefs),
			DurationMin: utils.RoundToInt(float64(summary.TravelTimeSeconds) / 60),
			HasToll:     summary.TollDistanceMeters > 0,
		})
	}
	return scored
}
