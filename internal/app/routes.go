package app

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/middleware"
)

// Routes sets up the HTTP routing configuration for the application and
// returns the final http.Handler.
//
// Registered routes:
//   - GET /v1/healthcheck — readiness and version snapshot.
//   - GET /v1/traffic/:city/summary — dashboard city summary.
//   - GET /v1/traffic/:city/roads — metrics for every configured road.
//   - GET /v1/traffic/:city/roads/:road — metrics for one road; unknown
//     roads get the neutral record, never an error status.
//   - POST /v1/routes/compare — scored route alternatives.
//   - GET /v1/geocode and /v1/geocode/reverse — location resolution.
//   - GET /metrics — cached Prometheus exposition.
//
// The whole router is wrapped with the Sentry middleware for panic and error
// capture, then with the security headers middleware.
func (app *Application) Routes(ctx context.Context) http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/v1/traffic/:city/summary", app.citySummaryHandler)
	router.HandlerFunc(http.MethodGet, "/v1/traffic/:city/roads", app.cityRoadsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/traffic/:city/roads/:road", app.roadMetricsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/routes/compare", app.compareRoutesHandler)
	router.HandlerFunc(http.MethodGet, "/v1/geocode", app.geocodeHandler)
	router.HandlerFunc(http.MethodGet, "/v1/geocode/reverse", app.reverseGeocodeHandler)
	router.Handler(http.MethodGet, "/metrics", middleware.NewCachedPromHandler(ctx, prometheus.DefaultGatherer, 10*time.Second))

	handler := middleware.SentryMiddleware(router)
	return middleware.SecurityHeaders(handler)
}
