package app

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/geo"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

// HealthStatus defines the structure of the JSON response returned by the
// application's health check endpoint (/v1/healthcheck).
//
// Fields:
//   - Status: a high-level indicator of service availability (e.g., "available").
//   - Environment: the current environment (development, staging, production).
//   - Version: the application version string.
//   - Cities: the number of cities currently configured for monitoring.
//   - LiveData: whether a flow-provider key is configured; without one the
//     service still answers, but every figure comes from the simulated band.
//   - Ready: true if at least one city is configured.
type HealthStatus struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	Cities      int    `json:"cities"`
	LiveData    bool   `json:"liveData"`
	Ready       bool   `json:"ready"`
}

// healthcheckHandler responds with a JSON representation of the application's
// health status. If no cities are configured the handler responds with HTTP
// 500 so orchestration treats the instance as not ready.
func (app *Application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	numCities := len(app.ConfigService.Config.GetCities())

	ready := numCities > 0

	status := HealthStatus{
		Status:      "available",
		Environment: app.ConfigService.Config.Env,
		Version:     app.Version,
		Cities:      numCities,
		LiveData:    app.ConfigService.Config.HasProviderKey(),
		Ready:       ready,
	}

	w.Header().Set("Content-Type", "application/json")
	if !ready {
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(status)
}

// citySummaryHandler serves the dashboard summary for one city. Unknown
// cities get a simulated summary rather than an error.
func (app *Application) citySummaryHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	summary := app.TrafficService.GetCitySummary(r.Context(), params.ByName("city"))
	app.writeJSON(w, http.StatusOK, summary)
}

// cityRoadsHandler serves metrics for every configured road of a city.
func (app *Application) cityRoadsHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	cityID := params.ByName("city")

	results := app.TrafficService.GetCityMetrics(r.Context(), cityID)
	if results == nil {
		results = []models.RoadMetrics{}
	}
	app.writeJSON(w, http.StatusOK, results)
}

// roadMetricsHandler serves the aggregate metrics for a single road. Unknown
// city/road pairs are answered with the neutral default record and HTTP 200;
// the dashboard must never see a hard failure here.
func (app *Application) roadMetricsHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	metrics := app.TrafficService.GetRoadMetrics(r.Context(), params.ByName("city"), params.ByName("road"))
	app.writeJSON(w, http.StatusOK, metrics)
}

// compareRouteRequest is the body of POST /v1/routes/compare.
type compareRouteRequest struct {
	Origin      models.LatLng           `json:"origin"`
	Destination models.LatLng           `json:"destination"`
	Preferences models.RoutePreferences `json:"preferences"`
}

// compareRoutesHandler scores route alternatives between two points. Provider
// unavailability degrades to a distance-estimated route; only a malformed
// request body or invalid coordinates produce a client error.
func (app *Application) compareRoutesHandler(w http.ResponseWriter, r *http.Request) {
	var req compareRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !geo.IsValidLatLon(req.Origin.Lat, req.Origin.Lng) || !geo.IsValidLatLon(req.Destination.Lat, req.Destination.Lng) {
		app.writeError(w, http.StatusBadRequest, "origin and destination must be valid coordinates")
		return
	}

	routes := app.RouteService.CompareRoutes(r.Context(), req.Origin, req.Destination, req.Preferences)
	app.writeJSON(w, http.StatusOK, routes)
}

// geocodeHandler resolves a free-form location query to coordinates.
func (app *Application) geocodeHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		app.writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	result, err := app.Geocoder.Geocode(r.Context(), query)
	if err != nil {
		app.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	app.writeJSON(w, http.StatusOK, result)
}

// reverseGeocodeHandler resolves lat/lon query parameters to an address.
func (app *Application) reverseGeocodeHandler(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil || !geo.IsValidLatLon(lat, lon) {
		app.writeError(w, http.StatusBadRequest, "lat and lon must be valid coordinates")
		return
	}

	result, err := app.Geocoder.ReverseGeocode(r.Context(), models.LatLng{Lat: lat, Lng: lon})
	if err != nil {
		app.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	app.writeJSON(w, http.StatusOK, result)
}

func (app *Application) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.Logger.Error("Failed to encode response", "error", err)
	}
}

func (app *Application) writeError(w http.ResponseWriter, status int, message string) {
	app.writeJSON(w, status, map[string]string{"error": message})
}
