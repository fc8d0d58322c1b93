package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

const DefaultRoutingBaseURL = "https://api.tomtom.com"

// calculateRouteResponse mirrors the routing provider's payload for the
// fields the scorer consumes.
type calculateRouteResponse struct {
	Routes []struct {
		Summary struct {
			LengthInMeters                      int     `json:"lengthInMeters"`
			TravelTimeInSeconds                 int     `json:"travelTimeInSeconds"`
			TrafficDelayInSeconds               int     `json:"trafficDelayInSeconds"`
			FuelConsumptionInLitersPerHundredKm float64 `json:"fuelConsumptionInLitersPerHundredkm"`
		} `json:"summary"`
		Sections []struct {
			SectionType    string `json:"sectionType"`
			LengthInMeters int    `json:"lengthInMeters,omitempty"`
		} `json:"sections"`
	} `json:"routes"`
}

// Client fetches candidate routes with live traffic from the routing
// provider.
type Client struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewClient(apiKey string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: DefaultRoutingBaseURL,
		Client:  client,
	}
}

// Routes returns up to three route alternatives between the two points. Any
// failure is returned to the caller, which falls back to the Haversine
// estimate.
func (rc *Client) Routes(ctx context.Context, start, end models.LatLng, prefs models.RoutePreferences) ([]models.RouteSummary, error) {
	if rc.APIKey == "" {
		return nil, fmt.Errorf("no routing provider key configured")
	}

	endpoint := fmt.Sprintf("%s/routing/1/calculateRoute/%f,%f:%f,%f/json",
		rc.BaseURL, start.Lat, start.Lng, end.Lat, end.Lng)

	params := url.Values{}
	params.Set("key", rc.APIKey)
	params.Set("traffic", "true")
	params.Set("travelMode", "car")
	params.Set("routeType", "fastest")
	params.Set("maxAlternatives", "2")
	params.Set("sectionType", "tollRoad")
	if prefs.AvoidTolls {
		params.Set("avoid", "tollRoads")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create routing request: %v", err)
	}

	resp, err := rc.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch routes: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing provider returned status: %d", resp.StatusCode)
	}

	var payload calculateRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode routing payload: %v", err)
	}

	if len(payload.Routes) == 0 {
		return nil, fmt.Errorf("routing payload contains no routes")
	}

	summaries := make([]models.RouteSummary, 0, len(payload.Routes))
	for _, route := range payload.Routes {
		tollMeters := 0
		for _, section := range route.Sections {
			if section.SectionType == "TOLL_ROAD" {
				tollMeters += section.LengthInMeters
			}
		}

		distanceKm := float64(route.Summary.LengthInMeters) / 1000
		summaries = append(summaries, models.RouteSummary{
			TravelTimeSeconds:     route.Summary.TravelTimeInSeconds,
			TrafficDelaySeconds:   route.Summary.TrafficDelayInSeconds,
			FuelConsumptionLiters: route.Summary.FuelConsumptionInLitersPerHundredKm * distanceKm / 100,
			TollDistanceMeters:    tollMeters,
			DistanceKm:            distanceKm,
		})
	}

	return summaries, nil
}
