package incidents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/geo"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

const DefaultIncidentBaseURL = "https://api.tomtom.com"

// incidentBboxRadiusKm is the half-width of the incident query box around a
// city center.
const incidentBboxRadiusKm = 10.0

// incidentDetailsResponse mirrors the provider's incident payload. Geometry
// coordinates arrive GeoJSON-style, longitude first.
type incidentDetailsResponse struct {
	Incidents []struct {
		Geometry struct {
			Type        string          `json:"type"`
			Coordinates json.RawMessage `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			IconCategory     int `json:"iconCategory"`
			MagnitudeOfDelay int `json:"magnitudeOfDelay"`
		} `json:"properties"`
	} `json:"incidents"`
}

// Client fetches traffic incident reports for a city from the incident
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
		BaseURL: DefaultIncidentBaseURL,
		Client:  client,
	}
}

// CityIncidents returns the current incidents within the city's query box.
// Callers treat any error as an empty collection; the error is returned so
// they can log and report it.
func (c *Client) CityIncidents(ctx context.Context, city models.CityConfig) ([]models.Incident, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("no incident provider key configured")
	}

	bbox := geo.BoundingBoxAround(city.Center, incidentBboxRadiusKm)
	endpoint := fmt.Sprintf("%s/traffic/services/5/incidentDetails", c.BaseURL)

	params := url.Values{}
	params.Set("key", c.APIKey)
	params.Set("bbox", fmt.Sprintf("%f,%f,%f,%f", bbox.MinLon, bbox.MinLat, bbox.MaxLon, bbox.MaxLat))
	params.Set("fields", "{incidents{type,geometry{type,coordinates},properties{iconCategory,magnitudeOfDelay}}}")
	params.Set("language", "en-US")
	params.Set("timeValidityFilter", "present")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create incident request: %v", err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch incidents: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("incident provider returned status: %d", resp.StatusCode)
	}

	var payload incidentDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode incident payload: %v", err)
	}

	incidents := make([]models.Incident, 0, len(payload.Incidents))
	for _, raw := range payload.Incidents {
		lat, lng, ok := decodePosition(raw.Geometry.Type, raw.Geometry.Coordinates)
		if !ok || !geo.IsValidLatLon(lat, lng) {
			continue
		}
		incidents = append(incidents, models.Incident{
			Lat:      lat,
			Lng:      lng,
			Category: iconCategoryName(raw.Properties.IconCategory),
			DelaySec: raw.Properties.MagnitudeOfDelay,
		})
	}

	return incidents, nil
}

// decodePosition extracts a representative lat/lng from a GeoJSON geometry.
// LineStrings use their first vertex.
func decodePosition(geomType string, coords json.RawMessage) (lat, lng float64, ok bool) {
	switch geomType {
	case "Point":
		var pos []float64
		if err := json.Unmarshal(coords, &pos); err != nil || len(pos) < 2 {
			return 0, 0, false
		}
		return pos[1], pos[0], true
	case "LineString":
		var line [][]float64
		if err := json.Unmarshal(coords, &line); err != nil || len(line) == 0 || len(line[0]) < 2 {
			return 0, 0, false
		}
		return line[0][1], line[0][0], true
	default:
		return 0, 0, false
	}
}

// iconCategoryName maps the provider's numeric icon categories to readable
// labels for the dashboard.
func iconCategoryName(category int) string {
	switch category {
	case 1:
		return "accident"
	case 2:
		return "fog"
	case 3:
		return "dangerous_conditions"
	case 4:
		return "rain"
	case 5:
		return "ice"
	case 6:
		return "jam"
	case 7:
		return "lane_closed"
	case 8:
		return "road_closed"
	case 9:
		return "road_works"
	case 10:
		return "wind"
	case 11:
		return "flooding"
	case 14:
		return "broken_down_vehicle"
	default:
		return "unknown"
	}
}
