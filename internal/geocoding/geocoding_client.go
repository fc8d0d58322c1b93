package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

const DefaultGeocodingBaseURL = "https://api.tomtom.com"

// Result is a resolved location.
type Result struct {
	Position         models.LatLng `json:"position"`
	FormattedAddress string        `json:"formattedAddress"`
	City             string        `json:"city,omitempty"`
	Country          string        `json:"country,omitempty"`
	Confidence       float64       `json:"confidence"`
}

// knownCities are predefined Kenyan city coordinates used when the provider
// cannot resolve a query.
var knownCities = map[string]models.LatLng{
	"nairobi":  {Lat: -1.2921, Lng: 36.8219},
	"mombasa":  {Lat: -4.0435, Lng: 39.6682},
	"kisumu":   {Lat: -0.1022, Lng: 34.7617},
	"nakuru":   {Lat: -0.3031, Lng: 36.0800},
	"eldoret":  {Lat: 0.5143, Lng: 35.2698},
	"thika":    {Lat: -1.0332, Lng: 37.0692},
	"malindi":  {Lat: -3.2197, Lng: 40.1169},
	"kitale":   {Lat: 1.0167, Lng: 35.0000},
	"garissa":  {Lat: -0.4569, Lng: 39.6582},
	"kakamega": {Lat: 0.2827, Lng: 34.7519},
}

type geocodeResponse struct {
	Results []struct {
		Score    float64 `json:"score"`
		Position struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"position"`
		Address struct {
			FreeformAddress string `json:"freeformAddress"`
			Municipality    string `json:"municipality"`
			Country         string `json:"country"`
		} `json:"address"`
	} `json:"results"`
}

type reverseGeocodeResponse struct {
	Addresses []struct {
		Address struct {
			FreeformAddress string `json:"freeformAddress"`
			Municipality    string `json:"municipality"`
			Country         string `json:"country"`
		} `json:"address"`
	} `json:"addresses"`
}

// Client resolves location names to coordinates and back using the search
// provider, with the known-city table as a final fallback.
type Client struct {
	APIKey      string
	BaseURL     string
	CountryCode string
	Client      *http.Client
}

func NewClient(apiKey string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		APIKey:      apiKey,
		BaseURL:     DefaultGeocodingBaseURL,
		CountryCode: "KE",
		Client:      client,
	}
}

// Geocode resolves a free-form address to coordinates. Provider failures fall
// through to the known-city table before giving up.
func (gc *Client) Geocode(ctx context.Context, address string) (Result, error) {
	if gc.APIKey != "" {
		result, err := gc.providerGeocode(ctx, address)
		if err == nil {
			return result, nil
		}
	}

	if pos, ok := lookupKnownCity(address); ok {
		return Result{
			Position:         pos,
			FormattedAddress: address,
			Country:          "Kenya",
		}, nil
	}

	return Result{}, fmt.Errorf("could not resolve location %q", address)
}

// ReverseGeocode resolves coordinates to the nearest address.
func (gc *Client) ReverseGeocode(ctx context.Context, point models.LatLng) (Result, error) {
	if gc.APIKey == "" {
		return Result{}, fmt.Errorf("no geocoding provider key configured")
	}

	endpoint := fmt.Sprintf("%s/search/2/reverseGeocode/%f,%f.json", gc.BaseURL, point.Lat, point.Lng)

	params := url.Values{}
	params.Set("key", gc.APIKey)

	var payload reverseGeocodeResponse
	if err := gc.getJSON(ctx, endpoint+"?"+params.Encode(), &payload); err != nil {
		return Result{}, err
	}

	if len(payload.Addresses) == 0 {
		return Result{}, fmt.Errorf("no reverse geocoding results for %f,%f", point.Lat, point.Lng)
	}

	address := payload.Addresses[0].Address
	return Result{
		Position:         point,
		FormattedAddress: address.FreeformAddress,
		City:             address.Municipality,
		Country:          address.Country,
	}, nil
}

func (gc *Client) providerGeocode(ctx context.Context, address string) (Result, error) {
	endpoint := fmt.Sprintf("%s/search/2/geocode/%s.json", gc.BaseURL, url.PathEscape(address))

	params := url.Values{}
	params.Set("key", gc.APIKey)
	params.Set("countrySet", gc.CountryCode)
	params.Set("limit", "1")

	var payload geocodeResponse
	if err := gc.getJSON(ctx, endpoint+"?"+params.Encode(), &payload); err != nil {
		return Result{}, err
	}

	if len(payload.Results) == 0 {
		return Result{}, fmt.Errorf("no geocoding results for %q", address)
	}

	top := payload.Results[0]
	return Result{
		Position:         models.LatLng{Lat: top.Position.Lat, Lng: top.Position.Lon},
		FormattedAddress: top.Address.FreeformAddress,
		City:             top.Address.Municipality,
		Country:          top.Address.Country,
		Confidence:       top.Score,
	}, nil
}

func (gc *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create geocoding request: %v", err)
	}

	resp, err := gc.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch geocoding data: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoding provider returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode geocoding payload: %v", err)
	}
	return nil
}

func lookupKnownCity(location string) (models.LatLng, bool) {
	needle := strings.ToLower(strings.TrimSpace(location))
	for city, pos := range knownCities {
		if strings.Contains(needle, city) || strings.Contains(city, needle) {
			return pos, true
		}
	}
	return models.LatLng{}, false
}
