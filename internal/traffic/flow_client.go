package traffic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/report"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/utils"
)

const DefaultFlowBaseURL = "https://api.tomtom.com"

// flowSegmentResponse mirrors the provider's flow segment payload. Only the
// fields the aggregator consumes are decoded.
type flowSegmentResponse struct {
	FlowSegmentData *struct {
		CurrentSpeed      float64 `json:"currentSpeed"`
		FreeFlowSpeed     float64 `json:"freeFlowSpeed"`
		CurrentTravelTime float64 `json:"currentTravelTime"`
	} `json:"flowSegmentData"`
}

// FlowClient queries the flow provider for point speed data.
type FlowClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewFlowClient creates a flow client against the production provider endpoint.
func NewFlowClient(apiKey string, client *http.Client) *FlowClient {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &FlowClient{
		APIKey:  apiKey,
		BaseURL: DefaultFlowBaseURL,
		Client:  client,
	}
}

// Sample fetches the current flow segment data at the given point and decodes
// it into a normalized FlowSample. Every failure mode (transport error,
// non-200 status, malformed payload, missing segment data) is returned as an
// error so the caller can apply the neutral-sample policy in a single branch.
// Sample must not be called when no API key is configured.
func (fc *FlowClient) Sample(ctx context.Context, point models.LatLng) (models.FlowSample, error) {
	endpoint := fmt.Sprintf("%s/traffic/services/4/flowSegmentData/absolute/10/json", fc.BaseURL)

	params := url.Values{}
	params.Set("key", fc.APIKey)
	params.Set("point", fmt.Sprintf("%f,%f", point.Lat, point.Lng))
	params.Set("unit", "KMPH")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.FlowSample{}, fmt.Errorf("failed to create flow request: %v", err)
	}

	resp, err := fc.Client.Do(req)
	if err != nil {
		return models.FlowSample{}, fmt.Errorf("failed to fetch flow data: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("flow provider returned status: %d", resp.StatusCode)
		report.ReportErrorWithSentryOptions(statusErr, report.SentryReportOptions{
			Tags: utils.MakeMap("flow_endpoint", endpoint),
			ExtraContext: map[string]interface{}{
				"status_code": resp.StatusCode,
			},
		})
		return models.FlowSample{}, statusErr
	}

	var payload flowSegmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.FlowSample{}, fmt.Errorf("failed to decode flow payload: %v", err)
	}

	if payload.FlowSegmentData == nil {
		return models.FlowSample{}, fmt.Errorf("flow payload missing segment data")
	}

	segment := payload.FlowSegmentData
	if segment.FreeFlowSpeed <= 0 {
		return models.FlowSample{}, fmt.Errorf("flow segment has no free-flow speed")
	}

	return models.FlowSample{
		CurrentSpeedKmh:   segment.CurrentSpeed,
		FreeFlowSpeedKmh:  segment.FreeFlowSpeed,
		TravelTimeSeconds: segment.CurrentTravelTime,
	}, nil
}
