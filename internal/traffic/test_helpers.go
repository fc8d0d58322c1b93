package traffic

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/config"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

// fakeFlowSampler serves canned samples keyed by point, and errors for any
// point it has no sample for.
type fakeFlowSampler struct {
	samples map[models.LatLng]models.FlowSample
}

func (f *fakeFlowSampler) Sample(ctx context.Context, point models.LatLng) (models.FlowSample, error) {
	sample, ok := f.samples[point]
	if !ok {
		return models.FlowSample{}, errors.New("no flow data for point")
	}
	return sample, nil
}

type fakeIncidentSource struct {
	incidents []models.Incident
	err       error
}

func (f *fakeIncidentSource) CityIncidents(ctx context.Context, city models.CityConfig) ([]models.Incident, error) {
	return f.incidents, f.err
}

// fixedRand returns the same value for every draw.
type fixedRand struct {
	value int
}

func (f fixedRand) IntN(n int) int { return f.value % n }

func newTestTrafficService(apiKey string, flow FlowSampler, incidents IncidentSource) *TrafficService {
	cfg := config.NewConfig(4000, "testing", apiKey, []models.CityConfig{
		{
			ID:     "testville",
			Name:   "Testville",
			Center: models.LatLng{Lat: -1.2921, Lng: 36.8219},
			Roads: []models.RoadGeometry{
				{
					Name: "Main Street",
					Polyline: []models.LatLng{
						{Lat: -1.2921, Lng: 36.8219},
						{Lat: -1.3073, Lng: 36.8219},
					},
				},
				{
					Name:   "Side Road",
					Center: models.LatLng{Lat: -1.30, Lng: 36.85},
				},
			},
		},
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTrafficService(cfg, flow, incidents, logger)
}
