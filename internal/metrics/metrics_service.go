package metrics

import (
	"log/slog"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

// MetricsService exports aggregated traffic metrics to Prometheus.
type MetricsService struct {
	Logger *slog.Logger
}

func NewMetricsService(logger *slog.Logger) *MetricsService {
	return &MetricsService{Logger: logger}
}

// RecordRoadMetrics publishes one road's aggregate metrics as gauges.
func (ms *MetricsService) RecordRoadMetrics(m models.RoadMetrics) {
	RoadCongestionGauge.WithLabelValues(m.City, m.Road).Set(float64(m.CongestionPct))
	RoadAvgSpeedGauge.WithLabelValues(m.City, m.Road).Set(float64(m.AvgSpeedKmh))
	RoadTravelTimeGauge.WithLabelValues(m.City, m.Road).Set(float64(m.TravelTimeMinutes))
	RoadIncidentsGauge.WithLabelValues(m.City, m.Road).Set(float64(m.IncidentCount))

	live := 0.0
	if m.IsLive {
		live = 1
	}
	RoadLiveDataGauge.WithLabelValues(m.City, m.Road).Set(live)
}

// RecordCitySummary publishes city-wide figures derived from the summary.
func (ms *MetricsService) RecordCitySummary(s models.CitySummary) {
	CityIncidentsGauge.WithLabelValues(s.City).Set(float64(s.LiveIncidents))

	status := 0.0
	if s.IsLive {
		status = 1
	}
	FlowApiStatus.WithLabelValues(s.City).Set(status)
}
