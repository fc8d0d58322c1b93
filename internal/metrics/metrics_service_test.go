package metrics

import (
	"log/slog"
	"os"
	"testing"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

func TestRecordRoadMetrics(t *testing.T) {
	ms := NewMetricsService(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	ms.RecordRoadMetrics(models.RoadMetrics{
		City:              "nairobi",
		Road:              "Thika Road",
		CongestionPct:     67,
		AvgSpeedKmh:       20,
		IncidentCount:     3,
		TravelTimeMinutes: 10,
		Status:            models.StatusHeavy,
		IsLive:            true,
	})

	labels := map[string]string{"city_id": "nairobi", "road": "Thika Road"}

	if v, err := getMetricValue(RoadCongestionGauge, labels); err != nil || v != 67 {
		t.Errorf("congestion gauge = %f (err %v), want 67", v, err)
	}
	if v, err := getMetricValue(RoadAvgSpeedGauge, labels); err != nil || v != 20 {
		t.Errorf("avg speed gauge = %f (err %v), want 20", v, err)
	}
	if v, err := getMetricValue(RoadLiveDataGauge, labels); err != nil || v != 1 {
		t.Errorf("live gauge = %f (err %v), want 1", v, err)
	}
}

func TestRecordCitySummary(t *testing.T) {
	ms := NewMetricsService(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	ms.RecordCitySummary(models.CitySummary{
		City:          "mombasa",
		LiveIncidents: 4,
		IsLive:        false,
	})

	if v, err := getMetricValue(CityIncidentsGauge, map[string]string{"city_id": "mombasa"}); err != nil || v != 4 {
		t.Errorf("city incidents gauge = %f (err %v), want 4", v, err)
	}
	if v, err := getMetricValue(FlowApiStatus, map[string]string{"city_id": "mombasa"}); err != nil || v != 0 {
		t.Errorf("flow api status gauge = %f (err %v), want 0", v, err)
	}
}
