package traffic

import (
	"context"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/utils"
)

// Dashboard forecast lines keyed by congestion and incident thresholds.
const (
	forecastMajor    = "Expect major delays. Consider alternative routes or travel times."
	forecastHeavy    = "Heavy traffic reported. Plan for extra travel time."
	forecastModerate = "Moderate traffic conditions. Minor delays possible."
	forecastSmooth   = "Traffic is flowing smoothly. Have a safe trip!"
)

// GetCitySummary builds the dashboard-level snapshot for a city: one flow
// reading at the city center, the citywide incident count, and a forecast
// line. Like road metrics it is total; every failure degrades to the
// simulated band.
func (ts *TrafficService) GetCitySummary(ctx context.Context, cityID string) models.CitySummary {
	city, ok := ts.Config.GetCity(cityID)
	if !ok {
		ts.Logger.Warn("unknown city requested for summary", "city", cityID)
		sim := ts.simulate()
		return models.CitySummary{
			City:            cityID,
			CongestionLevel: sim.CongestionPct,
			AvgTravelTime:   sim.TravelTimeMinutes,
			Forecast:        forecastText(sim.CongestionPct, 0),
			IsLive:          false,
		}
	}

	incidentCh := make(chan int, 1)
	go func() {
		if ts.Incidents == nil || !ts.Config.HasProviderKey() {
			incidentCh <- 0
			return
		}
		incidents, err := ts.Incidents.CityIncidents(ctx, city)
		if err != nil {
			ts.Logger.Warn("incident fetch failed for summary", "city", cityID, "error", err)
			incidentCh <- 0
			return
		}
		incidentCh <- len(incidents)
	}()

	summary := models.CitySummary{City: cityID}

	if ts.Config.HasProviderKey() {
		sample, err := ts.Flow.Sample(ctx, city.Center)
		if err == nil {
			summary.CongestionLevel = pointCongestion(sample)
			summary.AvgTravelTime = travelTimePer10Km(sample.CurrentSpeedKmh)
			summary.IsLive = true
		} else {
			ts.Logger.Warn("center flow sample failed for summary", "city", cityID, "error", err)
		}
	}

	if !summary.IsLive {
		sim := ts.simulate()
		summary.CongestionLevel = sim.CongestionPct
		summary.AvgTravelTime = sim.TravelTimeMinutes
	}

	summary.LiveIncidents = <-incidentCh
	summary.Forecast = forecastText(summary.CongestionLevel, summary.LiveIncidents)
	return summary
}

// travelTimePer10Km estimates minutes to cover 10 km at the current speed.
// A standstill reads as 99 minutes rather than infinity.
func travelTimePer10Km(currentSpeedKmh float64) int {
	if currentSpeedKmh <= 0 {
		return 99
	}
	return utils.RoundToInt((10 / currentSpeedKmh) * 60)
}

func forecastText(congestionLevel, liveIncidents int) string {
	switch {
	case congestionLevel > 75 || liveIncidents > 10:
		return forecastMajor
	case congestionLevel > 50 || liveIncidents > 5:
		return forecastHeavy
	case congestionLevel > 25:
		return forecastModerate
	default:
		return forecastSmooth
	}
}
