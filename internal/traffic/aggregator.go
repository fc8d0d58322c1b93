package traffic

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/getsentry/sentry-go"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/config"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/report"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/utils"
)

// Neutral per-point sample substituted when a single flow lookup fails.
// A failed point must not abort aggregation of its siblings.
const (
	neutralCurrentSpeedKmh   = 30
	neutralFreeFlowSpeedKmh  = 60
	neutralTravelTimeSeconds = 1200
)

// Neutral whole-road record returned for unknown city/road pairs. Unknown
// roads never hard-fail the dashboard.
const (
	defaultCongestionPct     = 40
	defaultAvgSpeedKmh       = 35
	defaultTravelTimeMinutes = 25
)

// Status tier thresholds on the congestion percentage.
const (
	slowThreshold  = 30
	heavyThreshold = 60
)

// FlowSampler fetches one normalized flow reading at a sampling point.
type FlowSampler interface {
	Sample(ctx context.Context, point models.LatLng) (models.FlowSample, error)
}

// IncidentSource fetches the current incident reports for a city.
type IncidentSource interface {
	CityIncidents(ctx context.Context, city models.CityConfig) ([]models.Incident, error)
}

// Rand is the source of randomness for the simulated fallback. Production
// uses the unseeded global generator; tests inject a fixed one.
type Rand interface {
	IntN(n int) int
}

type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.IntN(n) }

// TrafficService aggregates per-road traffic metrics. It is stateless apart
// from its wired dependencies; concurrent calls for different roads are
// independent and re-entrant.
type TrafficService struct {
	Config    *config.Config
	Flow      FlowSampler
	Incidents IncidentSource
	Logger    *slog.Logger
	Rand      Rand
}

// NewTrafficService wires a traffic service with the unseeded global
// random source.
func NewTrafficService(cfg *config.Config, flow FlowSampler, incidents IncidentSource, logger *slog.Logger) *TrafficService {
	return &TrafficService{
		Config:    cfg,
		Flow:      flow,
		Incidents: incidents,
		Logger:    logger,
		Rand:      systemRand{},
	}
}

// GetRoadMetrics returns the aggregate traffic metrics for one road. It never
// fails: unknown roads get the neutral default record, provider failures
// degrade to neutral per-point samples, and a missing provider key routes to
// the simulated fallback. IsLive is the only observable signal of degradation.
func (ts *TrafficService) GetRoadMetrics(ctx context.Context, cityID, roadID string) models.RoadMetrics {
	city, ok := ts.Config.GetCity(cityID)
	if !ok {
		ts.Logger.Warn("unknown city requested, serving neutral metrics", "city", cityID, "road", roadID)
		return neutralRecord(cityID, roadID)
	}

	road, ok := city.Road(roadID)
	if !ok {
		ts.Logger.Warn("unknown road requested, serving neutral metrics", "city", cityID, "road", roadID)
		return neutralRecord(cityID, roadID)
	}

	points := road.SamplingPoints()

	// Incident matching runs concurrently with flow sampling and applies to
	// both the live and the simulated path.
	incidentCh := make(chan int, 1)
	go func() {
		incidentCh <- ts.countRoadIncidents(ctx, city, points)
	}()

	var metrics models.RoadMetrics
	if ts.Config.HasProviderKey() {
		metrics = ts.aggregateLive(ctx, points)
	} else {
		metrics = ts.simulate()
	}

	metrics.City = cityID
	metrics.Road = roadID
	metrics.IncidentCount = <-incidentCh
	metrics.Status = classifyStatus(metrics.CongestionPct)
	return metrics
}

// GetCityMetrics aggregates metrics for every configured road of a city.
// Unknown cities yield an empty slice.
func (ts *TrafficService) GetCityMetrics(ctx context.Context, cityID string) []models.RoadMetrics {
	city, ok := ts.Config.GetCity(cityID)
	if !ok {
		return nil
	}

	results := make([]models.RoadMetrics, len(city.Roads))
	var wg sync.WaitGroup
	for i, road := range city.Roads {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			results[i] = ts.GetRoadMetrics(ctx, cityID, name)
		}(i, road.Name)
	}
	wg.Wait()
	return results
}

// aggregateLive fans out one flow lookup per sampling point, substitutes the
// neutral sample for individual failures, and combines the results by
// unweighted arithmetic mean across points.
func (ts *TrafficService) aggregateLive(ctx context.Context, points []models.LatLng) models.RoadMetrics {
	samples := make([]models.FlowSample, len(points))
	live := make([]bool, len(points))

	var wg sync.WaitGroup
	for i, point := range points {
		wg.Add(1)
		go func(i int, point models.LatLng) {
			defer wg.Done()
			sample, err := ts.Flow.Sample(ctx, point)
			if err != nil {
				ts.Logger.Warn("flow sample failed, substituting neutral sample",
					"lat", point.Lat, "lng", point.Lng, "error", err)
				report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
					Tags:  utils.MakeMap("component", "flow_sampler"),
					Level: sentry.LevelWarning,
				})
				samples[i] = models.FlowSample{
					CurrentSpeedKmh:   neutralCurrentSpeedKmh,
					FreeFlowSpeedKmh:  neutralFreeFlowSpeedKmh,
					TravelTimeSeconds: neutralTravelTimeSeconds,
				}
				return
			}
			samples[i] = sample
			live[i] = true
		}(i, point)
	}
	wg.Wait()

	var congestionSum, speedSum, minutesSum float64
	allLive := true
	for i, sample := range samples {
		congestionSum += float64(pointCongestion(sample))
		speedSum += float64(utils.RoundToInt(sample.CurrentSpeedKmh))
		minutesSum += float64(pointTravelMinutes(sample))
		if !live[i] {
			allLive = false
		}
	}

	n := float64(len(samples))
	return models.RoadMetrics{
		CongestionPct:     utils.ClampInt(utils.RoundToInt(congestionSum/n), 0, 100),
		AvgSpeedKmh:       utils.RoundToInt(speedSum / n),
		TravelTimeMinutes: utils.RoundToInt(minutesSum / n),
		IsLive:            allLive,
	}
}

// simulate produces the deterministic-shape random fallback used whenever no
// provider key is configured. The band is intentionally wide so the dashboard
// always has something plausible to render.
func (ts *TrafficService) simulate() models.RoadMetrics {
	congestion := 20 + ts.Rand.IntN(61) // uniform [20,80]
	speed := utils.RoundToInt(60 - float64(congestion)/2)
	if speed < 10 {
		speed = 10
	}
	minutes := utils.RoundToInt(30 + float64(congestion)/3)
	if minutes < 5 {
		minutes = 5
	}

	return models.RoadMetrics{
		CongestionPct:     congestion,
		AvgSpeedKmh:       speed,
		TravelTimeMinutes: minutes,
		IsLive:            false,
	}
}

// countRoadIncidents fetches the city's incidents and counts the ones near
// the road. Fetch failures count as zero incidents.
func (ts *TrafficService) countRoadIncidents(ctx context.Context, city models.CityConfig, points []models.LatLng) int {
	if ts.Incidents == nil || !ts.Config.HasProviderKey() {
		return 0
	}

	incidents, err := ts.Incidents.CityIncidents(ctx, city)
	if err != nil {
		ts.Logger.Warn("incident fetch failed, counting zero incidents", "city", city.ID, "error", err)
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("city_id", city.ID),
			Level: sentry.LevelWarning,
		})
		return 0
	}
	return CountNearbyIncidents(points, incidents, IncidentRadiusMeters)
}

// pointCongestion converts one flow sample into a congestion percentage:
// the relative speed drop versus free flow, clamped to [0,100].
func pointCongestion(sample models.FlowSample) int {
	speedDrop := sample.FreeFlowSpeedKmh - sample.CurrentSpeedKmh
	if speedDrop < 0 {
		speedDrop = 0
	}
	denom := sample.FreeFlowSpeedKmh
	if denom < 1 {
		denom = 1
	}
	return utils.ClampInt(utils.RoundToInt(100*speedDrop/denom), 0, 100)
}

// pointTravelMinutes converts a sample's travel time to whole minutes, at
// least one.
func pointTravelMinutes(sample models.FlowSample) int {
	minutes := utils.RoundToInt(sample.TravelTimeSeconds / 60)
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// classifyStatus maps a congestion percentage to its status tier. Thresholds
// are fixed constants, identical for every city.
func classifyStatus(congestionPct int) models.RoadStatus {
	switch {
	case congestionPct < slowThreshold:
		return models.StatusFree
	case congestionPct < heavyThreshold:
		return models.StatusSlow
	default:
		return models.StatusHeavy
	}
}

func neutralRecord(cityID, roadID string) models.RoadMetrics {
	return models.RoadMetrics{
		City:              cityID,
		Road:              roadID,
		CongestionPct:     defaultCongestionPct,
		AvgSpeedKmh:       defaultAvgSpeedKmh,
		TravelTimeMinutes: defaultTravelTimeMinutes,
		Status:            classifyStatus(defaultCongestionPct),
		IsLive:            false,
	}
}
