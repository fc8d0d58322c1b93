package routing

import (
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/geo"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/utils"
)

// Score bounds. Downstream UI sorts and labels routes by this score, so the
// bands and constants below must stay exactly as tuned.
const (
	scoreBase = 70
	scoreMin  = 50
	scoreMax  = 100
)

// ScoreRoute applies the hand-tuned linear heuristic to a route summary:
// additive bonuses and penalties for travel time, traffic delay, fuel use,
// and toll avoidance, clamped to [50,100].
func ScoreRoute(summary models.RouteSummary, prefs models.RoutePreferences) int {
	score := scoreBase

	minutes := float64(summary.TravelTimeSeconds) / 60
	switch {
	case minutes < 20:
		score += 15
	case minutes < 40:
		score += 10
	case minutes > 60:
		score -= 10
	}

	if summary.TrafficDelaySeconds < 60 {
		score += 10
	} else if summary.TrafficDelaySeconds > 300 {
		score -= 15
	}

	if summary.FuelConsumptionLiters < 2 {
		score += 10
	} else if summary.FuelConsumptionLiters > 5 {
		score -= 5
	}

	if prefs.AvoidTolls && summary.TollDistanceMeters == 0 {
		score += 5
	}

	return utils.ClampInt(score, scoreMin, scoreMax)
}

// Fallback route estimation constants, tuned for Kenyan driving conditions.
const (
	fallbackMinutesPerKm = 2.5
	fallbackKshPerKm     = 12.0
	fallbackCo2KgPerKm   = 0.21
	fallbackTollMinKm    = 15.0
	fallbackMinMinutes   = 10
)

// FallbackRoute builds a distance-estimated route between two points for use
// when the routing provider is unavailable. The score is fixed by preference
// rather than computed through ScoreRoute; the estimate carries too little
// signal for the banded heuristic to mean anything.
func FallbackRoute(start, end models.LatLng, prefs models.RoutePreferences) models.ScoredRoute {
	distanceKm := geo.DistanceKm(start, end)

	durationMin := utils.RoundToInt(distanceKm * fallbackMinutesPerKm)
	if durationMin < fallbackMinMinutes {
		durationMin = fallbackMinMinutes
	}

	hasToll := !prefs.AvoidTolls && distanceKm > fallbackTollMinKm

	score := 75
	if prefs.Fastest {
		score = 85
	} else if prefs.Greenest {
		score = 80
	}

	return models.ScoredRoute{
		Summary: models.RouteSummary{
			TravelTimeSeconds: durationMin * 60,
			DistanceKm:        distanceKm,
			Estimated:         true,
		},
		AiScore:     score,
		DurationMin: durationMin,
		FuelCostKsh: utils.RoundToInt(distanceKm * fallbackKshPerKm),
		Co2Kg:       utils.Round2(distanceKm * fallbackCo2KgPerKm),
		HasToll:     hasToll,
	}
}
