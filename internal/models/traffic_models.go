package models

// LatLng is a geographic coordinate in decimal degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RoadGeometry describes a monitored road: a representative center point and
// an ordered polyline of sampling points used to query live flow data.
// When Polyline is empty, Center is the sole sampling point.
type RoadGeometry struct {
	Name     string   `json:"name"`
	Center   LatLng   `json:"center"`
	Polyline []LatLng `json:"polyline"`
}

// SamplingPoints returns the points the aggregator should query for this road.
func (r RoadGeometry) SamplingPoints() []LatLng {
	if len(r.Polyline) > 0 {
		return r.Polyline
	}
	return []LatLng{r.Center}
}

// CityConfig holds the static geometry for one monitored city.
type CityConfig struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Center LatLng         `json:"center"`
	Roads  []RoadGeometry `json:"roads"`
}

// Road looks up a road geometry by name. The boolean reports whether the
// road is configured for this city.
func (c CityConfig) Road(roadID string) (RoadGeometry, bool) {
	for _, road := range c.Roads {
		if road.Name == roadID {
			return road, true
		}
	}
	return RoadGeometry{}, false
}

// FlowSample is one normalized flow-provider reading at a sampling point.
type FlowSample struct {
	CurrentSpeedKmh   float64
	FreeFlowSpeedKmh  float64
	TravelTimeSeconds float64
}

// RoadStatus is the coarse congestion tier derived from the congestion percentage.
type RoadStatus string

const (
	StatusFree  RoadStatus = "free"
	StatusSlow  RoadStatus = "slow"
	StatusHeavy RoadStatus = "heavy"
)

// RoadMetrics is the aggregate per-road result returned to callers.
// IsLive is true only when every contributing sample came from the
// external provider.
type RoadMetrics struct {
	City              string     `json:"city"`
	Road              string     `json:"road"`
	CongestionPct     int        `json:"congestionPct"`
	AvgSpeedKmh       int        `json:"avgSpeedKmh"`
	IncidentCount     int        `json:"incidentCount"`
	TravelTimeMinutes int        `json:"travelTimeMinutes"`
	Status            RoadStatus `json:"status"`
	IsLive            bool       `json:"isLive"`
}

// Incident is a single traffic incident report from the incident provider.
// Only the position participates in proximity matching; the rest is passed
// through to callers untouched.
type Incident struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	DelaySec    int     `json:"delaySeconds,omitempty"`
}

// CitySummary is the dashboard-level snapshot for a whole city.
type CitySummary struct {
	City            string `json:"city"`
	CongestionLevel int    `json:"congestionLevel"`
	AvgTravelTime   int    `json:"avgTravelTime"`
	LiveIncidents   int    `json:"liveIncidents"`
	Forecast        string `json:"forecast"`
	IsLive          bool   `json:"isLive"`
}

// RouteSummary holds the statistics of one candidate route, either returned
// by the routing provider or estimated by the distance fallback. Estimated
// reports provenance; callers must not otherwise be able to tell the two apart.
type RouteSummary struct {
	TravelTimeSeconds     int     `json:"travelTimeSeconds"`
	TrafficDelaySeconds   int     `json:"trafficDelaySeconds"`
	FuelConsumptionLiters float64 `json:"fuelConsumptionLiters"`
	TollDistanceMeters    int     `json:"tollDistanceMeters"`
	DistanceKm            float64 `json:"distanceKm"`
	Estimated             bool    `json:"estimated"`
}

// RoutePreferences are the caller's route comparison options.
type RoutePreferences struct {
	AvoidTolls bool `json:"avoidTolls"`
	Fastest    bool `json:"fastest"`
	Greenest   bool `json:"greenest"`
}

// ScoredRoute pairs a route summary with its comparison score.
type ScoredRoute struct {
	Summary     RouteSummary `json:"summary"`
	AiScore     int          `json:"aiScore"`
	DurationMin int          `json:"durationMin"`
	FuelCostKsh int          `json:"fuelCostKsh,omitempty"`
	Co2Kg       float64      `json:"co2Kg,omitempty"`
	HasToll     bool         `json:"hasToll"`
}
