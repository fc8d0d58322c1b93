package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FlowApiStatus Flow provider status (up/down)
	FlowApiStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "flow_api_status",
			Help: "Status of the traffic flow provider (0 = not working, 1 = working)",
		},
		[]string{"city_id"},
	)
)

var (
	RoadCongestionGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "road_congestion_percent",
		Help: "Aggregate congestion percentage for a monitored road",
	}, []string{"city_id", "road"})

	RoadAvgSpeedGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "road_avg_speed_kmh",
		Help: "Aggregate average speed for a monitored road in km/h",
	}, []string{"city_id", "road"})

	RoadTravelTimeGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "road_travel_time_minutes",
		Help: "Aggregate travel time for a monitored road in minutes",
	}, []string{"city_id", "road"})

	RoadIncidentsGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "road_incident_count",
		Help: "Number of incidents within matching radius of a monitored road",
	}, []string{"city_id", "road"})

	RoadLiveDataGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "road_metrics_live",
		Help: "Whether the road metrics came from the live provider (1 = live, 0 = simulated or degraded)",
	}, []string{"city_id", "road"})
)

var (
	CityIncidentsGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "city_incident_count",
		Help: "Number of active incidents reported for a city",
	}, []string{"city_id"})
)

var (
	OutgoingLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "outgoing_request_duration_seconds",
			Help:    "Latency of outgoing HTTP requests to external providers",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"url", "method", "status"},
	)
)
