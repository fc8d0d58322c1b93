package traffic

import (
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/geo"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

// IncidentRadiusMeters is how close an incident must be to a road's sampling
// point before it counts against that road.
const IncidentRadiusMeters = 500.0

// CountNearbyIncidents counts the incidents that lie within radiusMeters of
// any of the given sampling points. An incident near two sampling points of
// the same road still counts once. O(points x incidents); point counts per
// road are small so this is not worth indexing.
func CountNearbyIncidents(points []models.LatLng, incidents []models.Incident, radiusMeters float64) int {
	count := 0
	for _, incident := range incidents {
		for _, point := range points {
			if geo.HaversineDistance(incident.Lat, incident.Lng, point.Lat, point.Lng) <= radiusMeters {
				count++
				break
			}
		}
	}
	return count
}
