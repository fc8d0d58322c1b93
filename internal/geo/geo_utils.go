package geo

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

// earthRadiusInMeters represents the mean radius of the Earth in meters.
//
// This value (6,371,000 meters) is defined as the Earth's volumetric mean radius,
// which is commonly used for general geospatial calculations and spherical approximations.
//
// Reference: NASA Planetary Fact Sheet – Earth
// https://nssdc.gsfc.nasa.gov/planetary/factsheet/earthfact.html
const earthRadiusInMeters = 6371000

// HaversineDistance returns the great-circle distance in meters between two
// lat/lon pairs.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * earthRadiusInMeters
}

// DistanceKm returns the great-circle distance in kilometers between two points.
func DistanceKm(a, b models.LatLng) float64 {
	return HaversineDistance(a.Lat, a.Lng, b.Lat, b.Lng) / 1000
}

// BoundingBox defines the corners of a lat/lon box.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Contains checks whether the given latitude and longitude are within the bounding box.
func (b *BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// kmPerDegreeLat is the approximate ground span of one degree of latitude.
const kmPerDegreeLat = 111.32

// BoundingBoxAround computes a bounding box centered on the given point with
// the given radius in kilometers. The longitude span widens with latitude so
// the box stays roughly square on the ground.
func BoundingBoxAround(center models.LatLng, radiusKm float64) BoundingBox {
	latChange := radiusKm / kmPerDegreeLat
	cosLat := math.Abs(math.Cos(center.Lat * math.Pi / 180))
	if cosLat < 0.01 {
		// Near the poles the longitude span degenerates; clamp it.
		cosLat = 0.01
	}
	lonChange := radiusKm / (kmPerDegreeLat * cosLat)
	return BoundingBox{
		MinLat: center.Lat - latChange,
		MaxLat: center.Lat + latChange,
		MinLon: center.Lng - lonChange,
		MaxLon: center.Lng + lonChange,
	}
}

// IsValidLatLon returns true if the given latitude and longitude values
// fall within the valid geographic coordinate bounds.
//
// Latitude must be between -90 and 90 degrees, and longitude must be
// between -180 and 180 degrees.
//
// Note: This function treats the coordinate (0,0) as invalid, even though it
// is a valid location in the Gulf of Guinea. This assumption is made to help
// detect uninitialized or placeholder coordinates commonly represented as (0,0).
func IsValidLatLon(lat, lon float64) bool {
	if lat == 0 && lon == 0 {
		return false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return false
	}
	return true
}
