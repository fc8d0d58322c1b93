package config

import "github.com/charleschyna/movesmart-ke-system-sub001/internal/models"

// DefaultCities returns the built-in city and road geometry used when no
// external configuration is supplied. Sampling points are representative
// lat/lng pairs along each road, not exact carriageway geometry.
func DefaultCities() []models.CityConfig {
	return []models.CityConfig{
		{
			ID:     "nairobi",
			Name:   "Nairobi",
			Center: models.LatLng{Lat: -1.2921, Lng: 36.8219},
			Roads: []models.RoadGeometry{
				{
					Name:   "Uhuru Highway",
					Center: models.LatLng{Lat: -1.2921, Lng: 36.8219},
					Polyline: []models.LatLng{
						{Lat: -1.2921, Lng: 36.8219},
						{Lat: -1.3073, Lng: 36.8219},
					},
				},
				{
					Name:   "Waiyaki Way",
					Center: models.LatLng{Lat: -1.2651, Lng: 36.8048},
					Polyline: []models.LatLng{
						{Lat: -1.2651, Lng: 36.8048},
						{Lat: -1.2434, Lng: 36.7073},
					},
				},
				{
					Name:   "Mombasa Road",
					Center: models.LatLng{Lat: -1.2921, Lng: 36.8219},
					Polyline: []models.LatLng{
						{Lat: -1.2921, Lng: 36.8219},
						{Lat: -1.3670, Lng: 36.8950},
					},
				},
				{
					Name:   "Thika Road",
					Center: models.LatLng{Lat: -1.2634, Lng: 36.8309},
					Polyline: []models.LatLng{
						{Lat: -1.2634, Lng: 36.8309},
						{Lat: -1.0332, Lng: 37.0692},
					},
				},
				{
					Name:   "Ngong Road",
					Center: models.LatLng{Lat: -1.2921, Lng: 36.8219},
					Polyline: []models.LatLng{
						{Lat: -1.2921, Lng: 36.8219},
						{Lat: -1.3670, Lng: 36.7756},
					},
				},
				{
					Name:   "Jogoo Road",
					Center: models.LatLng{Lat: -1.2821, Lng: 36.8619},
					Polyline: []models.LatLng{
						{Lat: -1.2821, Lng: 36.8619},
						{Lat: -1.2831, Lng: 36.8629},
					},
				},
				{
					Name:   "Lang'ata Road",
					Center: models.LatLng{Lat: -1.3321, Lng: 36.7719},
					Polyline: []models.LatLng{
						{Lat: -1.3321, Lng: 36.7719},
						{Lat: -1.3331, Lng: 36.7729},
					},
				},
				{
					Name:   "Kiambu Road",
					Center: models.LatLng{Lat: -1.2421, Lng: 36.8419},
					Polyline: []models.LatLng{
						{Lat: -1.2421, Lng: 36.8419},
						{Lat: -1.2431, Lng: 36.8429},
					},
				},
			},
		},
		{
			ID:     "mombasa",
			Name:   "Mombasa",
			Center: models.LatLng{Lat: -4.0435, Lng: 39.6682},
			Roads: []models.RoadGeometry{
				{
					Name:   "Moi Avenue",
					Center: models.LatLng{Lat: -4.0435, Lng: 39.6682},
					Polyline: []models.LatLng{
						{Lat: -4.0435, Lng: 39.6682},
						{Lat: -4.0445, Lng: 39.6692},
					},
				},
				{
					Name:   "Nyali Bridge",
					Center: models.LatLng{Lat: -4.0235, Lng: 39.6882},
					Polyline: []models.LatLng{
						{Lat: -4.0235, Lng: 39.6882},
						{Lat: -4.0245, Lng: 39.6892},
					},
				},
				{
					Name:   "Digo Road",
					Center: models.LatLng{Lat: -4.0535, Lng: 39.6482},
					Polyline: []models.LatLng{
						{Lat: -4.0535, Lng: 39.6482},
						{Lat: -4.0545, Lng: 39.6492},
					},
				},
				{
					Name:   "Makupa Causeway",
					Center: models.LatLng{Lat: -4.0335, Lng: 39.6582},
					Polyline: []models.LatLng{
						{Lat: -4.0335, Lng: 39.6582},
						{Lat: -4.0345, Lng: 39.6592},
					},
				},
			},
		},
		{
			ID:     "kisumu",
			Name:   "Kisumu",
			Center: models.LatLng{Lat: -0.1022, Lng: 34.7617},
			Roads: []models.RoadGeometry{
				{
					Name:   "Oginga Odinga Street",
					Center: models.LatLng{Lat: -0.1022, Lng: 34.7617},
					Polyline: []models.LatLng{
						{Lat: -0.1022, Lng: 34.7617},
						{Lat: -0.1032, Lng: 34.7627},
					},
				},
				{
					Name:   "Kenyatta Avenue",
					Center: models.LatLng{Lat: -0.0922, Lng: 34.7717},
					Polyline: []models.LatLng{
						{Lat: -0.0922, Lng: 34.7717},
						{Lat: -0.0932, Lng: 34.7727},
					},
				},
				{
					Name:   "Nairobi Road",
					Center: models.LatLng{Lat: -0.1122, Lng: 34.7517},
					Polyline: []models.LatLng{
						{Lat: -0.1122, Lng: 34.7517},
						{Lat: -0.1132, Lng: 34.7527},
					},
				},
			},
		},
		{
			ID:     "nakuru",
			Name:   "Nakuru",
			Center: models.LatLng{Lat: -0.3031, Lng: 36.0800},
			Roads: []models.RoadGeometry{
				{
					Name:   "Kenyatta Avenue",
					Center: models.LatLng{Lat: -0.3031, Lng: 36.0800},
					Polyline: []models.LatLng{
						{Lat: -0.3031, Lng: 36.0800},
						{Lat: -0.3041, Lng: 36.0810},
					},
				},
				{
					Name:   "West Road",
					Center: models.LatLng{Lat: -0.3131, Lng: 36.0700},
					Polyline: []models.LatLng{
						{Lat: -0.3131, Lng: 36.0700},
						{Lat: -0.3141, Lng: 36.0710},
					},
				},
			},
		},
		{
			ID:     "eldoret",
			Name:   "Eldoret",
			Center: models.LatLng{Lat: 0.5143, Lng: 35.2697},
			Roads: []models.RoadGeometry{
				{
					Name:   "Uganda Road",
					Center: models.LatLng{Lat: 0.5143, Lng: 35.2697},
					Polyline: []models.LatLng{
						{Lat: 0.5143, Lng: 35.2697},
						{Lat: 0.5153, Lng: 35.2707},
					},
				},
				{
					Name:   "Kenyatta Street",
					Center: models.LatLng{Lat: 0.5043, Lng: 35.2797},
					Polyline: []models.LatLng{
						{Lat: 0.5043, Lng: 35.2797},
						{Lat: 0.5053, Lng: 35.2807},
					},
				},
			},
		},
	}
}
