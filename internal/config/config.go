package config

import (
	"sync"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

// Config holds all the configuration settings for our application.
type Config struct {
	Port          int
	Env           string
	FetchInterval int
	TomTomAPIKey  string
	Mu            sync.RWMutex
	Cities        []models.CityConfig
}

// NewConfig creates a new instance of a Config struct.
func NewConfig(port int, env string, apiKey string, cities []models.CityConfig) *Config {
	return &Config{
		Port:         port,
		Env:          env,
		TomTomAPIKey: apiKey,
		Cities:       cities,
	}
}

// UpdateCities safely replaces the configured city list.
func (cfg *Config) UpdateCities(newCities []models.CityConfig) {
	cfg.Mu.Lock()
	defer cfg.Mu.Unlock()
	cfg.Cities = newCities
}

// GetCities safely returns a copy of the cities slice to avoid
// concurrent modification issues.
// This method should be used to access the cities from other parts of the application.
func (cfg *Config) GetCities() []models.CityConfig {
	cfg.Mu.RLock()
	defer cfg.Mu.RUnlock()
	return append([]models.CityConfig(nil), cfg.Cities...)
}

// GetCity looks up a configured city by its identifier.
func (cfg *Config) GetCity(cityID string) (models.CityConfig, bool) {
	cfg.Mu.RLock()
	defer cfg.Mu.RUnlock()
	for _, city := range cfg.Cities {
		if city.ID == cityID {
			return city, true
		}
	}
	return models.CityConfig{}, false
}

// HasProviderKey reports whether a flow-provider API key is configured.
// Without one, live sampling is skipped entirely and metrics come from
// the simulated fallback.
func (cfg *Config) HasProviderKey() bool {
	return cfg.TomTomAPIKey != ""
}
