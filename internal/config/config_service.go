package config

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/report"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/utils"
)

// ConfigService holds dependencies and provides config operations.
type ConfigService struct {
	Logger *slog.Logger
	Client *http.Client
	Config *Config
}

// NewConfigService creates a new ConfigService instance with the provided logger and HTTP client.
func NewConfigService(logger *slog.Logger, client *http.Client, config *Config) *ConfigService {
	return &ConfigService{
		Logger: logger,
		Client: client,
		Config: config,
	}
}

func (cs *ConfigService) RefreshConfig(ctx context.Context, url, authUser, authPass string, interval time.Duration, maxRetries int) {
	refreshConfig(ctx, cs.Client, url, authUser, authPass, cs.Config, cs.Logger, interval, maxRetries)
}

// exported helper functions

// LoadConfigFromFile loads the city configuration from a local JSON file.
func LoadConfigFromFile(filePath string) ([]models.CityConfig, error) {
	cities, err := loadConfigFromFile(filePath)
	if err != nil {
		err := fmt.Errorf("failed to load config from file %s: %w", filePath, err)
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("file_path", filePath),
			Level: sentry.LevelError,
		})
		return nil, err
	}
	return cities, nil
}

// LoadConfigFromURL loads the city configuration from a remote JSON endpoint.
func LoadConfigFromURL(ctx context.Context, client *http.Client, url, authUser, authPass string, maxRetries int) ([]models.CityConfig, error) {
	cities, err := loadConfigFromURL(ctx, client, url, authUser, authPass, maxRetries)
	if err != nil {
		err := fmt.Errorf("failed to load config from URL %s: %w", url, err)
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("config_url", url),
			Level: sentry.LevelError,
		})
		return nil, err
	}
	return cities, nil
}
