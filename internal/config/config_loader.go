package config

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/report"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/utils"
)

// ValidateConfigFlags ensures that at most one configuration source is
// specified: either a config file "--config-file" or a remote config URL
// "--config-url". Supplying neither is allowed; the built-in city defaults
// are used in that case.
func ValidateConfigFlags(configFile, configURL *string) error {
	if (*configFile != "" && *configURL != "") || (*configFile != "" && len(flag.Args()) > 0) || (*configURL != "" && len(flag.Args()) > 0) {
		return fmt.Errorf("only one of --config-file or --config-url can be specified")
	}
	return nil
}

// DoWithBackoff executes the request, retrying transient failures with
// exponential backoff and jitter up to maxRetries times. A non-nil response
// with any status code counts as success; retrying on status codes is the
// caller's concern.
func DoWithBackoff(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	delay := BASE_BACKOFF
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		resp, err := client.Do(req.WithContext(ctx))
		if err == nil {
			return resp, nil
		}
		lastErr = err

		delay = calculateNewBackoffDelay(delay)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// refreshConfig periodically fetches city configuration from a remote URL and
// replaces the application's city list.
//
// Errors during fetch or parse are logged and reported to Sentry, but the loop
// continues, ensuring resiliency in the presence of transient issues.
//
// The routine stops gracefully when the context is canceled.
func refreshConfig(ctx context.Context, client *http.Client, configURL, configAuthUser, configAuthPass string, cfg *Config, logger *slog.Logger, interval time.Duration, maxRetries int) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping config refresh routine")
			return
		default:
			newCities, err := loadConfigFromURL(ctx, client, configURL, configAuthUser, configAuthPass, maxRetries)
			if err != nil {
				report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
					Tags:  utils.MakeMap("config_url", configURL),
					Level: sentry.LevelError,
				})
				logger.Error("Failed to refresh remote config", "error", err)
			} else {
				cfg.UpdateCities(newCities)
				logger.Info("Successfully refreshed city configuration")
			}
			time.Sleep(interval)
		}
	}
}

// loadConfigFromFile reads a JSON configuration file from disk and unmarshals
// it into a list of city configurations.
//
// This function is used when the application is configured to load its city
// list from a static file using the --config-file flag.
func loadConfigFromFile(filePath string) ([]models.CityConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("file_path", filePath),
			Level: sentry.LevelError,
		})
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cities []models.CityConfig
	if err := json.Unmarshal(data, &cities); err != nil {
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("file_path", filePath),
			Level: sentry.LevelError,
		})
		return nil, fmt.Errorf("failed to unmarshal JSON: %v", err)
	}

	return cities, nil
}

// loadConfigFromURL fetches a JSON configuration from a remote HTTP(S)
// endpoint, using the provided client and optional basic authentication.
func loadConfigFromURL(ctx context.Context, client *http.Client, url, authUser, authPass string, maxRetries int) ([]models.CityConfig, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("config_url", url),
			Level: sentry.LevelError,
		})
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	if authUser != "" && authPass != "" {
		req.SetBasicAuth(authUser, authPass)
	}

	resp, err := DoWithBackoff(ctx, client, req, maxRetries)
	if err != nil {
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("config_url", url),
			Level: sentry.LevelError,
		})
		return nil, fmt.Errorf("failed to fetch remote config: %v", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("remote config returned status: %d", resp.StatusCode)
		report.ReportErrorWithSentryOptions(statusErr, report.SentryReportOptions{
			Tags:  utils.MakeMap("config_url", url),
			Level: sentry.LevelError,
		})
		return nil, statusErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("config_url", url),
			Level: sentry.LevelError,
		})
		return nil, fmt.Errorf("failed to read remote config: %v", err)
	}

	var cities []models.CityConfig
	if err := json.Unmarshal(data, &cities); err != nil {
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("config_url", url),
			Level: sentry.LevelError,
		})
		return nil, fmt.Errorf("failed to unmarshal JSON: %v", err)
	}

	return cities, nil
}
