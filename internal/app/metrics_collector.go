package app

import (
	"context"
	"time"
)

const collectionInterval = 30 * time.Second

// StartMetricsCollection starts a loop that refreshes the Prometheus gauges
// for every configured city. Collection runs immediately and then on a fixed
// interval until the context is cancelled.
//
// Cities whose provider calls keep failing are put on an exponential backoff
// through the BackoffStore so a broken upstream does not burn the request
// budget for everyone else. A city is skipped while its retry time is in the
// future, penalized when its summary falls back to simulated data, and reset
// as soon as a live summary comes back.
func (app *Application) StartMetricsCollection(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(collectionInterval)
		defer ticker.Stop()

		app.collectAllCities(ctx)
		for {
			select {
			case <-ctx.Done():
				app.Logger.Info("Stopping metrics collection")
				return
			case <-ticker.C:
				app.collectAllCities(ctx)
			}
		}
	}()
}

func (app *Application) collectAllCities(ctx context.Context) {
	for _, city := range app.ConfigService.Config.GetCities() {
		if retryAt, ok := app.BackoffStore.NextRetryAt(city.ID); ok && time.Now().Before(retryAt) {
			app.Logger.Debug("Skipping city collection due to backoff", "city_id", city.ID, "retry_at", retryAt)
			continue
		}
		app.collectCity(ctx, city.ID)
	}
}

func (app *Application) collectCity(ctx context.Context, cityID string) {
	for _, m := range app.TrafficService.GetCityMetrics(ctx, cityID) {
		app.MetricsService.RecordRoadMetrics(m)
	}

	summary := app.TrafficService.GetCitySummary(ctx, cityID)
	app.MetricsService.RecordCitySummary(summary)

	// Simulated summaries with a key configured mean the provider is down.
	if !summary.IsLive && app.ConfigService.Config.HasProviderKey() {
		app.BackoffStore.UpdateBackoff(cityID)
		app.Logger.Warn("City summary fell back to simulated data", "city_id", cityID)
		return
	}
	app.BackoffStore.ResetBackoff(cityID)
}
