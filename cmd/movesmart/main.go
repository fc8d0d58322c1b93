package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/app"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/config"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
	"github.com/charleschyna/movesmart-ke-system-sub001/internal/report"
)

const version = "1.0.0"

// configRefreshMaxRetries bounds the backoff loop when pulling remote config.
const configRefreshMaxRetries = 5

func main() {
	var (
		port = flag.Int("port", 4000, "API server port")
		env  = flag.String("env", "development", "Environment (development|staging|production)")

		configFile = flag.String("config-file", "", "Path to a local JSON city configuration file")
		configURL  = flag.String("config-url", "", "URL to a remote JSON city configuration file")
	)

	flag.Parse()

	if err := config.ValidateConfigFlags(configFile, configURL); err != nil {
		fmt.Println("Error:", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, relying on environment variables")
	}

	configAuthUser := os.Getenv("CONFIG_AUTH_USER")
	configAuthPass := os.Getenv("CONFIG_AUTH_PASS")
	apiKey := os.Getenv("TOMTOM_API_KEY")

	report.SetupSentry()
	defer report.FlushSentry()
	report.ConfigureScope(*env, version)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	client := app.NewPooledClient()
	ctx := context.Background()

	var (
		cities []models.CityConfig
		err    error
	)
	switch {
	case *configFile != "":
		cities, err = config.LoadConfigFromFile(*configFile)
	case *configURL != "":
		cities, err = config.LoadConfigFromURL(ctx, client, *configURL, configAuthUser, configAuthPass, configRefreshMaxRetries)
	default:
		cities = config.DefaultCities()
		logger.Info("No configuration provided, monitoring the default Kenyan cities")
	}

	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if len(cities) == 0 {
		fmt.Println("Error: No cities found in configuration.")
		os.Exit(1)
	}

	if apiKey == "" {
		logger.Warn("TOMTOM_API_KEY not set, serving simulated traffic data")
	}

	cfg := config.NewConfig(*port, *env, apiKey, cities)

	application := app.New(cfg, logger, client, version)

	application.StartMetricsCollection(ctx)

	// Remote configs are re-pulled every minute so city geometry can change
	// without a redeploy.
	if *configURL != "" {
		go application.ConfigService.RefreshConfig(ctx, *configURL, configAuthUser, configAuthPass, time.Minute, configRefreshMaxRetries)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      application.Routes(ctx),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env, "cities", len(cities))
	err = srv.ListenAndServe()
	report.ReportError(err, sentry.LevelFatal)
	report.FlushSentry()
	logger.Error(err.Error())
	os.Exit(1)
}
