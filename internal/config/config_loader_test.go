package config

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/models"
)

func TestLoadConfigFromFile(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		content := `[{
		"id": "nairobi",
		"name": "Nairobi",
		"center": {"lat": -1.286389, "lng": 36.817223},
		"roads": [
			{"name": "Uhuru Highway", "center": {"lat": -1.2921, "lng": 36.8219}}
		]
		}]`
		tmpFile, err := os.CreateTemp("", "config-*.json")
		if err != nil {
			t.Fatalf("Failed to create temporary file: %v", err)
		}
		defer os.Remove(tmpFile.Name())

		if _, err := tmpFile.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write to temporary file: %v", err)
		}
		tmpFile.Close()

		cities, err := loadConfigFromFile(tmpFile.Name())
		if err != nil {
			t.Fatalf("loadConfigFromFile failed: %v", err)
		}

		if len(cities) != 1 {
			t.Fatalf("Expected 1 city, got %d", len(cities))
		}

		city := cities[0]
		if city.ID != "nairobi" || city.Name != "Nairobi" {
			t.Errorf("Unexpected city identity: %+v", city)
		}
		if city.Center != (models.LatLng{Lat: -1.286389, Lng: 36.817223}) {
			t.Errorf("Unexpected city center: %+v", city.Center)
		}
		if len(city.Roads) != 1 || city.Roads[0].Name != "Uhuru Highway" {
			t.Errorf("Unexpected roads: %+v", city.Roads)
		}
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		content := `{ this is not valid JSON }`
		tmpFile, err := os.CreateTemp("", "invalid-config-*.json")
		if err != nil {
			t.Fatalf("Failed to create temporary file: %v", err)
		}
		defer os.Remove(tmpFile.Name())

		if _, err := tmpFile.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write to temporary file: %v", err)
		}
		tmpFile.Close()

		_, err = loadConfigFromFile(tmpFile.Name())
		if err == nil {
			t.Errorf("Expected error with invalid JSON, got none")
		}
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		_, err := loadConfigFromFile("non-existent-file.json")
		if err == nil {
			t.Errorf("Expected error for non-existent file, got none")
		}
	})
}

func TestLoadConfigFromURL(t *testing.T) {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	ctx := context.Background()

	t.Run("ValidResponse", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{
			 "id": "mombasa",
			 "name": "Mombasa",
			 "center": {"lat": -4.0435, "lng": 39.6682},
			 "roads": [{"name": "Moi Avenue", "center": {"lat": -4.0619, "lng": 39.6714}}]
			}]`))
		}))
		defer ts.Close()

		cities, err := loadConfigFromURL(ctx, client, ts.URL, "user", "pass", 1)
		if err != nil {
			t.Fatalf("loadConfigFromURL failed: %v", err)
		}

		if len(cities) != 1 {
			t.Fatalf("Expected 1 city, got %d", len(cities))
		}
		if cities[0].ID != "mombasa" || len(cities[0].Roads) != 1 {
			t.Errorf("Unexpected city: %+v", cities[0])
		}
	})

	t.Run("ErrorResponse", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		_, err := loadConfigFromURL(ctx, client, ts.URL, "", "", 1)
		if err == nil {
			t.Errorf("Expected error with 500 response, got none")
		}
	})

	t.Run("InvalidJSONResponse", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{ this is not valid JSON }`))
		}))
		defer ts.Close()

		_, err := loadConfigFromURL(ctx, client, ts.URL, "", "", 1)
		if err == nil {
			t.Errorf("Expected error for invalid JSON response, got none")
		}
	})

	t.Run("InvalidURL", func(t *testing.T) {
		_, err := loadConfigFromURL(ctx, client, "://invalid-url", "", "", 1)
		if err == nil || !strings.Contains(err.Error(), "failed to create request") {
			t.Errorf("Expected request creation error, got: %v", err)
		}
	})
}

func TestValidateConfigFlags(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		configURL   string
		extraArgs   []string
		expectError bool
	}{
		// Neither flag means the built-in city defaults are used.
		{"No config", "", "", nil, false},
		{"Valid local config", "config.json", "", nil, false},
		{"Valid remote config", "", "http://example.com/config.json", nil, false},
		{"Both config file and URL", "config.json", "http://example.com/config.json", nil, true},
		{"Config file with extra args", "config.json", "", []string{"extraArg"}, true},
		{"Config URL with extra args", "", "http://example.com/config.json", []string{"extraArg"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(tt.name, flag.ContinueOnError)
			var output bytes.Buffer
			flag.CommandLine.SetOutput(&output)

			configFile := flag.String("config-file", "", "Path to config file")
			configURL := flag.String("config-url", "", "URL to config")

			args := []string{"cmd"}
			if tt.configFile != "" {
				args = append(args, "--config-file="+tt.configFile)
			}
			if tt.configURL != "" {
				args = append(args, "--config-url="+tt.configURL)
			}
			args = append(args, tt.extraArgs...)

			os.Args = args
			flag.CommandLine.Parse(args[1:])

			err := ValidateConfigFlags(configFile, configURL)

			if (err != nil) != tt.expectError {
				t.Errorf("Expected error: %v, got: %v", tt.expectError, err)
			}

			if err != nil && !strings.Contains(err.Error(), "only one of --config-file or --config-url") {
				t.Errorf("Unexpected error message: %v", err)
			}
		})
	}
}

func TestRefreshConfig(t *testing.T) {
	cfg := NewConfig(4000, "testing", "", []models.CityConfig{
		{ID: "nairobi", Name: "Nairobi"},
	})

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var serverHitCount int
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverHitCount++

		user, pass, hasAuth := r.BasicAuth()
		if hasAuth && (user != "testuser" || pass != "testpass") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `[
				{
						"id": "kisumu",
						"name": "Refreshed Kisumu",
						"center": {"lat": -0.0917, "lng": 34.768},
						"roads": []
				}
		]`)
	}))
	defer mockServer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go refreshConfig(ctx, client, mockServer.URL, "testuser", "testpass", cfg, testLogger, 100*time.Millisecond, 1)

	time.Sleep(200 * time.Millisecond)

	if serverHitCount == 0 {
		t.Fatal("Mock server was never called")
	}

	updatedCities := cfg.GetCities()

	if len(updatedCities) == 0 {
		t.Fatal("No cities found in updated configuration")
	}

	var found bool
	for _, c := range updatedCities {
		if c.ID == "kisumu" && c.Name == "Refreshed Kisumu" {
			found = true
			break
		}
	}

	if !found {
		t.Errorf("Config not updated with refreshed city data. Updated: %+v", updatedCities)
	}
}
