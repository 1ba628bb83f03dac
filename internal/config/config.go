package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/jekjektuanakal/CityWeather/internal/common"
	"github.com/jekjektuanakal/CityWeather/internal/weather/providers"
)

type AppConfig struct {
	// OpenWeatherAPIKey is the provider credential; requests fail as unavailable without it.
	OpenWeatherAPIKey string
	OpenWeatherURL    string

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	// CatalogFile optionally replaces the embedded country/city dataset.
	CatalogFile string

	// ProbeInterval controls how often the provider is probed (0 = disabled).
	ProbeInterval time.Duration
	ProbeCities   []string

	CORSAllowOrigins string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	if cfg.OpenWeatherAPIKey == "" {
		log.Printf("WARN: OPENWEATHER_API_KEY is not set; weather requests will fail")
	}
	cfg.OpenWeatherURL = getenvDefault("OPENWEATHER_BASE_URL", providers.DefaultOpenWeatherURL)

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: must be positive, got %s", timeout)
	}
	cfg.HTTPTimeout = timeout

	cfg.CatalogFile = os.Getenv("CATALOG_FILE")

	// Probe interval: default 15 minutes.
	interval, err := time.ParseDuration(getenvDefault("PROBE_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROBE_INTERVAL: %w", err)
	}
	if interval < 0 {
		return nil, fmt.Errorf("invalid PROBE_INTERVAL: must not be negative, got %s", interval)
	}
	cfg.ProbeInterval = interval
	cfg.ProbeCities = common.SplitList(getenvDefault("PROBE_CITIES", "Singapore"))

	cfg.CORSAllowOrigins = getenvDefault("CORS_ALLOW_ORIGINS", "*")

	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d", port)
	}
	cfg.Port = strconv.Itoa(port)

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
