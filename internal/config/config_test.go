package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/jekjektuanakal/CityWeather/internal/weather/providers"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENWEATHER_API_KEY", "OPENWEATHER_BASE_URL", "HTTP_TIMEOUT", "CATALOG_FILE",
		"PROBE_INTERVAL", "PROBE_CITIES", "CORS_ALLOW_ORIGINS", "PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OpenWeatherURL != providers.DefaultOpenWeatherURL {
		t.Errorf("unexpected base url %q", cfg.OpenWeatherURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.ProbeInterval != 15*time.Minute {
		t.Errorf("expected 15m probe interval, got %s", cfg.ProbeInterval)
	}
	if !reflect.DeepEqual(cfg.ProbeCities, []string{"Singapore"}) {
		t.Errorf("unexpected probe cities %v", cfg.ProbeCities)
	}
	if cfg.Port != "8080" || cfg.CORSAllowOrigins != "*" {
		t.Errorf("unexpected port/cors %q/%q", cfg.Port, cfg.CORSAllowOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENWEATHER_API_KEY", "secret")
	t.Setenv("OPENWEATHER_BASE_URL", "http://localhost:9999/weather")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("CATALOG_FILE", "/etc/cityweather/catalog.json")
	t.Setenv("PROBE_INTERVAL", "0")
	t.Setenv("PROBE_CITIES", "Sydney, Jakarta")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OpenWeatherAPIKey != "secret" || cfg.OpenWeatherURL != "http://localhost:9999/weather" {
		t.Errorf("unexpected provider config %+v", cfg)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.CatalogFile != "/etc/cityweather/catalog.json" {
		t.Errorf("unexpected catalog file %q", cfg.CatalogFile)
	}
	if cfg.ProbeInterval != 0 {
		t.Errorf("expected probe disabled, got %s", cfg.ProbeInterval)
	}
	if !reflect.DeepEqual(cfg.ProbeCities, []string{"Sydney", "Jakarta"}) {
		t.Errorf("unexpected probe cities %v", cfg.ProbeCities)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{"HTTP_TIMEOUT", "soon"},
		{"PROBE_INTERVAL", "-1m"},
		{"PORT", "70000"},
		{"PORT", "http"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}
