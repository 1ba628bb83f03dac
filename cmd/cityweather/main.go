package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	httpapi "github.com/jekjektuanakal/CityWeather/internal/api/http"
	"github.com/jekjektuanakal/CityWeather/internal/config"
	"github.com/jekjektuanakal/CityWeather/internal/scheduler"
	"github.com/jekjektuanakal/CityWeather/internal/store"
	"github.com/jekjektuanakal/CityWeather/internal/weather"
	"github.com/jekjektuanakal/CityWeather/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Reference data is loaded once; an empty or invalid catalog stops startup.
	catalog, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("failed to load country catalog: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherURL, cfg.OpenWeatherAPIKey)
	service := weather.NewService(provider, cfg.HTTPTimeout)

	// Periodic provider probe feeding /health.
	sched := scheduler.New(cfg.ProbeCities, cfg.ProbeInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := httpapi.NewApp()

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: fiber.MethodGet,
	}))

	// /health only reports the provider when the probe runs.
	var probe httpapi.StatusReporter
	if sched.Enabled() {
		probe = sched
	}
	httpapi.RegisterRoutes(app, catalog, service, probe)

	go func() {
		log.Printf("INFO: server starting on :%s (provider %s)", cfg.Port, service.ProviderName())
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

func loadCatalog(path string) (*store.Catalog, error) {
	if path == "" {
		return store.DefaultCatalog()
	}
	log.Printf("INFO: loading country catalog from %s", path)
	return store.LoadCatalog(path)
}
