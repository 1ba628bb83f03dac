package httpapi

import (
	_ "embed"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jekjektuanakal/CityWeather/internal/scheduler"
	"github.com/jekjektuanakal/CityWeather/internal/store"
	"github.com/jekjektuanakal/CityWeather/internal/weather"
)

const (
	msgInvalidCountry     = "Invalid country code"
	msgCountryUnavailable = "Country service is unavailable"
	msgInvalidCity        = "Invalid city name"
	msgWeatherUnavailable = "Weather service is unavailable"
)

var validate = validator.New()

//go:embed static/index.html
var indexHTML []byte

// CountryCatalog is the read-only country/city lookup.
type CountryCatalog interface {
	Countries() []store.Country
	Cities(countryCode string) ([]store.City, error)
}

// StatusReporter exposes the last provider probe result.
type StatusReporter interface {
	Status() scheduler.ProviderStatus
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
// probe may be nil when the provider probe is disabled.
func RegisterRoutes(app *fiber.App, catalog CountryCatalog, service *weather.Service, probe StatusReporter) {
	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.Send(indexHTML)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		body := fiber.Map{
			"status":  "ok",
			"service": "cityweather",
		}
		if probe != nil {
			st := probe.Status()
			if st.State == "down" {
				body["status"] = "degraded"
			}
			body["provider"] = st
		}
		return c.JSON(body)
	})

	app.Get("/countries", func(c *fiber.Ctx) error {
		if catalog == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, msgCountryUnavailable)
		}
		return c.JSON(catalog.Countries())
	})

	app.Get("/countries/:code/cities", func(c *fiber.Ctx) error {
		if catalog == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, msgCountryUnavailable)
		}

		q := countryParams{Code: c.Params("code")}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, msgInvalidCountry)
		}

		cities, err := catalog.Cities(q.Code)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, msgInvalidCountry)
			}
			return fiber.NewError(fiber.StatusServiceUnavailable, msgCountryUnavailable)
		}

		return c.JSON(cities)
	})

	app.Get("/weather/:city", func(c *fiber.Ctx) error {
		q := cityParams{City: c.Params("city")}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, msgInvalidCity)
		}

		w, err := service.GetWeather(c.UserContext(), q.City)
		if err != nil {
			if errors.Is(err, weather.ErrInvalidInput) {
				return fiber.NewError(fiber.StatusBadRequest, msgInvalidCity)
			}
			return fiber.NewError(fiber.StatusServiceUnavailable, msgWeatherUnavailable)
		}

		return c.JSON(w)
	})
}

// countryParams holds the path parameters of the cities endpoint.
type countryParams struct {
	Code string `validate:"required,alpha"`
}

// cityParams holds the path parameters of the weather endpoint.
type cityParams struct {
	City string `validate:"required,max=128"`
}
