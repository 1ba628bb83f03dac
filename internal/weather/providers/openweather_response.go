package providers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jekjektuanakal/CityWeather/internal/weather"
)

// openWeatherResponse is the subset of the OpenWeatherMap payload we consume.
// Unknown fields are ignored; main and a non-blank first weather description
// are required.
type openWeatherResponse struct {
	Name       string           `json:"name"`
	Dt         int64            `json:"dt"`
	Wind       openWeatherWind  `json:"wind"`
	Visibility float64          `json:"visibility"`
	Weather    []openWeatherSky `json:"weather"`
	Main       *openWeatherMain `json:"main"`
}

type openWeatherWind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

type openWeatherSky struct {
	Description string `json:"description"`
}

type openWeatherMain struct {
	Temp     float64 `json:"temp"`
	Pressure float64 `json:"pressure"`
	Humidity float64 `json:"humidity"`
}

// mapToWeather converts a decoded payload into the domain model, deriving
// Fahrenheit values and the dew point.
func mapToWeather(r openWeatherResponse) (weather.Weather, error) {
	if len(r.Weather) == 0 {
		return weather.Weather{}, fmt.Errorf("%w: weather description array is empty", weather.ErrContractViolation)
	}
	if strings.TrimSpace(r.Weather[0].Description) == "" {
		return weather.Weather{}, fmt.Errorf("%w: weather description is blank", weather.ErrContractViolation)
	}
	if r.Main == nil {
		return weather.Weather{}, fmt.Errorf("%w: main section is missing", weather.ErrContractViolation)
	}
	// ln(h/100) is undefined for h <= 0.
	h := r.Main.Humidity
	if math.IsNaN(h) || h <= 0 || h > 100 {
		return weather.Weather{}, fmt.Errorf("%w: relative humidity %v outside (0,100]", weather.ErrContractViolation, h)
	}

	dewPoint := weather.DewPointCelsius(r.Main.Temp, h)

	return weather.Weather{
		Location: r.Name,
		Time:     time.Unix(r.Dt, 0).UTC(),
		Wind: weather.Wind{
			Speed: r.Wind.Speed,
			Deg:   r.Wind.Deg,
		},
		Visibility:            r.Visibility,
		SkyConditions:         r.Weather[0].Description,
		TemperatureCelsius:    r.Main.Temp,
		TemperatureFahrenheit: weather.CelsiusToFahrenheit(r.Main.Temp),
		DewPointCelsius:       dewPoint,
		DewPointFahrenheit:    weather.CelsiusToFahrenheit(dewPoint),
		RelativeHumidity:      h,
		Pressure:              r.Main.Pressure,
	}, nil
}
