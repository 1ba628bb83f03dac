package weather

import (
	"time"
)

// Wind describes wind speed (m/s) and direction (degrees, 0-360).
type Wind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

// Weather is the current weather for a city, built fresh per request.
type Weather struct {
	Location              string    `json:"location"`
	Time                  time.Time `json:"time"` // always UTC
	Wind                  Wind      `json:"wind"`
	Visibility            float64   `json:"visibility"` // meters
	SkyConditions         string    `json:"skyConditions"`
	TemperatureCelsius    float64   `json:"temperatureCelsius"`
	TemperatureFahrenheit float64   `json:"temperatureFahrenheit"`
	DewPointCelsius       float64   `json:"dewPointCelsius"`
	DewPointFahrenheit    float64   `json:"dewPointFahrenheit"`
	RelativeHumidity      float64   `json:"relativeHumidity"` // percent
	Pressure              float64   `json:"pressure"`         // hPa
}
