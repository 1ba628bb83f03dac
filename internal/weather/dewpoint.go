package weather

import "math"

// Magnus coefficients (Alduchov & Eskridge).
const (
	magnusB = 17.625
	magnusC = 243.04
)

// DewPointCelsius approximates the dew point with the Magnus formula.
// relativeHumidity is a percentage and must be in (0,100] for a finite result.
func DewPointCelsius(temperatureC, relativeHumidity float64) float64 {
	gamma := math.Log(relativeHumidity/100) + magnusB*temperatureC/(magnusC+temperatureC)
	return magnusC * gamma / (magnusB - gamma)
}

// CelsiusToFahrenheit converts a temperature from °C to °F.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}
