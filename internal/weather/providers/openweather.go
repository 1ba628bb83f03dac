package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jekjektuanakal/CityWeather/internal/weather"
	"github.com/sony/gobreaker"
)

// DefaultOpenWeatherURL is the OpenWeatherMap current weather endpoint.
const DefaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
// It keeps no per-request state and may be shared between goroutines.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, baseURL, apiKey string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherURL
	}
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
		circuit: newCircuitBreaker("openweather"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// Fetch calls the provider once and classifies the outcome:
// 200 is mapped to a Weather, 404 is ErrInvalidInput, everything else
// (bad credentials, unexpected status, transport failure) is ErrUnavailable.
func (p *OpenWeatherProvider) Fetch(ctx context.Context, city string) (weather.Weather, error) {
	if p.apiKey == "" {
		return weather.Weather{}, fmt.Errorf("%w: openweather api key is not configured", weather.ErrUnavailable)
	}

	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("q", city)
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return weather.Weather{}, fmt.Errorf("%w: %v", weather.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return weather.Weather{}, fmt.Errorf("%w: city %q not found", weather.ErrInvalidInput, city)
	case http.StatusUnauthorized, http.StatusForbidden:
		return weather.Weather{}, fmt.Errorf("%w: invalid api key (status %d)", weather.ErrUnavailable, resp.StatusCode)
	default:
		return weather.Weather{}, fmt.Errorf("%w: unexpected status code %d", weather.ErrUnavailable, resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Weather{}, fmt.Errorf("%w: decode response: %v", weather.ErrContractViolation, err)
	}

	return mapToWeather(payload)
}
