package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Service answers current-weather queries through a single provider.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	provider Provider
	timeout  time.Duration
}

// NewService creates a new Service. A non-positive timeout falls back to 10s.
func NewService(provider Provider, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{
		provider: provider,
		timeout:  timeout,
	}
}

// GetWeather fetches the current weather for city. A blank name is rejected
// without calling the provider.
func (s *Service) GetWeather(ctx context.Context, city string) (Weather, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return Weather{}, fmt.Errorf("%w: city name is required", ErrInvalidInput)
	}
	if s.provider == nil {
		log.Printf("ERROR: no weather provider configured")
		return Weather{}, fmt.Errorf("%w: no provider configured", ErrUnavailable)
	}

	// Use a bounded context for the outbound provider call.
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	w, err := s.provider.Fetch(ctx, city)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			log.Printf("INFO: provider %s does not know city %q", s.provider.Name(), city)
		case errors.Is(err, ErrContractViolation):
			log.Printf("ERROR: provider %s returned an invalid payload for %q: %v", s.provider.Name(), city, err)
		default:
			log.Printf("WARN: provider %s fetch failed for %q: %v", s.provider.Name(), city, err)
		}
		return Weather{}, err
	}

	return w, nil
}

// ProviderName reports which provider backs the service.
func (s *Service) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}
