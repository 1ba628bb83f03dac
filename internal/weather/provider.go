package weather

import (
	"context"
)

// Provider abstracts the remote weather data source.
type Provider interface {
	Name() string
	// Fetch returns the current weather for a city. Errors wrap ErrInvalidInput
	// or ErrUnavailable.
	Fetch(ctx context.Context, city string) (Weather, error)
}
