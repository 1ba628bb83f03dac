package scheduler

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/jekjektuanakal/CityWeather/internal/weather"
)

const probeTimeout = 30 * time.Second

// Fetcher is the part of weather.Service the probe needs.
type Fetcher interface {
	GetWeather(ctx context.Context, city string) (weather.Weather, error)
}

// ProviderStatus is the outcome of the most recent probe run.
type ProviderStatus struct {
	State     string    `json:"state"` // "unknown", "up" or "down"
	CheckedAt time.Time `json:"checkedAt"`
	LastError string    `json:"lastError,omitempty"`
}

// Scheduler periodically fetches the weather for a few cities to track
// whether the provider is reachable. Fetched weather is discarded.
type Scheduler struct {
	scheduler *gocron.Scheduler
	fetcher   Fetcher
	cities    []string
	interval  time.Duration

	mu     sync.RWMutex
	status ProviderStatus
}

// New creates a new Scheduler.
func New(cities []string, interval time.Duration, fetcher Fetcher) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		fetcher:   fetcher,
		cities:    cities,
		interval:  interval,
		status:    ProviderStatus{State: "unknown"},
	}
}

// Enabled reports whether Start will schedule anything.
func (s *Scheduler) Enabled() bool {
	return len(s.cities) > 0 && s.interval > 0
}

// Start schedules the periodic probe and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if !s.Enabled() {
		log.Println("INFO: scheduler: provider probe disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(s.Probe)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Probe fetches every configured city concurrently and records the result.
// The provider is "up" when it answered for at least one city; a city it does
// not know still counts as an answer.
func (s *Scheduler) Probe() {
	log.Println("DEBUG: scheduler: running provider probe")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		lastErr error
		ok      int
	)
	for _, city := range s.cities {
		city := city
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
			defer cancel()

			_, err := s.fetcher.GetWeather(ctx, city)

			mu.Lock()
			defer mu.Unlock()
			if err != nil && !errors.Is(err, weather.ErrInvalidInput) {
				log.Printf("WARN: scheduler: probe failed for %s: %v", city, err)
				lastErr = err
				return
			}
			ok++
		}()
	}
	wg.Wait()

	status := ProviderStatus{State: "up", CheckedAt: time.Now().UTC()}
	if ok == 0 {
		status.State = "down"
	}
	if lastErr != nil {
		status.LastError = lastErr.Error()
	}

	s.mu.Lock()
	s.status = status
	s.mu.Unlock()

	log.Printf("DEBUG: scheduler: provider probe finished, state=%s", status.State)
}

// Status returns the most recent probe outcome.
func (s *Scheduler) Status() ProviderStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
