package scheduler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jekjektuanakal/CityWeather/internal/weather"
)

type stubFetcher struct {
	mu     sync.Mutex
	errs   map[string]error
	called []string
}

func (f *stubFetcher) GetWeather(ctx context.Context, city string) (weather.Weather, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.called = append(f.called, city)
	if err := f.errs[city]; err != nil {
		return weather.Weather{}, err
	}
	return weather.Weather{Location: city}, nil
}

func TestProbeStatus(t *testing.T) {
	unavailable := fmt.Errorf("%w: status 500", weather.ErrUnavailable)
	notFound := fmt.Errorf("%w: city not found", weather.ErrInvalidInput)

	cases := []struct {
		name    string
		errs    map[string]error
		state   string
		lastErr bool
	}{
		{"all up", nil, "up", false},
		{"partial", map[string]error{"Sydney": unavailable}, "up", true},
		{"all down", map[string]error{"Sydney": unavailable, "Jakarta": unavailable}, "down", true},
		{"unknown city still answers", map[string]error{"Sydney": notFound, "Jakarta": notFound}, "up", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &stubFetcher{errs: tc.errs}
			s := New([]string{"Sydney", "Jakarta"}, time.Minute, f)

			if got := s.Status().State; got != "unknown" {
				t.Fatalf("expected unknown state before first probe, got %s", got)
			}

			s.Probe()

			st := s.Status()
			if st.State != tc.state {
				t.Fatalf("expected state %s, got %s", tc.state, st.State)
			}
			if (st.LastError != "") != tc.lastErr {
				t.Fatalf("unexpected last error %q", st.LastError)
			}
			if st.CheckedAt.IsZero() {
				t.Fatalf("expected CheckedAt to be set")
			}
			if len(f.called) != 2 {
				t.Fatalf("expected 2 probe calls, got %d", len(f.called))
			}
		})
	}
}

func TestStartDisabled(t *testing.T) {
	f := &stubFetcher{}

	if !New([]string{"Sydney"}, time.Minute, f).Enabled() {
		t.Fatalf("expected scheduler with cities and interval to be enabled")
	}

	for _, s := range []*Scheduler{
		New(nil, time.Minute, f),
		New([]string{"Sydney"}, 0, f),
	} {
		if s.Enabled() {
			t.Fatalf("expected scheduler to be disabled")
		}
		if err := s.Start(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s.Stop()
	}

	if len(f.called) != 0 {
		t.Fatalf("disabled probe must not fetch, got %v", f.called)
	}
}
