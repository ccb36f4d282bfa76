package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"clim8bit/weather-service/internal/presentation"
	"clim8bit/weather-service/internal/providers"
	"clim8bit/weather-service/internal/weather"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type CitySource interface {
	Cities(ctx context.Context) ([]string, error)
}

type TrackedSnapshot struct {
	City        string          `json:"city"`
	Current     weather.Current `json:"current"`
	Placeholder bool            `json:"placeholder"`
	Error       string          `json:"error,omitempty"`
	RefreshedAt time.Time       `json:"refreshed_at"`
}

type TrackedCitiesRefresher interface {
	Start() error
	Stop()
	Refresh(ctx context.Context) []TrackedSnapshot
	Snapshots() []TrackedSnapshot
}

type trackedCitiesRefresher struct {
	provider  providers.OpenWeatherService
	source    CitySource
	cities    []string
	interval  time.Duration
	timeout   time.Duration
	scheduler *gocron.Scheduler

	mu        sync.RWMutex
	snapshots []TrackedSnapshot
}

// NewTrackedCitiesRefresher refreshes the configured cities plus every city a user has
// favorited. source may be nil.
func NewTrackedCitiesRefresher(
	provider providers.OpenWeatherService,
	source CitySource,
	cities []string,
	interval time.Duration,
	perCallTimeout time.Duration,
) TrackedCitiesRefresher {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if perCallTimeout <= 0 {
		perCallTimeout = 5 * time.Second
	}

	return &trackedCitiesRefresher{
		provider:  provider,
		source:    source,
		cities:    cities,
		interval:  interval,
		timeout:   perCallTimeout,
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

func (r *trackedCitiesRefresher) Start() error {
	_, err := r.scheduler.Every(r.interval).Do(func() {
		r.Refresh(context.Background())
	})
	if err != nil {
		return err
	}

	r.scheduler.StartAsync()
	log.Info().Dur("interval", r.interval).Msg("tracked cities refresher started")
	return nil
}

func (r *trackedCitiesRefresher) Stop() {
	r.scheduler.Stop()
}

// Refresh fetches every tracked city concurrently. A city that fails or exceeds the
// per-call timeout gets a placeholder so one slow lookup never holds up the batch.
func (r *trackedCitiesRefresher) Refresh(ctx context.Context) []TrackedSnapshot {
	cities := r.trackedCities(ctx)
	results := make([]TrackedSnapshot, len(cities))

	var g errgroup.Group
	for i, city := range cities {
		i, city := i, city
		g.Go(func() error {
			results[i] = r.fetch(ctx, city)
			return nil
		})
	}
	_ = g.Wait()

	r.mu.Lock()
	r.snapshots = results
	r.mu.Unlock()

	log.Debug().Int("cities", len(results)).Msg("tracked cities refreshed")
	return results
}

func (r *trackedCitiesRefresher) Snapshots() []TrackedSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]TrackedSnapshot, len(r.snapshots))
	copy(out, r.snapshots)
	return out
}

func (r *trackedCitiesRefresher) fetch(ctx context.Context, city string) TrackedSnapshot {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type outcome struct {
		current weather.Current
		err     error
	}
	done := make(chan outcome, 1)

	go func() {
		current, err := r.provider.FetchCurrent(ctx, weather.CityQuery(city))
		done <- outcome{current, err}
	}()

	var res outcome
	select {
	case res = <-done:
	case <-ctx.Done():
		res.err = &weather.TimeoutError{Err: ctx.Err()}
	}

	if res.err != nil {
		log.Warn().Err(res.err).Str("city", city).Msg("tracked city refresh failed, using placeholder")
		return TrackedSnapshot{
			City:        city,
			Current:     placeholder(city),
			Placeholder: true,
			Error:       presentation.Tagged(presentation.CategoryOf(res.err), res.err.Error()),
			RefreshedAt: time.Now(),
		}
	}

	return TrackedSnapshot{City: city, Current: res.current, RefreshedAt: time.Now()}
}

func (r *trackedCitiesRefresher) trackedCities(ctx context.Context) []string {
	all := append([]string{}, r.cities...)

	if r.source != nil {
		favorites, err := r.source.Cities(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("failed to load favorite cities")
		} else {
			sort.Strings(favorites)
			all = append(all, favorites...)
		}
	}

	seen := make(map[string]struct{}, len(all))
	out := make([]string, 0, len(all))
	for _, city := range all {
		city = strings.TrimSpace(city)
		key := strings.ToLower(city)
		if city == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, city)
	}
	return out
}

func placeholder(city string) weather.Current {
	return weather.Current{
		City:        city,
		Main:        "Clear",
		Description: "data unavailable",
		Category:    weather.CategoryClearDay,
	}
}
