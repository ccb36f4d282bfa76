package handlers

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"clim8bit/weather-service/internal/presentation"
	"clim8bit/weather-service/internal/service"
	"clim8bit/weather-service/internal/weather"

	"github.com/rs/zerolog/log"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	tracked        service.TrackedCitiesRefresher
	timeout        time.Duration
}

func NewWeatherHandler(weatherService service.WeatherService, tracked service.TrackedCitiesRefresher, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		tracked:        tracked,
		timeout:        timeout,
	}
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	query, err := parseQuery(r)
	if err != nil {
		respondWithWeatherError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	payload, err := h.weatherService.Current(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("query", query.String()).Msg("failed to get weather data")
		respondWithWeatherError(w, err)
		return
	}

	respondWithRawJSON(w, http.StatusOK, payload)
}

func (h *WeatherHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	payload, err := h.weatherService.Forecast(ctx, city)
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("failed to get forecast data")
		respondWithWeatherError(w, err)
		return
	}

	respondWithRawJSON(w, http.StatusOK, payload)
}

func (h *WeatherHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	req, err := parseDashboardRequest(r)
	if err != nil {
		respondWithWeatherError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	dashboard, err := h.weatherService.Dashboard(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("query", req.Query.String()).Msg("failed to build dashboard")
		respondWithWeatherError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, dashboard)
}

func (h *WeatherHandler) GetTracked(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]any{
		"cities": h.tracked.Snapshots(),
	})
}

func parseQuery(r *http.Request) (weather.Query, error) {
	values := r.URL.Query()
	query := weather.Query{City: values.Get("city")}

	for _, coord := range []struct {
		name string
		dst  **float64
	}{{"lat", &query.Lat}, {"lon", &query.Lon}} {
		raw := strings.TrimSpace(values.Get(coord.name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) {
			return weather.Query{}, &weather.ValidationError{Field: coord.name, Message: coord.name + " must be a number"}
		}
		*coord.dst = &v
	}

	return query, nil
}

func parseDashboardRequest(r *http.Request) (service.DashboardRequest, error) {
	query, err := parseQuery(r)
	if err != nil {
		return service.DashboardRequest{}, err
	}
	if strings.TrimSpace(query.City) != "" || query.IsCoords() {
		if err := query.Validate(); err != nil {
			return service.DashboardRequest{}, err
		}
	}

	values := r.URL.Query()

	unit, ok := presentation.ParseUnit(values.Get("unit"))
	if !ok {
		return service.DashboardRequest{}, &weather.ValidationError{Field: "unit", Message: "unit must be C or F"}
	}

	req := service.DashboardRequest{Query: query, Unit: unit}

	if tz := strings.TrimSpace(values.Get("tz")); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return service.DashboardRequest{}, &weather.ValidationError{Field: "tz", Message: "unknown time zone " + tz}
		}
		req.Location = loc
	}

	if values.Has("demo") {
		demo, err := parseDemo(values.Get("demo"), r)
		if err != nil {
			return service.DashboardRequest{}, err
		}
		req.Demo = demo
	}

	return req, nil
}

func parseDemo(rawCategory string, r *http.Request) (*presentation.DemoOverrides, error) {
	demo := &presentation.DemoOverrides{}

	if strings.TrimSpace(rawCategory) != "" {
		category, ok := weather.ParseCategory(rawCategory)
		if !ok {
			return nil, &weather.ValidationError{Field: "demo", Message: "unknown demo category " + rawCategory}
		}
		demo.Category = category
	}

	values := r.URL.Query()
	flags := []struct {
		name string
		dst  *bool
	}{
		{"night", &demo.Night},
		{"windy", &demo.Windy},
		{"leaves", &demo.Leaves},
		{"snow", &demo.Snow},
		{"clouds", &demo.Clouds},
	}
	for _, flag := range flags {
		raw := values.Get(flag.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &weather.ValidationError{Field: flag.name, Message: flag.name + " must be a boolean"}
		}
		*flag.dst = v
	}

	if raw := values.Get("wind_speed"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, &weather.ValidationError{Field: "wind_speed", Message: "wind_speed must be a non-negative integer"}
		}
		demo.WindSpeed = v
	}

	return demo, nil
}
