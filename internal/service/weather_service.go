package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"clim8bit/weather-service/internal/presentation"
	"clim8bit/weather-service/internal/providers"
	"clim8bit/weather-service/internal/weather"

	"github.com/rs/zerolog/log"
)

type DashboardRequest struct {
	Query    weather.Query
	Unit     presentation.Unit
	Location *time.Location
	Demo     *presentation.DemoOverrides
}

type Dashboard struct {
	Query    string                `json:"query"`
	Fallback bool                  `json:"fallback"`
	Current  weather.Current       `json:"current"`
	Forecast []weather.ForecastDay `json:"forecast"`
	State    presentation.State    `json:"state"`
	Warning  string                `json:"warning,omitempty"`
}

type WeatherService interface {
	Current(ctx context.Context, query weather.Query) (json.RawMessage, error)
	Forecast(ctx context.Context, city string) (json.RawMessage, error)
	Dashboard(ctx context.Context, req DashboardRequest) (Dashboard, error)
}

type weatherService struct {
	provider    providers.OpenWeatherService
	defaultCity string
}

func NewWeatherService(provider providers.OpenWeatherService, defaultCity string) WeatherService {
	return &weatherService{
		provider:    provider,
		defaultCity: defaultCity,
	}
}

func (s *weatherService) Current(ctx context.Context, query weather.Query) (json.RawMessage, error) {
	return s.provider.CurrentPayload(ctx, query)
}

func (s *weatherService) Forecast(ctx context.Context, city string) (json.RawMessage, error) {
	return s.provider.ForecastPayload(ctx, city)
}

// Dashboard resolves the query, falling back to the default city when there is no query
// or a coordinate lookup fails, then builds the full presentation view.
func (s *weatherService) Dashboard(ctx context.Context, req DashboardRequest) (Dashboard, error) {
	query := req.Query
	if strings.TrimSpace(query.City) == "" && !query.IsCoords() {
		query = weather.CityQuery(s.defaultCity)
	}

	result := Dashboard{Query: query.String()}

	current, err := s.provider.FetchCurrent(ctx, query)
	if err != nil && query.IsCoords() && !isValidationError(err) && s.defaultCity != "" {
		log.Warn().Err(err).Str("query", query.String()).Str("fallback", s.defaultCity).Msg("coordinate lookup failed, using default city")

		query = weather.CityQuery(s.defaultCity)
		result.Query = query.String()
		result.Fallback = true
		current, err = s.provider.FetchCurrent(ctx, query)
	}
	if err != nil {
		return Dashboard{}, err
	}
	result.Current = current

	forecastCity := current.City
	if forecastCity == "" {
		forecastCity = query.City
	}
	if forecastCity != "" {
		forecast, err := s.provider.FetchForecast(ctx, forecastCity, req.Location)
		if err != nil {
			log.Warn().Err(err).Str("city", forecastCity).Msg("forecast unavailable")
			result.Warning = "Forecast unavailable: " + err.Error()
		} else {
			result.Forecast = forecast
		}
	}

	result.State = presentation.Derive(presentation.Input{
		Current: current,
		Unit:    req.Unit,
		Demo:    req.Demo,
	})

	return result, nil
}

func isValidationError(err error) bool {
	var validation *weather.ValidationError
	return errors.As(err, &validation)
}
