package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"clim8bit/weather-service/internal/inmemorycache"
	"clim8bit/weather-service/internal/weather"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

const (
	DefaultBaseURL  = "https://api.openweathermap.org/data/2.5"
	DefaultCacheTTL = 600 * time.Second
	userAgent       = "clim8bit-weather-service/1.0"
	tracerName      = "clim8bit/weather-service/providers"
)

type OpenWeatherService interface {
	CurrentPayload(ctx context.Context, query weather.Query) (json.RawMessage, error)
	ForecastPayload(ctx context.Context, city string) (json.RawMessage, error)
	FetchCurrent(ctx context.Context, query weather.Query) (weather.Current, error)
	FetchForecast(ctx context.Context, city string, loc *time.Location) ([]weather.ForecastDay, error)
	GetHTTPClient() *http.Client
}

type OpenWeatherConfig struct {
	BaseURL            string
	APIKeys            []string
	Timeout            time.Duration
	CacheTTL           time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

type openWeatherService struct {
	client   *resty.Client
	keys     []string
	next     *atomic.Uint64
	loader   *inmemorycache.Loader
	cacheTTL time.Duration
	breaker  *gobreaker.CircuitBreaker
	tracer   trace.Tracer
	now      func() time.Time
}

func NewOpenWeatherService(cfg OpenWeatherConfig, loader *inmemorycache.Loader) OpenWeatherService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	keys := make([]string, 0, len(cfg.APIKeys))
	for _, k := range cfg.APIKeys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout).
		SetRetryCount(0)

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		log.Debug().
			Str("method", req.Method).
			Str("path", req.URL).
			Str("q", req.QueryParam.Get("q")).
			Str("lat", req.QueryParam.Get("lat")).
			Str("lon", req.QueryParam.Get("lon")).
			Msg("openweather request")
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		path := ""
		if resp.RawResponse != nil && resp.RawResponse.Request != nil {
			path = resp.RawResponse.Request.URL.Path
		}
		log.Debug().
			Str("path", path).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Int("bytes", len(resp.Body())).
			Msg("openweather response")
		return nil
	})

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// Only upstream unavailability counts. Client errors and caller timeouts leave
		// the breaker alone.
		IsSuccessful: func(err error) bool {
			var unavailable *weather.UnavailableError
			return err == nil || !errors.As(err, &unavailable)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})

	return &openWeatherService{
		client:   client,
		keys:     keys,
		next:     atomic.NewUint64(0),
		loader:   loader,
		cacheTTL: cacheTTL,
		breaker:  breaker,
		tracer:   otel.Tracer(tracerName),
		now:      time.Now,
	}
}

func (s *openWeatherService) CurrentPayload(ctx context.Context, query weather.Query) (json.RawMessage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if len(s.keys) == 0 {
		return nil, &weather.ConfigError{}
	}

	params := map[string]string{}
	if query.IsCoords() {
		params["lat"] = fmt.Sprint(*query.Lat)
		params["lon"] = fmt.Sprint(*query.Lon)
	} else {
		params["q"] = strings.TrimSpace(query.City)
	}

	key := query.CacheKey()
	return inmemorycache.GetOrFetch(ctx, s.loader, key, s.cacheTTL, func(ctx context.Context) (json.RawMessage, error) {
		return s.fetch(ctx, "openweather.current", "/weather", key, query.String(), params, s.checkCurrent)
	})
}

func (s *openWeatherService) ForecastPayload(ctx context.Context, city string) (json.RawMessage, error) {
	if err := weather.CityQuery(city).Validate(); err != nil {
		return nil, err
	}
	if len(s.keys) == 0 {
		return nil, &weather.ConfigError{}
	}

	city = strings.TrimSpace(city)
	key := weather.ForecastCacheKey(city)
	return inmemorycache.GetOrFetch(ctx, s.loader, key, s.cacheTTL, func(ctx context.Context) (json.RawMessage, error) {
		return s.fetch(ctx, "openweather.forecast", "/forecast", key, city, map[string]string{"q": city}, checkForecast)
	})
}

func (s *openWeatherService) FetchCurrent(ctx context.Context, query weather.Query) (weather.Current, error) {
	raw, err := s.CurrentPayload(ctx, query)
	if err != nil {
		return weather.Current{}, err
	}
	return weather.Normalize(raw, s.now())
}

func (s *openWeatherService) FetchForecast(ctx context.Context, city string, loc *time.Location) ([]weather.ForecastDay, error) {
	raw, err := s.ForecastPayload(ctx, city)
	if err != nil {
		return nil, err
	}
	return weather.NormalizeForecast(raw, loc)
}

func (s *openWeatherService) GetHTTPClient() *http.Client {
	return s.client.GetClient()
}

// nextKey hands out keys round-robin. Only called when a request actually goes upstream.
func (s *openWeatherService) nextKey() string {
	idx := s.next.Inc() - 1
	return s.keys[idx%uint64(len(s.keys))]
}

// fetch runs one upstream call. check rejects bodies that would fail normalization so
// they never reach the cache.
func (s *openWeatherService) fetch(
	ctx context.Context,
	spanName, path, cacheKey, subject string,
	params map[string]string,
	check func([]byte) error,
) (json.RawMessage, error) {
	ctx, span := s.tracer.Start(ctx, spanName, trace.WithAttributes(attribute.String("cache.key", cacheKey)))
	defer span.End()

	result, err := s.breaker.Execute(func() (interface{}, error) {
		resp, err := s.client.R().
			SetContext(ctx).
			SetQueryParams(params).
			SetQueryParam("units", "metric").
			SetQueryParam("appid", s.nextKey()).
			Get(path)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, &weather.TimeoutError{Err: ctxErr}
			}
			return nil, &weather.UnavailableError{Network: true, Err: err}
		}

		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))

		if !resp.IsSuccess() {
			return nil, mapStatusError(resp.StatusCode(), resp.Body(), subject)
		}

		body := resp.Body()
		if err := checkPayload(body); err != nil {
			return nil, err
		}
		if err := check(body); err != nil {
			return nil, err
		}

		payload := make(json.RawMessage, len(body))
		copy(payload, body)
		return payload, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = &weather.UnavailableError{Err: err}
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logFailure(err, subject)
		return nil, err
	}

	return result.(json.RawMessage), nil
}

func mapStatusError(status int, body []byte, subject string) error {
	switch status {
	case http.StatusNotFound:
		return &weather.NotFoundError{Query: subject}
	case http.StatusUnauthorized:
		return &weather.AuthError{StatusCode: status}
	case http.StatusTooManyRequests:
		return &weather.RateLimitError{}
	}

	var parsed map[string]interface{}
	if json.Unmarshal(body, &parsed) == nil {
		if message, ok := parsed["message"].(string); ok && message != "" {
			return &weather.ProviderMessageError{StatusCode: status, Message: message}
		}
	}

	return &weather.UnavailableError{StatusCode: status, Err: fmt.Errorf("openweather returned status code: %d", status)}
}

func checkPayload(body []byte) error {
	if len(strings.TrimSpace(string(body))) == 0 {
		return &weather.InvalidPayloadError{Reason: "empty body"}
	}

	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return &weather.InvalidPayloadError{Reason: "malformed JSON"}
	}
	if _, ok := decoded.(map[string]interface{}); !ok {
		return &weather.InvalidPayloadError{Reason: "body is not a JSON object"}
	}
	return nil
}

func (s *openWeatherService) checkCurrent(body []byte) error {
	_, err := weather.Normalize(body, s.now())
	return err
}

func checkForecast(body []byte) error {
	_, err := weather.NormalizeForecast(body, nil)
	return err
}

func logFailure(err error, subject string) {
	var (
		auth      *weather.AuthError
		rateLimit *weather.RateLimitError
		notFound  *weather.NotFoundError
		timeout   *weather.TimeoutError
	)

	switch {
	case errors.As(err, &auth):
		log.Error().Err(err).Str("query", subject).Msg("URGENT: openweather rejected the API key")
	case errors.As(err, &rateLimit):
		log.Warn().Err(err).Str("query", subject).Msg("openweather rate limit reached")
	case errors.As(err, &timeout):
		log.Warn().Err(err).Str("query", subject).Msg("openweather request abandoned by caller")
	case errors.As(err, &notFound):
		log.Info().Str("query", subject).Msg("openweather has no match for query")
	default:
		log.Error().Err(err).Str("query", subject).Msg("openweather request failed")
	}
}
