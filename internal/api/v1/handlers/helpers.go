package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"clim8bit/weather-service/internal/presentation"
	"clim8bit/weather-service/internal/weather"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

func respondWithError(w http.ResponseWriter, status int, code, message string, details map[string]any) {
	respondWithJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    code,
		Status:  status,
		Details: details,
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondWithRawJSON(w http.ResponseWriter, code int, payload json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(payload); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func badRequest(w http.ResponseWriter, message string, details map[string]any) {
	respondWithError(w, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

// respondWithWeatherError maps provider failures onto status codes and tags the
// message so the client can tell city, network and service problems apart.
func respondWithWeatherError(w http.ResponseWriter, err error) {
	var (
		validation  *weather.ValidationError
		notFound    *weather.NotFoundError
		rateLimit   *weather.RateLimitError
		unavailable *weather.UnavailableError
		providerMsg *weather.ProviderMessageError
		invalid     *weather.InvalidPayloadError
		auth        *weather.AuthError
		config      *weather.ConfigError
		timeout     *weather.TimeoutError
	)

	category := presentation.CategoryOf(err)
	tagged := presentation.Tagged(category, err.Error())

	switch {
	case errors.As(err, &validation):
		badRequest(w, validation.Message, map[string]any{"field": validation.Field})
	case errors.As(err, &notFound):
		respondWithError(w, http.StatusNotFound, "NOT_FOUND", tagged, map[string]any{"query": notFound.Query})
	case errors.As(err, &rateLimit):
		respondWithError(w, http.StatusTooManyRequests, "RATE_LIMITED", tagged, nil)
	case errors.As(err, &timeout):
		respondWithError(w, http.StatusGatewayTimeout, "GATEWAY_TIMEOUT", tagged, nil)
	case errors.As(err, &unavailable):
		respondWithError(w, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", tagged, nil)
	case errors.As(err, &providerMsg):
		respondWithError(w, http.StatusBadGateway, "UPSTREAM_ERROR", tagged, map[string]any{"upstream_status": providerMsg.StatusCode})
	case errors.As(err, &invalid):
		respondWithError(w, http.StatusBadGateway, "INVALID_PAYLOAD", tagged, nil)
	case errors.As(err, &auth), errors.As(err, &config):
		respondWithError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationDetails flattens validator errors into json field -> failed rule.
func validationDetails(err error) map[string]any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
