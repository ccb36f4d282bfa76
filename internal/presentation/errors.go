package presentation

import (
	"errors"
	"strings"

	"clim8bit/weather-service/internal/weather"
)

type ErrorCategory string

const (
	ErrorCityNotFound       ErrorCategory = "city-not-found"
	ErrorNetwork            ErrorCategory = "network"
	ErrorServiceUnavailable ErrorCategory = "service-unavailable"
	ErrorGeneric            ErrorCategory = "generic"
)

var tags = map[ErrorCategory]string{
	ErrorCityNotFound:       "[CITY_ERROR]",
	ErrorNetwork:            "[NETWORK_ERROR]",
	ErrorServiceUnavailable: "[SERVICE_ERROR]",
}

// TagFor returns the message prefix the UI recognises, empty for generic errors.
func TagFor(category ErrorCategory) string {
	return tags[category]
}

// Tagged prefixes message with the tag of its category unless it already carries one.
func Tagged(category ErrorCategory, message string) string {
	tag := TagFor(category)
	if tag == "" || strings.HasPrefix(message, tag) {
		return message
	}
	return tag + " " + message
}

// ClassifyError buckets a surfaced message. Explicit tags win over keywords.
func ClassifyError(message string) ErrorCategory {
	for _, category := range []ErrorCategory{ErrorCityNotFound, ErrorNetwork, ErrorServiceUnavailable} {
		if strings.Contains(message, tags[category]) {
			return category
		}
	}

	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "city not found"), strings.Contains(lower, "invalid city"):
		return ErrorCityNotFound
	case strings.Contains(lower, "network"), strings.Contains(lower, "connection"):
		return ErrorNetwork
	case strings.Contains(lower, "service"), strings.Contains(lower, "unavailable"):
		return ErrorServiceUnavailable
	}
	return ErrorGeneric
}

// CategoryOf buckets a typed provider error without looking at its text.
func CategoryOf(err error) ErrorCategory {
	var (
		notFound    *weather.NotFoundError
		unavailable *weather.UnavailableError
		rateLimit   *weather.RateLimitError
		providerMsg *weather.ProviderMessageError
		invalid     *weather.InvalidPayloadError
		timeout     *weather.TimeoutError
	)

	switch {
	case errors.As(err, &notFound):
		return ErrorCityNotFound
	case errors.As(err, &unavailable):
		if unavailable.Network {
			return ErrorNetwork
		}
		return ErrorServiceUnavailable
	case errors.As(err, &rateLimit), errors.As(err, &providerMsg), errors.As(err, &invalid), errors.As(err, &timeout):
		return ErrorServiceUnavailable
	}
	return ErrorGeneric
}
