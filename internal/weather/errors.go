package weather

import (
	"fmt"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigError means the provider has no API keys to call upstream with.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Reason == "" {
		return "weather provider is not configured: no API keys"
	}
	return "weather provider is not configured: " + e.Reason
}

type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("City not found: %s", e.Query)
}

type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return "Invalid API key. Please contact support."
}

type RateLimitError struct{}

func (e *RateLimitError) Error() string {
	return "API rate limit exceeded. Please try again later."
}

// ProviderMessageError carries the message field of an upstream error body.
type ProviderMessageError struct {
	StatusCode int
	Message    string
}

func (e *ProviderMessageError) Error() string {
	return e.Message
}

type UnavailableError struct {
	StatusCode int
	Network    bool
	Err        error
}

func (e *UnavailableError) Error() string {
	if e.Network {
		return "Network connection error. Please check your internet connection."
	}
	return "Weather service unavailable. Please try again later."
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// TimeoutError reports a lookup abandoned because the caller's context expired or was
// cancelled. It says nothing about upstream health.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return "Weather request timed out. Please try again."
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

type InvalidPayloadError struct {
	Reason string
}

func (e *InvalidPayloadError) Error() string {
	if e.Reason == "" {
		return "Invalid response from weather service"
	}
	return "Invalid response from weather service: " + e.Reason
}
