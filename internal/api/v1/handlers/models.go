package handlers

import (
	"clim8bit/weather-service/internal/db/favorite"
	"clim8bit/weather-service/internal/db/recentsearch"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Code    string         `json:"code"`
	Status  int            `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

type AddFavoriteRequest struct {
	City     string  `json:"city" validate:"required,max=255"`
	Country  string  `json:"country" validate:"required,max=255"`
	Nickname *string `json:"nickname" validate:"omitempty,max=255"`
}

type UpdateFavoriteRequest struct {
	Nickname *string `json:"nickname" validate:"omitempty,max=255"`
}

type FavoritesResponse struct {
	Favorites []favorite.Favorite `json:"favorites"`
	Message   string              `json:"message,omitempty"`
}

type AddRecentSearchRequest struct {
	City    string `json:"city" validate:"required,max=255"`
	Country string `json:"country" validate:"omitempty,max=2"`
}

type RecentSearchesResponse struct {
	RecentSearches []recentsearch.RecentSearch `json:"recent_searches"`
}

type UpdatePreferencesRequest struct {
	TemperatureUnit string `json:"temperature_unit" validate:"required,oneof=C F"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
