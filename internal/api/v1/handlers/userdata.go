package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"clim8bit/weather-service/internal/db/favorite"
	"clim8bit/weather-service/internal/db/preference"
	"clim8bit/weather-service/internal/db/recentsearch"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const UserIDHeader = "X-User-ID"

type userIDKey struct{}

// RequireUser rejects requests without a user id and stores it in the request context.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if userID == "" {
			respondWithError(w, http.StatusUnauthorized, "UNAUTHORIZED", UserIDHeader+" header is required", nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID)))
	})
}

func userIDFrom(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey{}).(string)
	return userID
}

type UserDataHandler struct {
	favorites   favorite.Repository
	recent      recentsearch.Repository
	preferences preference.Repository
	timeout     time.Duration
}

func NewUserDataHandler(
	favorites favorite.Repository,
	recent recentsearch.Repository,
	preferences preference.Repository,
	timeout time.Duration,
) *UserDataHandler {
	return &UserDataHandler{
		favorites:   favorites,
		recent:      recent,
		preferences: preferences,
		timeout:     timeout,
	}
}

func (h *UserDataHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.respondWithFavorites(ctx, w, http.StatusOK, "")
}

func (h *UserDataHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req AddFavoriteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	created, err := h.favorites.Add(ctx, userIDFrom(ctx), strings.TrimSpace(req.City), strings.TrimSpace(req.Country), req.Nickname)
	if err != nil {
		log.Error().Err(err).Str("city", req.City).Msg("failed to add favorite")
		respondWithError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to add favorite", nil)
		return
	}

	if !created {
		h.respondWithFavorites(ctx, w, http.StatusOK, "City already in favorites")
		return
	}
	h.respondWithFavorites(ctx, w, http.StatusCreated, "City added to favorites")
}

func (h *UserDataHandler) UpdateFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := favoriteID(w, r)
	if !ok {
		return
	}

	var req UpdateFavoriteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.favorites.UpdateNickname(ctx, userIDFrom(ctx), id, req.Nickname); err != nil {
		h.respondWithFavoriteError(w, err, "failed to update favorite")
		return
	}

	h.respondWithFavorites(ctx, w, http.StatusOK, "Favorite updated")
}

func (h *UserDataHandler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := favoriteID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.favorites.Delete(ctx, userIDFrom(ctx), id); err != nil {
		h.respondWithFavoriteError(w, err, "failed to delete favorite")
		return
	}

	h.respondWithFavorites(ctx, w, http.StatusOK, "City removed from favorites")
}

func (h *UserDataHandler) ListRecentSearches(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.respondWithRecentSearches(ctx, w, http.StatusOK)
}

func (h *UserDataHandler) AddRecentSearch(w http.ResponseWriter, r *http.Request) {
	var req AddRecentSearchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.recent.Add(ctx, userIDFrom(ctx), strings.TrimSpace(req.City), strings.ToUpper(strings.TrimSpace(req.Country))); err != nil {
		log.Error().Err(err).Str("city", req.City).Msg("failed to record recent search")
		respondWithError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to record recent search", nil)
		return
	}

	h.respondWithRecentSearches(ctx, w, http.StatusCreated)
}

func (h *UserDataHandler) ClearRecentSearches(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.recent.Clear(ctx, userIDFrom(ctx)); err != nil {
		log.Error().Err(err).Msg("failed to clear recent searches")
		respondWithError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to clear recent searches", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, RecentSearchesResponse{RecentSearches: []recentsearch.RecentSearch{}})
}

func (h *UserDataHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	prefs, err := h.preferences.Get(ctx, userIDFrom(ctx))
	if err != nil {
		log.Error().Err(err).Msg("failed to load preferences")
		respondWithError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load preferences", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, prefs)
}

func (h *UserDataHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req UpdatePreferencesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	prefs, err := h.preferences.SetTemperatureUnit(ctx, userIDFrom(ctx), req.TemperatureUnit)
	if err != nil {
		log.Error().Err(err).Msg("failed to update preferences")
		respondWithError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to update preferences", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, prefs)
}

func (h *UserDataHandler) respondWithFavorites(ctx context.Context, w http.ResponseWriter, status int, message string) {
	favorites, err := h.favorites.List(ctx, userIDFrom(ctx))
	if err != nil {
		log.Error().Err(err).Msg("failed to list favorites")
		respondWithError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list favorites", nil)
		return
	}

	respondWithJSON(w, status, FavoritesResponse{Favorites: favorites, Message: message})
}

func (h *UserDataHandler) respondWithRecentSearches(ctx context.Context, w http.ResponseWriter, status int) {
	searches, err := h.recent.List(ctx, userIDFrom(ctx), recentsearch.DefaultLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list recent searches")
		respondWithError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list recent searches", nil)
		return
	}

	respondWithJSON(w, status, RecentSearchesResponse{RecentSearches: searches})
}

func (h *UserDataHandler) respondWithFavoriteError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, favorite.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, "NOT_FOUND", "favorite not found", nil)
		return
	}
	log.Error().Err(err).Msg(message)
	respondWithError(w, http.StatusInternalServerError, "INTERNAL_ERROR", message, nil)
}

func favoriteID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		badRequest(w, "favorite id must be a positive integer", map[string]any{"id": chi.URLParam(r, "id")})
		return 0, false
	}
	return uint(id), true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		badRequest(w, "invalid request body", nil)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		badRequest(w, "validation failed", validationDetails(err))
		return false
	}
	return true
}
