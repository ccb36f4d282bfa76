package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/rs/zerolog/log"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type RouterConfig struct {
	Weather        *WeatherHandler
	UserData       *UserDataHandler
	Database       Pinger
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(accessLog)
	router.Use(middleware.Recoverer)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "NOT_FOUND", "not found", nil)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
	})

	router.Get("/health", healthHandler(cfg.Database))

	router.Route("/api", func(r chi.Router) {
		r.Get("/weather", cfg.Weather.GetWeather)
		r.Get("/forecast", cfg.Weather.GetForecast)
		r.Get("/dashboard", cfg.Weather.GetDashboard)
		r.Get("/tracked", cfg.Weather.GetTracked)

		r.Group(func(r chi.Router) {
			r.Use(RequireUser)

			r.Get("/favorites", cfg.UserData.ListFavorites)
			r.Post("/favorites", cfg.UserData.AddFavorite)
			r.Put("/favorites/{id}", cfg.UserData.UpdateFavorite)
			r.Delete("/favorites/{id}", cfg.UserData.DeleteFavorite)

			r.Get("/recent-searches", cfg.UserData.ListRecentSearches)
			r.Post("/recent-searches", cfg.UserData.AddRecentSearch)
			r.Delete("/recent-searches", cfg.UserData.ClearRecentSearches)

			r.Get("/user/preferences", cfg.UserData.GetPreferences)
			r.Put("/user/preferences", cfg.UserData.UpdatePreferences)
		})
	})

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(origins),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization", UserIDHeader}),
	)(router)
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Error().Err(err).Msg("database health check failed")
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "unreachable"})
			return
		}
		respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
	}
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
