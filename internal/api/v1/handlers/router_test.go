package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clim8bit/weather-service/internal/api/v1/handlers"
	"clim8bit/weather-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error {
	return p.err
}

func newTestRouter(t *testing.T, db handlers.Pinger) http.Handler {
	return handlers.NewRouter(handlers.RouterConfig{
		Weather: handlers.NewWeatherHandler(mocks.NewMockWeatherService(t), mocks.NewMockTrackedCitiesRefresher(t), time.Second),
		UserData: handlers.NewUserDataHandler(
			mocks.NewMockFavoriteRepository(t),
			mocks.NewMockRecentSearchRepository(t),
			mocks.NewMockPreferenceRepository(t),
			time.Second,
		),
		Database:       db,
		AllowedOrigins: []string{"http://localhost:5173"},
	})
}

func TestHealth(t *testing.T) {
	testCases := []struct {
		name   string
		db     handlers.Pinger
		status int
		body   string
	}{
		{"without database", nil, http.StatusOK, `{"status":"ok"}`},
		{"healthy database", stubPinger{}, http.StatusOK, `{"status":"ok","database":"ok"}`},
		{"unreachable database", stubPinger{err: errors.New("refused")}, http.StatusServiceUnavailable, `{"status":"degraded","database":"unreachable"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			newTestRouter(t, tc.db).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tc.status, recorder.Code)
			assert.JSONEq(t, tc.body, recorder.Body.String())
		})
	}
}

func TestRouterAppliesCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	recorder := httptest.NewRecorder()

	newTestRouter(t, nil).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "http://localhost:5173", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterUnknownRoute(t *testing.T) {
	recorder := httptest.NewRecorder()

	newTestRouter(t, nil).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"code":"NOT_FOUND"`)
}

func TestRouterMethodNotAllowed(t *testing.T) {
	recorder := httptest.NewRecorder()

	newTestRouter(t, nil).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/weather", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
