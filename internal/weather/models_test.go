package weather_test

import (
	"math"
	"strings"
	"testing"

	"clim8bit/weather-service/internal/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func TestQueryValidate(t *testing.T) {
	cases := []struct {
		name  string
		query weather.Query
		field string
	}{
		{"city only", weather.CityQuery("London"), ""},
		{"coords only", weather.CoordsQuery(51.5074, -0.1278), ""},
		{"coords at bounds", weather.CoordsQuery(-90, 180), ""},
		{"nothing", weather.Query{}, "city"},
		{"blank city", weather.CityQuery("   "), "city"},
		{"both forms", weather.Query{City: "London", Lat: ptr(1), Lon: ptr(2)}, "city"},
		{"lat without lon", weather.Query{Lat: ptr(1)}, "lon"},
		{"lon without lat", weather.Query{Lon: ptr(1)}, "lat"},
		{"lat out of range", weather.CoordsQuery(90.5, 0), "lat"},
		{"lon out of range", weather.CoordsQuery(0, -180.1), "lon"},
		{"lat not a number", weather.CoordsQuery(math.NaN(), 0), "lat"},
		{"lon not a number", weather.CoordsQuery(0, math.NaN()), "lon"},
		{"city too long", weather.CityQuery(strings.Repeat("a", 256)), "city"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.query.Validate()
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}

			var validation *weather.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tc.field, validation.Field)
		})
	}
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "weather_city_London", weather.CityQuery("London").CacheKey())
	assert.Equal(t, "weather_city_New York", weather.CityQuery(" New York ").CacheKey())
	assert.Equal(t, "weather_coords_51.5074_-0.1278", weather.CoordsQuery(51.5074, -0.1278).CacheKey())
	assert.Equal(t, "weather_coords_40_-74", weather.CoordsQuery(40, -74).CacheKey())
	assert.Equal(t, "forecast_city_Paris", weather.ForecastCacheKey("Paris"))
}

func TestParseCategory(t *testing.T) {
	c, ok := weather.ParseCategory("Clear-Night")
	assert.True(t, ok)
	assert.Equal(t, weather.CategoryClearNight, c)

	_, ok = weather.ParseCategory("blizzard")
	assert.False(t, ok)
}
