package weather_test

import (
	"encoding/json"
	"testing"
	"time"

	"clim8bit/weather-service/internal/weather"

	"github.com/stretchr/testify/suite"
)

type NormalizerTestSuite struct {
	suite.Suite
	now time.Time
}

func (s *NormalizerTestSuite) SetupTest() {
	s.now = time.Unix(1700010000, 0)
}

func payload(main, icon string, temp float64, sunrise, sunset, dt int64) []byte {
	raw, _ := json.Marshal(map[string]interface{}{
		"main": map[string]interface{}{
			"temp": temp, "feels_like": temp - 1, "temp_min": temp - 2, "temp_max": temp + 2,
			"humidity": 70, "pressure": 1012,
		},
		"wind":     map[string]interface{}{"speed": 5},
		"weather":  []map[string]interface{}{{"main": main, "icon": icon, "description": "test"}},
		"name":     "London",
		"sys":      map[string]interface{}{"country": "GB", "sunrise": sunrise, "sunset": sunset},
		"timezone": 0,
		"dt":       dt,
	})
	return raw
}

func (s *NormalizerTestSuite) TestNormalizeLondonRain() {
	raw := []byte(`{"main":{"temp":23.6,"feels_like":22.1,"temp_min":20,"temp_max":26,"humidity":70,"pressure":1012},
		"wind":{"speed":5},"weather":[{"description":"light rain","icon":"10d","main":"Rain"}],
		"name":"London","sys":{"country":"GB","sunrise":1700000000,"sunset":1700040000},"timezone":0,"dt":1700010000}`)

	current, err := weather.Normalize(raw, s.now)

	s.Require().NoError(err)
	s.Equal(24, current.Temperature)
	s.Equal(22, current.FeelsLike)
	s.Equal(20, current.TempMin)
	s.Equal(26, current.TempMax)
	s.Equal(70, current.Humidity)
	s.Equal(1012, current.Pressure)
	s.Equal(18, current.WindSpeed)
	s.Equal("light rain", current.Description)
	s.Equal("London", current.City)
	s.Equal("GB", current.Country)
	s.Equal("10d", current.Icon)
	s.Equal(weather.CategoryRainy, current.Category)
	s.False(current.IsNight)
}

func (s *NormalizerTestSuite) TestCategoryBranches() {
	const sunrise, sunset = 1700000000, 1700040000
	day := int64(1700010000)
	night := int64(1700050000)

	cases := []struct {
		name      string
		main      string
		icon      string
		temp      float64
		dt        int64
		category  weather.Category
		wantNight bool
	}{
		{"thunderstorm", "Thunderstorm", "11d", 18, day, weather.CategoryThunderstorm, false},
		{"drizzle", "Drizzle", "09d", 12, day, weather.CategoryRainy, false},
		{"snow", "SNOW", "13n", -3, day, weather.CategorySnow, true},
		{"haze", "haze", "50d", 10, day, weather.CategoryFoggy, false},
		{"clear hot", "Clear", "", 31, day, weather.CategoryHot, false},
		{"clear mild", "Clear", "", 22, day, weather.CategoryClearDay, false},
		{"clear night", "Clear", "", 31, night, weather.CategoryClearNight, true},
		{"clouds hot stays cloudy", "Clouds", "04d", 33, day, weather.CategoryCloudy, false},
		{"clouds night", "Clouds", "04n", 15, day, weather.CategoryClearNight, true},
		{"unknown day", "Tornado", "", 15, day, weather.CategoryClearDay, false},
		{"unknown night", "Squall", "", 15, night, weather.CategoryClearNight, true},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			current, err := weather.Normalize(payload(tc.main, tc.icon, tc.temp, sunrise, sunset, tc.dt), s.now)
			s.Require().NoError(err)
			s.Equal(tc.category, current.Category)
			s.Equal(tc.wantNight, current.IsNight)
		})
	}
}

func (s *NormalizerTestSuite) TestNightReferenceTime() {
	const sunrise, sunset = 1700000000, 1700040000
	nightClock := time.Unix(1700050000, 0)

	s.Run("observation time wins over clock", func() {
		current, err := weather.Normalize(payload("Clear", "", 20, sunrise, sunset, 1700010000), nightClock)
		s.Require().NoError(err)
		s.False(current.IsNight)
	})

	s.Run("clock used when dt is absent", func() {
		current, err := weather.Normalize(payload("Clear", "", 20, sunrise, sunset, 0), nightClock)
		s.Require().NoError(err)
		s.True(current.IsNight)
		s.Equal(weather.CategoryClearNight, current.Category)
	})
}

func (s *NormalizerTestSuite) TestIsNightFallbacks() {
	s.Run("icon suffix wins over sun window", func() {
		s.True(weather.IsNight("01n", 100, 200, 0, 150))
		s.False(weather.IsNight("01d", 100, 200, 0, 50))
	})

	s.Run("sun window when icon has no suffix", func() {
		s.False(weather.IsNight("", 100, 200, 0, 150))
		s.True(weather.IsNight("", 100, 200, 0, 250))
		s.True(weather.IsNight("", 100, 200, 0, 50))
	})

	s.Run("local hour when sun times are missing", func() {
		// 1700000000 is 22:13 UTC
		s.True(weather.IsNight("", 0, 0, 0, 1700000000))
		// +3h pushes it to 01:13
		s.True(weather.IsNight("", 0, 0, 3*3600, 1700000000))
		// -10h puts it at 12:13
		s.False(weather.IsNight("", 0, 0, -10*3600, 1700000000))
		// 18:59 is still day, 19:00 is night
		s.False(weather.IsNight("", 0, 0, 0, 1699988340))
		s.True(weather.IsNight("", 0, 0, 0, 1699988400))
		// 06:00 is day, 05:59 is night
		s.False(weather.IsNight("", 0, 0, 0, 1699941600))
		s.True(weather.IsNight("", 0, 0, 0, 1699941540))
	})
}

func (s *NormalizerTestSuite) TestNormalizeUsesNowWithoutObservationTime() {
	raw := payload("Clear", "", 20, 1700000000, 1700040000, 0)

	current, err := weather.Normalize(raw, time.Unix(1700050000, 0))
	s.Require().NoError(err)
	s.True(current.IsNight)

	current, err = weather.Normalize(raw, time.Unix(1700020000, 0))
	s.Require().NoError(err)
	s.False(current.IsNight)
}

func (s *NormalizerTestSuite) TestNormalizeInvalidPayloads() {
	cases := map[string]string{
		"empty":         "",
		"whitespace":    "   ",
		"null":          "null",
		"false":         "false",
		"array":         "[]",
		"malformed":     "{malformed json",
		"missing main":  `{"weather":[{"main":"Clear"}]}`,
		"empty weather": `{"main":{"temp":1},"weather":[]}`,
		"no weather":    `{"main":{"temp":1}}`,
	}

	for name, raw := range cases {
		s.Run(name, func() {
			_, err := weather.Normalize([]byte(raw), s.now)
			s.Require().Error(err)
			var invalid *weather.InvalidPayloadError
			s.ErrorAs(err, &invalid)
		})
	}
}

func (s *NormalizerTestSuite) TestKilometresPerHour() {
	s.Equal(18, weather.KilometresPerHour(5))
	s.Equal(0, weather.KilometresPerHour(0))
	s.Equal(26, weather.KilometresPerHour(7.2))
	s.Equal(25, weather.KilometresPerHour(6.9))
}

func TestNormalizerTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizerTestSuite))
}
