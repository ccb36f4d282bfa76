package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const maxCityLength = 255

type Category string

const (
	CategoryRainy        Category = "rainy"
	CategoryThunderstorm Category = "thunderstorm"
	CategorySnow         Category = "snow"
	CategoryHot          Category = "hot"
	CategoryClearDay     Category = "clear-day"
	CategoryClearNight   Category = "clear-night"
	CategoryFoggy        Category = "foggy"
	CategoryCloudy       Category = "cloudy"
)

var Categories = []Category{
	CategoryRainy,
	CategoryThunderstorm,
	CategorySnow,
	CategoryHot,
	CategoryClearDay,
	CategoryClearNight,
	CategoryFoggy,
	CategoryCloudy,
}

func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == strings.ToLower(strings.TrimSpace(s)) {
			return c, true
		}
	}
	return "", false
}

// Query selects weather either by city name or by a coordinate pair, never both.
type Query struct {
	City string
	Lat  *float64
	Lon  *float64
}

func CityQuery(city string) Query {
	return Query{City: city}
}

func CoordsQuery(lat, lon float64) Query {
	return Query{Lat: &lat, Lon: &lon}
}

func (q Query) IsCoords() bool {
	return q.Lat != nil || q.Lon != nil
}

func (q Query) Validate() error {
	city := strings.TrimSpace(q.City)

	switch {
	case city != "" && q.IsCoords():
		return &ValidationError{Field: "city", Message: "provide either city or lat/lon, not both"}
	case city == "" && !q.IsCoords():
		return &ValidationError{Field: "city", Message: "city or lat/lon is required"}
	case city != "":
		if len(city) > maxCityLength {
			return &ValidationError{Field: "city", Message: fmt.Sprintf("city must not exceed %d characters", maxCityLength)}
		}
		return nil
	}

	if q.Lat == nil {
		return &ValidationError{Field: "lat", Message: "lat is required when lon is given"}
	}
	if q.Lon == nil {
		return &ValidationError{Field: "lon", Message: "lon is required when lat is given"}
	}
	if math.IsNaN(*q.Lat) || *q.Lat < -90 || *q.Lat > 90 {
		return &ValidationError{Field: "lat", Message: "lat must be between -90 and 90"}
	}
	if math.IsNaN(*q.Lon) || *q.Lon < -180 || *q.Lon > 180 {
		return &ValidationError{Field: "lon", Message: "lon must be between -180 and 180"}
	}

	return nil
}

// CacheKey is the storage key of the current-conditions payload for this query.
func (q Query) CacheKey() string {
	if q.IsCoords() && q.Lat != nil && q.Lon != nil {
		return "weather_coords_" + formatCoord(*q.Lat) + "_" + formatCoord(*q.Lon)
	}
	return "weather_city_" + strings.TrimSpace(q.City)
}

func (q Query) String() string {
	if q.IsCoords() && q.Lat != nil && q.Lon != nil {
		return formatCoord(*q.Lat) + "," + formatCoord(*q.Lon)
	}
	return strings.TrimSpace(q.City)
}

func ForecastCacheKey(city string) string {
	return "forecast_city_" + strings.TrimSpace(city)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Current is the normalized shape of a current-conditions payload.
// Temperatures are whole degrees Celsius, wind speed is km/h.
type Current struct {
	Temperature int      `json:"temperature"`
	FeelsLike   int      `json:"feels_like"`
	TempMin     int      `json:"temp_min"`
	TempMax     int      `json:"temp_max"`
	Humidity    int      `json:"humidity"`
	Pressure    int      `json:"pressure"`
	WindSpeed   int      `json:"wind_speed"`
	Description string   `json:"description"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Icon        string   `json:"icon"`
	Main        string   `json:"main"`
	Timezone    int      `json:"timezone"`
	Sunrise     int64    `json:"sunrise"`
	Sunset      int64    `json:"sunset"`
	ObservedAt  int64    `json:"observed_at"`
	IsNight     bool     `json:"is_night"`
	Category    Category `json:"category"`
}

type ForecastDay struct {
	Day         string `json:"day"`
	Date        string `json:"date"`
	Temperature int    `json:"temperature"`
	Icon        string `json:"icon"`
	Main        string `json:"main"`
	Description string `json:"description"`
}
