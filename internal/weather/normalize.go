package weather

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"time"
)

type currentPayload struct {
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []conditionPayload `json:"weather"`
	Name    string             `json:"name"`
	Sys     struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int   `json:"timezone"`
	Dt       int64 `json:"dt"`
}

type conditionPayload struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Normalize maps a raw current-conditions payload into Current.
// The night check uses the payload observation time, or now when the payload has none.
func Normalize(raw []byte, now time.Time) (Current, error) {
	if err := checkObject(raw); err != nil {
		return Current{}, err
	}

	var p currentPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Current{}, &InvalidPayloadError{Reason: err.Error()}
	}
	if p.Main == nil {
		return Current{}, &InvalidPayloadError{Reason: "missing main"}
	}
	if len(p.Weather) == 0 {
		return Current{}, &InvalidPayloadError{Reason: "missing weather"}
	}

	ref := now.Unix()
	if p.Dt != 0 {
		ref = p.Dt
	}

	c := Current{
		Temperature: round(p.Main.Temp),
		FeelsLike:   round(p.Main.FeelsLike),
		TempMin:     round(p.Main.TempMin),
		TempMax:     round(p.Main.TempMax),
		Humidity:    round(p.Main.Humidity),
		Pressure:    round(p.Main.Pressure),
		WindSpeed:   KilometresPerHour(p.Wind.Speed),
		Description: p.Weather[0].Description,
		City:        p.Name,
		Country:     p.Sys.Country,
		Icon:        p.Weather[0].Icon,
		Main:        p.Weather[0].Main,
		Timezone:    p.Timezone,
		Sunrise:     p.Sys.Sunrise,
		Sunset:      p.Sys.Sunset,
		ObservedAt:  p.Dt,
	}

	c.IsNight = IsNight(c.Icon, c.Sunrise, c.Sunset, c.Timezone, ref)
	c.Category = Categorize(c.Main, c.Temperature, c.IsNight)

	return c, nil
}

// IsNight tries the icon suffix, then the sunrise/sunset window, then the local hour.
// ref is a unix time; Normalize passes the payload's dt and falls back to now only when
// dt is absent.
func IsNight(icon string, sunrise, sunset int64, tzOffset int, ref int64) bool {
	switch {
	case strings.HasSuffix(icon, "n"):
		return true
	case strings.HasSuffix(icon, "d"):
		return false
	}

	if sunrise != 0 && sunset != 0 {
		return ref < sunrise || ref > sunset
	}

	hour := time.Unix(ref+int64(tzOffset), 0).UTC().Hour()
	return hour >= 19 || hour < 6
}

// Categorize buckets a provider weather-main string. Only clear skies can be hot.
func Categorize(main string, temp int, night bool) Category {
	switch strings.ToLower(strings.TrimSpace(main)) {
	case "thunderstorm":
		return CategoryThunderstorm
	case "drizzle", "rain":
		return CategoryRainy
	case "snow":
		return CategorySnow
	case "mist", "smoke", "haze", "dust", "fog":
		return CategoryFoggy
	case "clear":
		if night {
			return CategoryClearNight
		}
		if temp > 30 {
			return CategoryHot
		}
		return CategoryClearDay
	case "clouds":
		if night {
			return CategoryClearNight
		}
		return CategoryCloudy
	default:
		if night {
			return CategoryClearNight
		}
		return CategoryClearDay
	}
}

func KilometresPerHour(metresPerSecond float64) int {
	return round(metresPerSecond * 3.6)
}

func round(v float64) int {
	return int(math.Round(v))
}

func checkObject(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return &InvalidPayloadError{Reason: "empty body"}
	}
	if trimmed[0] != '{' {
		return &InvalidPayloadError{Reason: "body is not a JSON object"}
	}
	return nil
}
