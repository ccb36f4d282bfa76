// Package presentation derives what the dashboard renders from normalized weather.
// Everything here is pure: no I/O, no clocks.
package presentation

import (
	"math"
	"strings"

	"clim8bit/weather-service/internal/weather"
)

const (
	windyThreshold = 25
	// wind used for alerts and tips in demo mode when the windy toggle is off
	demoCalmWind = 10
)

type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
)

func ParseUnit(s string) (Unit, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "C":
		return Celsius, true
	case "F":
		return Fahrenheit, true
	}
	return "", false
}

// DemoOverrides replaces live conditions with a manually chosen preview.
type DemoOverrides struct {
	Category  weather.Category `json:"category"`
	Night     bool             `json:"night"`
	Windy     bool             `json:"windy"`
	WindSpeed int              `json:"wind_speed"`
	Leaves    bool             `json:"leaves"`
	Snow      bool             `json:"snow"`
	Clouds    bool             `json:"clouds"`
}

type Input struct {
	Current weather.Current
	Unit    Unit
	Demo    *DemoOverrides
}

type State struct {
	IsNight     bool             `json:"is_night"`
	Category    weather.Category `json:"category"`
	IsWindy     bool             `json:"is_windy"`
	ShowLeaves  bool             `json:"show_leaves"`
	ShowSnow    bool             `json:"show_snow"`
	ShowClouds  bool             `json:"show_clouds"`
	Background  string           `json:"background"`
	Alerts      []Alert          `json:"alerts"`
	Tip         *Tip             `json:"tip,omitempty"`
	TempUnit    Unit             `json:"temp_unit"`
	Temperature int              `json:"temperature"`
	FeelsLike   int              `json:"feels_like"`
	TempMin     int              `json:"temp_min"`
	TempMax     int              `json:"temp_max"`
	WindSpeed   int              `json:"wind_speed"`
	Demo        bool             `json:"demo"`
}

func IsWindy(windSpeed int) bool {
	return windSpeed > windyThreshold
}

func ShouldShowLeaves(category weather.Category, isNight, isWindy bool) bool {
	if isNight {
		return false
	}
	return category == weather.CategoryClearDay || category == weather.CategoryCloudy || isWindy
}

func ShowSnowEffect(category weather.Category) bool {
	return category == weather.CategorySnow
}

func ShowCloudsEffect(category weather.Category) bool {
	switch category {
	case weather.CategoryRainy, weather.CategoryThunderstorm, weather.CategorySnow, weather.CategoryCloudy:
		return true
	}
	return false
}

// Derive computes the full presentation state. Alerts and tips always evaluate Celsius;
// only the display temperatures follow the requested unit.
func Derive(in Input) State {
	unit := in.Unit
	if unit == "" {
		unit = Celsius
	}

	if in.Demo != nil {
		return deriveDemo(in.Current, *in.Demo, unit)
	}

	c := in.Current
	category := c.Category
	if category == "" {
		category = weather.Categorize(c.Main, c.Temperature, c.IsNight)
	}
	windy := IsWindy(c.WindSpeed)

	return State{
		IsNight:     c.IsNight,
		Category:    category,
		IsWindy:     windy,
		ShowLeaves:  ShouldShowLeaves(category, c.IsNight, windy),
		ShowSnow:    ShowSnowEffect(category),
		ShowClouds:  ShowCloudsEffect(category),
		Background:  Background(category, c.IsNight),
		Alerts:      Alerts(category, c.Temperature, c.WindSpeed),
		Tip:         SelectTip(category, c.Temperature, c.WindSpeed, windy),
		TempUnit:    unit,
		Temperature: Convert(c.Temperature, unit),
		FeelsLike:   Convert(c.FeelsLike, unit),
		TempMin:     Convert(c.TempMin, unit),
		TempMax:     Convert(c.TempMax, unit),
		WindSpeed:   c.WindSpeed,
	}
}

func deriveDemo(c weather.Current, demo DemoOverrides, unit Unit) State {
	category := demo.Category
	if category == "" {
		category = weather.CategoryClearDay
	}

	temp := DemoTemperature(category)
	wind := demoCalmWind
	if demo.Windy {
		wind = demo.WindSpeed
	}

	return State{
		IsNight:     demo.Night,
		Category:    category,
		IsWindy:     demo.Windy,
		ShowLeaves:  demo.Leaves && !demo.Night,
		ShowSnow:    demo.Snow,
		ShowClouds:  demo.Clouds,
		Background:  Background(category, demo.Night),
		Alerts:      Alerts(category, temp, wind),
		Tip:         SelectTip(category, temp, wind, demo.Windy),
		TempUnit:    unit,
		Temperature: Convert(temp, unit),
		FeelsLike:   Convert(c.FeelsLike, unit),
		TempMin:     Convert(c.TempMin, unit),
		TempMax:     Convert(c.TempMax, unit),
		WindSpeed:   wind,
		Demo:        true,
	}
}

// DemoTemperature is the preview temperature for a demo category.
func DemoTemperature(category weather.Category) int {
	switch category {
	case weather.CategoryHot:
		return 38
	case weather.CategorySnow:
		return -5
	case weather.CategoryFoggy:
		return 8
	case weather.CategoryRainy:
		return 15
	case weather.CategoryThunderstorm:
		return 18
	case weather.CategoryClearNight:
		return 16
	case weather.CategoryCloudy:
		return 20
	default:
		return 22
	}
}

func Convert(celsius int, unit Unit) int {
	if unit == Fahrenheit {
		return int(math.Round(float64(celsius)*9/5 + 32))
	}
	return celsius
}

func Background(category weather.Category, isNight bool) string {
	pick := func(night, day string) string {
		if isNight {
			return night
		}
		return day
	}

	switch category {
	case weather.CategoryRainy:
		return pick("linear-gradient(180deg, #0a0a14 0%, #1a1a2e 100%)", "linear-gradient(180deg, #1a1a2e 0%, #2d3561 100%)")
	case weather.CategoryThunderstorm:
		return pick("linear-gradient(180deg, #000000 0%, #0f0f1e 100%)", "linear-gradient(180deg, #0f0f1e 0%, #1a1a2e 100%)")
	case weather.CategorySnow:
		return pick("linear-gradient(180deg, #1e293b 0%, #334155 100%)", "linear-gradient(180deg, #cbd5e1 0%, #e2e8f0 100%)")
	case weather.CategoryHot:
		return "linear-gradient(180deg, #ff6b35 0%, #f7931e 50%, #ffd700 100%)"
	case weather.CategoryClearNight:
		return "linear-gradient(180deg, #0f0f1e 0%, #1e1e3f 100%)"
	case weather.CategoryFoggy:
		return pick("linear-gradient(180deg, #374151 0%, #4b5563 100%)", "linear-gradient(180deg, #9ca3af 0%, #d1d5db 100%)")
	case weather.CategoryCloudy:
		return pick("linear-gradient(180deg, #1f2937 0%, #374151 100%)", "linear-gradient(180deg, #4a5568 0%, #718096 100%)")
	default:
		return "linear-gradient(180deg, #87ceeb 0%, #b0d4f1 100%)"
	}
}
