package presentation

import (
	"clim8bit/weather-service/internal/weather"
)

type AlertLevel string

const (
	LevelWarning AlertLevel = "warning"
	LevelInfo    AlertLevel = "info"
)

type Alert struct {
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
	Tip     string     `json:"tip"`
}

type Tip struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// Alerts returns every matching alert: at most one temperature-high, one temperature-low,
// one category and one wind alert, in that order.
func Alerts(category weather.Category, temp, windSpeed int) []Alert {
	alerts := make([]Alert, 0, 3)

	switch {
	case temp > 35:
		alerts = append(alerts, Alert{LevelWarning, "EXTREME HEAT WARNING", "Stay hydrated, avoid prolonged sun exposure, and stay in air-conditioned areas."})
	case temp > 30:
		alerts = append(alerts, Alert{LevelWarning, "HIGH TEMPERATURE WARNING", "Drink plenty of water and limit outdoor activities during peak hours."})
	case temp >= 28:
		alerts = append(alerts, Alert{LevelInfo, "HOT WEATHER ADVISORY", "Stay cool, drink water regularly, and avoid strenuous outdoor activities."})
	}

	switch {
	case temp < 0:
		alerts = append(alerts, Alert{LevelWarning, "FREEZING CONDITIONS", "Dress in layers, protect exposed skin, and watch for icy surfaces."})
	case temp < 5:
		alerts = append(alerts, Alert{LevelInfo, "COLD WEATHER ADVISORY", "Wear warm clothing and be careful of slippery roads."})
	}

	switch category {
	case weather.CategoryThunderstorm:
		alerts = append(alerts, Alert{LevelWarning, "THUNDERSTORM WARNING", "Stay indoors, avoid open areas, and unplug electronics. Do not use corded phones."})
	case weather.CategoryRainy:
		alerts = append(alerts, Alert{LevelInfo, "RAINY CONDITIONS", "Drive carefully with headlights on. Allow extra time for travel and avoid flooded areas."})
	case weather.CategorySnow:
		alerts = append(alerts, Alert{LevelWarning, "SNOW CONDITIONS", "Drive slowly, maintain safe distance from other vehicles, and keep emergency supplies in your car."})
	case weather.CategoryFoggy:
		alerts = append(alerts, Alert{LevelWarning, "LOW VISIBILITY", "Use low-beam headlights and fog lights. Drive slowly and increase following distance."})
	case weather.CategoryHot:
		if temp < 28 {
			alerts = append(alerts, Alert{LevelInfo, "SUNNY CONDITIONS", "Wear sunscreen, sunglasses, and stay hydrated when outdoors."})
		}
	}

	switch {
	case windSpeed > 40:
		alerts = append(alerts, Alert{LevelWarning, "HIGH WIND WARNING", "Secure loose objects outdoors. Avoid parking under trees and be cautious while driving."})
	case windSpeed > 25:
		alerts = append(alerts, Alert{LevelInfo, "WINDY CONDITIONS", "Be aware of flying debris and exercise caution when driving high-profile vehicles."})
	}

	return alerts
}

// SelectTip returns the first matching tip, or nil.
func SelectTip(category weather.Category, temp, windSpeed int, isWindy bool) *Tip {
	switch {
	case category == weather.CategoryRainy:
		return &Tip{"umbrella", "BRING UMBRELLA"}
	case category == weather.CategoryThunderstorm:
		return &Tip{"umbrella", "STAY INDOORS • BRING UMBRELLA"}
	case category == weather.CategorySnow:
		return &Tip{"jacket", "WEAR WARM COAT • BOOTS"}
	case temp >= 30:
		return &Tip{"sunglasses", "SUNSCREEN • STAY HYDRATED"}
	case temp >= 25:
		return &Tip{"shirt", "LIGHT CLOTHING • SUNGLASSES"}
	case temp <= 5:
		return &Tip{"jacket", "BUNDLE UP • GLOVES & SCARF"}
	case temp <= 15:
		return &Tip{"jacket", "WEAR JACKET"}
	case category == weather.CategoryFoggy:
		return &Tip{"fog", "DRIVE CAREFULLY • VISIBILITY LOW"}
	case isWindy || windSpeed > 30:
		return &Tip{"windSpeed", "WINDY • SECURE LOOSE ITEMS"}
	}
	return nil
}
