package weather

import (
	"encoding/json"
	"strings"
	"time"
)

const (
	maxForecastDays = 5
	noonWindowStart = 11
	noonWindowEnd   = 14
)

type forecastPayload struct {
	List *[]struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []conditionPayload `json:"weather"`
	} `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// NormalizeForecast picks one sample per calendar day in loc, the first whose hour
// falls in 11..14, up to five days. A nil loc uses the city's own UTC offset.
func NormalizeForecast(raw []byte, loc *time.Location) ([]ForecastDay, error) {
	if err := checkObject(raw); err != nil {
		return nil, err
	}

	var p forecastPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &InvalidPayloadError{Reason: err.Error()}
	}
	if p.List == nil {
		return nil, &InvalidPayloadError{Reason: "missing list"}
	}

	if loc == nil {
		loc = time.FixedZone(p.City.Name, p.City.Timezone)
	}

	days := make([]ForecastDay, 0, maxForecastDays)
	seen := make(map[string]struct{})

	for _, sample := range *p.List {
		if len(days) == maxForecastDays {
			break
		}
		if len(sample.Weather) == 0 {
			continue
		}

		at := time.Unix(sample.Dt, 0).In(loc)
		date := at.Format("2006-01-02")
		if _, ok := seen[date]; ok {
			continue
		}
		if at.Hour() < noonWindowStart || at.Hour() > noonWindowEnd {
			continue
		}
		seen[date] = struct{}{}

		days = append(days, ForecastDay{
			Day:         strings.ToUpper(at.Format("Mon")),
			Date:        date,
			Temperature: round(sample.Main.Temp),
			Icon:        sample.Weather[0].Icon,
			Main:        sample.Weather[0].Main,
			Description: sample.Weather[0].Description,
		})
	}

	return days, nil
}
