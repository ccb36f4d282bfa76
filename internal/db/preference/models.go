package preference

import (
	"time"
)

const DefaultTemperatureUnit = "C"

type UserPreference struct {
	ID              uint      `json:"-" gorm:"primaryKey"`
	UserID          string    `json:"-" gorm:"column:user_id;uniqueIndex"`
	TemperatureUnit string    `json:"temperature_unit" gorm:"size:1;default:C"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
