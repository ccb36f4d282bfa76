package favorite

import (
	"time"
)

type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"-" gorm:"column:user_id;uniqueIndex:idx_favorites_user_city_country"`
	City      string    `json:"city" gorm:"size:255;uniqueIndex:idx_favorites_user_city_country"`
	Country   string    `json:"country" gorm:"size:255;uniqueIndex:idx_favorites_user_city_country"`
	Nickname  *string   `json:"nickname" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
