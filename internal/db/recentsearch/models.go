package recentsearch

import (
	"time"
)

type RecentSearch struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"-" gorm:"column:user_id;index:idx_recent_user_searched_at"`
	City       string    `json:"city" gorm:"size:255"`
	Country    string    `json:"country,omitempty" gorm:"size:2"`
	SearchedAt time.Time `json:"searched_at" gorm:"index:idx_recent_user_searched_at"`
}

func (RecentSearch) TableName() string {
	return "recent_searches"
}
