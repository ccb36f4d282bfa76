package cacheentry

import (
	"time"
)

type CacheEntry struct {
	ID        uint      `gorm:"primaryKey"`
	Key       string    `gorm:"column:cache_key;size:512;uniqueIndex"`
	Payload   []byte    `gorm:"column:payload"`
	FetchedAt time.Time `gorm:"column:fetched_at"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
}

func (CacheEntry) TableName() string {
	return "weather_cache_entries"
}
