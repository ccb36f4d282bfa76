package recentsearch

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const DefaultLimit = 10

type Repository interface {
	Add(ctx context.Context, userID, city, country string) error
	List(ctx context.Context, userID string, limit int) ([]RecentSearch, error)
	Clear(ctx context.Context, userID string) error
}

type RecentSearchSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &RecentSearchSQLRepository{db: db}
}

func (r *RecentSearchSQLRepository) Add(ctx context.Context, userID, city, country string) error {
	search := RecentSearch{
		UserID:     userID,
		City:       city,
		Country:    country,
		SearchedAt: time.Now(),
	}

	return r.db.WithContext(ctx).Create(&search).Error
}

func (r *RecentSearchSQLRepository) List(ctx context.Context, userID string, limit int) ([]RecentSearch, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	searches := []RecentSearch{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("searched_at DESC").
		Limit(limit).
		Find(&searches).Error
	if err != nil {
		return nil, err
	}
	return searches, nil
}

func (r *RecentSearchSQLRepository) Clear(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&RecentSearch{}).Error
}
