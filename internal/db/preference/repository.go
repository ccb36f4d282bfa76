package preference

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Get(ctx context.Context, userID string) (UserPreference, error)
	SetTemperatureUnit(ctx context.Context, userID, unit string) (UserPreference, error)
}

type PreferenceSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &PreferenceSQLRepository{db: db}
}

// Get returns the stored preference, or the defaults when the user has none yet.
func (r *PreferenceSQLRepository) Get(ctx context.Context, userID string) (UserPreference, error) {
	var pref UserPreference
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return UserPreference{UserID: userID, TemperatureUnit: DefaultTemperatureUnit}, nil
	}
	if err != nil {
		return UserPreference{}, err
	}
	return pref, nil
}

func (r *PreferenceSQLRepository) SetTemperatureUnit(ctx context.Context, userID, unit string) (UserPreference, error) {
	pref := UserPreference{UserID: userID, TemperatureUnit: unit}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"temperature_unit", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return UserPreference{}, err
	}
	return pref, nil
}
