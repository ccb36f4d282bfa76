package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("favorite not found")

type Repository interface {
	List(ctx context.Context, userID string) ([]Favorite, error)
	// Add reports false when the city is already a favorite of the user.
	Add(ctx context.Context, userID, city, country string, nickname *string) (bool, error)
	UpdateNickname(ctx context.Context, userID string, id uint, nickname *string) error
	Delete(ctx context.Context, userID string, id uint) error
	Cities(ctx context.Context) ([]string, error)
}

type FavoriteSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &FavoriteSQLRepository{db: db}
}

func (r *FavoriteSQLRepository) List(ctx context.Context, userID string) ([]Favorite, error) {
	favorites := []Favorite{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *FavoriteSQLRepository) Add(ctx context.Context, userID, city, country string, nickname *string) (bool, error) {
	var existing Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND city = ? AND country = ?", userID, city, country).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	fav := Favorite{
		UserID:   userID,
		City:     city,
		Country:  country,
		Nickname: nickname,
	}
	if err := r.db.WithContext(ctx).Create(&fav).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *FavoriteSQLRepository) UpdateNickname(ctx context.Context, userID string, id uint, nickname *string) error {
	result := r.db.WithContext(ctx).
		Model(&Favorite{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("nickname", nickname)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FavoriteSQLRepository) Delete(ctx context.Context, userID string, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Cities lists the distinct favorite cities across all users.
func (r *FavoriteSQLRepository) Cities(ctx context.Context) ([]string, error) {
	var cities []string
	err := r.db.WithContext(ctx).Model(&Favorite{}).Distinct("city").Order("city").Pluck("city", &cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}
