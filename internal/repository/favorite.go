package repository

import (
	"context"
	"errors"

	"github.com/influencerflow/backend/internal/entity"
	"github.com/influencerflow/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	Create(ctx context.Context, data *entity.Favorite) error
	Delete(ctx context.Context, userID, influencerID string) error
	GetListByUserID(ctx context.Context, userID string, offset, limit int) ([]entity.Favorite, error)
}

type favoriteRepository struct{}

func NewFavoriteRepository() *favoriteRepository {
	return &favoriteRepository{}
}

// Create inserts the pair. A second insert of the same pair fails with an
// error recognized by IsDuplicateKey.
func (r *favoriteRepository) Create(ctx context.Context, data *entity.Favorite) error {
	return xcontext.DB(ctx).Omit(clause.Associations).Create(data).Error
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, influencerID string) error {
	tx := xcontext.DB(ctx).
		Where("user_id=? AND influencer_id=?", userID, influencerID).
		Delete(&entity.Favorite{})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *favoriteRepository) GetListByUserID(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.Favorite, error) {
	var result []entity.Favorite
	err := xcontext.DB(ctx).
		Preload("Influencer").
		Where("user_id=?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
