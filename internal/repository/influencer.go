package repository

import (
	"context"

	"github.com/influencerflow/backend/internal/entity"
	"github.com/influencerflow/backend/pkg/xcontext"
)

type InfluencerRepository interface {
	Create(ctx context.Context, data *entity.Influencer) error
	GetByID(ctx context.Context, id string) (*entity.Influencer, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Influencer, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.Influencer, error)
	Count(ctx context.Context) (int64, error)
}

type influencerRepository struct{}

func NewInfluencerRepository() *influencerRepository {
	return &influencerRepository{}
}

func (r *influencerRepository) Create(ctx context.Context, data *entity.Influencer) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *influencerRepository) GetByID(ctx context.Context, id string) (*entity.Influencer, error) {
	var result entity.Influencer
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *influencerRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Influencer, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var result []entity.Influencer
	if err := xcontext.DB(ctx).Where("id IN (?)", ids).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *influencerRepository) GetList(ctx context.Context, offset, limit int) ([]entity.Influencer, error) {
	var result []entity.Influencer
	err := xcontext.DB(ctx).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *influencerRepository) Count(ctx context.Context) (int64, error) {
	var result int64
	if err := xcontext.DB(ctx).Model(&entity.Influencer{}).Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}
