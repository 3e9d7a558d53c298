package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/influencerflow/backend/internal/entity"
	"github.com/influencerflow/backend/internal/model"
	"github.com/influencerflow/backend/internal/repository"
	"github.com/influencerflow/backend/pkg/errorx"
	"github.com/influencerflow/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type FavoriteDomain interface {
	Add(context.Context, *model.AddFavoriteRequest) (*model.AddFavoriteResponse, error)
	Remove(context.Context, *model.RemoveFavoriteRequest) (*model.RemoveFavoriteResponse, error)
	GetMyList(context.Context, *model.GetMyFavoritesRequest) (*model.GetMyFavoritesResponse, error)
}

type favoriteDomain struct {
	favoriteRepo   repository.FavoriteRepository
	influencerRepo repository.InfluencerRepository
}

func NewFavoriteDomain(
	favoriteRepo repository.FavoriteRepository,
	influencerRepo repository.InfluencerRepository,
) *favoriteDomain {
	return &favoriteDomain{
		favoriteRepo:   favoriteRepo,
		influencerRepo: influencerRepo,
	}
}

func (d *favoriteDomain) Add(
	ctx context.Context, req *model.AddFavoriteRequest,
) (*model.AddFavoriteResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Please log in to save favorites")
	}

	if req.InfluencerID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty influencer id")
	}

	if _, err := d.influencerRepo.GetByID(ctx, req.InfluencerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Influencer not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get the influencer: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to add to favorites")
	}

	err := d.favoriteRepo.Create(ctx, &entity.Favorite{
		ID:           uuid.NewString(),
		UserID:       userID,
		InfluencerID: req.InfluencerID,
	})
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, errorx.New(errorx.AlreadyExists, "Already in favorites")
		}

		xcontext.Logger(ctx).Errorf("Cannot add favorite: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to add to favorites")
	}

	return &model.AddFavoriteResponse{Message: "Added to favorites"}, nil
}

func (d *favoriteDomain) Remove(
	ctx context.Context, req *model.RemoveFavoriteRequest,
) (*model.RemoveFavoriteResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Please log in to manage favorites")
	}

	if err := d.favoriteRepo.Delete(ctx, userID, req.InfluencerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not in favorites")
		}

		xcontext.Logger(ctx).Errorf("Cannot remove favorite: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RemoveFavoriteResponse{}, nil
}

func (d *favoriteDomain) GetMyList(
	ctx context.Context, req *model.GetMyFavoritesRequest,
) (*model.GetMyFavoritesResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Please log in to manage favorites")
	}

	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	favorites, err := d.favoriteRepo.GetListByUserID(ctx, userID, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get favorite list: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Favorite{}
	for i := range favorites {
		result = append(result, model.ConvertFavorite(&favorites[i]))
	}

	return &model.GetMyFavoritesResponse{Favorites: result}, nil
}
