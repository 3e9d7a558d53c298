package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/influencerflow/backend/internal/client"
	"github.com/influencerflow/backend/internal/common"
	"github.com/influencerflow/backend/internal/entity"
	"github.com/influencerflow/backend/internal/model"
	"github.com/influencerflow/backend/internal/repository"
	"github.com/influencerflow/backend/pkg/errorx"
	"github.com/influencerflow/backend/pkg/xcontext"
	"github.com/influencerflow/backend/pkg/xredis"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type InfluencerDomain interface {
	Search(context.Context, *model.SearchInfluencersRequest) (*model.SearchInfluencersResponse, error)
	Get(context.Context, *model.GetInfluencerRequest) (*model.GetInfluencerResponse, error)
}

type influencerDomain struct {
	influencerRepo repository.InfluencerRepository
	searchCaller   client.SearchCaller
	redisClient    xredis.Client
	searchGroup    singleflight.Group
}

// NewInfluencerDomain creates the influencer domain. redisClient may be nil,
// in which case search results are not cached.
func NewInfluencerDomain(
	influencerRepo repository.InfluencerRepository,
	searchCaller client.SearchCaller,
	redisClient xredis.Client,
) *influencerDomain {
	return &influencerDomain{
		influencerRepo: influencerRepo,
		searchCaller:   searchCaller,
		redisClient:    redisClient,
	}
}

func (d *influencerDomain) Search(
	ctx context.Context, req *model.SearchInfluencersRequest,
) (*model.SearchInfluencersResponse, error) {
	query := strings.TrimSpace(req.Q)
	if query == "" {
		return nil, errorx.New(errorx.BadRequest, "Please enter a search query")
	}

	if req.MaxBudget != nil && *req.MaxBudget < 0 {
		return nil, errorx.New(errorx.BadRequest, "Budget must not be negative")
	}

	key := common.RedisKeySearchInfluencers(query, req.MaxBudget)
	if results, ok := d.getCachedResults(ctx, key); ok {
		return &model.SearchInfluencersResponse{Results: results}, nil
	}

	// Identical searches in flight share one call to the search service.
	v, err, _ := d.searchGroup.Do(key, func() (any, error) {
		results, err := d.search(ctx, query, req.MaxBudget)
		if err != nil {
			return nil, err
		}

		d.setCachedResults(ctx, key, results)
		return results, nil
	})
	if err != nil {
		return nil, err
	}

	return &model.SearchInfluencersResponse{Results: v.([]model.SearchResult)}, nil
}

func (d *influencerDomain) search(
	ctx context.Context, query string, maxBudget *float64,
) ([]model.SearchResult, error) {
	hits, err := d.searchCaller.SearchInfluencers(ctx, query, maxBudget, xcontext.Configs(ctx).ApiServer.MaxLimit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call search service: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Search is unavailable, please try again")
	}

	ids := []string{}
	for _, hit := range hits {
		ids = append(ids, hit.ID)
	}

	influencers, err := d.influencerRepo.GetByIDs(ctx, ids)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get influencers by ids: %v", err)
		return nil, errorx.Unknown
	}

	influencerSet := map[string]*entity.Influencer{}
	for i := range influencers {
		influencerSet[influencers[i].ID] = &influencers[i]
	}

	results := []model.SearchResult{}
	for _, hit := range hits {
		influencer, ok := influencerSet[hit.ID]
		if !ok {
			xcontext.Logger(ctx).Warnf("Search hit %s has no influencer row", hit.ID)
			continue
		}

		results = append(results, model.ConvertSearchResult(influencer, hit.Score))
	}

	return results, nil
}

func (d *influencerDomain) getCachedResults(ctx context.Context, key string) ([]model.SearchResult, bool) {
	if d.redisClient == nil {
		return nil, false
	}

	var results []model.SearchResult
	if err := d.redisClient.GetObj(ctx, key, &results); err != nil {
		if !xredis.IsNil(err) {
			xcontext.Logger(ctx).Warnf("Cannot get cached search results: %v", err)
		}

		return nil, false
	}

	return results, true
}

func (d *influencerDomain) setCachedResults(ctx context.Context, key string, results []model.SearchResult) {
	ttl := xcontext.Configs(ctx).Cache.SearchTTL
	if d.redisClient == nil || ttl <= 0 {
		return
	}

	if err := d.redisClient.SetObj(ctx, key, results, ttl); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot cache search results: %v", err)
	}
}

func (d *influencerDomain) Get(
	ctx context.Context, req *model.GetInfluencerRequest,
) (*model.GetInfluencerResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	influencer, err := d.influencerRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Influencer not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get the influencer: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetInfluencerResponse(model.ConvertInfluencer(influencer))
	return &resp, nil
}
