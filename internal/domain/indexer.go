package domain

import (
	"context"
	"errors"

	"github.com/influencerflow/backend/internal/client"
	"github.com/influencerflow/backend/internal/domain/search"
	"github.com/influencerflow/backend/internal/entity"
	"github.com/influencerflow/backend/internal/repository"
	"github.com/influencerflow/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const indexBatchSize = 100

type IndexerDomain interface {
	IndexAll(ctx context.Context) (int, error)
	Remove(ctx context.Context, ids []string) (int, error)
}

type indexerDomain struct {
	influencerRepo repository.InfluencerRepository
	searchCaller   client.SearchCaller
}

func NewIndexerDomain(
	influencerRepo repository.InfluencerRepository,
	searchCaller client.SearchCaller,
) *indexerDomain {
	return &indexerDomain{
		influencerRepo: influencerRepo,
		searchCaller:   searchCaller,
	}
}

// IndexAll pushes every influencer row to the search service and returns the
// number of indexed rows.
func (d *indexerDomain) IndexAll(ctx context.Context) (int, error) {
	count, err := d.influencerRepo.Count(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for offset := 0; ; offset += indexBatchSize {
		influencers, err := d.influencerRepo.GetList(ctx, offset, indexBatchSize)
		if err != nil {
			return total, err
		}

		for i := range influencers {
			err := d.searchCaller.IndexInfluencer(ctx, influencers[i].ID, toInfluencerData(&influencers[i]))
			if err != nil {
				return total, err
			}
			total++
		}

		xcontext.Logger(ctx).Infof("Indexed %d/%d influencers", total, count)
		if len(influencers) < indexBatchSize {
			return total, nil
		}
	}
}

// Remove drops influencers which were deleted from the database from the
// search index. Ids still present in the database are kept and skipped.
func (d *indexerDomain) Remove(ctx context.Context, ids []string) (int, error) {
	removed := 0
	for _, id := range ids {
		_, err := d.influencerRepo.GetByID(ctx, id)
		if err == nil {
			xcontext.Logger(ctx).Warnf("Influencer %s still exists, it is kept in the index", id)
			continue
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return removed, err
		}

		if err := d.searchCaller.DeleteInfluencer(ctx, id); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}

func toInfluencerData(influencer *entity.Influencer) search.InfluencerData {
	return search.InfluencerData{
		Name:        influencer.Name,
		Username:    influencer.Username,
		Bio:         influencer.Bio.String,
		Location:    influencer.Location.String,
		Categories:  influencer.Categories,
		Platforms:   influencer.Platforms,
		Languages:   influencer.Languages,
		RatePerPost: influencer.RatePerPost.Float64,
		HasRate:     influencer.RatePerPost.Valid,
	}
}
