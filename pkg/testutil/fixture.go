package testutil

import (
	"context"
	"database/sql"

	"github.com/influencerflow/backend/internal/entity"
	"github.com/influencerflow/backend/internal/repository"
)

var (
	// Influencer1 posts fitness content and charges 200 per post.
	Influencer1 = &entity.Influencer{
		Base:           entity.Base{ID: "influencer1"},
		Name:           "Anna Fit",
		Username:       "annafit",
		Bio:            sql.NullString{String: "Fitness coach sharing daily workouts", Valid: true},
		Location:       sql.NullString{String: "Berlin", Valid: true},
		Categories:     entity.Array[string]{"fitness", "health"},
		Platforms:      entity.Array[string]{"instagram", "tiktok"},
		Languages:      entity.Array[string]{"en", "de"},
		FollowerCount:  120000,
		EngagementRate: 4.2,
		RatePerPost:    sql.NullFloat64{Float64: 200, Valid: true},
		Verified:       true,
	}

	// Influencer2 posts travel content and charges 1500 per post.
	Influencer2 = &entity.Influencer{
		Base:           entity.Base{ID: "influencer2"},
		Name:           "Tom Travels",
		Username:       "tomtravels",
		Bio:            sql.NullString{String: "Backpacking around the world", Valid: true},
		Categories:     entity.Array[string]{"travel"},
		Platforms:      entity.Array[string]{"youtube"},
		Languages:      entity.Array[string]{"en"},
		FollowerCount:  560000,
		EngagementRate: 2.8,
		RatePerPost:    sql.NullFloat64{Float64: 1500, Valid: true},
	}

	// Influencer3 has no rate.
	Influencer3 = &entity.Influencer{
		Base:          entity.Base{ID: "influencer3"},
		Name:          "Eats With Mia",
		Username:      "eatswithmia",
		Categories:    entity.Array[string]{"food"},
		Platforms:     entity.Array[string]{"tiktok"},
		FollowerCount: 8000,
	}

	Influencers = []*entity.Influencer{Influencer1, Influencer2, Influencer3}
)

func CreateFixtureContext() context.Context {
	ctx := MockContext()
	InsertInfluencers(ctx)
	return ctx
}

func InsertInfluencers(ctx context.Context) {
	influencerRepo := repository.NewInfluencerRepository()
	for _, influencer := range Influencers {
		// Create fills timestamps in place, so insert a copy.
		data := *influencer
		if err := influencerRepo.Create(ctx, &data); err != nil {
			panic(err)
		}
	}
}
