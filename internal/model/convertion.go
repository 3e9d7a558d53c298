package model

import (
	"database/sql"
	"time"

	"github.com/influencerflow/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertInfluencer(influencer *entity.Influencer) Influencer {
	if influencer == nil {
		return Influencer{}
	}

	return Influencer{
		ID:                 influencer.ID,
		Name:               influencer.Name,
		Username:           influencer.Username,
		Bio:                influencer.Bio.String,
		AvatarURL:          influencer.AvatarURL.String,
		Location:           influencer.Location.String,
		Categories:         nonNilStrings(influencer.Categories),
		Platforms:          nonNilStrings(influencer.Platforms),
		Languages:          nonNilStrings(influencer.Languages),
		FollowerCount:      influencer.FollowerCount,
		EngagementRate:     influencer.EngagementRate,
		InstagramFollowers: influencer.InstagramFollowers.Int64,
		TiktokFollowers:    influencer.TiktokFollowers.Int64,
		TwitterFollowers:   influencer.TwitterFollowers.Int64,
		YoutubeFollowers:   influencer.YoutubeFollowers.Int64,
		WeeklyPosts:        influencer.WeeklyPosts.Int64,
		RatePerPost:        convertNullFloat(influencer.RatePerPost),
		Verified:           influencer.Verified,
	}
}

func ConvertSearchResult(influencer *entity.Influencer, score float64) SearchResult {
	return SearchResult{
		Influencer:     ConvertInfluencer(influencer),
		RelevanceScore: score,
	}
}

func ConvertFavorite(favorite *entity.Favorite) Favorite {
	if favorite == nil {
		return Favorite{}
	}

	return Favorite{
		InfluencerID: favorite.InfluencerID,
		CreatedAt:    favorite.CreatedAt.Format(DefaultTimeLayout),
		Influencer:   ConvertInfluencer(&favorite.Influencer),
	}
}

func ConvertProfile(profile *entity.Profile) Profile {
	if profile == nil {
		return Profile{}
	}

	return Profile{
		ID:        profile.ID,
		Email:     profile.Email.String,
		FullName:  profile.FullName.String,
		AvatarURL: profile.AvatarURL.String,
		Role:      profile.Role.String,
	}
}

func convertNullFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}

	v := f.Float64
	return &v
}

func nonNilStrings(a []string) []string {
	if a == nil {
		return []string{}
	}

	return a
}
