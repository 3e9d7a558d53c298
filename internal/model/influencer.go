package model

type Influencer struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Username           string   `json:"username"`
	Bio                string   `json:"bio"`
	AvatarURL          string   `json:"avatar_url"`
	Location           string   `json:"location"`
	Categories         []string `json:"categories"`
	Platforms          []string `json:"platforms"`
	Languages          []string `json:"languages"`
	FollowerCount      int64    `json:"follower_count"`
	EngagementRate     float64  `json:"engagement_rate"`
	InstagramFollowers int64    `json:"instagram_followers"`
	TiktokFollowers    int64    `json:"tiktok_followers"`
	TwitterFollowers   int64    `json:"twitter_followers"`
	YoutubeFollowers   int64    `json:"youtube_followers"`
	WeeklyPosts        int64    `json:"weekly_posts"`
	RatePerPost        *float64 `json:"rate_per_post"`
	Verified           bool     `json:"verified"`
}

// SearchResult is an influencer with the relevance score computed by the
// search service. It is never persisted.
type SearchResult struct {
	Influencer
	RelevanceScore float64 `json:"relevance_score"`
}

type SearchInfluencersRequest struct {
	Q         string   `json:"q" form:"q"`
	MaxBudget *float64 `json:"max_budget" form:"max_budget"`
}

type SearchInfluencersResponse struct {
	Results []SearchResult `json:"results"`
}

type GetInfluencerRequest struct {
	ID string `json:"id" form:"id"`
}

type GetInfluencerResponse Influencer
