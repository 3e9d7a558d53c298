package model

type Favorite struct {
	InfluencerID string     `json:"influencer_id"`
	CreatedAt    string     `json:"created_at"`
	Influencer   Influencer `json:"influencer"`
}

type AddFavoriteRequest struct {
	InfluencerID string `json:"influencer_id" form:"influencer_id"`
}

type AddFavoriteResponse struct {
	Message string `json:"message"`
}

type RemoveFavoriteRequest struct {
	InfluencerID string `json:"influencer_id" form:"influencer_id"`
}

type RemoveFavoriteResponse struct{}

type GetMyFavoritesRequest struct {
	Offset int `json:"offset" form:"offset"`
	Limit  int `json:"limit" form:"limit"`
}

type GetMyFavoritesResponse struct {
	Favorites []Favorite `json:"favorites"`
}
