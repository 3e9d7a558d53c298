package entity

import "time"

type Favorite struct {
	ID        string `gorm:"primaryKey;size:36"`
	CreatedAt time.Time

	UserID string `gorm:"size:36;not null;uniqueIndex:idx_favorites_user_influencer"`

	InfluencerID string     `gorm:"size:36;not null;uniqueIndex:idx_favorites_user_influencer"`
	Influencer   Influencer `gorm:"foreignKey:InfluencerID"`
}
