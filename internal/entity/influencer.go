package entity

import "database/sql"

type Influencer struct {
	Base

	Name      string
	Username  string `gorm:"unique;size:128"`
	Bio       sql.NullString
	AvatarURL sql.NullString
	Location  sql.NullString

	Categories Array[string]
	Platforms  Array[string]
	Languages  Array[string]

	FollowerCount      int64
	EngagementRate     float64
	InstagramFollowers sql.NullInt64
	TiktokFollowers    sql.NullInt64
	TwitterFollowers   sql.NullInt64
	YoutubeFollowers   sql.NullInt64
	WeeklyPosts        sql.NullInt64

	RatePerPost sql.NullFloat64
	Verified    bool
}
