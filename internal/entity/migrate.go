package entity

import (
	"context"

	"github.com/influencerflow/backend/pkg/xcontext"
)

// MigrateTable creates every table with gorm. Production databases are
// migrated by the versioned SQL files instead.
func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&Influencer{},
		&Favorite{},
		&Profile{},
	)
}
