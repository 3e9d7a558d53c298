package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/influencerflow/backend/internal/entity"
	"github.com/influencerflow/backend/internal/repository"
	"github.com/influencerflow/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFavoriteRepository_CreateDuplicate(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	repo := repository.NewFavoriteRepository()

	err := repo.Create(ctx, &entity.Favorite{ID: "f1", UserID: "user1", InfluencerID: testutil.Influencer1.ID})
	require.NoError(t, err)

	err = repo.Create(ctx, &entity.Favorite{ID: "f2", UserID: "user1", InfluencerID: testutil.Influencer1.ID})
	require.Error(t, err)
	require.True(t, repository.IsDuplicateKey(err))

	favorites, err := repo.GetListByUserID(ctx, "user1", 0, 10)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	require.Equal(t, testutil.Influencer1.Name, favorites[0].Influencer.Name)
}

func TestFavoriteRepository_DeleteNotFound(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	repo := repository.NewFavoriteRepository()

	err := repo.Delete(ctx, "user1", testutil.Influencer1.ID)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestIsDuplicateKey(t *testing.T) {
	require.False(t, repository.IsDuplicateKey(nil))
	require.False(t, repository.IsDuplicateKey(errors.New("connection refused")))
	require.False(t, repository.IsDuplicateKey(errors.New("influencer 23505 not found")))
	require.True(t, repository.IsDuplicateKey(fmt.Errorf("cannot add: %w", &mysql.MySQLError{Number: 1062})))
	require.False(t, repository.IsDuplicateKey(&mysql.MySQLError{Number: 1045}))
}
