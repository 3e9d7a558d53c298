package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/influencerflow/backend/internal/domain/search"
	"github.com/influencerflow/backend/internal/repository"
	"github.com/influencerflow/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_indexerDomain_IndexAll(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	indexed := map[string]search.InfluencerData{}
	searchCaller := &testutil.MockSearchCaller{
		IndexInfluencerFunc: func(ctx context.Context, id string, data search.InfluencerData) error {
			indexed[id] = data
			return nil
		},
	}

	domain := NewIndexerDomain(repository.NewInfluencerRepository(), searchCaller)
	total, err := domain.IndexAll(ctx)
	require.NoError(t, err)
	require.Equal(t, len(testutil.Influencers), total)

	require.True(t, indexed[testutil.Influencer1.ID].HasRate)
	require.Equal(t, 200.0, indexed[testutil.Influencer1.ID].RatePerPost)
	require.False(t, indexed[testutil.Influencer3.ID].HasRate)
	require.Equal(t, []string{"food"}, indexed[testutil.Influencer3.ID].Categories)
}

func Test_indexerDomain_IndexAll_Error(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	searchCaller := &testutil.MockSearchCaller{
		IndexInfluencerFunc: func(ctx context.Context, id string, data search.InfluencerData) error {
			return errors.New("search service is down")
		},
	}

	domain := NewIndexerDomain(repository.NewInfluencerRepository(), searchCaller)
	total, err := domain.IndexAll(ctx)
	require.Error(t, err)
	require.Equal(t, 0, total)
}

func Test_indexerDomain_Remove(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	deleted := []string{}
	searchCaller := &testutil.MockSearchCaller{
		DeleteInfluencerFunc: func(ctx context.Context, id string) error {
			deleted = append(deleted, id)
			return nil
		},
	}

	domain := NewIndexerDomain(repository.NewInfluencerRepository(), searchCaller)
	removed, err := domain.Remove(ctx, []string{"gone1", testutil.Influencer1.ID, "gone2"})
	require.NoError(t, err)
	require.Equal(t, 2, removed)
	require.Equal(t, []string{"gone1", "gone2"}, deleted)
}

func Test_indexerDomain_Remove_Error(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	searchCaller := &testutil.MockSearchCaller{
		DeleteInfluencerFunc: func(ctx context.Context, id string) error {
			return errors.New("search service is down")
		},
	}

	domain := NewIndexerDomain(repository.NewInfluencerRepository(), searchCaller)
	removed, err := domain.Remove(ctx, []string{"gone1"})
	require.Error(t, err)
	require.Equal(t, 0, removed)
}
