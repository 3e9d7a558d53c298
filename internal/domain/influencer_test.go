package domain

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/influencerflow/backend/internal/domain/search"
	"github.com/influencerflow/backend/internal/model"
	"github.com/influencerflow/backend/internal/repository"
	"github.com/influencerflow/backend/pkg/errorx"
	"github.com/influencerflow/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_influencerDomain_Search_EmptyQuery(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	called := false
	searchCaller := &testutil.MockSearchCaller{
		SearchInfluencersFunc: func(ctx context.Context, query string, maxBudget *float64, limit int) ([]search.Hit, error) {
			called = true
			return nil, nil
		},
	}

	domain := NewInfluencerDomain(repository.NewInfluencerRepository(), searchCaller, nil)
	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := domain.Search(ctx, &model.SearchInfluencersRequest{Q: q})
		require.ErrorIs(t, err, errorx.New(errorx.BadRequest, "Please enter a search query"))
	}

	require.False(t, called)
}

func Test_influencerDomain_Search_KeepsHitOrder(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	budget := 2000.0
	searchCaller := &testutil.MockSearchCaller{
		SearchInfluencersFunc: func(ctx context.Context, query string, maxBudget *float64, limit int) ([]search.Hit, error) {
			require.Equal(t, "creators", query)
			require.Equal(t, &budget, maxBudget)
			return []search.Hit{
				{ID: testutil.Influencer3.ID, Score: 0.9},
				{ID: "deleted-influencer", Score: 0.8},
				{ID: testutil.Influencer1.ID, Score: 0.5},
			}, nil
		},
	}

	domain := NewInfluencerDomain(repository.NewInfluencerRepository(), searchCaller, nil)
	resp, err := domain.Search(ctx, &model.SearchInfluencersRequest{Q: "  creators ", MaxBudget: &budget})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	require.Equal(t, testutil.Influencer3.ID, resp.Results[0].ID)
	require.Equal(t, 0.9, resp.Results[0].RelevanceScore)
	require.Nil(t, resp.Results[0].RatePerPost)
	require.Equal(t, testutil.Influencer1.ID, resp.Results[1].ID)
	require.Equal(t, 0.5, resp.Results[1].RelevanceScore)
	require.Equal(t, 200.0, *resp.Results[1].RatePerPost)
}

func Test_influencerDomain_Search_ServiceError(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	searchCaller := &testutil.MockSearchCaller{
		SearchInfluencersFunc: func(ctx context.Context, query string, maxBudget *float64, limit int) ([]search.Hit, error) {
			return nil, errors.New("connection refused")
		},
	}

	domain := NewInfluencerDomain(repository.NewInfluencerRepository(), searchCaller, nil)
	_, err := domain.Search(ctx, &model.SearchInfluencersRequest{Q: "fitness"})
	require.ErrorIs(t, err, errorx.New(errorx.Unavailable, ""))
}

func Test_influencerDomain_Search_NegativeBudget(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	budget := -1.0
	domain := NewInfluencerDomain(repository.NewInfluencerRepository(), &testutil.MockSearchCaller{}, nil)
	_, err := domain.Search(ctx, &model.SearchInfluencersRequest{Q: "fitness", MaxBudget: &budget})
	require.ErrorIs(t, err, errorx.New(errorx.BadRequest, ""))
}

func Test_influencerDomain_Search_Cache(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	var calls int32
	searchCaller := &testutil.MockSearchCaller{
		SearchInfluencersFunc: func(ctx context.Context, query string, maxBudget *float64, limit int) ([]search.Hit, error) {
			atomic.AddInt32(&calls, 1)
			return []search.Hit{{ID: testutil.Influencer1.ID, Score: 1}}, nil
		},
	}

	cached := map[string][]model.SearchResult{}
	redisClient := &testutil.MockRedisClient{
		SetObjFunc: func(ctx context.Context, key string, obj any, ttl time.Duration) error {
			require.Equal(t, time.Minute, ttl)
			cached[key] = obj.([]model.SearchResult)
			return nil
		},
		GetObjFunc: func(ctx context.Context, key string, v any) error {
			results, ok := cached[key]
			if !ok {
				return errors.New("unavailable")
			}

			*(v.(*[]model.SearchResult)) = results
			return nil
		},
	}

	domain := NewInfluencerDomain(repository.NewInfluencerRepository(), searchCaller, redisClient)
	first, err := domain.Search(ctx, &model.SearchInfluencersRequest{Q: "fitness"})
	require.NoError(t, err)

	second, err := domain.Search(ctx, &model.SearchInfluencersRequest{Q: "fitness"})
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))

	budget := 100.0
	_, err = domain.Search(ctx, &model.SearchInfluencersRequest{Q: "fitness", MaxBudget: &budget})
	require.NoError(t, err)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func Test_influencerDomain_Get(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	domain := NewInfluencerDomain(repository.NewInfluencerRepository(), &testutil.MockSearchCaller{}, nil)

	type args struct {
		req *model.GetInfluencerRequest
	}

	tests := []struct {
		name    string
		args    args
		wantID  string
		wantErr error
	}{
		{
			name:   "happy case",
			args:   args{req: &model.GetInfluencerRequest{ID: testutil.Influencer2.ID}},
			wantID: testutil.Influencer2.ID,
		},
		{
			name:    "empty id",
			args:    args{req: &model.GetInfluencerRequest{}},
			wantErr: errorx.New(errorx.BadRequest, "Not allow an empty id"),
		},
		{
			name:    "not found",
			args:    args{req: &model.GetInfluencerRequest{ID: "invalid-id"}},
			wantErr: errorx.New(errorx.NotFound, "Influencer not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.Get(ctx, tt.args.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantID, got.ID)
			require.Equal(t, []string{"travel"}, got.Categories)
		})
	}
}
