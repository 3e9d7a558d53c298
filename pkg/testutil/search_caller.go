package testutil

import (
	"context"
	"errors"

	"github.com/influencerflow/backend/internal/domain/search"
)

type MockSearchCaller struct {
	IndexInfluencerFunc   func(ctx context.Context, id string, data search.InfluencerData) error
	DeleteInfluencerFunc  func(ctx context.Context, id string) error
	SearchInfluencersFunc func(ctx context.Context, query string, maxBudget *float64, limit int) ([]search.Hit, error)
}

func (c *MockSearchCaller) IndexInfluencer(ctx context.Context, id string, data search.InfluencerData) error {
	if c.IndexInfluencerFunc != nil {
		return c.IndexInfluencerFunc(ctx, id, data)
	}

	return nil
}

func (c *MockSearchCaller) DeleteInfluencer(ctx context.Context, id string) error {
	if c.DeleteInfluencerFunc != nil {
		return c.DeleteInfluencerFunc(ctx, id)
	}

	return nil
}

func (c *MockSearchCaller) SearchInfluencers(
	ctx context.Context, query string, maxBudget *float64, limit int,
) ([]search.Hit, error) {
	if c.SearchInfluencersFunc != nil {
		return c.SearchInfluencersFunc(ctx, query, maxBudget, limit)
	}

	return nil, errors.New("not implemented")
}

func (c *MockSearchCaller) Close() {}
