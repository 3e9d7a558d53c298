package client

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/influencerflow/backend/internal/domain/search"
	"github.com/influencerflow/backend/pkg/xcontext"
)

type SearchCaller interface {
	IndexInfluencer(ctx context.Context, id string, data search.InfluencerData) error
	DeleteInfluencer(ctx context.Context, id string) error
	SearchInfluencers(ctx context.Context, query string, maxBudget *float64, limit int) ([]search.Hit, error)
	Close()
}

type searchCaller struct {
	client *rpc.Client
}

func NewSearchCaller(client *rpc.Client) *searchCaller {
	return &searchCaller{client: client}
}

func (c *searchCaller) IndexInfluencer(ctx context.Context, id string, data search.InfluencerData) error {
	return c.client.CallContext(ctx, nil, c.fname(ctx, "index"), search.InfluencerDoc, id, data)
}

func (c *searchCaller) DeleteInfluencer(ctx context.Context, id string) error {
	return c.client.CallContext(ctx, nil, c.fname(ctx, "delete"), search.InfluencerDoc, id)
}

func (c *searchCaller) SearchInfluencers(
	ctx context.Context, query string, maxBudget *float64, limit int,
) ([]search.Hit, error) {
	var result []search.Hit
	err := c.client.CallContext(ctx, &result, c.fname(ctx, "searchInfluencers"), query, maxBudget, 0, limit)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *searchCaller) Close() {
	c.client.Close()
}

func (c *searchCaller) fname(ctx context.Context, funcName string) string {
	return fmt.Sprintf("%s_%s", xcontext.Configs(ctx).SearchServer.RPCName, funcName)
}
