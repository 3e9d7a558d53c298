package main

import (
	"context"
	"net/http"

	"github.com/influencerflow/backend/internal/client"
	"github.com/influencerflow/backend/internal/domain"
	"github.com/influencerflow/backend/internal/repository"
	"github.com/influencerflow/backend/pkg/api/mailgun"
	"github.com/influencerflow/backend/pkg/api/vapi"
	"github.com/influencerflow/backend/pkg/pubsub"
	"github.com/influencerflow/backend/pkg/router"
	"github.com/influencerflow/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
)

type srv struct {
	app *cli.App
	ctx context.Context

	server *http.Server
	router *router.Router

	influencerRepo repository.InfluencerRepository
	favoriteRepo   repository.FavoriteRepository
	profileRepo    repository.ProfileRepository

	searchCaller client.SearchCaller
	redisClient  xredis.Client
	publisher    pubsub.Publisher

	vapiEndpoint    vapi.IEndpoint
	mailgunEndpoint mailgun.IEndpoint

	influencerDomain domain.InfluencerDomain
	favoriteDomain   domain.FavoriteDomain
	profileDomain    domain.ProfileDomain
	outreachDomain   domain.OutreachDomain
	indexerDomain    domain.IndexerDomain
}
