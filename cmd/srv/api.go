package main

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/influencerflow/backend/internal/middleware"
	"github.com/influencerflow/backend/pkg/router"
	"github.com/influencerflow/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadDatabase()
	s.loadRepos()
	s.loadSearchCaller()
	s.loadRedisClient()
	s.loadPublisher()
	s.loadEndpoints()
	s.loadDomains()
	s.loadRouter()

	defer s.searchCaller.Close()
	defer s.publisher.Stop(s.ctx)

	cfg := xcontext.Configs(s.ctx).ApiServer
	s.server = &http.Server{
		Addr:    cfg.Address(),
		Handler: s.router.Handler(),
	}

	xcontext.Logger(s.ctx).Infof("Starting server on port: %s", cfg.Port)
	var err error
	if cfg.Cert != "" && cfg.Key != "" {
		err = s.server.ListenAndServeTLS(cfg.Cert, cfg.Key)
	} else {
		err = s.server.ListenAndServe()
	}
	if err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stop")
	return nil
}

func (s *srv) loadRouter() {
	cfg := xcontext.Configs(s.ctx)
	s.router = router.New(s.ctx)
	s.router.AddCloser(middleware.Logger())

	// Public APIs, a valid access token is attached when present.
	publicRouter := s.router.Branch()
	publicRouter.Before(middleware.NewAuthVerifier().WithAccessToken().WithOptional().Middleware())
	{
		router.GET(publicRouter, "/searchInfluencers", s.influencerDomain.Search)
		router.GET(publicRouter, "/getInfluencer", s.influencerDomain.Get)

		// Favorites answer unauthenticated users with their own message.
		router.POST(publicRouter, "/addFavorite", s.favoriteDomain.Add)
	}

	// These following APIs need authentication with Access Token.
	onlyTokenAuthRouter := s.router.Branch()
	onlyTokenAuthRouter.Before(middleware.NewAuthVerifier().WithAccessToken().Middleware())
	{
		router.GET(onlyTokenAuthRouter, "/getMyProfile", s.profileDomain.GetMine)
		router.POST(onlyTokenAuthRouter, "/updateMyProfile", s.profileDomain.UpdateMine)
		router.GET(onlyTokenAuthRouter, "/getMyFavorites", s.favoriteDomain.GetMyList)
		router.POST(onlyTokenAuthRouter, "/removeFavorite", s.favoriteDomain.Remove)
	}

	// Outreach is reached from emailed links, without any account. Every call
	// here reaches a paid vendor, so it is rate limited per client.
	outreachRouter := s.router.Branch()
	if cfg.Outreach.RateLimit > 0 {
		outreachRouter.Before(middleware.RateLimiter(rate.Limit(cfg.Outreach.RateLimit), cfg.Outreach.RateBurst))
	}
	{
		router.POST(outreachRouter, "/createAssistant", s.outreachDomain.CreateAssistant)
		router.POST(outreachRouter, "/makeOutreachCall", s.outreachDomain.MakeOutreachCall)
		outreachRouter.Raw(http.MethodPost, cfg.Outreach.FormPath, s.outreachDomain.SubmitForm)
	}
	s.router.Raw(http.MethodGet, cfg.Outreach.FormPath, s.outreachDomain.ShowForm)

	if dir := cfg.ApiServer.StaticDir; dir != "" {
		if _, err := os.Stat(filepath.Join(dir, "index.html")); err == nil {
			s.router.StaticFile("/", filepath.Join(dir, "index.html"))
			s.router.Static("/static", dir)
		}
	}
}
