package main

import (
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/influencerflow/backend/internal/client"
	"github.com/influencerflow/backend/internal/domain"
	"github.com/influencerflow/backend/internal/entity"
	"github.com/influencerflow/backend/internal/repository"
	"github.com/influencerflow/backend/pkg/api/mailgun"
	"github.com/influencerflow/backend/pkg/api/vapi"
	"github.com/influencerflow/backend/pkg/kafka"
	"github.com/influencerflow/backend/pkg/logger"
	"github.com/influencerflow/backend/pkg/pubsub"
	"github.com/influencerflow/backend/pkg/xcontext"
	"github.com/influencerflow/backend/pkg/xredis"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx).Database
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       cfg.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(parseDatabaseLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		panic(err)
	}

	return db
}

func parseDatabaseLogLevel(level string) gormlogger.LogLevel {
	switch logger.ParseLevel(level) {
	case logger.DEBUG, logger.INFO:
		return gormlogger.Info
	case logger.WARNING:
		return gormlogger.Warn
	case logger.ERROR:
		return gormlogger.Error
	}

	return gormlogger.Silent
}

func (s *srv) loadDatabase() {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	if xcontext.Configs(s.ctx).Database.AutoMigrate {
		if err := entity.MigrateTable(s.ctx); err != nil {
			panic(err)
		}
	}
}

func (s *srv) loadRepos() {
	s.influencerRepo = repository.NewInfluencerRepository()
	s.favoriteRepo = repository.NewFavoriteRepository()
	s.profileRepo = repository.NewProfileRepository()
}

func (s *srv) loadSearchCaller() {
	rpcSearchClient, err := rpc.DialContext(s.ctx, xcontext.Configs(s.ctx).SearchServer.Endpoint)
	if err != nil {
		panic(err)
	}

	s.searchCaller = client.NewSearchCaller(rpcSearchClient)
}

// loadRedisClient leaves the client nil when no address is configured, which
// disables the search cache.
func (s *srv) loadRedisClient() {
	if xcontext.Configs(s.ctx).Redis.Addr == "" {
		xcontext.Logger(s.ctx).Warnf("Redis is not configured, search results are not cached")
		return
	}

	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.redisClient = redisClient
}

func (s *srv) loadPublisher() {
	cfg := xcontext.Configs(s.ctx).Kafka
	if cfg.Addr == "" {
		xcontext.Logger(s.ctx).Warnf("Kafka is not configured, outreach events are dropped")
		s.publisher = pubsub.NewNoopPublisher()
		return
	}

	publisher, err := kafka.NewPublisher(cfg.ClientID, strings.Split(cfg.Addr, ","))
	if err != nil {
		panic(err)
	}

	s.publisher = publisher
}

func (s *srv) loadEndpoints() {
	cfg := xcontext.Configs(s.ctx)
	s.vapiEndpoint = vapi.New(cfg.Vapi)
	s.mailgunEndpoint = mailgun.New(cfg.Mailgun)
}

func (s *srv) loadDomains() {
	s.influencerDomain = domain.NewInfluencerDomain(s.influencerRepo, s.searchCaller, s.redisClient)
	s.favoriteDomain = domain.NewFavoriteDomain(s.favoriteRepo, s.influencerRepo)
	s.profileDomain = domain.NewProfileDomain(s.profileRepo)
	s.outreachDomain = domain.NewOutreachDomain(s.vapiEndpoint, s.mailgunEndpoint, s.publisher)
	s.indexerDomain = domain.NewIndexerDomain(s.influencerRepo, s.searchCaller)
}
