package testutil

import (
	"context"
	"time"

	"github.com/influencerflow/backend/config"
	"github.com/influencerflow/backend/internal/entity"
	"github.com/influencerflow/backend/pkg/authenticator"
	"github.com/influencerflow/backend/pkg/logger"
	"github.com/influencerflow/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	// Every connection of a :memory: database sees its own empty schema.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	cfg := config.Configs{
		Env: "test",
		ApiServer: config.APIServerConfigs{
			PublicURL:    "http://localhost:8080",
			MaxLimit:     50,
			DefaultLimit: 20,
		},
		SearchServer: config.SearchServerConfigs{
			RPCName: "search",
		},
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
		},
		Vapi: config.VapiConfigs{
			PhoneNumberID: "phone-number-id",
		},
		Mailgun: config.MailgunConfigs{
			Domain: "sandbox.mailgun.org",
		},
		Outreach: config.OutreachConfigs{
			FormPath:     "/outreach-form",
			EmailSubject: "Your outreach assistant is ready",
		},
		Cache: config.CacheConfigs{
			SearchTTL: time.Minute,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}
