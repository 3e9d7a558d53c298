package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/influencerflow/backend/config"
	"github.com/influencerflow/backend/pkg/authenticator"
	"github.com/influencerflow/backend/pkg/logger"
	"github.com/influencerflow/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg := loadEnvConfigs()
	if path := cctx.String("config"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return err
		}
	}

	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, newLogger(cfg))
	s.ctx = xcontext.WithTokenEngine(s.ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	s.ctx = xcontext.WithHTTPClient(s.ctx, newHTTPClient())
	return nil
}

// newHTTPClient builds the client used for vendor calls. It has no timeout
// unless HTTP_CLIENT_TIMEOUT is set.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: parseDuration(getEnv("HTTP_CLIENT_TIMEOUT", "0s"))}
}

func newLogger(cfg config.Configs) logger.Logger {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.LogFile.Path == "" {
		return logger.NewLogger(level)
	}

	return logger.NewFileLogger(level, cfg.LogFile.Path,
		cfg.LogFile.MaxSize, cfg.LogFile.MaxBackups, cfg.LogFile.MaxAge)
}

func loadEnvConfigs() config.Configs {
	return config.Configs{
		Env:      getEnv("ENV", "local"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile: config.LogFileConfigs{
			Path:       getEnv("LOG_FILE", ""),
			MaxSize:    parseInt(getEnv("LOG_FILE_MAX_SIZE", "100")),
			MaxBackups: parseInt(getEnv("LOG_FILE_MAX_BACKUPS", "5")),
			MaxAge:     parseInt(getEnv("LOG_FILE_MAX_AGE", "30")),
		},
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "mysql"),
			Password: getEnv("MYSQL_PASSWORD", "mysql"),
			Database: getEnv("MYSQL_DATABASE", "influencerflow"),
			LogLevel: getEnv("DATABASE_LOG_LEVEL", "error"),

			AutoMigrate: parseBool(getEnv("DATABASE_AUTO_MIGRATE", "false")),
		},
		ApiServer: config.APIServerConfigs{
			ServerConfigs: config.ServerConfigs{
				Host: getEnv("API_HOST", ""),
				Port: getEnv("API_PORT", "8080"),
				Cert: getEnv("API_CERT", ""),
				Key:  getEnv("API_KEY", ""),
			},
			PublicURL:      getEnv("PUBLIC_URL", "http://localhost:8080"),
			AllowedOrigins: parseArray(getEnv("API_ALLOWED_ORIGINS", "*")),
			TrustedProxies: parseArray(getEnv("API_TRUSTED_PROXIES", "")),
			StaticDir:      getEnv("API_STATIC_DIR", "./web"),
			MaxLimit:       parseInt(getEnv("API_MAX_LIMIT", "50")),
			DefaultLimit:   parseInt(getEnv("API_DEFAULT_LIMIT", "20")),
		},
		SearchServer: config.SearchServerConfigs{
			ServerConfigs: config.ServerConfigs{
				Host: getEnv("SEARCH_SERVER_HOST", "localhost"),
				Port: getEnv("SEARCH_SERVER_PORT", "8083"),
			},
			Endpoint: getEnv("SEARCH_SERVER_ENDPOINT", "http://localhost:8083"),
			RPCName:  getEnv("SEARCH_SERVER_RPC_NAME", "search"),
			IndexDir: getEnv("SEARCH_INDEX_DIR", "searchindex"),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token_secret"),
			AccessToken: config.TokenConfigs{
				Name:       getEnv("ACCESS_TOKEN_NAME", "access_token"),
				Expiration: parseDuration(getEnv("ACCESS_TOKEN_EXPIRATION", "5m")),
			},
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDRESS", ""),
		},
		Kafka: config.KafkaConfigs{
			Addr:     getEnv("KAFKA_ADDRESS", ""),
			ClientID: getEnv("KAFKA_CLIENT_ID", "influencerflow"),
		},
		Vapi: config.VapiConfigs{
			APIEndpoint:   getEnv("VAPI_API_ENDPOINT", ""),
			APIKey:        getEnv("VAPI_API_KEY", ""),
			PhoneNumberID: getEnv("VAPI_PHONE_NUMBER_ID", ""),
		},
		Mailgun: config.MailgunConfigs{
			APIEndpoint: getEnv("MAILGUN_API_ENDPOINT", ""),
			APIKey:      getEnv("MAILGUN_API_KEY", ""),
			Domain:      getEnv("MAILGUN_DOMAIN", ""),
			Sender:      getEnv("MAILGUN_SENDER", ""),
		},
		Outreach: config.OutreachConfigs{
			FormPath:     getEnv("OUTREACH_FORM_PATH", "/outreach-form"),
			EmailSubject: getEnv("OUTREACH_EMAIL_SUBJECT", "Start Your AI Outreach Call"),
			RateLimit:    parseFloat(getEnv("OUTREACH_RATE_LIMIT", "0.2")),
			RateBurst:    parseInt(getEnv("OUTREACH_RATE_BURST", "5")),
		},
		Cache: config.CacheConfigs{
			SearchTTL: parseDuration(getEnv("SEARCH_CACHE_TTL", "1m")),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseDuration(s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}

	return duration
}

func parseInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}

	return i
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err)
	}

	return f
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		panic(err)
	}

	return b
}

func parseArray(s string) []string {
	result := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}

	return result
}
