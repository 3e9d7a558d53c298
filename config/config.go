package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env      string
	LogLevel string
	LogFile  LogFileConfigs

	Database     DatabaseConfigs
	ApiServer    APIServerConfigs
	SearchServer SearchServerConfigs
	Auth         AuthConfigs
	Redis        RedisConfigs
	Kafka        KafkaConfigs
	Vapi         VapiConfigs
	Mailgun      MailgunConfigs
	Outreach     OutreachConfigs
	Cache        CacheConfigs
}

// LogFileConfigs enables a rotated json log file instead of stderr when Path
// is set. Sizes are in megabytes, ages in days.
type LogFileConfigs struct {
	Path       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
	LogLevel string

	// AutoMigrate creates the tables with gorm on startup, for local use.
	AutoMigrate bool
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&multiStatements=true",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string
}

func (c ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type APIServerConfigs struct {
	ServerConfigs

	// PublicURL is the externally reachable origin used to build links sent by
	// email, e.g. https://app.example.com.
	PublicURL      string
	AllowedOrigins []string
	// TrustedProxies lists the proxy addresses or cidrs whose forwarded
	// headers are used to find the client ip. Empty trusts no proxy.
	TrustedProxies []string
	StaticDir      string
	MaxLimit       int
	DefaultLimit   int
}

type SearchServerConfigs struct {
	ServerConfigs

	// Endpoint is the url the api server dials, e.g. http://localhost:8083.
	Endpoint string
	RPCName  string
	IndexDir string
}

type AuthConfigs struct {
	TokenSecret string
	AccessToken TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type RedisConfigs struct {
	Addr string
}

type KafkaConfigs struct {
	Addr     string
	ClientID string
}

type VapiConfigs struct {
	APIEndpoint string
	APIKey      string

	// PhoneNumberID is the vendor id of the number outbound calls are placed from.
	PhoneNumberID string
}

type MailgunConfigs struct {
	APIEndpoint string
	APIKey      string
	Domain      string
	Sender      string
}

type OutreachConfigs struct {
	FormPath     string
	EmailSubject string

	// RateLimit is the number of outreach requests per second allowed for one
	// client ip. Zero disables the limit.
	RateLimit float64
	RateBurst int
}

type CacheConfigs struct {
	SearchTTL time.Duration
}
