package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/deespora/backoffice/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Backend    BackendConfig    `validate:"required"`
	Auth       AuthConfig
	Session    SessionConfig
	Listing    ListingConfig `validate:"required"`
	Cache      CacheConfig
	Sentry     SentryConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required,oneof=local aws_lambda_api"`
}

type ServerConfig struct {
	Address        string        `validate:"required"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// BackendConfig points at the listings backend every view reads from
type BackendConfig struct {
	BaseURL      string        `mapstructure:"base_url" validate:"required,url"`
	Timeout      time.Duration `validate:"required"`
	RetryMax     int           `mapstructure:"retry_max" validate:"gte=0"`
	RetryWaitMin time.Duration `mapstructure:"retry_wait_min"`
	RetryWaitMax time.Duration `mapstructure:"retry_wait_max"`
}

// AuthConfig configures the login function. AdminEmail and AdminPassword are
// only required by the gateway; the CLI logs in against the backend instead.
type AuthConfig struct {
	AdminEmail    string        `mapstructure:"admin_email"`
	AdminPassword string        `mapstructure:"admin_password"`
	Secret        string        `mapstructure:"secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	RateLimit     float64       `mapstructure:"rate_limit"`
	RateBurst     int           `mapstructure:"rate_burst"`
}

type SessionConfig struct {
	Path string
}

type ListingConfig struct {
	PageSize int    `mapstructure:"page_size" validate:"required,gt=0,lte=100"`
	Timezone string `mapstructure:"timezone"`
}

type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type SentryConfig struct {
	Enabled     bool
	DSN         string
	Environment string
	SampleRate  float64 `mapstructure:"sample_rate"`
}

func NewConfig() (*Configuration, error) {
	// .env is optional and never overrides variables already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/backoffice")

	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()
	setDefaults(v)

	// the login function has always read these two unprefixed names
	_ = v.BindEnv("auth.admin_email", "BACKOFFICE_AUTH_ADMIN_EMAIL", "ADMIN_EMAIL")
	_ = v.BindEnv("auth.admin_password", "BACKOFFICE_AUTH_ADMIN_PASSWORD", "ADMIN_PASSWORD")

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", types.ModeLocal)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("backend.base_url", DefaultBackendURL)
	v.SetDefault("backend.timeout", 15*time.Second)
	v.SetDefault("backend.retry_max", 2)
	v.SetDefault("backend.retry_wait_min", 250*time.Millisecond)
	v.SetDefault("backend.retry_wait_max", 2*time.Second)
	v.SetDefault("auth.admin_email", "")
	v.SetDefault("auth.admin_password", "")
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("auth.rate_limit", 1.0)
	v.SetDefault("auth.rate_burst", 5)
	v.SetDefault("session.path", "")
	v.SetDefault("listing.page_size", types.DefaultPageSize)
	v.SetDefault("listing.timezone", "Local")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", 30*time.Second)
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "development")
	v.SetDefault("sentry.sample_rate", 1.0)
}

const DefaultBackendURL = "https://deesporabackend.vercel.app"

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Location resolves the listing timezone used for calendar date filters
func (c ListingConfig) Location() *time.Location {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// GetDefaultConfig returns a default configuration for local development
// and tests
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080", RequestTimeout: 30 * time.Second, AllowedOrigins: []string{"*"}},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Backend: BackendConfig{
			BaseURL:      DefaultBackendURL,
			Timeout:      15 * time.Second,
			RetryMax:     2,
			RetryWaitMin: 250 * time.Millisecond,
			RetryWaitMax: 2 * time.Second,
		},
		Auth:    AuthConfig{TokenTTL: 12 * time.Hour, RateLimit: 1, RateBurst: 5},
		Listing: ListingConfig{PageSize: types.DefaultPageSize, Timezone: "Local"},
		Cache:   CacheConfig{Enabled: true, TTL: 30 * time.Second},
	}
}
