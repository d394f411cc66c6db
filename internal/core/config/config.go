package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// ProxyHeader is the header carrying the visitor IP when running behind a load balancer.
	ProxyHeader string `mapstructure:"PROXY_HEADER"`

	// Database holds the configuration store connection details.
	Database DatabaseConfig `mapstructure:",squash"`

	// Redis holds the cache connection details.
	Redis RedisConfig `mapstructure:",squash"`

	// Geo holds the geo-IP lookup settings.
	Geo GeoConfig `mapstructure:",squash"`

	// Embed holds the embed endpoint settings.
	Embed EmbedConfig `mapstructure:",squash"`

	// OutboundProxy is used for calls to the geo-IP service.
	OutboundProxy OutboundProxyConfig `mapstructure:",squash"`
}

// DatabaseConfig holds database connection details.
type DatabaseConfig struct {
	// URL is the Postgres connection string.
	URL string `mapstructure:"DATABASE_URL" required:"true"`
	// MaxConns caps the pool size.
	MaxConns int `mapstructure:"DB_MAX_CONNS" default:"10"`
	// AutoMigrate applies the bundled schema on startup.
	AutoMigrate bool `mapstructure:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds the Redis connection details.
type RedisConfig struct {
	// URL is in the format redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
}

// GeoConfig holds the geo-IP lookup settings.
type GeoConfig struct {
	// APIURL is a format string receiving the visitor IP, e.g. https://ipapi.co/%s/json/.
	APIURL string `mapstructure:"GEO_API_URL" default:"https://ipapi.co/%s/json/"`
	// TimeoutMS bounds a single lookup. Expiry fails open.
	TimeoutMS int `mapstructure:"GEO_TIMEOUT_MS" default:"2500"`
	// CacheTTLSeconds is how long a resolved country code is cached.
	CacheTTLSeconds int `mapstructure:"GEO_CACHE_TTL_SECONDS" default:"3600"`
}

// EmbedConfig holds the embed endpoint settings.
type EmbedConfig struct {
	// CacheMaxAge is the max-age in seconds sent with rendered scripts.
	CacheMaxAge int `mapstructure:"EMBED_CACHE_MAX_AGE" default:"60"`
}

// OutboundProxyConfig holds the optional proxy for outbound HTTP calls.
type OutboundProxyConfig struct {
	Enabled  bool   `mapstructure:"OUTBOUND_PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"OUTBOUND_PROXY_HOST"`
	Port     int    `mapstructure:"OUTBOUND_PROXY_PORT"`
	Username string `mapstructure:"OUTBOUND_PROXY_USER"`
	Password string `mapstructure:"OUTBOUND_PROXY_PASS"`
}

// GeoTimeout returns the lookup timeout as a duration.
func (g GeoConfig) GeoTimeout() time.Duration {
	return time.Duration(g.TimeoutMS) * time.Millisecond
}

// CacheTTL returns the cache lifetime of a lookup result.
func (g GeoConfig) CacheTTL() time.Duration {
	return time.Duration(g.CacheTTLSeconds) * time.Second
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged field to its env key and registers its default.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
