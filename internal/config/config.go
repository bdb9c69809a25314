// Package config loads service configuration from an optional config file,
// a .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"unit-converter/internal/i18n"
)

type Config struct {
	AppEnv        string          `mapstructure:"app_env"`
	HTTPAddr      string          `mapstructure:"http_addr"`
	LogLevel      string          `mapstructure:"log_level"`
	DefaultLocale string          `mapstructure:"default_locale"`
	Telemetry     TelemetryConfig `mapstructure:"telemetry"`
	Store         StoreConfig     `mapstructure:"store"`
}

type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

type StoreConfig struct {
	Backend       string        `mapstructure:"backend"` // memory, redis, sqlite
	KeyPrefix     string        `mapstructure:"key_prefix"`
	PreferenceTTL time.Duration `mapstructure:"preference_ttl"`
	ConnectTries  uint          `mapstructure:"connect_tries"`
	Redis         RedisConfig   `mapstructure:"redis"`
	SQLite        SQLiteConfig  `mapstructure:"sqlite"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// Locale returns the configured default locale.
func (c Config) Locale() i18n.Locale {
	l, _ := i18n.ParseLocale(c.DefaultLocale)
	return l
}

// Load reads .env (when present), then config.yaml from the working
// directory or ./configs, then environment variables. Later sources win.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return load(v)
}

// LoadFromFile reads configuration from an explicit YAML file plus the
// environment.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	bindEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load .env: %w", err)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "dev")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("default_locale", string(i18n.Default))
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "unit-converter")
	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.key_prefix", "unitconv:")
	v.SetDefault("store.preference_ttl", 30*24*time.Hour)
	v.SetDefault("store.connect_tries", 5)
	v.SetDefault("store.redis.address", "localhost:6379")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.sqlite.path", "data/unit-converter.db")
}

// bindEnv maps flat environment variable names onto nested keys.
func bindEnv(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"app_env":                "APP_ENV",
		"http_addr":              "HTTP_ADDR",
		"log_level":              "LOG_LEVEL",
		"default_locale":         "DEFAULT_LOCALE",
		"telemetry.enabled":      "TELEMETRY_ENABLED",
		"telemetry.service_name": "OTEL_SERVICE_NAME",
		"store.backend":          "STORE_BACKEND",
		"store.key_prefix":       "STORE_KEY_PREFIX",
		"store.preference_ttl":   "PREFERENCE_TTL",
		"store.connect_tries":    "STORE_CONNECT_TRIES",
		"store.redis.address":    "REDIS_ADDR",
		"store.redis.password":   "REDIS_PASSWORD",
		"store.redis.db":         "REDIS_DB",
		"store.sqlite.path":      "SQLITE_PATH",
	}
	for key, env := range bindings {
		_ = v.BindEnv(key, env)
	}
}

func validate(cfg *Config) error {
	switch cfg.AppEnv {
	case "dev", "prod":
	default:
		return fmt.Errorf("app_env %q (allowed: dev, prod)", cfg.AppEnv)
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q (allowed: debug, info, warn, error)", cfg.LogLevel)
	}

	if _, ok := i18n.ParseLocale(cfg.DefaultLocale); !ok {
		return fmt.Errorf("default_locale %q is not supported", cfg.DefaultLocale)
	}

	switch cfg.Store.Backend {
	case "memory":
	case "redis":
		if cfg.Store.Redis.Address == "" {
			return errors.New("store.redis.address is required for the redis backend")
		}
	case "sqlite":
		if cfg.Store.SQLite.Path == "" {
			return errors.New("store.sqlite.path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("store.backend %q (allowed: memory, redis, sqlite)", cfg.Store.Backend)
	}

	if cfg.Store.ConnectTries == 0 {
		cfg.Store.ConnectTries = 1
	}

	return nil
}
