package config

import (
	"os"
	"strconv"
	"time"

	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
	"github.com/redis/go-redis/v9"
)

// Diagnostics modes
const (
	DiagnosticsLog     = "log"
	DiagnosticsDiscard = "discard"
	DiagnosticsRecord  = "record"
)

// Config holds all configuration for the application
type Config struct {
	Redis       RedisConfig
	Content     ContentConfig
	Combat      CombatConfig
	Diagnostics string
}

// RedisConfig holds Redis-specific configuration. URL wins over Addr when
// both are set.
type RedisConfig struct {
	Addr     string
	URL      string
	Password string
	DB       int
}

// ContentConfig says where authored content lives. An empty Dir uses the
// built-in catalog.
type ContentConfig struct {
	Dir string
}

// CombatConfig holds combat storage settings
type CombatConfig struct {
	SnapshotTTL time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	db, err := getEnvAsIntOrDefault("COMBAT_REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	ttl, err := getEnvAsDurationOrDefault("COMBAT_SNAPSHOT_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Redis: RedisConfig{
			Addr:     os.Getenv("COMBAT_REDIS_ADDR"),
			URL:      os.Getenv("REDIS_URL"),
			Password: os.Getenv("COMBAT_REDIS_PASSWORD"),
			DB:       db,
		},
		Content: ContentConfig{
			Dir: os.Getenv("COMBAT_CONTENT_DIR"),
		},
		Combat: CombatConfig{
			SnapshotTTL: ttl,
		},
		Diagnostics: getEnvOrDefault("COMBAT_DIAGNOSTICS", DiagnosticsLog),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Redis.DB < 0 {
		return dnderr.InvalidArgumentf("COMBAT_REDIS_DB must not be negative, got %d", c.Redis.DB)
	}
	if c.Combat.SnapshotTTL <= 0 {
		return dnderr.InvalidArgumentf("COMBAT_SNAPSHOT_TTL must be positive, got %s", c.Combat.SnapshotTTL)
	}
	switch c.Diagnostics {
	case DiagnosticsLog, DiagnosticsDiscard, DiagnosticsRecord:
	default:
		return dnderr.InvalidArgumentf("COMBAT_DIAGNOSTICS must be log, discard or record, got %q", c.Diagnostics)
	}
	return nil
}

// RedisEnabled reports whether any Redis location is configured
func (c *Config) RedisEnabled() bool {
	return c.Redis.URL != "" || c.Redis.Addr != ""
}

// RedisOptions builds client options from URL or Addr
func (c *Config) RedisOptions() (*redis.Options, error) {
	if c.Redis.URL != "" {
		opts, err := redis.ParseURL(c.Redis.URL)
		if err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse REDIS_URL")
		}
		return opts, nil
	}
	if c.Redis.Addr == "" {
		return nil, dnderr.InvalidArgument("no Redis address configured")
	}
	return &redis.Options{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, key+" must be an integer")
	}
	return intValue, nil
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, key+" must be a duration such as 30m or 24h")
	}
	return d, nil
}
