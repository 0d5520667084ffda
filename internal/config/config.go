// Package config loads questlog settings from defaults, an optional YAML
// file, QUESTLOG_* environment variables and bound command line flags, in
// increasing order of precedence.
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/redis"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "QUESTLOG"

// Config is the full application configuration
type Config struct {
	Redis   RedisConfig   `mapstructure:"redis"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
	Flush   FlushConfig   `mapstructure:"flush"`
	Combat  CombatConfig  `mapstructure:"combat"`
	RNG     RNGConfig     `mapstructure:"rng"`
	User    UserConfig    `mapstructure:"user"`
}

// RedisConfig points at the profile, quest and inventory store
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	DB       int    `mapstructure:"db"`
	Password string `mapstructure:"password"`
	PoolSize int    `mapstructure:"pool_size"`
	UseTLS   bool   `mapstructure:"use_tls"`
}

// CatalogConfig selects the monster and skill database
type CatalogConfig struct {
	// DSN is a SQLite path, sqlite:// URL or postgres:// URL. Empty means an
	// in-memory SQLite database.
	DSN string `mapstructure:"dsn"`
	// Seed inserts the default monsters and skills on startup
	Seed bool `mapstructure:"seed"`
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// FlushConfig tunes the background writer
type FlushConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// CombatConfig tunes encounter display
type CombatConfig struct {
	LogLimit int `mapstructure:"log_limit"`
}

// RNGConfig makes random picks reproducible. Zero seeds from the clock.
type RNGConfig struct {
	Seed uint64 `mapstructure:"seed"`
}

// UserConfig is the identity the CLI acts as
type UserConfig struct {
	ID    string `mapstructure:"id"`
	Email string `mapstructure:"email"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// SetDefaults registers every key so environment overrides are seen by
// Unmarshal
func SetDefaults(v *viper.Viper) {
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.use_tls", false)
	v.SetDefault("catalog.dsn", "questlog.db")
	v.SetDefault("catalog.seed", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("flush.interval", 5*time.Second)
	v.SetDefault("combat.log_limit", 10)
	v.SetDefault("rng.seed", 0)
	v.SetDefault("user.id", "local")
	v.SetDefault("user.email", "")
}

// New returns a viper instance with defaults and environment overrides wired
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds command line flags to config keys. Keys without a matching
// flag are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, flag := range keys {
		f := flags.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "failed to bind flag %s", flag)
		}
	}
	return nil
}

// Load reads path when set, then decodes and validates the result
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = New()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("redis.addr", c.Redis.Addr, vb)
	if c.Redis.DB < 0 {
		vb.Field("redis.db", "must not be negative")
	}
	if c.Redis.PoolSize < 0 {
		vb.Field("redis.pool_size", "must not be negative")
	}
	errors.ValidateEnum("log.level", c.Log.Level, logLevels, vb)
	errors.ValidateEnum("log.format", c.Log.Format, logFormats, vb)
	if c.Flush.Interval <= 0 {
		vb.Field("flush.interval", "must be positive")
	}
	if c.Combat.LogLimit < 0 {
		vb.Field("combat.log_limit", "must not be negative")
	}
	errors.ValidateRequired("user.id", c.User.ID, vb)

	return vb.Build()
}

// RedisOptions converts the redis section for the client constructor
func (c RedisConfig) RedisOptions() *redis.Options {
	return &redis.Options{
		Password: c.Password,
		DB:       c.DB,
		PoolSize: c.PoolSize,
		UseTLS:   c.UseTLS,
	}
}

// SlogLevel maps the configured level name
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a logger writing to w in the configured format
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
