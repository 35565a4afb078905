// Package config resolves build-roller settings from flags, BUILD_ROLLER_*
// environment variables and an optional YAML config file.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/build-roller/internal/errors"
	"github.com/KirkDiggler/build-roller/internal/render"
)

// EnvPrefix namespaces environment variables, e.g. BUILD_ROLLER_REDIS_ADDR
const EnvPrefix = "BUILD_ROLLER"

// DefaultDataFile is looked up next to the working directory or the executable
const DefaultDataFile = "Classeur2.csv"

// Keys shared by flags, env and config file
const (
	KeyData          = "data"
	KeySeed          = "seed"
	KeyFormat        = "format"
	KeyLogLevel      = "log_level"
	KeyRedisAddr     = "redis.addr"
	KeyRedisPassword = "redis.password"
	KeyRedisDB       = "redis.db"
	KeyCacheTTL      = "redis.cache_ttl"
)

// Config is the resolved runtime configuration
type Config struct {
	Data     string      `mapstructure:"data"`
	Seed     uint64      `mapstructure:"seed"`
	Format   string      `mapstructure:"format"`
	LogLevel string      `mapstructure:"log_level"`
	Redis    RedisConfig `mapstructure:"redis"`

	// Seeded is true when a seed was given explicitly; zero is a valid seed
	Seeded bool `mapstructure:"-"`
}

// RedisConfig configures the optional shared catalog cache
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// Enabled reports whether a Redis address was configured
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// SetDefaults registers defaults on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyData, DefaultDataFile)
	v.SetDefault(KeyFormat, string(render.FormatText))
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyRedisAddr, "")
	v.SetDefault(KeyRedisPassword, "")
	v.SetDefault(KeyRedisDB, 0)
	v.SetDefault(KeyCacheTTL, "24h")
}

// Load reads configuration into a Config. Flags should already be bound
// to v. file is optional.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// seed has no default, so bind it for Unmarshal to see the env var
	if err := v.BindEnv(KeySeed); err != nil {
		return nil, errors.Wrap(err, "failed to bind seed env")
	}

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read config file %s", file)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}
	cfg.Seeded = v.IsSet(KeySeed)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting and reports all problems at once
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired(KeyData, c.Data, vb)
	if _, err := render.ParseFormat(c.Format); err != nil {
		vb.Fieldf(KeyFormat, "must be one of: %s", strings.Join(render.Formats(), ", "))
	}
	if _, err := c.SlogLevel(); err != nil {
		vb.Fieldf(KeyLogLevel, "unknown level %q", c.LogLevel)
	}
	if c.Redis.CacheTTL < 0 {
		vb.Field(KeyCacheTTL, "cannot be negative")
	}
	if c.Redis.DB < 0 {
		vb.Field(KeyRedisDB, "cannot be negative")
	}
	return vb.Build()
}

// SlogLevel parses LogLevel as a slog level name (debug, info, warn, error)
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, errors.InvalidArgumentf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

// OutputFormat returns the validated output format
func (c *Config) OutputFormat() render.Format {
	f, err := render.ParseFormat(c.Format)
	if err != nil {
		return render.FormatText
	}
	return f
}
