// Package config loads iplstats settings from defaults, an optional YAML
// file and IPLSTATS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Defaults.
const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultMinOvers         = 10
	DefaultMinInnings       = 10
	DefaultServerAddr       = ":8080"
	DefaultRateLimitEnabled = true
	DefaultRateLimitRequest = 60
	DefaultRateLimitWindow  = time.Minute
	DefaultCacheSize        = 256
)

// Config is the top-level configuration.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	DB     string       `mapstructure:"db"`
	Log    LogConfig    `mapstructure:"log"`
	Engine EngineConfig `mapstructure:"engine"`
	Ingest IngestConfig `mapstructure:"ingest"`
	Server ServerConfig `mapstructure:"server"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EngineConfig holds the engine's sample thresholds and home-city table.
type EngineConfig struct {
	MinOvers   float64    `mapstructure:"min_overs"`
	MinInnings int        `mapstructure:"min_innings"`
	HomeCities []HomeCity `mapstructure:"home_cities"`
}

// HomeCity maps a franchise to its home city. A list is used instead of a
// map because viper lowercases map keys.
type HomeCity struct {
	Team string `mapstructure:"team"`
	City string `mapstructure:"city"`
}

// IngestConfig holds CSV cleaning settings.
type IngestConfig struct {
	TeamAliases []Alias `mapstructure:"team_aliases"`
}

// Alias renames a franchise during import.
type Alias struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr        string          `mapstructure:"addr"`
	CORSOrigins []string        `mapstructure:"cors_origins"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	CacheSize   int             `mapstructure:"cache_size"`
}

// RateLimitConfig is a per-client request budget.
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// HomeCityMap returns the configured home cities, or nil when none are set.
func (c EngineConfig) HomeCityMap() map[string]string {
	if len(c.HomeCities) == 0 {
		return nil
	}
	m := make(map[string]string, len(c.HomeCities))
	for _, h := range c.HomeCities {
		m[h.Team] = h.City
	}
	return m
}

// AliasMap returns the configured aliases, or nil when none are set.
func (c IngestConfig) AliasMap() map[string]string {
	if len(c.TeamAliases) == 0 {
		return nil
	}
	m := make(map[string]string, len(c.TeamAliases))
	for _, a := range c.TeamAliases {
		m[a.From] = a.To
	}
	return m
}

var (
	// ErrInvalidLogLevel indicates an unknown log level.
	ErrInvalidLogLevel = errors.New("log.level must be one of debug, info, warn, error")
	// ErrInvalidLogFormat indicates an unknown log format.
	ErrInvalidLogFormat = errors.New("log.format must be text or json")
	// ErrInvalidMinOvers indicates a negative overs threshold.
	ErrInvalidMinOvers = errors.New("engine.min_overs must be non-negative")
	// ErrInvalidMinInnings indicates a negative innings threshold.
	ErrInvalidMinInnings = errors.New("engine.min_innings must be non-negative")
	// ErrInvalidHomeCity indicates a home-city entry missing its team or city.
	ErrInvalidHomeCity = errors.New("engine.home_cities entries need team and city")
	// ErrInvalidAlias indicates an alias entry missing a side.
	ErrInvalidAlias = errors.New("ingest.team_aliases entries need from and to")
	// ErrInvalidRateLimit indicates a non-positive rate-limit budget.
	ErrInvalidRateLimit = errors.New("server.rate_limit requests and window must be positive")
	// ErrInvalidCacheSize indicates a negative cache size.
	ErrInvalidCacheSize = errors.New("server.cache_size must be non-negative")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}
	if c.Engine.MinOvers < 0 {
		return ErrInvalidMinOvers
	}
	if c.Engine.MinInnings < 0 {
		return ErrInvalidMinInnings
	}
	for _, h := range c.Engine.HomeCities {
		if h.Team == "" || h.City == "" {
			return ErrInvalidHomeCity
		}
	}
	for _, a := range c.Ingest.TeamAliases {
		if a.From == "" || a.To == "" {
			return ErrInvalidAlias
		}
	}
	if rl := c.Server.RateLimit; rl.Enabled && (rl.Requests <= 0 || rl.Window <= 0) {
		return ErrInvalidRateLimit
	}
	if c.Server.CacheSize < 0 {
		return ErrInvalidCacheSize
	}
	return nil
}
