package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".iplstats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_EmptyFile_UsesDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, config.DefaultDBPath(), cfg.DB)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, config.DefaultLogFormat, cfg.Log.Format)
	assert.InDelta(t, config.DefaultMinOvers, cfg.Engine.MinOvers, 0.001)
	assert.Equal(t, config.DefaultMinInnings, cfg.Engine.MinInnings)
	assert.Nil(t, cfg.Engine.HomeCityMap())
	assert.Nil(t, cfg.Ingest.AliasMap())
	assert.Equal(t, config.DefaultServerAddr, cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, config.DefaultRateLimitWindow, cfg.Server.RateLimit.Window)
	assert.Equal(t, config.DefaultCacheSize, cfg.Server.CacheSize)
}

func TestLoad_ValidFile_Unmarshals(t *testing.T) {
	path := writeConfig(t, `db: /tmp/ipl.db
log:
  level: debug
  format: json
engine:
  min_overs: 20
  min_innings: 5
  home_cities:
    - team: Mumbai Indians
      city: Mumbai
    - team: Gujarat Lions
      city: Rajkot
ingest:
  team_aliases:
    - from: Delhi Daredevils
      to: Delhi Capitals
server:
  addr: 127.0.0.1:9000
  cors_origins: [http://localhost:3000]
  rate_limit:
    requests: 10
    window: 30s
  cache_size: 0
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ipl.db", cfg.DB)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.InDelta(t, 20, cfg.Engine.MinOvers, 0.001)
	assert.Equal(t, 5, cfg.Engine.MinInnings)
	// Team names keep their case.
	assert.Equal(t, map[string]string{"Mumbai Indians": "Mumbai", "Gujarat Lions": "Rajkot"}, cfg.Engine.HomeCityMap())
	assert.Equal(t, map[string]string{"Delhi Daredevils": "Delhi Capitals"}, cfg.Ingest.AliasMap())
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 10, cfg.Server.RateLimit.Requests)
	assert.Equal(t, 30*time.Second, cfg.Server.RateLimit.Window)
	assert.Equal(t, 0, cfg.Server.CacheSize)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log:\n  level: warn\n")
	t.Setenv("IPLSTATS_LOG_LEVEL", "error")
	t.Setenv("IPLSTATS_ENGINE_MIN_INNINGS", "3")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Engine.MinInnings)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    error
	}{
		{"log level", "log:\n  level: loud\n", config.ErrInvalidLogLevel},
		{"log format", "log:\n  format: xml\n", config.ErrInvalidLogFormat},
		{"min overs", "engine:\n  min_overs: -1\n", config.ErrInvalidMinOvers},
		{"min innings", "engine:\n  min_innings: -1\n", config.ErrInvalidMinInnings},
		{"home city", "engine:\n  home_cities:\n    - team: Mumbai Indians\n", config.ErrInvalidHomeCity},
		{"alias", "ingest:\n  team_aliases:\n    - from: Deccan Chargers\n", config.ErrInvalidAlias},
		{"rate limit", "server:\n  rate_limit:\n    requests: 0\n", config.ErrInvalidRateLimit},
		{"cache size", "server:\n  cache_size: -5\n", config.ErrInvalidCacheSize},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, c.content))
			require.ErrorIs(t, err, c.want)
		})
	}
}

func TestValidate_RateLimitDisabled(t *testing.T) {
	cfg := config.Config{
		Log:    config.LogConfig{Level: "info", Format: "text"},
		Server: config.ServerConfig{RateLimit: config.RateLimitConfig{Enabled: false}},
	}
	assert.NoError(t, cfg.Validate())
}
