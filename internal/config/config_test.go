package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "file:finvault.db", c.DatabaseDSN)
	assert.Equal(t, "https://dolarapi.com/v1/dolares/blue", c.RateURL)
	assert.Equal(t, 30*time.Minute, c.RateCacheTTL)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "file:finvault.db", cfg.DatabaseDSN)
	assert.Equal(t, "https://dolarapi.com/v1/dolares/blue", cfg.RateURL)
	assert.Equal(t, 30*time.Minute, cfg.RateCacheTTL)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("FINVAULT_DATABASE_DSN", "file:override.db")
	t.Setenv("FINVAULT_RATE_CACHE_TTL", "15m")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "file:override.db", cfg.DatabaseDSN)
	assert.Equal(t, "https://dolarapi.com/v1/dolares/blue", cfg.RateURL)
	assert.Equal(t, 15*time.Minute, cfg.RateCacheTTL)
}

func TestParseEnv_IgnoresBadDuration(t *testing.T) {
	t.Setenv("FINVAULT_RATE_CACHE_TTL", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 30*time.Minute, cfg.RateCacheTTL)
}
