package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables, after
// seeding the environment from a .env file in the working directory when
// one exists. Already-set variables win over the .env file.
//
// Supported variables:
//
//	FINVAULT_DATABASE_DSN    SQLite DSN of the local store
//	FINVAULT_RATE_URL        quote service endpoint
//	FINVAULT_RATE_CACHE_TTL  quote freshness window (Go duration, e.g. "30m")
func parseEnv(cfg *Config) {
	// missing .env is the normal case
	_ = godotenv.Load()

	if v := os.Getenv("FINVAULT_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("FINVAULT_RATE_URL"); v != "" {
		cfg.RateURL = v
	}
	if v := os.Getenv("FINVAULT_RATE_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RateCacheTTL = d
		}
	}
}
