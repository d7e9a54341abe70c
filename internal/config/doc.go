// Package config loads runtime configuration for the finvault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   SQLite DSN of the local store
//	-r string   quote service endpoint
//	-t int      quote cache TTL (minutes)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30m" or integer nanoseconds:
//
//	{
//	  "database_dsn": "file:finvault.db",
//	  "rate_url": "https://dolarapi.com/v1/dolares/blue",
//	  "rate_cache_ttl": "30m"
//	}
//
// Primary API
//
//   - type Config                     — holds DatabaseDSN, RateURL and RateCacheTTL
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
