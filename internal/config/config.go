package config

import "time"

// Config holds runtime settings for the finvault CLI.
//
// Fields:
//   - DatabaseDSN: SQLite DSN of the local store file.
//   - RateURL: endpoint of the ARS/USD quote service.
//   - RateCacheTTL: how long a fetched quote is considered fresh.
//
// Units: RateCacheTTL is a time.Duration (e.g., 30*time.Minute).
type Config struct {
	DatabaseDSN  string
	RateURL      string
	RateCacheTTL time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "file:finvault.db"
	c.RateURL = "https://dolarapi.com/v1/dolares/blue"
	c.RateCacheTTL = 30 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (optionally seeded from a .env file), a JSON file
// (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
