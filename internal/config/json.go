package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/auratech/finvault/internal/flagx"
	"github.com/auratech/finvault/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "30m" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabaseDSN  string         `json:"database_dsn"`
	RateURL      string         `json:"rate_url"`
	RateCacheTTL timex.Duration `json:"rate_cache_ttl"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags(); with
// no path the function returns without touching cfg. Only fields present
// in the file override the current values. Panics on read or unmarshal
// errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RateURL != "" {
		cfg.RateURL = jc.RateURL
	}
	if jc.RateCacheTTL.Duration != 0 {
		cfg.RateCacheTTL = time.Duration(jc.RateCacheTTL.Duration)
	}
}
