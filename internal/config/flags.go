package config

import (
	"flag"
	"os"
	"time"

	"github.com/auratech/finvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   SQLite DSN of the local store (default from Config)
//	-r string   quote service endpoint (default from Config)
//	-t int      quote cache TTL in minutes (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite DSN of the local store")
	fs.StringVar(&cfg.RateURL, "r", cfg.RateURL, "quote service endpoint")
	rateCacheTTL := fs.Int("t", int(cfg.RateCacheTTL.Minutes()), "quote cache TTL (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RateCacheTTL = time.Duration(*rateCacheTTL) * time.Minute
}
