// Package buildinfo exposes version metadata injected at link time via
// -ldflags, e.g.:
//
//	go build -ldflags "-X github.com/auratech/finvault/internal/buildinfo.Version=1.2.0 \
//	  -X 'github.com/auratech/finvault/internal/buildinfo.Date=$(date +%Y-%m-%d)' \
//	  -X github.com/auratech/finvault/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBuildData writes the build banner to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
