// Package buildinfo reports the version stamped into the binary at link time:
//
//	go build -ldflags "-X .../internal/buildinfo.buildVersion=v1.0.0 \
//	                   -X .../internal/buildinfo.buildDate=2026-08-31"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

// Print writes the build stamp to w.
func Print(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
}
