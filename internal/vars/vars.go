// Package vars holds build-time version metadata, stamped via
// -ldflags "-X github.com/woozymasta/texinspect/internal/vars.Version=...".
package vars

import "fmt"

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Print writes the version banner to stdout.
func Print() {
	fmt.Printf("texinspect %s (commit %s, built %s)\n", Version, Commit, BuildDate)
}
