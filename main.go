// Command prefixstat computes a positional byte-frequency histogram over the
// leading bytes of every regular file under a set of directories.
package main

import (
	"os"

	"github.com/idelchi/prefixstat/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Set by ldflags
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		os.Exit(1)
	}
}
