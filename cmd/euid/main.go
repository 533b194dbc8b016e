// euid CLI - generate and inspect extensible unique identifiers
package main

import (
	"os"

	"github.com/getmockd/euid/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.Version, cli.Commit, cli.BuildDate = Version, Commit, BuildDate
	return cli.Run(os.Args[1:], os.Stdout, os.Stderr)
}
