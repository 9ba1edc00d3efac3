package main

import (
	"fmt"

	"github.com/bnema/workbench/internal/cli/cmd"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetVersion(fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate))
	cmd.Execute()
}
