// Package main is the entry point for the goemmet CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/goemmet/internal/cli"
	"github.com/yaklabco/goemmet/internal/logging"
	"github.com/yaklabco/goemmet/pkg/scanner"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Parse errors are already rendered with a caret by the command.
		var scanErr *scanner.Error
		if !errors.As(err, &scanErr) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFromError(err)
	}

	return cli.ExitSuccess
}
