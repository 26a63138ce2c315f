// Package main is the entry point for the docstyle CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/docstyle/internal/cli"
	"github.com/yaklabco/docstyle/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/docstyle/pkg/check/rules"
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
		// A bare ExitError is just a signal for the exit code.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) || exitErr.Err != nil {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeForError(err)
	}

	return cli.ExitSuccess
}
