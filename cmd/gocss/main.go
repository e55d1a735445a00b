// Package main is the entry point for the gocss CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gocss/internal/cli"
	"github.com/yaklabco/gocss/internal/logging"
	"github.com/yaklabco/gocss/pkg/cssparse"
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

	err := rootCmd.Execute()
	if err != nil {
		// Parse errors are already rendered with source context by the
		// failing command.
		var parseErr *cssparse.ParseError
		if !errors.As(err, &parseErr) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
	}

	return cli.ExitCodeFor(err)
}
