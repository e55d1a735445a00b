// Package cli provides the Cobra command structure for gocss.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocss/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gocss command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gocss",
		Short: "A CSS parser, serializer, and source map builder",
		Long: `gocss parses CSS into a mutable syntax tree, serializes the tree back
to canonical form, and builds decoded source maps relating generated
output to the original input.

Input comes from a file argument or from stdin. Parse failures are
reported with line and column positions and a caret under the
offending byte.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Flag errors carry the usage sentinel so run can exit with the
	// sysexits usage code.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newFormatCommand())
	rootCmd.AddCommand(newSourcemapCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
