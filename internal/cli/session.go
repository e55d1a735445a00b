package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocss/internal/logging"
	"github.com/yaklabco/gocss/internal/ui/pretty"
	"github.com/yaklabco/gocss/pkg/config"
	"github.com/yaklabco/gocss/pkg/cssparse"
)

// defaultConfigFile is probed in the working directory when --config is
// not given.
const defaultConfigFile = ".gocss.yaml"

// session is the per-invocation state shared by the subcommands:
// resolved configuration and output styling.
type session struct {
	cfg    *config.Config
	styles *pretty.Styles
}

func newSession(cmd *cobra.Command) (*session, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			configPath = defaultConfigFile
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	// --debug wins over the configured level; the root command has
	// already applied it.
	if debug, _ := cmd.Flags().GetBool("debug"); !debug {
		logging.SetLevel(cfg.LogLevel)
	}

	mode := string(cfg.Color)
	if flag := cmd.Flags().Lookup("color"); flag != nil && flag.Changed {
		mode = flag.Value.String()
	}
	if !config.ColorMode(mode).IsValid() {
		return nil, fmt.Errorf("%w: invalid color mode %q", ErrConfig, mode)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(mode, cmd.OutOrStdout()))

	return &session{cfg: cfg, styles: styles}, nil
}

// reportParseError renders a parse failure to stderr with source
// context and returns the error unchanged for exit code mapping.
func reportParseError(cmd *cobra.Command, sess *session, name, source string, err error) error {
	var parseErr *cssparse.ParseError
	if !errors.As(err, &parseErr) {
		return err
	}

	width := pretty.TerminalWidth(cmd.ErrOrStderr(), 0)
	fmt.Fprint(cmd.ErrOrStderr(), sess.styles.FormatParseError(name, source, parseErr, width))

	return err
}
