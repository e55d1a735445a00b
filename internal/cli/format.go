package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocss/internal/logging"
	"github.com/yaklabco/gocss/pkg/cssast"
	"github.com/yaklabco/gocss/pkg/cssparse"
	"github.com/yaklabco/gocss/pkg/fsutil"
)

const formatLongDescription = `Parse CSS from a file or stdin and print it back in canonical form:
two-space indentation, one statement per line, and comments dropped
except license comments, which move to the top of the output.

With --output the result is written atomically to a file instead, and
only when the content actually changed.`

type formatFlags struct {
	output string
}

func newFormatCommand() *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Reprint CSS in canonical form",
		Long:  formatLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string, flags *formatFlags) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	content, name, err := fsutil.ReadSource(cmd.Context(), path, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	nodes, err := cssparse.Parse(string(content))
	if err != nil {
		return reportParseError(cmd, sess, name, string(content), err)
	}

	out := cssast.ToCSS(nodes)

	if flags.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	written, err := fsutil.WriteAtomicIfChanged(cmd.Context(), flags.output, []byte(out), 0)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	logger := logging.Default()
	if written {
		logger.Info("wrote formatted css",
			logging.FieldInput, name,
			logging.FieldOutput, flags.output,
			logging.FieldBytes, len(out),
		)
	} else {
		logger.Info("already formatted", logging.FieldOutput, flags.output)
	}

	return nil
}
