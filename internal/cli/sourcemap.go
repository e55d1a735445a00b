package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocss/internal/logging"
	"github.com/yaklabco/gocss/pkg/cssast"
	"github.com/yaklabco/gocss/pkg/cssparse"
	"github.com/yaklabco/gocss/pkg/fsutil"
	"github.com/yaklabco/gocss/pkg/sourcemap"
)

const sourcemapLongDescription = `Parse CSS with offset tracking, serialize the tree to canonical form,
and build a decoded source map relating the two. The map is emitted as
JSON with 1-based line and column positions.

The source name recorded in the map defaults to the input path, or to
the configured source_name when reading from stdin.`

type sourcemapFlags struct {
	output     string
	css        string
	sourceName string
}

func newSourcemapCommand() *cobra.Command {
	flags := &sourcemapFlags{}

	cmd := &cobra.Command{
		Use:   "sourcemap [file]",
		Short: "Build a decoded source map for canonicalized CSS",
		Long:  sourcemapLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSourcemap(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the map to file instead of stdout")
	cmd.Flags().StringVar(&flags.css, "css", "", "also write the generated CSS to file")
	cmd.Flags().StringVar(&flags.sourceName, "source-name", "", "source name recorded in the map")

	return cmd
}

func runSourcemap(cmd *cobra.Command, args []string, flags *sourcemapFlags) error {
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

	original := string(content)
	nodes, err := cssparse.ParseTracking(original)
	if err != nil {
		return reportParseError(cmd, sess, name, original, err)
	}

	generated := cssast.ToCSSTracking(nodes)

	sourceName := flags.sourceName
	if sourceName == "" {
		if name != fsutil.StdinName {
			sourceName = name
		} else {
			sourceName = sess.cfg.SourceName
		}
	}

	smap := sourcemap.Build(sourcemap.BuildOptions{
		Original:   original,
		Generated:  generated,
		SourceName: sourceName,
		AST:        nodes,
	})

	logging.Default().Debug("built source map",
		logging.FieldSourceName, sourceName,
		logging.FieldMappings, len(smap.Mappings),
	)

	if flags.css != "" {
		if _, err := fsutil.WriteAtomicIfChanged(cmd.Context(), flags.css, []byte(generated), 0); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}

	data, err := json.MarshalIndent(smap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode source map: %w", err)
	}
	data = append(data, '\n')

	if flags.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	if _, err := fsutil.WriteAtomicIfChanged(cmd.Context(), flags.output, data, 0); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}
