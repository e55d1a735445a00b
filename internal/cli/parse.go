package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocss/internal/logging"
	"github.com/yaklabco/gocss/internal/ui/pretty"
	"github.com/yaklabco/gocss/pkg/cssast"
	"github.com/yaklabco/gocss/pkg/cssparse"
	"github.com/yaklabco/gocss/pkg/fsutil"
	"github.com/yaklabco/gocss/pkg/langdetect"
)

const parseLongDescription = `Parse CSS from a file or stdin and report document statistics.

With --json the full syntax tree is dumped as JSON instead, including
the source offsets recorded for every field.`

type parseFlags struct {
	json bool
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse CSS and report document statistics",
		Long:  parseLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "dump the syntax tree as JSON")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
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

	warnIfNotCSS(name, content)

	nodes, err := cssparse.ParseTracking(string(content))
	if err != nil {
		return reportParseError(cmd, sess, name, string(content), err)
	}

	logging.Default().Debug("parsed document",
		logging.FieldPath, name,
		logging.FieldBytes, len(content),
		logging.FieldNodes, countNodes(nodes),
	)

	if flags.json {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(nodes); err != nil {
			return fmt.Errorf("encode tree: %w", err)
		}
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), sess.styles.FormatParseSummary(summarize(name, content, nodes)))

	return nil
}

// warnIfNotCSS logs a warning when language detection classifies the
// input as something other than CSS. Detection is advisory; parsing
// proceeds regardless.
func warnIfNotCSS(name string, content []byte) {
	hint := ""
	if name != fsutil.StdinName {
		hint = filepath.Base(name)
	}

	lang := langdetect.Detect(hint, content)
	if !langdetect.IsCSS(lang) {
		logging.Default().Warn("input does not look like CSS",
			logging.FieldPath, name,
			logging.FieldLanguage, lang,
		)
	}
}

func summarize(name string, content []byte, nodes []*cssast.Node) pretty.ParseSummary {
	summary := pretty.ParseSummary{
		Path:  name,
		Bytes: len(content),
		Lines: cssast.BuildLineTable(string(content)).LineCount(),
	}

	//nolint:errcheck // The callback never fails.
	_ = cssast.Walk(nodes, func(n *cssast.Node, _ *cssast.Node) (cssast.WalkStatus, error) {
		switch n.Kind {
		case cssast.KindRule:
			summary.Rules++
		case cssast.KindAtRule:
			summary.AtRules++
		case cssast.KindDeclaration:
			summary.Declarations++
		case cssast.KindComment:
			summary.Comments++
		}
		return cssast.WalkContinue, nil
	})

	return summary
}

func countNodes(nodes []*cssast.Node) int {
	total := 0

	//nolint:errcheck // The callback never fails.
	_ = cssast.Walk(nodes, func(_ *cssast.Node, _ *cssast.Node) (cssast.WalkStatus, error) {
		total++
		return cssast.WalkContinue, nil
	})

	return total
}
