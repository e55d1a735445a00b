package pretty

import (
	"fmt"
	"strings"
)

// ParseSummary holds the statistics printed by the parse command.
type ParseSummary struct {
	Path         string
	Bytes        int
	Lines        int
	Rules        int
	AtRules      int
	Declarations int
	Comments     int
}

// FormatParseSummary renders a short aligned statistics block.
func (s *Styles) FormatParseSummary(summary ParseSummary) string {
	var builder strings.Builder

	builder.WriteString(s.SummaryTitle.Render(summary.Path) + "\n")

	rows := []struct {
		label string
		value int
	}{
		{"bytes", summary.Bytes},
		{"lines", summary.Lines},
		{"rules", summary.Rules},
		{"at-rules", summary.AtRules},
		{"declarations", summary.Declarations},
		{"comments", summary.Comments},
	}
	for _, row := range rows {
		builder.WriteString(fmt.Sprintf("  %-14s %s\n",
			row.label,
			s.SummaryValue.Render(fmt.Sprintf("%d", row.value)),
		))
	}

	return builder.String()
}
