package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gocss/pkg/cssast"
	"github.com/yaklabco/gocss/pkg/cssparse"
)

const contextIndent = "        "

// FormatParseError renders a parse failure as a path:line:col
// diagnostic with the offending source line and a caret under the
// error offset. maxWidth bounds the rendered source line; pass 0 for
// no limit.
func (s *Styles) FormatParseError(path, source string, parseErr *cssparse.ParseError, maxWidth int) string {
	table := cssast.BuildLineTable(source)
	pos := table.Find(parseErr.Offset)

	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		pos.Line,
		pos.Column,
	)
	kind := s.ErrorKind.Render("(" + parseErr.Kind.String() + ")")

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(parseErr.Message),
		kind,
	))

	line := sourceLineAt(source, table, pos.Line)
	builder.WriteString(s.FormatSourceContext(line, pos.Column, maxWidth))

	return builder.String()
}

// FormatSourceContext formats a source line with a caret marker under
// the given 1-based column.
func (s *Styles) FormatSourceContext(line string, column, maxWidth int) string {
	if maxWidth > 0 {
		limit := maxWidth - len(contextIndent)
		if limit > 0 && len(line) > limit {
			line = line[:limit]
		}
	}

	var builder strings.Builder
	builder.WriteString(contextIndent + s.SourceLine.Render(line) + "\n")

	if column > 0 && column <= len(line)+1 {
		padding := contextIndent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// sourceLineAt extracts one 1-based line from source, without its line
// break.
func sourceLineAt(source string, table *cssast.LineTable, line int) string {
	start, ok := table.LineStart(line)
	if !ok {
		return ""
	}
	end := len(source)
	if next, ok := table.LineStart(line + 1); ok {
		end = next - 1 // drop the '\n'
	}
	if end > start && source[end-1] == '\r' {
		end--
	}
	return source[start:end]
}
