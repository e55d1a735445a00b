package cssast

import "sort"

// Position is a 1-based line/column pair. Column counts bytes, not
// runes.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// LineTable maps byte offsets to line/column positions. Only '\n'
// starts a new line; a '\r' before it counts as content of the line it
// ends, so CRLF input yields columns one larger than LF input.
type LineTable struct {
	// starts[i] is the byte offset of the first byte of line i+1.
	starts []int
}

// BuildLineTable scans text once and returns its line table.
func BuildLineTable(text string) *LineTable {
	starts := make([]int, 1, len(text)/16+1)
	starts[0] = 0

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return &LineTable{starts: starts}
}

// LineCount returns the number of lines in the table. Empty text has
// one line.
func (t *LineTable) LineCount() int {
	return len(t.starts)
}

// Find converts a byte offset to a 1-based position. Offsets past the
// end of the text resolve on the last line; negative offsets clamp to
// the start.
func (t *LineTable) Find(offset int) Position {
	if offset < 0 {
		offset = 0
	}

	// First line whose start is past the offset; the offset lives on
	// the line before it.
	idx := sort.Search(len(t.starts), func(i int) bool {
		return t.starts[i] > offset
	}) - 1

	return Position{
		Line:   idx + 1,
		Column: offset - t.starts[idx] + 1,
	}
}

// LineStart returns the byte offset of the first byte of a 1-based
// line, and false if the line number is out of range.
func (t *LineTable) LineStart(line int) (int, bool) {
	if line < 1 || line > len(t.starts) {
		return 0, false
	}
	return t.starts[line-1], true
}
