package cssast_test

import (
	"testing"

	"github.com/yaklabco/gocss/pkg/cssast"
)

func TestLineTableFind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		offset   int
		expected cssast.Position
	}{
		{
			name:     "start of first line",
			text:     "a\nbb\nccc",
			offset:   0,
			expected: cssast.Position{Line: 1, Column: 1},
		},
		{
			name:     "start of second line",
			text:     "a\nbb\nccc",
			offset:   2,
			expected: cssast.Position{Line: 2, Column: 1},
		},
		{
			name:     "start of third line",
			text:     "a\nbb\nccc",
			offset:   5,
			expected: cssast.Position{Line: 3, Column: 1},
		},
		{
			name:     "middle of line",
			text:     "a\nbb\nccc",
			offset:   7,
			expected: cssast.Position{Line: 3, Column: 3},
		},
		{
			name:     "newline belongs to the line it ends",
			text:     "a\nbb\nccc",
			offset:   1,
			expected: cssast.Position{Line: 1, Column: 2},
		},
		{
			name:     "offset past end resolves on last line",
			text:     "a\nbb",
			offset:   10,
			expected: cssast.Position{Line: 2, Column: 9},
		},
		{
			name:     "negative offset clamps to start",
			text:     "abc",
			offset:   -3,
			expected: cssast.Position{Line: 1, Column: 1},
		},
		{
			name:     "empty text",
			text:     "",
			offset:   0,
			expected: cssast.Position{Line: 1, Column: 1},
		},
		{
			name:   "carriage return counts as previous line content",
			text:   "ab\r\ncd",
			offset: 2,
			// The \r sits at column 3 of line 1; line 2 starts after
			// the \n.
			expected: cssast.Position{Line: 1, Column: 3},
		},
		{
			name:     "CRLF line start",
			text:     "ab\r\ncd",
			offset:   4,
			expected: cssast.Position{Line: 2, Column: 1},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			table := cssast.BuildLineTable(testCase.text)
			got := table.Find(testCase.offset)
			if got != testCase.expected {
				t.Errorf("Find(%d) = %+v, want %+v", testCase.offset, got, testCase.expected)
			}
		})
	}
}

func TestLineTableLineCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty", text: "", expected: 1},
		{name: "no newline", text: "abc", expected: 1},
		{name: "trailing newline", text: "abc\n", expected: 2},
		{name: "three lines", text: "a\nbb\nccc", expected: 3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			table := cssast.BuildLineTable(testCase.text)
			if got := table.LineCount(); got != testCase.expected {
				t.Errorf("LineCount() = %d, want %d", got, testCase.expected)
			}
		})
	}
}

func TestLineTableLineStart(t *testing.T) {
	t.Parallel()

	table := cssast.BuildLineTable("a\nbb\nccc")

	tests := []struct {
		line   int
		offset int
		ok     bool
	}{
		{line: 1, offset: 0, ok: true},
		{line: 2, offset: 2, ok: true},
		{line: 3, offset: 5, ok: true},
		{line: 0, offset: 0, ok: false},
		{line: 4, offset: 0, ok: false},
	}

	for _, testCase := range tests {
		offset, ok := table.LineStart(testCase.line)
		if offset != testCase.offset || ok != testCase.ok {
			t.Errorf("LineStart(%d) = (%d, %v), want (%d, %v)",
				testCase.line, offset, ok, testCase.offset, testCase.ok)
		}
	}
}
