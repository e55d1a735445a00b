// Package langdetect classifies input content so the CLI can warn when
// a file handed to the CSS parser is probably something else entirely.
// It uses go-enry with a filename hint, plus a small content heuristic
// for unnamed snippets.
package langdetect

import (
	"bytes"

	"github.com/go-enry/go-enry/v2"
)

// LangCSS is the canonical name returned for style sheets.
const LangCSS = "CSS"

// Detect returns the language of content, using the file name as a
// hint when available. Returns "" when nothing can be determined.
func Detect(name string, content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return ""
	}

	// The file name is the strongest signal when present.
	if name != "" {
		if lang := enry.GetLanguage(name, content); lang != "" {
			return lang
		}
	}

	// Short unnamed snippets trip up the classifier; check for the
	// block shapes the scanner understands first.
	if looksLikeStylesheet(content) {
		return LangCSS
	}

	candidates := []string{
		"CSS", "SCSS", "Less", "HTML", "JavaScript",
		"JSON", "YAML", "Markdown", "Text",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return lang
	}

	return ""
}

// IsCSS reports whether lang, as returned by Detect, names a style
// sheet dialect the scanner can reasonably handle. An empty detection
// counts as acceptable.
func IsCSS(lang string) bool {
	switch lang {
	case LangCSS, "SCSS", "Less", "":
		return true
	default:
		return false
	}
}

// looksLikeStylesheet checks for a leading at-rule or a selector
// followed by a declaration block.
func looksLikeStylesheet(content []byte) bool {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '@' {
		return true
	}

	open := bytes.IndexByte(trimmed, '{')
	if open < 0 {
		return false
	}
	block := trimmed[open:]
	colon := bytes.IndexByte(block, ':')
	end := bytes.IndexByte(block, '}')
	return colon >= 0 && end > colon
}
