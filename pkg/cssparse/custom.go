package cssparse

import (
	"strings"

	"github.com/yaklabco/gocss/pkg/cssast"
)

// scanCustomProperty consumes a whole --property: value declaration
// starting at the '-' under the cursor. The value is captured as a raw
// span up to the first top-level ';' or the enclosing '}': a {...}
// block inside the value is kept verbatim (comments, strings, inner
// ';' and '}' included), comments outside blocks are kept too, and an
// escaped ';' does not terminate the value. Whitespace collapses to
// single spaces only outside blocks.
func (p *parser) scanCustomProperty() error {
	text := p.text
	start := p.i

	nameEnd := start
	for nameEnd < len(text) {
		c := text[nameEnd]
		if c == '\\' {
			nameEnd += 2
			continue
		}
		if isSpace(c) || c == ':' || c == ';' || c == '{' || c == '}' {
			break
		}
		if c == '/' && nameEnd+1 < len(text) && text[nameEnd+1] == '*' {
			break
		}
		nameEnd++
	}
	if nameEnd > len(text) {
		nameEnd = len(text)
	}
	property := text[start:nameEnd]

	j := skipSpaceAndComments(text, nameEnd)
	if j >= len(text) || text[j] != ':' {
		// No value at all. Leave the terminator for the main loop.
		p.emitCustomProperty(property, "", false, start, nameEnd, nameEnd, nameEnd)
		p.i = j
		p.resetBuf()
		return nil
	}
	j++
	for j < len(text) && isSpace(text[j]) {
		j++
	}

	valStart := j
	lastEnd := valStart
	depth := 0
	sig := 0
	var val []byte

scan:
	for j < len(text) {
		c := text[j]
		switch {
		case c == '\\':
			end := j + 2
			if end > len(text) {
				end = len(text)
			}
			val = append(val, text[j:end]...)
			j, lastEnd, sig = end, end, len(val)

		case c == '/' && j+1 < len(text) && text[j+1] == '*':
			end := p.commentEnd(j)
			val = append(val, text[j:end]...)
			j, lastEnd, sig = end, end, len(val)

		case c == '\'' || c == '"':
			end, err := p.scanStringEnd(j)
			if err != nil {
				return err
			}
			val = append(val, text[j:end]...)
			j, lastEnd, sig = end, end, len(val)

		case c == '{':
			depth++
			val = append(val, c)
			j++
			lastEnd, sig = j, len(val)

		case c == '}':
			if depth == 0 {
				break scan
			}
			depth--
			val = append(val, c)
			j++
			lastEnd, sig = j, len(val)

		case c == ';':
			if depth == 0 {
				break scan
			}
			val = append(val, c)
			j++
			lastEnd, sig = j, len(val)

		case isSpace(c):
			// Collapses to one space outside blocks, verbatim inside.
			if depth > 0 {
				val = append(val, c)
			} else if len(val) > 0 && val[len(val)-1] != ' ' {
				val = append(val, ' ')
			}
			j++

		default:
			val = append(val, c)
			j++
			lastEnd, sig = j, len(val)
		}
	}

	value := string(val[:sig])
	important := false
	if hasImportantSuffix(value) {
		important = true
		value = strings.TrimRight(value[:len(value)-len(importantSuffix)], " ")
	}

	p.emitCustomProperty(property, value, important, start, nameEnd, valStart, lastEnd)

	// Consume the terminating ';'; a '}' belongs to the enclosing block.
	if j < len(text) && text[j] == ';' {
		j++
	}
	p.i = j
	p.resetBuf()
	return nil
}

func (p *parser) emitCustomProperty(property, value string, important bool, propStart, propEnd, valStart, valEnd int) {
	node := cssast.NewDeclaration(property, value, important)
	if p.track {
		node.SetSrc(cssast.FieldProperty, propStart, propEnd)
		p.setValueSrc(node, value, important, valStart, valEnd)
	}
	p.appendNode(node)
}
