// Package cssparse turns CSS text into a cssast tree. The scanner is a
// single left-to-right pass over the input with an explicit stack of
// open blocks; block, selector, and value boundaries are decided by
// character-class lookahead rather than a token grammar.
package cssparse

import (
	"strings"

	"github.com/yaklabco/gocss/pkg/cssast"
)

const importantSuffix = "!important"

// Parse parses CSS text into a sequence of top-level nodes. No offset
// bookkeeping is performed; use ParseTracking when source offsets are
// needed.
func Parse(text string) ([]*cssast.Node, error) {
	return parse(text, false)
}

// ParseTracking parses like Parse and records the source byte range of
// every recognized field in each node's Offsets.
func ParseTracking(text string) ([]*cssast.Node, error) {
	return parse(text, true)
}

func parse(text string, track bool) ([]*cssast.Node, error) {
	p := &parser{
		text:     text,
		track:    track,
		ast:      []*cssast.Node{},
		bufStart: -1,
		colonSrc: -1,
		valueSrc: -1,
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.ast, nil
}

type parser struct {
	text  string
	track bool
	i     int

	ast     []*cssast.Node
	license []*cssast.Node
	stack   []*cssast.Node
	opens   []int

	// buf accumulates the current statement with runs of whitespace
	// collapsed to single spaces and comments dropped. sigLen is the
	// buffer length after the last significant byte; anything past it
	// is trailing collapsed whitespace. An escaped space counts as
	// significant, so sigLen rather than a blind trim decides where
	// the statement ends.
	buf    []byte
	sigLen int

	// Source markers for the buffered statement. bufStart is the offset
	// of the first buffered byte, colonSrc the first top-level ':',
	// valueSrc the first value byte after it, lastEnd one past the last
	// non-space buffered byte. All reset with the buffer.
	bufStart int
	colonSrc int
	valueSrc int
	lastEnd  int
}

func (p *parser) run() error {
	for p.i < len(p.text) {
		c := p.text[p.i]

		switch {
		case c == '\\':
			// Escapes go into the buffer verbatim with the byte they
			// protect.
			end := p.i + 2
			if end > len(p.text) {
				end = len(p.text)
			}
			p.appendRun(p.i, end)
			p.i = end

		case c == '/' && p.peek(p.i+1) == '*':
			p.scanComment()

		case c == '\'' || c == '"':
			end, err := p.scanStringEnd(p.i)
			if err != nil {
				return err
			}
			p.appendRun(p.i, end)
			p.i = end

		case c == '-' && p.peek(p.i+1) == '-' && len(p.buf) == 0:
			if err := p.scanCustomProperty(); err != nil {
				return err
			}

		case c == ';':
			p.flushStatement()
			p.i++
			p.resetBuf()

		case c == '{':
			p.openBlock()

		case c == '}':
			p.closeBlock()

		case isSpace(c):
			if len(p.buf) > 0 && p.buf[len(p.buf)-1] != ' ' {
				p.buf = append(p.buf, ' ')
			}
			p.i++

		default:
			p.appendByte(c)
			p.i++
		}
	}

	return p.finish()
}

// finish handles end of input: any still-open block is fatal, then a
// trailing statement without its ';' is flushed.
func (p *parser) finish() error {
	if len(p.stack) > 0 {
		open := p.stack[len(p.stack)-1]
		return unbalancedClosing(blockPrelude(open), p.opens[len(p.opens)-1])
	}

	buf := p.trimmedBuf()
	if buf != "" {
		if buf[0] != '@' && !strings.Contains(buf, ":") {
			return unbalancedOpening(buf, p.bufStart)
		}
		p.flushStatement()
	}

	p.flushLicense()
	return nil
}

// appendByte adds one significant byte to the buffer, updating the
// declaration markers.
func (p *parser) appendByte(c byte) {
	if p.bufStart < 0 {
		p.bufStart = p.i
	}
	if c == ':' && p.colonSrc < 0 {
		p.colonSrc = p.i
	} else if p.colonSrc >= 0 && p.valueSrc < 0 {
		p.valueSrc = p.i
	}
	p.lastEnd = p.i + 1
	p.buf = append(p.buf, c)
	p.sigLen = len(p.buf)
}

// appendRun adds text[from:to] to the buffer verbatim.
func (p *parser) appendRun(from, to int) {
	if p.bufStart < 0 {
		p.bufStart = from
	}
	if p.colonSrc >= 0 && p.valueSrc < 0 {
		p.valueSrc = from
	}
	p.lastEnd = to
	p.buf = append(p.buf, p.text[from:to]...)
	p.sigLen = len(p.buf)
}

func (p *parser) resetBuf() {
	p.buf = p.buf[:0]
	p.sigLen = 0
	p.bufStart = -1
	p.colonSrc = -1
	p.valueSrc = -1
	p.lastEnd = 0
}

func (p *parser) trimmedBuf() string {
	return string(p.buf[:p.sigLen])
}

func (p *parser) peek(idx int) byte {
	if idx < len(p.text) {
		return p.text[idx]
	}
	return 0
}

// scanComment consumes a /* ... */ span. License comments (interior
// starting with '!') are held aside and re-inserted at the document
// root before their enclosing top-level node; everything else is
// dropped without touching the buffer, so surrounding whitespace
// collapses on its own.
func (p *parser) scanComment() {
	start := p.i
	end := p.commentEnd(start)

	interiorEnd := end
	if end-start >= 4 && p.text[end-2:end] == "*/" {
		interiorEnd = end - 2
	}

	value := p.text[start+2 : interiorEnd]
	if strings.HasPrefix(value, "!") {
		n := cssast.NewComment(value)
		if p.track {
			n.SetSrc(cssast.FieldValue, start+2, interiorEnd)
		}
		p.license = append(p.license, n)
	}

	p.i = end
}

// commentEnd returns the offset one past the terminating "*/", or the
// end of input for an unterminated comment. An escaped terminator does
// not end the comment.
func (p *parser) commentEnd(start int) int {
	j := start + 2
	for j < len(p.text) {
		switch {
		case p.text[j] == '\\':
			j += 2
		case p.text[j] == '*' && p.peek(j+1) == '/':
			return j + 2
		default:
			j++
		}
	}
	return len(p.text)
}

// scanStringEnd scans a quoted literal starting at start and returns
// the offset one past its closing quote. Escaped quotes do not end the
// literal; the mismatched quote character is ordinary content. A
// newline, a ';' at end of line, or end of input before the closing
// quote is fatal.
func (p *parser) scanStringEnd(start int) (int, error) {
	quote := p.text[start]

	j := start + 1
	for j < len(p.text) {
		c := p.text[j]
		switch {
		case c == '\\':
			j += 2
		case c == quote:
			return j + 1, nil
		case c == ';' && p.atLineBreak(j+1):
			return 0, unterminatedString(p.text[start:j+1]+string(quote), start)
		case c == '\n':
			return 0, unterminatedString(p.text[start:j]+string(quote), start)
		default:
			j++
		}
	}

	return 0, unterminatedString(p.text[start:]+string(quote), start)
}

// atLineBreak reports whether idx starts a line break ("\n" or "\r\n").
func (p *parser) atLineBreak(idx int) bool {
	if p.peek(idx) == '\r' {
		idx++
	}
	return p.peek(idx) == '\n'
}

// flushStatement turns the buffered text into a declaration or a
// body-less at-rule and appends it to the current parent. An empty
// buffer is a no-op.
func (p *parser) flushStatement() {
	buf := p.trimmedBuf()
	if buf == "" {
		return
	}

	var node *cssast.Node
	if buf[0] == '@' {
		node = p.makeAtRule(buf)
	} else {
		node = p.makeDeclaration(buf)
	}
	p.appendNode(node)
}

// openBlock pushes a rule or bodied at-rule for the '{' at the cursor.
func (p *parser) openBlock() {
	buf := p.trimmedBuf()

	var node *cssast.Node
	if strings.HasPrefix(buf, "@") {
		node = p.makeAtRule(buf)
	} else {
		node = cssast.NewRule(buf)
		if p.track {
			if buf == "" {
				node.SetSrc(cssast.FieldSelector, p.i, p.i)
			} else {
				node.SetSrc(cssast.FieldSelector, p.bufStart, p.lastEnd)
			}
		}
	}
	node.Nodes = []*cssast.Node{}

	if p.track {
		// The body covers the interior between the braces; the end is
		// patched in when the block closes.
		node.SetSrc(cssast.FieldBody, p.i+1, p.i+1)
	}

	p.stack = append(p.stack, node)
	p.opens = append(p.opens, p.i)
	p.i++
	p.resetBuf()
}

// closeBlock pops the innermost open block at the '}' under the
// cursor. A last statement without its ';' is flushed into the block
// first. A stray closing brace with nothing open is skipped.
func (p *parser) closeBlock() {
	p.flushStatement()

	if len(p.stack) == 0 {
		p.i++
		p.resetBuf()
		return
	}

	node := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.opens = p.opens[:len(p.opens)-1]

	if p.track {
		node.Field(cssast.FieldBody).Src.End = p.i
	}

	p.appendNode(node)
	p.i++
	p.resetBuf()
}

// appendNode attaches a completed node to the innermost open block, or
// to the document root when nothing is open. Hoisted license comments
// land immediately before their enclosing top-level node.
func (p *parser) appendNode(n *cssast.Node) {
	if len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		top.Nodes = append(top.Nodes, n)
		return
	}
	p.flushLicense()
	p.ast = append(p.ast, n)
}

func (p *parser) flushLicense() {
	if len(p.license) == 0 {
		return
	}
	p.ast = append(p.ast, p.license...)
	p.license = nil
}

// makeDeclaration builds a declaration from buffered statement text.
// buf has collapsed whitespace and no comments.
func (p *parser) makeDeclaration(buf string) *cssast.Node {
	colon := strings.IndexByte(buf, ':')
	if colon < 0 {
		// Permissive: a bare word before '}' or ';' becomes a
		// declaration with an empty value.
		node := cssast.NewDeclaration(buf, "", false)
		if p.track {
			node.SetSrc(cssast.FieldProperty, p.bufStart, p.bufStart+len(buf))
			node.SetSrc(cssast.FieldValue, p.lastEnd, p.lastEnd)
		}
		return node
	}

	property := strings.TrimRight(buf[:colon], " ")
	value := strings.TrimLeft(buf[colon+1:], " ")

	important := false
	if hasImportantSuffix(value) {
		important = true
		value = strings.TrimRight(value[:len(value)-len(importantSuffix)], " ")
	}

	node := cssast.NewDeclaration(property, value, important)
	if p.track {
		node.SetSrc(cssast.FieldProperty, p.bufStart, p.bufStart+len(property))
		p.setValueSrc(node, value, important, p.valueSrc, p.lastEnd)
	}
	return node
}

// setValueSrc records the source range of a declaration value. When
// "!important" was stripped, the range shrinks back past the '!' and
// any whitespace before it.
func (p *parser) setValueSrc(node *cssast.Node, value string, important bool, valStart, valEnd int) {
	if value == "" && !important {
		if valStart < 0 {
			valStart = valEnd
		}
		node.SetSrc(cssast.FieldValue, valStart, valStart)
		return
	}
	if valStart < 0 {
		node.SetSrc(cssast.FieldValue, valEnd, valEnd)
		return
	}
	if important {
		seg := p.text[valStart:valEnd]
		if bang := strings.LastIndexByte(seg, '!'); bang >= 0 {
			valEnd = valStart + len(strings.TrimRight(seg[:bang], " \t\r\n"))
		}
	}
	node.SetSrc(cssast.FieldValue, valStart, valEnd)
}

func hasImportantSuffix(value string) bool {
	return len(value) >= len(importantSuffix) &&
		strings.EqualFold(value[len(value)-len(importantSuffix):], importantSuffix)
}

// makeAtRule builds an at-rule (body attached later by openBlock, or
// left nil for the body-less form) from buffered statement text.
func (p *parser) makeAtRule(buf string) *cssast.Node {
	nameEnd := len(buf)
	for k := 1; k < len(buf); k++ {
		if buf[k] == ' ' || buf[k] == '(' {
			nameEnd = k
			break
		}
	}

	name := buf[:nameEnd]
	params := strings.TrimLeft(buf[nameEnd:], " ")

	node := cssast.NewAtRule(name, params)
	if p.track {
		node.SetSrc(cssast.FieldName, p.bufStart, p.bufStart+len(name))
		if params != "" {
			start := skipSpaceAndComments(p.text, p.bufStart+len(name))
			node.SetSrc(cssast.FieldParams, start, p.lastEnd)
		}
	}
	return node
}

// blockPrelude names an open block for error messages.
func blockPrelude(n *cssast.Node) string {
	if n.Kind == cssast.KindAtRule {
		if n.Params != "" {
			return n.Name + " " + n.Params
		}
		return n.Name
	}
	return n.Selector
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// skipSpaceAndComments advances past whitespace and comment spans
// starting at i.
func skipSpaceAndComments(text string, i int) int {
	for i < len(text) {
		c := text[i]
		if isSpace(c) {
			i++
			continue
		}
		if c == '/' && i+1 < len(text) && text[i+1] == '*' {
			j := i + 2
			for j < len(text) {
				if text[j] == '\\' {
					j += 2
					continue
				}
				if text[j] == '*' && j+1 < len(text) && text[j+1] == '/' {
					j += 2
					break
				}
				j++
			}
			i = j
			continue
		}
		break
	}
	return i
}
