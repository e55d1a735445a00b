package cssast

import "strings"

// ToCSS serializes the tree with fixed formatting: two-space indents,
// one statement per line, a space before each opening brace, and a
// trailing newline after every statement.
func ToCSS(nodes []*Node) string {
	s := serializer{}
	s.emitNodes(nodes, 0)
	return s.b.String()
}

// ToCSSTracking serializes like ToCSS and additionally records the
// destination byte range of every emitted field in Node.Offsets.
func ToCSSTracking(nodes []*Node) string {
	s := serializer{track: true}
	s.emitNodes(nodes, 0)
	return s.b.String()
}

type serializer struct {
	b     strings.Builder
	track bool
}

func (s *serializer) emitNodes(nodes []*Node, depth int) {
	for _, n := range nodes {
		s.emitNode(n, depth)
	}
}

func (s *serializer) emitNode(n *Node, depth int) {
	switch n.Kind {
	case KindComment:
		s.indent(depth)
		s.b.WriteString("/*")
		start := s.b.Len()
		s.b.WriteString(n.Value)
		s.markDst(n, FieldValue, start)
		s.b.WriteString("*/\n")

	case KindDeclaration:
		s.indent(depth)
		start := s.b.Len()
		s.b.WriteString(n.Property)
		s.markDst(n, FieldProperty, start)
		s.b.WriteString(": ")
		start = s.b.Len()
		s.b.WriteString(n.Value)
		s.markDst(n, FieldValue, start)
		if n.Important {
			s.b.WriteString(" !important")
		}
		s.b.WriteString(";\n")

	case KindRule:
		s.indent(depth)
		start := s.b.Len()
		s.b.WriteString(n.Selector)
		s.markDst(n, FieldSelector, start)
		s.b.WriteString(" {")
		s.emitBody(n, depth)

	case KindAtRule:
		s.indent(depth)
		start := s.b.Len()
		s.b.WriteString(n.Name)
		s.markDst(n, FieldName, start)
		if n.Params != "" {
			s.b.WriteByte(' ')
			start = s.b.Len()
			s.b.WriteString(n.Params)
			s.markDst(n, FieldParams, start)
		}
		if n.Nodes == nil {
			s.b.WriteString(";\n")
			return
		}
		s.b.WriteString(" {")
		s.emitBody(n, depth)

	case KindAtRoot:
		// Children surface at the current depth; the container itself
		// emits nothing.
		start := s.b.Len()
		s.emitNodes(n.Nodes, depth)
		s.markDst(n, FieldBody, start)
	}
}

// emitBody writes everything after the opening brace: the newline, the
// indented children, and the closing brace line. The body range covers
// the interior between the braces.
func (s *serializer) emitBody(n *Node, depth int) {
	start := s.b.Len()
	s.b.WriteByte('\n')
	s.emitNodes(n.Nodes, depth+1)
	s.indent(depth)
	s.markDst(n, FieldBody, start)
	s.b.WriteString("}\n")
}

func (s *serializer) indent(depth int) {
	for i := 0; i < depth; i++ {
		s.b.WriteString("  ")
	}
}

// markDst records [start, current) as the destination range of field.
func (s *serializer) markDst(n *Node, field string, start int) {
	if !s.track {
		return
	}
	n.SetDst(field, start, s.b.Len())
}
