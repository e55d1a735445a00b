// Package cssast defines the CSS syntax tree produced by the parser,
// along with the walker, the serializer, and the line table used to
// translate byte offsets into line/column positions.
package cssast

// Kind classifies the type of an AST node.
type Kind uint16

// Node kinds. The set is closed: every node in a tree is one of these.
const (
	// KindComment is a license comment hoisted to the document root.
	// The parser discards all other comments.
	KindComment Kind = iota

	// KindDeclaration is a property: value pair, including custom
	// properties.
	KindDeclaration

	// KindRule is a selector with a braced body.
	KindRule

	// KindAtRule is an @-rule, with or without a braced body.
	KindAtRule

	// KindAtRoot is a synthetic container whose children are emitted at
	// the document root. The parser never produces it; transforms do.
	KindAtRoot
)

// String returns the node kind name.
func (k Kind) String() string {
	switch k {
	case KindComment:
		return "Comment"
	case KindDeclaration:
		return "Declaration"
	case KindRule:
		return "Rule"
	case KindAtRule:
		return "AtRule"
	case KindAtRoot:
		return "AtRoot"
	default:
		return "Unknown"
	}
}

// Node represents a single node in the CSS AST. Which fields are
// meaningful depends on Kind; the rest stay at their zero values.
type Node struct {
	Kind Kind `json:"kind"`

	// Property names the declared property for KindDeclaration. Custom
	// properties keep their leading "--".
	Property string `json:"property,omitempty"`

	// Value holds the declaration value for KindDeclaration (with any
	// "!important" suffix stripped) and the comment text, including the
	// leading '!', for KindComment.
	Value string `json:"value,omitempty"`

	// Important is true when the declaration carried "!important".
	Important bool `json:"important,omitempty"`

	// Selector is the whitespace-normalized selector for KindRule.
	Selector string `json:"selector,omitempty"`

	// Name is the at-rule name for KindAtRule, including the leading '@'.
	Name string `json:"name,omitempty"`

	// Params is the at-rule prelude after the name, or "" when absent.
	Params string `json:"params,omitempty"`

	// Nodes holds the children of KindRule, KindAtRule, and KindAtRoot.
	// For at-rules, nil means the rule has no body at all (it ended with
	// a semicolon), while a non-nil empty slice means an empty {} block.
	Nodes []*Node `json:"nodes,omitempty"`

	// Offsets maps field names (FieldSelector, FieldValue, ...) to their
	// byte ranges in the original and serialized text. Nil unless the
	// tree was parsed with tracking enabled.
	Offsets map[string]*FieldOffsets `json:"offsets,omitempty"`
}

// NewComment returns a comment node with the given interior text.
func NewComment(value string) *Node {
	return &Node{Kind: KindComment, Value: value}
}

// NewDeclaration returns a declaration node.
func NewDeclaration(property, value string, important bool) *Node {
	return &Node{
		Kind:      KindDeclaration,
		Property:  property,
		Value:     value,
		Important: important,
	}
}

// NewRule returns a rule node with the given children.
func NewRule(selector string, nodes ...*Node) *Node {
	if nodes == nil {
		nodes = []*Node{}
	}
	return &Node{Kind: KindRule, Selector: selector, Nodes: nodes}
}

// NewAtRule returns a body-less at-rule node. Assign Nodes to give it
// a body; an empty non-nil slice serializes as an empty block.
func NewAtRule(name, params string) *Node {
	return &Node{Kind: KindAtRule, Name: name, Params: params}
}

// NewAtRoot returns an at-root container with the given children.
func NewAtRoot(nodes ...*Node) *Node {
	if nodes == nil {
		nodes = []*Node{}
	}
	return &Node{Kind: KindAtRoot, Nodes: nodes}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return len(n.Nodes) > 0
}

// Append adds children to the node.
func (n *Node) Append(nodes ...*Node) {
	n.Nodes = append(n.Nodes, nodes...)
}
