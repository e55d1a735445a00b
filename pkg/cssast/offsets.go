package cssast

// Field names used as keys into Node.Offsets. Each node kind records a
// fixed subset: comments record value; declarations record property and
// value; rules record selector and body; at-rules record name, params,
// and body; at-root records body.
const (
	FieldProperty = "property"
	FieldValue    = "value"
	FieldSelector = "selector"
	FieldName     = "name"
	FieldParams   = "params"
	FieldBody     = "body"
)

// OffsetRange is a half-open [Start, End) byte range.
type OffsetRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered by the range.
func (r OffsetRange) Len() int {
	return r.End - r.Start
}

// Contains reports whether offset falls inside the range.
func (r OffsetRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// FieldOffsets records where one field of a node lives in the original
// text (Src) and in the serialized output (Dst). Src is set by a
// tracking parse; Dst only by a tracking serialization. Either may be
// nil for synthetic nodes inserted by transforms.
type FieldOffsets struct {
	Src *OffsetRange `json:"src,omitempty"`
	Dst *OffsetRange `json:"dst,omitempty"`
}

// Field returns the offsets recorded for the named field, or nil.
func (n *Node) Field(field string) *FieldOffsets {
	if n.Offsets == nil {
		return nil
	}
	return n.Offsets[field]
}

// SetSrc records the source byte range of the named field.
func (n *Node) SetSrc(field string, start, end int) {
	n.fieldOffsets(field).Src = &OffsetRange{Start: start, End: end}
}

// SetDst records the destination byte range of the named field.
func (n *Node) SetDst(field string, start, end int) {
	n.fieldOffsets(field).Dst = &OffsetRange{Start: start, End: end}
}

func (n *Node) fieldOffsets(field string) *FieldOffsets {
	if n.Offsets == nil {
		n.Offsets = make(map[string]*FieldOffsets, 2)
	}
	fo := n.Offsets[field]
	if fo == nil {
		fo = &FieldOffsets{}
		n.Offsets[field] = fo
	}
	return fo
}

// OffsetFields returns the field names a node of the given kind records,
// in declaration order. Used by consumers that need a deterministic
// iteration order over Node.Offsets.
func OffsetFields(kind Kind) []string {
	switch kind {
	case KindComment:
		return []string{FieldValue}
	case KindDeclaration:
		return []string{FieldProperty, FieldValue}
	case KindRule:
		return []string{FieldSelector, FieldBody}
	case KindAtRule:
		return []string{FieldName, FieldParams, FieldBody}
	case KindAtRoot:
		return []string{FieldBody}
	default:
		return nil
	}
}
