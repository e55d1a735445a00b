package sourcemap

import "github.com/yaklabco/gocss/pkg/cssast"

// Translation is the position view of one field's offsets: where the
// field starts and ends in the original text, and (when a tracking
// serialization ran) in the generated text.
type Translation struct {
	OriginalStart cssast.Position
	OriginalEnd   cssast.Position

	// Nil when the field was never emitted.
	GeneratedStart *cssast.Position
	GeneratedEnd   *cssast.Position
}

// TranslationMap resolves one node's tracked fields to positions.
type TranslationMap func(n *cssast.Node) map[string]Translation

// NewTranslationMap builds the line tables for both texts once and
// returns a lookup over them. It is a diagnostic helper: it lets a
// caller check a single node's mapping without building a full source
// map.
func NewTranslationMap(original, generated string) TranslationMap {
	originalTable := cssast.BuildLineTable(original)
	generatedTable := cssast.BuildLineTable(generated)

	return func(n *cssast.Node) map[string]Translation {
		out := make(map[string]Translation)
		for _, field := range cssast.OffsetFields(n.Kind) {
			fo := n.Field(field)
			if fo == nil || fo.Src == nil {
				continue
			}

			tr := Translation{
				OriginalStart: originalTable.Find(fo.Src.Start),
				OriginalEnd:   originalTable.Find(fo.Src.End),
			}
			if fo.Dst != nil {
				start := generatedTable.Find(fo.Dst.Start)
				end := generatedTable.Find(fo.Dst.End)
				tr.GeneratedStart = &start
				tr.GeneratedEnd = &end
			}
			out[field] = tr
		}
		return out
	}
}
