// Package sourcemap builds decoded source maps from a tree parsed and
// serialized with offset tracking. The output is the raw mapping
// table; encoding into an on-disk source-map format is left to
// downstream tools.
package sourcemap

import (
	"sort"

	"github.com/yaklabco/gocss/pkg/cssast"
)

// DefaultSourceName is used when BuildOptions.SourceName is empty. The
// source is synthetic: the builder maps one in-memory buffer to
// another.
const DefaultSourceName = "input.css"

// Mapping relates one generated position to one original position.
// Lines and columns are 1-based.
type Mapping struct {
	GeneratedLine   int    `json:"generatedLine"`
	GeneratedColumn int    `json:"generatedColumn"`
	OriginalLine    int    `json:"originalLine"`
	OriginalColumn  int    `json:"originalColumn"`
	OriginalSource  string `json:"originalSource"`
	Name            string `json:"name,omitempty"`
}

// DecodedSourceMap is a sorted, deduplicated decoded mapping table.
type DecodedSourceMap struct {
	Sources  []string  `json:"sources"`
	Mappings []Mapping `json:"mappings"`
}

// BuildOptions configures Build. AST must have been parsed from
// Original with ParseTracking and serialized into Generated with
// ToCSSTracking.
type BuildOptions struct {
	Original   string
	Generated  string
	SourceName string
	AST        []*cssast.Node
}

// Build walks the tree once and emits a start and an end mapping for
// every field that carries both a source and a destination range.
// Fields never emitted by the serializer (a body-less at-rule's body,
// a synthetic node's missing offsets) are skipped. Mappings come back
// sorted by generated position; when several fields land on the same
// generated position only the first-discovered one is kept.
func Build(opts BuildOptions) *DecodedSourceMap {
	source := opts.SourceName
	if source == "" {
		source = DefaultSourceName
	}

	original := cssast.BuildLineTable(opts.Original)
	generated := cssast.BuildLineTable(opts.Generated)

	var mappings []Mapping

	//nolint:errcheck,revive // the callback never returns an error
	cssast.Walk(opts.AST, func(n *cssast.Node, _ *cssast.Node) (cssast.WalkStatus, error) {
		for _, field := range cssast.OffsetFields(n.Kind) {
			fo := n.Field(field)
			if fo == nil || fo.Src == nil || fo.Dst == nil {
				continue
			}
			mappings = append(mappings,
				mapping(original, generated, fo.Src.Start, fo.Dst.Start, source),
				mapping(original, generated, fo.Src.End, fo.Dst.End, source),
			)
		}
		return cssast.WalkContinue, nil
	})

	sort.SliceStable(mappings, func(a, b int) bool {
		if mappings[a].GeneratedLine != mappings[b].GeneratedLine {
			return mappings[a].GeneratedLine < mappings[b].GeneratedLine
		}
		return mappings[a].GeneratedColumn < mappings[b].GeneratedColumn
	})

	deduped := mappings[:0]
	for _, m := range mappings {
		if len(deduped) > 0 {
			last := deduped[len(deduped)-1]
			if last.GeneratedLine == m.GeneratedLine && last.GeneratedColumn == m.GeneratedColumn {
				continue
			}
		}
		deduped = append(deduped, m)
	}

	return &DecodedSourceMap{
		Sources:  []string{source},
		Mappings: deduped,
	}
}

func mapping(original, generated *cssast.LineTable, srcOffset, dstOffset int, source string) Mapping {
	op := original.Find(srcOffset)
	gp := generated.Find(dstOffset)
	return Mapping{
		GeneratedLine:   gp.Line,
		GeneratedColumn: gp.Column,
		OriginalLine:    op.Line,
		OriginalColumn:  op.Column,
		OriginalSource:  source,
	}
}
