package sourcemap_test

import (
	"testing"

	"github.com/yaklabco/gocss/pkg/cssast"
	"github.com/yaklabco/gocss/pkg/cssparse"
	"github.com/yaklabco/gocss/pkg/sourcemap"
)

func TestTranslationMap(t *testing.T) {
	t.Parallel()

	original := ".foo {\n  color: red;\n}\n"
	nodes, generated := buildFixture(t, original)

	translate := sourcemap.NewTranslationMap(original, generated)

	rule := nodes[0]
	decl := rule.Nodes[0]

	ruleView := translate(rule)
	selector, ok := ruleView[cssast.FieldSelector]
	if !ok {
		t.Fatal("selector missing from translation")
	}
	if selector.OriginalStart != (cssast.Position{Line: 1, Column: 1}) {
		t.Errorf("selector original start = %+v", selector.OriginalStart)
	}
	if selector.OriginalEnd != (cssast.Position{Line: 1, Column: 5}) {
		t.Errorf("selector original end = %+v", selector.OriginalEnd)
	}
	if selector.GeneratedStart == nil || *selector.GeneratedStart != (cssast.Position{Line: 1, Column: 1}) {
		t.Errorf("selector generated start = %+v", selector.GeneratedStart)
	}

	declView := translate(decl)
	value, ok := declView[cssast.FieldValue]
	if !ok {
		t.Fatal("value missing from translation")
	}
	if value.OriginalStart != (cssast.Position{Line: 2, Column: 10}) {
		t.Errorf("value original start = %+v", value.OriginalStart)
	}
	if value.GeneratedStart == nil || *value.GeneratedStart != (cssast.Position{Line: 2, Column: 10}) {
		t.Errorf("value generated start = %+v", value.GeneratedStart)
	}
}

func TestTranslationMapWithoutSerialization(t *testing.T) {
	t.Parallel()

	original := ".foo { color: red; }"
	nodes, err := cssparse.ParseTracking(original)
	if err != nil {
		t.Fatalf("ParseTracking returned error: %v", err)
	}

	// No tracking serialization ran, so generated positions are absent.
	translate := sourcemap.NewTranslationMap(original, "")
	view := translate(nodes[0])

	selector, ok := view[cssast.FieldSelector]
	if !ok {
		t.Fatal("selector missing from translation")
	}
	if selector.GeneratedStart != nil || selector.GeneratedEnd != nil {
		t.Error("generated positions must be absent without a tracking serialization")
	}
	if selector.OriginalStart != (cssast.Position{Line: 1, Column: 1}) {
		t.Errorf("selector original start = %+v", selector.OriginalStart)
	}
}

func TestTranslationMapSkipsSyntheticNodes(t *testing.T) {
	t.Parallel()

	translate := sourcemap.NewTranslationMap(".a {}", ".a {\n}\n")
	view := translate(cssast.NewDeclaration("display", "block", false))
	if len(view) != 0 {
		t.Errorf("synthetic node translation = %+v, want empty", view)
	}
}
