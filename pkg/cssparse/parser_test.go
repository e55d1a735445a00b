package cssparse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/yaklabco/gocss/pkg/cssast"
	"github.com/yaklabco/gocss/pkg/cssparse"
)

// TestParseSerialize drives the parser through the serializer: the
// expected string pins down both the recognized structure and the
// fixed output formatting.
func TestParseSerialize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "rule with declaration",
			input:    ".foo { color: red; }",
			expected: ".foo {\n  color: red;\n}\n",
		},
		{
			name:     "minified input",
			input:    ".foo{color:red}",
			expected: ".foo {\n  color: red;\n}\n",
		},
		{
			name:     "missing semicolon before closing brace",
			input:    ".foo { color: red }",
			expected: ".foo {\n  color: red;\n}\n",
		},
		{
			name:     "two declarations",
			input:    ".foo { color: red; display: block; }",
			expected: ".foo {\n  color: red;\n  display: block;\n}\n",
		},
		{
			name:     "important",
			input:    ".foo { color: red !important; }",
			expected: ".foo {\n  color: red !important;\n}\n",
		},
		{
			name:     "important is case insensitive",
			input:    ".foo { color: red !IMPORTANT; }",
			expected: ".foo {\n  color: red !important;\n}\n",
		},
		{
			name:     "nested rule",
			input:    ".a { color: red; &:hover { color: blue; } }",
			expected: ".a {\n  color: red;\n  &:hover {\n    color: blue;\n  }\n}\n",
		},
		{
			name:     "multi-line selector collapses",
			input:    ".a,\n.b,\n.c {\n}",
			expected: ".a, .b, .c {\n}\n",
		},
		{
			name:     "selector list without spaces keeps none",
			input:    ".a,.b {}",
			expected: ".a,.b {\n}\n",
		},
		{
			name:     "comment between selector tokens collapses to nothing",
			input:    ".foo/*x*/.baz {}",
			expected: ".foo.baz {\n}\n",
		},
		{
			name:     "comment between selector tokens keeps one space",
			input:    ".foo /*x*/.baz {}",
			expected: ".foo .baz {\n}\n",
		},
		{
			name:     "comment inside declaration is dropped",
			input:    ".foo { color: /* note */ red; }",
			expected: ".foo {\n  color: red;\n}\n",
		},
		{
			name:     "multi-line value collapses",
			input:    ".a { padding:\n  1px\n  2px; }",
			expected: ".a {\n  padding: 1px 2px;\n}\n",
		},
		{
			name:     "body-less at-rule",
			input:    "@import \"base.css\";",
			expected: "@import \"base.css\";\n",
		},
		{
			name:     "bare at-rule at end of input",
			input:    "@tailwind utilities",
			expected: "@tailwind utilities;\n",
		},
		{
			name:     "bare at-rule without params",
			input:    "@something;",
			expected: "@something;\n",
		},
		{
			name:     "at-rule with body",
			input:    "@media (min-width: 600px) { .wide { margin: 0 auto; } }",
			expected: "@media (min-width: 600px) {\n  .wide {\n    margin: 0 auto;\n  }\n}\n",
		},
		{
			name:     "at-rule prelude without space before paren",
			input:    "@media(width>600px){}",
			expected: "@media (width>600px) {\n}\n",
		},
		{
			name:     "at-rule nested in rule",
			input:    ".a { @media screen { color: red; } }",
			expected: ".a {\n  @media screen {\n    color: red;\n  }\n}\n",
		},
		{
			name:     "bare at-rule as last construct in block",
			input:    ".a { @apply flex }",
			expected: ".a {\n  @apply flex;\n}\n",
		},
		{
			name:     "string with mismatched quotes",
			input:    ".a { content: \"it's ok\"; }",
			expected: ".a {\n  content: \"it's ok\";\n}\n",
		},
		{
			name:     "string with escaped quote",
			input:    `.a { content: "a\"b"; }`,
			expected: ".a {\n  content: \"a\\\"b\";\n}\n",
		},
		{
			name:     "single quoted string",
			input:    ".a { content: 'a \"b\" c'; }",
			expected: ".a {\n  content: 'a \"b\" c';\n}\n",
		},
		{
			name:     "url value with colon",
			input:    ".a { background: url(http://example.com/x.png); }",
			expected: ".a {\n  background: url(http://example.com/x.png);\n}\n",
		},
		{
			name:     "declaration at end of input without semicolon",
			input:    "color: red",
			expected: "color: red;\n",
		},
		{
			name:     "stray closing brace is skipped",
			input:    "}\n.a { color: red; }",
			expected: ".a {\n  color: red;\n}\n",
		},
		{
			name:     "crlf input",
			input:    ".a {\r\n  color: red;\r\n}\r\n",
			expected: ".a {\n  color: red;\n}\n",
		},
		{
			name:     "escaped characters in selector",
			input:    `.a\:b { color: red; }`,
			expected: ".a\\:b {\n  color: red;\n}\n",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "  \n\t  ",
			expected: "",
		},
		{
			name:     "empty rule",
			input:    ".a {}",
			expected: ".a {\n}\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			nodes, err := cssparse.Parse(testCase.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", testCase.input, err)
			}
			got := cssast.ToCSS(nodes)
			if got != testCase.expected {
				t.Errorf("ToCSS(Parse(%q)) = %q, want %q", testCase.input, got, testCase.expected)
			}
		})
	}
}

func TestParseLicenseComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "top level license kept",
			input:    "/*! Copyright */\n.a { color: red; }",
			expected: "/*! Copyright */\n.a {\n  color: red;\n}\n",
		},
		{
			name:     "license inside rule body hoists before the rule",
			input:    ".a { /*! L */ color: red; }",
			expected: "/*! L */\n.a {\n  color: red;\n}\n",
		},
		{
			name:     "license inside selector hoists before the rule",
			input:    ".a /*! L */ .b { color: red; }",
			expected: "/*! L */\n.a .b {\n  color: red;\n}\n",
		},
		{
			name:     "license inside nested block hoists to top",
			input:    ".a { .b { /*! deep */ color: red; } }",
			expected: "/*! deep */\n.a {\n  .b {\n    color: red;\n  }\n}\n",
		},
		{
			name:     "document order preserved across licenses",
			input:    "/*! one */\n.a {}\n/*! two */\n.b {}",
			expected: "/*! one */\n.a {\n}\n/*! two */\n.b {\n}\n",
		},
		{
			name:     "trailing license flushes at end of input",
			input:    ".a {}\n/*! tail */",
			expected: ".a {\n}\n/*! tail */\n",
		},
		{
			name:     "non-license comments vanish",
			input:    "/* a */.a {/* b */}/* c */",
			expected: ".a {\n}\n",
		},
		{
			name:     "unterminated license comment runs to end of input",
			input:    ".a {}\n/*! open",
			expected: ".a {\n}\n/*! open*/\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			nodes, err := cssparse.Parse(testCase.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", testCase.input, err)
			}
			got := cssast.ToCSS(nodes)
			if got != testCase.expected {
				t.Errorf("ToCSS(Parse(%q)) = %q, want %q", testCase.input, got, testCase.expected)
			}
		})
	}
}

func TestParseCustomProperties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		property  string
		value     string
		important bool
	}{
		{
			name:     "simple",
			input:    ".a { --foo: bar; }",
			property: "--foo",
			value:    "bar",
		},
		{
			name:     "empty value",
			input:    ".a { --foo: ; }",
			property: "--foo",
			value:    "",
		},
		{
			name:     "block captured verbatim with comment",
			input:    ".a { --foo: { a: 1; /* ; */ b: 2 }; }",
			property: "--foo",
			value:    "{ a: 1; /* ; */ b: 2 }",
		},
		{
			name:     "comment outside block preserved",
			input:    ".a { --foo: red /* keep me */ blue; }",
			property: "--foo",
			value:    "red /* keep me */ blue",
		},
		{
			name:     "escaped semicolon does not terminate",
			input:    `.a { --foo: a\;b; }`,
			property: "--foo",
			value:    `a\;b`,
		},
		{
			name:     "string with semicolon does not terminate",
			input:    ".a { --foo: \"a;b\"; }",
			property: "--foo",
			value:    "\"a;b\"",
		},
		{
			name:     "multi-line value collapses outside blocks",
			input:    ".a { --foo: one\n    two; }",
			property: "--foo",
			value:    "one two",
		},
		{
			name:     "newlines inside block preserved",
			input:    ".a { --foo: {\n  a: 1;\n}; }",
			property: "--foo",
			value:    "{\n  a: 1;\n}",
		},
		{
			name:      "important stripped",
			input:     ".a { --foo: bar !important; }",
			property:  "--foo",
			value:     "bar",
			important: true,
		},
		{
			name:     "terminated by closing brace",
			input:    ".a { --foo: bar }",
			property: "--foo",
			value:    "bar",
		},
		{
			name:     "top level custom property",
			input:    "--foo: bar;",
			property: "--foo",
			value:    "bar",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			nodes, err := cssparse.Parse(testCase.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", testCase.input, err)
			}

			decl := cssast.FindFirst(nodes, func(n *cssast.Node) bool {
				return n.Kind == cssast.KindDeclaration
			})
			if decl == nil {
				t.Fatalf("Parse(%q) produced no declaration", testCase.input)
			}
			if decl.Property != testCase.property {
				t.Errorf("property = %q, want %q", decl.Property, testCase.property)
			}
			if decl.Value != testCase.value {
				t.Errorf("value = %q, want %q", decl.Value, testCase.value)
			}
			if decl.Important != testCase.important {
				t.Errorf("important = %v, want %v", decl.Important, testCase.important)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		kind     cssparse.ErrorKind
		contains string
	}{
		{
			name:     "missing closing brace names selector",
			input:    ".foo {\n color: red;\n",
			kind:     cssparse.ErrUnbalancedClosingBrace,
			contains: ".foo",
		},
		{
			name:     "missing closing brace names the still-open block",
			input:    ".foo { .bar { color: red; }",
			kind:     cssparse.ErrUnbalancedClosingBrace,
			contains: ".foo",
		},
		{
			name:     "missing closing brace names at-rule prelude",
			input:    "@media (min-width: 600px) {\n",
			kind:     cssparse.ErrUnbalancedClosingBrace,
			contains: "@media (min-width: 600px)",
		},
		{
			name:     "unterminated string at end of input",
			input:    `content: "abc`,
			kind:     cssparse.ErrUnterminatedString,
			contains: `"abc`,
		},
		{
			name:     "unterminated string at newline",
			input:    ".a { content: \"abc\n}",
			kind:     cssparse.ErrUnterminatedString,
			contains: `"abc`,
		},
		{
			name:     "unterminated string at semicolon before newline",
			input:    ".a { content: \"abc;\ncolor: red; }",
			kind:     cssparse.ErrUnterminatedString,
			contains: `"abc;`,
		},
		{
			name:     "selector never finds opening brace",
			input:    ".foo",
			kind:     cssparse.ErrUnbalancedOpeningBrace,
			contains: ".foo",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			nodes, err := cssparse.Parse(testCase.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", testCase.input)
			}
			if nodes != nil {
				t.Error("no partial AST may be returned on error")
			}

			var parseErr *cssparse.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if parseErr.Kind != testCase.kind {
				t.Errorf("kind = %v, want %v", parseErr.Kind, testCase.kind)
			}
			if !strings.Contains(parseErr.Message, testCase.contains) {
				t.Errorf("message %q does not contain %q", parseErr.Message, testCase.contains)
			}
		})
	}
}

func TestParseTrackingSrcOffsets(t *testing.T) {
	t.Parallel()

	input := ".foo { color: red; }"
	nodes, err := cssparse.ParseTracking(input)
	if err != nil {
		t.Fatalf("ParseTracking returned error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d top-level nodes, want 1", len(nodes))
	}

	rule := nodes[0]
	decl := rule.Nodes[0]

	assertSrcText := func(n *cssast.Node, field, want string) {
		t.Helper()
		fo := n.Field(field)
		if fo == nil || fo.Src == nil {
			t.Fatalf("field %q has no src offsets", field)
		}
		got := input[fo.Src.Start:fo.Src.End]
		if got != want {
			t.Errorf("src of %q = %q, want %q", field, got, want)
		}
		if fo.Dst != nil {
			t.Errorf("field %q has dst before any tracking serialization", field)
		}
	}

	assertSrcText(rule, cssast.FieldSelector, ".foo")
	assertSrcText(rule, cssast.FieldBody, " color: red; ")
	assertSrcText(decl, cssast.FieldProperty, "color")
	assertSrcText(decl, cssast.FieldValue, "red")
}

func TestParseTrackingAtRuleOffsets(t *testing.T) {
	t.Parallel()

	input := "@media (min-width: 600px) { .a { color: red; } }"
	nodes, err := cssparse.ParseTracking(input)
	if err != nil {
		t.Fatalf("ParseTracking returned error: %v", err)
	}

	atRule := nodes[0]
	name := atRule.Field(cssast.FieldName)
	params := atRule.Field(cssast.FieldParams)
	if name == nil || name.Src == nil || params == nil || params.Src == nil {
		t.Fatal("at-rule offsets missing")
	}
	if got := input[name.Src.Start:name.Src.End]; got != "@media" {
		t.Errorf("name src = %q", got)
	}
	if got := input[params.Src.Start:params.Src.End]; got != "(min-width: 600px)" {
		t.Errorf("params src = %q", got)
	}
}

func TestParseTrackingImportantValueOffsets(t *testing.T) {
	t.Parallel()

	input := ".a { color: red !important; }"
	nodes, err := cssparse.ParseTracking(input)
	if err != nil {
		t.Fatalf("ParseTracking returned error: %v", err)
	}

	decl := nodes[0].Nodes[0]
	fo := decl.Field(cssast.FieldValue)
	if fo == nil || fo.Src == nil {
		t.Fatal("value offsets missing")
	}
	if got := input[fo.Src.Start:fo.Src.End]; got != "red" {
		t.Errorf("value src = %q, want %q", got, "red")
	}
}

// TestParseTrackingContainment checks that every child's tracked
// ranges nest inside the enclosing body range.
func TestParseTrackingContainment(t *testing.T) {
	t.Parallel()

	input := "@media screen {\n  .a {\n    color: red;\n    --x: { a; b };\n  }\n}\n"
	nodes, err := cssparse.ParseTracking(input)
	if err != nil {
		t.Fatalf("ParseTracking returned error: %v", err)
	}

	err = cssast.Walk(nodes, func(n *cssast.Node, parent *cssast.Node) (cssast.WalkStatus, error) {
		for _, field := range cssast.OffsetFields(n.Kind) {
			fo := n.Field(field)
			if fo == nil || fo.Src == nil {
				continue
			}
			if fo.Src.End < fo.Src.Start {
				t.Errorf("%v %s: src end %d before start %d", n.Kind, field, fo.Src.End, fo.Src.Start)
			}
			if parent == nil {
				continue
			}
			body := parent.Field(cssast.FieldBody)
			if body == nil || body.Src == nil {
				t.Errorf("parent %v has no body range", parent.Kind)
				continue
			}
			if fo.Src.Start < body.Src.Start || fo.Src.End > body.Src.End {
				t.Errorf("%v %s range [%d,%d) escapes parent body [%d,%d)",
					n.Kind, field, fo.Src.Start, fo.Src.End, body.Src.Start, body.Src.End)
			}
		}
		return cssast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk error: %v", err)
	}
}

func TestParseWithoutTrackingRecordsNoOffsets(t *testing.T) {
	t.Parallel()

	nodes, err := cssparse.Parse(".a { color: red; }")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	err = cssast.Walk(nodes, func(n *cssast.Node, _ *cssast.Node) (cssast.WalkStatus, error) {
		if n.Offsets != nil {
			t.Errorf("%v carries offsets without tracking", n.Kind)
		}
		return cssast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk error: %v", err)
	}
}

func TestParseDocumentOrderPreserved(t *testing.T) {
	t.Parallel()

	input := ".a { color: red; .b { left: 0; } display: block; @apply flex; --x: 1; }"
	nodes, err := cssparse.Parse(input)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	kinds := make([]cssast.Kind, 0, 5)
	for _, child := range nodes[0].Nodes {
		kinds = append(kinds, child.Kind)
	}
	expected := []cssast.Kind{
		cssast.KindDeclaration,
		cssast.KindRule,
		cssast.KindDeclaration,
		cssast.KindAtRule,
		cssast.KindDeclaration,
	}
	if len(kinds) != len(expected) {
		t.Fatalf("children kinds %v, want %v", kinds, expected)
	}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Errorf("child %d kind = %v, want %v", i, kinds[i], expected[i])
		}
	}
}

func TestSerializeIdempotence(t *testing.T) {
	t.Parallel()

	inputs := []string{
		".foo{color:red}",
		"@media (min-width: 600px) { .wide { margin: 0 auto; } }",
		"/*! lic */\n.a { .b { color: red } }",
		"--x: { a: 1; b: 2 };\n.a { content: 'a \"b\"'; }",
		"@import \"base.css\";\n@tailwind utilities;",
	}

	for _, input := range inputs {
		first, err := cssparse.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", input, err)
		}
		once := cssast.ToCSS(first)

		second, err := cssparse.Parse(once)
		if err != nil {
			t.Fatalf("reparse of %q returned error: %v", once, err)
		}
		twice := cssast.ToCSS(second)

		if once != twice {
			t.Errorf("serialization not idempotent for %q:\nonce:  %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestRoundTripCanonicalInput(t *testing.T) {
	t.Parallel()

	canonical := ".foo {\n  color: red;\n}\n@media (min-width: 600px) {\n  .wide {\n    margin: 0 auto;\n  }\n}\n"

	nodes, err := cssparse.Parse(canonical)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := cssast.ToCSS(nodes); got != canonical {
		t.Errorf("round trip = %q, want %q", got, canonical)
	}
}
