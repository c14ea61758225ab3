package css

import "testing"

func TestParseComponentValueListBasic(t *testing.T) {
	nodes := ParseComponentValueList("a b  c", Options{})
	var kinds []Kind
	for _, n := range nodes {
		kinds = append(kinds, n.Kind)
	}
	want := []Kind{KindIdent, KindWhitespace, KindIdent, KindWhitespace, KindIdent}
	if len(kinds) != len(want) {
		t.Fatalf("got %d nodes %v, want %d", len(kinds), kinds, len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("node %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestParseComponentValueListSkipWhitespace(t *testing.T) {
	nodes := ParseComponentValueList("a b c", Options{SkipWhitespace: true})
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(nodes))
	}
	for _, n := range nodes {
		if n.Kind != KindIdent {
			t.Errorf("got kind %v, want ident", n.Kind)
		}
	}
}

func TestParseComponentValueBlocks(t *testing.T) {
	nodes := ParseComponentValueList("foo(1, 2) [a] {b}", Options{SkipWhitespace: true})
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3: %v", len(nodes), nodes)
	}
	if nodes[0].Kind != KindFunction || nodes[0].Text != "foo" {
		t.Errorf("node 0: got %v %q, want function foo", nodes[0].Kind, nodes[0].Text)
	}
	if len(nodes[0].Children) != 4 {
		t.Errorf("function args: got %d children, want 4 (number, literal, whitespace, number)", len(nodes[0].Children))
	}
	if nodes[1].Kind != KindBracketBlock {
		t.Errorf("node 1: got %v, want bracket block", nodes[1].Kind)
	}
	if nodes[2].Kind != KindCurlyBlock {
		t.Errorf("node 2: got %v, want curly block", nodes[2].Kind)
	}
}

func TestParseComponentValueUnclosedBlockIsNotAnError(t *testing.T) {
	nodes := ParseComponentValueList("(a b", Options{})
	if len(nodes) != 1 || nodes[0].Kind != KindParenBlock {
		t.Fatalf("got %v, want a single unclosed paren block", nodes)
	}
}

func TestParseComponentValueStrayCloser(t *testing.T) {
	nodes := ParseComponentValueList("a)", Options{})
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	if nodes[1].Kind != KindError || nodes[1].Text != ErrStrayParen {
		t.Errorf("got %v %q, want error %q", nodes[1].Kind, nodes[1].Text, ErrStrayParen)
	}
}

func TestParseOneComponentValueEmpty(t *testing.T) {
	n := ParseComponentValue("   ", Options{})
	if n.Kind != KindError || n.Text != ErrEmpty {
		t.Errorf("got %v %q, want error %q", n.Kind, n.Text, ErrEmpty)
	}
}

func TestParseOneComponentValueExtraInput(t *testing.T) {
	n := ParseComponentValue("a b", Options{})
	if n.Kind != KindError || n.Text != ErrExtraInput {
		t.Errorf("got %v %q, want error %q", n.Kind, n.Text, ErrExtraInput)
	}
}

func TestParseOneComponentValueSingle(t *testing.T) {
	n := ParseComponentValue("  42px  ", Options{})
	if n.Kind != KindDimension || n.Unit != "px" {
		t.Errorf("got %v, want dimension px", n)
	}
}

func TestParseOneDeclaration(t *testing.T) {
	n := ParseOneDeclaration("color: red", Options{})
	if n.Kind != KindDeclaration || n.Text != "color" {
		t.Fatalf("got %v, want declaration color", n)
	}
	if len(n.Children) != 1 || n.Children[0].Kind != KindIdent || n.Children[0].Text != "red" {
		t.Errorf("got children %v, want [ident red]", n.Children)
	}
	if n.Important {
		t.Error("got important=true, want false")
	}
}

func TestParseOneDeclarationImportant(t *testing.T) {
	n := ParseOneDeclaration("color : red   !  important", Options{})
	if n.Kind != KindDeclaration {
		t.Fatalf("got %v, want declaration", n)
	}
	if !n.Important {
		t.Error("got important=false, want true")
	}
	if len(n.Children) != 1 || n.Children[0].Text != "red" {
		t.Errorf("got children %v, want [ident red]", n.Children)
	}
}

func TestParseOneDeclarationNoColon(t *testing.T) {
	n := ParseOneDeclaration("color red", Options{})
	if n.Kind != KindError || n.Text != ErrNoColon {
		t.Errorf("got %v %q, want error %q", n.Kind, n.Text, ErrNoColon)
	}
}

func TestParseDeclarationListSkipsMalformed(t *testing.T) {
	nodes := ParseDeclarationList("color: red; bogus; width: 1px", Options{SkipWhitespace: true})
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3: %v", len(nodes), nodes)
	}
	if nodes[0].Kind != KindDeclaration || nodes[0].Text != "color" {
		t.Errorf("node 0: got %v", nodes[0])
	}
	if nodes[1].Kind != KindError {
		t.Errorf("node 1: got %v, want error", nodes[1])
	}
	if nodes[2].Kind != KindDeclaration || nodes[2].Text != "width" {
		t.Errorf("node 2: got %v", nodes[2])
	}
}

func TestParseDeclarationListWithAtRule(t *testing.T) {
	nodes := ParseDeclarationList("color: red; @top-left { content: 'x' }; width: 1px", Options{SkipWhitespace: true})
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3: %v", len(nodes), nodes)
	}
	if nodes[1].Kind != KindAtRule || nodes[1].Text != "top-left" {
		t.Errorf("node 1: got %v, want at-rule top-left", nodes[1])
	}
}

func TestParseStylesheetQualifiedRule(t *testing.T) {
	rules := ParseStylesheet("a.b { color: red; }", Options{SkipWhitespace: true})
	if len(rules) != 1 || rules[0].Kind != KindQualifiedRule {
		t.Fatalf("got %v, want one qualified rule", rules)
	}
	if len(rules[0].Prelude) == 0 {
		t.Error("expected non-empty prelude")
	}
}

func TestParseStylesheetDropsCDOCDC(t *testing.T) {
	rules := ParseStylesheet("<!-- a {} -->", Options{SkipWhitespace: true})
	if len(rules) != 1 || rules[0].Kind != KindQualifiedRule {
		t.Fatalf("got %v, want one qualified rule (CDO/CDC dropped)", rules)
	}
}

func TestParseRuleListFlagsCDOCDC(t *testing.T) {
	rules := ParseRuleList("<!-- -->", Options{SkipWhitespace: true})
	if len(rules) != 2 {
		t.Fatalf("got %d nodes, want 2 errors for CDO and CDC: %v", len(rules), rules)
	}
	for _, r := range rules {
		if r.Kind != KindError {
			t.Errorf("got %v, want error", r)
		}
	}
}

func TestParseStylesheetAtRuleWithBlock(t *testing.T) {
	rules := ParseStylesheet("@media screen { a { color: red; } }", Options{SkipWhitespace: true})
	if len(rules) != 1 || rules[0].Kind != KindAtRule || rules[0].Text != "media" {
		t.Fatalf("got %v, want at-rule media", rules)
	}
	if !rules[0].HasBlock {
		t.Error("expected HasBlock=true")
	}
}

func TestParseStylesheetUnterminatedRuleIsInvalid(t *testing.T) {
	rules := ParseStylesheet("a.b", Options{SkipWhitespace: true})
	if len(rules) != 1 || rules[0].Kind != KindError || rules[0].Text != ErrInvalid {
		t.Fatalf("got %v, want invalid error", rules)
	}
}
