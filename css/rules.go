package css

// parseOneComponentValue implements spec.md §4.4's "parse one component
// value": leading/trailing whitespace is trimmed, and exactly one
// component value must remain.
func parseOneComponentValue(input string, opts Options) *Node {
	b := newBuilder(input, opts)
	all := b.componentValueList(Options{})
	trimmed := trimWhitespace(all)
	if len(trimmed) == 0 {
		return &Node{Kind: KindError, Line: 1, Column: 1, Text: ErrEmpty}
	}
	if len(trimmed) > 1 {
		first := trimmed[0]
		return &Node{Kind: KindError, Line: first.Line, Column: first.Column, Text: ErrExtraInput}
	}
	return trimmed[0]
}

func trimWhitespace(nodes []*Node) []*Node {
	start, end := 0, len(nodes)
	for start < end && nodes[start].Kind == KindWhitespace {
		start++
	}
	for end > start && nodes[end-1].Kind == KindWhitespace {
		end--
	}
	return nodes[start:end]
}

// parseComponentValueList implements "parse a list of component values":
// the full list, only filtered at the top level per opts.
func parseComponentValueList(input string, opts Options) []*Node {
	b := newBuilder(input, opts)
	return b.componentValueList(opts)
}

// parseOneDeclaration implements spec.md §4.4's "parse one declaration".
func parseOneDeclaration(input string, opts Options) *Node {
	b := newBuilder(input, opts)
	all := b.componentValueList(Options{})
	return declarationFrom(all, true)
}

// declarationFrom builds a declaration Node out of a raw component value
// slice already known to sit between two separators (';' or list
// boundaries). atTopLevel controls whether a leading/trailing-only slice
// yields "empty" (single-declaration entry point) — the declaration-list
// entry point simply omits empty slices instead of erroring.
func declarationFrom(nodes []*Node, atTopLevel bool) *Node {
	i := 0
	for i < len(nodes) && nodes[i].Kind == KindWhitespace {
		i++
	}
	if i >= len(nodes) {
		if atTopLevel {
			return &Node{Kind: KindError, Line: 1, Column: 1, Text: ErrEmpty}
		}
		return nil
	}
	first := nodes[i]
	if first.Kind != KindIdent {
		return &Node{Kind: KindError, Line: first.Line, Column: first.Column, Text: ErrInvalid, Message: "declaration must start with an identifier"}
	}
	decl := &Node{Kind: KindDeclaration, Line: first.Line, Column: first.Column, Text: first.Text, Lower: asciiLower(first.Text)}
	i++
	for i < len(nodes) && nodes[i].Kind == KindWhitespace {
		i++
	}
	if i >= len(nodes) || !nodes[i].Is(":") {
		return &Node{Kind: KindError, Line: first.Line, Column: first.Column, Text: ErrNoColon, Message: "expected ':' after declaration name"}
	}
	i++
	value := trimWhitespace(nodes[i:])
	value, important := stripImportant(value)
	decl.Children = value
	decl.Important = important
	return decl
}

// stripImportant implements the right-to-left "!important" scan of
// spec.md §4.4: trailing whitespace, then a literal "!" (optionally
// preceded by whitespace before it) immediately followed (with optional
// whitespace) by an ident whose lower-cased value is "important".
func stripImportant(value []*Node) ([]*Node, bool) {
	end := len(value)
	for end > 0 && value[end-1].Kind == KindWhitespace {
		end--
	}
	if end == 0 || value[end-1].Kind != KindIdent || value[end-1].Lower != "important" {
		return value, false
	}
	j := end - 1
	k := j
	for k > 0 && value[k-1].Kind == KindWhitespace {
		k--
	}
	if k == 0 || !value[k-1].Is("!") {
		return value, false
	}
	rest := k - 1
	for rest > 0 && value[rest-1].Kind == KindWhitespace {
		rest--
	}
	return value[:rest], true
}

// parseDeclarationList implements "parse a list of declarations": a
// sequence of declarations and interleaved at-rules separated by ';'.
// A malformed declaration becomes an error node in place; parsing of the
// rest of the list continues.
func parseDeclarationList(input string, opts Options) []*Node {
	b := newBuilder(input, opts)
	return consumeDeclarationList(b, opts)
}

func consumeDeclarationList(b *builder, opts Options) []*Node {
	var out []*Node
	var pending []*Node
	flush := func() {
		if d := declarationFrom(pending, false); d != nil {
			out = append(out, d)
		}
		pending = nil
	}
	for {
		tok := b.peek()
		switch tok.kind {
		case rawEOF:
			flush()
			return out
		case rawWhitespace:
			if opts.SkipWhitespace && len(pending) == 0 {
				b.advance()
				continue
			}
			pending = append(pending, b.componentValue())
		case rawSemicolon:
			b.advance()
			flush()
		case rawAtKeyword:
			flush()
			out = append(out, consumeAtRule(b))
		default:
			if opts.SkipComments && tok.kind == rawComment {
				b.advance()
				continue
			}
			pending = append(pending, b.componentValue())
		}
	}
}

// parseRuleList implements "parse a list of rules" (non-stylesheet
// mode): CDO/CDC are not special-cased and produce error nodes.
func parseRuleList(input string, opts Options) []*Node {
	b := newBuilder(input, opts)
	return consumeRuleList(b, opts, false)
}

// parseStylesheet implements "parse a stylesheet": like parseRuleList,
// but CDO/CDC tokens are silently dropped at the top level (HTML
// compatibility, per spec.md §4.4).
func parseStylesheet(input string, opts Options) []*Node {
	b := newBuilder(input, opts)
	return consumeRuleList(b, opts, true)
}

func consumeRuleList(b *builder, opts Options, stylesheetMode bool) []*Node {
	var out []*Node
	for {
		tok := b.peek()
		switch tok.kind {
		case rawEOF:
			return out
		case rawWhitespace:
			// Whitespace between rules is not itself a rule-list element;
			// the state table only has it as a self-transition.
			b.advance()
		case rawCDO, rawCDC:
			b.advance()
			if !stylesheetMode {
				text := "-->"
				if tok.kind == rawCDO {
					text = "<!--"
				}
				out = append(out, &Node{Kind: KindError, Line: tok.line, Column: tok.col, Text: ErrInvalid, Message: text + " outside stylesheet mode"})
			}
		case rawAtKeyword:
			out = append(out, consumeAtRule(b))
		default:
			if opts.SkipComments && tok.kind == rawComment {
				b.advance()
				continue
			}
			out = append(out, consumeQualifiedRule(b))
		}
	}
}

// consumeQualifiedRule reads component values into the rule's prelude
// until a top-level {} block (the rule's content) or EOF (an "invalid"
// error, per spec.md §4.4).
func consumeQualifiedRule(b *builder) *Node {
	start := b.peek()
	var prelude []*Node
	for {
		tok := b.peek()
		switch tok.kind {
		case rawEOF:
			return &Node{Kind: KindError, Line: start.line, Column: start.col, Text: ErrInvalid, Message: "qualified rule ended before {} block"}
		case rawOpenCurly:
			block := b.componentValue()
			return &Node{Kind: KindQualifiedRule, Line: start.line, Column: start.col, Prelude: prelude, Children: block.Children}
		default:
			prelude = append(prelude, b.componentValue())
		}
	}
}

// consumeAtRule reads an at-keyword's prelude until ';' (content: none)
// or a top-level {} block (content: the block's content). Per the
// state table, reaching EOF while still in the prelude is itself an
// error, distinct from a well-formed at-rule with no block.
func consumeAtRule(b *builder) *Node {
	kw := b.advance() // rawAtKeyword
	n := &Node{Kind: KindAtRule, Line: kw.line, Column: kw.col, Text: kw.text, Lower: asciiLower(kw.text)}
	for {
		tok := b.peek()
		switch tok.kind {
		case rawEOF:
			return &Node{Kind: KindError, Line: kw.line, Column: kw.col, Text: ErrInvalid, Message: "at-rule ended before ';' or {} block"}
		case rawSemicolon:
			b.advance()
			return n
		case rawOpenCurly:
			block := b.componentValue()
			n.HasBlock = true
			n.Children = block.Children
			return n
		default:
			n.Prelude = append(n.Prelude, b.componentValue())
		}
	}
}
