package css

import "github.com/cssyntax/csssyntax/encoding"

// This file gathers the package's public entry points named in spec.md
// §6, each a thin, documented wrapper over the unexported parser/builder
// machinery in builder.go and rules.go.

// ParseComponentValue implements "parse a component value": leading and
// trailing whitespace is trimmed and exactly one component value must
// remain, otherwise a KindError node of kind ErrEmpty or ErrExtraInput is
// returned in its place.
func ParseComponentValue(input string, opts Options) *Node {
	return parseOneComponentValue(input, opts)
}

// ParseComponentValueList implements "parse a list of component values":
// every component value in input, in order. SkipComments/SkipWhitespace
// in opts drop those tokens at the top level only, never from inside a
// block or function's Children.
func ParseComponentValueList(input string, opts Options) []*Node {
	return parseComponentValueList(input, opts)
}

// ParseOneDeclaration implements "parse a declaration": input must be a
// single "name : value" (with optional "!important"), otherwise a
// KindError node is returned in its place.
func ParseOneDeclaration(input string, opts Options) *Node {
	return parseOneDeclaration(input, opts)
}

// ParseDeclarationList implements "parse a list of declarations": zero or
// more ';'-separated declarations, with at-rules allowed interleaved
// between them. A malformed declaration becomes a KindError node without
// aborting the rest of the list.
func ParseDeclarationList(input string, opts Options) []*Node {
	return parseDeclarationList(input, opts)
}

// ParseRuleList implements "parse a list of rules": qualified rules and
// at-rules at the top level. Unlike ParseStylesheet, CDO/CDC tokens are
// not given HTML-compatibility treatment and surface as KindError nodes.
func ParseRuleList(input string, opts Options) []*Node {
	return parseRuleList(input, opts)
}

// ParseStylesheet implements "parse a stylesheet": like ParseRuleList,
// but top-level "<!--"/"-->" tokens are silently dropped (HTML
// compatibility).
func ParseStylesheet(input string, opts Options) []*Node {
	return parseStylesheet(input, opts)
}

// BytesOptions carries the out-of-band encoding hints accepted by
// ParseStylesheetBytes, mirroring encoding.Options.
type BytesOptions struct {
	ProtocolEncoding    string
	EnvironmentEncoding string
	Options
}

// ParseStylesheetBytes implements "parse a stylesheet" for raw bytes: it
// runs the input byte stream through the fallback-encoding algorithm of
// encoding.Decode (protocol hint, BOM, @charset rule, environment hint,
// UTF-8 default, in that order) before parsing the decoded text as a
// stylesheet. It is the only public entry point that touches anything
// outside the decoded-string model the rest of this package operates on.
func ParseStylesheetBytes(data []byte, opts BytesOptions) []*Node {
	result, _ := encoding.Decode(data, encoding.Options{
		ProtocolEncoding:    opts.ProtocolEncoding,
		EnvironmentEncoding: opts.EnvironmentEncoding,
	})
	return parseStylesheet(result.Text, opts.Options)
}
