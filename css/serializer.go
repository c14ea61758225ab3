package css

import "strings"

// Serialize writes the textual form of a single node. Grounded verbatim
// on tinycss2's Node._serialize_to dispatch (original_source/tinycss2/ast.py):
// representation-bearing tokens emit their representation, name-bearing
// kinds (ident, at-keyword, hash, function, declaration, at-rule, and a
// dimension's unit) re-escape their name through SerializeIdentifier/
// SerializeName, and whitespace, comments, and literals are written as is.
func Serialize(n *Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// SerializeList writes a sequence of nodes back to back, inserting an
// empty comment between adjacent nodes whose concatenation would
// re-tokenize differently than intended (spec.md §4.5, "comment
// insertion").
func SerializeList(nodes []*Node) string {
	var b strings.Builder
	writeList(&b, nodes)
	return b.String()
}

func writeList(b *strings.Builder, nodes []*Node) {
	for i, n := range nodes {
		if i > 0 && needsCommentBetween(nodes[i-1], n) {
			b.WriteString("/**/")
		}
		writeNode(b, n)
	}
}

func writeNode(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindWhitespace:
		b.WriteString(n.Text)
	case KindComment:
		b.WriteString("/*")
		b.WriteString(n.Text)
		b.WriteString("*/")
	case KindLiteral:
		b.WriteString(n.Text)
	case KindIdent:
		b.WriteString(SerializeIdentifier(n.Text))
	case KindAtKeyword:
		b.WriteByte('@')
		b.WriteString(SerializeIdentifier(n.Text))
	case KindHash:
		b.WriteByte('#')
		if n.IsIdentifier {
			b.WriteString(SerializeIdentifier(n.Text))
		} else {
			b.WriteString(SerializeName(n.Text))
		}
	case KindString, KindURL:
		b.WriteString(n.Representation)
	case KindUnicodeRange:
		writeUnicodeRange(b, n)
	case KindNumber:
		b.WriteString(n.Representation)
	case KindPercentage:
		b.WriteString(n.Representation)
		b.WriteByte('%')
	case KindDimension:
		writeDimension(b, n)
	case KindParenBlock:
		b.WriteByte('(')
		writeList(b, n.Children)
		b.WriteByte(')')
	case KindBracketBlock:
		b.WriteByte('[')
		writeList(b, n.Children)
		b.WriteByte(']')
	case KindCurlyBlock:
		b.WriteByte('{')
		writeList(b, n.Children)
		b.WriteByte('}')
	case KindFunction:
		writeFunction(b, n)
	case KindError:
		writeError(b, n)
	case KindDeclaration:
		b.WriteString(SerializeIdentifier(n.Text))
		b.WriteByte(':')
		writeList(b, n.Children)
		if n.Important {
			b.WriteString("!important")
		}
	case KindQualifiedRule:
		writeList(b, n.Prelude)
		b.WriteByte('{')
		writeList(b, n.Children)
		b.WriteByte('}')
	case KindAtRule:
		b.WriteByte('@')
		b.WriteString(SerializeIdentifier(n.Text))
		writeList(b, n.Prelude)
		if !n.HasBlock {
			b.WriteByte(';')
		} else {
			b.WriteByte('{')
			writeList(b, n.Children)
			b.WriteByte('}')
		}
	}
}

func writeUnicodeRange(b *strings.Builder, n *Node) {
	b.WriteString("U+")
	writeHexUpper(b, n.RangeStart)
	if n.RangeEnd != n.RangeStart {
		b.WriteByte('-')
		writeHexUpper(b, n.RangeEnd)
	}
}

func writeHexUpper(b *strings.Builder, v int) {
	const digits = "0123456789ABCDEF"
	if v == 0 {
		b.WriteByte('0')
		return
	}
	var buf [8]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = digits[v&0xF]
		v >>= 4
	}
	b.Write(buf[i:])
}

// writeDimension implements DimensionToken._serialize_to's scientific-
// notation escape: a unit that is exactly "e"/"E" or starts with "e-"/
// "E-" or with "e"/"E" and a digit (number "1" with unit "e2" would
// re-tokenize as the number "1e2"), so its first character is written as
// a hex escape.
func writeDimension(b *strings.Builder, n *Node) {
	b.WriteString(n.Representation)
	unit := n.Unit
	if len(unit) > 0 && (unit[0] == 'e' || unit[0] == 'E') &&
		(len(unit) == 1 || unit[1] == '-' || isDigit(rune(unit[1]))) {
		writeCodePointEscape(b, rune(unit[0]))
		b.WriteString(SerializeName(unit[1:]))
	} else {
		b.WriteString(SerializeIdentifier(unit))
	}
}

// writeFunction implements FunctionBlock._serialize_to: the closing ')'
// is omitted if the function's (possibly nested, rightmost-argument)
// innermost function ends in an eof-in-string error, since that error
// already signifies the input ran out before any ')' could appear.
func writeFunction(b *strings.Builder, n *Node) {
	b.WriteString(SerializeIdentifier(n.Text))
	b.WriteByte('(')
	writeList(b, n.Children)
	if len(n.Children) > 0 {
		cur := n
		for cur.Kind == KindFunction && len(cur.Children) > 0 {
			last := cur.Children[len(cur.Children)-1]
			if last.Kind == KindError && last.Text == ErrEOFInString {
				return
			}
			if last.Kind != KindFunction {
				break
			}
			cur = last
		}
	}
	b.WriteByte(')')
}

// writeError implements ParseError._serialize_to's fixed kind->text table.
func writeError(b *strings.Builder, n *Node) {
	switch n.Text {
	case ErrBadString:
		b.WriteString("\"[bad string]\n")
	case ErrBadURL:
		b.WriteString("url([bad url])")
	case ErrStrayParen, ErrStrayBracket, ErrStrayCurly:
		b.WriteString(n.Text)
	case ErrEOFInString, ErrEOFInURL:
		// nothing: the error already signifies truncated input
	default:
		// empty, extra-input, invalid, no-colon: not CSS-syntax tokens,
		// have no standalone textual form.
	}
}
