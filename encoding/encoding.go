// Package encoding implements the CSS Syntax Module Level 3 "determine
// the fallback encoding" algorithm: turning a byte sequence plus a
// mixture of protocol, BOM, and in-content hints into decoded text. It is
// the injected byte→text collaborator spec.md §1 carves out of the
// css package's scope.
//
// Spec reference: https://www.w3.org/TR/css-syntax-3/#input-byte-stream
package encoding

import (
	"bytes"
	"strings"

	xenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/cssyntax/csssyntax/log"
)

// Options carries the two encoding hints the CSS Syntax algorithm
// consults before falling back to sniffing and UTF-8.
type Options struct {
	// ProtocolEncoding is the encoding declared out-of-band, e.g. an HTTP
	// Content-Type charset parameter. Takes precedence over everything.
	ProtocolEncoding string
	// EnvironmentEncoding is the last-resort hint (the referring
	// document's encoding, a user override, …), consulted only if no
	// protocol encoding, BOM, or @charset rule was found.
	EnvironmentEncoding string
}

// Result reports which rule of the fallback-encoding algorithm fired and
// the resulting decoded text.
type Result struct {
	Text     string
	Encoding string // canonical WHATWG encoding name, upper-cased (e.g. "UTF-8")
	Rule     string // "protocol" | "bom" | "charset-rule" | "environment" | "default"
}

const charsetScanWindow = 1024

// Decode implements spec.md §4.1's input normalizer byte path: it runs
// the CSS "determine the fallback encoding" procedure, decodes data
// through the golang.org/x/text encoding it resolves to, and returns the
// decoded text (preprocessing is left to css.Preprocess, which the css
// tokenizer applies when css.ParseStylesheetBytes parses that text).
func Decode(data []byte, opts Options) (Result, error) {
	if opts.ProtocolEncoding != "" {
		if enc, name, ok := resolve(opts.ProtocolEncoding); ok {
			text, err := decodeWith(enc, data)
			log.DebugFields("encoding: resolved hint", map[string]interface{}{"rule": "protocol", "label": opts.ProtocolEncoding, "encoding": name})
			return Result{Text: text, Encoding: name, Rule: "protocol"}, err
		}
		log.WarnFields("encoding: hint did not resolve, falling through", map[string]interface{}{"rule": "protocol", "label": opts.ProtocolEncoding})
	}

	if name, enc, rest, ok := sniffBOM(data); ok {
		text, err := decodeWith(enc, rest)
		log.DebugFields("encoding: BOM sniffed", map[string]interface{}{"rule": "bom", "encoding": name})
		return Result{Text: text, Encoding: name, Rule: "bom"}, err
	}

	if label, ok := scanCharsetRule(data); ok {
		if enc, name, ok := resolve(label); ok {
			text, err := decodeWith(enc, data)
			log.DebugFields("encoding: resolved @charset rule", map[string]interface{}{"rule": "charset-rule", "label": label, "encoding": name})
			return Result{Text: text, Encoding: name, Rule: "charset-rule"}, err
		}
		log.WarnFields("encoding: @charset label did not resolve, falling through", map[string]interface{}{"rule": "charset-rule", "label": label})
	}

	if opts.EnvironmentEncoding != "" {
		if enc, name, ok := resolve(opts.EnvironmentEncoding); ok {
			text, err := decodeWith(enc, data)
			log.DebugFields("encoding: resolved hint", map[string]interface{}{"rule": "environment", "label": opts.EnvironmentEncoding, "encoding": name})
			return Result{Text: text, Encoding: name, Rule: "environment"}, err
		}
		log.WarnFields("encoding: hint did not resolve, defaulting to UTF-8", map[string]interface{}{"rule": "environment", "label": opts.EnvironmentEncoding})
	}

	text, err := decodeWith(unicodeUTF8{}, data)
	log.DebugFields("encoding: no hint matched, defaulting to UTF-8", map[string]interface{}{"rule": "default"})
	return Result{Text: text, Encoding: "UTF-8", Rule: "default"}, err
}

// resolve maps a WHATWG encoding label to a golang.org/x/text encoding
// and its canonical name, applying the CSS Syntax override that a label
// resolving to UTF-16 is treated as UTF-8 instead (§4.1: "a label that
// maps to UTF-16 is treated as UTF-8"). That override is scoped to
// label-based resolution (protocol/environment hints, the @charset
// rule) — a BOM-detected UTF-16 stream must still decode as UTF-16, so
// sniffBOM calls resolveExact instead.
func resolve(label string) (xenc.Encoding, string, bool) {
	enc, name, ok := resolveExact(label)
	if !ok {
		return nil, "", false
	}
	if strings.HasPrefix(name, "UTF-16") {
		return unicodeUTF8{}, "UTF-8", true
	}
	return enc, name, true
}

// resolveExact maps a WHATWG encoding label to its golang.org/x/text
// encoding and upper-cased canonical name with no UTF-16->UTF-8 override
// applied.
func resolveExact(label string) (xenc.Encoding, string, bool) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", false
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	return enc, strings.ToUpper(name), true
}

func decodeWith(enc xenc.Encoding, data []byte) (string, error) {
	if enc == nil {
		return string(data), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return string(data), err
	}
	return string(out), nil
}

// unicodeUTF8 is a no-op xenc.Encoding used for the UTF-8 default path,
// which golang.org/x/text deliberately has no encoding.Encoding for
// (UTF-8 is Go's native string representation already).
type unicodeUTF8 struct{}

func (unicodeUTF8) NewDecoder() *xenc.Decoder { return &xenc.Decoder{Transformer: passthrough{}} }
func (unicodeUTF8) NewEncoder() *xenc.Encoder { return &xenc.Encoder{Transformer: passthrough{}} }

type passthrough struct{}

func (passthrough) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := copy(dst, src)
	return n, n, nil
}
func (passthrough) Reset() {}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// sniffBOM implements step 2 of the fallback-encoding algorithm: detect a
// leading UTF-8 or UTF-16 byte-order mark. Per the CSS Syntax override, a
// UTF-16 BOM still decodes through its real UTF-16 codec (the UTF-16->
// UTF-8 substitution only applies to @charset/label-based resolution), so
// this calls resolveExact, not resolve.
func sniffBOM(data []byte) (name string, enc xenc.Encoding, rest []byte, ok bool) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return "UTF-8", unicodeUTF8{}, data[len(bomUTF8):], true
	case bytes.HasPrefix(data, bomUTF16LE):
		enc, name, _ := resolveExact("utf-16le")
		return name, enc, data[len(bomUTF16LE):], true
	case bytes.HasPrefix(data, bomUTF16BE):
		enc, name, _ := resolveExact("utf-16be")
		return name, enc, data[len(bomUTF16BE):], true
	}
	return "", nil, nil, false
}

// scanCharsetRule implements step 3: an ASCII-only, byte-level check
// that data starts with the exact pattern `@charset "`, returning the
// label up to the closing quote, which must lie within the first
// charsetScanWindow bytes.
func scanCharsetRule(data []byte) (string, bool) {
	window := data
	if len(window) > charsetScanWindow {
		window = window[:charsetScanWindow]
	}
	const prefix = `@charset "`
	idx := bytes.Index(window, []byte(prefix))
	if idx != 0 {
		return "", false
	}
	rest := window[len(prefix):]
	end := bytes.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}
	return string(rest[:end]), true
}
