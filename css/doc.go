// Package css implements the CSS Syntax Module Level 3 grammar: the
// tokenizer and the structural parser that turn a stream of Unicode code
// points into a tree of component values, declarations, and rules, and
// that can serialize that tree back into an equivalent textual form.
//
// Spec references:
//   - CSS Syntax Module Level 3, §4 Tokenization: https://www.w3.org/TR/css-syntax-3/#tokenization
//   - CSS Syntax Module Level 3, §5 Parsing: https://www.w3.org/TR/css-syntax-3/#parsing
//   - CSS Syntax Module Level 3, §8 Serialization: https://www.w3.org/TR/css-syntax-3/#serialization
//
// This package deliberately knows nothing about what any particular
// property, selector, or at-rule means; it only knows the shape CSS source
// text takes. Interpreting that shape (selectors, media queries, property
// value grammars, cascade) is left to callers.
package css
