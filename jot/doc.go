// Package jot implements a small JSON tree codec: a recursive-descent
// parser from UTF-8 text to an immutable Value tree, and a compact
// serializer back to text.
//
// # Data Model
//
// A Value is one of six variants: null, bool, number (float64), string,
// array, or object. Objects are unordered; key iteration order does not
// track source order, and a key repeated in the input overwrites the
// earlier member (last write wins).
//
// # Parsing
//
//	v, err := jot.Parse(`{"name": "Alice", "scores": [90, 85]}`)
//
// Parse reads exactly one value; trailing non-whitespace content is an
// error. Failures are reported as *ParseError with a closed kind set
// (unexpected character, unexpected end of input, invalid number, invalid
// escape, invalid unicode escape, too deeply nested) and the byte offset
// of the failure. The first error aborts the parse; there is no recovery
// and no partial result.
//
// # Serialization
//
//	text := jot.Stringify(v)
//
// Stringify is total and maximally compact: no whitespace is ever
// emitted. Integral numbers render as integer literals, so parsing "42"
// and stringifying yields "42", not "42.0". Object member order follows
// map iteration and is therefore unspecified; StringifyWithOptions with
// SortKeys gives deterministic output.
//
// # Known Limitations
//
//   - \uXXXX escapes are decoded independently. UTF-16 surrogate pairs
//     are not reassembled; a surrogate code point in an escape is
//     rejected as an invalid unicode escape.
//   - The number grammar is permissive: the scanner accepts loose shapes
//     and defers validation to the float parser.
package jot
