package jot

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxDepth is the maximum nesting depth the parser accepts. Input nested
// deeper than this fails with ErrTooDeep instead of exhausting the call
// stack.
const MaxDepth = 512

// ErrKind identifies the failure class of a ParseError.
type ErrKind uint8

const (
	ErrUnexpectedChar ErrKind = iota
	ErrUnexpectedEOF
	ErrInvalidNumber
	ErrInvalidEscape
	ErrInvalidUnicodeEscape
	ErrTooDeep
)

// String returns the error kind name.
func (k ErrKind) String() string {
	switch k {
	case ErrUnexpectedChar:
		return "unexpected character"
	case ErrUnexpectedEOF:
		return "unexpected end of input"
	case ErrInvalidNumber:
		return "invalid number"
	case ErrInvalidEscape:
		return "invalid escape"
	case ErrInvalidUnicodeEscape:
		return "invalid unicode escape"
	case ErrTooDeep:
		return "too deeply nested"
	default:
		return "unknown"
	}
}

// ParseError describes a parse failure. The first failure anywhere in the
// descent aborts the whole parse; errors are never wrapped or aggregated
// and no partial tree accompanies one.
type ParseError struct {
	Kind ErrKind
	Char rune   // offending rune (ErrUnexpectedChar only)
	Text string // offending substring (number and escape kinds)
	Pos  int    // byte offset into the input
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnexpectedChar:
		return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Pos)
	case ErrUnexpectedEOF:
		return "unexpected end of input"
	case ErrInvalidNumber:
		return fmt.Sprintf("invalid number literal %q", e.Text)
	case ErrInvalidEscape:
		return fmt.Sprintf("invalid escape sequence %q", e.Text)
	case ErrInvalidUnicodeEscape:
		return fmt.Sprintf("invalid unicode escape %q", e.Text)
	case ErrTooDeep:
		return fmt.Sprintf("nesting exceeds %d levels at offset %d", MaxDepth, e.Pos)
	default:
		return "parse error"
	}
}

// Parse reads exactly one JSON value from input, surrounded by optional
// whitespace. Trailing non-whitespace content is rejected. On failure the
// returned error is always a *ParseError.
func Parse(input string) (*Value, error) {
	p := &parser{input: input}
	p.skipWhitespace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if c, ok := p.current(); ok {
		return nil, p.errUnexpectedChar(c)
	}
	return v, nil
}

// parser holds the cursor state for one Parse call. The cursor is a byte
// offset; runes are decoded incrementally so positional lookups stay O(1).
type parser struct {
	input string
	pos   int
	depth int
}

// current returns the rune at the cursor without consuming it.
func (p *parser) current() (rune, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
	return r, true
}

// advance consumes the rune at the cursor.
func (p *parser) advance() {
	if p.pos < len(p.input) {
		_, size := utf8.DecodeRuneInString(p.input[p.pos:])
		p.pos += size
	}
}

func (p *parser) skipWhitespace() {
	for {
		c, ok := p.current()
		if !ok || !unicode.IsSpace(c) {
			return
		}
		p.advance()
	}
}

func (p *parser) errUnexpectedChar(c rune) *ParseError {
	return &ParseError{Kind: ErrUnexpectedChar, Char: c, Pos: p.pos}
}

func (p *parser) errEOF() *ParseError {
	return &ParseError{Kind: ErrUnexpectedEOF, Pos: p.pos}
}

// push enters one nesting level of the descent.
func (p *parser) push() *ParseError {
	p.depth++
	if p.depth > MaxDepth {
		return &ParseError{Kind: ErrTooDeep, Pos: p.pos}
	}
	return nil
}

func (p *parser) pop() {
	p.depth--
}

// parseValue parses any value, dispatching on the first non-whitespace
// rune.
func (p *parser) parseValue() (*Value, error) {
	p.skipWhitespace()

	c, ok := p.current()
	if !ok {
		return nil, p.errEOF()
	}
	switch {
	case c == 'n':
		return p.parseLiteral("null", Null())
	case c == 't':
		return p.parseLiteral("true", Bool(true))
	case c == 'f':
		return p.parseLiteral("false", Bool(false))
	case c == '"':
		return p.parseString()
	case c == '[':
		return p.parseArray()
	case c == '{':
		return p.parseObject()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, p.errUnexpectedChar(c)
	}
}

// parseLiteral matches one of the fixed literals (null, true, false)
// exactly; any deviation is reported at the current cursor.
func (p *parser) parseLiteral(lit string, v *Value) (*Value, error) {
	if strings.HasPrefix(p.input[p.pos:], lit) {
		p.pos += len(lit)
		return v, nil
	}
	c, _ := p.current()
	return nil, p.errUnexpectedChar(c)
}

func (p *parser) parseString() (*Value, error) {
	p.advance() // opening quote

	var sb strings.Builder
	for {
		c, ok := p.current()
		if !ok {
			return nil, p.errEOF()
		}
		switch c {
		case '"':
			p.advance()
			return Str(sb.String()), nil
		case '\\':
			p.advance()
			if err := p.parseEscape(&sb); err != nil {
				return nil, err
			}
		default:
			sb.WriteRune(c)
			p.advance()
		}
	}
}

// parseEscape decodes one escape sequence; the backslash has already been
// consumed.
func (p *parser) parseEscape(sb *strings.Builder) error {
	c, ok := p.current()
	if !ok {
		return p.errEOF()
	}
	switch c {
	case '"', '\\', '/':
		sb.WriteRune(c)
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		p.advance()
		return p.parseUnicodeEscape(sb)
	default:
		return &ParseError{Kind: ErrInvalidEscape, Text: "\\" + string(c), Pos: p.pos}
	}
	p.advance()
	return nil
}

// parseUnicodeEscape decodes \uXXXX: exactly four hex digits naming a
// Unicode scalar value. Each escape is decoded independently; UTF-16
// surrogate pairs are not reassembled, so surrogate code points are
// rejected outright (utf8.ValidRune is false for them).
func (p *parser) parseUnicodeEscape(sb *strings.Builder) error {
	start := p.pos
	var hex strings.Builder
	for i := 0; i < 4; i++ {
		c, ok := p.current()
		if !ok {
			return &ParseError{Kind: ErrInvalidUnicodeEscape, Text: hex.String(), Pos: start}
		}
		hex.WriteRune(c)
		p.advance()
	}
	code, err := strconv.ParseUint(hex.String(), 16, 32)
	if err != nil || !utf8.ValidRune(rune(code)) {
		return &ParseError{Kind: ErrInvalidUnicodeEscape, Text: hex.String(), Pos: start}
	}
	sb.WriteRune(rune(code))
	return nil
}

// parseNumber scans the permissive number shape (optional sign, digits,
// optional fraction, optional exponent) and forwards validation of the
// captured substring to strconv.ParseFloat. A shape the scanner accepts
// but ParseFloat rejects, such as a lone "-", fails as ErrInvalidNumber.
func (p *parser) parseNumber() (*Value, error) {
	start := p.pos

	if c, ok := p.current(); ok && c == '-' {
		p.advance()
	}
	p.scanDigits()
	if c, ok := p.current(); ok && c == '.' {
		p.advance()
		p.scanDigits()
	}
	if c, ok := p.current(); ok && (c == 'e' || c == 'E') {
		p.advance()
		if c, ok := p.current(); ok && (c == '+' || c == '-') {
			p.advance()
		}
		p.scanDigits()
	}

	text := p.input[start:p.pos]
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, &ParseError{Kind: ErrInvalidNumber, Text: text, Pos: start}
	}
	return Number(n), nil
}

func (p *parser) scanDigits() {
	for {
		c, ok := p.current()
		if !ok || c < '0' || c > '9' {
			return
		}
		p.advance()
	}
}

func (p *parser) parseArray() (*Value, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()

	p.advance() // '['
	p.skipWhitespace()

	var elems []*Value
	if c, ok := p.current(); ok && c == ']' {
		p.advance()
		return &Value{kind: KindArray}, nil
	}

	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
		p.skipWhitespace()

		c, ok := p.current()
		if !ok {
			return nil, p.errEOF()
		}
		switch c {
		case ',':
			p.advance()
			p.skipWhitespace()
		case ']':
			p.advance()
			return &Value{kind: KindArray, arrVal: elems}, nil
		default:
			return nil, p.errUnexpectedChar(c)
		}
	}
}

func (p *parser) parseObject() (*Value, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()

	p.advance() // '{'
	p.skipWhitespace()

	members := make(map[string]*Value)
	if c, ok := p.current(); ok && c == '}' {
		p.advance()
		return &Value{kind: KindObject, objVal: members}, nil
	}

	for {
		// Keys go through the value production: a non-string value parses
		// fine and is rejected afterwards, rather than failing fast on
		// the lookahead rune.
		keyVal, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		key, ok := keyVal.AsStr()
		if !ok {
			c, present := p.current()
			if !present {
				return nil, p.errEOF()
			}
			return nil, p.errUnexpectedChar(c)
		}

		p.skipWhitespace()
		c, present := p.current()
		if !present {
			return nil, p.errEOF()
		}
		if c != ':' {
			return nil, p.errUnexpectedChar(c)
		}
		p.advance()

		p.skipWhitespace()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		members[key] = v // duplicate keys: last write wins

		p.skipWhitespace()
		c, present = p.current()
		if !present {
			return nil, p.errEOF()
		}
		switch c {
		case ',':
			p.advance()
			p.skipWhitespace()
		case '}':
			p.advance()
			return &Value{kind: KindObject, objVal: members}, nil
		default:
			return nil, p.errUnexpectedChar(c)
		}
	}
}
