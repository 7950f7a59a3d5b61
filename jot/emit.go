package jot

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// StringifyOptions configures the emitter.
type StringifyOptions struct {
	// SortKeys emits object members in bytewise key order instead of map
	// iteration order, making output deterministic across runs.
	SortKeys bool
}

// Stringify converts a value to its compact textual form. It is total
// over well-formed trees and never fails. Object members are emitted in
// map iteration order, which is unspecified; use StringifyWithOptions
// with SortKeys for deterministic output.
func Stringify(v *Value) string {
	return StringifyWithOptions(v, StringifyOptions{})
}

// StringifyWithOptions converts a value to text with custom options.
func StringifyWithOptions(v *Value, opts StringifyOptions) string {
	e := &emitter{opts: opts}
	e.emit(v)
	return e.sb.String()
}

type emitter struct {
	sb   strings.Builder
	opts StringifyOptions
}

func (e *emitter) emit(v *Value) {
	if v.IsNull() {
		e.sb.WriteString("null")
		return
	}
	switch v.kind {
	case KindBool:
		if v.boolVal {
			e.sb.WriteString("true")
		} else {
			e.sb.WriteString("false")
		}
	case KindNumber:
		e.emitNumber(v.numVal)
	case KindString:
		e.emitString(v.strVal)
	case KindArray:
		e.sb.WriteByte('[')
		for i, elem := range v.arrVal {
			if i > 0 {
				e.sb.WriteByte(',')
			}
			e.emit(elem)
		}
		e.sb.WriteByte(']')
	case KindObject:
		e.sb.WriteByte('{')
		first := true
		for _, k := range e.objKeys(v) {
			if !first {
				e.sb.WriteByte(',')
			}
			first = false
			e.emitString(k)
			e.sb.WriteByte(':')
			e.emit(v.objVal[k])
		}
		e.sb.WriteByte('}')
	}
}

func (e *emitter) objKeys(v *Value) []string {
	keys := make([]string, 0, len(v.objVal))
	for k := range v.objVal {
		keys = append(keys, k)
	}
	if e.opts.SortKeys {
		sort.Strings(keys)
	}
	return keys
}

// emitNumber renders integral values in the int64-exact range as signed
// decimal integers, so an input literal like 42 regenerates as 42 rather
// than 42.0. Everything else takes the shortest float form.
func (e *emitter) emitNumber(f float64) {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		e.sb.WriteString(strconv.FormatInt(int64(f), 10))
		return
	}
	e.sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
}

func (e *emitter) emitString(s string) {
	e.sb.WriteByte('"')
	for _, c := range s {
		switch c {
		case '"':
			e.sb.WriteString(`\"`)
		case '\\':
			e.sb.WriteString(`\\`)
		case '\b':
			e.sb.WriteString(`\b`)
		case '\f':
			e.sb.WriteString(`\f`)
		case '\n':
			e.sb.WriteString(`\n`)
		case '\r':
			e.sb.WriteString(`\r`)
		case '\t':
			e.sb.WriteString(`\t`)
		default:
			if unicode.IsControl(c) {
				fmt.Fprintf(&e.sb, `\u%04x`, c)
			} else {
				e.sb.WriteRune(c)
			}
		}
	}
	e.sb.WriteByte('"')
}
