package jot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringifyScalars(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want string
	}{
		{"null", Null(), "null"},
		{"nil", nil, "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"integer", Number(42), "42"},
		{"negative integer", Number(-123), "-123"},
		{"zero", Number(0), "0"},
		{"float", Number(3.14), "3.14"},
		{"negative float", Number(-0.5), "-0.5"},
		{"large integral float", Number(1e21), "1e+21"},
		{"small float", Number(1e-8), "1e-08"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Stringify(tt.v))
		})
	}
}

func TestStringifyIntegralNotFloat(t *testing.T) {
	// Parsing 42 and stringifying must regenerate 42, never 42.0.
	require.Equal(t, "42", Stringify(Number(42.0)))
	require.Equal(t, "-7", Stringify(Number(-7.0)))
}

func TestStringifyStrings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", `"hello"`},
		{"empty", "", `""`},
		{"quotes", `hello "world"`, `"hello \"world\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"named escapes", "a\b\f\n\r\t", `"a\b\f\n\r\t"`},
		{"control char", "\x01", `"\u0001"`},
		{"delete char", "\x7f", `"\u007f"`},
		{"non-ascii passthrough", "héllo 世界", `"héllo 世界"`},
		{"slash not escaped", "a/b", `"a/b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Stringify(Str(tt.in)))
		})
	}
}

func TestStringifyArrays(t *testing.T) {
	require.Equal(t, "[]", Stringify(Array()))
	require.Equal(t, "[1,2,3]", Stringify(Array(Number(1), Number(2), Number(3))))
	require.Equal(t, `[null,true,"x",[1]]`,
		Stringify(Array(Null(), Bool(true), Str("x"), Array(Number(1)))))
}

func TestStringifyObjects(t *testing.T) {
	require.Equal(t, "{}", Stringify(Object(nil)))
	require.Equal(t, `{"key":"value"}`,
		Stringify(Object(map[string]*Value{"key": Str("value")})))
}

func TestStringifySortKeys(t *testing.T) {
	v := Object(map[string]*Value{
		"b":   Number(2),
		"a":   Number(1),
		"c":   Array(Str("x")),
		"век": Null(),
	})
	want := `{"a":1,"b":2,"c":["x"],"век":null}`

	for i := 0; i < 10; i++ {
		require.Equal(t, want, StringifyWithOptions(v, StringifyOptions{SortKeys: true}))
	}
}

func TestStringifyUnsortedIsStillValid(t *testing.T) {
	v := Object(map[string]*Value{"a": Number(1), "b": Number(2)})
	out := Stringify(v)

	// Member order is unspecified, but the output must reparse to an
	// equal tree either way.
	back, err := Parse(out)
	require.NoError(t, err)
	require.True(t, back.Equal(v))
}

func TestStringifyNested(t *testing.T) {
	v := Object(map[string]*Value{
		"users": Array(
			Object(map[string]*Value{"name": Str("Alice")}),
		),
	})
	require.Equal(t, `{"users":[{"name":"Alice"}]}`, Stringify(v))
}

func TestStringifyKeyEscaping(t *testing.T) {
	v := Object(map[string]*Value{"line\nbreak": Bool(true)})
	require.Equal(t, `{"line\nbreak":true}`, Stringify(v))
}
