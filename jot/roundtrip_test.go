package jot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// roundTripInputs are documents whose parsed trees must survive a full
// parse -> stringify -> parse cycle structurally intact. Object key order
// may differ between cycles, which Equal absorbs.
var roundTripInputs = []string{
	"null",
	"true",
	"false",
	"42",
	"-123",
	"3.14",
	"1e-2",
	`""`,
	`"hello"`,
	`"hello \"world\""`,
	`"tab\there"`,
	`"\u0041\u00e9"`,
	"[]",
	"{}",
	"[1, 2, 3]",
	"[1, [2, [3, [4]]]]",
	`[null, true, false, 0, "mixed"]`,
	`{"key": "value"}`,
	`{"a": 1, "b": 2, "c": 3}`,
	`{"name":"Alice","age":25,"active":true,"scores":[90,85,92]}`,
	`{"users": [{"name": "Alice", "age": 30}, {"name": "Bob", "age": 25}]}`,
	`{"nested": {"deeper": {"deepest": [null]}}}`,
}

func TestRoundTrip(t *testing.T) {
	for _, input := range roundTripInputs {
		t.Run(input, func(t *testing.T) {
			v, err := Parse(input)
			require.NoError(t, err)

			back, err := Parse(Stringify(v))
			require.NoError(t, err)
			require.True(t, back.Equal(v), "round-trip changed the tree: %s", Stringify(back))
		})
	}
}

// TestStringifyIdempotent checks that stringify -> parse -> stringify is
// byte-identical. Multi-key objects are excluded: their member order is
// unspecified, so only single-key objects give a byte-stable cycle.
func TestStringifyIdempotent(t *testing.T) {
	values := []*Value{
		Null(),
		Bool(true),
		Number(42),
		Number(3.14),
		Str("hello\nworld"),
		Array(Number(1), Number(2), Number(3)),
		Array(),
		Object(map[string]*Value{"only": Array(Str("x"), Null())}),
	}
	for _, v := range values {
		first := Stringify(v)
		back, err := Parse(first)
		require.NoError(t, err)
		require.Equal(t, first, Stringify(back))
	}
}

// TestSortedRoundTripStable extends the idempotence property to multi-key
// objects via the sorted emitter.
func TestSortedRoundTripStable(t *testing.T) {
	opts := StringifyOptions{SortKeys: true}
	v, err := Parse(`{"b": [1, {"y": 2, "x": 3}], "a": "text"}`)
	require.NoError(t, err)

	first := StringifyWithOptions(v, opts)
	back, err := Parse(first)
	require.NoError(t, err)
	require.Equal(t, first, StringifyWithOptions(back, opts))
	require.Equal(t, `{"a":"text","b":[1,{"x":3,"y":2}]}`, first)
}

func TestRoundTripControlCharacters(t *testing.T) {
	v := Str("bell\x07 and esc\x1b")
	out := Stringify(v)
	require.Equal(t, `"bell\u0007 and esc\u001b"`, out)

	back, err := Parse(out)
	require.NoError(t, err)
	require.True(t, back.Equal(v))
}

func FuzzParse(f *testing.F) {
	for _, input := range roundTripInputs {
		f.Add(input)
	}
	f.Add(`{"\u0000": -0.0}`)
	f.Add("[[[[[[[[[[]]]]]]]]]]")

	f.Fuzz(func(t *testing.T, input string) {
		v, err := Parse(input)
		if err != nil {
			return
		}
		// Whatever parses must stringify to something that reparses to
		// an equal tree.
		out := Stringify(v)
		back, err := Parse(out)
		if err != nil {
			t.Fatalf("reparse of %q failed: %v", out, err)
		}
		if !back.Equal(v) {
			t.Fatalf("round-trip changed the tree: %q -> %q", input, out)
		}
	})
}
