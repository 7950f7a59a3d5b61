package jot

// Kind identifies the variant stored in a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value represents a JSON document as a tree. A Value is built either by
// Parse or by the package-level constructors and is read-only afterwards:
// composite values own their children exclusively and the tree is always
// finite and acyclic.
type Value struct {
	kind Kind

	// Scalar payloads (only one valid based on kind)
	boolVal bool
	numVal  float64
	strVal  string

	// Container payloads
	arrVal []*Value
	objVal map[string]*Value
}

// ============================================================
// Constructors
// ============================================================

// Null returns the null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Number returns a numeric value. Integers and fractional values share
// the float64 representation; there is no separate integer kind.
func Number(v float64) *Value {
	return &Value{kind: KindNumber, numVal: v}
}

// Str returns a string value. The string holds decoded text; escape
// sequences are applied during parsing, not stored.
func Str(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Array returns an array value holding the given elements in order.
func Array(elems ...*Value) *Value {
	return &Value{kind: KindArray, arrVal: elems}
}

// Object returns an object value. The entries map is copied so later
// mutation by the caller cannot reach into the constructed tree.
func Object(entries map[string]*Value) *Value {
	m := make(map[string]*Value, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &Value{kind: KindObject, objVal: m}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the variant stored in the value.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether the value is null.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// AsBool returns the boolean payload. The second result is false when the
// value is not a bool.
func (v *Value) AsBool() (bool, bool) {
	if v == nil || v.kind != KindBool {
		return false, false
	}
	return v.boolVal, true
}

// AsNumber returns the numeric payload. The second result is false when
// the value is not a number.
func (v *Value) AsNumber() (float64, bool) {
	if v == nil || v.kind != KindNumber {
		return 0, false
	}
	return v.numVal, true
}

// AsStr returns the string payload. The second result is false when the
// value is not a string.
func (v *Value) AsStr() (string, bool) {
	if v == nil || v.kind != KindString {
		return "", false
	}
	return v.strVal, true
}

// AsArray returns the element slice. The second result is false when the
// value is not an array. Callers must not mutate the returned slice.
func (v *Value) AsArray() ([]*Value, bool) {
	if v == nil || v.kind != KindArray {
		return nil, false
	}
	return v.arrVal, true
}

// AsObject returns the entries map. The second result is false when the
// value is not an object. Callers must not mutate the returned map.
// Iteration order is unspecified; it does not track source order.
func (v *Value) AsObject() (map[string]*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	return v.objVal, true
}

// Get returns the member stored under key. The second result is false
// when the value is not an object or the key is absent.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	m, ok := v.objVal[key]
	return m, ok
}

// Index returns the i-th element of an array. The second result is false
// when the value is not an array or i is out of bounds.
func (v *Value) Index(i int) (*Value, bool) {
	if v == nil || v.kind != KindArray {
		return nil, false
	}
	if i < 0 || i >= len(v.arrVal) {
		return nil, false
	}
	return v.arrVal[i], true
}

// Len returns the element count of an array or the entry count of an
// object, and -1 for every other kind.
func (v *Value) Len() int {
	if v == nil {
		return -1
	}
	switch v.kind {
	case KindArray:
		return len(v.arrVal)
	case KindObject:
		return len(v.objVal)
	default:
		return -1
	}
}

// Equal reports structural equality: same kind and recursively equal
// payloads. Object comparison is order-independent. Two nil values are
// equal; nil never equals a non-nil value.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == other.boolVal
	case KindNumber:
		return v.numVal == other.numVal
	case KindString:
		return v.strVal == other.strVal
	case KindArray:
		if len(v.arrVal) != len(other.arrVal) {
			return false
		}
		for i, e := range v.arrVal {
			if !e.Equal(other.arrVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.objVal) != len(other.objVal) {
			return false
		}
		for k, e := range v.objVal {
			o, ok := other.objVal[k]
			if !ok || !e.Equal(o) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
