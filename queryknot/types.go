package queryknot

import (
	"fmt"
	"sort"
)

// Kind represents QueryKnot value types.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindArray
)

// String returns the type name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is the closed union over QueryKnot value types. The zero Value is
// the empty string.
type Value struct {
	kind Kind

	// Scalar payloads (only one valid based on kind)
	strVal   string
	intVal   int64
	floatVal float64
	boolVal  bool

	// Array payload; elements are always scalar
	arrVal []Value
}

// ============================================================
// Constructors
// ============================================================

// Str creates a string value.
func Str(v string) Value {
	return Value{kind: KindString, strVal: v}
}

// Int creates an integer value.
func Int(v int64) Value {
	return Value{kind: KindInt, intVal: v}
}

// Float creates a floating-point value.
func Float(v float64) Value {
	return Value{kind: KindFloat, floatVal: v}
}

// Bool creates a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, boolVal: v}
}

// Array creates an array value. Elements must be scalar; an array element
// is rejected when the value is encoded or flattened.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arrVal: elems}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value type.
func (v Value) Kind() Kind {
	return v.kind
}

// AsString returns the string payload.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("queryknot: expected string, got %s", v.kind)
	}
	return v.strVal, nil
}

// AsInt returns the integer payload.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("queryknot: expected int, got %s", v.kind)
	}
	return v.intVal, nil
}

// AsFloat returns the float payload.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, fmt.Errorf("queryknot: expected float, got %s", v.kind)
	}
	return v.floatVal, nil
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("queryknot: expected bool, got %s", v.kind)
	}
	return v.boolVal, nil
}

// AsArray returns the array elements.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != KindArray {
		return nil, fmt.Errorf("queryknot: expected array, got %s", v.kind)
	}
	return v.arrVal, nil
}

// Number returns a numeric payload widened to float64 if int or float.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.intVal), true
	case KindFloat:
		return v.floatVal, true
	default:
		return 0, false
	}
}

// IsNumeric returns true if int or float.
func (v Value) IsNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// Len returns the length of an array, or 0 for scalars.
func (v Value) Len() int {
	if v.kind == KindArray {
		return len(v.arrVal)
	}
	return 0
}

// Index returns the i-th element of an array.
func (v Value) Index(i int) (Value, error) {
	if v.kind != KindArray {
		return Value{}, fmt.Errorf("queryknot: not an array")
	}
	if i < 0 || i >= len(v.arrVal) {
		return Value{}, fmt.Errorf("queryknot: index %d out of bounds (len=%d)", i, len(v.arrVal))
	}
	return v.arrVal[i], nil
}

// Equal reports structural equality. Int and float values are never equal
// to each other even when numerically identical; the distinction is part
// of the data model.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.strVal == o.strVal
	case KindInt:
		return v.intVal == o.intVal
	case KindFloat:
		return v.floatVal == o.floatVal
	case KindBool:
		return v.boolVal == o.boolVal
	case KindArray:
		if len(v.arrVal) != len(o.arrVal) {
			return false
		}
		for i := range v.arrVal {
			if !v.arrVal[i].Equal(o.arrVal[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts the value to its native Go representation: string,
// int64, float64, bool, or []any.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.strVal
	case KindInt:
		return v.intVal
	case KindFloat:
		return v.floatVal
	case KindBool:
		return v.boolVal
	case KindArray:
		out := make([]any, len(v.arrVal))
		for i, e := range v.arrVal {
			out[i] = e.Interface()
		}
		return out
	}
	return nil
}

// String returns the canonical literal form, or a debug form for values
// that cannot be encoded.
func (v Value) String() string {
	s, err := EncodeValue(v)
	if err != nil {
		return fmt.Sprintf("!invalid(%s)", v.kind)
	}
	return s
}

// FromInterface converts a native Go value into a Value. Supported inputs
// are strings, booleans, integer and float types, Value itself, and slices
// of those. Maps and nested slices have no leaf representation and are
// rejected.
func FromInterface(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return Str(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > 1<<63-1 {
			return Value{}, fmt.Errorf("queryknot: uint64 value %d overflows int64", x)
		}
		return Int(int64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case []any:
		elems := make([]Value, 0, len(x))
		for _, item := range x {
			switch item.(type) {
			case []any, []string, []int, []int64, []float64, []bool, map[string]any:
				return Value{}, &NestedCollectionError{Literal: fmt.Sprintf("%v", item)}
			}
			ev, err := FromInterface(item)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, ev)
		}
		return Array(elems...), nil
	case []Value:
		return Array(x...), nil
	case []string:
		elems := make([]Value, len(x))
		for i, s := range x {
			elems[i] = Str(s)
		}
		return Array(elems...), nil
	case []int:
		elems := make([]Value, len(x))
		for i, n := range x {
			elems[i] = Int(int64(n))
		}
		return Array(elems...), nil
	case []int64:
		elems := make([]Value, len(x))
		for i, n := range x {
			elems[i] = Int(n)
		}
		return Array(elems...), nil
	case []float64:
		elems := make([]Value, len(x))
		for i, f := range x {
			elems[i] = Float(f)
		}
		return Array(elems...), nil
	case []bool:
		elems := make([]Value, len(x))
		for i, b := range x {
			elems[i] = Bool(b)
		}
		return Array(elems...), nil
	case map[string]any:
		return Value{}, fmt.Errorf("queryknot: mapping is not a leaf value (flatten it into paths)")
	case nil:
		return Value{}, fmt.Errorf("queryknot: nil has no representation")
	default:
		return Value{}, fmt.Errorf("queryknot: unsupported value type %T", v)
	}
}

// sortedKeys returns the keys of a mapping in lexical order, so plain Go
// maps serialize deterministically.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
