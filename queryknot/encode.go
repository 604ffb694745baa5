package queryknot

import (
	"math"
	"strconv"
	"strings"
)

// EncodeValue renders a Value in its canonical literal form. Encoding is
// the inverse of DecodeLiteral: decode(encode(v)) == v for every
// representable value. The failure modes are caller-built values outside
// the grammar: an array containing an array, or a non-finite float.
func EncodeValue(v Value) (string, error) {
	switch v.kind {
	case KindString:
		return encodeString(v.strVal), nil
	case KindInt:
		return strconv.FormatInt(v.intVal, 10), nil
	case KindFloat:
		return encodeFloat(v.floatVal)
	case KindBool:
		if v.boolVal {
			return "true", nil
		}
		return "false", nil
	case KindArray:
		return encodeArray(v.arrVal)
	}
	return "", &UnrecognizedLiteralError{Literal: v.kind.String()}
}

func encodeString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(s[i])
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// encodeFloat uses the shortest representation that round-trips, with a
// forced decimal point so the literal decodes back as a float. The 'f'
// format keeps the output inside the grammar, which has no exponent form.
// NaN and infinities have no representation at all and are rejected, so
// serialized text always parses back.
func encodeFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", &UnrecognizedLiteralError{Literal: strconv.FormatFloat(f, 'g', -1, 64)}
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s, nil
}

func encodeArray(elems []Value) (string, error) {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range elems {
		if e.kind == KindArray {
			return "", &NestedCollectionError{Literal: e.String()}
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		s, err := EncodeValue(e)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	sb.WriteByte(']')
	return sb.String(), nil
}
