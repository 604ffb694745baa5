package queryknot

import (
	"strconv"
	"strings"
)

// DecodeLiteral classifies and parses one literal token into a Value.
// Classification precedence: array, boolean, string, number. Anything
// else fails; QueryKnot has no bare string type.
func DecodeLiteral(literal string) (Value, error) {
	s := strings.TrimSpace(literal)

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") && len(s) >= 2 {
		return decodeArray(s)
	}

	return decodeScalar(s)
}

func decodeScalar(s string) (Value, error) {
	switch s {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	}

	if strings.HasPrefix(s, `"`) {
		return decodeString(s)
	}

	if isInt, isFloat := classifyNumber(s); isInt || isFloat {
		return decodeNumber(s, isFloat)
	}

	return Value{}, &UnrecognizedLiteralError{Literal: s}
}

// decodeString parses a double-quoted token. The token must be exactly one
// quoted string: a missing closing quote is an unterminated string, and
// trailing characters after the closing quote are unrecognized.
func decodeString(s string) (Value, error) {
	var sb strings.Builder

	i := 1 // past opening quote
	for i < len(s) {
		ch := s[i]

		if ch == '"' {
			if i != len(s)-1 {
				return Value{}, &UnrecognizedLiteralError{Literal: s}
			}
			return Str(sb.String()), nil
		}

		if ch == '\\' {
			i++
			if i >= len(s) {
				return Value{}, &UnterminatedStringError{Literal: s}
			}
			switch s[i] {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			default:
				sb.WriteByte(s[i])
			}
			i++
			continue
		}

		sb.WriteByte(ch)
		i++
	}

	return Value{}, &UnterminatedStringError{Literal: s}
}

// classifyNumber checks s against the number grammar: optional leading
// minus, digits, optional single fraction. Exponent notation is not part
// of the grammar.
func classifyNumber(s string) (isInt, isFloat bool) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}

	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return false, false
	}

	if i == len(s) {
		return true, false
	}

	if s[i] != '.' {
		return false, false
	}
	i++

	start = i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start || i != len(s) {
		return false, false
	}

	return false, true
}

func decodeNumber(s string, isFloat bool) (Value, error) {
	if isFloat {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, &UnrecognizedLiteralError{Literal: s}
		}
		return Float(f), nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Digits-only but outside int64 range.
		return Value{}, &UnrecognizedLiteralError{Literal: s}
	}
	return Int(n), nil
}

// decodeArray parses a bracketed literal. Interior tokens are decoded as
// scalars; a token that itself opens a collection fails.
func decodeArray(s string) (Value, error) {
	interior := strings.TrimSpace(s[1 : len(s)-1])
	if interior == "" {
		return Array(), nil
	}

	tokens, err := splitArrayItems(interior)
	if err != nil {
		return Value{}, err
	}

	elems := make([]Value, 0, len(tokens))
	for _, tok := range tokens {
		v, err := decodeScalar(tok)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
	}

	return Array(elems...), nil
}
