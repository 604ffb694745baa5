package queryknot

import (
	"strings"
	"unicode"
)

// splitLine splits one physical line into its path token and the literal
// remainder. Blank lines report ok=false. The remainder is handed to the
// value coder untouched; no type interpretation happens here.
func splitLine(line string) (path, literal string, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", "", false, nil
	}

	cut := strings.IndexFunc(trimmed, unicode.IsSpace)
	if cut < 0 {
		return "", "", false, &MalformedLineError{Text: trimmed}
	}

	path = trimmed[:cut]
	literal = strings.TrimSpace(trimmed[cut:])
	return path, literal, true, nil
}

// splitPath splits a path token on dots and rejects empty segments
// (leading, trailing, or doubled dots).
func splitPath(path string) ([]string, error) {
	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, &MalformedLineError{Text: path}
		}
	}
	return segments, nil
}

// splitArrayItems splits the interior of an array literal into scalar
// tokens. Quoted strings may contain spaces and are kept whole, quotes
// included. Commas between elements are tolerated (LLMs love adding them)
// but never required. An opening bracket or brace inside the interior is a
// nested collection.
func splitArrayItems(interior string) ([]string, error) {
	var items []string

	i := 0
	for i < len(interior) {
		ch := interior[i]

		if ch == ' ' || ch == '\t' || ch == ',' {
			i++
			continue
		}

		if ch == '[' || ch == '{' {
			return nil, &NestedCollectionError{Literal: interior[i:]}
		}

		if ch == '"' {
			token, next, err := scanQuoted(interior, i)
			if err != nil {
				return nil, err
			}
			items = append(items, token)
			i = next
			continue
		}

		start := i
		for i < len(interior) {
			c := interior[i]
			if c == ' ' || c == '\t' || c == ',' {
				break
			}
			if c == '[' || c == '{' {
				return nil, &NestedCollectionError{Literal: interior[start:]}
			}
			i++
		}
		items = append(items, interior[start:i])
	}

	return items, nil
}

// scanQuoted scans a double-quoted token starting at s[start] and returns
// the raw token (quotes and escapes intact) plus the index just past the
// closing quote.
func scanQuoted(s string, start int) (string, int, error) {
	i := start + 1 // past opening quote
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
		case '"':
			return s[start : i+1], i + 1, nil
		default:
			i++
		}
	}
	return "", 0, &UnterminatedStringError{Literal: s[start:]}
}
