package queryknot

import "strings"

// Parse reads full multi-line QueryKnot text into an ordered document.
// Parsing is eager, single-pass, and fail-fast: the first malformed line
// aborts with a typed error carrying its line number. Blank lines are
// skipped. Empty input yields an empty document.
func Parse(text string) (*Document, error) {
	doc := NewDocument()

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1

		path, literal, ok, err := splitLine(raw)
		if err != nil {
			return nil, withLine(err, lineNo)
		}
		if !ok {
			continue
		}

		if _, err := splitPath(path); err != nil {
			return nil, withLine(err, lineNo)
		}

		v, err := DecodeLiteral(literal)
		if err != nil {
			return nil, withLine(err, lineNo)
		}

		if err := doc.append(Entry{Path: path, Value: v, line: lineNo}); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// ParseToMap parses QueryKnot text into a nested Go mapping. Leaf values
// are native Go types: string, int64, float64, bool, []any.
func ParseToMap(text string) (map[string]any, error) {
	root, err := parseTree(text)
	if err != nil {
		return nil, err
	}
	return root.Map(), nil
}

// ParseToObject parses QueryKnot text into an attribute-style read-only
// view. The view wraps the same node tree ParseToMap is built from; it is
// not a separate parse path.
func ParseToObject(text string) (*Object, error) {
	root, err := parseTree(text)
	if err != nil {
		return nil, err
	}
	return newObject(root), nil
}

func parseTree(text string) (*Node, error) {
	doc, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return doc.Tree()
}
