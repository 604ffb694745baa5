package queryknot

import (
	"fmt"
	"strings"
)

// Serialize renders nested data as canonical QueryKnot text: one line per
// leaf, `<path> <encoded value>`, with a single trailing newline. Empty
// input yields the empty string.
//
// Accepted inputs: map[string]any (keys serialized in lexical order),
// *Object and *Node (insertion order preserved), and *Document (entry
// order preserved).
func Serialize(v any) (string, error) {
	doc, err := flatten(v)
	if err != nil {
		return "", err
	}
	return serializeDocument(doc)
}

func flatten(v any) (*Document, error) {
	switch x := v.(type) {
	case *Document:
		if x == nil {
			return nil, fmt.Errorf("queryknot: cannot serialize nil")
		}
		return x, nil
	case *Node:
		if x == nil {
			return nil, fmt.Errorf("queryknot: cannot serialize nil")
		}
		return x.Flatten()
	case *Object:
		if x == nil {
			return nil, fmt.Errorf("queryknot: cannot serialize nil")
		}
		return x.node.Flatten()
	case map[string]any:
		root, err := fromMapping(x)
		if err != nil {
			return nil, err
		}
		return root.Flatten()
	case nil:
		return nil, fmt.Errorf("queryknot: cannot serialize nil")
	default:
		return nil, fmt.Errorf("queryknot: cannot serialize %T (want map[string]any, *Object, *Node, or *Document)", v)
	}
}

func serializeDocument(doc *Document) (string, error) {
	if doc.Len() == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, e := range doc.Entries() {
		literal, err := EncodeValue(e.Value)
		if err != nil {
			return "", fmt.Errorf("path %q: %w", e.Path, err)
		}
		sb.WriteString(e.Path)
		sb.WriteByte(' ')
		sb.WriteString(literal)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
