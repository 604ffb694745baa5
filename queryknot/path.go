package queryknot

import (
	"fmt"
	"strings"
	"unicode"
)

// Entry is one (path, value) pair of a document.
type Entry struct {
	Path  string
	Value Value

	// line is the source line the entry came from, 0 when synthesized
	// from caller data.
	line int
}

// Document is an ordered sequence of entries, insertion order = source
// line order. Paths are unique within a document.
type Document struct {
	entries []Entry
	index   map[string]int
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{index: make(map[string]int)}
}

// Entries returns the entries in insertion order.
func (d *Document) Entries() []Entry {
	return d.entries
}

// Len returns the number of entries.
func (d *Document) Len() int {
	return len(d.entries)
}

// Append adds an entry, rejecting invalid and duplicate paths.
func (d *Document) Append(path string, v Value) error {
	if _, err := splitPath(path); err != nil {
		return err
	}
	return d.append(Entry{Path: path, Value: v})
}

func (d *Document) append(e Entry) error {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if _, exists := d.index[e.Path]; exists {
		return &DuplicatePathError{Line: e.line, Path: e.Path}
	}
	d.index[e.Path] = len(d.entries)
	d.entries = append(d.entries, e)
	return nil
}

// Equal reports order-sensitive structural equality of two documents.
func (d *Document) Equal(o *Document) bool {
	if len(d.entries) != len(o.entries) {
		return false
	}
	for i := range d.entries {
		if d.entries[i].Path != o.entries[i].Path {
			return false
		}
		if !d.entries[i].Value.Equal(o.entries[i].Value) {
			return false
		}
	}
	return true
}

// Tree unflattens the document into its nested node representation.
func (d *Document) Tree() (*Node, error) {
	root := newObjectNode()
	for _, e := range d.entries {
		if err := root.insert(e); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// Node is the nested representation: either a leaf holding a Value, or an
// object mapping segment names to child nodes in insertion order.
type Node struct {
	leaf   *Value
	fields []nodeField
}

type nodeField struct {
	name  string
	child *Node
}

func newObjectNode() *Node {
	return &Node{}
}

func newLeafNode(v Value) *Node {
	return &Node{leaf: &v}
}

// IsLeaf reports whether the node holds a value rather than children.
func (n *Node) IsLeaf() bool {
	return n.leaf != nil
}

// Value returns the leaf value, if any.
func (n *Node) Value() (Value, bool) {
	if n.leaf == nil {
		return Value{}, false
	}
	return *n.leaf, true
}

// Keys returns the child names of an object node in insertion order.
func (n *Node) Keys() []string {
	keys := make([]string, len(n.fields))
	for i, f := range n.fields {
		keys[i] = f.name
	}
	return keys
}

// Child returns the named child of an object node, or nil.
func (n *Node) Child(name string) *Node {
	for _, f := range n.fields {
		if f.name == name {
			return f.child
		}
	}
	return nil
}

// insert walks/creates object nodes for all segments but the last and
// attaches the entry's value as a leaf at the final segment. A prefix
// already bound to a leaf, or a final segment already bound to anything,
// is a conflict; duplicates at the document level are caught earlier.
func (n *Node) insert(e Entry) error {
	segments := strings.Split(e.Path, ".")

	cur := n
	for i, seg := range segments[:len(segments)-1] {
		child := cur.Child(seg)
		if child == nil {
			child = newObjectNode()
			cur.fields = append(cur.fields, nodeField{name: seg, child: child})
		} else if child.IsLeaf() {
			return &PathConflictError{
				Line:   e.line,
				Path:   e.Path,
				Prefix: strings.Join(segments[:i+1], "."),
			}
		}
		cur = child
	}

	last := segments[len(segments)-1]
	if existing := cur.Child(last); existing != nil {
		if existing.IsLeaf() {
			return &DuplicatePathError{Line: e.line, Path: e.Path}
		}
		// The position is an object: shorter path arriving after longer
		// ones, e.g. a.b then a.
		return &PathConflictError{Line: e.line, Path: e.Path, Prefix: e.Path}
	}
	cur.fields = append(cur.fields, nodeField{name: last, child: newLeafNode(e.Value)})
	return nil
}

// Flatten walks the tree pre-order and emits one entry per leaf, segments
// joined by dots, in the order the tree exposes its keys.
func (n *Node) Flatten() (*Document, error) {
	doc := NewDocument()
	if err := n.flattenInto("", doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (n *Node) flattenInto(prefix string, doc *Document) error {
	if n.IsLeaf() {
		if n.leaf.kind == KindArray {
			for _, e := range n.leaf.arrVal {
				if e.kind == KindArray {
					return &NestedCollectionError{Literal: prefix}
				}
			}
		}
		return doc.append(Entry{Path: prefix, Value: *n.leaf})
	}
	for _, f := range n.fields {
		path := f.name
		if prefix != "" {
			path = prefix + "." + f.name
		}
		if err := f.child.flattenInto(path, doc); err != nil {
			return err
		}
	}
	return nil
}

// Map converts the tree to a nested Go mapping with native leaf values.
func (n *Node) Map() map[string]any {
	out := make(map[string]any, len(n.fields))
	for _, f := range n.fields {
		if f.child.IsLeaf() {
			out[f.name] = f.child.leaf.Interface()
		} else {
			out[f.name] = f.child.Map()
		}
	}
	return out
}

// fromMapping builds a node tree from a nested Go mapping. Keys become
// single path segments and are visited in lexical order so serialization
// of plain maps is deterministic.
func fromMapping(m map[string]any) (*Node, error) {
	root := newObjectNode()
	for _, key := range sortedKeys(m) {
		if err := validateSegment(key); err != nil {
			return nil, err
		}
		child, err := nodeFor(m[key])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		root.fields = append(root.fields, nodeField{name: key, child: child})
	}
	return root, nil
}

func nodeFor(v any) (*Node, error) {
	if m, ok := v.(map[string]any); ok {
		return fromMapping(m)
	}
	leaf, err := FromInterface(v)
	if err != nil {
		return nil, err
	}
	return newLeafNode(leaf), nil
}

// validateSegment rejects keys that cannot survive a round trip through
// the text form: empty keys, dots (path separators), and whitespace.
func validateSegment(key string) error {
	if key == "" {
		return fmt.Errorf("queryknot: empty key is not a valid path segment")
	}
	if strings.Contains(key, ".") {
		return fmt.Errorf("queryknot: key %q must not contain a dot", key)
	}
	if strings.ContainsFunc(key, unicode.IsSpace) {
		return fmt.Errorf("queryknot: key %q must not contain whitespace", key)
	}
	return nil
}
