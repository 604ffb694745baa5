package queryknot

// Object is a read-only attribute-style view over a parsed node tree. It
// is a structural facade, not a separate data type: every accessor reads
// the same tree ParseToMap exposes as a mapping.
type Object struct {
	node *Node
}

func newObject(n *Node) *Object {
	return &Object{node: n}
}

// Keys returns the field names in insertion order.
func (o *Object) Keys() []string {
	return o.node.Keys()
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return len(o.node.fields)
}

// Has reports whether the named field exists, as a leaf or a sub-object.
func (o *Object) Has(key string) bool {
	return o.node.Child(key) != nil
}

// Get returns the leaf value bound to the named field.
func (o *Object) Get(key string) (Value, bool) {
	child := o.node.Child(key)
	if child == nil || !child.IsLeaf() {
		return Value{}, false
	}
	return child.Value()
}

// GetObject returns the named field as a sub-object view.
func (o *Object) GetObject(key string) (*Object, bool) {
	child := o.node.Child(key)
	if child == nil || child.IsLeaf() {
		return nil, false
	}
	return newObject(child), true
}

// GetString returns the named field as a string.
func (o *Object) GetString(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}
	s, err := v.AsString()
	return s, err == nil
}

// GetInt returns the named field as an integer.
func (o *Object) GetInt(key string) (int64, bool) {
	v, ok := o.Get(key)
	if !ok {
		return 0, false
	}
	n, err := v.AsInt()
	return n, err == nil
}

// GetFloat returns the named field as a float. Integer fields widen.
func (o *Object) GetFloat(key string) (float64, bool) {
	v, ok := o.Get(key)
	if !ok {
		return 0, false
	}
	return v.Number()
}

// GetBool returns the named field as a boolean.
func (o *Object) GetBool(key string) (bool, bool) {
	v, ok := o.Get(key)
	if !ok {
		return false, false
	}
	b, err := v.AsBool()
	return b, err == nil
}

// GetArray returns the named field's array elements.
func (o *Object) GetArray(key string) ([]Value, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	elems, err := v.AsArray()
	return elems, err == nil
}

// Lookup resolves a dot-separated path to a leaf value, e.g.
// Lookup("user.interests.esports").
func (o *Object) Lookup(path string) (Value, bool) {
	segments, err := splitPath(path)
	if err != nil {
		return Value{}, false
	}

	cur := o.node
	for _, seg := range segments {
		if cur.IsLeaf() {
			return Value{}, false
		}
		cur = cur.Child(seg)
		if cur == nil {
			return Value{}, false
		}
	}
	return cur.Value()
}

// LookupObject resolves a dot-separated path to a sub-object view.
func (o *Object) LookupObject(path string) (*Object, bool) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, false
	}

	cur := o.node
	for _, seg := range segments {
		if cur.IsLeaf() {
			return nil, false
		}
		cur = cur.Child(seg)
		if cur == nil {
			return nil, false
		}
	}
	if cur.IsLeaf() {
		return nil, false
	}
	return newObject(cur), true
}

// Map converts the view to a nested Go mapping.
func (o *Object) Map() map[string]any {
	return o.node.Map()
}
