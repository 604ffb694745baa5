package queryknot

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// Marshal renders a Go struct or mapping as canonical QueryKnot text.
//
// Struct fields are named by the `knot:"name"` tag when present, otherwise
// by the snake_case form of the field name. A tag of "-" skips the field;
// the "omitempty" option skips zero values. Supported field types are
// strings, booleans, integer and float types, slices of those, nested
// structs, and map[string]any.
func Marshal(v any) (string, error) {
	m, err := mappingOf(reflect.ValueOf(v))
	if err != nil {
		return "", err
	}
	return Serialize(m)
}

// Unmarshal parses QueryKnot text and stores the result in the value
// pointed to by out, which must be a non-nil pointer to a struct or a
// map[string]any. Fields without a matching path keep their zero value.
func Unmarshal(text string, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("queryknot: Unmarshal target must be a non-nil pointer, got %T", out)
	}

	root, err := parseTree(text)
	if err != nil {
		return err
	}

	elem := rv.Elem()
	switch elem.Kind() {
	case reflect.Struct:
		return assignStruct(root, elem, "")
	case reflect.Map:
		if _, ok := out.(*map[string]any); !ok {
			return fmt.Errorf("queryknot: unsupported Unmarshal target %T", out)
		}
		elem.Set(reflect.ValueOf(root.Map()))
		return nil
	default:
		return fmt.Errorf("queryknot: unsupported Unmarshal target %T", out)
	}
}

// fieldKey resolves the path segment a struct field binds to, and whether
// the field participates at all.
func fieldKey(f reflect.StructField) (key string, omitempty, ok bool) {
	if !f.IsExported() {
		return "", false, false
	}
	tag := f.Tag.Get("knot")
	if tag == "-" {
		return "", false, false
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = strcase.ToSnake(f.Name)
	}
	return name, opts == "omitempty", true
}

func mappingOf(rv reflect.Value) (map[string]any, error) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, fmt.Errorf("queryknot: cannot marshal nil")
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("queryknot: map keys must be strings, got %s", rv.Type().Key())
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			val, err := leafOrMapping(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", iter.Key().String(), err)
			}
			out[iter.Key().String()] = val
		}
		return out, nil

	case reflect.Struct:
		out := make(map[string]any, rv.NumField())
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			key, omitempty, ok := fieldKey(t.Field(i))
			if !ok {
				continue
			}
			fv := rv.Field(i)
			if omitempty && fv.IsZero() {
				continue
			}
			val, err := leafOrMapping(fv)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", t.Field(i).Name, err)
			}
			out[key] = val
		}
		return out, nil

	default:
		return nil, fmt.Errorf("queryknot: cannot marshal %s as a document root", rv.Kind())
	}
}

func leafOrMapping(rv reflect.Value) (any, error) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, fmt.Errorf("nil has no representation")
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		return mappingOf(rv)
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev := rv.Index(i)
			for ev.Kind() == reflect.Pointer || ev.Kind() == reflect.Interface {
				if ev.IsNil() {
					return nil, fmt.Errorf("nil has no representation")
				}
				ev = ev.Elem()
			}
			switch ev.Kind() {
			case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
				return nil, &NestedCollectionError{Literal: fmt.Sprintf("%v", rv.Interface())}
			}
			out[i] = ev.Interface()
		}
		return out, nil
	default:
		return rv.Interface(), nil
	}
}

func assignStruct(n *Node, rv reflect.Value, path string) error {
	if n.IsLeaf() {
		return fmt.Errorf("queryknot: %s is a value, not an object", pathLabel(path))
	}

	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		key, _, ok := fieldKey(t.Field(i))
		if !ok {
			continue
		}
		child := n.Child(key)
		if child == nil {
			continue
		}
		fieldPath := key
		if path != "" {
			fieldPath = path + "." + key
		}
		if err := assignField(child, rv.Field(i), fieldPath); err != nil {
			return err
		}
	}
	return nil
}

func assignField(n *Node, rv reflect.Value, path string) error {
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return assignStruct(n, rv, path)

	case reflect.Map:
		if rv.Type() != reflect.TypeOf(map[string]any{}) {
			return fmt.Errorf("queryknot: %s: unsupported map type %s", path, rv.Type())
		}
		if n.IsLeaf() {
			v, _ := n.Value()
			return mismatch(path, rv.Type(), v)
		}
		rv.Set(reflect.ValueOf(n.Map()))
		return nil

	case reflect.Interface:
		if rv.Type().NumMethod() != 0 {
			return fmt.Errorf("queryknot: %s: unsupported interface type %s", path, rv.Type())
		}
		if n.IsLeaf() {
			v, _ := n.Value()
			rv.Set(reflect.ValueOf(v.Interface()))
		} else {
			rv.Set(reflect.ValueOf(n.Map()))
		}
		return nil
	}

	v, ok := n.Value()
	if !ok {
		return fmt.Errorf("queryknot: %s is an object, cannot assign to %s", path, rv.Type())
	}

	switch rv.Kind() {
	case reflect.String:
		s, err := v.AsString()
		if err != nil {
			return mismatch(path, rv.Type(), v)
		}
		rv.SetString(s)

	case reflect.Bool:
		b, err := v.AsBool()
		if err != nil {
			return mismatch(path, rv.Type(), v)
		}
		rv.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := v.AsInt()
		if err != nil {
			return mismatch(path, rv.Type(), v)
		}
		if rv.OverflowInt(i) {
			return fmt.Errorf("queryknot: %s: %d overflows %s", path, i, rv.Type())
		}
		rv.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := v.AsInt()
		if err != nil {
			return mismatch(path, rv.Type(), v)
		}
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return fmt.Errorf("queryknot: %s: %d overflows %s", path, i, rv.Type())
		}
		rv.SetUint(uint64(i))

	case reflect.Float32, reflect.Float64:
		f, ok := v.Number()
		if !ok {
			return mismatch(path, rv.Type(), v)
		}
		rv.SetFloat(f)

	case reflect.Slice:
		elems, err := v.AsArray()
		if err != nil {
			return mismatch(path, rv.Type(), v)
		}
		out := reflect.MakeSlice(rv.Type(), len(elems), len(elems))
		for i, e := range elems {
			if err := assignScalar(e, out.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		rv.Set(out)

	default:
		return fmt.Errorf("queryknot: %s: unsupported field type %s", path, rv.Type())
	}
	return nil
}

func assignScalar(v Value, rv reflect.Value, path string) error {
	switch rv.Kind() {
	case reflect.String:
		s, err := v.AsString()
		if err != nil {
			return mismatch(path, rv.Type(), v)
		}
		rv.SetString(s)
	case reflect.Bool:
		b, err := v.AsBool()
		if err != nil {
			return mismatch(path, rv.Type(), v)
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := v.AsInt()
		if err != nil {
			return mismatch(path, rv.Type(), v)
		}
		if rv.OverflowInt(i) {
			return fmt.Errorf("queryknot: %s: %d overflows %s", path, i, rv.Type())
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := v.AsInt()
		if err != nil {
			return mismatch(path, rv.Type(), v)
		}
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return fmt.Errorf("queryknot: %s: %d overflows %s", path, i, rv.Type())
		}
		rv.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		f, ok := v.Number()
		if !ok {
			return mismatch(path, rv.Type(), v)
		}
		rv.SetFloat(f)
	case reflect.Interface:
		if rv.Type().NumMethod() != 0 {
			return fmt.Errorf("queryknot: %s: unsupported interface type %s", path, rv.Type())
		}
		rv.Set(reflect.ValueOf(v.Interface()))
	default:
		return fmt.Errorf("queryknot: %s: unsupported element type %s", path, rv.Type())
	}
	return nil
}

func mismatch(path string, t reflect.Type, v Value) error {
	return fmt.Errorf("queryknot: %s: cannot assign %s value to %s", path, v.Kind(), t)
}

func pathLabel(path string) string {
	if path == "" {
		return "document root"
	}
	return path
}
