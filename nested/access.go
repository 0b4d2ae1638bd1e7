package nested

import (
	"fmt"
	"reflect"
)

// Map is a nested mapping. Values may be further mappings or terminal values.
type Map = map[string]any

// Access walks m along path and returns the value at the final key.
//
// At each step the current key is looked up in the current mapping and the
// result becomes the new cursor. Any map whose key kind is string can be
// traversed, not only Map. If a key is absent, or the cursor is not a
// mapping while keys remain, Access returns a *KeyNotFoundError for that key.
// An empty path returns m unchanged.
func Access(m Map, path Path) (any, error) {
	var cursor any = m
	for i, key := range path {
		next, ok := lookup(cursor, key)
		if !ok {
			return nil, &KeyNotFoundError{Key: key, Path: path, Depth: i}
		}
		cursor = next
	}
	return cursor, nil
}

// AccessPath is Access with the path given as variadic keys.
func AccessPath(m Map, keys ...string) (any, error) {
	return Access(m, Path(keys))
}

// AccessAs resolves path in m and asserts the result to T.
// A value of another type yields a *TypeError.
func AccessAs[T any](m Map, path Path) (T, error) {
	var zero T
	v, err := Access(m, path)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &TypeError{
			Path: path,
			Want: fmt.Sprintf("%T", zero),
			Got:  fmt.Sprintf("%T", v),
		}
	}
	return typed, nil
}

// lookup returns v[key] when v is a map with string-kinded keys.
// map[string]any takes the fast path; other map types go through reflect.
func lookup(v any, key string) (any, bool) {
	if m, ok := v.(map[string]any); ok {
		next, ok := m[key]
		return next, ok
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	next := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !next.IsValid() {
		return nil, false
	}
	return next.Interface(), true
}
