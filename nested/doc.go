// Package nested provides read-only traversal of nested mappings.
//
// A nested mapping is a map[string]any whose values may themselves be
// mappings, the shape encoding/json produces for JSON objects. Access walks
// the mapping along an ordered key path and returns the value at the final
// key, or a *KeyNotFoundError naming the first key that could not be resolved.
//
//	v, err := nested.Access(doc, nested.Path{"repo", "owner", "login"})
//	if errors.Is(err, nested.ErrKeyNotFound) {
//	    ...
//	}
package nested
