package nested

import (
	"errors"
	"fmt"
)

// Sentinel errors for nested access.
var (
	// ErrKeyNotFound is returned when a key in the path cannot be resolved.
	ErrKeyNotFound = errors.New("nested: key not found")

	// ErrTypeMismatch is returned by AccessAs when the resolved value has
	// an unexpected type.
	ErrTypeMismatch = errors.New("nested: type mismatch")
)

// KeyNotFoundError reports the first key of a path that could not be resolved.
type KeyNotFoundError struct {
	// Key is the missing key.
	Key string

	// Path is the full path being accessed.
	Path Path

	// Depth is the index of Key within Path.
	Depth int
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("nested: key %q not found at depth %d of path %q", e.Key, e.Depth, e.Path.String())
}

// Is reports whether target is ErrKeyNotFound.
func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// TypeError reports a resolved value whose type did not match the request.
type TypeError struct {
	Path Path
	Want string
	Got  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("nested: value at %q is %s, want %s", e.Path.String(), e.Got, e.Want)
}

// Unwrap returns ErrTypeMismatch.
func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}
