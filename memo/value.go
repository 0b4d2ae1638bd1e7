package memo

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// flightKey is the only key used with the per-slot singleflight group.
const flightKey = "value"

// Value caches the result of a zero-argument computation.
// The zero value is an empty slot ready for use. A Value must not be copied
// after first use.
type Value[T any] struct {
	mu     sync.RWMutex
	cached bool
	value  T
	group  singleflight.Group
}

// Get returns the cached value, running fn to compute it if the slot is empty.
// An error from fn is returned and nothing is cached.
func (v *Value[T]) Get(fn func() (T, error)) (T, error) {
	if val, ok := v.load(); ok {
		return val, nil
	}

	res, err, _ := v.group.Do(flightKey, func() (res any, err error) {
		// singleflight would wrap the panic value; carry it out unchanged.
		defer func() {
			if r := recover(); r != nil {
				err = &panicked{value: r}
			}
		}()

		// Another flight may have filled the slot between load and Do.
		if val, ok := v.load(); ok {
			return val, nil
		}
		val, err := fn()
		if err != nil {
			return nil, err
		}
		v.store(val)
		return val, nil
	})
	var p *panicked
	if errors.As(err, &p) {
		panic(p.value)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	// A nil interface result does not assert to T.
	val, _ := res.(T)
	return val, nil
}

// MustGet is Get for computations that cannot fail.
func (v *Value[T]) MustGet(fn func() T) T {
	val, _ := v.Get(func() (T, error) {
		return fn(), nil
	})
	return val
}

// Cached reports whether the slot holds a value.
func (v *Value[T]) Cached() bool {
	_, ok := v.load()
	return ok
}

func (v *Value[T]) load() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value, v.cached
}

func (v *Value[T]) store(val T) {
	v.mu.Lock()
	v.value = val
	v.cached = true
	v.mu.Unlock()
}

// panicked carries a panic out of a shared computation so every caller can
// re-raise the original value.
type panicked struct {
	value any
}

func (p *panicked) Error() string {
	return fmt.Sprintf("memo: computation panicked: %v", p.value)
}
