package memo

// Func is a memoized zero-argument function.
type Func[T any] struct {
	fn    func() (T, error)
	value Value[T]
}

// New wraps fn so that it runs at most once successfully.
func New[T any](fn func() (T, error)) *Func[T] {
	return &Func[T]{fn: fn}
}

// Get returns the memoized result, running the wrapped function if needed.
func (f *Func[T]) Get() (T, error) {
	return f.value.Get(f.fn)
}

// Cached reports whether a result has been stored.
func (f *Func[T]) Cached() bool {
	return f.value.Cached()
}
