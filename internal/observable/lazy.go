package observable

// Lazy memoizes a derived value: it is computed on the first Get after
// construction or Invalidate, and reused until the next Invalidate.
type Lazy[T any] struct {
	compute func() (T, bool)
	value   T
	valid   bool
}

// NewLazy creates a Lazy around compute. compute returns false when no value
// can be produced yet; nothing is cached in that case.
func NewLazy[T any](compute func() (T, bool)) *Lazy[T] {
	return &Lazy[T]{compute: compute}
}

// Get returns the cached value, computing it if needed
func (l *Lazy[T]) Get() (T, bool) {
	if l.valid {
		return l.value, true
	}
	v, ok := l.compute()
	if !ok {
		var zero T
		return zero, false
	}
	l.value, l.valid = v, true
	return v, true
}

// Peek returns the cached value without computing it
func (l *Lazy[T]) Peek() (T, bool) {
	return l.value, l.valid
}

// Set stores v as the cached value without calling compute
func (l *Lazy[T]) Set(v T) {
	l.value, l.valid = v, true
}

// Invalidate drops the cached value
func (l *Lazy[T]) Invalidate() {
	var zero T
	l.value, l.valid = zero, false
}

// Cached reports whether a value is currently memoized
func (l *Lazy[T]) Cached() bool {
	return l.valid
}
