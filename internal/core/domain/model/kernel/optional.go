package kernel

// Optional carries a patch field. The zero value means "not supplied", which is
// different from supplying the zero value of T (for example clearing a deadline).
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr maps nil to None.
func FromPtr[T any](value *T) Optional[T] {
	if value == nil {
		return None[T]()
	}
	return Some(*value)
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it was supplied.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// Or returns the value if supplied, fallback otherwise.
func (o Optional[T]) Or(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}
