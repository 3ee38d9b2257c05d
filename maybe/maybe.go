// Package maybe holds an optional value that tells "not set" apart from the
// zero value. A None field is left out of an emitted chart document so the
// charting library falls back to its own default, while Some(0) or
// Some(false) is written out explicitly.
package maybe

type Maybe[T any] struct {
	value T
	valid bool
}

func Some[T any](value T) Maybe[T] {
	return Maybe[T]{
		value: value,
		valid: true,
	}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr maps a nil pointer to None, as viper does for unset config keys.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (m Maybe[T]) IsValid() bool {
	return m.valid
}

func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.valid
}

func (m Maybe[T]) ValueOrDefault(defaultValue T) T {
	if m.valid {
		return m.value
	}
	return defaultValue
}

// Ptr returns nil for None, otherwise a pointer to a copy of the value.
func (m Maybe[T]) Ptr() *T {
	if !m.valid {
		return nil
	}
	v := m.value
	return &v
}
