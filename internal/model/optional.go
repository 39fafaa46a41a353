package model

import (
	"encoding/json"
)

// Optional is a JSON field that tracks presence. An absent field stays at
// the zero Optional, an explicit null is recorded as set-but-null, and any
// other value is set. Patch types use it to tell "leave alone" apart from
// "clear".
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Set returns an Optional holding v.
func Set[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns an Optional recording an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet reports whether the field was present at all, including null.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsNull reports whether the field was present as an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.set && o.null
}

// Get returns the value and whether a non-null value is present.
func (o Optional[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Ptr returns a pointer to the value, or nil for absent or null fields.
func (o Optional[T]) Ptr() *T {
	if !o.set || o.null {
		return nil
	}
	v := o.value
	return &v
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.set = true
	if string(b) == "null" {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(b, &o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
