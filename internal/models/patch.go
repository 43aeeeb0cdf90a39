package models

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional is a patch field that is either present with a value or absent.
// The zero value is absent. In JSON, a missing key and an explicit null both
// decode as absent; use Nullable when null has to mean "clear".
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the field is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// ApplyTo overwrites *dst when the field is present.
func (o Optional[T]) ApplyTo(dst *T) {
	if o.set {
		*dst = o.value
	}
}

// IsZero reports absence, so `omitzero` drops absent fields when encoding.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

type nullableState uint8

const (
	nullableAbsent nullableState = iota
	nullableNull
	nullableValue
)

// Nullable is a tri-state patch field: absent (leave unchanged), null (clear),
// or a replacement value. The zero value is absent.
type Nullable[T any] struct {
	value T
	state nullableState
}

// Set returns a Nullable that replaces the field with v.
func Set[T any](v T) Nullable[T] {
	return Nullable[T]{value: v, state: nullableValue}
}

// Null returns a Nullable that clears the field.
func Null[T any]() Nullable[T] {
	return Nullable[T]{state: nullableNull}
}

// IsNull reports whether the field is explicitly cleared.
func (n Nullable[T]) IsNull() bool {
	return n.state == nullableNull
}

// Get returns the replacement value and whether one is present.
func (n Nullable[T]) Get() (T, bool) {
	return n.value, n.state == nullableValue
}

// ApplyTo replaces *dst with the value, resets it to the zero value on null,
// and leaves it alone when absent.
func (n Nullable[T]) ApplyTo(dst *T) {
	switch n.state {
	case nullableValue:
		*dst = n.value
	case nullableNull:
		var zero T
		*dst = zero
	}
}

func (n Nullable[T]) IsZero() bool {
	return n.state == nullableAbsent
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.state != nullableValue {
		return jsonNull, nil
	}
	return json.Marshal(n.value)
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*n = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Set(v)
	return nil
}
