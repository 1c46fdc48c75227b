package model

import (
	"bytes"
	"encoding/json"
)

// Optional holds a value that the content store may leave out.
//
// A missing key and an explicit JSON null both decode to an absent Optional.
// A present zero value (0, "") stays present, so callers can tell the two apart.
type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
