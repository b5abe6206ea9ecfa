// Package optional provides a generic Option type for representing values
// that may or may not be present, together with combinators for composing
// functions over them and adapters that translate common absence
// conventions (nil pointers, missing map keys, out-of-range indices) into
// Options.
//
// An Option[T] is an immutable value in one of two states: Some, holding
// exactly one T, or None, holding nothing. The zero value of Option[T] is
// None. Absence is represented, never thrown; the only failing operations
// are the explicit Unwrap family, which report an *AbsentValueError.
package optional

import (
	"fmt"
	"iter"
	"reflect"
)

// Option represents an optional value that may or may not be present.
// It provides a type-safe alternative to nil pointers.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
//
// If T has a native absent representation (pointer, map, slice, function,
// channel or interface kinds) and value is nil, Some returns None: a
// present-but-nil payload cannot be constructed. For plain value types
// Some always yields a present Option.
func Some[T any](value T) Option[T] {
	if isAbsent(value) {
		return Option[T]{}
	}
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// SomeIf returns Some(value) if cond is true, None otherwise.
func SomeIf[T any](cond bool, value T) Option[T] {
	if cond {
		return Some(value)
	}
	return Option[T]{}
}

// SomeIfFunc returns Some(produce()) if cond is true, None otherwise.
// produce is not invoked when cond is false.
func SomeIfFunc[T any](cond bool, produce func() T) Option[T] {
	if cond {
		return Some(produce())
	}
	return Option[T]{}
}

// FromPtr creates an Option from a pointer: a nil pointer maps to None,
// anything else to Some of the pointed-to value. It is the named adapter
// for the boundary of nil-returning APIs.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return Option[T]{}
	}
	return Some(*ptr)
}

// ToPtr converts the Option to a pointer: None maps to nil.
func (o Option[T]) ToPtr() *T {
	if o.present {
		return &o.value
	}
	return nil
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Unpack returns the contained value (the zero value if None) together with
// a presence flag, mirroring the two-value form of map indexing.
func (o Option[T]) Unpack() (T, bool) {
	return o.value, o.present
}

// ToSlice converts the Option to a slice with zero or one element.
func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// Iter returns an iterator that yields the contained value once, or
// nothing if the Option is empty.
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// String renders a present Option as "Some(<value>)" using the value's own
// formatting, and an empty one as "None".
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// isAbsent reports whether value is the native absent representation of its
// type: a nil interface, or a nil value of a nil-able reflect kind.
func isAbsent[T any](value T) bool {
	v := any(value)
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
