// Package collections provides option-returning adapters over slices, maps
// and sequences, translating their native absence conventions (empty
// input, missing key, out-of-range index) into Options.
package collections

import (
	"github.com/authcorp/optional"
)

// First returns the first element of the slice, or None if it is empty.
func First[T any](s []T) optional.Option[T] {
	if len(s) == 0 {
		return optional.None[T]()
	}
	return optional.Some(s[0])
}

// Last returns the last element of the slice, or None if it is empty.
func Last[T any](s []T) optional.Option[T] {
	if len(s) == 0 {
		return optional.None[T]()
	}
	return optional.Some(s[len(s)-1])
}

// Find returns the first element that satisfies the predicate, stopping at
// the first hit, or None if there is no match.
func Find[T any](s []T, predicate func(T) bool) optional.Option[T] {
	for _, v := range s {
		if predicate(v) {
			return optional.Some(v)
		}
	}
	return optional.None[T]()
}

// FindLast returns the last element that satisfies the predicate, or None
// if there is no match.
func FindLast[T any](s []T, predicate func(T) bool) optional.Option[T] {
	for i := len(s) - 1; i >= 0; i-- {
		if predicate(s[i]) {
			return optional.Some(s[i])
		}
	}
	return optional.None[T]()
}

// At returns the element at index i, or None when i is out of range
// (including negative indices). It never panics.
func At[T any](s []T, i int) optional.Option[T] {
	if i < 0 || i >= len(s) {
		return optional.None[T]()
	}
	return optional.Some(s[i])
}

// Lookup returns the value stored under key, or None when the key is
// absent.
func Lookup[K comparable, V any](m map[K]V, key K) optional.Option[V] {
	if v, ok := m[key]; ok {
		return optional.Some(v)
	}
	return optional.None[V]()
}

// Collect converts a slice of options into Some of the slice of unwrapped
// values iff every element is Some; the first None aborts the scan and the
// partially built result is discarded.
func Collect[T any](opts []optional.Option[T]) optional.Option[[]T] {
	out := make([]T, 0, len(opts))
	for _, o := range opts {
		v, ok := o.Unpack()
		if !ok {
			return optional.None[[]T]()
		}
		out = append(out, v)
	}
	return optional.Some(out)
}
