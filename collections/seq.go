package collections

import (
	"iter"
	"reflect"

	"github.com/authcorp/optional"
)

// FindSeq returns the first element of the sequence that satisfies the
// predicate, or None if the sequence is exhausted without a match.
// Enumeration stops at the first hit.
func FindSeq[T any](seq iter.Seq[T], predicate func(T) bool) optional.Option[T] {
	for v := range seq {
		if predicate(v) {
			return optional.Some(v)
		}
	}
	return optional.None[T]()
}

// lengther is satisfied by containers that report their size in constant
// time.
type lengther interface {
	Len() int
}

// Count reports the number of elements in v without consuming it: Some(n)
// when v exposes a Len method or is a slice, array, map, channel or string
// at runtime, None for anything else, such as a one-shot sequence whose
// size cannot be known without enumeration.
func Count(v any) optional.Option[int] {
	if l, ok := v.(lengther); ok {
		return optional.Some(l.Len())
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan, reflect.String:
		return optional.Some(rv.Len())
	}
	return optional.None[int]()
}

// CollectSeq converts a sequence of options into Some of the slice of
// unwrapped values iff every element is Some. The first None stops
// enumeration and discards the partially built result.
func CollectSeq[T any](seq iter.Seq[optional.Option[T]]) optional.Option[[]T] {
	out := []T{}
	for o := range seq {
		v, ok := o.Unpack()
		if !ok {
			return optional.None[[]T]()
		}
		out = append(out, v)
	}
	return optional.Some(out)
}

// Values returns a lazy sequence of the unwrapped values of the Some
// elements, dropping None elements. The result is restartable iff the
// underlying sequence is.
func Values[T any](seq iter.Seq[optional.Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range seq {
			if v, ok := o.Unpack(); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}
