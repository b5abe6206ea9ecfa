package optional

import "fmt"

// Unwrap returns the contained value or panics with an *AbsentValueError
// if the Option is empty.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(&AbsentValueError{})
	}
	return o.value
}

// Expect returns the contained value or panics with an *AbsentValueError
// carrying msg if the Option is empty.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(&AbsentValueError{Message: msg})
	}
	return o.value
}

// Get returns the contained value, or an *AbsentValueError if the Option
// is empty.
func (o Option[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, &AbsentValueError{}
	}
	return o.value, nil
}

// GetOrErr returns the contained value, or the error produced by errFn if
// the Option is empty. errFn lets callers surface a domain-specific error
// type without this package depending on it; it is not invoked when a
// value is present.
func (o Option[T]) GetOrErr(errFn func() error) (T, error) {
	if !o.present {
		var zero T
		return zero, errFn()
	}
	return o.value, nil
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// UnwrapOrElse returns the contained value or computes a default.
// fn is not invoked when a value is present.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// MustSome returns the Option unchanged if it contains a value and panics
// with an *AbsentValueError otherwise, allowing assertion-style chaining
// without unwrapping.
func (o Option[T]) MustSome() Option[T] {
	if !o.present {
		panic(&AbsentValueError{})
	}
	return o
}

// MustSomef is MustSome with a formatted panic message.
func (o Option[T]) MustSomef(format string, args ...any) Option[T] {
	if !o.present {
		panic(&AbsentValueError{Message: fmt.Sprintf(format, args...)})
	}
	return o
}
