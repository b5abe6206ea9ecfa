package optional

// Map applies a function to the contained value if present. The result is
// itself subject to the nil-collapse rule: a function returning a nil
// pointer yields None. fn is not invoked when the Option is empty.
//
// The method form is limited to endofunctions by Go's generics model; use
// the package-level Map to change the value type.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if o.present {
		return Some(fn(o.value))
	}
	return Option[T]{}
}

// Map applies a transformation function to the contained value if present.
// fn is not invoked when o is empty.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return Option[U]{}
}

// FlatMap applies a function that itself returns an Option, without an
// extra wrapping pass: the result is exactly fn(value) when o is present
// and None otherwise. fn is not invoked when o is empty.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.present {
		return fn(o.value)
	}
	return Option[U]{}
}

// Flatten collapses one level of nesting: None stays None, Some(None)
// becomes None, and only Some(Some(v)) yields Some(v).
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.present {
		return o.value
	}
	return Option[T]{}
}

// Match applies onSome to the contained value if present and returns the
// result; otherwise it returns onNone(). Exactly one branch is evaluated.
func Match[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MatchOr is Match with an eagerly supplied fallback for the None case.
func MatchOr[T, U any](o Option[T], onSome func(T) U, fallback U) U {
	if o.present {
		return onSome(o.value)
	}
	return fallback
}

// Match executes one of two functions based on the Option state.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

// Inspect invokes fn with the contained value if present and returns the
// Option unchanged, for mid-chain side effects such as logging.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.present {
		fn(o.value)
	}
	return o
}

// InspectNone invokes fn if the Option is empty and returns the Option
// unchanged.
func (o Option[T]) InspectNone(fn func()) Option[T] {
	if !o.present {
		fn()
	}
	return o
}

// Filter returns the Option unchanged if it contains a value matching the
// predicate, None otherwise.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return Option[T]{}
}

// And returns other if o contains a value, None otherwise. Both arguments
// are already-constructed options; see Zip for the pairing form and
// ZipFunc for deferred evaluation.
func And[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.present {
		return other
	}
	return Option[U]{}
}

// Or returns the Option itself if it contains a value, other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other
}

// OrElse returns the Option itself if it contains a value; otherwise it
// invokes produce for the result. produce is not invoked when a value is
// present.
func (o Option[T]) OrElse(produce func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return produce()
}

// Xor returns whichever of the two options contains a value when exactly
// one of them does, None otherwise.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	if o.present == other.present {
		return Option[T]{}
	}
	return o.Or(other)
}
