package optional

// The package exposes two equality definitions with deliberately different
// semantics. Equal is a full equivalence relation and is the canonical one:
// two empty options are equal, and two present options compare by payload.
// ValuesEqual is the narrower value-comparison form: it reports inequality
// whenever either side is empty, so ValuesEqual(None, None) is false. Both
// are kept because callers depend on each; pick Equal unless you
// specifically need "both present and equal".

// Equal reports whether two options are equal: both None, or both Some
// with payloads equal under T's own equality.
//
// For comparable T this coincides with the == operator on Option[T], so
// options of comparable types work as map keys with the same semantics.
func Equal[T comparable](a, b Option[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || a.value == b.value
}

// EqualFunc reports whether two options are equal under a caller-supplied
// payload comparison: both None, or both Some with eq returning true.
func EqualFunc[A, B any](a Option[A], b Option[B], eq func(A, B) bool) bool {
	if a.IsNone() {
		return b.IsNone()
	}
	if b.IsNone() {
		return false
	}
	return eq(a.value, b.value)
}

// ValuesEqual reports whether both options contain values and those values
// are equal. Unlike Equal it is not an equivalence relation: an empty
// option compares unequal to everything, including another empty option.
func ValuesEqual[T comparable](a, b Option[T]) bool {
	return a.present && b.present && a.value == b.value
}
