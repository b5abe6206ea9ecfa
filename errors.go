package optional

// AbsentValueError reports an attempt to read the value of a None Option.
// It is the only error kind produced by this package; every operation
// outside the Unwrap family is total.
type AbsentValueError struct {
	// Message is an optional caller-supplied description of what was
	// expected to be present.
	Message string
}

// Error implements the error interface.
func (e *AbsentValueError) Error() string {
	if e.Message == "" {
		return "no value present"
	}
	return "no value present: " + e.Message
}
