package student

// Outcome is the uniform result of a repository operation: exactly one of
// a value or an error is populated.
type Outcome[T any] struct {
	value T
	err   *DomainError
}

// Success wraps a value.
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{value: value}
}

// Failure wraps an error. A nil error is replaced by an internal error so an
// Outcome built by Failure is never mistaken for a success.
func Failure[T any](err *DomainError) Outcome[T] {
	if err == nil {
		err = NewInternalError("failure without error", nil)
	}
	return Outcome[T]{err: err}
}

// IsSuccess reports whether the outcome carries a value.
func (o Outcome[T]) IsSuccess() bool {
	return o.err == nil
}

// Value returns the wrapped value, or the zero value on failure.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the wrapped error, or nil on success.
func (o Outcome[T]) Err() *DomainError {
	return o.err
}

// Get unpacks the outcome.
func (o Outcome[T]) Get() (T, *DomainError) {
	return o.value, o.err
}
