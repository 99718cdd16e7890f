package parse

import "errors"

// Result is the outcome of one validation attempt: either a success holding
// the typed value, or a failure holding the original input and a reason.
// It is always exactly one of the two.
type Result[T any] struct {
	value   T
	input   Value
	reason  string
	success bool
}

// Validator maps a dynamically-typed input to a Result. Validators are pure
// and stateless; the same input always yields the same variant, value and
// reason, and a validator may be shared across goroutines.
type Validator[T any] func(input Value) Result[T]

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:   v,
		success: true,
	}
}

func Fail[T any](input Value, reason string) Result[T] {
	return Result[T]{
		input:   input,
		reason:  reason,
		success: false,
	}
}

// FailFrom re-types a failure across type parameters, keeping its input and
// reason. Calling it on a success is a programming error.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		input:   from.input,
		reason:  from.reason,
		success: false,
	}
}

func (r Result[T]) IsSuccess() bool {
	return r.success
}

func (r Result[T]) IsFailure() bool {
	return !r.success
}

// Result returns the validated value of a success, the zero value otherwise.
func (r Result[T]) Result() T {
	return r.value
}

// Input returns the original input a failure rejected. For a nested failure
// that has propagated outward, this is the outer-most input, not the
// offending sub-value.
func (r Result[T]) Input() Value {
	return r.input
}

func (r Result[T]) Reason() string {
	return r.reason
}

// Err adapts a failure into an error for callers living in error-land.
func (r Result[T]) Err() error {
	if r.success {
		return nil
	}
	return errors.New(r.reason)
}
