package chain

import (
	"github.com/ib-77/parsec/pkg/parse"
)

// Chain wraps a parse.Result to enable fluent composition of follow-up
// steps after a validation.
type Chain[T any] struct {
	res parse.Result[T]
}

func Start[T any](r parse.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

// Parse starts a chain by running validator v on input.
func Parse[T any](input parse.Value, v parse.Validator[T]) Chain[T] {
	return Start(v(input))
}

func FromValue[T any](v T) Chain[T] {
	return Start(parse.Success(v))
}

func (c Chain[T]) Result() parse.Result[T] {
	return c.res
}

// Then composes functions that already return parse.Result[T]
func (c Chain[T]) Then(onSuccess func(t T) parse.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: onSuccess(c.res.Result())}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: parse.Success(onSuccess(c.res.Result()))}
}

// Check fails the chain when the predicate rejects the current value.
func (c Chain[T]) Check(input parse.Value, accept func(t T) (ok bool, reason string)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	if ok, reason := accept(c.res.Result()); !ok {
		return Chain[T]{res: parse.Fail[T](input, reason)}
	}
	return c
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(input parse.Value, reason string)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Input(), c.res.Reason())
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.res.Result())
	}
	return c
}

// Finally collapses a chain to a final value, delegating to parse.Finally
func Finally[T, Out any](c Chain[T],
	onSuccess func(T) Out,
	onFailure func(input parse.Value, reason string) Out) Out {

	return parse.Finally(c.res, onSuccess, onFailure)
}
