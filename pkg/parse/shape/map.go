package shape

import (
	"github.com/ib-77/parsec/pkg/parse"
)

// Map runs child and feeds its successful value through transform, which
// returns a Result so the transform itself may reject the value (say, a
// string that fails to parse as a date). Failures from either stage are
// rewrapped to carry the outer input, keeping failure framing uniform with
// the other structural combinators.
func Map[In, Out any](child parse.Validator[In], transform func(In) parse.Result[Out]) parse.Validator[Out] {
	return func(input parse.Value) parse.Result[Out] {
		res := child(input)
		if res.IsFailure() {
			return parse.Fail[Out](input, res.Reason())
		}
		out := transform(res.Result())
		if out.IsFailure() {
			return parse.Fail[Out](input, out.Reason())
		}
		return out
	}
}

// Try is Map for transforms written in error-land: a non-nil error becomes
// a failure whose reason is the error text.
func Try[In, Out any](child parse.Validator[In], transform func(In) (Out, error)) parse.Validator[Out] {
	return Map(child, func(v In) parse.Result[Out] {
		out, err := transform(v)
		if err != nil {
			return parse.Fail[Out](parse.Undefined(), err.Error())
		}
		return parse.Success(out)
	})
}
