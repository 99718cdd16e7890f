package shape

import (
	"github.com/ib-77/parsec/pkg/parse"
)

// Optional tolerates null: a null input succeeds with a nil pointer without
// consulting child at all. Everything else, the absence sentinel included,
// is delegated to child unchanged.
func Optional[T any](child parse.Validator[T]) parse.Validator[*T] {
	return func(input parse.Value) parse.Result[*T] {
		if input.IsNull() {
			return parse.Success[*T](nil)
		}
		return indirect(child(input))
	}
}

// Voidable is the absence analogue of Optional: a missing value succeeds
// with a nil pointer, while null is delegated to child. The two conditions
// are never conflated.
func Voidable[T any](child parse.Validator[T]) parse.Validator[*T] {
	return func(input parse.Value) parse.Result[*T] {
		if input.IsUndefined() {
			return parse.Success[*T](nil)
		}
		return indirect(child(input))
	}
}

func indirect[T any](res parse.Result[T]) parse.Result[*T] {
	if res.IsFailure() {
		return parse.FailFrom[T, *T](res)
	}
	v := res.Result()
	return parse.Success(&v)
}
