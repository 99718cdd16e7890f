package shape

import (
	"fmt"

	"github.com/ib-77/parsec/pkg/parse"
)

// Literal constrains Exactly to the scalar categories that support
// exact-value matching.
type Literal interface {
	string | float64 | bool
}

// Exactly accepts only inputs value-equal to want, narrowing the result to
// that literal. Anything else fails with "is not <literal>".
func Exactly[T Literal](want T) parse.Validator[T] {
	return func(input parse.Value) parse.Result[T] {
		var got any
		switch input.Kind() {
		case parse.KindString:
			got = input.Str()
		case parse.KindNumber:
			got = input.Num()
		case parse.KindBoolean:
			got = input.Bool()
		}
		if got != nil && got == any(want) {
			return parse.Success(want)
		}
		return parse.Fail[T](input, fmt.Sprintf("is not %v", want))
	}
}

// OneOf tries each validator in the order given and returns the first
// success. When all fail it reports only the count, not the individual
// reasons: "'<value>' did not match any of <N> validators".
func OneOf[T any](validators ...parse.Validator[T]) parse.Validator[T] {
	return func(input parse.Value) parse.Result[T] {
		for _, v := range validators {
			if res := v(input); res.IsSuccess() {
				return res
			}
		}
		return parse.Fail[T](input,
			fmt.Sprintf("'%s' did not match any of %d validators", input, len(validators)))
	}
}
