package scalars

import (
	"github.com/ib-77/parsec/pkg/parse"
)

func typeMismatch[T any](input parse.Value) parse.Result[T] {
	return parse.Fail[T](input, "typeof value is "+string(input.Kind()))
}

// String accepts string values only.
func String() parse.Validator[string] {
	return func(input parse.Value) parse.Result[string] {
		if input.Kind() != parse.KindString {
			return typeMismatch[string](input)
		}
		return parse.Success(input.Str())
	}
}

// Number accepts number values only. NaN and the infinities are numbers and
// pass; no coercion from strings.
func Number() parse.Validator[float64] {
	return func(input parse.Value) parse.Result[float64] {
		if input.Kind() != parse.KindNumber {
			return typeMismatch[float64](input)
		}
		return parse.Success(input.Num())
	}
}

// Boolean accepts boolean values only.
func Boolean() parse.Validator[bool] {
	return func(input parse.Value) parse.Result[bool] {
		if input.Kind() != parse.KindBoolean {
			return typeMismatch[bool](input)
		}
		return parse.Success(input.Bool())
	}
}

// Undefined accepts only the absence sentinel. Null does not pass.
func Undefined() parse.Validator[parse.Value] {
	return func(input parse.Value) parse.Result[parse.Value] {
		if !input.IsUndefined() {
			return typeMismatch[parse.Value](input)
		}
		return parse.Success(input)
	}
}

// Any accepts every input unchanged. Escape hatch for under-specified fields.
func Any() parse.Validator[parse.Value] {
	return func(input parse.Value) parse.Result[parse.Value] {
		return parse.Success(input)
	}
}

// Object accepts any non-null object value, leaving its members untyped.
func Object() parse.Validator[parse.Value] {
	return func(input parse.Value) parse.Result[parse.Value] {
		if input.Kind() != parse.KindObject {
			return typeMismatch[parse.Value](input)
		}
		return parse.Success(input)
	}
}

// Array accepts any array value, leaving its members untyped.
func Array() parse.Validator[[]parse.Value] {
	return func(input parse.Value) parse.Result[[]parse.Value] {
		if input.Kind() != parse.KindArray {
			return typeMismatch[[]parse.Value](input)
		}
		return parse.Success(input.Items())
	}
}
