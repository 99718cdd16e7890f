package shape

import (
	"strconv"

	"github.com/ib-77/parsec/pkg/parse"
)

// ArrayOf validates a homogeneous sequence: the input must be an array and
// every member must satisfy element. Members are checked in index order and
// the first failure wins, reported as "Failed at '<index>': <reason>" with
// the whole input array as the failure value. An empty array is valid.
func ArrayOf[T any](element parse.Validator[T]) parse.Validator[[]T] {
	return func(input parse.Value) parse.Result[[]T] {
		if input.Kind() != parse.KindArray {
			return parse.Fail[[]T](input, "typeof value is "+string(input.Kind()))
		}

		items := input.Items()
		out := make([]T, 0, len(items))
		for i, item := range items {
			res := element(item)
			if res.IsFailure() {
				return parse.Fail[[]T](input, "Failed at '"+strconv.Itoa(i)+"': "+res.Reason())
			}
			out = append(out, res.Result())
		}
		return parse.Success(out)
	}
}
