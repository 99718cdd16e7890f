package shape

import (
	"github.com/ib-77/parsec/pkg/parse"
)

// Field binds one named member of an object input into the record being
// assembled by ObjectOf.
type Field[T any] struct {
	name string
	run  func(dst *T, member parse.Value) (reason string, ok bool)
}

// Bind declares that member name must satisfy child, and on success assign
// stores the validated value into the record under construction. A missing
// member is handed to child as the absence sentinel, so children wrapped in
// Voidable tolerate it.
func Bind[T, F any](name string, child parse.Validator[F], assign func(dst *T, v F)) Field[T] {
	return Field[T]{
		name: name,
		run: func(dst *T, member parse.Value) (string, bool) {
			res := child(member)
			if res.IsFailure() {
				return res.Reason(), false
			}
			assign(dst, res.Result())
			return "", true
		},
	}
}

// ObjectOf validates a fixed-shape record. Fields are checked in declared
// order and the first failing field wins; its failure carries the whole
// input and the reason "Failed at '<name>': <child reason>". On success the
// returned record holds exactly the declared fields; undeclared members of
// the input are ignored.
//
// A non-object input is not rejected up front: every member read on it
// yields the absence sentinel, so each child decides for itself.
func ObjectOf[T any](fields ...Field[T]) parse.Validator[T] {
	return func(input parse.Value) parse.Result[T] {
		var out T
		for _, f := range fields {
			if reason, ok := f.run(&out, input.Member(f.name)); !ok {
				return parse.Fail[T](input, "Failed at '"+f.name+"': "+reason)
			}
		}
		return parse.Success(out)
	}
}

// IndexedObjectOf validates a homogeneous key-indexed map: every member of
// the input object must satisfy value. Keys are visited in sorted order so
// the reported first failure is deterministic. All keys are preserved on
// success.
func IndexedObjectOf[T any](value parse.Validator[T]) parse.Validator[map[string]T] {
	return func(input parse.Value) parse.Result[map[string]T] {
		if input.IsNull() || input.IsUndefined() {
			return parse.Fail[map[string]T](input, "value is null or undefined")
		}
		if input.Kind() != parse.KindObject {
			return parse.Fail[map[string]T](input, "typeof value is "+string(input.Kind()))
		}

		keys := input.Keys()
		out := make(map[string]T, len(keys))
		for _, k := range keys {
			res := value(input.Member(k))
			if res.IsFailure() {
				return parse.Fail[map[string]T](input, "Failed at '"+k+"': "+res.Reason())
			}
			out[k] = res.Result()
		}
		return parse.Success(out)
	}
}
