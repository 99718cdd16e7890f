// Package parse holds the core data model for validating dynamically-typed
// values: the Value tagged union, the two-variant Result[T], the Validator[T]
// function type, and the generic combinators over results.
//
// Highlights:
// - Value: closed union over undefined/null/boolean/number/string/array/object
// - FromAny: lift generic decoder output (json, yaml) into a Value
// - Success/Fail/FailFrom: construct Result[T]
// - Then/Map: move from Result[In] to Result[Out] on success
// - Recover: handle a failure, keeping successes untouched
// - Finally: reduce to a concrete value via success/failure handlers
//
// Validators never panic or log on invalid input; every failure is an
// ordinary return value carrying the original input and a reason string.
// Leaf validators live in the scalars subpackage, combinators over container
// shapes in the shape subpackage.
package parse
