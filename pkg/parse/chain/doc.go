// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of parse.Result[T] values.
//
// It keeps the API surface very small:
// - Start/Parse/FromValue: create a Chain
// - Then: compose result-returning functions
// - Map: transform the successful value
// - Check: fail on a rejected predicate
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Chain is sugar over the parse combinators; it adds no semantics of its
// own and is handy where a pipeline of post-validation steps improves
// readability.
package chain
