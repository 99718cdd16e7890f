// Package shape builds validators out of other validators over container
// shapes and value constraints.
//
// Highlights:
// - ObjectOf/Bind: fixed-shape records assembled into a struct
// - ArrayOf: homogeneous sequences
// - IndexedObjectOf: homogeneous key-indexed maps, all keys preserved
// - Exactly: exact-value match against a scalar literal
// - OneOf: ordered alternation, first success wins
// - Map/Try: transform a validated value, possibly failing
// - Optional/Voidable: tolerate null or absence with a nil pointer
//
// All combinators are fail-fast: the first child failure in declared or
// index order stops validation and propagates outward with a
// "Failed at '<key>': " path segment per nesting level, while the failure
// value is rewrapped to the outer-most input. Failures are never aggregated.
package shape
