// Package scalars provides the leaf validators for primitive value
// categories: String, Number, Boolean, Undefined, Any, Object and Array.
//
// Each validator checks the runtime tag of its input and nothing else; there
// is no coercion between categories. On mismatch the failure reason is
// "typeof value is <tag>" with the input preserved as-is.
package scalars
