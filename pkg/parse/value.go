package parse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind is the runtime tag of a Value. Its string form is the tag used in
// type-mismatch reasons.
type Kind string

const (
	KindUndefined Kind = "undefined"
	KindNull      Kind = "null"
	KindBoolean   Kind = "boolean"
	KindNumber    Kind = "number"
	KindString    Kind = "string"
	KindArray     Kind = "array"
	KindObject    Kind = "object"
)

// Value is a closed tagged union over the shapes a generic decoder can
// produce. The undefined kind is the absence sentinel and is distinct
// from null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

func Undefined() Value {
	return Value{kind: KindUndefined}
}

func Null() Value {
	return Value{kind: KindNull}
}

func Boolean(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

func Number(n float64) Value {
	return Value{kind: KindNumber, n: n}
}

func String(s string) Value {
	return Value{kind: KindString, s: s}
}

func Array(items ...Value) Value {
	return Value{kind: KindArray, arr: items}
}

func Object(fields map[string]Value) Value {
	return Value{kind: KindObject, obj: fields}
}

// FromAny lifts the output of a generic decoder (encoding/json, yaml.v3 and
// friends) into a Value. A Go nil becomes null; absence cannot be decoded,
// it only arises from Member lookups.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Boolean(t), nil
	case string:
		return String(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int8:
		return Number(float64(t)), nil
	case int16:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case uint8:
		return Number(float64(t)), nil
	case uint16:
		return Number(float64(t)), nil
	case uint32:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case []any:
		items := make([]Value, len(t))
		for i, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			items[i] = ev
		}
		return Array(items...), nil
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			fields[k] = ev
		}
		return Object(fields), nil
	default:
		return Value{}, fmt.Errorf("parse: unsupported value type %T", v)
	}
}

// MustFromAny is FromAny for statically known literals, e.g. in tests.
func MustFromAny(v any) Value {
	out, err := FromAny(v)
	if err != nil {
		panic(err)
	}
	return out
}

func (v Value) Kind() Kind {
	// the zero Value counts as absent
	if v.kind == "" {
		return KindUndefined
	}
	return v.kind
}

func (v Value) IsUndefined() bool {
	return v.Kind() == KindUndefined
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) Bool() bool {
	return v.b
}

func (v Value) Num() float64 {
	return v.n
}

func (v Value) Str() string {
	return v.s
}

// Items returns the members of an array value, nil for any other kind.
func (v Value) Items() []Value {
	return v.arr
}

// Keys returns the keys of an object value in sorted order, so iteration
// over members is deterministic.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Member returns the named member of an object value. A missing key, or a
// receiver that is not an object at all, yields the absence sentinel.
func (v Value) Member(key string) Value {
	if v.kind != KindObject {
		return Undefined()
	}
	m, ok := v.obj[key]
	if !ok {
		return Undefined()
	}
	return m
}

// Interface lowers a Value back to plain decoder shapes. Undefined and null
// both lower to nil.
func (v Value) Interface() any {
	switch v.Kind() {
	case KindBoolean:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindArray:
		items := make([]any, len(v.arr))
		for i, e := range v.arr {
			items[i] = e.Interface()
		}
		return items
	case KindObject:
		fields := make(map[string]any, len(v.obj))
		for k, e := range v.obj {
			fields[k] = e.Interface()
		}
		return fields
	default:
		return nil
	}
}

// String renders the deterministic display form used in failure reasons.
func (v Value) String() string {
	switch v.Kind() {
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindString:
		return v.s
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		parts := make([]string, 0, len(v.obj))
		for _, k := range v.Keys() {
			parts = append(parts, k+": "+v.obj[k].String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
}
