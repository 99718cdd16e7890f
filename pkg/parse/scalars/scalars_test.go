package scalars

import (
	"math"
	"reflect"
	"testing"

	"github.com/ib-77/parsec/pkg/parse"
)

func TestString_Accepts(t *testing.T) {
	t.Parallel()

	res := String()(parse.String("hello"))
	if !res.IsSuccess() || res.Result() != "hello" {
		t.Fatalf("expected success with \"hello\", got: success=%v, val=%v", res.IsSuccess(), res.Result())
	}
}

func TestString_RejectsWithTypeofReason(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     parse.Value
		reason string
	}{
		{parse.Number(1), "typeof value is number"},
		{parse.Boolean(true), "typeof value is boolean"},
		{parse.Null(), "typeof value is null"},
		{parse.Undefined(), "typeof value is undefined"},
		{parse.Array(), "typeof value is array"},
		{parse.Object(nil), "typeof value is object"},
	}

	for _, c := range cases {
		res := String()(c.in)
		if res.IsSuccess() {
			t.Fatalf("expected failure for %v", c.in.Kind())
		}
		if res.Reason() != c.reason {
			t.Fatalf("expected reason %q, got %q", c.reason, res.Reason())
		}
		if !reflect.DeepEqual(res.Input(), c.in) {
			t.Fatalf("expected original input preserved, got: %v", res.Input())
		}
	}
}

func TestNumber_AcceptsNaNAndInfinity(t *testing.T) {
	t.Parallel()

	if res := Number()(parse.Number(math.NaN())); !res.IsSuccess() || !math.IsNaN(res.Result()) {
		t.Fatalf("NaN must pass the number validator, got: success=%v", res.IsSuccess())
	}
	if res := Number()(parse.Number(math.Inf(1))); !res.IsSuccess() {
		t.Fatalf("Infinity must pass the number validator")
	}
}

func TestNumber_NoCoercionFromString(t *testing.T) {
	t.Parallel()

	res := Number()(parse.String("42"))
	if res.IsSuccess() || res.Reason() != "typeof value is string" {
		t.Fatalf("expected strict failure, got: success=%v, reason=%q", res.IsSuccess(), res.Reason())
	}
}

func TestBoolean(t *testing.T) {
	t.Parallel()

	if res := Boolean()(parse.Boolean(false)); !res.IsSuccess() || res.Result() != false {
		t.Fatalf("expected success with false")
	}
	if res := Boolean()(parse.Number(0)); res.IsSuccess() || res.Reason() != "typeof value is number" {
		t.Fatalf("expected typeof failure, got: success=%v, reason=%q", res.IsSuccess(), res.Reason())
	}
}

func TestUndefined_DistinguishesNull(t *testing.T) {
	t.Parallel()

	if res := Undefined()(parse.Undefined()); !res.IsSuccess() {
		t.Fatalf("expected success on the absence sentinel")
	}
	res := Undefined()(parse.Null())
	if res.IsSuccess() || res.Reason() != "typeof value is null" {
		t.Fatalf("null must not pass the undefined validator, got: success=%v, reason=%q", res.IsSuccess(), res.Reason())
	}
}

func TestAny_AcceptsEverything(t *testing.T) {
	t.Parallel()

	for _, in := range []parse.Value{
		parse.Null(), parse.Undefined(), parse.Boolean(true), parse.Number(1),
		parse.String("x"), parse.Array(parse.Null()), parse.Object(nil),
	} {
		res := Any()(in)
		if !res.IsSuccess() {
			t.Fatalf("Any must accept %v", in.Kind())
		}
		if !reflect.DeepEqual(res.Result(), in) {
			t.Fatalf("Any must return the input unchanged, got: %v", res.Result())
		}
	}
}

func TestObject_RejectsNull(t *testing.T) {
	t.Parallel()

	if res := Object()(parse.Object(map[string]parse.Value{})); !res.IsSuccess() {
		t.Fatalf("expected success on an object")
	}
	res := Object()(parse.Null())
	if res.IsSuccess() || res.Reason() != "typeof value is null" {
		t.Fatalf("null must not pass the object validator, got: success=%v, reason=%q", res.IsSuccess(), res.Reason())
	}
}

func TestArray(t *testing.T) {
	t.Parallel()

	res := Array()(parse.Array(parse.Number(1), parse.String("a")))
	if !res.IsSuccess() || len(res.Result()) != 2 {
		t.Fatalf("expected success with 2 members, got: success=%v", res.IsSuccess())
	}

	bad := Array()(parse.Object(nil))
	if bad.IsSuccess() || bad.Reason() != "typeof value is object" {
		t.Fatalf("expected typeof failure, got: success=%v, reason=%q", bad.IsSuccess(), bad.Reason())
	}
}
