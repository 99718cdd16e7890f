package shape

import (
	"reflect"
	"testing"

	"github.com/ib-77/parsec/pkg/parse"
	"github.com/ib-77/parsec/pkg/parse/scalars"
)

func TestArrayOf_Success(t *testing.T) {
	t.Parallel()

	res := ArrayOf(scalars.Number())(parse.Array(parse.Number(1), parse.Number(2), parse.Number(3)))
	if !res.IsSuccess() {
		t.Fatalf("expected success, got: %q", res.Reason())
	}
	if !reflect.DeepEqual(res.Result(), []float64{1, 2, 3}) {
		t.Fatalf("unexpected values: %v", res.Result())
	}
}

func TestArrayOf_EmptyIsValid(t *testing.T) {
	t.Parallel()

	res := ArrayOf(scalars.Number())(parse.Array())
	if !res.IsSuccess() || len(res.Result()) != 0 {
		t.Fatalf("empty array must validate to an empty slice, got: success=%v", res.IsSuccess())
	}
}

func TestArrayOf_NonArrayInput(t *testing.T) {
	t.Parallel()

	res := ArrayOf(scalars.Number())(parse.String("nope"))
	if res.IsSuccess() || res.Reason() != "typeof value is string" {
		t.Fatalf("expected typeof failure, got: %q", res.Reason())
	}
	if res.Input().Str() != "nope" {
		t.Fatalf("expected original input preserved, got: %v", res.Input())
	}
}

func TestArrayOf_ReportsFailingIndex(t *testing.T) {
	t.Parallel()

	in := parse.Array(parse.Number(1), parse.String("2"), parse.Number(3))
	res := ArrayOf(scalars.Number())(in)

	if res.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if res.Reason() != "Failed at '1': typeof value is string" {
		t.Fatalf("unexpected reason: %q", res.Reason())
	}
	if !reflect.DeepEqual(res.Input(), in) {
		t.Fatalf("failure must carry the whole original sequence, got: %v", res.Input())
	}
}

func TestArrayOf_ShortCircuits(t *testing.T) {
	t.Parallel()

	calls := 0
	counting := parse.Validator[float64](func(input parse.Value) parse.Result[float64] {
		calls++
		return scalars.Number()(input)
	})

	ArrayOf(counting)(parse.Array(parse.String("bad"), parse.Number(2), parse.Number(3)))
	if calls != 1 {
		t.Fatalf("expected validation to stop at the first failure, got %d calls", calls)
	}
}
