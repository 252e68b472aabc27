package option_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/figtype/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOptionMaybe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.font")
	defer teardown()
	//
	var y1, y2, y3 interface{}
	x := option.SomeInt64(42)
	t.Logf("x = %v, x.T = %T, x.unwrap = %v", x, x, x.Unwrap())
	y1, _ = x.Match(option.Maybe{
		option.None: 7,
		option.Some: x.Unwrap() + 1,
	})
	//
	x = option.Int64()
	y2, _ = x.Match(option.Maybe{
		option.None: "No Value",
		option.Some: stringify,
	})
	//
	x = option.SomeInt64(42)
	y3, _ = x.Match(option.Maybe{
		option.None:  "No Value",
		option.Some:  nonsense,
		option.Error: stringify,
	})
	//
	t.Logf("y1 = %d, y2 = %s, y3 = %v", y1, y2, y3)
	if y1.(int64) != 43 {
		t.Errorf("expected SomeInt(42) to match to 43, is %d", y1)
	}
	if y2.(string) != "No Value" {
		t.Errorf("expected null-int64 to match to No Value, is %v", y2)
	}
	if y3 != "Value = 42" {
		t.Errorf("expected SomeInt(42) to match to Value = 42, is %v", y3)
	}
}

func TestOptionOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.font")
	defer teardown()
	//
	x := option.SomeInt64(1)
	y, _ := x.Match(option.Of{
		option.None: 7,
		1:           99,
		option.Some: x.Unwrap(),
	})
	if y.(int) != 99 {
		t.Errorf("expected SomeInt(1) to match to 99, is %d", y)
	}
	x = option.SomeInt64(0)
	y, _ = x.Match(option.Of{
		option.None: "unset",
		1:           "right-to-left",
		option.Some: "left-to-right",
	})
	if y != "left-to-right" {
		t.Errorf("expected SomeInt(0) to fall through to Some, is %v", y)
	}
}

func TestOptionUnsetWithoutNone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.font")
	defer teardown()
	//
	x := option.Int64()
	_, err := x.Match(option.Maybe{option.Some: 1})
	if err != option.ErrCannotMatchUnsetValue {
		t.Errorf("expected unset value to be unmatchable, err = %v", err)
	}
	if x.Equals(int(option.Int64None)) {
		t.Errorf("unset option must not equal any value")
	}
	if x.OrElse(-1) != -1 {
		t.Errorf("expected OrElse to return fallback for unset value")
	}
	if option.SomeInt64(5).OrElse(-1) != 5 {
		t.Errorf("expected OrElse to return the value for set option")
	}
	if x.String() != "Int64.None" {
		t.Errorf("unexpected string for unset option: %s", x)
	}
}

func TestOptionFail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.font")
	defer teardown()
	//
	x := option.SomeInt64(1)
	_, err := x.Match(option.Of{
		option.None:  7,
		1:            option.Fail(errors.New("Fail")),
		option.Some:  x.Unwrap(),
		option.Error: option.Fail(errors.New("Caught Fail")),
	})
	//
	t.Logf("err = %v", err)
	if err == nil {
		t.Fatalf("expected SomeInt(1) to match to an error, hasn't")
	}
	if err.Error() != "Caught Fail" {
		t.Errorf("expected SomeInt(1) error to be caught, isn't")
	}
}

// ---------------------------------------------------------------------------

func nonsense(x interface{}) (interface{}, error) {
	return nil, errors.New("ERROR")
}

func stringify(x interface{}) (interface{}, error) {
	return fmt.Sprintf("Value = %v", x), nil
}
