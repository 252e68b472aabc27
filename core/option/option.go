package option

import (
	"errors"
	"math"
	"strconv"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

// Maybe is a type used for matching of optional types.
// It will match `Some` if a value is set, `None` if it is unset, or `Error`
// if an error occurs.
type Maybe map[MaybeOption]interface{}

// Of is a type used for matching of optional types.
// It will first try to match concrete values, and in case of no match will
// then try a Maybe match.
type Of map[interface{}]interface{}

// Type is a type for optional values.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
}

// Match will do a standard matching of o against choices.
//
// choices are expected to be a map type, where keys of the map are either
// concrete values for o, or of type MaybeOption. Values of the map may be
// of any type. Values of type
//
//     func(interface{}) (interface{}, error)
//
// will be called with o as an argument.
//
// If choices is of unknown kind, nil and ErrNoSuchMatchPattern are returned.
func Match(o Type, choices interface{}) (value interface{}, err error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

func (of Of) Match(o Type) (value interface{}, err error) {
	if o.IsNone() {
		if expr, ok := of[None]; ok {
			return valueOrExpr(expr, o)
		}
		return nil, ErrCannotMatchUnsetValue
	}
	err = ErrCannotMatchValue
	matched := false
	for k, expr := range of {
		if _, isOpt := k.(MaybeOption); isOpt {
			continue
		}
		if o.Equals(k) {
			matched = true
			value, err = valueOrExpr(expr, o)
			break
		}
	}
	if !matched {
		if expr, ok := of[Some]; ok {
			value, err = valueOrExpr(expr, o)
		}
	}
	if err != nil {
		tracer().Debugf("option %v: %v", o, err)
		if expr, ok := of[Error]; ok {
			value, err = valueOrExpr(expr, o)
		}
	}
	return value, err
}

func (maybe Maybe) Match(o Type) (value interface{}, err error) {
	if o.IsNone() {
		if expr, ok := maybe[None]; ok {
			return valueOrExpr(expr, o)
		}
		return nil, ErrCannotMatchUnsetValue
	}
	if expr, ok := maybe[Some]; ok {
		value, err = valueOrExpr(expr, o)
	} else {
		err = ErrCannotMatchValue
	}
	if err != nil {
		tracer().Debugf("option %v: %v", o, err)
		if expr, ok := maybe[Error]; ok {
			value, err = valueOrExpr(expr, o)
		}
	}
	return value, err
}

func valueOrExpr(op interface{}, value Type) (interface{}, error) {
	if f, ok := op.(func(interface{}) (interface{}, error)); ok {
		return f(value)
	}
	return op, nil
}

// Fail may be used as an option case, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// label.
//
//     _, err := o.Match(option.Of{
//          option.None: …,
//          -1:          option.Fail(errors.New("-1 is illegal")),
//          option.Some: …,
//     })
//
func Fail(err error) func(interface{}) (interface{}, error) {
	localErr := err
	return func(interface{}) (interface{}, error) {
		return nil, localErr
	}
}

// Safe wraps a Match's return values and drops the error value.
func Safe(x interface{}, err error) interface{} {
	return x
}

// --- Int64T-----------------------------------------------------------------

// Int64T is an option type for int64.
type Int64T int64

// Int64None is used as an in-band null value for type int64 for optional integers.
const Int64None int64 = math.MaxInt64

// SomeInt64 creates an optional int64 with an initial value of x.
func SomeInt64(x int) Int64T {
	return Int64T(x)
}

// Int64 creates an optional int64 without an initial value.
func Int64() Int64T {
	return Int64T(Int64None)
}

func (o Int64T) Match(choices interface{}) (value interface{}, err error) {
	return Match(o, choices)
}

func (o Int64T) Equals(other interface{}) bool {
	if o.IsNone() {
		return false
	}
	switch i := other.(type) {
	case int64:
		return int64(o) == i
	case int32:
		return int64(o) == int64(i)
	case int:
		return int64(o) == int64(i)
	case Int64T:
		return o == i
	}
	return false
}

func (o Int64T) Unwrap() int64 {
	return int64(o)
}

// OrElse returns the value of o, or x if o is unset.
func (o Int64T) OrElse(x int) int {
	if o.IsNone() {
		return x
	}
	return int(o)
}

// IsNone returns true if o is unset.
func (o Int64T) IsNone() bool {
	return o == Int64T(Int64None)
}

func (o Int64T) String() string {
	if o.IsNone() {
		return "Int64.None"
	}
	return strconv.FormatInt(int64(o), 10)
}

var _ Type = Int64T(0)
