// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackfn

import (
	"context"
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// UnknownFunctionError is returned by Invoke for a name that is not in the
// catalog.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %q", e.Name)
}

// ArgumentError is returned by Invoke when an argument is missing or cannot
// be converted to its declared type. Err, if set, is the conversion error.
type ArgumentError struct {
	Function  string
	Parameter string
	Reason    string
	Err       error
}

func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: argument %q %s: %s", e.Function, e.Parameter, e.Reason, e.Err)
	}

	return fmt.Sprintf("%s: argument %q %s", e.Function, e.Parameter, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// Invoke calls the function called name with the given arguments, as decoded
// from a JSON object. Every declared parameter must be present; nullable ones
// may be nil. Keys not declared by the function are ignored.
//
// Numbers may be passed as any numeric type or a numeric string, and strings
// as anything spf13/cast can turn in to a string.
func (f *Functions) Invoke(ctx context.Context, name string, args map[string]interface{}) (TextResponse, error) {
	op, ok := operationsByName[name]
	if !ok {
		return TextResponse{}, &UnknownFunctionError{Name: name}
	}

	return op.invoke(ctx, f, arguments{fn: name, m: args})
}

// arguments reads the arguments of a single Invoke call.
type arguments struct {
	fn string
	m  map[string]interface{}
}

func (a arguments) errorf(param, reason string, err error) error {
	return &ArgumentError{Function: a.fn, Parameter: param, Reason: reason, Err: err}
}

// lookup returns the raw value of a parameter, failing if the key is absent.
func (a arguments) lookup(name string) (interface{}, error) {
	v, ok := a.m[name]
	if !ok {
		return nil, a.errorf(name, "is required", nil)
	}

	return v, nil
}

func (a arguments) toString(name string, v interface{}) (string, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", a.errorf(name, "must be a string", err)
	}

	return s, nil
}

// strings returns the named non-nullable string arguments, in order.
func (a arguments) strings(names ...string) ([]string, error) {
	out := make([]string, len(names))

	for i, name := range names {
		v, err := a.lookup(name)
		if err != nil {
			return nil, err
		}

		if v == nil {
			return nil, a.errorf(name, "must not be null", nil)
		}

		if out[i], err = a.toString(name, v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (a arguments) nullableString(name string) (Nullable[string], error) {
	v, err := a.lookup(name)
	if err != nil {
		return Null[string](), err
	}

	if v == nil {
		return Null[string](), nil
	}

	s, err := a.toString(name, v)
	if err != nil {
		return Null[string](), err
	}

	return Some(s), nil
}

func (a arguments) nullableInt(name string) (Nullable[int], error) {
	v, err := a.lookup(name)
	if err != nil {
		return Null[int](), err
	}

	if v == nil {
		return Null[int](), nil
	}

	n, err := toInt(v)
	if err != nil {
		return Null[int](), a.errorf(name, "must be a number", err)
	}

	return Some(n), nil
}

// toInt is cast.ToIntE, except that floats and unsigned values outside the
// int range saturate at math.MaxInt or math.MinInt rather than wrapping.
func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case uint:
		if n > math.MaxInt {
			return math.MaxInt, nil
		}
	case uint64:
		if n > math.MaxInt {
			return math.MaxInt, nil
		}
	}

	return cast.ToIntE(v)
}

func floatToInt(f float64) (int, error) {
	switch {
	case math.IsNaN(f):
		return 0, errors.Errorf("unable to cast %v of type float64 to int", f)
	case f >= math.MaxInt:
		return math.MaxInt, nil
	case f <= math.MinInt:
		return math.MinInt, nil
	}

	return int(f), nil
}
