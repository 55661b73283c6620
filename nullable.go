// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackfn

// Nullable is an optional argument that must still be passed explicitly:
// either a value, built with Some, or an explicit null, built with Null. A
// null tells the function to use its documented default.
//
// The zero Nullable is null.
type Nullable[T any] struct {
	v     T
	valid bool
}

// Some returns a Nullable holding v.
func Some[T any](v T) Nullable[T] { return Nullable[T]{v: v, valid: true} }

// Null returns an explicit null.
func Null[T any]() Nullable[T] { return Nullable[T]{} }

// Get returns the value and whether one is present.
func (n Nullable[T]) Get() (T, bool) { return n.v, n.valid }

// IsNull reports whether n holds no value.
func (n Nullable[T]) IsNull() bool { return !n.valid }

// Or returns the value, or def if n is null.
func (n Nullable[T]) Or(def T) T {
	if !n.valid {
		return def
	}

	return n.v
}
