// Copyright 2026 WillowTree, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package result holds the success-or-failure container produced by
// promises, the synchronous transformations over it, and the zip
// combinators that aggregate several independent containers into one.
//
// A Result is in exactly one of two states, Fulfilled or Rejected, and
// is immutable once constructed: every transformation returns a new
// Result value and never touches its input. A Rejected Result carries
// the original error value untouched, so callers can compare it against
// sentinel errors with == or errors.Is after any number of forwarding
// steps.
package result

import "fmt"

// State is the state of a Result value.
type State int

const (
	// Fulfilled means the operation produced a success value.
	Fulfilled State = iota

	// Rejected means the operation produced a failure.
	Rejected
)

func (s State) String() string {
	switch s {
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "<unknown state>"
	}
}

// Result is a container for a single success value or a single failure.
//
// The zero Result value is a Fulfilled Result holding T's zero value,
// same as Empty returns.
type Result[T any] struct {
	val T
	err error
}

// Val returns a Fulfilled Result holding val.
func Val[T any](val T) Result[T] {
	return Result[T]{val: val}
}

// Err returns a Rejected Result carrying err.
// If err is nil, the returned Result is Fulfilled, holding T's zero value.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Empty returns a Fulfilled Result holding T's zero value.
func Empty[T any]() Result[T] {
	return Result[T]{}
}

// Val returns the success value, or T's zero value if the Result is Rejected.
func (r Result[T]) Val() T {
	return r.val
}

// Err returns the failure, or nil if the Result is Fulfilled.
func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) State() State {
	if r.err != nil {
		return Rejected
	}
	return Fulfilled
}

// Get unwraps the Result into Go's usual value-error pair.
func (r Result[T]) Get() (T, error) {
	return r.val, r.err
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("rejected: %s", r.err.Error())
	}
	return fmt.Sprintf("fulfilled: %v", r.val)
}

// Map applies transform to the success value of r and returns a Fulfilled
// Result of the returned value.
// If r is Rejected, transform is never invoked and the same failure is
// forwarded, re-typed to U.
// If transform panics, the panic is captured into a Rejected Result
// carrying a *PanicError; Map never turns a Rejected Result into a
// Fulfilled one.
func Map[T, U any](r Result[T], transform func(val T) U) (res Result[U]) {
	if r.err != nil {
		return Err[U](r.err)
	}
	defer capture(&res)
	return Val(transform(r.val))
}

// TryMap is like Map for transforms that can themselves fail.
// A non-nil returned error, or a panic inside transform, produces a
// Rejected Result.
func TryMap[T, U any](r Result[T], transform func(val T) (U, error)) (res Result[U]) {
	if r.err != nil {
		return Err[U](r.err)
	}
	defer capture(&res)
	val, err := transform(r.val)
	if err != nil {
		return Err[U](err)
	}
	return Val(val)
}

// FlatMap applies transform to the success value of r and returns the
// Result it produces, whether Fulfilled or Rejected.
// If r is Rejected, transform is never invoked and the same failure is
// forwarded, re-typed to U.
// If transform panics, the panic is captured into a Rejected Result
// carrying a *PanicError.
func FlatMap[T, U any](r Result[T], transform func(val T) Result[U]) (res Result[U]) {
	if r.err != nil {
		return Err[U](r.err)
	}
	defer capture(&res)
	return transform(r.val)
}

// capture must be deferred directly, so that its recover call takes effect.
func capture[U any](res *Result[U]) {
	if v := recover(); v != nil {
		*res = Err[U](NewPanicError(v))
	}
}
