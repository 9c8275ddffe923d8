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

package promise

import (
	"github.com/willowtreeapps/PinkyPromise/result"
)

// The type-changing combinators live as free functions, since Go methods
// can't introduce new type parameters.

// Map returns a Promise that runs p and applies transform to its success
// value. A failure is forwarded untouched without invoking transform; a
// panic inside transform becomes a *result.PanicError failure.
//
// It panics if transform is nil.
func Map[T, U any](p Promise[T], transform func(val T) U) Promise[U] {
	if transform == nil {
		panic(nilCallbackPanicMsg)
	}
	return Promise[U]{task: func(o Observer[U]) {
		p.Start(func(res result.Result[T]) {
			o(result.Map(res, transform))
		})
	}}
}

// TryMap is Map for transforms that can themselves fail: a non-nil
// returned error, like a panic, becomes the composite's failure.
//
// It panics if transform is nil.
func TryMap[T, U any](p Promise[T], transform func(val T) (U, error)) Promise[U] {
	if transform == nil {
		panic(nilCallbackPanicMsg)
	}
	return Promise[U]{task: func(o Observer[U]) {
		p.Start(func(res result.Result[T]) {
			o(result.TryMap(res, transform))
		})
	}}
}

// FlatMap returns a Promise that runs p, and on success invokes transform
// to obtain the next Promise, starts it, and forwards its Result.
// A failure of p is forwarded untouched without invoking transform.
// A panic inside transform is captured as the composite's failure, and
// whatever Promise transform may have half-built is never started.
//
// It panics if transform is nil.
func FlatMap[T, U any](p Promise[T], transform func(val T) Promise[U]) Promise[U] {
	if transform == nil {
		panic(nilCallbackPanicMsg)
	}
	return Promise[U]{task: func(o Observer[U]) {
		p.Start(func(res result.Result[T]) {
			if res.State() == result.Rejected {
				o(result.Err[U](res.Err()))
				return
			}
			startNext(o, func() Promise[U] {
				return transform(res.Val())
			})
		})
	}}
}
