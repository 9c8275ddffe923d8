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

// Observer is the completion callback of a Promise. A started Promise
// invokes its Observer exactly once, with exactly one Result.
type Observer[T any] func(res result.Result[T])

// Promise is a cold, immutable unit of deferred work that eventually
// produces a single Result.
//
// Constructing or composing a Promise performs no work; work happens only
// when Start is invoked. A Promise is a reusable value: Start may be
// called any number of times, and each call performs the underlying
// operation anew, independently of any other call.
//
// The zero Promise value wraps no operation; starting it panics.
type Promise[T any] struct {
	task func(o Observer[T])
}

// New wraps a raw asynchronous operation into a Promise.
//
// The operation receives an Observer and must invoke it exactly once,
// eventually, with one Result. That single-completion contract is a
// precondition this package assumes but cannot enforce: an operation that
// never completes leaves every composed chain hanging, and one that
// completes twice corrupts downstream aggregation. Both are undefined
// behavior.
//
// It panics if task is nil.
func New[T any](task func(o Observer[T])) Promise[T] {
	if task == nil {
		panic(nilTaskPanicMsg)
	}
	return Promise[T]{task: task}
}

// Wrap returns a Promise that completes synchronously with res, on the
// same call stack as Start.
// Synchronous completion is a supported case throughout this package, not
// an optimization: any link of a composed chain may resolve before its
// Start returns.
func Wrap[T any](res result.Result[T]) Promise[T] {
	return Promise[T]{task: func(o Observer[T]) {
		o(res)
	}}
}

// Fulfilled returns a Promise that completes synchronously with a
// Fulfilled Result holding val.
func Fulfilled[T any](val T) Promise[T] {
	return Wrap(result.Val(val))
}

// Rejected returns a Promise that completes synchronously with a Rejected
// Result carrying err.
func Rejected[T any](err error) Promise[T] {
	return Wrap(result.Err[T](err))
}

// Lift wraps a synchronous computation into a Promise. Each Start invokes
// fn, capturing its return value, its returned error, or a panic it
// raises (as a *result.PanicError failure) into the completion Result.
//
// It panics if fn is nil.
func Lift[T any](fn func() (T, error)) Promise[T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	return Promise[T]{task: func(o Observer[T]) {
		o(tryCall(fn))
	}}
}

// Start runs the wrapped operation once. The Observer is invoked exactly
// once with the operation's Result, no earlier than this call.
//
// A nil Observer is legal: the operation still runs, but its Result,
// failure included, is silently discarded. Pass an Observer (or chain
// OnFailure) if the outcome matters.
//
// It panics if called on the zero Promise value.
func (p Promise[T]) Start(o Observer[T]) {
	if p.task == nil {
		panic(zeroPromisePanicMsg)
	}
	if o == nil {
		o = func(result.Result[T]) {}
	}
	p.task(o)
}

// Recover returns a Promise that runs the receiver, forwards its success
// untouched, and on failure invokes transform with the error to obtain a
// replacement Promise, starting it and forwarding its Result.
// A panic inside transform is captured as the composite's failure, and no
// replacement task is started.
//
// It panics if transform is nil.
func (p Promise[T]) Recover(transform func(err error) Promise[T]) Promise[T] {
	if transform == nil {
		panic(nilCallbackPanicMsg)
	}
	return Promise[T]{task: func(o Observer[T]) {
		p.Start(func(res result.Result[T]) {
			if res.State() == result.Fulfilled {
				o(res)
				return
			}
			startNext(o, func() Promise[T] {
				return transform(res.Err())
			})
		})
	}}
}

// Retry returns a Promise that starts the receiver up to attempts times.
// The first success stops retrying and is forwarded immediately; after
// the last attempt fails, that last failure is forwarded.
// Attempts of 1 or less behaves identically to no retry.
func (p Promise[T]) Retry(attempts int) Promise[T] {
	if attempts <= 1 {
		return p
	}
	return Promise[T]{task: func(o Observer[T]) {
		var attempt func(n int)
		attempt = func(n int) {
			p.Start(func(res result.Result[T]) {
				if res.State() == result.Fulfilled || n >= attempts {
					o(res)
					return
				}
				attempt(n + 1)
			})
		}
		attempt(1)
	}}
}

// InBackground returns a Promise that starts the receiver on the
// scheduler's background primitive and delivers the Result back through
// the scheduler's main primitive.
// This is the only combinator that crosses execution contexts.
//
// It panics if s is nil.
func (p Promise[T]) InBackground(s Scheduler) Promise[T] {
	if s == nil {
		panic(nilSchedulerPanicMsg)
	}
	return Promise[T]{task: func(o Observer[T]) {
		s.SubmitBackground(func() {
			p.Start(func(res result.Result[T]) {
				s.SubmitMain(func() {
					o(res)
				})
			})
		})
	}}
}

// OnResult returns a Promise that runs the receiver, invokes observe with
// its Result, then forwards that same Result unchanged.
// The side effect runs before the outer Observer, exactly once per Start.
// Do not panic inside observe: such a panic is not captured and unwinds
// through whatever call stack delivered the completion.
//
// It panics if observe is nil.
func (p Promise[T]) OnResult(observe func(res result.Result[T])) Promise[T] {
	if observe == nil {
		panic(nilCallbackPanicMsg)
	}
	return Promise[T]{task: func(o Observer[T]) {
		p.Start(func(res result.Result[T]) {
			observe(res)
			o(res)
		})
	}}
}

// OnSuccess is OnResult restricted to Fulfilled completions; observe
// receives the success value. The Result is forwarded unchanged either way.
// Do not panic inside observe.
//
// It panics if observe is nil.
func (p Promise[T]) OnSuccess(observe func(val T)) Promise[T] {
	if observe == nil {
		panic(nilCallbackPanicMsg)
	}
	return Promise[T]{task: func(o Observer[T]) {
		p.Start(func(res result.Result[T]) {
			if res.State() == result.Fulfilled {
				observe(res.Val())
			}
			o(res)
		})
	}}
}

// OnFailure is OnResult restricted to Rejected completions; observe
// receives the failure. The Result is forwarded unchanged either way.
// Do not panic inside observe.
//
// It panics if observe is nil.
func (p Promise[T]) OnFailure(observe func(err error)) Promise[T] {
	if observe == nil {
		panic(nilCallbackPanicMsg)
	}
	return Promise[T]{task: func(o Observer[T]) {
		p.Start(func(res result.Result[T]) {
			if res.State() == result.Rejected {
				observe(res.Err())
			}
			o(res)
		})
	}}
}

// tryCall runs fn, capturing its outcome, panics included, into a Result.
func tryCall[T any](fn func() (T, error)) (res result.Result[T]) {
	defer captureRes(&res)
	val, err := fn()
	if err != nil {
		return result.Err[T](err)
	}
	return result.Val(val)
}

// captureRes must be deferred directly, so that its recover call takes effect.
func captureRes[T any](res *result.Result[T]) {
	if v := recover(); v != nil {
		*res = result.Err[T](result.NewPanicError(v))
	}
}

// startNext builds the next promise of a chain via build and starts it
// with o. A panic inside build rejects o directly, and whatever promise
// build may have half-constructed is never started.
func startNext[U any](o Observer[U], build func() Promise[U]) {
	next, ok := buildNext(o, build)
	if ok {
		next.Start(o)
	}
}

func buildNext[U any](o Observer[U], build func() Promise[U]) (next Promise[U], ok bool) {
	defer func() {
		if v := recover(); v != nil {
			o(result.Err[U](result.NewPanicError(v)))
		}
	}()
	return build(), true
}
