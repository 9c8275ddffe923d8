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

// Package promise provides a composable abstraction for asynchronous
// operations that produce a single success value or a single failure,
// combinators for sequencing, transforming, retrying and parallelizing
// such operations, and a serial Queue that runs a batch of them strictly
// one at a time in submission order.
//
// A Promise is cold: constructing or composing one performs no work.
// Work happens when Start is invoked, and each Start performs the
// underlying operation anew, so a Promise value is freely reusable.
// Completion is callback-based; a started Promise invokes its Observer
// exactly once with a [result.Result], which is either Fulfilled with a
// value or Rejected with an error.
//
// Completion may be synchronous (on the same call stack as Start, as
// with Wrap, Fulfilled and Rejected) or asynchronous from any goroutine
// the wrapped operation chooses. Every combinator works under both.
// The package itself spawns no goroutines except inside [LoopScheduler];
// InBackground is the single point where a chain explicitly crosses
// execution contexts, through whatever [Scheduler] the caller provides.
//
// # Composition
//
// Map, TryMap and FlatMap transform a Promise's success value; failures
// flow past the transforms untouched, carried as the same error value
// end-to-end. Recover substitutes a replacement Promise for a failure,
// and Retry re-runs an operation a fixed number of times. OnResult,
// OnSuccess and OnFailure attach side effects that run before the outer
// Observer. A panic inside a transform is captured at that step into a
// [result.PanicError] failure instead of unwinding; panics inside the
// side-effect observers are not captured.
//
// Zip2 through Zip4 and ZipAll run several Promises concurrently and
// aggregate their Results, reporting either all success values or the
// failure of the lowest-indexed rejected input, a deterministic
// tie-break that's independent of completion order.
//
// # Contracts and footguns
//
// An operation wrapped with New must invoke its Observer exactly once,
// eventually. The package assumes this and cannot enforce it: never
// completing leaves chains hanging, completing twice is undefined
// behavior (joins detect it and panic).
//
// Start accepts a nil Observer: the work still runs and the outcome,
// failure included, is discarded.
//
// Once started, a Promise cannot be canceled, and no combinator imposes
// a timeout; there are also no multi-value emissions. All three are
// deliberate scope limits, not omissions to work around.
package promise
