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
	"github.com/willowtreeapps/PinkyPromise/internal/join"
	"github.com/willowtreeapps/PinkyPromise/result"
)

// The zip combinators run several Promises concurrently and aggregate
// their Results into one completion. Each input owns one positional
// result slot; once every slot is filled, the slots are aggregated
// left-to-right exactly like the synchronous result zips: a Fulfilled
// aggregate of all values, or the failure of the lowest-indexed Rejected
// slot. Which failure is reported is decided by input position, never by
// completion order.
//
// The zips make no guarantee about the relative start or completion order
// of their inputs.

// Zip2 runs two Promises concurrently and completes with their success
// values as a Tuple2, or with the failure of the lowest-indexed input
// that rejected.
func Zip2[A, B any](pa Promise[A], pb Promise[B]) Promise[result.Tuple2[A, B]] {
	return Promise[result.Tuple2[A, B]]{task: func(o Observer[result.Tuple2[A, B]]) {
		var ra result.Result[A]
		var rb result.Result[B]
		t := join.NewTracker(2)
		settle := func(last bool) {
			if last {
				o(result.Zip2(ra, rb))
			}
		}
		pa.Start(func(r result.Result[A]) {
			ra = r
			settle(t.Fill(0))
		})
		pb.Start(func(r result.Result[B]) {
			rb = r
			settle(t.Fill(1))
		})
	}}
}

// Zip3 is Zip2 over three Promises.
func Zip3[A, B, C any](pa Promise[A], pb Promise[B], pc Promise[C]) Promise[result.Tuple3[A, B, C]] {
	return Promise[result.Tuple3[A, B, C]]{task: func(o Observer[result.Tuple3[A, B, C]]) {
		var ra result.Result[A]
		var rb result.Result[B]
		var rc result.Result[C]
		t := join.NewTracker(3)
		settle := func(last bool) {
			if last {
				o(result.Zip3(ra, rb, rc))
			}
		}
		pa.Start(func(r result.Result[A]) {
			ra = r
			settle(t.Fill(0))
		})
		pb.Start(func(r result.Result[B]) {
			rb = r
			settle(t.Fill(1))
		})
		pc.Start(func(r result.Result[C]) {
			rc = r
			settle(t.Fill(2))
		})
	}}
}

// Zip4 is Zip2 over four Promises.
func Zip4[A, B, C, D any](pa Promise[A], pb Promise[B], pc Promise[C], pd Promise[D]) Promise[result.Tuple4[A, B, C, D]] {
	return Promise[result.Tuple4[A, B, C, D]]{task: func(o Observer[result.Tuple4[A, B, C, D]]) {
		var ra result.Result[A]
		var rb result.Result[B]
		var rc result.Result[C]
		var rd result.Result[D]
		t := join.NewTracker(4)
		settle := func(last bool) {
			if last {
				o(result.Zip4(ra, rb, rc, rd))
			}
		}
		pa.Start(func(r result.Result[A]) {
			ra = r
			settle(t.Fill(0))
		})
		pb.Start(func(r result.Result[B]) {
			rb = r
			settle(t.Fill(1))
		})
		pc.Start(func(r result.Result[C]) {
			rc = r
			settle(t.Fill(2))
		})
		pd.Start(func(r result.Result[D]) {
			rd = r
			settle(t.Fill(3))
		})
	}}
}

// ZipAll runs a list of Promises concurrently and completes with the
// ordered list of their success values, or with the failure of the
// lowest-indexed input that rejected.
// ZipAll of an empty or nil list completes synchronously with an empty,
// non-nil list; no tasks are started.
func ZipAll[T any](ps []Promise[T]) Promise[[]T] {
	tasks := make([]Promise[T], len(ps))
	copy(tasks, ps)
	return Promise[[]T]{task: func(o Observer[[]T]) {
		if len(tasks) == 0 {
			o(result.ZipAll[T](nil))
			return
		}
		slots := make([]result.Result[T], len(tasks))
		t := join.NewTracker(len(tasks))
		for i, p := range tasks {
			i, p := i, p
			p.Start(func(r result.Result[T]) {
				slots[i] = r
				if t.Fill(i) {
					o(result.ZipAll(slots))
				}
			})
		}
	}}
}
