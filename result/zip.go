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

package result

// Tuple2 holds the success values of two zipped Results, in argument order.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Tuple3 holds the success values of three zipped Results, in argument order.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 holds the success values of four zipped Results, in argument order.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Zip2 combines two independent Results into one.
// If both are Fulfilled, the result holds their values as a Tuple2.
// Otherwise, the failure of the first Rejected input, by argument
// position, is forwarded.
func Zip2[A, B any](ra Result[A], rb Result[B]) Result[Tuple2[A, B]] {
	if ra.err != nil {
		return Err[Tuple2[A, B]](ra.err)
	}
	if rb.err != nil {
		return Err[Tuple2[A, B]](rb.err)
	}
	return Val(Tuple2[A, B]{V1: ra.val, V2: rb.val})
}

// Zip3 is Zip2 over three Results.
func Zip3[A, B, C any](ra Result[A], rb Result[B], rc Result[C]) Result[Tuple3[A, B, C]] {
	if ra.err != nil {
		return Err[Tuple3[A, B, C]](ra.err)
	}
	if rb.err != nil {
		return Err[Tuple3[A, B, C]](rb.err)
	}
	if rc.err != nil {
		return Err[Tuple3[A, B, C]](rc.err)
	}
	return Val(Tuple3[A, B, C]{V1: ra.val, V2: rb.val, V3: rc.val})
}

// Zip4 is Zip2 over four Results.
func Zip4[A, B, C, D any](ra Result[A], rb Result[B], rc Result[C], rd Result[D]) Result[Tuple4[A, B, C, D]] {
	if ra.err != nil {
		return Err[Tuple4[A, B, C, D]](ra.err)
	}
	if rb.err != nil {
		return Err[Tuple4[A, B, C, D]](rb.err)
	}
	if rc.err != nil {
		return Err[Tuple4[A, B, C, D]](rc.err)
	}
	if rd.err != nil {
		return Err[Tuple4[A, B, C, D]](rd.err)
	}
	return Val(Tuple4[A, B, C, D]{V1: ra.val, V2: rb.val, V3: rc.val, V4: rd.val})
}

// ZipAll reduces a list of Results left-to-right into a Result of the
// ordered list of their success values, or the failure of the first
// Rejected element in list order.
// ZipAll of an empty or nil list is a Fulfilled Result holding an empty,
// non-nil list.
func ZipAll[T any](rs []Result[T]) Result[[]T] {
	vals := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.err != nil {
			return Err[[]T](r.err)
		}
		vals = append(vals, r.val)
	}
	return Val(vals)
}
