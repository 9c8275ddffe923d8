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

// Package join implements the countdown that synchronizes a group of
// concurrently completing tasks with the single aggregation step that
// must run after all of them, exactly once.
package join

import (
	"fmt"
	"sync/atomic"
)

// Tracker tracks the completion of n positional slots.
//
// Each slot is filled exactly once, by the completion of the task holding
// that index; the Fill call that fills the last open slot is reported as
// last, and only that one. The atomic countdown orders every slot fill
// before the point where last is observed, so the caller's slot writes
// made before a Fill are visible to the aggregation step that the last
// Fill triggers, without extra locking.
type Tracker struct {
	remaining atomic.Int32
	filled    []atomic.Bool
}

// NewTracker returns a Tracker over n slots. It panics if n is not positive.
func NewTracker(n int) *Tracker {
	if n <= 0 {
		panic(fmt.Sprintf("join: tracker size must be positive, got %d", n))
	}
	t := &Tracker{filled: make([]atomic.Bool, n)}
	t.remaining.Store(int32(n))
	return t
}

// Fill marks slot idx as completed, and reports whether this was the last
// open slot.
//
// Filling the same slot twice means some task invoked its completion
// callback more than once, which violates the single-completion contract;
// Fill panics loudly in that case rather than corrupting the countdown.
func (t *Tracker) Fill(idx int) (last bool) {
	if t.filled[idx].Swap(true) {
		panic(fmt.Sprintf("join: slot %d filled twice; a task completed more than once", idx))
	}
	return t.remaining.Add(-1) == 0
}
