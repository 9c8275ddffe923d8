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

package join

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerSequential(t *testing.T) {
	tr := NewTracker(3)
	assert.False(t, tr.Fill(1))
	assert.False(t, tr.Fill(0))
	assert.True(t, tr.Fill(2))
}

func TestTrackerSingleSlot(t *testing.T) {
	tr := NewTracker(1)
	assert.True(t, tr.Fill(0))
}

func TestTrackerConcurrent(t *testing.T) {
	const n = 64
	tr := NewTracker(n)

	var lastCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if tr.Fill(idx) {
				lastCount.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), lastCount.Load(), "exactly one Fill must be reported as last")
}

func TestTrackerDoubleFillPanics(t *testing.T) {
	tr := NewTracker(2)
	tr.Fill(0)
	assert.Panics(t, func() {
		tr.Fill(0)
	})
}

func TestTrackerInvalidSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewTracker(0)
	})
	assert.Panics(t, func() {
		NewTracker(-1)
	})
}
