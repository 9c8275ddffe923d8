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
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willowtreeapps/PinkyPromise/result"
)

// trackedTask completes with val after d, and checks on every start that
// no other tracked task is in flight on the same counter.
func trackedTask(t *testing.T, inflight *atomic.Int32, starts *[]int, mu *sync.Mutex, id int, d time.Duration, val int) Promise[int] {
	return New(func(o Observer[int]) {
		if n := inflight.Add(1); n != 1 {
			t.Errorf("task %d started while %d tasks were already in flight", id, n-1)
		}
		mu.Lock()
		*starts = append(*starts, id)
		mu.Unlock()
		go func() {
			time.Sleep(d)
			inflight.Add(-1)
			o(result.Val(val))
		}()
	})
}

func TestQueueSerialExecution(t *testing.T) {
	// T1 takes 50ms, T2 is nearly instant; T2 must still not start
	// before T1's completion was delivered.
	var inflight atomic.Int32
	var mu sync.Mutex
	var starts []int

	q := NewQueue[int]()
	batch := q.EnqueueAll([]Promise[int]{
		trackedTask(t, &inflight, &starts, &mu, 1, 50*time.Millisecond, 10),
		trackedTask(t, &inflight, &starts, &mu, 2, 0, 20),
	})

	res := await(t, batch)
	require.NoError(t, res.Err())
	assert.Equal(t, []int{10, 20}, res.Val())
	assert.Equal(t, []int{1, 2}, starts)
}

func TestQueueFIFOOrder(t *testing.T) {
	var inflight atomic.Int32
	var mu sync.Mutex
	var starts []int

	q := NewQueue[int]()
	const n = 8

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		q.Enqueue(trackedTask(t, &inflight, &starts, &mu, i, time.Millisecond, i), func(result.Result[int]) {
			wg.Done()
		})
	}
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, starts)
	assert.False(t, q.Running())
	assert.Equal(t, 0, q.Len())
}

func TestQueueFailureDoesNotHaltQueue(t *testing.T) {
	e := errors.New("task 1 failed")
	var ran atomic.Int32

	q := NewQueue[int]()
	batch := q.EnqueueAll([]Promise[int]{
		Lift(func() (int, error) { ran.Add(1); return 0, nil }),
		Lift(func() (int, error) { ran.Add(1); return 0, e }),
		Lift(func() (int, error) { ran.Add(1); return 2, nil }),
	})

	res := await(t, batch)
	assert.True(t, res.Err() == e, "the aggregate must carry the failing member's error")
	assert.Equal(t, int32(3), ran.Load(), "members after a failure must still run")
}

func TestQueueEmptyBatch(t *testing.T) {
	observed := false
	q := NewQueue[int](WithObserver(func(ev QueueEvent) {
		observed = true
	}))

	completed := false
	q.EnqueueAll(nil).Start(func(res result.Result[[]int]) {
		completed = true
		require.NoError(t, res.Err())
		require.NotNil(t, res.Val())
		assert.Len(t, res.Val(), 0)
	})

	assert.True(t, completed, "an empty batch must complete synchronously")
	assert.False(t, q.Running(), "an empty batch must never touch the backlog")
	assert.Equal(t, 0, q.Len())
	assert.False(t, observed, "an empty batch must emit no events")
}

func TestQueueBatchIsColdAndReusable(t *testing.T) {
	var runs atomic.Int32
	q := NewQueue[int]()
	batch := q.EnqueueAll([]Promise[int]{
		Lift(func() (int, error) { return int(runs.Add(1)), nil }),
	})

	// building the batch must not run anything.
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())

	assert.Equal(t, []int{1}, await(t, batch).Val())
	assert.Equal(t, []int{2}, await(t, batch).Val())
}

func TestQueueInterleavedSources(t *testing.T) {
	var inflight atomic.Int32
	var mu sync.Mutex
	var starts []int

	q := NewQueue[int]()

	batch := q.EnqueueAll([]Promise[int]{
		trackedTask(t, &inflight, &starts, &mu, 0, 20*time.Millisecond, 0),
		trackedTask(t, &inflight, &starts, &mu, 1, time.Millisecond, 1),
	})

	batchDone := make(chan result.Result[[]int], 1)
	batch.Start(func(res result.Result[[]int]) {
		batchDone <- res
	})

	// the batch head is now in flight; an unrelated task lands behind
	// the batch members in the same backlog.
	singleDone := make(chan struct{})
	q.Enqueue(trackedTask(t, &inflight, &starts, &mu, 2, time.Millisecond, 2), func(result.Result[int]) {
		close(singleDone)
	})

	select {
	case res := <-batchDone:
		require.NoError(t, res.Err())
		assert.Equal(t, []int{0, 1}, res.Val())
	case <-time.After(5 * time.Second):
		t.Fatal("batch did not complete in time")
	}
	select {
	case <-singleDone:
	case <-time.After(5 * time.Second):
		t.Fatal("interleaved task did not complete in time")
	}

	assert.Equal(t, []int{0, 1, 2}, starts)
}

func TestQueueConcurrentEnqueue(t *testing.T) {
	var inflight atomic.Int32
	var completions atomic.Int32

	q := NewQueue[int]()
	const n = 50

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			p := New(func(o Observer[int]) {
				if c := inflight.Add(1); c != 1 {
					t.Errorf("%d tasks in flight on a serial queue", c)
				}
				go func() {
					inflight.Add(-1)
					o(result.Val(0))
				}()
			})
			q.Enqueue(p, func(result.Result[int]) {
				completions.Add(1)
				wg.Done()
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(n), completions.Load())
	assert.False(t, q.Running())
}

func TestQueueEvents(t *testing.T) {
	e := errors.New("second failed")

	var mu sync.Mutex
	var events []QueueEvent
	q := NewQueue[int](WithObserver(func(ev QueueEvent) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	}))

	res := await(t, q.EnqueueAll([]Promise[int]{
		Fulfilled(1),
		Rejected[int](e),
	}))
	assert.True(t, res.Err() == e)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 4)
	for _, ev := range events {
		assert.Equal(t, q.ID(), ev.Queue)
	}
	assert.Equal(t, TaskStarted, events[0].Kind)
	assert.Equal(t, TaskSettled, events[1].Kind)
	assert.NoError(t, events[1].Err)
	assert.Equal(t, TaskStarted, events[2].Kind)
	assert.Equal(t, TaskSettled, events[3].Kind)
	assert.True(t, events[3].Err == e)
	assert.Equal(t, events[0].Seq, events[1].Seq)
	assert.Equal(t, events[2].Seq, events[3].Seq)
	assert.Greater(t, events[2].Seq, events[0].Seq)
}

func TestQueueEnqueueZeroPromisePanics(t *testing.T) {
	q := NewQueue[int]()
	assert.PanicsWithValue(t, zeroPromisePanicMsg, func() {
		q.Enqueue(Promise[int]{}, nil)
	})
}

func TestQueueEventKindString(t *testing.T) {
	assert.Equal(t, "TaskStarted", TaskStarted.String())
	assert.Equal(t, "TaskSettled", TaskSettled.String())
	assert.Equal(t, "<unknown event kind>", QueueEventKind(99).String())
}
