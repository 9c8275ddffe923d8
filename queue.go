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
	"sync"

	"github.com/google/uuid"

	"github.com/willowtreeapps/PinkyPromise/internal/join"
	"github.com/willowtreeapps/PinkyPromise/result"
)

// Queue executes Promises one at a time, strictly in the order they were
// enqueued, regardless of how long each one takes or from which execution
// context its completion arrives. At most one task from a Queue is in
// flight at any moment.
//
// A Queue is safe for concurrent use and is meant to live as long as its
// serialization domain: it is reusable across any number of Enqueue and
// EnqueueAll calls.
type Queue[T any] struct {
	id       uuid.UUID
	observer func(ev QueueEvent)

	mu      sync.Mutex
	backlog []queueItem[T]
	running bool
	seq     uint64
}

type queueItem[T any] struct {
	p Promise[T]
	o Observer[T]
}

// NewQueue returns an idle Queue with an empty backlog.
func NewQueue[T any](opts ...QueueOption) *Queue[T] {
	cfg := queueConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Queue[T]{id: uuid.New(), observer: cfg.observer}
}

// ID returns the identity stamped on this Queue's events.
func (q *Queue[T]) ID() uuid.UUID {
	return q.id
}

// Enqueue appends p to the backlog and, if the Queue is idle, starts it
// immediately. The Observer receives p's Result once it completes, before
// the next queued task starts; a nil Observer discards the Result.
//
// It panics if p is the zero Promise value.
func (q *Queue[T]) Enqueue(p Promise[T], o Observer[T]) {
	if p.task == nil {
		panic(zeroPromisePanicMsg)
	}

	q.mu.Lock()
	q.backlog = append(q.backlog, queueItem[T]{p: p, o: o})
	if q.running {
		q.mu.Unlock()
		return
	}
	q.running = true
	item, seq := q.popLocked()
	q.mu.Unlock()

	q.startItem(item, seq)
}

// EnqueueAll returns a Promise that runs all given tasks on this Queue,
// one at a time, in the given order, and aggregates their Results like
// ZipAll: the ordered list of success values, or the failure of the
// lowest-indexed task that rejected.
//
// Unlike ZipAll, execution is strictly sequential: task n starts only
// after task n-1's Result has been delivered, even when unrelated tasks
// from other Enqueue calls are interleaved through the same backlog.
// A failing member doesn't stop the remaining members from running; it
// only decides the aggregate Result.
//
// The batch is enqueued when the returned Promise is started, not when
// EnqueueAll is called. An empty batch completes synchronously with an
// empty, non-nil list and never touches the backlog.
func (q *Queue[T]) EnqueueAll(ps []Promise[T]) Promise[[]T] {
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
			i := i
			q.Enqueue(p, func(r result.Result[T]) {
				slots[i] = r
				if t.Fill(i) {
					o(result.ZipAll(slots))
				}
			})
		}
	}}
}

// Running reports whether some task from this Queue is currently in flight.
func (q *Queue[T]) Running() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.running
}

// Len returns the number of tasks waiting in the backlog, not counting a
// currently running one.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.backlog)
}

// popLocked pops the backlog head and assigns it a sequence number.
// The caller must hold q.mu.
func (q *Queue[T]) popLocked() (queueItem[T], uint64) {
	item := q.backlog[0]
	q.backlog = q.backlog[1:]
	q.seq++
	return item, q.seq
}

// startItem runs one dequeued task outside the lock. The completion
// delivers the Result to the task's own Observer first, then hands
// control back to the Queue to start the next task, so strict FIFO start
// order holds: task k+1 never starts before task k's Result was delivered.
func (q *Queue[T]) startItem(item queueItem[T], seq uint64) {
	q.emit(QueueEvent{Queue: q.id, Seq: seq, Kind: TaskStarted})
	item.p.Start(func(res result.Result[T]) {
		q.emit(QueueEvent{Queue: q.id, Seq: seq, Kind: TaskSettled, Err: res.Err()})
		if item.o != nil {
			item.o(res)
		}
		q.next()
	})
}

func (q *Queue[T]) next() {
	q.mu.Lock()
	if len(q.backlog) == 0 {
		q.running = false
		q.mu.Unlock()
		return
	}
	item, seq := q.popLocked()
	q.mu.Unlock()

	q.startItem(item, seq)
}

func (q *Queue[T]) emit(ev QueueEvent) {
	if q.observer != nil {
		q.observer(ev)
	}
}
