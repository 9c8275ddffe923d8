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

import "github.com/google/uuid"

// QueueEventKind is the kind of a QueueEvent.
type QueueEventKind int

const (
	// TaskStarted is emitted right before a dequeued task starts.
	TaskStarted QueueEventKind = iota

	// TaskSettled is emitted when the running task's Result arrives,
	// before the Result is delivered to the task's Observer.
	TaskSettled
)

func (k QueueEventKind) String() string {
	switch k {
	case TaskStarted:
		return "TaskStarted"
	case TaskSettled:
		return "TaskSettled"
	default:
		return "<unknown event kind>"
	}
}

// QueueEvent describes one lifecycle transition of a task running on a
// Queue. Events for one task share a Seq value; Seq grows in dequeue
// order, which on a serial queue is also start order.
type QueueEvent struct {
	// Queue identifies the emitting Queue.
	Queue uuid.UUID

	// Seq is the per-queue sequence number of the task.
	Seq uint64

	Kind QueueEventKind

	// Err carries the task's failure on a TaskSettled event, nil otherwise.
	Err error
}

type queueConfig struct {
	observer func(ev QueueEvent)
}

// QueueOption configures a Queue.
type QueueOption func(cfg *queueConfig)

// WithObserver registers a hook invoked with every QueueEvent the Queue
// emits. The hook runs on whatever call stack drives the queue at that
// moment, so it must be fast and must not panic.
func WithObserver(fn func(ev QueueEvent)) QueueOption {
	return func(cfg *queueConfig) {
		cfg.observer = fn
	}
}
