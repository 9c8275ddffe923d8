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

import "sync"

// Scheduler is the execution-context capability InBackground requires
// from the hosting application.
//
// SubmitBackground queues fn for execution off the main context.
// SubmitMain queues fn for execution on the main context, which must run
// submitted work serialized (not necessarily on a single OS thread).
// Neither primitive may silently drop work.
type Scheduler interface {
	SubmitBackground(fn func())
	SubmitMain(fn func())
}

const mainQueueDepth = 64

// LoopScheduler is the default Scheduler for programs without an event
// loop of their own: background work runs on fresh goroutines, and main
// work is funneled through one long-lived loop goroutine, preserving
// submission order.
//
// Create it with NewLoopScheduler and release it with Close.
type LoopScheduler struct {
	main chan func()
	done chan struct{}
	once sync.Once
}

// NewLoopScheduler starts the main loop goroutine and returns the
// scheduler feeding it.
func NewLoopScheduler() *LoopScheduler {
	s := &LoopScheduler{
		main: make(chan func(), mainQueueDepth),
		done: make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *LoopScheduler) loop() {
	defer close(s.done)
	for fn := range s.main {
		fn()
	}
}

// SubmitBackground runs fn on a new goroutine.
// It panics if fn is nil.
func (s *LoopScheduler) SubmitBackground(fn func()) {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	go fn()
}

// SubmitMain queues fn on the main loop. It blocks while the loop's
// buffer is saturated, and panics if the scheduler was closed: work is
// never dropped silently.
func (s *LoopScheduler) SubmitMain(fn func()) {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	s.main <- fn
}

// Close stops the main loop after draining everything already submitted,
// and waits for the loop goroutine to exit. Submitting after Close
// panics, so Close belongs after all submitters are done; closing twice
// is fine.
func (s *LoopScheduler) Close() {
	s.once.Do(func() {
		close(s.main)
	})
	<-s.done
}
