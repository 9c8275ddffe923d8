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

import (
	"fmt"
	"runtime"
)

// PanicError wraps a panic that happened inside a user-supplied transform
// or lifted computation, together with the goroutine stack trace captured
// at the point of the panic.
// It travels as a regular failure value from then on.
type PanicError struct {
	// V is the original value passed to panic().
	V any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.V, e.Stack)
}

// NewPanicError captures the current goroutine's stack and wraps v.
// It's meant to be called from a deferred recover handler.
func NewPanicError(v any) *PanicError {
	// 8 KiB covers most stack traces. runtime.Stack truncates if the
	// buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{V: v, Stack: string(buf[:n])}
}
