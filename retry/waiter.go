// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/gogama/panelx/request"
)

// DefaultInterval is the wait between health checks used by
// DefaultWaiter.
const DefaultInterval = 100 * time.Millisecond

// A Waiter specifies how long to wait before the next attempt.
//
// Implementations of Waiter must be safe for concurrent use by multiple
// goroutines. A Waiter is only consulted after its Decider returned
// true.
type Waiter interface {
	Wait(e *request.Execution) time.Duration
}

// The WaiterFunc type is an adapter to allow the use of ordinary
// functions as waiters.
type WaiterFunc func(e *request.Execution) time.Duration

// Wait returns f(e).
func (f WaiterFunc) Wait(e *request.Execution) time.Duration {
	return f(e)
}

// DefaultWaiter waits DefaultInterval between attempts.
var DefaultWaiter = NewFixedWaiter(DefaultInterval)

// NewFixedWaiter constructs a Waiter that always returns d. It panics
// if d is negative.
func NewFixedWaiter(d time.Duration) Waiter {
	if d < 0 {
		panic("panelx/retry: negative wait")
	}
	return fixedWaiter(d)
}

type fixedWaiter time.Duration

func (w fixedWaiter) Wait(_ *request.Execution) time.Duration {
	return time.Duration(w)
}
