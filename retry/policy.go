// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/gogama/panelx/request"
)

// A Policy controls if and how attempts are repeated. After every
// attempt, a Policy decides whether another attempt should be made
// and, if so, how long to wait before making it.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	Decider
	Waiter
}

// DefaultPolicy is the policy of the server-restart watch: retry after
// any transport error, wait DefaultInterval, never give up.
//
// An unbounded policy means a backend that never comes back keeps the
// watch (and the locked app) waiting until the context passed to the
// client is done. Bound it with Times or Before if that is not wanted.
var DefaultPolicy Policy = policy{DefaultDecider, DefaultWaiter}

// Never is a policy that never retries. Dispatch and revalidation
// requests are sent under Never.
var Never Policy = policy{Times(0), NewFixedWaiter(0)}

type policy struct {
	decider Decider
	waiter  Waiter
}

// NewPolicy composes a Decider and a Waiter into a retry Policy.
func NewPolicy(d Decider, w Waiter) Policy {
	if d == nil {
		panic("panelx/retry: nil decider")
	}
	if w == nil {
		panic("panelx/retry: nil waiter")
	}
	return policy{decider: d, waiter: w}
}

func (p policy) Decide(e *request.Execution) bool {
	return p.decider.Decide(e)
}

func (p policy) Wait(e *request.Execution) time.Duration {
	return p.waiter.Wait(e)
}
