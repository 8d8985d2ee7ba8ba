// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/gogama/panelx/request"
)

// A Policy decides the timeout of the next HTTP attempt within an
// execution.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the next HTTP attempt of
	// the execution e.
	Timeout(e *request.Execution) time.Duration
}

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// DefaultPolicy is the default timeout policy. It never times out, so
// only the caller's context bounds an attempt.
var DefaultPolicy = Infinite

// Fixed constructs a timeout policy that uses d for every attempt.
func Fixed(d time.Duration) Policy {
	return fixed(d)
}

type fixed time.Duration

func (f fixed) Timeout(_ *request.Execution) time.Duration {
	return time.Duration(f)
}

// Split constructs a timeout policy that defers to healthCheck for
// health-check attempts and to other for everything else. It is useful
// to bound each probe of the server-restart watch tightly, so that a
// backend which accepts connections but never answers is probed again,
// without limiting the caller's own requests.
//
//	p := timeout.Split(timeout.Infinite, timeout.Fixed(2*time.Second))
func Split(other, healthCheck Policy) Policy {
	if other == nil || healthCheck == nil {
		panic("panelx/timeout: nil policy")
	}
	return split{other, healthCheck}
}

type split struct {
	other       Policy
	healthCheck Policy
}

func (s split) Timeout(e *request.Execution) time.Duration {
	if e.Plan != nil && e.Plan.Purpose == request.HealthCheck {
		return s.healthCheck.Timeout(e)
	}
	return s.other.Timeout(e)
}
