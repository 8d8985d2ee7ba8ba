// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/gogama/panelx/request"
	"github.com/gogama/panelx/transient"
)

// A Decider decides if another attempt should be made.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
type Decider interface {
	Decide(e *request.Execution) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as retry deciders. It also provides the logical
// composition methods And and Or.
type DeciderFunc func(e *request.Execution) bool

// Err is a decider that indicates a retry whenever the most recent
// attempt ended in an error of any kind. An attempt which received an
// HTTP response, whatever its status code, is not retried.
var Err DeciderFunc = anyErr

// TransientErr is a decider that indicates a retry if the current
// error is transient according to transient.Categorize.
var TransientErr DeciderFunc = transientErr

// DefaultDecider is the decider of DefaultPolicy. It is Err, with no
// limit on the number of attempts.
var DefaultDecider = Err

// Decide returns true if a retry should be done, and false otherwise.
func (f DeciderFunc) Decide(e *request.Execution) bool {
	return f(e)
}

// And composes two retry deciders into a new decider which returns true
// if both sub-deciders return true. Short-circuit logic is used.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) && g(e)
	}
}

// Or composes two retry deciders into a new decider which returns true
// if either sub-decider returns true. Short-circuit logic is used.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) || g(e)
	}
}

// Times constructs a retry decider which allows up to n retries, that
// is n+1 attempts in total.
func Times(n int) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Attempt < n
	}
}

// Before constructs a retry decider allowing retries until d has
// elapsed since the execution started.
func Before(d time.Duration) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Duration() < d
	}
}

// StatusCode constructs a retry decider which returns true if the most
// recent attempt received an HTTP response with one of the status codes
// in ss. Use it to keep probing while a proxy in front of the backend
// answers 502 or 503:
//
//	retry.Err.Or(retry.StatusCode(502, 503))
func StatusCode(ss ...int) DeciderFunc {
	ss2 := make([]int, len(ss))
	copy(ss2, ss)
	return func(e *request.Execution) bool {
		for _, s := range ss2 {
			if e.StatusCode() == s {
				return true
			}
		}
		return false
	}
}

func anyErr(e *request.Execution) bool {
	return e.Err != nil
}

func transientErr(e *request.Execution) bool {
	return transient.Categorize(e.Err) != transient.Not
}
