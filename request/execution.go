// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gogama/panelx/transient"
)

// An AuthState is the position of an execution in the status check
// flow:
//
//	Unvalidated → Revalidating → Resolved | Failed
//
// A 401 response seen while Unvalidated (and with a token available)
// moves the execution to Revalidating. The status is then checked once
// more; a 401 seen while Revalidating is never revalidated again.
type AuthState int

const (
	// Unvalidated means the status has not been checked yet.
	Unvalidated AuthState = iota
	// Revalidating means a 401 triggered token revalidation.
	Revalidating
	// Resolved means the status check passed.
	Resolved
	// Failed means the status check failed.
	Failed
)

var authStateNames = []string{"Unvalidated", "Revalidating", "Resolved", "Failed"}

// String returns the name of the state.
func (s AuthState) String() string {
	if s < 0 || int(s) >= len(authStateNames) {
		return "Unknown"
	}
	return authStateNames[s]
}

// An Execution represents the state of a single Plan execution.
//
// Handlers and policies may attach data using SetValue and Value, but
// should treat the exported fields as read-only, with the exception of
// reasonable changes to the http.Request before it is sent.
type Execution struct {
	// Plan is the plan being executed. It is never nil.
	Plan *Plan
	// Start is the start time of the execution.
	Start time.Time
	// End is the end time of the execution, or the zero time while
	// the execution is in flight.
	End time.Time
	// Attempt is the zero-based number of the current attempt. Only
	// health-check executions make more than one attempt.
	Attempt int
	// AttemptTimeouts counts the attempts that timed out.
	AttemptTimeouts int
	// Request is the HTTP request of the current or most recent
	// attempt.
	Request *http.Request
	// Response is the HTTP response of the most recent attempt. It is
	// nil if that attempt ended in error.
	Response *http.Response
	// Err is the error of the most recent attempt. Whenever Err is
	// non-nil, it has the type *url.Error.
	Err error
	// Body is the complete response body of the most recent attempt.
	Body []byte
	// Auth is the status check state. It only advances on Dispatch
	// executions.
	Auth AuthState
	// Revalidation is the current-user lookup made after a 401, or nil
	// if none was made.
	Revalidation *Execution
	// HealthCheck is the execution of the server-restart watch, or nil
	// if the server restart was not watched.
	HealthCheck *Execution

	payload  Payload
	parseErr error
	parsed   bool
	data     context.Context
}

// StatusCode returns the status code of the most recent HTTP response,
// or 0 if there is none.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

// StatusText returns the reason phrase of the most recent HTTP
// response, for example "Not Found". If the response carried no reason
// phrase, the standard text for the status code is returned. If there
// is no response, the empty string is returned.
func (e *Execution) StatusText() string {
	if e.Response == nil {
		return ""
	}
	code := strconv.Itoa(e.Response.StatusCode)
	text := strings.TrimSpace(strings.TrimPrefix(e.Response.Status, code))
	if text == "" {
		return http.StatusText(e.Response.StatusCode)
	}
	return text
}

// Header returns the headers of the most recent HTTP response, or a nil
// header if there is none.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}
	return e.Response.Header
}

// Payload returns the response body parsed as JSON. The body is parsed
// on the first call and the result is cached. An empty body yields the
// zero Payload; a body which is not JSON yields ErrMalformedJSON.
func (e *Execution) Payload() (Payload, error) {
	if !e.parsed {
		e.payload, e.parseErr = ParsePayload(e.Body)
		e.parsed = true
	}
	return e.payload, e.parseErr
}

// Duration returns the duration of the execution. It is zero before the
// execution starts, and static once it ends.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Now().Sub(e.Start)
	}
	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Timeout indicates whether Err currently contains a timeout error.
func (e *Execution) Timeout() bool {
	return transient.Categorize(e.Err) == transient.Timeout
}

// SetValue stores arbitrary data in the execution. The key must follow
// the same rules as the key parameter of context.WithValue.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}
	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}
	return ctx.Value(key)
}
