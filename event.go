// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package panelx

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality.
//
// The first seven events fire during every plan execution, whether the
// plan is the caller's dispatch, the current-user revalidation, or the
// server-restart health check. The remaining events mark the steps of
// the response pipeline and always receive the dispatch execution.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// plan execution starts.
	//
	// When Client fires BeforeExecutionStart, the execution is
	// non-nil but the only field that has been set is the plan.
	BeforeExecutionStart Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// individual HTTP request attempt during the plan execution.
	//
	// When Client fires BeforeAttempt, the execution's request
	// field is set to the HTTP request that WILL BE sent after all
	// BeforeAttempt handlers have finished.
	//
	// BeforeAttempt handlers may modify the execution's request, or
	// some of its fields, thus changing the HTTP request that will be
	// sent. However, they should clone request fields which have
	// reference types (URL and Header) before changing them, as these
	// fields initially reference the same-named fields in the plan.
	BeforeAttempt
	// BeforeReadBody identifies the event that occurs after an HTTP
	// request attempt has resulted in an HTTP response (as opposed to
	// an error) but before the response body is read and buffered.
	//
	// BeforeReadBody never fires if the attempt ended in error, but
	// always fires if an HTTP response is received, regardless of its
	// status code.
	BeforeReadBody
	// AfterAttemptTimeout identifies the event that occurs after an
	// HTTP request attempt failed because of a timeout error.
	//
	// When Client fires AfterAttemptTimeout, the execution's
	// error field is set to the timeout error, and its attempt timeout
	// counter has been incremented.
	AfterAttemptTimeout
	// AfterAttempt identifies the event that occurs after an HTTP
	// request attempt is concluded, regardless of whether it concluded
	// successfully or not. It runs before the retry policy is consulted.
	//
	// The execution's response field or its error field, or both, are
	// non-nil. Both are non-nil only if reading the body failed.
	AfterAttempt
	// AfterPlanTimeout identifies the event that occurs after the
	// deadline of the plan's context is exceeded, either together with
	// an attempt timeout or during the wait between health probes.
	//
	// AfterPlanTimeout always occurs after AfterAttempt.
	AfterPlanTimeout
	// AfterExecutionEnd identifies the event that occurs after the plan
	// execution ends.
	//
	// When Client fires AfterExecutionEnd, the execution is in the
	// same state it was in after the final attempt EXCEPT that the end
	// time is set.
	AfterExecutionEnd
	// BeforeRevalidation identifies the event that occurs when a 401
	// response to a caller holding a token causes the client to look
	// up the current user.
	//
	// When Client fires BeforeRevalidation, the execution's auth state
	// is request.Revalidating and its Revalidation field is still nil.
	BeforeRevalidation
	// AfterAuthFailure identifies the event that occurs after the
	// client has navigated to the login page and cleared app storage
	// because the token was rejected.
	AfterAuthFailure
	// BeforeRestartWatch identifies the event that occurs after the app
	// is locked and before the first health probe is sent.
	BeforeRestartWatch
	// AfterRestartWatch identifies the event that occurs after the app
	// is unlocked at the end of the server-restart watch, whether the
	// watch succeeded or not.
	//
	// When Client fires AfterRestartWatch, the execution's HealthCheck
	// field holds the final state of the health-check execution.
	AfterRestartWatch
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeAttempt",
	"BeforeReadBody",
	"AfterAttemptTimeout",
	"AfterAttempt",
	"AfterPlanTimeout",
	"AfterExecutionEnd",
	"BeforeRevalidation",
	"AfterAuthFailure",
	"BeforeRestartWatch",
	"AfterRestartWatch",
}

// Events returns a slice containing all events which can occur during a
// call to Client.Request, in the order in which they first occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeAttempt,
		BeforeReadBody,
		AfterAttemptTimeout,
		AfterAttempt,
		AfterPlanTimeout,
		AfterExecutionEnd,
		BeforeRevalidation,
		AfterAuthFailure,
		BeforeRestartWatch,
		AfterRestartWatch,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
