// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package panelx

import (
	"fmt"
	"net/http"

	"github.com/gogama/panelx/request"
)

// A StatusError is returned by Client.Request when the backend answers
// with a status code outside the range [200, 300).
//
// Use errors.As to recover it:
//
//	var statusErr *panelx.StatusError
//	if errors.As(err, &statusErr) && statusErr.StatusCode() == http.StatusNotFound {
//		...
//	}
type StatusError struct {
	// Message is the status text of the response, for example
	// "Not Found".
	Message string
	// Response is the HTTP response. Its body has already been
	// consumed; the bytes are in Body.
	Response *http.Response
	// Payload is the response body parsed as JSON. It is the zero
	// Payload if the body is empty or is not valid JSON.
	Payload request.Payload
	// Body is the raw response body.
	Body []byte
}

func newStatusError(e *request.Execution) *StatusError {
	// A body that is not JSON still produces a StatusError, with the
	// raw bytes only.
	payload, _ := request.ParsePayload(e.Body)
	return &StatusError{
		Message:  e.StatusText(),
		Response: e.Response,
		Payload:  payload,
		Body:     e.Body,
	}
}

// StatusCode returns the HTTP status code of the response.
func (err *StatusError) StatusCode() int {
	if err.Response == nil {
		return 0
	}
	return err.Response.StatusCode
}

func (err *StatusError) Error() string {
	return fmt.Sprintf("panelx: %d %s", err.StatusCode(), err.Message)
}

// A WatchError is returned by Client.Request when the server-restart
// watch ends before the backend answered a health probe, either
// because the restart policy gave up or because the context ended.
type WatchError struct {
	// HealthCheck is the final state of the health-check execution.
	HealthCheck *request.Execution
	// Err is the error of the last health probe.
	Err error
}

func (err *WatchError) Error() string {
	return fmt.Sprintf("panelx: server restart watch gave up after %d health checks: %v", err.HealthCheck.Attempt+1, err.Err)
}

func (err *WatchError) Unwrap() error {
	return err.Err
}
