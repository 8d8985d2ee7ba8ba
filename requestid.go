// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package panelx

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/gogama/panelx/request"
)

// RequestIDHeader is the header set by RequestIDHandler.
const RequestIDHeader = "X-Request-Id"

// RequestIDHandler is a Handler which tags the outgoing request with a
// new random UUID in the X-Request-Id header. Install it on the
// BeforeAttempt event. A request ID already present in the plan's
// header is kept.
var RequestIDHandler Handler = HandlerFunc(setRequestID)

func setRequestID(_ Event, e *request.Execution) {
	if e.Request == nil || e.Request.Header.Get(RequestIDHeader) != "" {
		return
	}
	h := e.Request.Header.Clone()
	if h == nil {
		h = make(http.Header)
	}
	h.Set(RequestIDHeader, uuid.NewString())
	e.Request.Header = h
}
