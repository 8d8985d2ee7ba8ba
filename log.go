// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package panelx

import (
	"github.com/rs/zerolog"

	"github.com/gogama/panelx/request"
)

// NewLogHandler returns a Handler which writes one debug-level entry to
// logger for every event it receives. Install it for each event of
// interest, or for every event in Events().
func NewLogHandler(logger zerolog.Logger) Handler {
	return HandlerFunc(func(evt Event, e *request.Execution) {
		entry := logger.Debug()
		if !entry.Enabled() {
			return
		}
		entry = entry.
			Stringer("event", evt).
			Stringer("purpose", e.Plan.Purpose).
			Str("method", e.Plan.Method).
			Str("url", e.Plan.URL.String()).
			Int("attempt", e.Attempt)
		if e.Response != nil {
			entry = entry.Int("status", e.StatusCode())
		}
		if e.Err != nil {
			entry = entry.Err(e.Err)
		}
		switch evt {
		case BeforeRevalidation, AfterAuthFailure:
			entry = entry.Stringer("auth", e.Auth)
		case AfterExecutionEnd:
			entry = entry.Dur("duration", e.Duration())
		}
		entry.Msg("panelx event")
	})
}
