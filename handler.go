// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package panelx

import (
	"github.com/gogama/panelx/request"
)

// A HandlerGroup holds one chain of handlers per Event. Set it as
// Client.Handlers to plug custom behaviour into every call the client
// makes. The zero value has no handlers.
//
// Build the group up front: PushBack must not race with a Client that
// is running the group.
type HandlerGroup struct {
	chains [numEvents][]Handler
}

// PushBack appends h to the chain for evt. Chains run in insertion
// order. PushBack panics if h is nil or evt is not one of Events().
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("panelx: nil handler")
	}
	if evt < 0 || int(evt) >= numEvents {
		panic("panelx: unknown event")
	}
	g.chains[evt] = append(g.chains[evt], h)
}

// Len returns the number of handlers in the chain for evt.
func (g *HandlerGroup) Len(evt Event) int {
	if evt < 0 || int(evt) >= numEvents {
		return 0
	}
	return len(g.chains[evt])
}

func (g *HandlerGroup) run(evt Event, e *request.Execution) {
	for _, h := range g.chains[evt] {
		h.Handle(evt, e)
	}
}

// A Handler reacts to an Event during a call. One call can run up to
// three executions (dispatch, revalidation, health check) and each of
// them reaches the handler; Execution.Plan.Purpose says which.
type Handler interface {
	Handle(Event, *request.Execution)
}

// HandlerFunc lets an ordinary function serve as a Handler.
type HandlerFunc func(Event, *request.Execution)

// Handle calls f(evt, e).
func (f HandlerFunc) Handle(evt Event, e *request.Execution) {
	f(evt, e)
}
