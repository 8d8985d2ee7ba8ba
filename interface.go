// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package panelx

import (
	"context"
	"net/http"

	"github.com/gogama/panelx/form"
	"github.com/gogama/panelx/request"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// Requester is the interface that wraps the basic Request method.
//
// Request normalizes and sends one call to the backend and returns the
// final execution state (and error, if any). Client implements the
// Requester interface, and any other Requester implementation must
// behave substantially the same as Client.Request.
type Requester interface {
	Request(ctx context.Context, url string, opts *request.Options) (*request.Execution, error)
}

// An AppLocker blocks and releases user interaction with the admin
// panel while the backend restarts.
type AppLocker interface {
	LockApp()
	UnlockApp()
}

// LockerFuncs adapts a pair of ordinary functions into an AppLocker.
// A nil function does nothing.
type LockerFuncs struct {
	Lock   func()
	Unlock func()
}

// LockApp calls l.Lock.
func (l LockerFuncs) LockApp() {
	if l.Lock != nil {
		l.Lock()
	}
}

// UnlockApp calls l.Unlock.
func (l LockerFuncs) UnlockApp() {
	if l.Unlock != nil {
		l.Unlock()
	}
}

// A Navigator moves the admin panel to another location.
type Navigator interface {
	Navigate(url string)
}

// The NavigatorFunc type is an adapter to allow the use of ordinary
// functions as Navigators.
type NavigatorFunc func(url string)

// Navigate calls f(url).
func (f NavigatorFunc) Navigate(url string) {
	f(url)
}

// Get uses the specified Requester to issue a GET with the given query
// parameters, which may be nil.
func Get(ctx context.Context, r Requester, url string, params map[string]string) (*request.Execution, error) {
	return r.Request(ctx, url, &request.Options{Params: params})
}

// Post uses the specified Requester to POST body as JSON.
func Post(ctx context.Context, r Requester, url string, body interface{}) (*request.Execution, error) {
	return r.Request(ctx, url, &request.Options{Method: "POST", Body: body})
}

// Put uses the specified Requester to PUT body as JSON.
func Put(ctx context.Context, r Requester, url string, body interface{}) (*request.Execution, error) {
	return r.Request(ctx, url, &request.Options{Method: "PUT", Body: body})
}

// Delete uses the specified Requester to issue a DELETE.
func Delete(ctx context.Context, r Requester, url string) (*request.Execution, error) {
	return r.Request(ctx, url, &request.Options{Method: "DELETE"})
}

// Upload uses the specified Requester to POST f as a multipart form.
// Every file field in f is accompanied by its caption field; see
// form.Form.WithCaptions.
func Upload(ctx context.Context, r Requester, url string, f *form.Form) (*request.Execution, error) {
	return r.Request(ctx, url, &request.Options{Method: "POST", Body: f, Raw: true})
}
