// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "net/http"

// ForwardedHost is the X-Forwarded-Host marker sent with the default
// header set.
const ForwardedHost = "strapi"

// Options describes a single call to the admin backend.
//
// The zero value is a GET with the default headers and no body.
type Options struct {
	// Method specifies the HTTP method. An empty string means GET.
	Method string
	// Header contains the caller's request headers. If Header is nil,
	// DefaultHeader is used. If it is non-nil it is used as-is, so a
	// caller who passes an empty header gets no Content-Type at all.
	Header http.Header
	// Body is the request body. Unless Raw is set, a non-nil Body is
	// serialized to JSON text.
	Body interface{}
	// Params are appended to the URL as a query string. Keys and values
	// are percent-encoded the way encodeURIComponent does it. Nested
	// values and repeated keys are not supported.
	Params map[string]string
	// Raw disables JSON serialization of Body. With Raw set, Body may be
	// a *form.Form (sent as multipart/form-data, with a caption field
	// added for every file field), or a string, []byte, io.Reader or
	// io.ReadCloser (sent verbatim).
	Raw bool
	// WatchServerRestart makes the client lock the app after a
	// successful response and poll the backend health endpoint until
	// the backend answers again. Use it for calls that cause the
	// backend process to restart.
	WatchServerRestart bool
}

// DefaultHeader returns the header set used when Options.Header is
// nil: a JSON content type and the X-Forwarded-Host marker.
func DefaultHeader() http.Header {
	return http.Header{
		"Content-Type":     {"application/json"},
		"X-Forwarded-Host": {ForwardedHost},
	}
}
