// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

var (
	template, _ = http.NewRequest("GET", "", nil)
)

const (
	nilCtxMsg = "panelx/request: nil context"
)

// A Purpose says why a Plan is being sent. The client sends plans for
// three reasons: the caller's own request, the token revalidation that
// follows a 401, and the health checks of the server-restart watch.
type Purpose int

const (
	// Dispatch is the caller's request.
	Dispatch Purpose = iota
	// Revalidation is the current-user lookup made after a 401.
	Revalidation
	// HealthCheck is a probe of the backend health endpoint.
	HealthCheck
)

var purposeNames = []string{"Dispatch", "Revalidation", "HealthCheck"}

// String returns the name of the purpose.
func (p Purpose) String() string {
	if p < 0 || int(p) >= len(purposeNames) {
		return "Unknown"
	}
	return purposeNames[p]
}

// A Plan is a normalized request, ready to be sent one or more times.
//
// The field structure mirrors http.Request with server-only fields
// removed and the body replaced by a pre-buffered []byte, so that the
// same Plan can produce a fresh http.Request for every attempt.
type Plan struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	// An empty string means GET.
	Method string
	// URL specifies the absolute URL to access.
	URL *urlpkg.URL
	// Header contains the request header fields to be sent.
	Header http.Header
	// Body is the pre-buffered request body. A nil or empty body means
	// no body is sent.
	Body []byte
	// Close stipulates whether to close the connection after the
	// response is read. Health checks set it so that every probe opens
	// a new connection to the restarting backend.
	Close bool
	// Host optionally overrides the Host header to send.
	Host string
	// Purpose says why the plan is sent.
	Purpose Purpose
	// ctx allows the entire Plan exec to be cancelled. It should only
	// be modified by copying the whole Plan using WithContext.
	ctx context.Context
}

// NewPlan wraps NewPlanWithContext using the background context.
func NewPlan(method, url string, body []byte) (*Plan, error) {
	return NewPlanWithContext(context.Background(), method, url, body)
}

// NewPlanWithContext returns a new Plan given a method, URL, and
// optional pre-encoded body. The plan has an empty header and the
// Dispatch purpose.
func NewPlanWithContext(ctx context.Context, method, url string, body []byte) (*Plan, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = "GET"
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("panelx/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)
	return &Plan{
		ctx:    ctx,
		Method: method,
		URL:    u,
		Header: make(http.Header),
		Body:   body,
		Host:   u.Host,
	}, nil
}

// Resolve normalizes a call described by opts into a Plan.
//
// Parameter base is the backend base URL. A url beginning with "/" is
// appended to base; any other url is taken as absolute. Parameter token
// is the current authentication token, or empty if there is none.
//
// Resolution proceeds as follows:
//
// • The header set is a clone of opts.Header, or DefaultHeader if
// opts.Header is nil.
//
// • If token is not empty, "Authorization: Bearer <token>" is added
// unless the header set already has an Authorization field.
//
// • opts.Params are appended as a query string (see FormatQuery).
//
// • The body is encoded: JSON text unless opts.Raw is set; with Raw a
// *form.Form gets its caption fields and is encoded as multipart, with
// the Content-Type replaced accordingly; other raw bodies go through
// BodyBytes.
//
// A nil opts is the same as the zero Options. The caller's opts are
// not modified.
func Resolve(ctx context.Context, base, url string, opts *Options, token string) (*Plan, error) {
	if opts == nil {
		opts = &Options{}
	}

	if strings.HasPrefix(url, "/") {
		url = base + url
	}
	url = appendQuery(url, FormatQuery(opts.Params))

	body, contentType, err := encodeBody(opts.Body, opts.Raw)
	if err != nil {
		return nil, err
	}

	p, err := NewPlanWithContext(ctx, opts.Method, url, body)
	if err != nil {
		return nil, err
	}

	if opts.Header == nil {
		p.Header = DefaultHeader()
	} else {
		p.Header = opts.Header.Clone()
	}
	if err = validHeader(p.Header); err != nil {
		return nil, err
	}
	if token != "" && p.Header.Get("Authorization") == "" {
		p.SetBearerAuth(token)
	}
	if contentType != "" {
		p.Header.Set("Content-Type", contentType)
	}

	return p, nil
}

// Context returns the request plan's context. The context controls
// cancellation of the overall request plan. To change the context, use
// WithContext.
//
// The returned context is always non-nil; it defaults to the
// background context.
func (p *Plan) Context() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of p with its context changed to
// ctx, which must be non-nil.
func (p *Plan) WithContext(ctx context.Context) *Plan {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	p2 := new(Plan)
	*p2 = *p
	p2.ctx = ctx
	return p2
}

// SetBearerAuth sets the plan's Authorization header to carry token as
// a bearer credential.
func (p *Plan) SetBearerAuth(token string) {
	p.Header.Set("Authorization", "Bearer "+token)
}

// ToRequest creates an HTTP request corresponding to the given request
// plan. The context of the new request is set to ctx, which may not be
// nil.
func (p *Plan) ToRequest(ctx context.Context) *http.Request {
	r := template.WithContext(ctx)
	r.Method = p.Method
	r.URL = p.URL
	r.Header = p.Header
	if len(p.Body) > 0 {
		r.Body = io.NopCloser(bytes.NewReader(p.Body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(p.Body)), nil
		}
		r.ContentLength = int64(len(p.Body))
	}
	r.Close = p.Close
	r.Host = p.Host
	return r
}

func validMethod(method string) bool {
	return strings.IndexFunc(method, isNotToken) == -1
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}

func validHeader(h http.Header) error {
	for k, vs := range h {
		if !httpguts.ValidHeaderFieldName(k) {
			return fmt.Errorf("panelx/request: invalid header field name %q", k)
		}
		for _, v := range vs {
			if !httpguts.ValidHeaderFieldValue(v) {
				return fmt.Errorf("panelx/request: invalid header field value for %q", k)
			}
		}
	}
	return nil
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
