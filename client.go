// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package panelx

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gogama/panelx/auth"
	"github.com/gogama/panelx/request"
	"github.com/gogama/panelx/retry"
	"github.com/gogama/panelx/timeout"
	"github.com/gogama/panelx/transient"
)

const (
	// CurrentUserPath is the backend path used to revalidate a token
	// after a 401 response.
	CurrentUserPath = "/user/me"
	// HealthPath is the backend path probed while watching for a
	// server restart.
	HealthPath = "/_health"
	// LoginPath is the path, relative to the client's RemoteURL, of
	// the login page the client navigates to when a token is rejected.
	LoginPath = "/plugins/users-permissions/auth/login"
)

var (
	emptyHandlers = HandlerGroup{}
	nopLogger     = zerolog.Nop()
)

// A Client is the request adapter between an admin panel and its
// backend. Its zero value is a valid configuration, although a useful
// Client sets at least BackendURL.
//
// The zero value client uses http.DefaultClient (from net/http) as the
// HTTPDoer, timeout.DefaultPolicy as the timeout policy,
// retry.DefaultPolicy as the restart policy, no token store, no-op
// collaborators, an empty handler group, and a no-op logger.
//
// Client's HTTPDoer typically has an internal state (cached TCP
// connections) so Client instances should be reused instead of created
// as needed. Client is safe for concurrent use by multiple goroutines
// provided its collaborators are.
//
// On top of the HTTP request features provided by the HTTPDoer, Client
// adds the following features:
//
// • Client resolves paths against BackendURL, formats query parameters,
// encodes JSON or multipart bodies, and injects the bearer token;
//
// • Client reads and buffers the entire HTTP response body, parses it
// as JSON, and turns a non-2XX status into a *StatusError;
//
// • Client revalidates a rejected token and sends the user to the login
// page if the backend still refuses it;
//
// • Client can wait, with the app locked, for the backend to restart
// after a call that triggers a restart; and
//
// • Client invokes user-provided handler functions at designated
// plug-in points, allowing new features to be mixed in from outside
// libraries.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard net/http
	// package is used.
	HTTPDoer HTTPDoer
	// BackendURL is the base URL of the backend, without a trailing
	// slash. Request URLs beginning with "/" are relative to it.
	BackendURL string
	// RemoteURL is the base URL of the admin panel itself. The login
	// page is at RemoteURL + LoginPath.
	RemoteURL string
	// Tokens supplies the authentication token and clears app storage
	// when the token is rejected.
	//
	// If Tokens is nil, requests are sent without a token.
	Tokens auth.Store
	// App is locked while the client waits for a server restart.
	//
	// If App is nil, nothing is locked.
	App AppLocker
	// Navigator is told to open the login page when the token is
	// rejected.
	//
	// If Navigator is nil, no navigation takes place.
	Navigator Navigator
	// TimeoutPolicy specifies how to set timeouts on individual request
	// attempts.
	//
	// If TimeoutPolicy is nil, timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy
	// RestartPolicy decides whether to probe the backend's health
	// endpoint again after a failed probe, and how long to wait
	// before doing so.
	//
	// If RestartPolicy is nil, retry.DefaultPolicy is used, which
	// polls every 100 milliseconds until the backend answers.
	RestartPolicy retry.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a call.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
	// Logger receives the client's own log output.
	//
	// If Logger is nil, nothing is logged.
	Logger *zerolog.Logger
}

// Request sends one call to the backend and returns the results.
//
// The url is resolved against BackendURL if it begins with "/", and
// opts, which may be nil, describes the method, headers, body, and
// query parameters of the call as documented on request.Options and
// request.Resolve.
//
// The call is sent exactly once. A transport error is returned as a
// *url.Error. A response whose status code is outside [200, 300)
// produces a *StatusError. If the status is 401 and the client holds a
// token, the client first looks up the current user at CurrentUserPath,
// then navigates to the login page, clears app storage, and fails with
// the *StatusError. A successful response whose body is neither empty
// nor valid JSON fails with request.ErrMalformedJSON.
//
// If opts.WatchServerRestart is set, a successful response is followed
// by the server-restart watch: the App is locked, HealthPath is probed
// under RestartPolicy until the backend answers, and the App is
// unlocked. If the watch gives up, a *WatchError is returned.
//
// The returned Execution is the dispatch execution. It is nil only if
// the call could not be resolved into a plan; otherwise it is returned
// even on error.
//
// The context cancels the dispatch, the revalidation, and the watch.
func (c *Client) Request(ctx context.Context, url string, opts *request.Options) (*request.Execution, error) {
	p, err := request.Resolve(ctx, c.BackendURL, url, opts, c.token())
	if err != nil {
		return nil, err
	}

	e := c.execute(p, retry.Never)
	if e.Err != nil {
		return e, e.Err
	}
	if err = c.checkStatus(e); err != nil {
		return e, err
	}
	if _, err = e.Payload(); err != nil {
		return e, err
	}
	if opts != nil && opts.WatchServerRestart {
		if err = c.watchServerRestart(e); err != nil {
			return e, err
		}
	}

	return e, nil
}

// RequestJSON calls Request and decodes the JSON payload of the
// response into v. An empty response body leaves v unchanged.
func (c *Client) RequestJSON(ctx context.Context, url string, opts *request.Options, v interface{}) error {
	e, err := c.Request(ctx, url, opts)
	if err != nil {
		return err
	}
	payload, _ := e.Payload()
	return payload.Decode(v)
}

// execute runs a plan to completion under the client's timeout policy,
// retrying failed attempts as long as retryPolicy allows.
func (c *Client) execute(p *request.Plan, retryPolicy retry.Policy) *request.Execution {
	e := &request.Execution{
		Plan: p,
	}

	doer := c.doer()
	timeoutPolicy := c.timeoutPolicy()
	handlers := c.handlers()
	logger := c.logger()

	handlers.run(BeforeExecutionStart, e)
	e.Start = time.Now()

RetryLoop:
	for {
		sendAndReceive(p, e, doer, handlers, timeoutPolicy)
		if e.Timeout() {
			e.AttemptTimeouts++
			handlers.run(AfterAttemptTimeout, e)
		}
		handlers.run(AfterAttempt, e)
		if e.Err != nil {
			logger.Debug().
				Stringer("purpose", p.Purpose).
				Int("attempt", e.Attempt).
				Stringer("category", transient.Categorize(e.Err)).
				Err(e.Err).
				Msg("attempt failed")
		}
		planCtxErr := p.Context().Err()
		if planCtxErr == context.DeadlineExceeded {
			handlers.run(AfterPlanTimeout, e)
			break
		} else if planCtxErr != nil {
			e.Err = urlErrorWrap(p, planCtxErr)
			break
		} else if retryPolicy.Decide(e) {
			wait := retryPolicy.Wait(e)
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-p.Context().Done():
				timer.Stop()
				err := p.Context().Err()
				e.Err = urlErrorWrap(p, err)
				if err == context.DeadlineExceeded {
					handlers.run(AfterPlanTimeout, e)
				}
				break RetryLoop
			}
			e.Response = nil
			e.Err = nil
			e.Body = nil
			e.Attempt++
		} else {
			break
		}
	}

	e.End = time.Now()
	handlers.run(AfterExecutionEnd, e)
	return e
}

func sendAndReceive(p *request.Plan, e *request.Execution, doer HTTPDoer, handlers *HandlerGroup, timeoutPolicy timeout.Policy) {
	ctx, cancel := context.WithTimeout(p.Context(), timeoutPolicy.Timeout(e))
	defer cancel()
	e.Request = p.ToRequest(ctx)
	handlers.run(BeforeAttempt, e)
	var err error
	e.Response, err = doer.Do(e.Request)
	if err != nil {
		e.Err = urlErrorWrap(p, err)
	} else {
		readBody(p, e, handlers)
	}
}

func readBody(p *request.Plan, e *request.Execution, handlers *HandlerGroup) {
	defer func() {
		_ = e.Response.Body.Close()
	}()
	handlers.run(BeforeReadBody, e)
	var err error
	e.Body, err = io.ReadAll(e.Response.Body)
	if err != nil {
		e.Err = urlErrorWrap(p, err)
	}
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}
	return c.HTTPDoer
}

func (c *Client) timeoutPolicy() timeout.Policy {
	if c.TimeoutPolicy == nil {
		return timeout.DefaultPolicy
	}
	return c.TimeoutPolicy
}

func (c *Client) restartPolicy() retry.Policy {
	if c.RestartPolicy == nil {
		return retry.DefaultPolicy
	}
	return c.RestartPolicy
}

func (c *Client) handlers() *HandlerGroup {
	if c.Handlers == nil {
		return &emptyHandlers
	}
	return c.Handlers
}

func (c *Client) logger() *zerolog.Logger {
	if c.Logger == nil {
		return &nopLogger
	}
	return c.Logger
}

func (c *Client) token() string {
	if c.Tokens == nil {
		return ""
	}
	return c.Tokens.Token()
}

func urlErrorWrap(p *request.Plan, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(p.Method),
		URL: p.URL.String(),
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
