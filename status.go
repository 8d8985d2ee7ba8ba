// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package panelx

import (
	"net/http"

	"github.com/gogama/panelx/request"
	"github.com/gogama/panelx/retry"
)

// checkStatus advances the auth state of a dispatch execution that
// received a response. It returns nil for a 2XX status and a
// *StatusError for any status the revalidation cannot recover from.
func (c *Client) checkStatus(e *request.Execution) error {
	status := e.StatusCode()
	if status >= 200 && status < 300 {
		e.Auth = request.Resolved
		return nil
	}

	if status == http.StatusUnauthorized && e.Auth == request.Unvalidated && c.token() != "" {
		e.Auth = request.Revalidating
		return c.revalidate(e)
	}

	e.Auth = request.Failed
	return newStatusError(e)
}

// revalidate looks up the current user with the token that was just
// rejected. The outcome of the lookup does not change the result of the
// call: the user is sent to the login page and the call fails.
func (c *Client) revalidate(e *request.Execution) error {
	logger := c.logger()
	c.handlers().run(BeforeRevalidation, e)

	// The token may have been cleared by a concurrent call since the
	// dispatch was sent.
	if token := c.token(); token != "" {
		logger.Info().
			Str("url", e.Plan.URL.String()).
			Msg("token rejected, looking up current user")
		p, err := request.NewPlanWithContext(e.Plan.Context(), "GET", c.BackendURL+CurrentUserPath, nil)
		if err != nil {
			e.Auth = request.Failed
			return err
		}
		p.Purpose = request.Revalidation
		p.Header.Set("Accept", "application/json")
		p.Header.Set("Content-Type", "application/json")
		p.SetBearerAuth(token)
		r := c.execute(p, retry.Never)
		e.Revalidation = r
		if r.Err != nil {
			e.Auth = request.Failed
			return r.Err
		}
	}

	if e.StatusCode() == http.StatusUnauthorized {
		login := c.RemoteURL + LoginPath
		logger.Warn().
			Str("url", e.Plan.URL.String()).
			Str("login", login).
			Msg("authentication failed, redirecting to login")
		if c.Navigator != nil {
			c.Navigator.Navigate(login)
		}
		if c.Tokens != nil {
			c.Tokens.ClearAppStorage()
		}
		c.handlers().run(AfterAuthFailure, e)
	}

	return c.checkStatus(e)
}
