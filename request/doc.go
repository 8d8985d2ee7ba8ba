// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the request descriptor Options, the normalized
request Plan, and Execution, which records what happened when a Plan was
sent to the admin backend.

Options is what a caller hands to panelx.Client. It names a method,
headers, a body, and query parameters, exactly as a front-end caller
would describe a backend call:

	opts := &request.Options{
		Method: "POST",
		Body:   map[string]interface{}{"name": "article"},
		Params: map[string]string{"source": "content-manager"},
	}

Resolve turns Options into a Plan. Resolution fills in the default
headers, injects the bearer token, prefixes relative URLs with the
backend base URL, appends the query string, and encodes the body. The
caller's Options are never modified; everything normalized lives in the
Plan.

	p, err := request.Resolve(ctx, "http://localhost:1337", "/content-manager/explorer", opts, token)

A Plan looks like a stripped-down http.Request with a pre-buffered body,
so that the same Plan can be sent more than once (the server-restart
watch sends its health-check Plan until the backend answers).

Execution is both the result type of panelx.Client and the input type for
event handlers, timeout policies, and retry policies. Its Payload method
parses the buffered response body as JSON on first use.
*/
package request
