// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package panelx is the request adapter an admin-panel front end uses to
talk to its backend. It wraps each HTTP round trip with JSON encoding
and decoding, bearer-token injection, URL and query-string
normalization, re-validation of the token after a 401, and an optional
wait for the backend to come back after a restart.

Create a Client with the backend's base URLs and collaborators, then
make requests. Paths beginning with "/" are relative to BackendURL:

	tokens := auth.NewMemory(jwt)
	client := &panelx.Client{
		BackendURL: "http://localhost:1337",
		RemoteURL:  "http://localhost:4000/admin",
		Tokens:     tokens,
	}
	e, err := client.Request(ctx, "/content-manager/explorer/article", &request.Options{
		Params: map[string]string{"_limit": "10"},
	})
	...
	payload, _ := e.Payload()
	title := payload.Get("0.title").String()

A response status outside [200, 300) produces a *StatusError carrying
the status text, the response, and its body parsed as JSON:

	var statusErr *panelx.StatusError
	if errors.As(err, &statusErr) {
		log.Print(statusErr.Payload.Get("message").String())
	}

A 401 received while a token is held first triggers a lookup of the
current user. If the original status is still 401 afterwards, the client
tells its Navigator to open the login page and clears the token store,
then fails with a *StatusError as for any other status.

Calls that make the backend restart (installing a plugin, editing a
content type) set Options.WatchServerRestart. After a successful
response the client locks the app, probes the health endpoint under
RestartPolicy until the backend answers, unlocks the app, and returns:

	e, err := client.Request(ctx, "/content-type-builder/models", &request.Options{
		Method:             "POST",
		Body:               model,
		WatchServerRestart: true,
	})

Uploads send a *form.Form with Options.Raw set; every file field gains
a companion caption field (see package form):

	e, err := panelx.Upload(ctx, client, "/upload", f)

To hook into request execution, install handlers in a HandlerGroup.
NewLogHandler logs every event to a zerolog logger, and
RequestIDHandler tags each attempt with a fresh X-Request-Id:

	handlers := &panelx.HandlerGroup{}
	handlers.PushBack(panelx.BeforeAttempt, panelx.RequestIDHandler)
	for _, evt := range panelx.Events() {
		handlers.PushBack(evt, panelx.NewLogHandler(logger))
	}
	client.Handlers = handlers
*/
package panelx
