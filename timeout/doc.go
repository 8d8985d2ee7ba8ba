// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout defines policies for setting the timeout of each
// individual HTTP attempt the client makes: the caller's request, the
// token revalidation, and every health check of the server-restart
// watch.
package timeout
