// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient classifies transport errors seen while talking to
// the admin backend. A backend that is restarting typically refuses or
// resets connections, or drops them mid-response, for a short while;
// the categories here let the server-restart watch and its log output
// tell those conditions apart from permanent failures.
package transient
