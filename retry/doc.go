// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry provides the policies that govern the server-restart
// watch: after each failed health check, a Policy decides whether to
// probe again and how long to wait first.
//
// A Policy is a Decider composed with a Waiter. DefaultPolicy probes
// again after any transport error, waits a fixed DefaultInterval, and
// never gives up. Compose deciders to bound it:
//
//	decider := retry.Times(600).And(retry.Err)
//	policy := retry.NewPolicy(decider, retry.NewFixedWaiter(250*time.Millisecond))
//
// Deciders only see the health-check execution, so a custom Decider or
// Waiter may look at its attempt number, duration, error, and status.
package retry
