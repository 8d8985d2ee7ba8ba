// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"math"
	"syscall"
	"testing"
	"time"

	"github.com/gogama/panelx/request"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert.Equal(t, time.Duration(math.MaxInt64), DefaultPolicy.Timeout(&request.Execution{}))
}

func TestInfinite(t *testing.T) {
	a := Infinite.Timeout(&request.Execution{})
	assert.Equal(t, time.Duration(math.MaxInt64), a)
	b := Infinite.Timeout(&request.Execution{AttemptTimeouts: 10, Err: syscall.ETIMEDOUT})
	assert.Equal(t, time.Duration(math.MaxInt64), b)
}

func TestFixed(t *testing.T) {
	p := Fixed(33 * time.Hour)
	assert.Equal(t, 33*time.Hour, p.Timeout(&request.Execution{}))
	assert.Equal(t, 33*time.Hour, p.Timeout(&request.Execution{AttemptTimeouts: 2, Err: syscall.ETIMEDOUT, Attempt: 2}))
}

func TestSplit(t *testing.T) {
	assert.PanicsWithValue(t, "panelx/timeout: nil policy", func() { Split(nil, Infinite) })
	assert.PanicsWithValue(t, "panelx/timeout: nil policy", func() { Split(Infinite, nil) })

	p := Split(Fixed(time.Minute), Fixed(2*time.Second))
	assert.Equal(t, time.Minute, p.Timeout(&request.Execution{}))
	assert.Equal(t, time.Minute, p.Timeout(&request.Execution{Plan: &request.Plan{Purpose: request.Dispatch}}))
	assert.Equal(t, time.Minute, p.Timeout(&request.Execution{Plan: &request.Plan{Purpose: request.Revalidation}}))
	assert.Equal(t, 2*time.Second, p.Timeout(&request.Execution{Plan: &request.Plan{Purpose: request.HealthCheck}}))
}
