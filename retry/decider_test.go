// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"syscall"
	"testing"
	"time"

	"github.com/gogama/panelx/request"
	"github.com/stretchr/testify/assert"
)

func TestDefaultDecider(t *testing.T) {
	t.Run("errors retried forever", func(t *testing.T) {
		for i, err := range append(transientErrs, nonTransientErrs[1:]...) {
			e := request.Execution{Err: &url.Error{Op: "Head", URL: "/_health", Err: err}}
			t.Run(fmt.Sprintf("errs[%d]=%v", i, err), func(t *testing.T) {
				for _, attempt := range []int{0, 1, 100, 1 << 20} {
					e.Attempt = attempt
					assert.True(t, DefaultDecider(&e))
				}
			})
		}
	})
	t.Run("any response ends", func(t *testing.T) {
		for _, code := range []int{200, 204, 401, 404, 500, 502, 503} {
			e := request.Execution{Response: &http.Response{StatusCode: code}}
			assert.False(t, DefaultDecider(&e), fmt.Sprintf("status %d", code))
		}
	})
}

func TestTransientErr(t *testing.T) {
	e := request.Execution{}
	for i, te := range transientErrs {
		t.Run(fmt.Sprintf("transientErrs[%d]=%v", i, te), func(t *testing.T) {
			e.Err = te
			assert.True(t, transientErr(&e))
			e.Err = &url.Error{Err: te}
			assert.True(t, transientErr(&e))
		})
	}
	for j, nte := range nonTransientErrs {
		t.Run(fmt.Sprintf("nonTransientErrs[%d]=%v", j, nte), func(t *testing.T) {
			e.Err = nte
			assert.False(t, transientErr(&e))
		})
	}
}

func TestDeciderAnd(t *testing.T) {
	true_ := DeciderFunc(func(_ *request.Execution) bool { return true })
	false_ := DeciderFunc(func(_ *request.Execution) bool { return false })
	assert.True(t, true_.And(true_)(&request.Execution{}))
	assert.False(t, true_.And(false_)(&request.Execution{}))
	assert.False(t, false_.And(true_)(&request.Execution{}))
	assert.False(t, false_.And(false_)(&request.Execution{}))
}

func TestDeciderOr(t *testing.T) {
	true_ := DeciderFunc(func(_ *request.Execution) bool { return true })
	false_ := DeciderFunc(func(_ *request.Execution) bool { return false })
	assert.True(t, true_.Or(true_)(&request.Execution{}))
	assert.True(t, true_.Or(false_)(&request.Execution{}))
	assert.True(t, false_.Or(true_)(&request.Execution{}))
	assert.False(t, false_.Or(false_)(&request.Execution{}))
}

func TestTimes(t *testing.T) {
	zero := Times(0)
	assert.False(t, zero(&request.Execution{}))
	two := Times(2)
	assert.True(t, two(&request.Execution{Attempt: 1}))
	assert.False(t, two(&request.Execution{Attempt: 2}))

	bounded := Times(3).And(Err)
	e := request.Execution{Err: syscall.ECONNREFUSED}
	assert.True(t, bounded(&e))
	e.Attempt = 3
	assert.False(t, bounded(&e))
}

func TestBefore(t *testing.T) {
	e := request.Execution{Start: time.Now()}
	before := Before(time.Minute)
	assert.True(t, before(&e))
	e.End = e.Start.Add(2 * time.Minute)
	assert.False(t, before(&e))
}

func TestStatusCode(t *testing.T) {
	empty := StatusCode()
	assert.False(t, empty(&request.Execution{}))
	r := http.Response{StatusCode: 502}
	e := request.Execution{Response: &r}
	proxy := Err.Or(StatusCode(502, 503))
	assert.True(t, proxy(&e))
	r.StatusCode = 200
	assert.False(t, proxy(&e))
	assert.True(t, proxy(&request.Execution{Err: io.EOF}))
}

var (
	transientErrs = []error{
		syscall.ECONNREFUSED,
		syscall.ECONNRESET,
		syscall.ETIMEDOUT,
		io.ErrUnexpectedEOF,
	}
	nonTransientErrs = []error{
		nil,
		errors.New("ain't transient"),
		syscall.EHOSTUNREACH,
	}
)
