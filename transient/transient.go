// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"errors"
	"io"
	"syscall"
)

// A Category is the transience category of an error, as reported by
// Categorize.
//
// The category Not means the error is not transient: waiting and trying
// again is very unlikely to help. Every other category indicates the
// error has some prospect of clearing up on its own, most commonly
// because the backend process is in the middle of a restart.
type Category int

const (
	// Not indicates any non-transient error, or a nil error.
	Not Category = iota
	// Timeout indicates a client-side timeout. Categorize returns
	// Timeout if the error or any of its wrapped causes has a Timeout
	// method that reports true.
	Timeout
	// ConnRefused indicates the remote host refused the connection
	// (POSIX ECONNREFUSED). While the backend restarts nothing listens
	// on its port, so this is the most common category seen by the
	// server-restart watch.
	ConnRefused
	// ConnReset indicates the remote host reset a previously active
	// connection (POSIX ECONNRESET), for example because the backend
	// process went down while serving the request.
	ConnReset
	// EOF indicates the connection was closed before a complete
	// response was read (io.EOF or io.ErrUnexpectedEOF).
	EOF
)

var categoryNames = []string{
	"Not",
	"Timeout",
	"ConnRefused",
	"ConnReset",
	"EOF",
}

// String returns the name of the category.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

// Categorize returns the transience category of err. A nil error and
// a non-transient error both produce Not.
//
// Categorize looks at the wrapped causes within err, not just err
// itself. It never consults a Temporary method, as the semantics of
// Temporary aren't entirely clear.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET:
			return ConnReset
		case syscall.ECONNREFUSED:
			return ConnRefused
		}
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return EOF
	}

	return Not
}

type hasTimeout interface {
	Timeout() bool
}
