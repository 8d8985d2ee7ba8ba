// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"io"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/gogama/panelx/form"
)

const badBodyTypeMsg = "panelx/request: invalid raw body type (use nil, " +
	"*form.Form, string, []byte, io.Reader or io.ReadCloser)"

// BodyBytes converts a raw body to a byte slice.
//
// The body parameter may be nil, or it may be a string, []byte,
// io.Reader, or io.ReadCloser:
//
// • If body is nil, a nil byte slice and no error is returned.
//
// • If body is a []byte, body itself is returned.
//
// • If body is a string, its bytes are returned.
//
// • If body is an io.Reader or io.ReadCloser, the whole content of the
// reader is returned, and the reader is closed if it is a Closer.
//
// • Any other type results in an error.
func BodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, err
		}
		err = x.Close()
		if err != nil {
			return nil, err
		}
		return b, nil
	case io.Reader:
		return BodyBytes(io.NopCloser(x))
	default:
		return nil, errors.New(badBodyTypeMsg)
	}
}

// encodeBody encodes an Options body. It returns the encoded bytes and,
// for multipart bodies only, the content type that must replace the
// request's Content-Type header. An absent body encodes to nothing.
func encodeBody(body interface{}, raw bool) ([]byte, string, error) {
	if absent(body) {
		return nil, "", nil
	}

	if !raw {
		b, err := json.Marshal(body)
		return b, "", err
	}

	if f, ok := body.(*form.Form); ok {
		return f.WithCaptions().Encode()
	}

	b, err := BodyBytes(body)
	return b, "", err
}

// absent reports whether body carries nothing to send: nil, the empty
// string, or a nil pointer, map, slice, interface, channel or function.
func absent(body interface{}) bool {
	if body == nil {
		return true
	}
	if s, ok := body.(string); ok {
		return s == ""
	}
	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}
