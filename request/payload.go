// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// ErrMalformedJSON is returned when a non-empty response body is
// expected to be JSON but is not.
var ErrMalformedJSON = errors.New("panelx/request: response body is not valid JSON")

// A Payload is a parsed JSON response body. The zero value represents an
// absent body: Exists reports false and Raw is empty.
//
// Payload embeds gjson.Result, so fields can be read with path syntax:
//
//	msg := payload.Get("message").String()
//	id := payload.Get("data.0.id").Int()
type Payload struct {
	gjson.Result
}

// ParsePayload parses body as JSON. An empty (or all-whitespace) body
// yields the zero Payload and no error. A body which is not valid JSON
// yields the zero Payload and ErrMalformedJSON.
func ParsePayload(body []byte) (Payload, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Payload{}, nil
	}
	if !gjson.ValidBytes(body) {
		return Payload{}, ErrMalformedJSON
	}
	return Payload{gjson.ParseBytes(body)}, nil
}

// Decode unmarshals the payload into v. Decoding an absent payload
// leaves v unchanged.
func (p Payload) Decode(v interface{}) error {
	if !p.Exists() {
		return nil
	}
	return json.Unmarshal([]byte(p.Raw), v)
}
