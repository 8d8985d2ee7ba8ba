// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"sort"
	"strings"
)

// FormatQuery formats params as a query string without the leading
// "?". Each entry becomes exactly one key=value pair, with both key and
// value escaped by EscapeComponent, and pairs are joined by "&".
//
// Keys are emitted in sorted order so the result is stable.
func FormatQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(EscapeComponent(k))
		b.WriteByte('=')
		b.WriteString(EscapeComponent(params[k]))
	}
	return b.String()
}

// EscapeComponent percent-encodes s the way the JavaScript function
// encodeURIComponent does: every byte except ASCII letters, digits, and
// - _ . ! ~ * ' ( ) is replaced by its %XX form.
//
// This differs from url.QueryEscape, which encodes a space as "+" and
// escapes ! ' ( ) *.
func EscapeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unescaped(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	const hex = "0123456789ABCDEF"
	t := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unescaped(c) {
			t = append(t, c)
		} else {
			t = append(t, '%', hex[c>>4], hex[c&15])
		}
	}
	return string(t)
}

func unescaped(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

func appendQuery(url, query string) string {
	if query == "" {
		return url
	}
	if strings.Contains(url, "?") {
		return url + "&" + query
	}
	return url + "?" + query
}
