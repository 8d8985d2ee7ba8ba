// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package auth defines the token store consulted by panelx.Client, and
// provides an in-memory implementation.
package auth

import "sync"

// A Store owns the current authentication token and the rest of the
// app state that must go when the user is signed out.
//
// Implementations of Store must be safe for concurrent use by multiple
// goroutines.
type Store interface {
	// Token returns the current token, or the empty string if there is
	// none.
	Token() string
	// ClearAppStorage discards the token and every other piece of
	// stored app state.
	ClearAppStorage()
}

// Memory is a Store that keeps the token and app state in memory. The
// zero value is an empty store ready to use.
type Memory struct {
	mu    sync.RWMutex
	token string
	state map[string]string
}

// NewMemory returns a Memory store holding token.
func NewMemory(token string) *Memory {
	return &Memory{token: token}
}

// Token returns the current token.
func (m *Memory) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// SetToken replaces the current token.
func (m *Memory) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

// Set stores an app state value under key.
func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		m.state = make(map[string]string)
	}
	m.state[key] = value
}

// Get returns the app state value stored under key.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.state[key]
	return v, ok
}

// ClearAppStorage discards the token and all app state.
func (m *Memory) ClearAppStorage() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.state = nil
}
