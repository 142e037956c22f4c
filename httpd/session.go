package httpd

import (
	"sync"
)

// Session interface
type Session interface {
	// Get returns the session value associated to the given key.
	Get(key interface{}) interface{}
	// Set sets the session value associated to the given key.
	Set(key interface{}, val interface{})
	// Delete removes the session value associated to the given key.
	Delete(key interface{})
}

func NewSession() *TokenSession {
	m := make(map[interface{}]interface{})
	return &TokenSession{SessionMap: m}
}

// TokenSession keeps the signin tokens of this node.
type TokenSession struct {
	// SessionMap store all client token
	SessionMap map[interface{}]interface{}
	// Mux locks SessionMap
	Mux sync.Mutex
}

// Get returns the session value associated to the given key.
func (ts *TokenSession) Get(i interface{}) interface{} {
	ts.Mux.Lock()
	defer ts.Mux.Unlock()
	return ts.SessionMap[i]
}

// Set sets the session value associated to the given key.
func (ts *TokenSession) Set(k, v interface{}) {
	ts.Mux.Lock()
	defer ts.Mux.Unlock()
	ts.SessionMap[k] = v
}

// Delete removes the session value associated to the given key.
func (ts *TokenSession) Delete(k interface{}) {
	ts.Mux.Lock()
	defer ts.Mux.Unlock()
	ts.SessionMap[k] = nil
}
