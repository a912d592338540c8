// Package extension holds the runtime registry external modules use to hook
// into resource lifecycles, plus the built-in admission extensions the server
// registers at startup.
package extension

import (
	"context"
	"sync"

	"netbound/internal/lifecycle"
)

// Hub is an in-process extension registry for one resource type. Extensions
// are kept in registration order; the orchestrator consults them per call, so
// registering or deregistering between calls takes effect immediately.
type Hub[T any] struct {
	mu   sync.RWMutex
	exts []lifecycle.Extension[T]
}

// NewHub creates an empty hub.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{}
}

// Register appends an extension to the hub.
func (h *Hub[T]) Register(ext lifecycle.Extension[T]) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.exts = append(h.exts, ext)
}

// Deregister removes a previously registered extension.
func (h *Hub[T]) Deregister(ext lifecycle.Extension[T]) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, e := range h.exts {
		if e == ext {
			h.exts = append(h.exts[:i], h.exts[i+1:]...)
			return
		}
	}
}

// Lookup returns a snapshot of the registered extensions in registration
// order. An in-process hub is always reachable, so Lookup never fails; an
// empty result means no extensions are registered, which the orchestrator
// treats as its own failure condition.
func (h *Hub[T]) Lookup(ctx context.Context) ([]lifecycle.Extension[T], error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]lifecycle.Extension[T], len(h.exts))
	copy(out, h.exts)
	return out, nil
}
