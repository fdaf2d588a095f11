// Package windowreg tracks at most one live window handle. It replaces a
// bare global window variable with a single-slot registry owned by the
// application: the first Open creates the window, later Opens raise the
// existing one, and closing clears the slot so the next Open recreates it.
package windowreg

import "sync"

// Handle is a minimal live-window reference. Raise brings the window to
// the foreground.
type Handle interface {
	Raise()
}

// Registry is a single-slot window registry. The zero value is ready to
// use.
type Registry struct {
	mu   sync.Mutex
	slot Handle
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Open returns the tracked handle, raising it first, or constructs a new
// one via create and tracks it. create runs with the registry locked and
// must not call back into the registry; wire close notifications to Clear
// instead.
func (r *Registry) Open(create func() Handle) Handle {
	r.mu.Lock()
	if r.slot != nil {
		h := r.slot
		r.mu.Unlock()
		h.Raise()
		return h
	}
	h := create()
	r.slot = h
	r.mu.Unlock()
	return h
}

// IsOpen reports whether a window is currently tracked.
func (r *Registry) IsOpen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slot != nil
}

// Clear drops the slot if it still holds h. Stale notifications from an
// already-replaced window are ignored.
func (r *Registry) Clear(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.slot == h {
		r.slot = nil
	}
}
