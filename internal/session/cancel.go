package session

import (
	"context"
	"sync"
)

// cancelEntry identifies one registered request. The pointer identity is what
// lets a release distinguish its own registration from a newer one under the
// same key.
type cancelEntry struct {
	cancel context.CancelFunc
}

// cancelRegistry tracks the cancel function of each in-flight request, keyed
// by the payload value that originated it. A caller holding the same payload
// can abort the request before it settles; settling always unregisters.
type cancelRegistry struct {
	mu     sync.Mutex
	active map[any]*cancelEntry
}

// bind derives a cancellable context for one request and registers it under
// key. The returned release func must run when the request settles; it
// unregisters the entry and releases the context.
// A second request bound under the same key replaces the first entry, so
// Cancel then reaches only the newest request. The replaced request's own
// release no longer touches the map.
func (r *cancelRegistry) bind(ctx context.Context, key any) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	entry := &cancelEntry{cancel: cancel}

	r.mu.Lock()
	if r.active == nil {
		r.active = make(map[any]*cancelEntry)
	}
	r.active[key] = entry
	r.mu.Unlock()

	return ctx, func() {
		r.mu.Lock()
		if r.active[key] == entry {
			delete(r.active, key)
		}
		r.mu.Unlock()
		cancel()
	}
}

// cancel aborts the in-flight request bound to key, if any.
// It reports whether a request was found.
func (r *cancelRegistry) cancel(key any) bool {
	r.mu.Lock()
	entry, ok := r.active[key]
	r.mu.Unlock()

	if ok {
		entry.cancel()
	}
	return ok
}
