package parameters

import (
	"context"
	"sync"

	"github.com/poly-layer/snarkVM/log"
)

// Registry memoizes parameter resolutions for the lifetime of the process.
// Each name is loaded at most once: concurrent callers for the same name wait
// on the single in-flight load, and later callers get the recorded outcome,
// success or failure, without touching the network again. Construct one
// Registry at process start and thread it through to every call site; tests
// build a fresh one each.
type Registry struct {
	loader *Loader

	mu      sync.Mutex
	entries map[string]*registryEntry
}

// registryEntry is the per-name resolution state. done is closed exactly once
// when the load finishes; data/err are immutable afterwards.
type registryEntry struct {
	done chan struct{}
	data []byte
	err  error
}

// NewRegistry returns an empty Registry resolving through loader.
func NewRegistry(loader *Loader) *Registry {
	return &Registry{
		loader:  loader,
		entries: make(map[string]*registryEntry),
	}
}

// Resolve returns the verified bytes for the descriptor, loading them on the
// first call and replaying the recorded outcome on every later call. If the
// caller's context is canceled while another resolution for the same name is
// in flight, Resolve returns the context error but the load keeps running and
// its outcome is recorded for future callers.
func (r *Registry) Resolve(ctx context.Context, d *Descriptor) ([]byte, error) {
	return r.resolve(ctx, d, false)
}

// ForceResolve behaves like Resolve, but if the previous resolution of this
// name failed it discards that outcome and starts a fresh load. A successful
// resolution is final for the process lifetime and is returned as-is; there
// is no invalidation of resolved parameters.
func (r *Registry) ForceResolve(ctx context.Context, d *Descriptor) ([]byte, error) {
	return r.resolve(ctx, d, true)
}

func (r *Registry) resolve(ctx context.Context, d *Descriptor, force bool) ([]byte, error) {
	r.mu.Lock()
	e, ok := r.entries[d.Name]
	if ok && force {
		select {
		case <-e.done:
			if e.err != nil {
				// Previous attempt failed and the caller explicitly asked for
				// a fresh one.
				log.Debugw("forcing fresh parameter resolution", "name", d.Name)
				ok = false
			}
		default:
			// A load is in flight; join it instead of starting another.
		}
	}
	if !ok {
		e = &registryEntry{done: make(chan struct{})}
		r.entries[d.Name] = e
		// The load is detached from the caller's cancellation: a waiter
		// giving up must not leave the registry without an outcome.
		go r.run(context.WithoutCancel(ctx), e, d)
	}
	r.mu.Unlock()

	select {
	case <-e.done:
		return e.data, e.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *Registry) run(ctx context.Context, e *registryEntry, d *Descriptor) {
	e.data, e.err = r.loader.Load(ctx, d)
	if e.err != nil {
		log.Warnw("parameter resolution failed", "name", d.Name, "error", e.err.Error())
	}
	close(e.done)
}

// Resolved reports whether the named parameter has already been resolved
// successfully.
func (r *Registry) Resolved(name string) bool {
	r.mu.Lock()
	e, ok := r.entries[name]
	r.mu.Unlock()
	if !ok {
		return false
	}
	select {
	case <-e.done:
		return e.err == nil
	default:
		return false
	}
}
