package parameters

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

// blockingFetcher holds every Fetch until released, so tests can observe the
// in-progress state deterministically.
type blockingFetcher struct {
	fakeFetcher
	release chan struct{}
	started chan struct{}
	once    sync.Once
}

func (f *blockingFetcher) Fetch(ctx context.Context, url string, maxSize int64) ([]byte, error) {
	f.once.Do(func() { close(f.started) })
	<-f.release
	return f.fakeFetcher.Fetch(ctx, url, maxSize)
}

func TestRegistryIdempotence(t *testing.T) {
	c := qt.New(t)

	data := []byte("proving key bytes")
	d := remoteDescriptor("transfer.pk", data)
	fetcher := &fakeFetcher{data: data}
	reg := NewRegistry(NewLoader(nil, fetcher))

	first, err := reg.Resolve(context.Background(), d)
	c.Assert(err, qt.IsNil)
	second, err := reg.Resolve(context.Background(), d)
	c.Assert(err, qt.IsNil)

	c.Assert(first, qt.DeepEquals, second)
	c.Assert(fetcher.calls.Load(), qt.Equals, int32(1))
	c.Assert(reg.Resolved(d.Name), qt.IsTrue)
}

func TestRegistryConcurrentResolve(t *testing.T) {
	c := qt.New(t)

	data := []byte("proving key bytes")
	d := remoteDescriptor("transfer.pk", data)
	fetcher := &fakeFetcher{data: data}
	reg := NewRegistry(NewLoader(nil, fetcher))

	const n = 32
	results := make([][]byte, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = reg.Resolve(context.Background(), d)
		}()
	}
	wg.Wait()

	c.Assert(fetcher.calls.Load(), qt.Equals, int32(1))
	for i := range n {
		c.Assert(errs[i], qt.IsNil)
		c.Assert(results[i], qt.DeepEquals, data)
	}
}

func TestRegistryFailureMemoized(t *testing.T) {
	c := qt.New(t)

	d := remoteDescriptor("transfer.pk", []byte("data"))
	fetcher := &fakeFetcher{err: errors.New("connection reset")}
	reg := NewRegistry(NewLoader(nil, fetcher))

	_, err := reg.Resolve(context.Background(), d)
	c.Assert(err, qt.ErrorIs, ErrUnreachable)
	_, err = reg.Resolve(context.Background(), d)
	c.Assert(err, qt.ErrorIs, ErrUnreachable)

	// The failed outcome is replayed, not re-fetched.
	c.Assert(fetcher.calls.Load(), qt.Equals, int32(1))
	c.Assert(reg.Resolved(d.Name), qt.IsFalse)
}

func TestRegistryForceResolve(t *testing.T) {
	c := qt.New(t)

	data := []byte("proving key bytes")
	d := remoteDescriptor("transfer.pk", data)
	fetcher := &fakeFetcher{err: errors.New("connection reset")}
	reg := NewRegistry(NewLoader(nil, fetcher))

	_, err := reg.Resolve(context.Background(), d)
	c.Assert(err, qt.ErrorIs, ErrUnreachable)

	// The source recovers; a plain Resolve still replays the failure, only
	// ForceResolve starts over.
	fetcher.err = nil
	fetcher.data = data
	_, err = reg.Resolve(context.Background(), d)
	c.Assert(err, qt.ErrorIs, ErrUnreachable)

	got, err := reg.ForceResolve(context.Background(), d)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.DeepEquals, data)
	c.Assert(fetcher.calls.Load(), qt.Equals, int32(2))

	// A successful resolution is final: force does not reload it.
	got, err = reg.ForceResolve(context.Background(), d)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.DeepEquals, data)
	c.Assert(fetcher.calls.Load(), qt.Equals, int32(2))
}

func TestRegistryWaiterCancellation(t *testing.T) {
	c := qt.New(t)

	data := []byte("proving key bytes")
	d := remoteDescriptor("transfer.pk", data)
	fetcher := &blockingFetcher{
		fakeFetcher: fakeFetcher{data: data},
		release:     make(chan struct{}),
		started:     make(chan struct{}),
	}
	reg := NewRegistry(NewLoader(nil, fetcher))

	ctx, cancel := context.WithCancel(context.Background())
	waiterErr := make(chan error, 1)
	go func() {
		_, err := reg.Resolve(ctx, d)
		waiterErr <- err
	}()

	// Cancel the waiter while the load is in flight.
	<-fetcher.started
	cancel()
	c.Assert(<-waiterErr, qt.ErrorIs, context.Canceled)

	// The abandoned load still completes and populates the registry.
	close(fetcher.release)
	got, err := reg.Resolve(context.Background(), d)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.DeepEquals, data)
	c.Assert(fetcher.calls.Load(), qt.Equals, int32(1))
}

func TestRegistryDistinctNames(t *testing.T) {
	c := qt.New(t)

	a := []byte("proving key bytes")
	b := []byte("verifying key bytes")
	da := remoteDescriptor("transfer.pk", a)
	db := remoteDescriptor("transfer.vk", b)

	// One fetcher cannot serve two bodies, so give each name its own loader
	// data via the cache instead.
	cache, err := NewDiskCache(c.TempDir(), nil)
	c.Assert(err, qt.IsNil)
	c.Assert(cache.Put(da.Name, da.Hash, a), qt.IsNil)
	c.Assert(cache.Put(db.Name, db.Hash, b), qt.IsNil)
	reg := NewRegistry(NewLoader(cache, nil))

	gotA, err := reg.Resolve(context.Background(), da)
	c.Assert(err, qt.IsNil)
	gotB, err := reg.Resolve(context.Background(), db)
	c.Assert(err, qt.IsNil)
	c.Assert(gotA, qt.DeepEquals, a)
	c.Assert(gotB, qt.DeepEquals, b)
}

func TestRegistryResolvedWhileInFlight(t *testing.T) {
	c := qt.New(t)

	data := []byte("proving key bytes")
	d := remoteDescriptor("transfer.pk", data)
	fetcher := &blockingFetcher{
		fakeFetcher: fakeFetcher{data: data},
		release:     make(chan struct{}),
		started:     make(chan struct{}),
	}
	reg := NewRegistry(NewLoader(nil, fetcher))

	done := make(chan struct{})
	go func() {
		_, _ = reg.Resolve(context.Background(), d)
		close(done)
	}()

	<-fetcher.started
	c.Assert(reg.Resolved(d.Name), qt.IsFalse)
	close(fetcher.release)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		c.Fatal("resolution did not finish")
	}
	c.Assert(reg.Resolved(d.Name), qt.IsTrue)
}
