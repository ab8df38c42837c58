package parameters

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/poly-layer/snarkVM/types"
)

// fakeFetcher serves canned bytes and counts invocations.
type fakeFetcher struct {
	calls atomic.Int32
	data  []byte
	err   error
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string, maxSize int64) ([]byte, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	if int64(len(f.data)) > maxSize {
		return nil, fmt.Errorf("body exceeds limit %d", maxSize)
	}
	return f.data, nil
}

// failingCache always errors, to exercise the recoverable cache paths.
type failingCache struct{}

func (failingCache) Get(string, types.HexBytes) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (failingCache) Put(string, types.HexBytes, []byte) error {
	return errors.New("disk full")
}

func remoteDescriptor(name string, data []byte) *Descriptor {
	return &Descriptor{
		Name:      name,
		Hash:      Digest(data),
		Size:      int64(len(data)),
		RemoteURL: "https://parameters.example/" + name,
	}
}

func TestLoaderEmbedded(t *testing.T) {
	c := qt.New(t)

	c.Run("valid embedded bytes", func(c *qt.C) {
		data := []byte("embedded verifying key")
		d := &Descriptor{Name: "embedded.vk", Hash: Digest(data), Size: int64(len(data)), Embedded: data}

		got, err := NewLoader(nil, nil).Load(context.Background(), d)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.DeepEquals, data)
	})

	c.Run("corrupt embedded bytes are a build error", func(c *qt.C) {
		data := []byte("embedded verifying key")
		d := &Descriptor{Name: "embedded.vk", Hash: Digest([]byte("something else")), Size: int64(len(data)), Embedded: data}

		_, err := NewLoader(nil, nil).Load(context.Background(), d)
		c.Assert(err, qt.ErrorIs, ErrCorruptEmbedded)

		var loadErr *LoadError
		c.Assert(errors.As(err, &loadErr), qt.IsTrue)
		c.Assert(loadErr.Name, qt.Equals, "embedded.vk")
	})

	c.Run("genesis block descriptor verifies", func(c *qt.C) {
		got, err := NewLoader(nil, nil).Load(context.Background(), GenesisBlock())
		c.Assert(err, qt.IsNil)
		c.Assert(int64(len(got)), qt.Equals, GenesisBlock().Size)
	})
}

func TestLoaderRemote(t *testing.T) {
	c := qt.New(t)

	c.Run("fetch, verify, cache", func(c *qt.C) {
		data := []byte("remote proving key")
		d := remoteDescriptor("transfer.pk", data)
		cache, err := NewDiskCache(c.TempDir(), nil)
		c.Assert(err, qt.IsNil)
		fetcher := &fakeFetcher{data: data}

		got, err := NewLoader(cache, fetcher).Load(context.Background(), d)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.DeepEquals, data)
		c.Assert(fetcher.calls.Load(), qt.Equals, int32(1))

		// The cache now holds the exact bytes at the derived path.
		onDisk, err := os.ReadFile(cache.Path(d.Name, d.Hash))
		c.Assert(err, qt.IsNil)
		c.Assert(onDisk, qt.DeepEquals, data)
	})

	c.Run("cache hit skips the fetcher entirely", func(c *qt.C) {
		data := []byte("remote proving key")
		d := remoteDescriptor("transfer.pk", data)
		cache, err := NewDiskCache(c.TempDir(), nil)
		c.Assert(err, qt.IsNil)
		c.Assert(cache.Put(d.Name, d.Hash, data), qt.IsNil)
		fetcher := &fakeFetcher{data: data}

		got, err := NewLoader(cache, fetcher).Load(context.Background(), d)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.DeepEquals, data)
		c.Assert(fetcher.calls.Load(), qt.Equals, int32(0))
	})

	c.Run("digest mismatch is not cached", func(c *qt.C) {
		data := []byte("remote proving key")
		d := remoteDescriptor("transfer.pk", data)
		cache, err := NewDiskCache(c.TempDir(), nil)
		c.Assert(err, qt.IsNil)
		tampered := append([]byte{}, data...)
		tampered[0] ^= 0xFF
		fetcher := &fakeFetcher{data: tampered}

		_, err = NewLoader(cache, fetcher).Load(context.Background(), d)
		c.Assert(err, qt.ErrorIs, ErrDigestMismatch)

		_, err = os.Stat(cache.Path(d.Name, d.Hash))
		c.Assert(os.IsNotExist(err), qt.IsTrue)
	})

	c.Run("tampered cache entry is a hard failure", func(c *qt.C) {
		data := []byte("remote proving key")
		d := remoteDescriptor("transfer.pk", data)
		cache, err := NewDiskCache(c.TempDir(), nil)
		c.Assert(err, qt.IsNil)
		tampered := append([]byte{}, data...)
		tampered[3] ^= 0x01
		c.Assert(cache.Put(d.Name, d.Hash, tampered), qt.IsNil)
		fetcher := &fakeFetcher{data: data}

		_, err = NewLoader(cache, fetcher).Load(context.Background(), d)
		c.Assert(err, qt.ErrorIs, ErrDigestMismatch)
		c.Assert(fetcher.calls.Load(), qt.Equals, int32(0))
	})

	c.Run("nil fetcher surfaces remote unavailable", func(c *qt.C) {
		d := remoteDescriptor("transfer.pk", []byte("data"))
		_, err := NewLoader(nil, nil).Load(context.Background(), d)
		c.Assert(err, qt.ErrorIs, ErrRemoteUnavailable)
	})

	c.Run("fetch failure surfaces unreachable", func(c *qt.C) {
		d := remoteDescriptor("transfer.pk", []byte("data"))
		fetcher := &fakeFetcher{err: errors.New("connection reset")}
		_, err := NewLoader(nil, fetcher).Load(context.Background(), d)
		c.Assert(err, qt.ErrorIs, ErrUnreachable)
	})

	c.Run("cache failures never block a successful load", func(c *qt.C) {
		data := []byte("remote proving key")
		d := remoteDescriptor("transfer.pk", data)
		fetcher := &fakeFetcher{data: data}

		got, err := NewLoader(failingCache{}, fetcher).Load(context.Background(), d)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.DeepEquals, data)
		c.Assert(fetcher.calls.Load(), qt.Equals, int32(1))
	})

	c.Run("nil cache behaves like a miss", func(c *qt.C) {
		data := []byte("remote proving key")
		d := remoteDescriptor("transfer.pk", data)
		fetcher := &fakeFetcher{data: data}

		got, err := NewLoader(nil, fetcher).Load(context.Background(), d)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.DeepEquals, data)
	})

	c.Run("invalid descriptor rejected", func(c *qt.C) {
		_, err := NewLoader(nil, nil).Load(context.Background(), &Descriptor{Name: "broken"})
		c.Assert(err, qt.IsNotNil)
	})
}

// TestLoaderEndToEnd runs the whole pipeline against a real HTTP server.
func TestLoaderEndToEnd(t *testing.T) {
	c := qt.New(t)

	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i * 31)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	d := &Descriptor{
		Name:      "verifying_key_transfer",
		Hash:      Digest(data),
		Size:      int64(len(data)),
		RemoteURL: srv.URL,
	}
	cache, err := NewDiskCache(c.TempDir(), nil)
	c.Assert(err, qt.IsNil)
	loader := NewLoader(cache, NewHTTPFetcher(nil, DefaultRetryPolicy()))

	got, err := loader.Load(context.Background(), d)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.DeepEquals, data)

	onDisk, err := os.ReadFile(cache.Path(d.Name, d.Hash))
	c.Assert(err, qt.IsNil)
	c.Assert(onDisk, qt.DeepEquals, data)
}
