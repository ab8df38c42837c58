package parameters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/poly-layer/snarkVM/types"
)

// Cache stores validated parameter bytes between process runs, keyed by
// (name, digest). Implementations must never make a half-written entry
// visible under its final key. A nil Cache on the Loader behaves like a cache
// that always misses.
type Cache interface {
	// Get returns the stored bytes for (name, digest), or ErrCacheMiss if no
	// entry exists. Any other error means local storage is misbehaving; the
	// caller falls through to the remote source.
	Get(name string, digest types.HexBytes) ([]byte, error)
	// Put stores data under (name, digest), atomically replacing any
	// previous entry for the same key.
	Put(name string, digest types.HexBytes, data []byte) error
}

// PathResolver derives the cache file name for a (name, digest) pair. It is
// the pluggable storage locator: the cache itself carries no path policy
// beyond its base directory.
type PathResolver func(name string, digest types.HexBytes) string

// DefaultPathResolver stores one file per (name, digest) pair. The digest in
// the file name makes the existence of the exact path the index: a stale file
// for an old digest is simply never looked up again.
func DefaultPathResolver(name string, digest types.HexBytes) string {
	return fmt.Sprintf("%s.%s", name, digest.Hex())
}

// DiskCache is a filesystem-backed Cache with one file per (name, digest)
// pair. Writes go through a temp file and an atomic rename, so a crash mid
// write never leaves a partial file visible under the final name, and
// concurrent writers across processes converge on a fully written file.
type DiskCache struct {
	dir     string
	resolve PathResolver
}

// NewDiskCache returns a DiskCache rooted at dir, creating the directory if
// needed. If resolve is nil, DefaultPathResolver is used.
func NewDiskCache(dir string, resolve PathResolver) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create parameter cache directory %s: %w", dir, err)
	}
	if resolve == nil {
		resolve = DefaultPathResolver
	}
	return &DiskCache{dir: dir, resolve: resolve}, nil
}

// Dir returns the cache base directory.
func (c *DiskCache) Dir() string {
	return c.dir
}

// Path returns the absolute path an entry for (name, digest) lives at.
func (c *DiskCache) Path(name string, digest types.HexBytes) string {
	return filepath.Join(c.dir, c.resolve(name, digest))
}

// Get reads the entry for (name, digest). A missing file is ErrCacheMiss,
// anything else is surfaced as a storage error. The returned bytes are not
// re-verified here; the loader verifies every byte sequence before use.
func (c *DiskCache) Get(name string, digest types.HexBytes) ([]byte, error) {
	data, err := os.ReadFile(c.Path(name, digest))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("read cached parameter %q: %w", name, err)
	}
	return data, nil
}

// Put writes data for (name, digest) atomically: the bytes land in a temp
// file in the same directory and are renamed into place.
func (c *DiskCache) Put(name string, digest types.HexBytes, data []byte) error {
	if err := renameio.WriteFile(c.Path(name, digest), data, 0o644); err != nil {
		return fmt.Errorf("write cached parameter %q: %w", name, err)
	}
	return nil
}
