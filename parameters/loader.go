package parameters

import (
	"context"
	"errors"
	"fmt"

	"github.com/poly-layer/snarkVM/log"
)

// SizeSlack is the margin added to a descriptor's expected size when capping
// a remote transfer. It absorbs harmless transport overhead while still
// aborting a runaway body early.
const SizeSlack = 1 << 16

// Loader acquires and verifies the bytes of one parameter at a time:
// embedded bytes first, then the local cache, then the remote source. Both
// the cache and the fetcher are optional capabilities; a constrained target
// constructs the loader with neither and can only use embedded parameters.
type Loader struct {
	cache   Cache
	fetcher Fetcher
}

// NewLoader builds a Loader from the available capabilities. cache and
// fetcher may each be nil: a nil cache behaves as an always-miss cache, a nil
// fetcher makes remote parameters fail with ErrRemoteUnavailable.
func NewLoader(cache Cache, fetcher Fetcher) *Loader {
	return &Loader{cache: cache, fetcher: fetcher}
}

// Load returns the verified bytes for the descriptor. The returned slice must
// be treated as read-only; it is shared with every other caller that resolves
// the same parameter through a Registry.
//
// The resolution order short-circuits on first success:
//  1. embedded bytes, verified (a mismatch is ErrCorruptEmbedded, a build
//     defect)
//  2. local cache, verified (a mismatch is a hard ErrDigestMismatch: a
//     detected tampering event is never silently papered over by a re-fetch)
//  3. remote fetch, verified, then cached best-effort
func (l *Loader) Load(ctx context.Context, d *Descriptor) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, &LoadError{Name: d.Name, Err: err}
	}

	if d.IsEmbedded() {
		if res := Verify(d.Embedded, d.Hash, d.Size); res != Valid {
			return nil, &LoadError{Name: d.Name, Err: fmt.Errorf("%w: %s", ErrCorruptEmbedded, res)}
		}
		return d.Embedded, nil
	}

	if data, err := l.fromCache(d); err != nil {
		return nil, &LoadError{Name: d.Name, Err: err}
	} else if data != nil {
		log.Debugw("parameter loaded from cache", "name", d.Name, "size", len(data))
		return data, nil
	}

	if l.fetcher == nil {
		return nil, &LoadError{Name: d.Name, Err: ErrRemoteUnavailable}
	}
	data, err := l.fetcher.Fetch(ctx, d.RemoteURL, d.Size+SizeSlack)
	if err != nil {
		return nil, &LoadError{Name: d.Name, Err: fmt.Errorf("%w: %w", ErrUnreachable, err)}
	}
	if res := Verify(data, d.Hash, d.Size); res != Valid {
		// Never cache, never retry: a bad digest from the configured source
		// means a stale descriptor or a compromised server.
		return nil, &LoadError{Name: d.Name, Err: fmt.Errorf("%w: fetched bytes: %s", ErrDigestMismatch, res)}
	}

	if l.cache != nil {
		if err := l.cache.Put(d.Name, d.Hash, data); err != nil {
			// Caching is best-effort; the caller still gets valid bytes.
			log.Warnw("failed to cache parameter", "name", d.Name, "error", err.Error())
		}
	}
	log.Infow("parameter fetched and verified", "name", d.Name, "size", len(data), "url", d.RemoteURL)
	return data, nil
}

// fromCache returns verified cached bytes, nil on a miss or recoverable cache
// failure, or an error when the cached file fails verification.
func (l *Loader) fromCache(d *Descriptor) ([]byte, error) {
	if l.cache == nil {
		return nil, nil
	}
	data, err := l.cache.Get(d.Name, d.Hash)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			// Local storage trouble is recoverable: fall through to remote.
			log.Warnw("parameter cache read failed", "name", d.Name, "error", err.Error())
		}
		return nil, nil
	}
	if res := Verify(data, d.Hash, d.Size); res != Valid {
		return nil, fmt.Errorf("%w: cached bytes: %s", ErrDigestMismatch, res)
	}
	return data, nil
}
