package parameters

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptEmbedded reports that bytes compiled into the binary do not
	// match their descriptor. This means the build itself is broken and is
	// not recoverable at runtime.
	ErrCorruptEmbedded = errors.New("embedded parameter bytes are corrupt")

	// ErrDigestMismatch reports that fetched or cached bytes failed digest or
	// size verification. It is never retried against the same source: either
	// the descriptor is stale or the source is compromised.
	ErrDigestMismatch = errors.New("parameter digest mismatch")

	// ErrUnreachable reports that the remote source could not be fetched
	// after exhausting the retry policy. Callers may retry at a higher layer.
	ErrUnreachable = errors.New("parameter source unreachable")

	// ErrRemoteUnavailable reports that the loader was built without a
	// fetcher, so remote parameters cannot be acquired on this target.
	ErrRemoteUnavailable = errors.New("remote fetch not available on this target")

	// ErrCacheMiss reports that the cache holds no file for the requested
	// (name, digest) pair.
	ErrCacheMiss = errors.New("parameter not in cache")
)

// LoadError is the terminal error of one parameter resolution. It carries the
// parameter name so call sites several layers up can still identify which
// artifact failed. The underlying cause is one of the sentinel errors above
// and can be tested with errors.Is.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load parameter %q: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
