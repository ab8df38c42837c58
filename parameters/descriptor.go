// Package parameters implements the acquisition and integrity verification of
// the snarkVM parameter artifacts: proving keys, verifying keys, circuit
// definitions, universal setup data and genesis artifacts. Parameters are
// either embedded at build time or fetched from a remote source, and are never
// handed to a caller before their SHA256 digest and byte size have been
// verified against the descriptor they were requested with.
package parameters

import (
	"fmt"

	"github.com/poly-layer/snarkVM/types"
)

// Descriptor identifies one named parameter: its expected SHA256 digest, its
// expected byte size and its source. Descriptors are immutable and built once
// at process start, either from the compile-time tables in the config package
// or from build-time embedded bytes.
type Descriptor struct {
	// Name is the stable identifier of the parameter, used for log lines,
	// registry keys and cache file names.
	Name string
	// Hash is the SHA256 digest the parameter bytes must match.
	Hash types.HexBytes
	// Size is the exact byte size the parameter bytes must have.
	Size int64
	// RemoteURL is the source URL for remote parameters. Empty for embedded
	// parameters.
	RemoteURL string
	// Embedded holds the parameter bytes compiled into the binary. Nil for
	// remote parameters.
	Embedded []byte
}

// IsEmbedded reports whether the parameter bytes are compiled into the binary.
func (d *Descriptor) IsEmbedded() bool {
	return d.Embedded != nil
}

// Validate checks that the descriptor is well formed: a name, a SHA256 digest
// and exactly one source (embedded bytes or a remote URL). An expected size of
// zero is allowed only for embedded placeholders.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("parameter descriptor without name")
	}
	if len(d.Hash) != DigestSize {
		return fmt.Errorf("parameter %q: digest must be %d bytes, got %d", d.Name, DigestSize, len(d.Hash))
	}
	if d.Embedded == nil && d.RemoteURL == "" {
		return fmt.Errorf("parameter %q: no embedded bytes and no remote URL", d.Name)
	}
	if d.Embedded != nil && d.RemoteURL != "" {
		return fmt.Errorf("parameter %q: both embedded bytes and a remote URL", d.Name)
	}
	return nil
}

// String returns a short human readable identification of the descriptor.
func (d *Descriptor) String() string {
	source := d.RemoteURL
	if d.IsEmbedded() {
		source = "embedded"
	}
	return fmt.Sprintf("%s (%d bytes, %s, %s)", d.Name, d.Size, d.Hash.String(), source)
}
