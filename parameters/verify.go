package parameters

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/poly-layer/snarkVM/types"
)

// DigestSize is the byte size of a parameter digest (SHA256).
const DigestSize = sha256.Size

// VerificationResult is the terminal outcome of one verification attempt.
type VerificationResult int

const (
	// Valid means the bytes match both the expected size and digest.
	Valid VerificationResult = iota
	// SizeMismatch means the byte count differs from the descriptor.
	SizeMismatch
	// DigestMismatch means the SHA256 digest differs from the descriptor.
	DigestMismatch
)

func (r VerificationResult) String() string {
	switch r {
	case Valid:
		return "valid"
	case SizeMismatch:
		return "size mismatch"
	case DigestMismatch:
		return "digest mismatch"
	default:
		return "unknown"
	}
}

// Verify checks data against the expected SHA256 digest and byte size. It is
// a pure function: same inputs, same result. Zero-length input verifies like
// any other, so an empty placeholder parameter with a matching digest of the
// empty string is Valid.
func Verify(data []byte, digest types.HexBytes, size int64) VerificationResult {
	if int64(len(data)) != size {
		return SizeMismatch
	}
	sum := sha256.Sum256(data)
	if subtle.ConstantTimeCompare(sum[:], digest) != 1 {
		return DigestMismatch
	}
	return Valid
}

// Digest returns the SHA256 digest of data.
func Digest(data []byte) types.HexBytes {
	sum := sha256.Sum256(data)
	return sum[:]
}
