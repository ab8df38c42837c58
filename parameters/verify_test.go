package parameters

import (
	"crypto/sha256"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestVerify(t *testing.T) {
	c := qt.New(t)

	data := []byte("the quick brown fox jumps over the lazy dog")
	digest := Digest(data)

	c.Run("valid bytes", func(c *qt.C) {
		c.Assert(Verify(data, digest, int64(len(data))), qt.Equals, Valid)
	})

	c.Run("every single-bit mutation is detected", func(c *qt.C) {
		for i := range data {
			for bit := range 8 {
				mutated := make([]byte, len(data))
				copy(mutated, data)
				mutated[i] ^= 1 << bit
				c.Assert(Verify(mutated, digest, int64(len(data))), qt.Equals, DigestMismatch,
					qt.Commentf("byte %d bit %d", i, bit))
			}
		}
	})

	c.Run("size mismatch wins before digest", func(c *qt.C) {
		c.Assert(Verify(data[:len(data)-1], digest, int64(len(data))), qt.Equals, SizeMismatch)
		c.Assert(Verify(append([]byte{}, append(data, 0x00)...), digest, int64(len(data))), qt.Equals, SizeMismatch)
	})

	c.Run("zero-length input verifies like any other", func(c *qt.C) {
		empty := sha256.Sum256(nil)
		c.Assert(Verify(nil, empty[:], 0), qt.Equals, Valid)
		c.Assert(Verify([]byte{}, empty[:], 0), qt.Equals, Valid)
		c.Assert(Verify(nil, digest, 0), qt.Equals, DigestMismatch)
	})

	c.Run("deterministic", func(c *qt.C) {
		c.Assert(Verify(data, digest, int64(len(data))), qt.Equals, Verify(data, digest, int64(len(data))))
	})
}

func TestVerificationResultString(t *testing.T) {
	c := qt.New(t)
	c.Assert(Valid.String(), qt.Equals, "valid")
	c.Assert(SizeMismatch.String(), qt.Equals, "size mismatch")
	c.Assert(DigestMismatch.String(), qt.Equals, "digest mismatch")
}
