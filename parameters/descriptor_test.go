package parameters

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDescriptorValidate(t *testing.T) {
	c := qt.New(t)
	data := []byte("bytes")
	digest := Digest(data)

	c.Run("remote ok", func(c *qt.C) {
		d := &Descriptor{Name: "x", Hash: digest, Size: 5, RemoteURL: "https://example/x"}
		c.Assert(d.Validate(), qt.IsNil)
		c.Assert(d.IsEmbedded(), qt.IsFalse)
	})

	c.Run("embedded ok", func(c *qt.C) {
		d := &Descriptor{Name: "x", Hash: digest, Size: 5, Embedded: data}
		c.Assert(d.Validate(), qt.IsNil)
		c.Assert(d.IsEmbedded(), qt.IsTrue)
	})

	c.Run("rejects malformed descriptors", func(c *qt.C) {
		for _, d := range []*Descriptor{
			{Hash: digest, Size: 5, Embedded: data},                                        // no name
			{Name: "x", Hash: digest[:10], Size: 5, Embedded: data},                        // short digest
			{Name: "x", Hash: digest, Size: 5},                                             // no source
			{Name: "x", Hash: digest, Size: 5, Embedded: data, RemoteURL: "https://ex/x"},  // two sources
		} {
			c.Assert(d.Validate(), qt.IsNotNil, qt.Commentf("%+v", d))
		}
	})
}
