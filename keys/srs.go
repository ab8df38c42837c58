package keys

import (
	"context"

	"github.com/consensys/gnark-crypto/kzg"

	"github.com/poly-layer/snarkVM/config"
	"github.com/poly-layer/snarkVM/parameters"
	"github.com/poly-layer/snarkVM/types"
)

// UniversalSRS is the descriptor of the universal KZG structured reference
// string produced by the trusted setup ceremony. It backs every circuit of
// the credits curve, so it is by far the largest parameter.
var UniversalSRS = &parameters.Descriptor{
	Name:      "universal.srs",
	Hash:      types.HexStringToHexBytesMustUnmarshal(config.UniversalSRSHash),
	Size:      config.UniversalSRSSize,
	RemoteURL: config.UniversalSRSURL,
}

// ResolveSRS resolves and decodes the universal structured reference string
// through the registry.
func ResolveSRS(ctx context.Context, reg *parameters.Registry) (kzg.SRS, error) {
	data, err := reg.Resolve(ctx, UniversalSRS)
	if err != nil {
		return nil, err
	}
	return DecodeSRS(CreditsCurve, data)
}
