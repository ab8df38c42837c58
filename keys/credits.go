package keys

import (
	"github.com/consensys/gnark-crypto/ecc"

	"github.com/poly-layer/snarkVM/config"
	"github.com/poly-layer/snarkVM/parameters"
	"github.com/poly-layer/snarkVM/types"
)

// CreditsCurve is the curve the built-in credits functions are proven over.
const CreditsCurve = ecc.BLS12_377

// Transfer contains the parameters for the transfer function: circuit
// definition, proving key and verifying key.
var Transfer = NewSet("transfer", CreditsCurve,
	&parameters.Descriptor{
		Name:      "transfer.ccs",
		Hash:      types.HexStringToHexBytesMustUnmarshal(config.TransferCircuitHash),
		Size:      config.TransferCircuitSize,
		RemoteURL: config.TransferCircuitURL,
	},
	&parameters.Descriptor{
		Name:      "transfer.pk",
		Hash:      types.HexStringToHexBytesMustUnmarshal(config.TransferProvingKeyHash),
		Size:      config.TransferProvingKeySize,
		RemoteURL: config.TransferProvingKeyURL,
	},
	&parameters.Descriptor{
		Name:      "transfer.vk",
		Hash:      types.HexStringToHexBytesMustUnmarshal(config.TransferVerifyingKeyHash),
		Size:      config.TransferVerifyingKeySize,
		RemoteURL: config.TransferVerifyingKeyURL,
	},
)

// Mint contains the parameters for the mint function.
var Mint = NewSet("mint", CreditsCurve,
	&parameters.Descriptor{
		Name:      "mint.ccs",
		Hash:      types.HexStringToHexBytesMustUnmarshal(config.MintCircuitHash),
		Size:      config.MintCircuitSize,
		RemoteURL: config.MintCircuitURL,
	},
	&parameters.Descriptor{
		Name:      "mint.pk",
		Hash:      types.HexStringToHexBytesMustUnmarshal(config.MintProvingKeyHash),
		Size:      config.MintProvingKeySize,
		RemoteURL: config.MintProvingKeyURL,
	},
	&parameters.Descriptor{
		Name:      "mint.vk",
		Hash:      types.HexStringToHexBytesMustUnmarshal(config.MintVerifyingKeyHash),
		Size:      config.MintVerifyingKeySize,
		RemoteURL: config.MintVerifyingKeyURL,
	},
)

// Fee contains the parameters for the fee function.
var Fee = NewSet("fee", CreditsCurve,
	&parameters.Descriptor{
		Name:      "fee.ccs",
		Hash:      types.HexStringToHexBytesMustUnmarshal(config.FeeCircuitHash),
		Size:      config.FeeCircuitSize,
		RemoteURL: config.FeeCircuitURL,
	},
	&parameters.Descriptor{
		Name:      "fee.pk",
		Hash:      types.HexStringToHexBytesMustUnmarshal(config.FeeProvingKeyHash),
		Size:      config.FeeProvingKeySize,
		RemoteURL: config.FeeProvingKeyURL,
	},
	&parameters.Descriptor{
		Name:      "fee.vk",
		Hash:      types.HexStringToHexBytesMustUnmarshal(config.FeeVerifyingKeyHash),
		Size:      config.FeeVerifyingKeySize,
		RemoteURL: config.FeeVerifyingKeyURL,
	},
)

// AllSets returns every built-in function parameter set.
func AllSets() []*Set {
	return []*Set{Transfer, Mint, Fee}
}
