package parameters

import (
	_ "embed"

	"github.com/poly-layer/snarkVM/types"
)

// Small parameters ship inside the binary so constrained targets (wasm,
// no-network builds) need no cache and no fetcher to use them. Embedded bytes
// are still verified on every load: the digest pins the build input, and a
// mismatch means the build itself is broken.

//go:embed embedded/genesis.block
var genesisBlock []byte

// genesisBlockHash and genesisBlockSize pin the embedded genesis block bytes.
const (
	genesisBlockHash = "9a4bc0db933e222642c33f1c097126f3e656fa7bef82466712e6c6c6395f6a0e"
	genesisBlockSize = 768
)

// GenesisBlock returns the descriptor of the build-time embedded genesis
// block artifact.
func GenesisBlock() *Descriptor {
	return &Descriptor{
		Name:     "genesis-block",
		Hash:     types.HexStringToHexBytesMustUnmarshal(genesisBlockHash),
		Size:     genesisBlockSize,
		Embedded: genesisBlock,
	}
}
