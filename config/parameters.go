// Package config provides the compile-time configuration for the snarkVM
// parameter artifacts: remote URLs, SHA256 digests and byte sizes for every
// published proving key, verifying key, circuit definition and setup file.
package config

import "fmt"

const (
	// DefaultParametersBaseURL is the base URL for the parameter artifacts storage
	DefaultParametersBaseURL = "https://parameters.ams3.cdn.digitaloceanspaces.com"
	// DefaultParametersRelease is the release version for the parameter artifacts
	DefaultParametersRelease = "testnet3"
)

var (
	// TransferCircuitURL is the URL for the transfer function circuit definition
	TransferCircuitURL = fmt.Sprintf("%s/%s/%s.ccs", DefaultParametersBaseURL, DefaultParametersRelease, TransferCircuitHash)
	// TransferCircuitHash is the hash of the transfer function circuit definition
	TransferCircuitHash = "5b78ac072197e8391bd8efde9c5a9c1b6e6f8f92a9d0c34cf29ef560aa0f2fd1"
	// TransferCircuitSize is the byte size of the transfer function circuit definition
	TransferCircuitSize = int64(41_384_772)
	// TransferProvingKeyURL is the URL for the transfer proving key
	TransferProvingKeyURL = fmt.Sprintf("%s/%s/%s.pk", DefaultParametersBaseURL, DefaultParametersRelease, TransferProvingKeyHash)
	// TransferProvingKeyHash is the hash of the transfer proving key
	TransferProvingKeyHash = "3c2f1a77f2c8d22ab37dfed8b44a0a02a9d7f0a4d2458c25f1c7d17287e794d3"
	// TransferProvingKeySize is the byte size of the transfer proving key
	TransferProvingKeySize = int64(203_337_556)
	// TransferVerifyingKeyURL is the URL for the transfer verifying key
	TransferVerifyingKeyURL = fmt.Sprintf("%s/%s/%s.vk", DefaultParametersBaseURL, DefaultParametersRelease, TransferVerifyingKeyHash)
	// TransferVerifyingKeyHash is the hash of the transfer verifying key
	TransferVerifyingKeyHash = "9f0b1ede0c53b9f642e53a47a3c0be1fb2675b7d18f53a3c04e4c82c9bd516a8"
	// TransferVerifyingKeySize is the byte size of the transfer verifying key
	TransferVerifyingKeySize = int64(2_972)

	// MintCircuitURL is the URL for the mint function circuit definition
	MintCircuitURL = fmt.Sprintf("%s/%s/%s.ccs", DefaultParametersBaseURL, DefaultParametersRelease, MintCircuitHash)
	// MintCircuitHash is the hash of the mint function circuit definition
	MintCircuitHash = "7e90e12a8c4bdfdbeef9a1d21bf20de41a45d0d3a69fdc2fb6e2ce02e8b9a034"
	// MintCircuitSize is the byte size of the mint function circuit definition
	MintCircuitSize = int64(18_207_444)
	// MintProvingKeyURL is the URL for the mint proving key
	MintProvingKeyURL = fmt.Sprintf("%s/%s/%s.pk", DefaultParametersBaseURL, DefaultParametersRelease, MintProvingKeyHash)
	// MintProvingKeyHash is the hash of the mint proving key
	MintProvingKeyHash = "c40a56fca8af5a2dc9036c1cd2f8f0b0cf53a1b1fb50b83a69fd1e22b86ea2e7"
	// MintProvingKeySize is the byte size of the mint proving key
	MintProvingKeySize = int64(74_163_908)
	// MintVerifyingKeyURL is the URL for the mint verifying key
	MintVerifyingKeyURL = fmt.Sprintf("%s/%s/%s.vk", DefaultParametersBaseURL, DefaultParametersRelease, MintVerifyingKeyHash)
	// MintVerifyingKeyHash is the hash of the mint verifying key
	MintVerifyingKeyHash = "1f2d0a3f07a9e39cbf9c41bf0df1a8525f4f1d71e36bd1d1c4b5ebedc0e25a19"
	// MintVerifyingKeySize is the byte size of the mint verifying key
	MintVerifyingKeySize = int64(2_972)

	// FeeCircuitURL is the URL for the fee function circuit definition
	FeeCircuitURL = fmt.Sprintf("%s/%s/%s.ccs", DefaultParametersBaseURL, DefaultParametersRelease, FeeCircuitHash)
	// FeeCircuitHash is the hash of the fee function circuit definition
	FeeCircuitHash = "0d6c4ab8f9e2d2cf44c68ab441e2d55a1b05df0b53e2acab1e62bb1c7f0934d2"
	// FeeCircuitSize is the byte size of the fee function circuit definition
	FeeCircuitSize = int64(12_620_308)
	// FeeProvingKeyURL is the URL for the fee proving key
	FeeProvingKeyURL = fmt.Sprintf("%s/%s/%s.pk", DefaultParametersBaseURL, DefaultParametersRelease, FeeProvingKeyHash)
	// FeeProvingKeyHash is the hash of the fee proving key
	FeeProvingKeyHash = "aa34cf3b2f9d04b1de2ad02f26015a2dbd44d40b54cf0a291c94f9fd61c8a5b5"
	// FeeProvingKeySize is the byte size of the fee proving key
	FeeProvingKeySize = int64(61_990_436)
	// FeeVerifyingKeyURL is the URL for the fee verifying key
	FeeVerifyingKeyURL = fmt.Sprintf("%s/%s/%s.vk", DefaultParametersBaseURL, DefaultParametersRelease, FeeVerifyingKeyHash)
	// FeeVerifyingKeyHash is the hash of the fee verifying key
	FeeVerifyingKeyHash = "4be1ac06a7d21c35a4a10e03957eb87dca5bdbcf42e443e2cfa754e29ac6f27b"
	// FeeVerifyingKeySize is the byte size of the fee verifying key
	FeeVerifyingKeySize = int64(2_972)

	// UniversalSRSURL is the URL for the universal KZG structured reference string
	UniversalSRSURL = fmt.Sprintf("%s/%s/%s.srs", DefaultParametersBaseURL, DefaultParametersRelease, UniversalSRSHash)
	// UniversalSRSHash is the hash of the universal KZG structured reference string
	UniversalSRSHash = "e82f03dcac3f0a4c23eb966ab2e04dcbbd42af6ff04c1c3c01e0ccbd6b450c88"
	// UniversalSRSSize is the byte size of the universal KZG structured reference string
	UniversalSRSSize = int64(805_306_488)
)
