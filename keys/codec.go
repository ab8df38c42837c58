// Package keys turns validated parameter bytes into typed proof-system
// structures: constraint systems, groth16 proving and verifying keys, and the
// universal KZG structured reference string. It also declares the parameter
// sets of the built-in snarkVM functions (transfer, mint, fee).
//
// Byte-level integrity is the job of the parameters package; this package
// only guarantees that the bytes decode into a structurally valid key.
package keys

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	kzg_bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377/kzg"
	kzg_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/kzg"
	"github.com/consensys/gnark-crypto/kzg"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
)

// DecodeConstraintSystem deserializes a circuit definition for the given curve.
func DecodeConstraintSystem(curve ecc.ID, data []byte) (constraint.ConstraintSystem, error) {
	cs := groth16.NewCS(curve)
	if _, err := cs.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("decode constraint system: %w", err)
	}
	return cs, nil
}

// DecodeProvingKey deserializes a groth16 proving key for the given curve.
func DecodeProvingKey(curve ecc.ID, data []byte) (groth16.ProvingKey, error) {
	pk := groth16.NewProvingKey(curve)
	if _, err := pk.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("decode proving key: %w", err)
	}
	return pk, nil
}

// DecodeVerifyingKey deserializes a groth16 verifying key for the given curve.
func DecodeVerifyingKey(curve ecc.ID, data []byte) (groth16.VerifyingKey, error) {
	vk := groth16.NewVerifyingKey(curve)
	if _, err := vk.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("decode verifying key: %w", err)
	}
	return vk, nil
}

// DecodeSRS deserializes a KZG structured reference string for the given curve.
func DecodeSRS(curve ecc.ID, data []byte) (kzg.SRS, error) {
	var srs kzg.SRS
	switch curve {
	case ecc.BLS12_377:
		srs = &kzg_bls12377.SRS{}
	case ecc.BN254:
		srs = &kzg_bn254.SRS{}
	default:
		return nil, fmt.Errorf("no KZG SRS for curve %s", curve)
	}
	if _, err := srs.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("decode KZG SRS: %w", err)
	}
	return srs, nil
}
