package keys

import (
	"context"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"

	"github.com/poly-layer/snarkVM/parameters"
)

// Set groups the three parameters of one snarkVM function: the circuit
// definition, the proving key and the verifying key. All byte acquisition
// goes through the caller's Registry, so every component is fetched and
// verified at most once per process regardless of how many sets reference it.
type Set struct {
	name     string
	curve    ecc.ID
	circuit  *parameters.Descriptor
	prover   *parameters.Descriptor
	verifier *parameters.Descriptor
}

// NewSet declares the parameter set of one function.
func NewSet(name string, curve ecc.ID, circuit, prover, verifier *parameters.Descriptor) *Set {
	return &Set{
		name:     name,
		curve:    curve,
		circuit:  circuit,
		prover:   prover,
		verifier: verifier,
	}
}

// Name returns the function name the set belongs to.
func (s *Set) Name() string { return s.name }

// Curve returns the curve the keys are defined over.
func (s *Set) Curve() ecc.ID { return s.curve }

// Descriptors returns the descriptors of every component of the set.
func (s *Set) Descriptors() []*parameters.Descriptor {
	return []*parameters.Descriptor{s.circuit, s.prover, s.verifier}
}

// Download resolves every component of the set through the registry,
// fetching and verifying whatever is not yet available locally. The decoded
// structures are not built here; call the typed accessors when needed.
func (s *Set) Download(ctx context.Context, reg *parameters.Registry) error {
	for _, d := range s.Descriptors() {
		if _, err := reg.Resolve(ctx, d); err != nil {
			return fmt.Errorf("download %s parameters: %w", s.name, err)
		}
	}
	return nil
}

// ConstraintSystem resolves and decodes the circuit definition.
func (s *Set) ConstraintSystem(ctx context.Context, reg *parameters.Registry) (constraint.ConstraintSystem, error) {
	data, err := reg.Resolve(ctx, s.circuit)
	if err != nil {
		return nil, err
	}
	return DecodeConstraintSystem(s.curve, data)
}

// ProvingKey resolves and decodes the proving key.
func (s *Set) ProvingKey(ctx context.Context, reg *parameters.Registry) (groth16.ProvingKey, error) {
	data, err := reg.Resolve(ctx, s.prover)
	if err != nil {
		return nil, err
	}
	return DecodeProvingKey(s.curve, data)
}

// VerifyingKey resolves and decodes the verifying key.
func (s *Set) VerifyingKey(ctx context.Context, reg *parameters.Registry) (groth16.VerifyingKey, error) {
	data, err := reg.Resolve(ctx, s.verifier)
	if err != nil {
		return nil, err
	}
	return DecodeVerifyingKey(s.curve, data)
}
