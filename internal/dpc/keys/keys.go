// Package keys stands in for the key-derivation / address-derivation
// hierarchy that spec §1 treats as an external collaborator: a pure
// function producing a proof-generation key and diversified addresses.
// The hierarchy's internals (master spending key, incoming viewing key
// derivation, BIP-style paths) are out of scope; only the shape of its
// output — what the circuit consumes — is modeled here.
package keys

import (
	"math/big"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	bls12377fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"

	"github.com/veridpc/utxocircuit/internal/dpc/native"
	"github.com/veridpc/utxocircuit/internal/dpc/types"
)

// MasterSpendingKey is the root secret from which a proof-generation key
// is derived. It is opaque to the circuit: only the derived ProofGenKey
// ever reaches a witness.
type MasterSpendingKey struct {
	sk bls12377fr.Element
}

// NewMasterSpendingKey draws a fresh random spending key.
func NewMasterSpendingKey() (*MasterSpendingKey, error) {
	var sk bls12377fr.Element
	if _, err := sk.SetRandom(); err != nil {
		return nil, err
	}
	return &MasterSpendingKey{sk: sk}, nil
}

// DeriveProofGenKey derives the (ak, nk) pair from a master spending key.
// ak = sk·G on the embedded curve; nk is taken as the low-order field
// element of a hash of sk, standing in for the hierarchy's own nk
// derivation.
func (m *MasterSpendingKey) DeriveProofGenKey() (types.ProofGenKey, error) {
	_, _, g1Gen, _ := bls12377.Generators()
	var ak bls12377.G1Affine
	skBig := new(big.Int)
	m.sk.BigInt(skBig)
	ak.ScalarMultiplication(&g1Gen, skBig)

	var skField fr.Element
	skField.SetBigInt(skBig)
	nk := native.Hash(skField)

	return types.ProofGenKey{Ak: ak, Nk: nk}, nil
}

// DeriveDiversifiedAddress computes the diversified address a record's
// owner publishes for a given diversifier randomizer, using the same
// derivation as native.DeriveDiversifier so that a record opening's addr
// field and a spend's recomputed diversifier agree.
func DeriveDiversifiedAddress(pgk types.ProofGenKey, rhoDiv fr.Element) fr.Element {
	return native.DeriveDiversifier(pgk.Nk, rhoDiv)
}

// RandomFieldElement draws a uniformly random element of the inner scalar
// field, used for randomizers (blinding factors and diversifier
// randomizers). Authorization randomizers draw their embedded-curve
// scalar separately (see RandomAuthRandomizer).
func RandomFieldElement() (fr.Element, error) {
	var e fr.Element
	_, err := e.SetRandom()
	return e, err
}

// RandomAuthRandomizer draws a random embedded-curve point to use as an
// authorization randomizer ρ_auth, by scalar-multiplying the generator
// with a random scalar.
func RandomAuthRandomizer() (bls12377.G1Affine, error) {
	var s bls12377fr.Element
	if _, err := s.SetRandom(); err != nil {
		return bls12377.G1Affine{}, err
	}
	_, _, g1Gen, _ := bls12377.Generators()
	var p bls12377.G1Affine
	sBig := new(big.Int)
	s.BigInt(sBig)
	p.ScalarMultiplication(&g1Gen, sBig)
	return p, nil
}
