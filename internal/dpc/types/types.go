// Package types holds the native (off-circuit) data model of a UTXO
// transaction: record openings, note inputs, accumulator witnesses, and the
// witness/public-input pair threaded through build.
package types

import (
	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"

	"github.com/veridpc/utxocircuit/internal/dpc/params"
)

// Payload is the application-defined record content: an asset type code
// followed by fixed application data. By convention data[0] is the asset
// type and data[1] is the amount; the remaining slots are free-form.
type Payload struct {
	Data [params.PayloadLen]fr.Element
}

// AssetType returns the payload's asset type code (data[0]).
func (p *Payload) AssetType() fr.Element {
	return p.Data[0]
}

// Amount returns the payload's amount field (data[1]).
func (p *Payload) Amount() fr.Element {
	return p.Data[1]
}

// IsNativeAsset reports whether this payload's asset type is the native
// asset used for fee accounting.
func (p *Payload) IsNativeAsset() bool {
	native := params.NativeAssetCode()
	return p.Data[0].Equal(&native)
}

// ProofGenKey is the pair of keys a spender holds over a record: ak, an
// embedded-curve point (the authorization key), and nk, a field element
// (the nullifier key). Only nk ever participates in a nullifier
// derivation; ak is randomized per spend by an authorization randomizer
// and aggregated across every input in a transaction.
type ProofGenKey struct {
	Ak bls12377.G1Affine
	Nk fr.Element
}

// RecordOpening is the full plaintext content of a record.
type RecordOpening struct {
	Addr       fr.Element // diversified address (x-coordinate-like scalar)
	Payload    Payload
	IsDummy    bool
	PidBirth   fr.Element
	PidDeath   fr.Element
	Nonce      fr.Element
	Blinding   fr.Element
}

// AccMemberWitness is a Merkle authentication path proving a commitment's
// membership in the record-commitment accumulator.
type AccMemberWitness struct {
	Root     fr.Element
	Siblings [params.TreeDepth]fr.Element
	// Uid is the leaf position; its low TreeDepth bits give, level by
	// level, whether the current node is a left or right child.
	Uid uint64
}

// NoteInput bundles everything prove_spend needs about one consumed
// record: its opening, its Merkle witness, a reference to the owner's
// proof-generation key, an authorization randomizer (a group element
// added into ak before aggregation), and a diversifier randomizer (used to
// re-derive the owner's diversified address).
type NoteInput struct {
	RecordOpening  RecordOpening
	AccMemberWit   AccMemberWitness
	ProofGenKey    ProofGenKey
	AuthRandomizer bls12377.G1Affine
	DiversifierRnd fr.Element
}

// DPCUtxoWitness is the full private witness passed to build: the consumed
// note inputs (index 0 is the fee input) and the openings of the newly
// created records (index 0 is the fee-change output), plus the blinding
// factors for the two commitments build produces.
type DPCUtxoWitness struct {
	Inputs            []NoteInput
	OutputOpenings    []RecordOpening
	BlindingLocalData fr.Element
	BlindingPredicates fr.Element
}

// N returns the shared input/output count n.
func (w *DPCUtxoWitness) N() int {
	return len(w.Inputs)
}

// Dummy builds a fully-dummy witness with the given non-fee input count:
// one dummy NoteInput per input slot (including the fee slot) and one
// dummy RecordOpening per output slot. It reproduces the same shape a real
// witness has so that build and BuildForPreprocessing walk an identical
// constraint path.
func Dummy(nonFeeInputSize int) *DPCUtxoWitness {
	n := nonFeeInputSize + 1
	w := &DPCUtxoWitness{
		Inputs:         make([]NoteInput, n),
		OutputOpenings: make([]RecordOpening, n),
	}
	for i := range w.Inputs {
		w.Inputs[i] = NoteInput{RecordOpening: RecordOpening{IsDummy: true}}
	}
	for i := range w.OutputOpenings {
		w.OutputOpenings[i] = RecordOpening{IsDummy: true}
	}
	return w
}

// DPCUtxoPublicInput is the stable, ordered set of values exposed to the
// verifier. The concrete field order here is not significant for this Go
// struct, but the order in which circuit.UTXOCircuit declares its public
// fields, which lays these out into the constraint system's public-input
// vector, IS the external ABI (see internal/dpc/circuit).
type DPCUtxoPublicInput struct {
	InputNullifiers  []fr.Element
	OutputCommitments []fr.Element
	CommitmentPredicates fr.Element
	CommitmentLocalData  fr.Element
	Fee  fr.Element
	Root fr.Element
	Memo [params.MemoLen]fr.Element
	AuthVerificationKey bls12377.G1Affine
}

// FromWitness allocates the public input skeleton for a witness: the given
// root, nullifier and output-commitment slices of length n left zeroed,
// zero fee, zeroed memo, zero local-data and predicates commitments, and
// the authorization verification key set to the neutral point (0, 0). It
// computes nothing from the witness beyond n; circuit.derivePublicInput
// fills in the values derived through package native.
func FromWitness(w *DPCUtxoWitness, root fr.Element) *DPCUtxoPublicInput {
	pub := &DPCUtxoPublicInput{
		InputNullifiers:   make([]fr.Element, w.N()),
		OutputCommitments: make([]fr.Element, w.N()),
		Root:              root,
	}
	pub.AuthVerificationKey.X.SetZero()
	pub.AuthVerificationKey.Y.SetZero()
	return pub
}
