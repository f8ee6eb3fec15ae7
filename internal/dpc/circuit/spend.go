package circuit

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/sw_bls12377"

	"github.com/veridpc/utxocircuit/internal/dpc/gadgets"
	"github.com/veridpc/utxocircuit/internal/dpc/params"
)

// NoteInputVar is the in-circuit counterpart of types.NoteInput.
type NoteInputVar struct {
	RecordOpening  gadgets.RecordOpeningVar
	Siblings       [params.TreeDepth]frontend.Variable
	Uid            frontend.Variable
	Ak             sw_bls12377.G1Affine
	Nk             frontend.Variable
	AuthRandomizer sw_bls12377.G1Affine
	DiversifierRnd frontend.Variable
}

// proveSpend emits the per-input constraints of a spend: booleanity of
// is_dummy, the record commitment, the Merkle membership check
// (bypassable by is_dummy), the fee-slot hard constraints (unconditional,
// only when isFee), the nullifier check (bypassable), the authorization
// randomization (never bypassed), and the diversifier check (bypassable).
// It returns the derived record commitment and the randomized
// authorization key, for the caller to fold into local data and the
// authorization-key aggregate respectively.
func proveSpend(api frontend.API, in *NoteInputVar, publicNullifier, publicRoot frontend.Variable, isFee bool) (rc frontend.Variable, akRand sw_bls12377.G1Affine) {
	ro := &in.RecordOpening

	// 1. Booleanity.
	api.AssertIsBoolean(ro.IsDummy)

	// 2. Commitment.
	rc = ro.DeriveCommitment(api)

	// 3. Membership root.
	rDerived := gadgets.MerkleRecompute(api, in.Uid, rc, in.Siblings)

	// 4. Fee-input hard constraints (unconditional, only when isFee).
	if isFee {
		api.AssertIsEqual(ro.IsDummy, 0)
		api.AssertIsEqual(ro.Payload[0], params.NativeAssetCodeBigInt())
	}

	// 5. Membership bypass.
	correctRoot := api.IsZero(api.Sub(rDerived, publicRoot))
	api.AssertIsEqual(api.Or(ro.IsDummy, correctRoot), 1)

	// 6. Nullifier bypass.
	nullifier := ro.Nullify(api, in.Nk)
	correctNullifier := api.IsZero(api.Sub(nullifier, publicNullifier))
	api.AssertIsEqual(api.Or(ro.IsDummy, correctNullifier), 1)

	// 7. Authorization randomization, never bypassed.
	akRand = gadgets.AddUnified(api, in.Ak, in.AuthRandomizer)

	// 8. Diversifier bypass.
	diversifier := gadgets.DeriveDiversifier(api, in.Nk, in.DiversifierRnd)
	correctDiversifier := api.IsZero(api.Sub(diversifier, ro.Addr))
	api.AssertIsEqual(api.Or(ro.IsDummy, correctDiversifier), 1)

	return rc, akRand
}
