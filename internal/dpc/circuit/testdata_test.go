package circuit_test

import (
	"testing"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/stretchr/testify/require"

	"github.com/veridpc/utxocircuit/internal/dpc/keys"
	"github.com/veridpc/utxocircuit/internal/dpc/native"
	"github.com/veridpc/utxocircuit/internal/dpc/params"
	"github.com/veridpc/utxocircuit/internal/dpc/types"
)

func feVal(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

func nativePayload(amount uint64) types.Payload {
	var p types.Payload
	p.Data[0] = params.NativeAssetCode()
	p.Data[1] = feVal(amount)
	return p
}

func assetPayload(assetCode, amount uint64) types.Payload {
	var p types.Payload
	p.Data[0] = feVal(assetCode)
	p.Data[1] = feVal(amount)
	return p
}

func pairSiblings(other fr.Element) [params.TreeDepth]fr.Element {
	var s [params.TreeDepth]fr.Element
	s[0] = other
	return s
}

type openedRecord struct {
	ro       types.RecordOpening
	pgk      types.ProofGenKey
	div      fr.Element
	authRand bls12377.G1Affine
}

func openRecord(t *testing.T, msk *keys.MasterSpendingKey) openedRecord {
	t.Helper()
	pgk, err := msk.DeriveProofGenKey()
	require.NoError(t, err)
	div, err := keys.RandomFieldElement()
	require.NoError(t, err)
	authRand, err := keys.RandomAuthRandomizer()
	require.NoError(t, err)
	blinding, err := keys.RandomFieldElement()
	require.NoError(t, err)
	return openedRecord{
		ro: types.RecordOpening{
			Addr:     keys.DeriveDiversifiedAddress(pgk, div),
			Blinding: blinding,
		},
		pgk:      pgk,
		div:      div,
		authRand: authRand,
	}
}

func buildOutput(t *testing.T, payload types.Payload, isDummy bool, pidBirth fr.Element) types.RecordOpening {
	t.Helper()
	blinding, err := keys.RandomFieldElement()
	require.NoError(t, err)
	addr, err := keys.RandomFieldElement()
	require.NoError(t, err)
	return types.RecordOpening{
		Addr:     addr,
		Payload:  payload,
		IsDummy:  isDummy,
		PidBirth: pidBirth,
		Blinding: blinding,
	}
}

// computePublicInput recomputes every field of the public input that is a
// deterministic function of w, root and fee (zeroed memo), using the same
// off-circuit twins the circuit itself uses. Tests call this once to build
// a known-good public input, and again after mutating a cloned witness
// whose mutation is meant to still be consistent (e.g. flipping is_dummy
// on a note whose Merkle path no longer matches the root).
func computePublicInput(w *types.DPCUtxoWitness, root fr.Element, fee fr.Element) *types.DPCUtxoPublicInput {
	pub := &types.DPCUtxoPublicInput{
		InputNullifiers:   make([]fr.Element, len(w.Inputs)),
		OutputCommitments: make([]fr.Element, len(w.OutputOpenings)),
		Root:              root,
		Fee:               fee,
	}
	authKeys := make([]bls12377.G1Affine, 0, 2*len(w.Inputs))
	for i := range w.Inputs {
		pub.InputNullifiers[i] = native.Nullify(&w.Inputs[i].RecordOpening, w.Inputs[i].ProofGenKey.Nk)
		authKeys = append(authKeys, w.Inputs[i].ProofGenKey.Ak, w.Inputs[i].AuthRandomizer)
	}
	pub.AuthVerificationKey = native.AddAuthKeys(authKeys...)

	for j := range w.OutputOpenings {
		pub.OutputCommitments[j] = native.DeriveCommitment(&w.OutputOpenings[j])
	}

	localData := make([]fr.Element, 0, 2*len(w.Inputs)+params.MemoLen)
	for i := range w.Inputs {
		localData = append(localData, native.DeriveCommitment(&w.Inputs[i].RecordOpening))
	}
	for j := range w.OutputOpenings {
		localData = append(localData, native.DeriveCommitment(&w.OutputOpenings[j]))
	}
	localData = append(localData, pub.Memo[:]...)
	pub.CommitmentLocalData = native.Com(w.BlindingLocalData, localData...)

	pids := make([]fr.Element, 0, 2*(len(w.Inputs)-1))
	for i := 1; i < len(w.Inputs); i++ {
		pids = append(pids, w.Inputs[i].RecordOpening.PidDeath)
	}
	for j := 1; j < len(w.OutputOpenings); j++ {
		pids = append(pids, w.OutputOpenings[j].PidBirth)
	}
	pub.CommitmentPredicates = native.Com(w.BlindingPredicates, pids...)

	return pub
}

// happyPathWitness builds the end-to-end scenario witness and matching
// public input: fee input amount 15, one non-fee input of asset 3 amount
// 100, one dummy input; fee-change output amount 10, one non-fee output
// of asset 3 amount 100, one dummy output; fee = 5, zeroed memo.
func happyPathWitness(t *testing.T) (*types.DPCUtxoWitness, *types.DPCUtxoPublicInput) {
	t.Helper()

	msk, err := keys.NewMasterSpendingKey()
	require.NoError(t, err)

	fee := openRecord(t, msk)
	fee.ro.Payload = nativePayload(15)

	real := openRecord(t, msk)
	real.ro.Payload = assetPayload(3, 100)
	real.ro.PidDeath = feVal(42)

	dummy := openRecord(t, msk)
	dummy.ro.IsDummy = true

	rcFee := native.DeriveCommitment(&fee.ro)
	rcReal := native.DeriveCommitment(&real.ro)

	feeSiblings := pairSiblings(rcReal)
	realSiblings := pairSiblings(rcFee)
	root := native.MerkleRecompute(0, rcFee, feeSiblings)

	w := &types.DPCUtxoWitness{
		Inputs: []types.NoteInput{
			{
				RecordOpening:  fee.ro,
				AccMemberWit:   types.AccMemberWitness{Root: root, Siblings: feeSiblings, Uid: 0},
				ProofGenKey:    fee.pgk,
				AuthRandomizer: fee.authRand,
				DiversifierRnd: fee.div,
			},
			{
				RecordOpening:  real.ro,
				AccMemberWit:   types.AccMemberWitness{Root: root, Siblings: realSiblings, Uid: 1},
				ProofGenKey:    real.pgk,
				AuthRandomizer: real.authRand,
				DiversifierRnd: real.div,
			},
			{
				RecordOpening:  dummy.ro,
				AccMemberWit:   types.AccMemberWitness{Root: root, Uid: 0},
				ProofGenKey:    dummy.pgk,
				AuthRandomizer: dummy.authRand,
				DiversifierRnd: dummy.div,
			},
		},
	}
	var errBL, errBP error
	w.BlindingLocalData, errBL = keys.RandomFieldElement()
	require.NoError(t, errBL)
	w.BlindingPredicates, errBP = keys.RandomFieldElement()
	require.NoError(t, errBP)

	firstNullifier := native.Nullify(&w.Inputs[0].RecordOpening, w.Inputs[0].ProofGenKey.Nk)

	feeChange := buildOutput(t, nativePayload(10), false, fr.Element{})
	feeChange.Nonce = native.DeriveOutputNonce(0, firstNullifier)

	realOut := buildOutput(t, assetPayload(3, 100), false, feVal(42))
	realOut.Nonce = native.DeriveOutputNonce(1, firstNullifier)

	dummyOut := buildOutput(t, types.Payload{}, true, fr.Element{})
	dummyOut.Nonce = native.DeriveOutputNonce(2, firstNullifier)

	w.OutputOpenings = []types.RecordOpening{feeChange, realOut, dummyOut}

	pub := computePublicInput(w, root, feVal(5))

	return w, pub
}

// cloneWitness deep-copies a witness so a test can mutate its copy without
// disturbing the witness another test built from the same happy-path
// helper (slices are shared by default in Go's := copy).
func cloneWitness(w *types.DPCUtxoWitness) *types.DPCUtxoWitness {
	c := &types.DPCUtxoWitness{
		Inputs:             append([]types.NoteInput(nil), w.Inputs...),
		OutputOpenings:     append([]types.RecordOpening(nil), w.OutputOpenings...),
		BlindingLocalData:  w.BlindingLocalData,
		BlindingPredicates: w.BlindingPredicates,
	}
	return c
}

func clonePublicInput(pub *types.DPCUtxoPublicInput) *types.DPCUtxoPublicInput {
	c := *pub
	c.InputNullifiers = append([]fr.Element(nil), pub.InputNullifiers...)
	c.OutputCommitments = append([]fr.Element(nil), pub.OutputCommitments...)
	return &c
}
