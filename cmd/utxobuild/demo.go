// demo.go - Builds the "happy path" sample transaction used by main: one
// fee input, one real non-fee input, one dummy input; a fee-change output,
// one real non-fee output, one dummy output. The fee input and the
// non-fee input are placed as the two leaves of a shared depth-32 tree
// (sibling zero at every level but the first) so both satisfy membership
// against one public root.
package main

import (
	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"

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

// openRecord derives the owner address and randomness for a record opening
// owned by msk, leaving the caller to set payload/is_dummy/pid/nonce.
func openRecord(msk *keys.MasterSpendingKey) (types.RecordOpening, types.ProofGenKey, fr.Element, bls12377.G1Affine, error) {
	pgk, err := msk.DeriveProofGenKey()
	if err != nil {
		return types.RecordOpening{}, types.ProofGenKey{}, fr.Element{}, bls12377.G1Affine{}, err
	}
	div, err := keys.RandomFieldElement()
	if err != nil {
		return types.RecordOpening{}, types.ProofGenKey{}, fr.Element{}, bls12377.G1Affine{}, err
	}
	authRand, err := keys.RandomAuthRandomizer()
	if err != nil {
		return types.RecordOpening{}, types.ProofGenKey{}, fr.Element{}, bls12377.G1Affine{}, err
	}
	blinding, err := keys.RandomFieldElement()
	if err != nil {
		return types.RecordOpening{}, types.ProofGenKey{}, fr.Element{}, bls12377.G1Affine{}, err
	}
	ro := types.RecordOpening{
		Addr:     keys.DeriveDiversifiedAddress(pgk, div),
		Blinding: blinding,
	}
	return ro, pgk, div, authRand, nil
}

func buildOutput(payload types.Payload, isDummy bool, pidBirth fr.Element) (types.RecordOpening, error) {
	blinding, err := keys.RandomFieldElement()
	if err != nil {
		return types.RecordOpening{}, err
	}
	addr, err := keys.RandomFieldElement()
	if err != nil {
		return types.RecordOpening{}, err
	}
	return types.RecordOpening{
		Addr:     addr,
		Payload:  payload,
		IsDummy:  isDummy,
		PidBirth: pidBirth,
		Blinding: blinding,
	}, nil
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

// pairSiblings builds the sibling path for a two-leaf subtree embedded at
// the bottom of a depth-32 tree: level 0's sibling is the other leaf's
// commitment, every level above is zero. uid's only meaningful bit is
// bit 0 (0 for the left leaf, 1 for the right).
func pairSiblings(other fr.Element) [params.TreeDepth]fr.Element {
	var s [params.TreeDepth]fr.Element
	s[0] = other
	return s
}

// happyPathTransaction builds a witness and matching public input for the
// end-to-end scenario: fee input amount 15, one non-fee input of asset 3,
// one dummy input; fee-change output amount 10, one non-fee output of
// asset 3, one dummy output; fee = 5, empty (zeroed) memo.
func happyPathTransaction() (*types.DPCUtxoWitness, *types.DPCUtxoPublicInput, error) {
	msk, err := keys.NewMasterSpendingKey()
	if err != nil {
		return nil, nil, err
	}

	feeRo, feePgk, feeDiv, feeAuthRand, err := openRecord(msk)
	if err != nil {
		return nil, nil, err
	}
	feeRo.Payload = nativePayload(15)

	realRo, realPgk, realDiv, realAuthRand, err := openRecord(msk)
	if err != nil {
		return nil, nil, err
	}
	realRo.Payload = assetPayload(3, 100)
	realRo.PidDeath = feVal(42)

	dummyRo, dummyPgk, dummyDiv, dummyAuthRand, err := openRecord(msk)
	if err != nil {
		return nil, nil, err
	}
	dummyRo.IsDummy = true

	rcFee := native.DeriveCommitment(&feeRo)
	rcReal := native.DeriveCommitment(&realRo)

	feeSiblings := pairSiblings(rcReal)
	realSiblings := pairSiblings(rcFee)
	root := native.MerkleRecompute(0, rcFee, feeSiblings)

	w := &types.DPCUtxoWitness{
		Inputs: []types.NoteInput{
			{
				RecordOpening:  feeRo,
				AccMemberWit:   types.AccMemberWitness{Root: root, Siblings: feeSiblings, Uid: 0},
				ProofGenKey:    feePgk,
				AuthRandomizer: feeAuthRand,
				DiversifierRnd: feeDiv,
			},
			{
				RecordOpening:  realRo,
				AccMemberWit:   types.AccMemberWitness{Root: root, Siblings: realSiblings, Uid: 1},
				ProofGenKey:    realPgk,
				AuthRandomizer: realAuthRand,
				DiversifierRnd: realDiv,
			},
			{
				RecordOpening:  dummyRo,
				AccMemberWit:   types.AccMemberWitness{Root: root, Uid: 0},
				ProofGenKey:    dummyPgk,
				AuthRandomizer: dummyAuthRand,
				DiversifierRnd: dummyDiv,
			},
		},
	}
	w.BlindingLocalData, err = keys.RandomFieldElement()
	if err != nil {
		return nil, nil, err
	}
	w.BlindingPredicates, err = keys.RandomFieldElement()
	if err != nil {
		return nil, nil, err
	}

	firstNullifier := native.Nullify(&w.Inputs[0].RecordOpening, w.Inputs[0].ProofGenKey.Nk)

	feeChangeOutput, err := buildOutput(nativePayload(10), false, fr.Element{})
	if err != nil {
		return nil, nil, err
	}
	feeChangeOutput.Nonce = native.DeriveOutputNonce(0, firstNullifier)

	realOutput, err := buildOutput(assetPayload(3, 100), false, feVal(42))
	if err != nil {
		return nil, nil, err
	}
	realOutput.Nonce = native.DeriveOutputNonce(1, firstNullifier)

	dummyOutput, err := buildOutput(types.Payload{}, true, fr.Element{})
	if err != nil {
		return nil, nil, err
	}
	dummyOutput.Nonce = native.DeriveOutputNonce(2, firstNullifier)

	w.OutputOpenings = []types.RecordOpening{feeChangeOutput, realOutput, dummyOutput}

	pub := &types.DPCUtxoPublicInput{
		InputNullifiers:   make([]fr.Element, len(w.Inputs)),
		OutputCommitments: make([]fr.Element, len(w.OutputOpenings)),
		Root:              root,
		Fee:               feVal(5),
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

	return w, pub, nil
}
