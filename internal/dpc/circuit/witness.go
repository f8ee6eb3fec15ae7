package circuit

import (
	"math/big"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/sw_bls12377"

	"github.com/veridpc/utxocircuit/internal/dpc/dpcerr"
	"github.com/veridpc/utxocircuit/internal/dpc/gadgets"
	"github.com/veridpc/utxocircuit/internal/dpc/native"
	"github.com/veridpc/utxocircuit/internal/dpc/params"
	"github.com/veridpc/utxocircuit/internal/dpc/types"
)

func feVar(e fr.Element) frontend.Variable {
	b := new(big.Int)
	e.BigInt(b)
	return b
}

func boolVar(b bool) frontend.Variable {
	if b {
		return 1
	}
	return 0
}

func recordOpeningVar(ro *types.RecordOpening) gadgets.RecordOpeningVar {
	var payload [params.PayloadLen]frontend.Variable
	for i := range payload {
		payload[i] = feVar(ro.Payload.Data[i])
	}
	return gadgets.RecordOpeningVar{
		Addr:     feVar(ro.Addr),
		Payload:  payload,
		IsDummy:  boolVar(ro.IsDummy),
		PidBirth: feVar(ro.PidBirth),
		PidDeath: feVar(ro.PidDeath),
		Nonce:    feVar(ro.Nonce),
		Blinding: feVar(ro.Blinding),
	}
}

func noteInputVar(in *types.NoteInput) NoteInputVar {
	var siblings [params.TreeDepth]frontend.Variable
	for i := range siblings {
		siblings[i] = feVar(in.AccMemberWit.Siblings[i])
	}
	return NoteInputVar{
		RecordOpening:  recordOpeningVar(&in.RecordOpening),
		Siblings:       siblings,
		Uid:            new(big.Int).SetUint64(in.AccMemberWit.Uid),
		Ak:             sw_bls12377.NewG1Affine(in.ProofGenKey.Ak),
		Nk:             feVar(in.ProofGenKey.Nk),
		AuthRandomizer: sw_bls12377.NewG1Affine(in.AuthRandomizer),
		DiversifierRnd: feVar(in.DiversifierRnd),
	}
}

// Assign builds a fully-populated UTXOCircuit usable as a gnark witness
// assignment from a native witness and its matching public input. Its only
// shape validation is a length check: mismatched lengths between
// w.Inputs/w.OutputOpenings and pub.InputNullifiers/pub.OutputCommitments
// are returned as an InternalError of kind shape.
func Assign(w *types.DPCUtxoWitness, pub *types.DPCUtxoPublicInput) (*UTXOCircuit, error) {
	n := w.N()
	if len(pub.InputNullifiers) != n || len(pub.OutputCommitments) != n || len(w.OutputOpenings) != n {
		return nil, dpcerr.Shape("witness/public-input length mismatch: n=%d nullifiers=%d commitments=%d outputs=%d",
			n, len(pub.InputNullifiers), len(pub.OutputCommitments), len(w.OutputOpenings))
	}

	c := NewUTXOCircuit(n - 1)

	for i := range w.Inputs {
		c.Inputs[i] = noteInputVar(&w.Inputs[i])
		c.Nullifiers[i] = feVar(pub.InputNullifiers[i])
	}
	for j := range w.OutputOpenings {
		c.OutputOpenings[j] = recordOpeningVar(&w.OutputOpenings[j])
		c.OutputCommitments[j] = feVar(pub.OutputCommitments[j])
	}
	for k := 0; k < params.MemoLen; k++ {
		c.Memo[k] = feVar(pub.Memo[k])
	}

	c.CommitmentPredicates = feVar(pub.CommitmentPredicates)
	c.CommitmentLocalData = feVar(pub.CommitmentLocalData)
	c.Root = feVar(pub.Root)
	c.Fee = feVar(pub.Fee)
	c.AuthVerificationKey = sw_bls12377.NewG1Affine(pub.AuthVerificationKey)
	c.BlindingLocalData = feVar(w.BlindingLocalData)
	c.BlindingPredicates = feVar(w.BlindingPredicates)

	return c, nil
}

// derivePublicInput recomputes the public-input record that a witness
// entails (nullifiers, output commitments, authorization verification key,
// local-data and predicates commitments), by calling the same off-circuit
// twins the circuit itself uses, for use by BuildForPreprocessing.
func derivePublicInput(w *types.DPCUtxoWitness, root fr.Element, fee fr.Element, memo [params.MemoLen]fr.Element) *types.DPCUtxoPublicInput {
	pub := types.FromWitness(w, root)
	pub.Fee = fee
	pub.Memo = memo

	authKeys := make([]bls12377.G1Affine, 0, len(w.Inputs))
	for i := range w.Inputs {
		pub.InputNullifiers[i] = native.Nullify(&w.Inputs[i].RecordOpening, w.Inputs[i].ProofGenKey.Nk)
		authKeys = append(authKeys, w.Inputs[i].ProofGenKey.Ak, w.Inputs[i].AuthRandomizer)
	}
	for j := range w.OutputOpenings {
		pub.OutputCommitments[j] = native.DeriveCommitment(&w.OutputOpenings[j])
	}
	pub.AuthVerificationKey = native.AddAuthKeys(authKeys...)

	localData := make([]fr.Element, 0, 2*len(w.Inputs)+params.MemoLen)
	for i := range w.Inputs {
		localData = append(localData, native.DeriveCommitment(&w.Inputs[i].RecordOpening))
	}
	localData = append(localData, pub.OutputCommitments...)
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
