// Package circuit wires the hash, commitment, Merkle, record-opening, and
// key-derivation gadgets into the spend and output subcircuits, and those
// in turn into the top-level UTXO transaction circuit.
package circuit

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/sw_bls12377"

	"github.com/veridpc/utxocircuit/internal/dpc/gadgets"
	"github.com/veridpc/utxocircuit/internal/dpc/params"
)

// UTXOCircuit is the top-level UTXO transaction circuit. Its public
// fields are declared in exactly the order the external ABI requires:
// nullifiers, output commitments, predicates commitment, local-data
// commitment, root, fee, memo, authorization-verification-key. Reordering
// these fields changes the public-input vector layout and breaks every
// existing verifier.
type UTXOCircuit struct {
	Nullifiers           []frontend.Variable          `gnark:",public"`
	OutputCommitments    []frontend.Variable          `gnark:",public"`
	CommitmentPredicates frontend.Variable            `gnark:",public"`
	CommitmentLocalData  frontend.Variable            `gnark:",public"`
	Root                 frontend.Variable            `gnark:",public"`
	Fee                  frontend.Variable            `gnark:",public"`
	Memo                 [params.MemoLen]frontend.Variable `gnark:",public"`
	AuthVerificationKey  sw_bls12377.G1Affine          `gnark:",public"`

	Inputs             []NoteInputVar
	OutputOpenings     []gadgets.RecordOpeningVar
	BlindingLocalData  frontend.Variable
	BlindingPredicates frontend.Variable

	nonFeeInputSize int
}

// NewUTXOCircuit allocates an UTXOCircuit shaped for nonFeeInputSize
// non-fee inputs/outputs (n = nonFeeInputSize + 1 total slots, including
// the fee slot at index 0). The returned circuit has correctly-sized
// slices but no assigned values and serves as the compile-time circuit
// definition (see Compile). Assign builds an assigned circuit of the same
// shape, from a real transaction's witness or, via BuildForPreprocessing,
// from a fully-dummy one.
func NewUTXOCircuit(nonFeeInputSize int) *UTXOCircuit {
	n := nonFeeInputSize + 1
	return &UTXOCircuit{
		Nullifiers:        make([]frontend.Variable, n),
		OutputCommitments: make([]frontend.Variable, n),
		Inputs:            make([]NoteInputVar, n),
		OutputOpenings:    make([]gadgets.RecordOpeningVar, n),
		nonFeeInputSize:   nonFeeInputSize,
	}
}

// Define emits the full constraint system for a UTXO transaction, per the
// nine ordered steps of the top-level circuit design: it wires each input
// through proveSpend, aggregates authorization keys, wires each output
// through proveOutput, enforces fee balance, and binds the local-data and
// predicates commitments.
func (c *UTXOCircuit) Define(api frontend.API) error {
	n := len(c.Inputs)

	// Step 2: neutral accumulator, local data buffer, is_fee flag.
	akAgg := gadgets.NeutralPoint()
	localData := make([]frontend.Variable, 0, 2*n+params.MemoLen)

	// Step 3: spend subcircuit per input.
	for idx := range c.Inputs {
		isFee := idx == 0
		rc, akRand := proveSpend(api, &c.Inputs[idx], c.Nullifiers[idx], c.Root, isFee)
		localData = append(localData, rc)
		akAgg = gadgets.AddUnified(api, akAgg, akRand)
	}

	// Step 4: authorization-key aggregate must match the public key.
	gadgets.AssertEqual(api, akAgg, c.AuthVerificationKey)

	// Step 5: output subcircuit per output.
	for j := range c.OutputOpenings {
		isFeeChange := j == 0
		rc := proveOutput(api, &c.OutputOpenings[j], c.OutputCommitments[j], isFeeChange, j, c.Nullifiers[0])
		localData = append(localData, rc)
	}

	// Step 6: fee balance, field subtraction (no range check).
	feeComputed := api.Sub(c.Inputs[0].RecordOpening.Payload[1], c.OutputOpenings[0].Payload[1])
	api.AssertIsEqual(feeComputed, c.Fee)

	// Step 7: local-data binding.
	localData = append(localData, c.Memo[:]...)
	derivedLocalData := gadgets.Com(api, c.BlindingLocalData, localData...)
	api.AssertIsEqual(derivedLocalData, c.CommitmentLocalData)

	// Step 8: predicates binding — death-pids of non-fee inputs, then
	// birth-pids of non-fee outputs, in that order, skipping the fee slot
	// on both sides.
	pids := make([]frontend.Variable, 0, 2*(n-1))
	for idx := 1; idx < n; idx++ {
		pids = append(pids, c.Inputs[idx].RecordOpening.PidDeath)
	}
	for j := 1; j < n; j++ {
		pids = append(pids, c.OutputOpenings[j].PidBirth)
	}
	derivedPredicates := gadgets.Com(api, c.BlindingPredicates, pids...)
	api.AssertIsEqual(derivedPredicates, c.CommitmentPredicates)

	// Step 9: finalization for arithmetization happens in frontend.Compile
	// once Define returns.
	return nil
}
