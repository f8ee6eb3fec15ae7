package circuit

import (
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/veridpc/utxocircuit/internal/dpc/dpcerr"
	"github.com/veridpc/utxocircuit/internal/dpc/params"
	"github.com/veridpc/utxocircuit/internal/dpc/types"
)

// Compile arithmetizes the shape of a UTXO transaction circuit for the
// given non-fee input size: variable allocation, gadget wiring, and
// finalization, with no concrete witness values attached. Backend errors
// from frontend.Compile propagate unchanged.
func Compile(nonFeeInputSize int) (constraint.ConstraintSystem, error) {
	circuit := NewUTXOCircuit(nonFeeInputSize)
	return frontend.Compile(ecc.BW6_761.ScalarField(), r1cs.NewBuilder, circuit)
}

// Build produces the fully-assigned UTXOCircuit for a real transaction:
// its witness and matching public input. Shape mismatches are wrapped as
// a dpcerr.InternalError of kind shape; any other error propagates
// unchanged.
func Build(w *types.DPCUtxoWitness, pub *types.DPCUtxoPublicInput) (*UTXOCircuit, error) {
	return Assign(w, pub)
}

// BuildForPreprocessing produces the fixed-shape "preprocessing" circuit
// for a chosen non-fee input size: a fully-dummy witness and its derived
// public input (fee=0, zeroed memo), built through the exact same Assign
// path Build uses, so the emitted constraint system is shape-identical to
// any real transaction with the same n. Any error here indicates a bug,
// since preprocessing on well-formed dummy data should never fail, and is
// wrapped as dpcerr.Preprocessing.
func BuildForPreprocessing(nonFeeInputSize int) (*UTXOCircuit, error) {
	w := types.Dummy(nonFeeInputSize)

	var root, fee fr.Element
	var memo [params.MemoLen]fr.Element
	pub := derivePublicInput(w, root, fee, memo)

	c, err := Assign(w, pub)
	if err != nil {
		return nil, dpcerr.Preprocessing(err)
	}
	return c, nil
}
