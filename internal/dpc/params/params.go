// Package params holds the system-wide constants of the UTXO circuit.
//
// MEMO_LEN, TREE_DEPTH, and NATIVE_ASSET_CODE are fixed at compile time: any
// change invalidates previously built proofs, because they change the shape
// of the arithmetized circuit.
package params

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
)

const (
	// MemoLen is the fixed length of the memo vector carried by every
	// transaction (M in the spec).
	MemoLen = 8

	// TreeDepth is the fixed depth of the record-commitment accumulator
	// (D in the spec).
	TreeDepth = 32

	// PayloadLen is the number of application payload field elements per
	// record; by convention data[0] is the asset type and data[1] is the
	// amount.
	PayloadLen = 4
)

// nativeAssetCode is the fixed field element identifying the native asset.
// It is the sentinel value that fee inputs and fee-change outputs must
// carry in payload.data[0].
var nativeAssetCode = fr.NewElement(1)

// NativeAssetCode returns the system-wide native asset type code.
func NativeAssetCode() fr.Element {
	return nativeAssetCode
}

// NativeAssetCodeBigInt returns NativeAssetCode as a *big.Int, convenient
// for building frontend.Variable witnesses.
func NativeAssetCodeBigInt() *big.Int {
	b := new(big.Int)
	nativeAssetCode.BigInt(b)
	return b
}

// Params bundles the circuit-wide parameters that a caller threads through
// witness construction and public-input derivation. It is intentionally
// small: the SNARK universal-setup parameters and proving/verifying keys
// are external collaborators (see cmd/utxobuild) and are
// not modeled here.
type Params struct {
	NonFeeInputSize int
	MemoLen         int
	TreeDepth       int
}

// Default returns the canonical system parameters.
func Default() *Params {
	return &Params{
		NonFeeInputSize: 2,
		MemoLen:         MemoLen,
		TreeDepth:       TreeDepth,
	}
}

// NumInputs returns 1 (the fee slot) plus the non-fee input count.
func (p *Params) NumInputs() int {
	return p.NonFeeInputSize + 1
}
