package circuit

import (
	"github.com/consensys/gnark/frontend"

	"github.com/veridpc/utxocircuit/internal/dpc/gadgets"
	"github.com/veridpc/utxocircuit/internal/dpc/params"
)

// proveOutput emits the per-output constraints: nonce derivation bound to
// the transaction's first nullifier (bypassable by is_dummy), the
// commitment check (bypassable), and the fee-change hard constraints
// (unconditional, only when isFeeChange). It returns the derived record
// commitment for the caller to fold into local data.
func proveOutput(api frontend.API, out *gadgets.RecordOpeningVar, publicCommitment frontend.Variable, isFeeChange bool, index int, firstNullifier frontend.Variable) (rc frontend.Variable) {
	isDummy := out.IsDummy
	api.AssertIsBoolean(isDummy)

	// 2. Nonce derivation.
	nonce := gadgets.DeriveOutputNonce(api, index, firstNullifier)

	// 3. Nonce bypass.
	correctNonce := api.IsZero(api.Sub(nonce, out.Nonce))
	api.AssertIsEqual(api.Or(correctNonce, isDummy), 1)

	// 4. Commitment bypass.
	rc = out.DeriveCommitment(api)
	correctCommitment := api.IsZero(api.Sub(rc, publicCommitment))
	api.AssertIsEqual(api.Or(correctCommitment, isDummy), 1)

	// 5. Fee-change hard constraints (unconditional, only when isFeeChange).
	if isFeeChange {
		api.AssertIsEqual(isDummy, 0)
		api.AssertIsEqual(out.Payload[0], params.NativeAssetCodeBigInt())
	}

	return rc
}
