package gadgets

import "github.com/consensys/gnark/frontend"

// DeriveDiversifier recomputes a diversified address from a viewing
// component (the nullifier key, standing in for the incoming viewing key)
// and a diversifier randomizer, matching native.DeriveDiversifier:
// addr' = H(nk, rhoDiv).
func DeriveDiversifier(api frontend.API, nk, rhoDiv frontend.Variable) frontend.Variable {
	return Hash(api, nk, rhoDiv)
}

// DeriveOutputNonce computes nonce' = H(i, nf0, 1), matching
// native.DeriveOutputNonce.
func DeriveOutputNonce(api frontend.API, i, nf0 frontend.Variable) frontend.Variable {
	return Hash(api, i, nf0, 1)
}
