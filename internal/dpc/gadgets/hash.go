// Package gadgets implements the in-circuit twins of package native: the
// sponge hash, commitment, Merkle, record-opening, and key-derivation
// building blocks the spend and output subcircuits are built from.
package gadgets

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// Hash absorbs msg with no padding and returns the first squeezed
// element, matching native.Hash bit-for-bit.
func Hash(api frontend.API, msg ...frontend.Variable) frontend.Variable {
	hasher, err := mimc.NewMiMC(api)
	if err != nil {
		panic(err)
	}
	for _, m := range msg {
		hasher.Write(m)
	}
	return hasher.Sum()
}

// Com computes Com(msg, r) = Hash(r ‖ msg), matching native.Com.
func Com(api frontend.API, r frontend.Variable, msg ...frontend.Variable) frontend.Variable {
	full := make([]frontend.Variable, 0, len(msg)+1)
	full = append(full, r)
	full = append(full, msg...)
	return Hash(api, full...)
}
