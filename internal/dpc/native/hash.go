// Package native provides the off-circuit twins of every in-circuit gadget
// in package gadgets: hash, commitment, record commitment/nullifier,
// diversified-address derivation, and authorization-key group addition.
// Bit-exact equivalence with their in-circuit counterparts is a hard
// requirement — any divergence here breaks completeness of the whole
// circuit.
package native

import (
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	mimcNative "github.com/consensys/gnark-crypto/ecc/bw6-761/fr/mimc"
)

// Hash absorbs msg with no padding and emits the first squeezed element,
// mirroring gadgets.Hash bit-for-bit: each element is written to the
// sponge via its canonical big-endian encoding, in order.
func Hash(msg ...fr.Element) fr.Element {
	h := mimcNative.NewMiMC()
	for _, m := range msg {
		b := m.Bytes()
		h.Write(b[:])
	}
	sum := h.Sum(nil)
	var out fr.Element
	out.SetBytes(sum)
	return out
}

// Com computes Com(msg, r) = Hash(r ‖ msg), matching gadgets.Com.
func Com(r fr.Element, msg ...fr.Element) fr.Element {
	full := make([]fr.Element, 0, len(msg)+1)
	full = append(full, r)
	full = append(full, msg...)
	return Hash(full...)
}
