package native

import (
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"

	"github.com/veridpc/utxocircuit/internal/dpc/types"
)

func boolElement(b bool) fr.Element {
	var e fr.Element
	if b {
		e.SetOne()
	}
	return e
}

// DeriveCommitment computes the record commitment of a RecordOpening:
// Com(addr ‖ payload.data... ‖ is_dummy ‖ pid_birth ‖ pid_death ‖ nonce,
// blinding). Field order here is exactly what gadgets.DeriveCommitment
// must reproduce in-circuit.
func DeriveCommitment(ro *types.RecordOpening) fr.Element {
	msg := make([]fr.Element, 0, 4+len(ro.Payload.Data))
	msg = append(msg, ro.Addr)
	msg = append(msg, ro.Payload.Data[:]...)
	msg = append(msg, boolElement(ro.IsDummy), ro.PidBirth, ro.PidDeath, ro.Nonce)
	return Com(ro.Blinding, msg...)
}

// Nullify derives the nullifier of a RecordOpening under a nullifier key
// nk: nf = H(nk, addr, nonce). It must not depend on the blinding factor
// or on application payload, since the nullifier is revealed on spend and
// must not leak payload data.
func Nullify(ro *types.RecordOpening, nk fr.Element) fr.Element {
	return Hash(nk, ro.Addr, ro.Nonce)
}

// DeriveDiversifier recomputes a diversified address from a viewing
// component (the nullifier key nk, standing in for the incoming viewing
// key) and a per-record diversifier randomizer: addr' = H(nk, rhoDiv).
func DeriveDiversifier(nk, rhoDiv fr.Element) fr.Element {
	return Hash(nk, rhoDiv)
}

// DeriveOutputNonce computes the deterministic per-output nonce bound to
// the transaction's first nullifier: nonce = H(i, nf0, 1).
func DeriveOutputNonce(i uint64, nf0 fr.Element) fr.Element {
	var iElem, one fr.Element
	iElem.SetUint64(i)
	one.SetOne()
	return Hash(iElem, nf0, one)
}
