package gadgets

import (
	"github.com/consensys/gnark/frontend"

	"github.com/veridpc/utxocircuit/internal/dpc/params"
)

// RecordOpeningVar is the in-circuit counterpart of types.RecordOpening.
type RecordOpeningVar struct {
	Addr     frontend.Variable
	Payload  [params.PayloadLen]frontend.Variable
	IsDummy  frontend.Variable
	PidBirth frontend.Variable
	PidDeath frontend.Variable
	Nonce    frontend.Variable
	Blinding frontend.Variable
}

// DeriveCommitment commits to (addr, payload.data…, is_dummy, pid_birth,
// pid_death, nonce) with blinding, matching native.DeriveCommitment
// field-for-field. The is_dummy bit is treated as a plain field element
// here; booleanity and bypass-or-enforce logic belong to the caller.
func (ro *RecordOpeningVar) DeriveCommitment(api frontend.API) frontend.Variable {
	msg := make([]frontend.Variable, 0, 4+params.PayloadLen)
	msg = append(msg, ro.Addr)
	msg = append(msg, ro.Payload[:]...)
	msg = append(msg, ro.IsDummy, ro.PidBirth, ro.PidDeath, ro.Nonce)
	return Com(api, ro.Blinding, msg...)
}

// Nullify derives nf = H(nk, addr, nonce), matching native.Nullify.
func (ro *RecordOpeningVar) Nullify(api frontend.API, nk frontend.Variable) frontend.Variable {
	return Hash(api, nk, ro.Addr, ro.Nonce)
}
