package native_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/stretchr/testify/require"

	"github.com/veridpc/utxocircuit/internal/dpc/native"
	"github.com/veridpc/utxocircuit/internal/dpc/types"
)

func sampleRecordOpening() types.RecordOpening {
	var ro types.RecordOpening
	ro.Addr = feVal(11)
	ro.Payload.Data[0] = feVal(1)
	ro.Payload.Data[1] = feVal(100)
	ro.PidBirth = feVal(7)
	ro.PidDeath = feVal(8)
	ro.Nonce = feVal(9)
	ro.Blinding = feVal(13)
	return ro
}

func TestDeriveCommitmentChangesWithEveryField(t *testing.T) {
	base := sampleRecordOpening()
	baseRc := native.DeriveCommitment(&base)

	mutate := func(mutateFn func(ro *types.RecordOpening)) fr.Element {
		ro := base
		mutateFn(&ro)
		return native.DeriveCommitment(&ro)
	}

	cases := map[string]func(ro *types.RecordOpening){
		"addr":     func(ro *types.RecordOpening) { ro.Addr = feVal(12) },
		"payload0": func(ro *types.RecordOpening) { ro.Payload.Data[0] = feVal(2) },
		"payload1": func(ro *types.RecordOpening) { ro.Payload.Data[1] = feVal(101) },
		"isDummy":  func(ro *types.RecordOpening) { ro.IsDummy = true },
		"pidBirth": func(ro *types.RecordOpening) { ro.PidBirth = feVal(70) },
		"pidDeath": func(ro *types.RecordOpening) { ro.PidDeath = feVal(80) },
		"nonce":    func(ro *types.RecordOpening) { ro.Nonce = feVal(90) },
		"blinding": func(ro *types.RecordOpening) { ro.Blinding = feVal(14) },
	}
	for name, mutateFn := range cases {
		t.Run(name, func(t *testing.T) {
			rc := mutate(mutateFn)
			require.False(t, rc.Equal(&baseRc))
		})
	}
}

func TestNullifyIgnoresBlindingAndAmount(t *testing.T) {
	ro := sampleRecordOpening()
	nk := feVal(55)
	nf := native.Nullify(&ro, nk)

	ro2 := ro
	ro2.Blinding = feVal(999)
	ro2.Payload.Data[1] = feVal(999)
	nf2 := native.Nullify(&ro2, nk)

	require.True(t, nf.Equal(&nf2), "nullifier must not depend on blinding or payload amount")
}

func TestNullifyDependsOnNullifierKey(t *testing.T) {
	ro := sampleRecordOpening()
	nf1 := native.Nullify(&ro, feVal(1))
	nf2 := native.Nullify(&ro, feVal(2))
	require.False(t, nf1.Equal(&nf2))
}

func TestDeriveDiversifierIsDeterministicAndInjectiveInRho(t *testing.T) {
	nk := feVal(1)
	a := native.DeriveDiversifier(nk, feVal(2))
	b := native.DeriveDiversifier(nk, feVal(3))
	require.False(t, a.Equal(&b))

	a2 := native.DeriveDiversifier(nk, feVal(2))
	require.True(t, a.Equal(&a2))
}

func TestDeriveOutputNonceVariesByIndex(t *testing.T) {
	nf0 := feVal(123)
	n0 := native.DeriveOutputNonce(0, nf0)
	n1 := native.DeriveOutputNonce(1, nf0)
	require.False(t, n0.Equal(&n1))
}

func TestDeriveOutputNonceVariesByFirstNullifier(t *testing.T) {
	n0 := native.DeriveOutputNonce(0, feVal(1))
	n1 := native.DeriveOutputNonce(0, feVal(2))
	require.False(t, n0.Equal(&n1))
}
