package keys_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veridpc/utxocircuit/internal/dpc/keys"
	"github.com/veridpc/utxocircuit/internal/dpc/native"
)

func TestDeriveProofGenKeyIsDeterministicForSameMasterKey(t *testing.T) {
	msk, err := keys.NewMasterSpendingKey()
	require.NoError(t, err)

	pgk1, err := msk.DeriveProofGenKey()
	require.NoError(t, err)
	pgk2, err := msk.DeriveProofGenKey()
	require.NoError(t, err)

	require.True(t, pgk1.Ak.Equal(&pgk2.Ak))
	require.True(t, pgk1.Nk.Equal(&pgk2.Nk))
}

func TestDistinctMasterKeysYieldDistinctProofGenKeys(t *testing.T) {
	msk1, err := keys.NewMasterSpendingKey()
	require.NoError(t, err)
	msk2, err := keys.NewMasterSpendingKey()
	require.NoError(t, err)

	pgk1, err := msk1.DeriveProofGenKey()
	require.NoError(t, err)
	pgk2, err := msk2.DeriveProofGenKey()
	require.NoError(t, err)

	require.False(t, pgk1.Nk.Equal(&pgk2.Nk))
}

func TestDeriveDiversifiedAddressMatchesNativeDiversifier(t *testing.T) {
	msk, err := keys.NewMasterSpendingKey()
	require.NoError(t, err)
	pgk, err := msk.DeriveProofGenKey()
	require.NoError(t, err)
	rho, err := keys.RandomFieldElement()
	require.NoError(t, err)

	addr := keys.DeriveDiversifiedAddress(pgk, rho)
	want := native.DeriveDiversifier(pgk.Nk, rho)

	require.True(t, addr.Equal(&want))
}

func TestRandomAuthRandomizerIsNotNeutral(t *testing.T) {
	p, err := keys.RandomAuthRandomizer()
	require.NoError(t, err)
	neutral := native.NeutralPoint()
	require.False(t, p.Equal(&neutral))
}

func TestRandomFieldElementsAreNotTriviallyRepeated(t *testing.T) {
	a, err := keys.RandomFieldElement()
	require.NoError(t, err)
	b, err := keys.RandomFieldElement()
	require.NoError(t, err)
	require.False(t, a.Equal(&b))
}
