package keystore_test

import (
	"path/filepath"
	"testing"

	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
	tu "github.com/ghsecuritylab/ndn-lite-go/internal/testutil"
	"github.com/ghsecuritylab/ndn-lite-go/keystore"
	"github.com/ghsecuritylab/ndn-lite-go/ndn"
	"github.com/stretchr/testify/require"
)

// S7 — key registry round-trip across a sqlite reopen.
func TestRegistryRoundTripAcrossReopen(t *testing.T) {
	tu.SetT(t)
	path := filepath.Join(t.TempDir(), "keys.db")

	r := tu.NoErr(keystore.Open(path))
	rec := keystore.Record{
		KeyID:                7,
		KeyName:              tu.NoErr(enc.NameFromStr("/producer/KEY/7")),
		SigType:              ndn.SigEcdsaSha256,
		NotBefore:            "20260101T000000",
		NotAfter:             "20270101T000000",
		EnableKeyLocator:     true,
		EnableValidityPeriod: true,
		Secret:               []byte("opaque-pkcs8-blob"),
	}
	require.NoError(t, r.Put(rec))
	require.NoError(t, r.Close())

	r2 := tu.NoErr(keystore.Open(path))
	defer r2.Close()

	got := tu.NoErr(r2.Get(7))
	require.Equal(t, rec.KeyID, got.KeyID)
	require.True(t, got.KeyName.Equal(rec.KeyName))
	require.Equal(t, rec.SigType, got.SigType)
	require.Equal(t, rec.NotBefore, got.NotBefore)
	require.Equal(t, rec.NotAfter, got.NotAfter)
	require.Equal(t, rec.EnableKeyLocator, got.EnableKeyLocator)
	require.Equal(t, rec.EnableValidityPeriod, got.EnableValidityPeriod)
	require.Equal(t, rec.Secret, got.Secret)

	list := tu.NoErr(r2.List())
	require.Len(t, list, 1)

	require.NoError(t, r2.Delete(7))
	_, err := r2.Get(7)
	require.ErrorIs(t, err, keystore.ErrNotFound)
}
