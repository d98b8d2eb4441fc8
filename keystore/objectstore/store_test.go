package objectstore_test

import (
	"path/filepath"
	"testing"

	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
	tu "github.com/ghsecuritylab/ndn-lite-go/internal/testutil"
	"github.com/ghsecuritylab/ndn-lite-go/keystore/objectstore"
	"github.com/stretchr/testify/require"
)

// S8 — objectstore round-trip across a badger reopen.
func TestObjectStoreRoundTripAcrossReopen(t *testing.T) {
	tu.SetT(t)
	path := filepath.Join(t.TempDir(), "objects")

	s := tu.NoErr(objectstore.Open(path))
	name := tu.NoErr(enc.NameFromStr("/producer/content/1"))
	payload := []byte("encrypted-blob-bytes")
	require.NoError(t, s.Put(name, payload))
	require.NoError(t, s.Close())

	s2 := tu.NoErr(objectstore.Open(path))
	defer s2.Close()

	got := tu.NoErr(s2.Get(name))
	require.Equal(t, payload, got)

	require.NoError(t, s2.Remove(name))
	_, err := s2.Get(name)
	require.ErrorIs(t, err, objectstore.ErrNotFound)
}
