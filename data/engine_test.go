package data_test

import (
	"testing"

	cr "github.com/ghsecuritylab/ndn-lite-go/crypto"
	"github.com/ghsecuritylab/ndn-lite-go/data"
	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
	tu "github.com/ghsecuritylab/ndn-lite-go/internal/testutil"
	"github.com/ghsecuritylab/ndn-lite-go/ndn"
	"github.com/stretchr/testify/require"
)

func testMeta() *ndn.MetaInfo {
	return &ndn.MetaInfo{ContentType: ndn.Some(ndn.ContentTypeBlob)}
}

// S1 — sign/verify SHA-256: encoded length matches the probed sum, and
// verify returns success (property #4).
func TestSignVerifyDigest(t *testing.T) {
	tu.SetT(t)
	backend := cr.NewSoftwareBackend()

	name := tu.NoErr(enc.NameFromStr("/hello/world"))
	meta := testMeta()
	content := []byte("Hi")

	sig := &ndn.Signature{}
	require.NoError(t, sig.SetType(ndn.SigDigestSha256))
	buf := make([]byte, data.EstimateFixedBufferSize(name, meta, content, sig))

	n, signed, err := data.SignDigest(buf, backend, name, meta, content)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, ndn.SigDigestSha256, signed.Signature.SigType())

	got, err := data.VerifyDigest(buf[:n], backend)
	require.NoError(t, err)
	require.True(t, got.Name.Equal(name))
	require.Equal(t, content, got.Content)
}

// S2 — HMAC wrong key: verify with a different key fails (property #5).
func TestSignVerifyHmacWrongKey(t *testing.T) {
	tu.SetT(t)
	backend := cr.NewSoftwareBackend()

	k1 := tu.NoErr(backend.HmacLoadKey([]byte("key-one-aaaaaaaa")))
	k2 := tu.NoErr(backend.HmacLoadKey([]byte("key-two-bbbbbbbb")))

	identity := tu.NoErr(enc.NameFromStr("/producer"))
	name := tu.NoErr(enc.NameFromStr("/hello/world"))
	meta := testMeta()
	content := []byte("Hi")

	sig := &ndn.Signature{}
	require.NoError(t, sig.SetType(ndn.SigHmacSha256))
	sig.SetKeyLocator(identity)
	buf := make([]byte, data.EstimateFixedBufferSize(name, meta, content, sig)+32)

	n, _, err := data.SignHmac(buf, backend, name, identity, meta, content, k1, 1)
	require.NoError(t, err)

	_, err = data.VerifyHmac(buf[:n], backend, k1)
	require.NoError(t, err)

	_, err = data.VerifyHmac(buf[:n], backend, k2)
	require.Error(t, err)
}

// S3 — ECDSA backpatch: outer length matches the final body, and the
// packet verifies; tampering any signed byte flips verification. DER
// ECDSA signatures over P-256 land at 70, 71, or 72 bytes depending on
// whether r/s need a leading zero pad, so the backpatch/shift math is
// only proven header-size-derived (not hard-coded to one length) if
// both a 70- and a 71-byte signature are actually exercised here.
func TestSignVerifyEcdsa(t *testing.T) {
	tu.SetT(t)
	soft := cr.NewSoftwareBackend()
	kg := soft.(cr.KeyGenerator)

	name := tu.NoErr(enc.NameFromStr("/hello/world"))
	keyLocator := tu.NoErr(enc.NameFromStr("/producer/KEY/1"))
	meta := testMeta()
	content := []byte("Hi")

	seen := map[int]bool{}
	const maxAttempts = 500
	for attempt := 0; attempt < maxAttempts && (!seen[70] || !seen[71]); attempt++ {
		sk, pk := tu.NoErr2(kg.GenerateEcdsaKey())

		buf := make([]byte, data.EstimateEcdsaBufferSize(name, meta, content))
		n, signed, err := data.SignEcdsa(buf, soft, sk, name, keyLocator, meta, content)
		require.NoError(t, err)
		seen[signed.Signature.SigSize()] = true

		d := enc.NewDecoder(buf[:n])
		outerLen, err := d.ReadTL(enc.TypeData)
		require.NoError(t, err)
		require.Equal(t, n-d.Offset(), outerLen)

		_, err = data.VerifyEcdsa(buf[:n], soft, pk)
		require.NoError(t, err)

		tampered := append([]byte(nil), buf[:n]...)
		tampered[d.Offset()+1] ^= 0xff
		_, err = data.VerifyEcdsa(tampered, soft, pk)
		require.Error(t, err)
	}
	require.True(t, seen[70], "never observed a 70-byte DER signature in %d attempts", maxAttempts)
	require.True(t, seen[71], "never observed a 71-byte DER signature in %d attempts", maxAttempts)
}

// Oversize content fails on decode (property #7).
func TestDecodeContentOversize(t *testing.T) {
	tu.SetT(t)
	backend := cr.NewSoftwareBackend()

	name := tu.NoErr(enc.NameFromStr("/big"))
	meta := testMeta()
	content := make([]byte, enc.ContentMax+1)

	sig := &ndn.Signature{}
	require.NoError(t, sig.SetType(ndn.SigDigestSha256))
	buf := make([]byte, data.EstimateFixedBufferSize(name, meta, content, sig)+16)

	n, _, err := data.SignDigest(buf, backend, name, meta, content)
	require.NoError(t, err)

	_, err = data.VerifyDigest(buf[:n], backend)
	require.ErrorIs(t, err, enc.ErrOversize)
}

// S6 — AES round-trip through the encrypted-content helper.
func TestEncryptedContentRoundTrip(t *testing.T) {
	tu.SetT(t)
	backend := cr.NewSoftwareBackend()
	keyHandle := tu.NoErr(backend.AesLoadKey([]byte("0123456789ABCDEF")))

	iv := make([]byte, 16)
	require.NoError(t, backend.Rng(iv))

	plaintext := []byte("0123456789ABCDEF")
	keyIDName := tu.NoErr(enc.NameFromStr("/producer/KEY/1"))

	d := &data.Data{}
	require.NoError(t, data.SetEncryptedContent(d, backend, plaintext, keyIDName, iv, keyHandle))

	got, gotName, gotIV, err := data.ParseEncryptedContent(d, backend, keyHandle)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
	require.True(t, gotName.Equal(keyIDName))
	require.Equal(t, iv, gotIV)
}
