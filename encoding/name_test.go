package encoding_test

import (
	"testing"

	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
	tu "github.com/ghsecuritylab/ndn-lite-go/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Name codec round-trip (§8.2): encode then decode returns an equal name,
// and compare/is_prefix are reflexive.
func TestNameRoundTrip(t *testing.T) {
	tu.SetT(t)

	n := tu.NoErr(enc.NameFromStr("/local/ndn/prefix"))
	buf := make([]byte, n.ProbeBlockSize())
	e := enc.NewEncoder(buf)
	require.NoError(t, n.EncodeInto(e))
	require.Equal(t, len(buf), e.Offset())

	d := enc.NewDecoder(buf)
	got := tu.NoErr(enc.DecodeName(d))
	require.True(t, got.Equal(n))
	require.Equal(t, 0, enc.Compare(n, n))
	require.Equal(t, 0, enc.IsPrefix(n, n))
	require.Equal(t, "/local/ndn/prefix", got.String())
}

func TestNameFromStringInvalid(t *testing.T) {
	_, err := enc.NameFromStr("no-leading-slash")
	require.ErrorIs(t, err, enc.ErrNameInvalidFormat)
}

func TestNameFromStringRoot(t *testing.T) {
	n, err := enc.NameFromStr("/")
	require.NoError(t, err)
	require.Equal(t, 0, len(n))
	require.Equal(t, "/", n.String())
}

func TestNameFromStringNoTrailingEmpty(t *testing.T) {
	n, err := enc.NameFromStr("/a/b/")
	require.NoError(t, err)
	require.Equal(t, 2, len(n))
}

// Prefix laws (§8.3): transitivity, and equal-length prefix implies equal.
func TestPrefixLaws(t *testing.T) {
	a := tu.NoErr(enc.NameFromStr("/a"))
	b := tu.NoErr(enc.NameFromStr("/a/b"))
	c := tu.NoErr(enc.NameFromStr("/a/b/c"))

	require.Equal(t, 0, enc.IsPrefix(a, b))
	require.Equal(t, 0, enc.IsPrefix(b, c))
	require.Equal(t, 0, enc.IsPrefix(a, c))

	require.Equal(t, 1, enc.IsPrefix(b, a))

	// Equal length + is_prefix implies compare == 0.
	aPrime := a.Clone()
	require.Equal(t, 0, enc.IsPrefix(a, aPrime))
	require.Equal(t, len(a), len(aPrime))
	require.Equal(t, 0, enc.Compare(a, aPrime))
}

// Oversize rejection (§8.7): a name exceeding NameMax components fails.
func TestNameFromStringOversize(t *testing.T) {
	s := ""
	for i := 0; i <= enc.NameMax; i++ {
		s += "/c"
	}
	_, err := enc.NameFromStr(s)
	require.ErrorIs(t, err, enc.ErrOversize)
}

func TestNameDecodeOversize(t *testing.T) {
	n := make(enc.Name, enc.NameMax+1)
	for i := range n {
		n[i] = enc.NewGenericComponent("x")
	}
	buf := make([]byte, n.EncodingLength()+16)
	e := enc.NewEncoder(buf)
	// Write the header by hand since n.EncodeInto would itself reject it.
	require.NoError(t, e.WriteTL(enc.TypeName, n.EncodingLength()))
	for _, c := range n {
		require.NoError(t, c.EncodeInto(e))
	}

	d := enc.NewDecoder(e.Bytes())
	_, err := enc.DecodeName(d)
	require.ErrorIs(t, err, enc.ErrOversize)
}
