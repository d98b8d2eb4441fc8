package encoding_test

import (
	"testing"

	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
	"github.com/stretchr/testify/require"
)

// Exercises the TLV var-int round-trip property from §8.1: every encoded
// value decodes back to itself, and ProbeVarSize agrees with the actual
// encoded length.
func TestVarNumRoundTrip(t *testing.T) {
	cases := []uint64{
		0, 1, 0xfc, 0xfd, 0xff, 0x100, 0xffff,
		0x10000, 0xffffffff, 0x100000000, 1 << 40, ^uint64(0),
	}
	for _, v := range cases {
		n := enc.TLNum(v)
		buf := make([]byte, n.EncodingLength())
		written := n.EncodeInto(buf)
		require.Equal(t, n.EncodingLength(), written)
		require.Equal(t, n.EncodingLength(), enc.ProbeVarSize(v))

		got, pos := enc.ParseTLNum(buf)
		require.Equal(t, n, got)
		require.Equal(t, written, pos)

		d := enc.NewDecoder(buf)
		got2, err := d.ReadVarNum()
		require.NoError(t, err)
		require.Equal(t, n, got2)
		require.Equal(t, written, d.Offset())
	}
}

func TestProbeBlockSize(t *testing.T) {
	// type 8 (1 byte) + length 5 (1 byte) + 5 bytes of value = 7.
	require.Equal(t, 7, enc.ProbeBlockSize(enc.TypeGeneric, 5))
}

func TestEncoderOversize(t *testing.T) {
	buf := make([]byte, 2)
	e := enc.NewEncoder(buf)
	require.NoError(t, e.WriteByte(1))
	require.NoError(t, e.WriteByte(2))
	require.ErrorIs(t, e.WriteByte(3), enc.ErrOversize)
}

func TestEncoderMoveForwardBackward(t *testing.T) {
	buf := make([]byte, 16)
	e := enc.NewEncoder(buf)
	require.NoError(t, e.MoveForward(4))
	require.Equal(t, 4, e.Offset())
	require.NoError(t, e.WriteByte(0xAB))
	require.NoError(t, e.MoveBackward(5))
	require.Equal(t, 0, e.Offset())
}

func TestDecoderReadTLWrongType(t *testing.T) {
	d := enc.NewDecoder([]byte{byte(enc.TypeData), 0x00})
	_, err := d.ReadTL(enc.TypeName)
	require.ErrorIs(t, err, enc.ErrWrongTLVType)
}
