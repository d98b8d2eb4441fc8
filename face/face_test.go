package face_test

import (
	"testing"

	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
	"github.com/ghsecuritylab/ndn-lite-go/face"
	tu "github.com/ghsecuritylab/ndn-lite-go/internal/testutil"
	"github.com/stretchr/testify/require"
)

// stubForwarder records FaceReceive/FibInsert calls without driving any
// real FIB/PIT, standing in for the forwarder collaborator this package
// treats as an external dependency (§6).
type stubForwarder struct {
	received []string
	fib      map[string]bool
}

func newStubForwarder() *stubForwarder {
	return &stubForwarder{fib: make(map[string]bool)}
}

func (s *stubForwarder) FaceReceive(f *face.Face, bytes []byte) error {
	s.received = append(s.received, string(bytes))
	return nil
}

func (s *stubForwarder) FibInsert(prefix enc.Name, f *face.Face, cost int) error {
	s.fib[prefix.String()] = true
	return nil
}

func encodeBareName(t *testing.T, topType enc.TLNum, name enc.Name) []byte {
	t.Helper()
	buf := make([]byte, name.ProbeBlockSize()+8)
	e := enc.NewEncoder(buf)
	require.NoError(t, e.WriteTL(topType, name.ProbeBlockSize()))
	require.NoError(t, name.EncodeInto(e))
	return e.Bytes()
}

// S4 — exact Data match (property #8).
func TestFaceExactDataMatch(t *testing.T) {
	tu.SetT(t)
	fwd := newStubForwarder()
	f := face.New(1, fwd)
	f.Construct()

	a := tu.NoErr(enc.NameFromStr("/a"))
	var fired bool
	require.NoError(t, f.ExpressInterest(a, []byte("interest-bytes"), func(b []byte) { fired = true }, nil))

	dataA := encodeBareName(t, enc.TypeData, a)
	require.NoError(t, f.Send(a, dataA))
	require.True(t, fired)

	ac := tu.NoErr(enc.NameFromStr("/a/c"))
	dataAC := encodeBareName(t, enc.TypeData, ac)
	err := f.Send(ac, dataAC)
	require.ErrorIs(t, err, face.ErrNoMatchedCallback)
}

// S5 — prefix Interest match (property #9).
func TestFacePrefixInterestMatch(t *testing.T) {
	tu.SetT(t)
	fwd := newStubForwarder()
	f := face.New(1, fwd)
	f.Construct()

	svc := tu.NoErr(enc.NameFromStr("/svc"))
	var payload []byte
	require.NoError(t, f.RegisterPrefix(svc, func(b []byte) { payload = b }))

	op := tu.NoErr(enc.NameFromStr("/svc/op/1"))
	interestBytes := encodeBareName(t, enc.TypeInterest, op)
	require.NoError(t, f.Send(op, interestBytes))
	require.Equal(t, interestBytes, payload)

	y := tu.NoErr(enc.NameFromStr("/y"))
	yBytes := encodeBareName(t, enc.TypeInterest, y)
	err := f.Send(y, yBytes)
	require.ErrorIs(t, err, face.ErrNoMatchedCallback)
}

// Property #10 — table full.
func TestFaceTableFull(t *testing.T) {
	tu.SetT(t)
	fwd := newStubForwarder()
	f := face.New(1, fwd)
	f.Construct()

	for i := 0; i < enc.CBTableSize; i++ {
		n := tu.NoErr(enc.NameFromStr("/a/" + string(rune('a'+i))))
		require.NoError(t, f.RegisterPrefix(n, func([]byte) {}))
	}

	extra := tu.NoErr(enc.NameFromStr("/overflow"))
	err := f.RegisterPrefix(extra, func([]byte) {})
	require.ErrorIs(t, err, face.ErrCBTableFull)
}

func TestFaceDestroyResetsTable(t *testing.T) {
	tu.SetT(t)
	fwd := newStubForwarder()
	f := face.New(1, fwd)
	f.Construct()

	a := tu.NoErr(enc.NameFromStr("/a"))
	require.NoError(t, f.RegisterPrefix(a, func([]byte) {}))
	f.Destroy()
	require.Equal(t, face.StateDestroyed, f.State())

	f.Construct()
	// After destroy+construct, the table should be empty again:
	// registering the same prefix should succeed without a stale slot.
	require.NoError(t, f.RegisterPrefix(a, func([]byte) {}))
}
