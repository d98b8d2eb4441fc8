// Package face implements the direct face dispatcher (§4.5): a bounded
// callback table that routes packets the forwarder hands upward to
// application callbacks, by exact name match for Data and prefix match
// for Interest.
package face

import (
	"errors"

	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
)

// ErrNoMatchedCallback is returned by Send when no table entry matches
// the incoming packet's name.
var ErrNoMatchedCallback = errors.New("face: no matched callback")

// ErrCBTableFull is returned by ExpressInterest/RegisterPrefix when no
// free slot remains in the callback table.
var ErrCBTableFull = errors.New("face: callback table full")

// ErrFaceDown is returned by Up and Down when the face is DESTROYED.
var ErrFaceDown = errors.New("face: not up")

// ErrInvalidName is returned when Send is asked to dispatch a packet with
// no associated name (the forwarder contract requires one).
var ErrInvalidName = errors.New("face: invalid name")

// State is the direct face's lifecycle state machine (§4.5):
// DESTROYED → UP ↔ DOWN; any state → DESTROYED.
type State int

const (
	StateDestroyed State = iota
	StateUp
	StateDown
)

// OnData is invoked when a Data packet matches an exact-name table entry.
type OnData func(bytes []byte)

// OnTimeout is invoked when an expressed Interest's PIT entry expires
// (driven by the forwarder; the face itself has no timer model, §5).
type OnTimeout func()

// OnInterest is invoked when an Interest matches a registered prefix.
type OnInterest func(bytes []byte)

// cbEntry is one slot of the fixed-capacity callback table. A slot is
// free iff Name is nil.
type cbEntry struct {
	Name       enc.Name
	IsPrefix   bool
	OnData     OnData
	OnTimeout  OnTimeout
	OnInterest OnInterest
}

func (e *cbEntry) free() bool { return e.Name == nil }

// Forwarder is the subset of the local forwarder's API the face drives
// (§6's "Forwarder API (consumed)"): injecting an outbound packet, and
// installing a FIB route.
type Forwarder interface {
	FaceReceive(f *Face, bytes []byte) error
	FibInsert(prefix enc.Name, f *Face, cost int) error
}

// DefaultCost is the FIB cost RegisterPrefix installs routes with.
const DefaultCost = 0

// Face is one direct face: an in-process, app-facing dispatcher with a
// fixed-size callback table. Unlike the teacher's process-wide singleton,
// a Face here is an owned value threaded through the forwarder that
// constructs it; "only one direct face" is a forwarder-level invariant,
// not static state (§9).
type Face struct {
	id    uint64
	state State
	fwd   Forwarder
	cb    [enc.CBTableSize]cbEntry
}

// New constructs a Face in the DESTROYED state, bound to fwd.
func New(id uint64, fwd Forwarder) *Face {
	return &Face{id: id, state: StateDestroyed, fwd: fwd}
}

// ID returns the face's identifier.
func (f *Face) ID() uint64 { return f.id }

// State returns the face's current lifecycle state.
func (f *Face) State() State { return f.state }

// Up transitions the face to UP. Valid from any non-DESTROYED state.
func (f *Face) Up() error {
	if f.state == StateDestroyed {
		return ErrFaceDown
	}
	f.state = StateUp
	return nil
}

// Down transitions the face to DOWN. Valid from any non-DESTROYED state.
func (f *Face) Down() error {
	if f.state == StateDestroyed {
		return ErrFaceDown
	}
	f.state = StateDown
	return nil
}

// Construct marks a freshly created face UP, the first legal transition
// out of DESTROYED.
func (f *Face) Construct() {
	f.state = StateUp
}

// Destroy resets the callback table and transitions to DESTROYED. Valid
// from any state.
func (f *Face) Destroy() {
	for i := range f.cb {
		f.cb[i] = cbEntry{}
	}
	f.state = StateDestroyed
}

func (f *Face) firstFreeSlot() int {
	for i := range f.cb {
		if f.cb[i].free() {
			return i
		}
	}
	return -1
}

// ExpressInterest records an exact-name callback pair for name and
// injects encodedInterest into the forwarder via FaceReceive.
func (f *Face) ExpressInterest(name enc.Name, encodedInterest []byte, onData OnData, onTimeout OnTimeout) error {
	slot := f.firstFreeSlot()
	if slot < 0 {
		return ErrCBTableFull
	}
	f.cb[slot] = cbEntry{Name: name.Clone(), IsPrefix: false, OnData: onData, OnTimeout: onTimeout}
	return f.fwd.FaceReceive(f, encodedInterest)
}

// RegisterPrefix records a prefix callback for prefix and installs a FIB
// route in the forwarder mapping prefix to this face.
func (f *Face) RegisterPrefix(prefix enc.Name, onInterest OnInterest) error {
	slot := f.firstFreeSlot()
	if slot < 0 {
		return ErrCBTableFull
	}
	f.cb[slot] = cbEntry{Name: prefix.Clone(), IsPrefix: true, OnInterest: onInterest}
	return f.fwd.FibInsert(prefix, f, DefaultCost)
}

// topLevelIsInterest reads the outer TLV type of bytes without consuming
// a decoder over the whole packet: TLV_Interest selects the Interest
// path, TLV_Data the Data path; any other type is rejected (§4.5 — no
// fragmentation on this face).
func topLevelIsInterest(bytes []byte) (bool, error) {
	d := enc.NewDecoder(bytes)
	typ, err := d.ReadVarNum()
	if err != nil {
		return false, err
	}
	switch typ {
	case enc.TypeInterest:
		return true, nil
	case enc.TypeData:
		return false, nil
	default:
		return false, enc.ErrWrongTLVType
	}
}

// Send is called by the forwarder to deliver a decoded packet: name is
// the packet's already-decoded top-level name (the forwarder's contract
// guarantees it is non-nil), and bytes is its raw wire encoding. The
// outer TLV type selects the Data-path (exact match) or Interest-path
// (prefix match) dispatch rule; the table is scanned in insertion order
// and the first matching entry wins (§4.5, §5).
func (f *Face) Send(name enc.Name, bytes []byte) error {
	if name == nil {
		return ErrInvalidName
	}
	isInterest, err := topLevelIsInterest(bytes)
	if err != nil {
		return err
	}
	for i := range f.cb {
		e := &f.cb[i]
		if e.free() {
			continue
		}
		if isInterest {
			if e.IsPrefix && enc.IsPrefix(e.Name, name) == 0 {
				e.OnInterest(bytes)
				return nil
			}
		} else {
			if !e.IsPrefix && enc.Compare(e.Name, name) == 0 {
				e.OnData(bytes)
				return nil
			}
		}
	}
	return ErrNoMatchedCallback
}
