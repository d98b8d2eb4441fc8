package ndn

import enc "github.com/ghsecuritylab/ndn-lite-go/encoding"

// Optional wraps a value that may or may not be present, mirroring the
// small Option helper used throughout the call sites this library's
// MetaInfo and Signature fields are modeled on.
type Optional[T any] struct {
	val T
	set bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{val: v, set: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// IsSet reports whether the Optional holds a value.
func (o Optional[T]) IsSet() bool { return o.set }

// Unwrap returns the held value, or the zero value if absent.
func (o Optional[T]) Unwrap() T { return o.val }

// GetOr returns the held value, or def if absent.
func (o Optional[T]) GetOr(def T) T {
	if o.set {
		return o.val
	}
	return def
}

// ContentType identifies the kind of payload carried in a Data packet.
type ContentType uint64

const (
	ContentTypeBlob    ContentType = 0
	ContentTypeLink    ContentType = 1
	ContentTypeKey     ContentType = 2
	ContentTypeNack    ContentType = 3
	ContentTypePrefixAnn ContentType = 5
)

// MetaInfo carries the optional content-type, freshness period, and
// final-block-id fields that precede a Data packet's content (§6: opaque
// to the core codec beyond this shape).
type MetaInfo struct {
	ContentType      Optional[ContentType]
	FreshnessPeriod  Optional[uint64] // milliseconds
	FinalBlockID     Optional[enc.Component]
}

// EncodingLength returns the size of MetaInfo's inner value, not counting
// its own TLV_MetaInfo header.
func (m *MetaInfo) EncodingLength() int {
	l := 0
	if m.ContentType.IsSet() {
		l += enc.ProbeBlockSize(enc.TypeContentType, enc.ProbeVarSize(uint64(m.ContentType.Unwrap())))
	}
	if m.FreshnessPeriod.IsSet() {
		l += enc.ProbeBlockSize(enc.TypeFreshness, enc.ProbeVarSize(m.FreshnessPeriod.Unwrap()))
	}
	if m.FinalBlockID.IsSet() {
		fb := m.FinalBlockID.Unwrap()
		l += enc.ProbeBlockSize(enc.TypeFinalBlockID, fb.EncodingLength())
	}
	return l
}

// ProbeBlockSize returns the full wire size of TLV_MetaInfo, including its
// own header.
func (m *MetaInfo) ProbeBlockSize() int {
	return enc.ProbeBlockSize(enc.TypeMetaInfo, m.EncodingLength())
}

// EncodeInto writes the full TLV_MetaInfo block into e.
func (m *MetaInfo) EncodeInto(e *enc.Encoder) error {
	if err := e.WriteTL(enc.TypeMetaInfo, m.EncodingLength()); err != nil {
		return err
	}
	if m.ContentType.IsSet() {
		ct := enc.TLNum(m.ContentType.Unwrap())
		buf := make([]byte, ct.EncodingLength())
		ct.EncodeInto(buf)
		if err := e.WriteBlock(enc.TypeContentType, buf); err != nil {
			return err
		}
	}
	if m.FreshnessPeriod.IsSet() {
		fp := enc.TLNum(m.FreshnessPeriod.Unwrap())
		buf := make([]byte, fp.EncodingLength())
		fp.EncodeInto(buf)
		if err := e.WriteBlock(enc.TypeFreshness, buf); err != nil {
			return err
		}
	}
	if m.FinalBlockID.IsSet() {
		fb := m.FinalBlockID.Unwrap()
		if err := e.WriteTL(enc.TypeFinalBlockID, fb.EncodingLength()); err != nil {
			return err
		}
		if err := fb.EncodeInto(e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMetaInfo reads TLV_MetaInfo from d.
func DecodeMetaInfo(d *enc.Decoder) (*MetaInfo, error) {
	length, err := d.ReadTL(enc.TypeMetaInfo)
	if err != nil {
		return nil, err
	}
	end := d.Offset() + length
	m := &MetaInfo{}
	for d.Offset() < end {
		typ, err := d.ReadVarNum()
		if err != nil {
			return nil, err
		}
		if err := d.MoveBackward(enc.ProbeVarSize(uint64(typ))); err != nil {
			return nil, err
		}
		switch typ {
		case enc.TypeContentType:
			l, err := d.ReadTL(enc.TypeContentType)
			if err != nil {
				return nil, err
			}
			raw, err := d.ReadBytes(l)
			if err != nil {
				return nil, err
			}
			v, pos := enc.ParseTLNum(raw)
			if pos != l {
				return nil, enc.ErrWrongTLVType
			}
			m.ContentType = Some(ContentType(v))
		case enc.TypeFreshness:
			l, err := d.ReadTL(enc.TypeFreshness)
			if err != nil {
				return nil, err
			}
			raw, err := d.ReadBytes(l)
			if err != nil {
				return nil, err
			}
			v, pos := enc.ParseTLNum(raw)
			if pos != l {
				return nil, enc.ErrWrongTLVType
			}
			m.FreshnessPeriod = Some(uint64(v))
		case enc.TypeFinalBlockID:
			l, err := d.ReadTL(enc.TypeFinalBlockID)
			if err != nil {
				return nil, err
			}
			ctyp, err := d.ReadVarNum()
			if err != nil {
				return nil, err
			}
			clen, err := d.ReadVarNum()
			if err != nil {
				return nil, err
			}
			cval, err := d.ReadBytes(int(clen))
			if err != nil {
				return nil, err
			}
			comp := enc.Component{Typ: ctyp, Val: append([]byte(nil), cval...)}
			if comp.EncodingLength() != l {
				return nil, enc.ErrWrongTLVType
			}
			m.FinalBlockID = Some(comp)
		default:
			return nil, enc.ErrWrongTLVType
		}
	}
	if d.Offset() != end {
		return nil, enc.ErrWrongTLVType
	}
	return m, nil
}
