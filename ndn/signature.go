package ndn

import (
	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
)

// SigType identifies a signature algorithm carried in TLV_SignatureType.
type SigType uint8

const (
	SigDigestSha256 SigType = 0
	SigEcdsaSha256  SigType = 3
	SigHmacSha256   SigType = 200
)

const (
	sigValueDigestSize = 32
	sigValueHmacSize   = 32
	// sigValueEcdsaMax is the largest DER encoding of a P-256 ECDSA
	// signature: sequence header + two 33-byte integers, worst case.
	sigValueEcdsaMax = 72
	sigValueRaw64    = 64

	validityFieldLen = 15
)

// Signature holds the mutable signature-info/signature-value state for one
// Data packet: type, optional key locator, optional validity period,
// optional nonce and timestamp, and the signature bytes themselves (§3).
type Signature struct {
	sigType SigType
	sigSize int
	sigValue [sigValueEcdsaMax]byte

	keyLocatorName enc.Name

	notBefore string
	notAfter  string

	nonce     uint32
	timestamp uint64

	enableKeyLocator     bool
	enableValidityPeriod bool
	enableNonce          bool
	enableTimestamp      bool
}

// SigType returns the signature's algorithm.
func (s *Signature) SigType() SigType { return s.sigType }

// SigValue returns the current signature bytes (length SigSize()).
func (s *Signature) SigValue() []byte { return s.sigValue[:s.sigSize] }

// SigSize returns the number of valid bytes in SigValue.
func (s *Signature) SigSize() int { return s.sigSize }

// SetType initializes sig_type and resets sig_size to the fixed size for
// digest/HMAC types; ECDSA's size is unknown until SetRawSigValue or
// SetDERSigValue is called after signing.
func (s *Signature) SetType(t SigType) error {
	switch t {
	case SigDigestSha256:
		s.sigType = t
		s.sigSize = sigValueDigestSize
	case SigHmacSha256:
		s.sigType = t
		s.sigSize = sigValueHmacSize
	case SigEcdsaSha256:
		s.sigType = t
		s.sigSize = 0
	default:
		return ErrUnsupportedSigType
	}
	return nil
}

// SetFixedSigValue installs a 32-byte digest or HMAC signature. It fails
// ErrWrongSigSize if the type isn't one of the two fixed-size kinds or if
// value isn't exactly 32 bytes.
func (s *Signature) SetFixedSigValue(value []byte) error {
	if s.sigType != SigDigestSha256 && s.sigType != SigHmacSha256 {
		return ErrWrongSigSize
	}
	if len(value) != sigValueDigestSize {
		return ErrWrongSigSize
	}
	copy(s.sigValue[:], value)
	s.sigSize = len(value)
	return nil
}

// SetDERSigValue installs a variable-length DER-encoded ECDSA signature.
func (s *Signature) SetDERSigValue(der []byte) error {
	if s.sigType != SigEcdsaSha256 {
		return ErrWrongSigSize
	}
	if len(der) > len(s.sigValue) {
		return ErrWrongSigSize
	}
	copy(s.sigValue[:], der)
	s.sigSize = len(der)
	return nil
}

// SetRawSigValue installs a fixed raw 64-byte (r‖s) ECDSA signature via the
// explicit raw setter mentioned in §6 — not used on the wire path, which is
// DER-only, but available for backends that hand back raw signatures before
// DER re-encoding.
func (s *Signature) SetRawSigValue(raw []byte) error {
	if s.sigType != SigEcdsaSha256 {
		return ErrWrongSigSize
	}
	if len(raw) != sigValueRaw64 {
		return ErrWrongSigSize
	}
	copy(s.sigValue[:], raw)
	s.sigSize = len(raw)
	return nil
}

// SetKeyLocator copies name by value and enables the key locator field.
func (s *Signature) SetKeyLocator(name enc.Name) {
	s.keyLocatorName = name.Clone()
	s.enableKeyLocator = true
}

// KeyLocator returns the key locator name and whether it is enabled.
func (s *Signature) KeyLocator() (enc.Name, bool) {
	return s.keyLocatorName, s.enableKeyLocator
}

// SetValidityPeriod sets not-before/not-after, each a 15-byte ISO-8601
// basic-format timestamp (e.g. "20260101T000000"[:15]), and enables the
// validity-period field.
func (s *Signature) SetValidityPeriod(notBefore, notAfter string) error {
	if len(notBefore) != validityFieldLen || len(notAfter) != validityFieldLen {
		return ErrWrongSigSize
	}
	s.notBefore = notBefore
	s.notAfter = notAfter
	s.enableValidityPeriod = true
	return nil
}

// ValidityPeriod returns the validity period fields and whether enabled.
func (s *Signature) ValidityPeriod() (notBefore, notAfter string, ok bool) {
	return s.notBefore, s.notAfter, s.enableValidityPeriod
}

// SetNonce sets the 4-byte signed-interest-style nonce and enables it.
func (s *Signature) SetNonce(n uint32) {
	s.nonce = n
	s.enableNonce = true
}

// Nonce returns the nonce and whether it is enabled.
func (s *Signature) Nonce() (uint32, bool) { return s.nonce, s.enableNonce }

// SetTimestamp sets the signed-interest-style timestamp and enables it.
func (s *Signature) SetTimestamp(t uint64) {
	s.timestamp = t
	s.enableTimestamp = true
}

// Timestamp returns the timestamp and whether it is enabled.
func (s *Signature) Timestamp() (uint64, bool) { return s.timestamp, s.enableTimestamp }

// InfoProbeBlockSize returns the wire size of TLV_SignatureInfo, including
// its own type+length header, given the fields currently enabled (§4.3).
func (s *Signature) InfoProbeBlockSize() int {
	inner := enc.ProbeBlockSize(enc.TypeSignatureType, 1)
	if s.enableKeyLocator {
		nameBlock := s.keyLocatorName.ProbeBlockSize()
		inner += enc.ProbeBlockSize(enc.TypeKeyLocator, nameBlock)
	}
	if s.enableValidityPeriod {
		nb := enc.ProbeBlockSize(enc.TypeNotBefore, validityFieldLen)
		na := enc.ProbeBlockSize(enc.TypeNotAfter, validityFieldLen)
		inner += enc.ProbeBlockSize(enc.TypeValidityPeriod, nb+na)
	}
	if s.enableNonce {
		inner += enc.ProbeBlockSize(enc.TypeNonce, 4)
	}
	if s.enableTimestamp {
		inner += enc.ProbeBlockSize(enc.TypeSignedInterestTimestamp, enc.ProbeVarSize(s.timestamp))
	}
	return enc.ProbeBlockSize(enc.TypeSignatureInfo, inner)
}

// ValueProbeBlockSize returns the wire size of TLV_SignatureValue given the
// current sig_size.
func (s *Signature) ValueProbeBlockSize() int {
	return enc.ProbeBlockSize(enc.TypeSignatureValue, s.sigSize)
}

// EncodeInfoInto writes TLV_SignatureInfo (header + body) into e.
func (s *Signature) EncodeInfoInto(e *enc.Encoder) error {
	body := s.infoBodyLength()
	if err := e.WriteTL(enc.TypeSignatureInfo, body); err != nil {
		return err
	}
	if err := e.WriteBlock(enc.TypeSignatureType, []byte{byte(s.sigType)}); err != nil {
		return err
	}
	if s.enableKeyLocator {
		// TLV_KeyLocator's value is exactly the name's own full block
		// (the name's type+length header plus its components).
		if err := e.WriteTL(enc.TypeKeyLocator, s.keyLocatorName.ProbeBlockSize()); err != nil {
			return err
		}
		if err := s.keyLocatorName.EncodeInto(e); err != nil {
			return err
		}
	}
	if s.enableValidityPeriod {
		nb := enc.ProbeBlockSize(enc.TypeNotBefore, validityFieldLen)
		na := enc.ProbeBlockSize(enc.TypeNotAfter, validityFieldLen)
		if err := e.WriteTL(enc.TypeValidityPeriod, nb+na); err != nil {
			return err
		}
		if err := e.WriteBlock(enc.TypeNotBefore, []byte(s.notBefore)); err != nil {
			return err
		}
		if err := e.WriteBlock(enc.TypeNotAfter, []byte(s.notAfter)); err != nil {
			return err
		}
	}
	if s.enableNonce {
		var nb [4]byte
		nb[0] = byte(s.nonce >> 24)
		nb[1] = byte(s.nonce >> 16)
		nb[2] = byte(s.nonce >> 8)
		nb[3] = byte(s.nonce)
		if err := e.WriteBlock(enc.TypeNonce, nb[:]); err != nil {
			return err
		}
	}
	if s.enableTimestamp {
		tn := enc.TLNum(s.timestamp)
		buf := make([]byte, tn.EncodingLength())
		tn.EncodeInto(buf)
		if err := e.WriteBlock(enc.TypeSignedInterestTimestamp, buf); err != nil {
			return err
		}
	}
	return nil
}

func (s *Signature) infoBodyLength() int {
	body := enc.ProbeBlockSize(enc.TypeSignatureType, 1)
	if s.enableKeyLocator {
		body += enc.ProbeBlockSize(enc.TypeKeyLocator, s.keyLocatorName.ProbeBlockSize())
	}
	if s.enableValidityPeriod {
		nb := enc.ProbeBlockSize(enc.TypeNotBefore, validityFieldLen)
		na := enc.ProbeBlockSize(enc.TypeNotAfter, validityFieldLen)
		body += enc.ProbeBlockSize(enc.TypeValidityPeriod, nb+na)
	}
	if s.enableNonce {
		body += enc.ProbeBlockSize(enc.TypeNonce, 4)
	}
	if s.enableTimestamp {
		body += enc.ProbeBlockSize(enc.TypeSignedInterestTimestamp, enc.ProbeVarSize(s.timestamp))
	}
	return body
}

// EncodeValueInto writes TLV_SignatureValue (header + bytes) into e.
func (s *Signature) EncodeValueInto(e *enc.Encoder) error {
	return e.WriteBlock(enc.TypeSignatureValue, s.sigValue[:s.sigSize])
}

// DecodeInfo reads TLV_SignatureInfo from d into a fresh Signature.
func DecodeInfo(d *enc.Decoder) (*Signature, error) {
	length, err := d.ReadTL(enc.TypeSignatureInfo)
	if err != nil {
		return nil, err
	}
	end := d.Offset() + length
	s := &Signature{}

	if _, err := d.ReadTL(enc.TypeSignatureType); err != nil {
		return nil, err
	}
	typByte, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	if err := s.SetType(SigType(typByte)); err != nil {
		return nil, err
	}

	for d.Offset() < end {
		typ, err := d.ReadVarNum()
		if err != nil {
			return nil, err
		}
		if err := d.MoveBackward(enc.ProbeVarSize(uint64(typ))); err != nil {
			return nil, err
		}
		switch typ {
		case enc.TypeKeyLocator:
			if _, err := d.ReadTL(enc.TypeKeyLocator); err != nil {
				return nil, err
			}
			name, err := enc.DecodeName(d)
			if err != nil {
				return nil, err
			}
			s.SetKeyLocator(name)
		case enc.TypeValidityPeriod:
			vlen, err := d.ReadTL(enc.TypeValidityPeriod)
			if err != nil {
				return nil, err
			}
			vend := d.Offset() + vlen
			if _, err := d.ReadTL(enc.TypeNotBefore); err != nil {
				return nil, err
			}
			nb, err := d.ReadBytes(validityFieldLen)
			if err != nil {
				return nil, err
			}
			if _, err := d.ReadTL(enc.TypeNotAfter); err != nil {
				return nil, err
			}
			na, err := d.ReadBytes(validityFieldLen)
			if err != nil {
				return nil, err
			}
			if err := s.SetValidityPeriod(string(nb), string(na)); err != nil {
				return nil, err
			}
			if d.Offset() != vend {
				return nil, enc.ErrWrongTLVType
			}
		case enc.TypeNonce:
			if _, err := d.ReadTL(enc.TypeNonce); err != nil {
				return nil, err
			}
			nb, err := d.ReadBytes(4)
			if err != nil {
				return nil, err
			}
			s.SetNonce(uint32(nb[0])<<24 | uint32(nb[1])<<16 | uint32(nb[2])<<8 | uint32(nb[3]))
		case enc.TypeSignedInterestTimestamp:
			length, err := d.ReadTL(enc.TypeSignedInterestTimestamp)
			if err != nil {
				return nil, err
			}
			raw, err := d.ReadBytes(length)
			if err != nil {
				return nil, err
			}
			ts, pos := enc.ParseTLNum(raw)
			if pos != length {
				return nil, enc.ErrWrongTLVType
			}
			s.SetTimestamp(uint64(ts))
		default:
			return nil, enc.ErrWrongTLVType
		}
	}
	if d.Offset() != end {
		return nil, enc.ErrWrongTLVType
	}
	return s, nil
}

// DecodeValue reads TLV_SignatureValue from d into s.
func DecodeValue(d *enc.Decoder, s *Signature) error {
	length, err := d.ReadTL(enc.TypeSignatureValue)
	if err != nil {
		return err
	}
	val, err := d.ReadBytes(length)
	if err != nil {
		return err
	}
	if len(val) > len(s.sigValue) {
		return ErrWrongSigSize
	}
	copy(s.sigValue[:], val)
	s.sigSize = len(val)
	return nil
}
