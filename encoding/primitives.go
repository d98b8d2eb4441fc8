// Package encoding implements the NDN TLV wire format: variable-length
// integers, names, and a fixed-capacity, in-place encoder/decoder pair.
package encoding

import "encoding/binary"

// TLNum is a TLV Type or Length number, using NDN's variable-length
// unsigned integer encoding (1, 3, 5 or 9 bytes on the wire).
type TLNum uint64

// EncodingLength returns the number of bytes v occupies on the wire.
func (v TLNum) EncodingLength() int {
	switch x := uint64(v); {
	case x <= 0xfc:
		return 1
	case x <= 0xffff:
		return 3
	case x <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// EncodeInto writes v into buf using NDN's variable-length encoding and
// returns the number of bytes written. buf must have enough room.
func (v TLNum) EncodeInto(buf []byte) int {
	switch x := uint64(v); {
	case x <= 0xfc:
		buf[0] = byte(x)
		return 1
	case x <= 0xffff:
		buf[0] = 0xfd
		binary.BigEndian.PutUint16(buf[1:], uint16(x))
		return 3
	case x <= 0xffffffff:
		buf[0] = 0xfe
		binary.BigEndian.PutUint32(buf[1:], uint32(x))
		return 5
	default:
		buf[0] = 0xff
		binary.BigEndian.PutUint64(buf[1:], uint64(x))
		return 9
	}
}

// ParseTLNum parses a TLNum from the front of buf, returning the value and
// the number of bytes consumed. buf must hold at least as many bytes as the
// encoding requires; callers that don't know this ahead of time should use
// Decoder.ReadVarNum instead.
func ParseTLNum(buf []byte) (val TLNum, pos int) {
	switch x := buf[0]; {
	case x <= 0xfc:
		return TLNum(x), 1
	case x == 0xfd:
		return TLNum(binary.BigEndian.Uint16(buf[1:3])), 3
	case x == 0xfe:
		return TLNum(binary.BigEndian.Uint32(buf[1:5])), 5
	default:
		return TLNum(binary.BigEndian.Uint64(buf[1:9])), 9
	}
}

// ProbeVarSize returns the number of bytes needed to encode v as a TLNum.
func ProbeVarSize(v uint64) int {
	return TLNum(v).EncodingLength()
}

// ProbeBlockSize returns the total wire size of a TLV block with the given
// type and value length: var_size(type) + var_size(length) + length.
func ProbeBlockSize(typ TLNum, valueLen int) int {
	return typ.EncodingLength() + TLNum(valueLen).EncodingLength() + valueLen
}
