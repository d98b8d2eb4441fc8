package encoding

import "errors"

// ErrOversize is returned whenever an encode or decode would exceed a
// fixed-capacity buffer, Name, or Content limit.
var ErrOversize = errors.New("encoding: buffer or field exceeds fixed capacity")

// ErrWrongTLVType is returned when a decoder finds a TLV type byte other
// than the one it expected at the current cursor position.
var ErrWrongTLVType = errors.New("encoding: unexpected TLV type")

// ErrNameInvalidFormat is returned by NameFromStr when the input does
// not start with '/'.
var ErrNameInvalidFormat = errors.New("encoding: name string must start with '/'")

// ErrBufferUnderrun is returned when a decoder runs out of bytes before
// satisfying a read.
var ErrBufferUnderrun = errors.New("encoding: not enough bytes remaining")
