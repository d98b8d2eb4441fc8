package encoding

// Encoder wraps a caller-provided, fixed-capacity buffer with an
// advancing write cursor. Every write is bounds-checked against the
// buffer's capacity; there is no reallocation, matching the no-heap
// discipline of the constrained-device profile this codec targets.
type Encoder struct {
	buf    []byte
	offset int
}

// NewEncoder wraps buf for writing. The encoder never grows buf: once
// offset reaches len(buf), further writes fail with ErrOversize.
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{buf: buf}
}

// Offset returns the current write cursor.
func (e *Encoder) Offset() int { return e.offset }

// Capacity returns the total size of the underlying buffer.
func (e *Encoder) Capacity() int { return len(e.buf) }

// Bytes returns the portion of the buffer written so far, [0, Offset()).
func (e *Encoder) Bytes() []byte { return e.buf[:e.offset] }

// Buffer returns the full underlying buffer, including unwritten tail.
func (e *Encoder) Buffer() []byte { return e.buf }

func (e *Encoder) room() int { return len(e.buf) - e.offset }

// WriteByte appends a single byte.
func (e *Encoder) WriteByte(b byte) error {
	if e.room() < 1 {
		return ErrOversize
	}
	e.buf[e.offset] = b
	e.offset++
	return nil
}

// WriteVarNum appends v using the TLV variable-length integer encoding.
func (e *Encoder) WriteVarNum(v TLNum) error {
	n := v.EncodingLength()
	if e.room() < n {
		return ErrOversize
	}
	e.offset += v.EncodeInto(e.buf[e.offset:])
	return nil
}

// WriteTL appends a type and length field, e.g. the header of a TLV block.
func (e *Encoder) WriteTL(typ TLNum, length int) error {
	if err := e.WriteVarNum(typ); err != nil {
		return err
	}
	return e.WriteVarNum(TLNum(length))
}

// WriteBytes appends a raw byte run, with no type/length framing.
func (e *Encoder) WriteBytes(b []byte) error {
	if e.room() < len(b) {
		return ErrOversize
	}
	e.offset += copy(e.buf[e.offset:], b)
	return nil
}

// WriteBlock appends a complete TLV block: type, length, and value.
func (e *Encoder) WriteBlock(typ TLNum, value []byte) error {
	if err := e.WriteTL(typ, len(value)); err != nil {
		return err
	}
	return e.WriteBytes(value)
}

// MoveForward reserves n bytes without writing them, for a header that
// will be backpatched once its final contents are known (see the ECDSA
// sign path, which does not know the outer TLV_Data length until after
// the variable-length signature has been produced).
func (e *Encoder) MoveForward(n int) error {
	if e.room() < n {
		return ErrOversize
	}
	e.offset += n
	return nil
}

// MoveBackward rewinds the cursor by n bytes, e.g. to re-emit a header
// once its true size is known, or to back up over a type byte that was
// peeked rather than consumed.
func (e *Encoder) MoveBackward(n int) error {
	if n > e.offset {
		return ErrOversize
	}
	e.offset -= n
	return nil
}

// Seek moves the cursor directly to an absolute offset within the buffer.
// It is used by the ECDSA backpatch path to write a header at a computed
// position without disturbing bytes already written ahead of it.
func (e *Encoder) Seek(offset int) error {
	if offset < 0 || offset > len(e.buf) {
		return ErrOversize
	}
	e.offset = offset
	return nil
}

// ShiftLeft moves the contiguous region [from, to) down to the start of
// the buffer (offset 0), discarding the head-room reserved ahead of it.
// This is the final step of the ECDSA backpatch strategy in §4.4: once
// the true header size is known, it is written directly before the
// signed body, and everything is shifted so the packet starts at byte 0.
// Returns the new cursor position, equal to the length of the shifted
// region.
func (e *Encoder) ShiftLeft(from, to int) int {
	n := copy(e.buf, e.buf[from:to])
	e.offset = n
	return n
}
