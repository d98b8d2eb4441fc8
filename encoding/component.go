package encoding

import (
	"bytes"
	"strconv"
	"strings"
)

// Component is a single NDN name component: a TLV type tag paired with an
// opaque byte-string value.
type Component struct {
	Typ TLNum
	Val []byte
}

// NewGenericComponent builds a GenericNameComponent from a string, the
// form produced by splitting a "/"-delimited name string.
func NewGenericComponent(val string) Component {
	return Component{Typ: TypeGeneric, Val: []byte(val)}
}

// Clone returns a deep copy of c, so callers may retain a Component past
// the lifetime of the buffer it was decoded from.
func (c Component) Clone() Component {
	v := make([]byte, len(c.Val))
	copy(v, c.Val)
	return Component{Typ: c.Typ, Val: v}
}

// EncodingLength returns the total wire size of the component.
func (c Component) EncodingLength() int {
	return ProbeBlockSize(c.Typ, len(c.Val))
}

// EncodeInto writes the component's TLV block into e.
func (c Component) EncodeInto(e *Encoder) error {
	return e.WriteBlock(c.Typ, c.Val)
}

// Compare returns 0 if a and b have the same type and value, and a
// non-zero value otherwise. It is a boolean equality predicate (per
// §4.2's note that name comparisons are not three-way total orders), not
// a lexicographic ordering function.
func (c Component) Compare(rhs Component) int {
	if c.Typ != rhs.Typ || !bytes.Equal(c.Val, rhs.Val) {
		return 1
	}
	return 0
}

// String renders the component as "type=value" using a decimal type
// number, or bare "value" for the common GenericNameComponent case.
func (c Component) String() string {
	sb := strings.Builder{}
	if c.Typ != TypeGeneric {
		sb.WriteString(strconv.FormatUint(uint64(c.Typ), 10))
		sb.WriteByte('=')
	}
	sb.Write(escapeComponentValue(c.Val))
	return sb.String()
}

// escapeComponentValue percent-encodes bytes that are unsafe to place
// directly into a name URI (control bytes, '/', '%').
func escapeComponentValue(v []byte) []byte {
	needsEscape := false
	for _, b := range v {
		if !isSafeURIByte(b) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return v
	}
	out := make([]byte, 0, len(v)*3)
	const hex = "0123456789ABCDEF"
	for _, b := range v {
		if isSafeURIByte(b) {
			out = append(out, b)
		} else {
			out = append(out, '%', hex[b>>4], hex[b&0xf])
		}
	}
	return out
}

func isSafeURIByte(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	case b == '-' || b == '.' || b == '_' || b == '~':
		return true
	default:
		return false
	}
}
