package encoding

import "strings"

// Name is an ordered sequence of components. The slice type itself does
// not bound its length; NameFromStr, DecodeName and EncodeInto enforce the
// NameMax ceiling and report ErrOversize for a longer name.
type Name []Component

// NameFromStr parses a "/"-delimited name string into a Name. Each
// "/…/" segment becomes one GenericNameComponent; a trailing "/" does not
// produce an extra empty component. The string must start with "/", or
// ErrNameInvalidFormat is returned.
func NameFromStr(s string) (Name, error) {
	if len(s) == 0 || s[0] != '/' {
		return nil, ErrNameInvalidFormat
	}
	s = strings.TrimSuffix(s, "/")
	if s == "/" || s == "" {
		return Name{}, nil
	}
	segs := strings.Split(s[1:], "/")
	if len(segs) > NameMax {
		return nil, ErrOversize
	}
	n := make(Name, len(segs))
	for i, seg := range segs {
		n[i] = NewGenericComponent(seg)
	}
	return n, nil
}

// Clone returns a deep copy of n.
func (n Name) Clone() Name {
	out := make(Name, len(n))
	for i, c := range n {
		out[i] = c.Clone()
	}
	return out
}

// EncodingLength returns the size of the inner value of the TLV_Name
// block (the sum of each component's block size), not counting the
// TLV_Name type+length header itself.
func (n Name) EncodingLength() int {
	l := 0
	for _, c := range n {
		l += c.EncodingLength()
	}
	return l
}

// ProbeBlockSize returns the full wire size of the name, including its
// own TLV_Name type+length header.
func (n Name) ProbeBlockSize() int {
	return ProbeBlockSize(TypeName, n.EncodingLength())
}

// EncodeInto writes the full TLV_Name block (header + components) into e.
func (n Name) EncodeInto(e *Encoder) error {
	if len(n) > NameMax {
		return ErrOversize
	}
	if err := e.WriteTL(TypeName, n.EncodingLength()); err != nil {
		return err
	}
	for _, c := range n {
		if err := c.EncodeInto(e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeName reads a TLV_Name block from d. It fails with ErrOversize if
// the name would hold more than NameMax components.
func DecodeName(d *Decoder) (Name, error) {
	length, err := d.ReadTL(TypeName)
	if err != nil {
		return nil, err
	}
	end := d.Offset() + length
	var n Name
	for d.Offset() < end {
		typ, err := d.ReadVarNum()
		if err != nil {
			return nil, err
		}
		valLen, err := d.ReadVarNum()
		if err != nil {
			return nil, err
		}
		val, err := d.ReadBytes(int(valLen))
		if err != nil {
			return nil, err
		}
		if len(n) >= NameMax {
			return nil, ErrOversize
		}
		comp := Component{Typ: typ, Val: make([]byte, len(val))}
		copy(comp.Val, val)
		n = append(n, comp)
	}
	if d.Offset() != end {
		return nil, ErrWrongTLVType
	}
	return n, nil
}

// Compare returns 0 if a and b have the same length and are componentwise
// equal, and a non-zero value otherwise. It is a boolean equality
// predicate, not a three-way ordering (see §4.2's open question).
func Compare(a, b Name) int {
	if len(a) != len(b) {
		return 1
	}
	for i := range a {
		if a[i].Compare(b[i]) != 0 {
			return 1
		}
	}
	return 0
}

// IsPrefix returns 0 if a is a proper-or-equal prefix of b (len(a) <=
// len(b) and a equals b's first len(a) components), and 1 otherwise.
func IsPrefix(a, b Name) int {
	if len(a) > len(b) {
		return 1
	}
	for i := range a {
		if a[i].Compare(b[i]) != 0 {
			return 1
		}
	}
	return 0
}

// Equal reports whether a and b are the same name, as a Go bool
// convenience wrapper around Compare.
func (n Name) Equal(other Name) bool {
	return Compare(n, other) == 0
}

// String renders the name in "/"-delimited URI form; the empty name
// renders as "/".
func (n Name) String() string {
	if len(n) == 0 {
		return "/"
	}
	sb := strings.Builder{}
	for _, c := range n {
		sb.WriteByte('/')
		sb.WriteString(c.String())
	}
	return sb.String()
}
