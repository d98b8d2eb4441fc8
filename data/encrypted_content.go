package data

import (
	cr "github.com/ghsecuritylab/ndn-lite-go/crypto"
	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
)

const aesBlockSize = 16

// SetEncryptedContent encrypts plaintext with AES-128-CBC (no padding —
// the caller must supply a block-multiple plaintext) and writes the
// result as d.Content, structured as
// TLV_AC_ENCRYPTED_CONTENT{ keyIDName, TLV_AC_AES_IV(16), TLV_AC_ENCRYPTED_PAYLOAD(ciphertext) }
// (§4.4's encrypted-content helper). It fails ErrOversize if the result
// would exceed encoding.ContentMax.
//
// The inner advance uses the freshly computed ciphertext length, not a
// value recorded before encryption — an earlier revision of this helper
// advanced by a stale length here; see the Open Questions entry in
// DESIGN.md.
func SetEncryptedContent(d *Data, backend cr.Backend, plaintext []byte, keyIDName enc.Name, iv []byte, keyHandle cr.KeyID) error {
	if len(plaintext)%aesBlockSize != 0 {
		return cr.ErrInvalidKeySize
	}
	ciphertext, err := backend.AesCbcEncrypt(keyHandle, iv, plaintext)
	if err != nil {
		return err
	}

	inner := keyIDName.ProbeBlockSize() +
		enc.ProbeBlockSize(enc.TypeACAesIV, len(iv)) +
		enc.ProbeBlockSize(enc.TypeACEncryptedPayload, len(ciphertext))
	total := enc.ProbeBlockSize(enc.TypeACEncryptedContent, inner)
	if total > enc.ContentMax {
		return enc.ErrOversize
	}

	buf := make([]byte, total)
	e := enc.NewEncoder(buf)
	if err := e.WriteTL(enc.TypeACEncryptedContent, inner); err != nil {
		return err
	}
	if err := keyIDName.EncodeInto(e); err != nil {
		return err
	}
	if err := e.WriteBlock(enc.TypeACAesIV, iv); err != nil {
		return err
	}
	if err := e.WriteBlock(enc.TypeACEncryptedPayload, ciphertext); err != nil {
		return err
	}

	d.Content = e.Bytes()
	return nil
}

// ParseEncryptedContent reverses SetEncryptedContent, decrypting the
// content with the key loaded at keyHandle.
func ParseEncryptedContent(d *Data, backend cr.Backend, keyHandle cr.KeyID) (plaintext []byte, keyIDName enc.Name, iv []byte, err error) {
	dec := enc.NewDecoder(d.Content)
	length, err := dec.ReadTL(enc.TypeACEncryptedContent)
	if err != nil {
		return nil, nil, nil, err
	}
	end := dec.Offset() + length

	keyIDName, err = enc.DecodeName(dec)
	if err != nil {
		return nil, nil, nil, err
	}

	ivLen, err := dec.ReadTL(enc.TypeACAesIV)
	if err != nil {
		return nil, nil, nil, err
	}
	ivBytes, err := dec.ReadBytes(ivLen)
	if err != nil {
		return nil, nil, nil, err
	}
	iv = append([]byte(nil), ivBytes...)

	payloadLen, err := dec.ReadTL(enc.TypeACEncryptedPayload)
	if err != nil {
		return nil, nil, nil, err
	}
	ciphertext, err := dec.ReadBytes(payloadLen)
	if err != nil {
		return nil, nil, nil, err
	}
	if dec.Offset() != end {
		return nil, nil, nil, enc.ErrWrongTLVType
	}

	plaintext, err = backend.AesCbcDecrypt(keyHandle, iv, ciphertext)
	if err != nil {
		return nil, nil, nil, err
	}
	return plaintext, keyIDName, iv, nil
}
