package data

import (
	"encoding/binary"

	cr "github.com/ghsecuritylab/ndn-lite-go/crypto"
	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
	"github.com/ghsecuritylab/ndn-lite-go/ndn"
)

func contentProbe(content []byte) int {
	if content == nil {
		return 0
	}
	return enc.ProbeBlockSize(enc.TypeContent, len(content))
}

func writeContent(e *enc.Encoder, content []byte) error {
	if content == nil {
		return nil
	}
	return e.WriteBlock(enc.TypeContent, content)
}

// hmacKeyLocatorName builds producer_identity ‖ "KEY" ‖ BE32(key_id), the
// key locator convention for HMAC signatures (§4.4 step 1).
func hmacKeyLocatorName(producerIdentity enc.Name, keyID uint32) enc.Name {
	var idBytes [4]byte
	binary.BigEndian.PutUint32(idBytes[:], keyID)
	n := producerIdentity.Clone()
	n = append(n, enc.NewGenericComponent("KEY"))
	n = append(n, enc.NewGenericComponent(string(idBytes[:])))
	return n
}

// writeUnsignedBody writes name, metainfo, content (if present), and
// signature-info in order, returning the offsets bracketing the signed
// byte range (§4.4: "name‖metainfo‖content_tlv‖signature_info_tlv").
func writeUnsignedBody(e *enc.Encoder, name enc.Name, meta *ndn.MetaInfo, content []byte, sig *ndn.Signature) (signStart, signEnd int, err error) {
	signStart = e.Offset()
	if err = name.EncodeInto(e); err != nil {
		return
	}
	if err = meta.EncodeInto(e); err != nil {
		return
	}
	if err = writeContent(e, content); err != nil {
		return
	}
	if err = sig.EncodeInfoInto(e); err != nil {
		return
	}
	signEnd = e.Offset()
	return
}

// EstimateFixedBufferSize returns a buffer size sufficient for SignDigest
// or SignHmac given the encoded field sizes.
func EstimateFixedBufferSize(name enc.Name, meta *ndn.MetaInfo, content []byte, sig *ndn.Signature) int {
	body := name.ProbeBlockSize() + meta.ProbeBlockSize() + contentProbe(content) +
		sig.InfoProbeBlockSize() + sig.ValueProbeBlockSize()
	return enc.ProbeBlockSize(enc.TypeData, body)
}

// SignDigest assembles and signs a Data packet with DIGEST_SHA256 into buf,
// returning the number of bytes written.
func SignDigest(buf []byte, backend cr.Backend, name enc.Name, meta *ndn.MetaInfo, content []byte) (int, *Data, error) {
	sig := &ndn.Signature{}
	if err := sig.SetType(ndn.SigDigestSha256); err != nil {
		return 0, nil, err
	}

	bodySize := name.ProbeBlockSize() + meta.ProbeBlockSize() + contentProbe(content) +
		sig.InfoProbeBlockSize() + sig.ValueProbeBlockSize()

	e := enc.NewEncoder(buf)
	if err := e.WriteTL(enc.TypeData, bodySize); err != nil {
		return 0, nil, err
	}
	signStart, signEnd, err := writeUnsignedBody(e, name, meta, content, sig)
	if err != nil {
		return 0, nil, err
	}

	digest := backend.Sha256(e.Buffer()[signStart:signEnd])
	if err := sig.SetFixedSigValue(digest[:]); err != nil {
		return 0, nil, err
	}
	if err := sig.EncodeValueInto(e); err != nil {
		return 0, nil, err
	}
	return e.Offset(), &Data{Name: name, MetaInfo: *meta, Content: content, Signature: *sig}, nil
}

// SignHmac assembles and signs a Data packet with HMAC_SHA256 into buf,
// using the key loaded at keyHandle (key_id, used in the key locator) on
// backend.
func SignHmac(buf []byte, backend cr.Backend, name, producerIdentity enc.Name, meta *ndn.MetaInfo, content []byte, keyHandle cr.KeyID, keyID uint32) (int, *Data, error) {
	sig := &ndn.Signature{}
	if err := sig.SetType(ndn.SigHmacSha256); err != nil {
		return 0, nil, err
	}
	sig.SetKeyLocator(hmacKeyLocatorName(producerIdentity, keyID))

	bodySize := name.ProbeBlockSize() + meta.ProbeBlockSize() + contentProbe(content) +
		sig.InfoProbeBlockSize() + sig.ValueProbeBlockSize()

	e := enc.NewEncoder(buf)
	if err := e.WriteTL(enc.TypeData, bodySize); err != nil {
		return 0, nil, err
	}
	signStart, signEnd, err := writeUnsignedBody(e, name, meta, content, sig)
	if err != nil {
		return 0, nil, err
	}

	mac, err := backend.HmacSha256(keyHandle, e.Buffer()[signStart:signEnd])
	if err != nil {
		return 0, nil, err
	}
	if err := sig.SetFixedSigValue(mac[:]); err != nil {
		return 0, nil, err
	}
	if err := sig.EncodeValueInto(e); err != nil {
		return 0, nil, err
	}
	return e.Offset(), &Data{Name: name, MetaInfo: *meta, Content: content, Signature: *sig}, nil
}

// EstimateEcdsaBufferSize returns a buffer size sufficient for SignEcdsa,
// including the head-room the backpatch strategy reserves and discards
// (§4.4, §9's design note on the wasted head-room).
func EstimateEcdsaBufferSize(name enc.Name, meta *ndn.MetaInfo, content []byte) int {
	unsignedMax := name.ProbeBlockSize() + meta.ProbeBlockSize() + contentProbe(content) +
		enc.ProbeBlockSize(enc.TypeSignatureInfo, 64) // generous key-locator allowance
	return enc.MaxTypeField + enc.MaxLengthField + unsignedMax + enc.ProbeBlockSize(enc.TypeSignatureValue, 80)
}

// SignEcdsa assembles and signs a Data packet with ECDSA_SHA256 into buf,
// using the sign-first-backpatch-then-shift strategy of §4.4's variable-
// length signature path.
func SignEcdsa(buf []byte, backend cr.Backend, keyHandle cr.KeyID, name, keyLocator enc.Name, meta *ndn.MetaInfo, content []byte) (int, *Data, error) {
	sig := &ndn.Signature{}
	if err := sig.SetType(ndn.SigEcdsaSha256); err != nil {
		return 0, nil, err
	}
	sig.SetKeyLocator(keyLocator)

	e := enc.NewEncoder(buf)
	if err := e.MoveForward(enc.MaxTypeField + enc.MaxLengthField); err != nil {
		return 0, nil, err
	}

	signStart, signEnd, err := writeUnsignedBody(e, name, meta, content, sig)
	if err != nil {
		return 0, nil, err
	}

	der, err := backend.EcdsaSign(keyHandle, e.Buffer()[signStart:signEnd])
	if err != nil {
		return 0, nil, err
	}
	if err := sig.SetDERSigValue(der); err != nil {
		return 0, nil, err
	}

	bodySize := (signEnd - signStart) + sig.ValueProbeBlockSize()
	headerStart := signStart - enc.ProbeVarSize(uint64(bodySize)) - enc.ProbeVarSize(uint64(enc.TypeData))
	if headerStart < 0 {
		return 0, nil, enc.ErrOversize
	}
	if err := e.Seek(headerStart); err != nil {
		return 0, nil, err
	}
	if err := e.WriteTL(enc.TypeData, bodySize); err != nil {
		return 0, nil, err
	}

	n := e.ShiftLeft(headerStart, signEnd)
	if err := e.Seek(n); err != nil {
		return 0, nil, err
	}
	if err := sig.EncodeValueInto(e); err != nil {
		return 0, nil, err
	}
	return e.Offset(), &Data{Name: name, MetaInfo: *meta, Content: content, Signature: *sig}, nil
}

// decodeResult holds the offsets and parsed fields decode_no_verify
// produces, shared by the verify variants so they don't re-parse.
type decodeResult struct {
	Data      *Data
	SignStart int
	SignEnd   int
}

// DecodeNoVerify parses a Data TLV from buf without checking the
// signature, per §4.4's decode path: content is optional, and its absence
// is distinguished from signature-info arriving immediately by peeking
// the next type.
func DecodeNoVerify(buf []byte) (*Data, error) {
	r, err := decodeCommon(buf)
	if err != nil {
		return nil, err
	}
	return r.Data, nil
}

func decodeCommon(buf []byte) (*decodeResult, error) {
	d := enc.NewDecoder(buf)
	length, err := d.ReadTL(enc.TypeData)
	if err != nil {
		return nil, err
	}
	signStart := d.Offset()
	bodyEnd := signStart + length

	name, err := enc.DecodeName(d)
	if err != nil {
		return nil, err
	}
	meta, err := ndn.DecodeMetaInfo(d)
	if err != nil {
		return nil, err
	}

	var content []byte
	typ, err := d.ReadVarNum()
	if err != nil {
		return nil, err
	}
	if err := d.MoveBackward(enc.ProbeVarSize(uint64(typ))); err != nil {
		return nil, err
	}
	switch typ {
	case enc.TypeContent:
		clen, err := d.ReadTL(enc.TypeContent)
		if err != nil {
			return nil, err
		}
		if clen > enc.ContentMax {
			return nil, enc.ErrOversize
		}
		raw, err := d.ReadBytes(clen)
		if err != nil {
			return nil, err
		}
		content = append([]byte(nil), raw...)
	case enc.TypeSignatureInfo:
		content = nil
	default:
		return nil, enc.ErrWrongTLVType
	}

	sig, err := ndn.DecodeInfo(d)
	if err != nil {
		return nil, err
	}
	signEnd := d.Offset()

	if err := ndn.DecodeValue(d, sig); err != nil {
		return nil, err
	}
	if d.Offset() != bodyEnd {
		return nil, enc.ErrWrongTLVType
	}

	return &decodeResult{
		Data:      &Data{Name: name, MetaInfo: *meta, Content: content, Signature: *sig},
		SignStart: signStart,
		SignEnd:   signEnd,
	}, nil
}

// VerifyDigest parses buf and checks its DIGEST_SHA256 signature.
func VerifyDigest(buf []byte, backend cr.Backend) (*Data, error) {
	r, err := decodeCommon(buf)
	if err != nil {
		return nil, err
	}
	if r.Data.Signature.SigType() != ndn.SigDigestSha256 {
		return nil, ndn.ErrUnsupportedSigType
	}
	got := backend.Sha256(buf[r.SignStart:r.SignEnd])
	if string(got[:]) != string(r.Data.Signature.SigValue()) {
		return nil, ndn.ErrVerificationFailed
	}
	return r.Data, nil
}

// VerifyHmac parses buf and checks its HMAC_SHA256 signature against the
// key loaded at keyHandle.
func VerifyHmac(buf []byte, backend cr.Backend, keyHandle cr.KeyID) (*Data, error) {
	r, err := decodeCommon(buf)
	if err != nil {
		return nil, err
	}
	if r.Data.Signature.SigType() != ndn.SigHmacSha256 {
		return nil, ndn.ErrUnsupportedSigType
	}
	mac, err := backend.HmacSha256(keyHandle, buf[r.SignStart:r.SignEnd])
	if err != nil {
		return nil, err
	}
	if string(mac[:]) != string(r.Data.Signature.SigValue()) {
		return nil, ndn.ErrVerificationFailed
	}
	return r.Data, nil
}

// VerifyEcdsa parses buf and checks its ECDSA_SHA256 signature against the
// public key loaded at keyHandle.
func VerifyEcdsa(buf []byte, backend cr.Backend, keyHandle cr.KeyID) (*Data, error) {
	r, err := decodeCommon(buf)
	if err != nil {
		return nil, err
	}
	if r.Data.Signature.SigType() != ndn.SigEcdsaSha256 {
		return nil, ndn.ErrUnsupportedSigType
	}
	if err := backend.EcdsaVerify(keyHandle, buf[r.SignStart:r.SignEnd], r.Data.Signature.SigValue()); err != nil {
		return nil, err
	}
	return r.Data, nil
}
