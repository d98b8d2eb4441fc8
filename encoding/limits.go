package encoding

// Fixed capacities of the constrained-device profile. Unlike the
// full NDN stack this library is modeled on, these are not advisory
// defaults a caller can outgrow by letting a slice reallocate. NameMax is
// enforced by NameFromStr, Name.EncodeInto and DecodeName, and ContentMax
// by the Data decoder and the encrypted-content helper, each failing with
// ErrOversize; the Data sign functions do not check ContentMax. The face
// package reports a full callback table with its own error.
const (
	// NameMax is the maximum number of components a Name may hold.
	NameMax = 8
	// ContentMax is the maximum size, in bytes, of a Data packet's content.
	ContentMax = 1024
	// CBTableSize is the capacity of a direct face's callback table.
	CBTableSize = 16

	// MaxTypeField and MaxLengthField bound the outer TLV_Data header
	// (type + length) so the ECDSA sign path knows how much head-room
	// to reserve before the signed body is known to fit.
	MaxTypeField   = 3
	MaxLengthField = 9
)

// TLV type numbers used by this library's wire format.
const (
	TypeInterest TLNum = 5
	TypeData     TLNum = 6

	TypeName     TLNum = 7
	TypeGeneric  TLNum = 8
	TypeMetaInfo TLNum = 20

	TypeContentType    TLNum = 24
	TypeFreshness      TLNum = 25
	TypeFinalBlockID   TLNum = 26
	TypeContent        TLNum = 21
	TypeSignatureInfo  TLNum = 22
	TypeSignatureValue TLNum = 23

	TypeSignatureType           TLNum = 27
	TypeKeyLocator              TLNum = 28
	TypeKeyLocatorDigest        TLNum = 29
	TypeValidityPeriod          TLNum = 253
	TypeNotBefore               TLNum = 254
	TypeNotAfter                TLNum = 255
	TypeNonce                   TLNum = 256
	TypeSignedInterestTimestamp TLNum = 257

	// Application-defined encrypted-content TLVs (§4.4 AC_* family).
	TypeACEncryptedContent TLNum = 130
	TypeACAesIV            TLNum = 131
	TypeACEncryptedPayload TLNum = 132
)
