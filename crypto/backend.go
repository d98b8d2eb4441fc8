// Package crypto defines the capability interface the Data packet engine
// signs and verifies through (§6's "backend API"), plus a software
// implementation of it. The interface stands in for the spec's
// function-pointer vtable: a capability injected at construction so
// callers can swap a hardware backend in without touching the engine
// (§9's design note on the vtable).
package crypto

import "errors"

// ErrKeyNotFound is returned when an opaque key handle is unknown to the
// backend it's presented to.
var ErrKeyNotFound = errors.New("crypto: key not found")

// ErrInvalidKeySize is returned when key material doesn't match what the
// requested algorithm needs (e.g. an AES-CBC plaintext that isn't a block
// multiple).
var ErrInvalidKeySize = errors.New("crypto: invalid key size")

// ErrVerifyFailed is returned by a Verify method when the signature does
// not match.
var ErrVerifyFailed = errors.New("crypto: verification failed")

// KeyID is an opaque handle a backend assigns to loaded key material; the
// codec never inspects it, only passes it back to the backend (§3).
type KeyID uint32

// Backend is the capability interface the Data engine drives for every
// cryptographic operation it needs: digest, HMAC, ECDSA, AES-CBC, HKDF,
// and an RNG. A single process-wide instance is normally injected once at
// startup and treated as read-only thereafter (§5).
type Backend interface {
	// Sha256 computes the SHA-256 digest of data.
	Sha256(data []byte) [32]byte

	// HmacLoadKey imports raw HMAC key bytes and returns a handle.
	HmacLoadKey(key []byte) (KeyID, error)
	// HmacSha256 computes an HMAC-SHA256 tag over data using the key at id.
	HmacSha256(id KeyID, data []byte) ([32]byte, error)
	// HmacMakeKey derives len bytes of fresh key material via the RNG.
	HmacMakeKey(length int) ([]byte, error)
	// Hkdf derives outLen bytes of key material from ikm and salt/info.
	Hkdf(salt, ikm, info []byte, outLen int) ([]byte, error)

	// EcdsaLoadPrivateKey imports a P-256 private key (SEC 1 ASN.1 DER).
	EcdsaLoadPrivateKey(der []byte) (KeyID, error)
	// EcdsaLoadPublicKey imports a P-256 public key (uncompressed point).
	EcdsaLoadPublicKey(der []byte) (KeyID, error)
	// EcdsaSign produces a DER-encoded ECDSA-SHA256 signature.
	EcdsaSign(id KeyID, data []byte) ([]byte, error)
	// EcdsaVerify checks a DER-encoded ECDSA-SHA256 signature.
	EcdsaVerify(id KeyID, data, sig []byte) error

	// AesLoadKey imports a 16-byte AES-128 key and returns a handle.
	AesLoadKey(key []byte) (KeyID, error)
	// AesCbcEncrypt encrypts plaintext (a block multiple) with no padding.
	AesCbcEncrypt(id KeyID, iv, plaintext []byte) ([]byte, error)
	// AesCbcDecrypt decrypts ciphertext (a block multiple) with no padding.
	AesCbcDecrypt(id KeyID, iv, ciphertext []byte) ([]byte, error)

	// Rng fills dest with cryptographically random bytes.
	Rng(dest []byte) error
}

// KeyGenerator is implemented by backends that can mint fresh ECDSA key
// pairs locally, rather than only importing previously-generated key
// material. The software backend supports it; a hardware backend backed
// by a secure element might not.
type KeyGenerator interface {
	// GenerateEcdsaKey creates a fresh P-256 key pair and returns handles
	// for both the private (signing) and public (verifying) halves.
	GenerateEcdsaKey() (sk, pk KeyID, err error)
}
