package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"
)

// softwareBackend implements Backend entirely with Go's standard library
// crypto packages plus golang.org/x/crypto/hkdf, standing in for the
// hardware-accelerated backends a constrained device would normally load
// (§9: backends are swappable, this is the reference one).
type softwareBackend struct {
	mu      sync.Mutex
	nextID  KeyID
	hmac    map[KeyID][]byte
	aes     map[KeyID][]byte
	ecdsaSk map[KeyID]*ecdsa.PrivateKey
	ecdsaPk map[KeyID]*ecdsa.PublicKey
}

// NewSoftwareBackend returns a Backend implemented with Go's standard
// library crypto primitives.
func NewSoftwareBackend() Backend {
	return &softwareBackend{
		hmac:    make(map[KeyID][]byte),
		aes:     make(map[KeyID][]byte),
		ecdsaSk: make(map[KeyID]*ecdsa.PrivateKey),
		ecdsaPk: make(map[KeyID]*ecdsa.PublicKey),
	}
}

func (b *softwareBackend) allocID() KeyID {
	b.nextID++
	return b.nextID
}

func (b *softwareBackend) Sha256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

func (b *softwareBackend) HmacLoadKey(key []byte) (KeyID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.allocID()
	k := make([]byte, len(key))
	copy(k, key)
	b.hmac[id] = k
	return id, nil
}

func (b *softwareBackend) HmacSha256(id KeyID, data []byte) ([32]byte, error) {
	b.mu.Lock()
	key, ok := b.hmac[id]
	b.mu.Unlock()
	if !ok {
		return [32]byte{}, ErrKeyNotFound
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	var out [32]byte
	copy(out[:], mac.Sum(nil))
	return out, nil
}

func (b *softwareBackend) HmacMakeKey(length int) ([]byte, error) {
	out := make([]byte, length)
	if err := b.Rng(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *softwareBackend) Hkdf(salt, ikm, info []byte, outLen int) ([]byte, error) {
	r := hkdf.New(sha256.New, ikm, salt, info)
	out := make([]byte, outLen)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *softwareBackend) EcdsaLoadPrivateKey(der []byte) (KeyID, error) {
	key, err := x509.ParseECPrivateKey(der)
	if err != nil {
		return 0, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.allocID()
	b.ecdsaSk[id] = key
	return id, nil
}

func (b *softwareBackend) EcdsaLoadPublicKey(pt []byte) (KeyID, error) {
	x, y := elliptic.Unmarshal(elliptic.P256(), pt)
	if x == nil {
		return 0, ErrInvalidKeySize
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.allocID()
	b.ecdsaPk[id] = &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}
	return id, nil
}

// GenerateEcdsaKey creates a fresh P-256 key pair and loads both halves
// into the backend, returning handles for signing and verifying.
func (b *softwareBackend) GenerateEcdsaKey() (sk, pk KeyID, err error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return 0, 0, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	sk = b.allocID()
	b.ecdsaSk[sk] = key
	pk = b.allocID()
	b.ecdsaPk[pk] = &key.PublicKey
	return sk, pk, nil
}

func (b *softwareBackend) EcdsaSign(id KeyID, data []byte) ([]byte, error) {
	b.mu.Lock()
	key, ok := b.ecdsaSk[id]
	b.mu.Unlock()
	if !ok {
		return nil, ErrKeyNotFound
	}
	digest := sha256.Sum256(data)
	return ecdsa.SignASN1(rand.Reader, key, digest[:])
}

func (b *softwareBackend) EcdsaVerify(id KeyID, data, sig []byte) error {
	b.mu.Lock()
	key, ok := b.ecdsaPk[id]
	b.mu.Unlock()
	if !ok {
		return ErrKeyNotFound
	}
	digest := sha256.Sum256(data)
	if !ecdsa.VerifyASN1(key, digest[:], sig) {
		return ErrVerifyFailed
	}
	return nil
}

func (b *softwareBackend) AesLoadKey(key []byte) (KeyID, error) {
	if len(key) != 16 {
		return 0, ErrInvalidKeySize
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.allocID()
	k := make([]byte, 16)
	copy(k, key)
	b.aes[id] = k
	return id, nil
}

func (b *softwareBackend) AesCbcEncrypt(id KeyID, iv, plaintext []byte) ([]byte, error) {
	block, err := b.aesCipher(id)
	if err != nil {
		return nil, err
	}
	if len(plaintext)%aes.BlockSize != 0 {
		return nil, ErrInvalidKeySize
	}
	out := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, plaintext)
	return out, nil
}

func (b *softwareBackend) AesCbcDecrypt(id KeyID, iv, ciphertext []byte) ([]byte, error) {
	block, err := b.aesCipher(id)
	if err != nil {
		return nil, err
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrInvalidKeySize
	}
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
	return out, nil
}

func (b *softwareBackend) aesCipher(id KeyID) (cipher.Block, error) {
	b.mu.Lock()
	key, ok := b.aes[id]
	b.mu.Unlock()
	if !ok {
		return nil, ErrKeyNotFound
	}
	return aes.NewCipher(key)
}

func (b *softwareBackend) Rng(dest []byte) error {
	_, err := rand.Read(dest)
	return err
}
