// Package data implements the Data packet engine (§4.4): assembling a
// signed Data TLV into a caller-provided buffer, and parsing/verifying one
// back out. Three sign variants (digest, HMAC, ECDSA) and three matching
// verify variants share one decode path.
package data

import (
	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
	"github.com/ghsecuritylab/ndn-lite-go/ndn"
)

// Data is a fully decoded Data packet: name, metainfo, content bytes, and
// signature. The decoder rejects content longer than encoding.ContentMax;
// the sign functions return the content they were given unchecked.
type Data struct {
	Name      enc.Name
	MetaInfo  ndn.MetaInfo
	Content   []byte
	Signature ndn.Signature
}
