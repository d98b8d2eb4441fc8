// Package ndn holds the shared types and error kinds that sit above the
// wire codec: signature metadata, content description, and the error
// sentinels the security and dispatch layers raise (§7).
package ndn

import "errors"

// ErrUnsupportedSigType is returned when a signature operation is
// requested for a SigType the signature model or crypto backend does not
// recognize.
var ErrUnsupportedSigType = errors.New("ndn: unsupported signature type")

// ErrWrongSigSize is returned when a signature's recorded size is
// inconsistent with its type (§3's sig_size invariant).
var ErrWrongSigSize = errors.New("ndn: signature size does not match signature type")

// ErrNoPubKey reports that no public key is available to export, as is
// the case for digest and HMAC signatures. No function in this module
// returns it.
var ErrNoPubKey = errors.New("ndn: no public key available")

// ErrVerificationFailed is returned by a Verify call when the computed
// signature does not match the one carried on the wire.
var ErrVerificationFailed = errors.New("ndn: signature verification failed")
