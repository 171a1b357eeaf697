// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
)

// SignatureLength - compact recoverable signature size
const SignatureLength = 65

// Signature - the type for a signature
type Signature []byte

// VerifyHash - check that sig over hash was made by the key behind keyID
func VerifyHash(hash merkle.Digest, keyID KeyID, sig Signature) error {
	if SignatureLength != len(sig) {
		return fault.ErrInvalidSignatureLength
	}
	pub, _, err := ecdsa.RecoverCompact(sig, hash[:])
	if nil != err {
		return fault.ErrBadSignature
	}
	if KeyIDFromPublicKey(pub.SerializeCompressed()) != keyID {
		return fault.ErrBadSignature
	}
	return nil
}

// String - hex for the fmt package (for %s)
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - tagged hex for the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// Scan - read hex for the fmt scan routines
func (signature *Signature) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, nil)
	if nil != err {
		return err
	}
	return signature.UnmarshalText(token)
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(signature)))
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	*signature = sig[:byteCount]
	return nil
}
