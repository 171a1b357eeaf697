// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/nftokend/fault"
)

// miscellaneous constants
const (
	KeyIDLength    = 20
	checksumLength = 4

	// leading byte of the text form
	keyIDCode     = 0x4b
	testKeyIDCode = 0x4c
)

// KeyID - hash of a compressed secp256k1 public key
//
// RIPEMD160(SHA256(compressed key)); the all-zero value is null
type KeyID [KeyIDLength]byte

// KeyIDFromPublicKey - compute the key id of a serialised public key
func KeyIDFromPublicKey(compressed []byte) KeyID {
	s := sha256.Sum256(compressed)
	r := ripemd160.New()
	r.Write(s[:])

	var id KeyID
	copy(id[:], r.Sum(nil))
	return id
}

// IsNull - true for the all-zero key id
func (id KeyID) IsNull() bool {
	return KeyID{} == id
}

// Encode - base58 text with network code and sha3 checksum
func (id KeyID) Encode(testnet bool) string {
	code := byte(keyIDCode)
	if testnet {
		code = testKeyIDCode
	}
	buffer := make([]byte, 0, 1+KeyIDLength+checksumLength)
	buffer = append(buffer, code)
	buffer = append(buffer, id[:]...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// String - livenet text form for the fmt package (for %s)
func (id KeyID) String() string {
	return id.Encode(false)
}

// GoString - hex form for the fmt package (for %#v)
func (id KeyID) GoString() string {
	return "<keyid:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - JSON form
func (id KeyID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - accept either network
func (id *KeyID) UnmarshalText(s []byte) error {
	k, _, err := KeyIDFromString(string(s))
	if nil != err {
		return err
	}
	*id = k
	return nil
}

// KeyIDFromString - decode the base58 text form
//
// also returns whether the text was a testnet encoding
func KeyIDFromString(s string) (KeyID, bool, error) {
	var id KeyID

	decoded, err := base58.Decode(s)
	if nil != err || 0 == len(decoded) {
		return id, false, fault.ErrInvalidKeyID
	}
	if 1+KeyIDLength+checksumLength != len(decoded) {
		return id, false, fault.ErrInvalidKeyLength
	}

	testnet := false
	switch decoded[0] {
	case keyIDCode:
	case testKeyIDCode:
		testnet = true
	default:
		return id, false, fault.ErrInvalidKeyID
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return id, false, fault.ErrChecksumMismatch
	}

	copy(id[:], decoded[1:checksumStart])
	return id, testnet, nil
}

// KeyIDFromBytes - convert and validate a binary key id
func KeyIDFromBytes(id *KeyID, buffer []byte) error {
	if KeyIDLength != len(buffer) {
		return fault.ErrInvalidKeyLength
	}
	copy(id[:], buffer)
	return nil
}

// Scan - read the text form for the fmt scan routines
func (id *KeyID) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, nil)
	if nil != err {
		return err
	}
	return id.UnmarshalText(token)
}
