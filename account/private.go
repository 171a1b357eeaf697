// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
)

// PrivateKeyLength - bytes in a serialised private key
const PrivateKeyLength = 32

// PrivateKey - secp256k1 signing key
type PrivateKey struct {
	key *btcec.PrivateKey
}

// NewPrivateKey - generate a random key
func NewPrivateKey() (*PrivateKey, error) {
	key, err := btcec.NewPrivateKey()
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes - load a serialised key
func PrivateKeyFromBytes(buffer []byte) (*PrivateKey, error) {
	if PrivateKeyLength != len(buffer) {
		return nil, fault.ErrInvalidKeyLength
	}
	key, _ := btcec.PrivKeyFromBytes(buffer)
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromHex - load a hex serialised key
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	if "" == s {
		return nil, fault.ErrMissingPrivateKey
	}
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidKeyLength
	}
	return PrivateKeyFromBytes(buffer)
}

// Bytes - serialised key
func (p *PrivateKey) Bytes() []byte {
	return p.key.Serialize()
}

// PublicKeyBytes - compressed public key
func (p *PrivateKey) PublicKeyBytes() []byte {
	return p.key.PubKey().SerializeCompressed()
}

// KeyID - id of the matching public key
func (p *PrivateKey) KeyID() KeyID {
	return KeyIDFromPublicKey(p.PublicKeyBytes())
}

// Sign - produce a recoverable compact signature over a hash
func (p *PrivateKey) Sign(hash merkle.Digest) Signature {
	return ecdsa.SignCompact(p.key, hash[:], true)
}
