// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftoken

import (
	"fmt"

	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/util"
)

// CurrentVersion - the only registration payload version accepted
const CurrentVersion = 1

// MaximumMetadataLength - bytes of metadata in one token
const MaximumMetadataLength = 2048

// NfToken - a non-fungible token
type NfToken struct {
	ProtocolID uint64
	TokenID    merkle.Digest
	OwnerKeyID account.KeyID
	AdminKeyID account.KeyID
	Metadata   []byte
}

// RegTx - payload of a token registration transaction
type RegTx struct {
	Version   uint64
	Token     NfToken
	Signature account.Signature
}

// String - for logging
func (t *NfToken) String() string {
	return fmt.Sprintf("NfToken(protocol: %s  id: %s  owner: %s  admin: %s)",
		ProtocolName(t.ProtocolID), t.TokenID, t.OwnerKeyID, t.AdminKeyID)
}

func (t *NfToken) pack(buffer []byte) []byte {
	buffer = util.AppendUint64(buffer, t.ProtocolID)
	buffer = append(buffer, t.TokenID[:]...)
	buffer = append(buffer, t.OwnerKeyID[:]...)
	buffer = append(buffer, t.AdminKeyID[:]...)
	return util.AppendBytes(buffer, t.Metadata)
}

func (t *NfToken) unpack(u *util.Unpacker) {
	t.ProtocolID = u.Uint64()
	merkle.DigestFromBytes(&t.TokenID, u.Fixed(merkle.DigestLength))
	account.KeyIDFromBytes(&t.OwnerKeyID, u.Fixed(account.KeyIDLength))
	account.KeyIDFromBytes(&t.AdminKeyID, u.Fixed(account.KeyIDLength))
	t.Metadata = u.Bytes(MaximumMetadataLength)
}

// packUnsigned - the serialisation covered by the signature
func (r *RegTx) packUnsigned() []byte {
	buffer := make([]byte, 0, 128+len(r.Token.Metadata))
	buffer = util.AppendUint64(buffer, r.Version)
	return r.Token.pack(buffer)
}

// Pack - canonical serialisation
func (r *RegTx) Pack() []byte {
	return util.AppendBytes(r.packUnsigned(), r.Signature)
}

// Unpack - decode a serialised payload
//
// the whole buffer must be consumed
func (r *RegTx) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)

	reg := RegTx{}
	reg.Version = u.Uint64()
	reg.Token.unpack(u)
	reg.Signature = u.Bytes(account.SignatureLength)

	if err := u.Done(); nil != err {
		return err
	}
	*r = reg
	return nil
}

// SignatureHash - hash of the payload without its signature
func (r *RegTx) SignatureHash() merkle.Digest {
	return merkle.NewDigest(r.packUnsigned())
}

// Sign - fill the signature using the owner's key
func (r *RegTx) Sign(key *account.PrivateKey) {
	r.Signature = key.Sign(r.SignatureHash())
}
