// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftoken

import (
	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
)

// RegTxBuilder - assemble a registration payload from user input
//
// the first error is kept and returned by Build
type RegTxBuilder struct {
	reg      RegTx
	adminSet bool
	err      error
}

// NewRegTxBuilder - start a payload at the current version
func NewRegTxBuilder() *RegTxBuilder {
	return &RegTxBuilder{
		reg: RegTx{
			Version: CurrentVersion,
		},
	}
}

// SetTokenProtocol - protocol symbol
func (b *RegTxBuilder) SetTokenProtocol(symbol string) *RegTxBuilder {
	if nil == b.err {
		b.reg.Token.ProtocolID, b.err = ParseProtocolName(symbol)
	}
	return b
}

// SetTokenID - big endian hex token id
func (b *RegTxBuilder) SetTokenID(s string) *RegTxBuilder {
	if nil == b.err {
		id, err := merkle.DigestFromString(s)
		if nil != err {
			b.err = fault.ErrInvalidTokenID
		}
		b.reg.Token.TokenID = id
	}
	return b
}

// SetTokenOwnerKey - owner taken from the signing key
func (b *RegTxBuilder) SetTokenOwnerKey(key *account.PrivateKey) *RegTxBuilder {
	if nil == b.err {
		if nil == key {
			b.err = fault.ErrMissingPrivateKey
			return b
		}
		b.reg.Token.OwnerKeyID = key.KeyID()
	}
	return b
}

// SetMetadataAdminKey - admin key id text, "0" or empty means the owner
func (b *RegTxBuilder) SetMetadataAdminKey(s string) *RegTxBuilder {
	if nil != b.err || "" == s || "0" == s {
		return b
	}
	id, _, err := account.KeyIDFromString(s)
	if nil != err {
		b.err = err
		return b
	}
	b.reg.Token.AdminKeyID = id
	b.adminSet = true
	return b
}

// SetMetadata - opaque metadata
func (b *RegTxBuilder) SetMetadata(metadata []byte) *RegTxBuilder {
	if nil == b.err {
		if len(metadata) > MaximumMetadataLength {
			b.err = fault.ErrMetadataTooLong
			return b
		}
		b.reg.Token.Metadata = metadata
	}
	return b
}

// Build - the unsigned payload
func (b *RegTxBuilder) Build() (*RegTx, error) {
	if nil != b.err {
		return nil, b.err
	}
	reg := b.reg
	if !b.adminSet {
		reg.Token.AdminKeyID = reg.Token.OwnerKeyID
	}
	return &reg, nil
}
