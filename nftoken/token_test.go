// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftoken_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/fixtures"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/nftoken"
)

const testTokenID = "a103d4bdfaa7d22591c4dacda81ba540e37f705bae41681c082b102e647aa8e8"

func makeRegTx(t *testing.T) *nftoken.RegTx {
	reg, err := nftoken.NewRegTxBuilder().
		SetTokenProtocol("doc").
		SetTokenID(testTokenID).
		SetTokenOwnerKey(fixtures.OwnerKey).
		SetMetadata([]byte("text metadata")).
		Build()
	assert.Nil(t, err, "build error")
	reg.Sign(fixtures.OwnerKey)
	return reg
}

func TestBuilderDefaultsAdminToOwner(t *testing.T) {
	reg := makeRegTx(t)
	assert.Equal(t, uint64(nftoken.CurrentVersion), reg.Version, "version")
	assert.Equal(t, fixtures.OwnerKey.KeyID(), reg.Token.OwnerKeyID, "owner")
	assert.Equal(t, reg.Token.OwnerKeyID, reg.Token.AdminKeyID, "admin")
	assert.Equal(t, testTokenID, reg.Token.TokenID.String(), "token id")
}

func TestBuilderExplicitAdmin(t *testing.T) {
	admin := fixtures.OtherKey.KeyID()
	reg, err := nftoken.NewRegTxBuilder().
		SetTokenProtocol("doc").
		SetTokenID(testTokenID).
		SetTokenOwnerKey(fixtures.OwnerKey).
		SetMetadataAdminKey(admin.String()).
		Build()
	assert.Nil(t, err, "build error")
	assert.Equal(t, admin, reg.Token.AdminKeyID, "admin")
}

func TestBuilderErrors(t *testing.T) {
	_, err := nftoken.NewRegTxBuilder().SetTokenProtocol("x").SetTokenID(testTokenID).Build()
	assert.Equal(t, fault.ErrInvalidProtocolName, err, "protocol")

	_, err = nftoken.NewRegTxBuilder().SetTokenProtocol("doc").SetTokenID("1234").Build()
	assert.Equal(t, fault.ErrInvalidTokenID, err, "token id")

	_, err = nftoken.NewRegTxBuilder().SetTokenOwnerKey(nil).Build()
	assert.Equal(t, fault.ErrMissingPrivateKey, err, "owner key")

	_, err = nftoken.NewRegTxBuilder().SetMetadata(make([]byte, nftoken.MaximumMetadataLength+1)).Build()
	assert.Equal(t, fault.ErrMetadataTooLong, err, "metadata")
}

func TestRegTxPackUnpack(t *testing.T) {
	reg := makeRegTx(t)

	var back nftoken.RegTx
	err := back.Unpack(reg.Pack())
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, *reg, back, "payload")

	err = back.Unpack(append(reg.Pack(), 0x00))
	assert.Equal(t, fault.ErrUnexpectedTrailingData, err, "trailing byte")

	packed := reg.Pack()
	err = back.Unpack(packed[:len(packed)-1])
	assert.Equal(t, fault.ErrTruncatedRecord, err, "truncated")
}

func TestSignatureHashExcludesSignature(t *testing.T) {
	reg := makeRegTx(t)
	h := reg.SignatureHash()

	reg.Signature = account.Signature{0x01}
	assert.Equal(t, h, reg.SignatureHash(), "signature changed hash")

	reg.Token.Metadata = []byte("changed")
	assert.NotEqual(t, h, reg.SignatureHash(), "metadata not covered")
}

func TestSignatureVerifies(t *testing.T) {
	reg := makeRegTx(t)
	assert.Nil(t, account.VerifyHash(reg.SignatureHash(), reg.Token.OwnerKeyID, reg.Signature), "verify")
}

func TestIndexPackUnpack(t *testing.T) {
	reg := makeRegTx(t)
	block := &blockrecord.Index{
		Height: 77,
		Hash:   merkle.NewDigest([]byte("block")),
		Time:   1600000000,
	}
	i := nftoken.NewIndex(&reg.Token, merkle.NewDigest([]byte("tx")), block)
	assert.False(t, i.IsNull(), "null")
	assert.True(t, nftoken.Index{}.IsNull(), "zero value")

	back, err := nftoken.UnpackIndex(i.Pack())
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, i, back, "index")
}
