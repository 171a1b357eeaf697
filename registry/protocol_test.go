// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/fixtures"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/nftoken"
)

func makeProtocol(symbol string) *nftoken.NftProtocol {
	return &nftoken.NftProtocol{
		ProtocolID:       protocol(symbol),
		Name:             symbol + " protocol",
		OwnerKeyID:       fixtures.OwnerKey.KeyID(),
		RegSign:          nftoken.SignByCreator,
		MetadataMimeType: "text/plain",
		Transferable:     true,
	}
}

func TestProtocolAddAndLookup(t *testing.T) {
	r := newRegistry()
	p := makeProtocol("doc")
	hash := merkle.NewDigest([]byte("doc registration"))

	assert.True(t, r.GetProtocol(p.ProtocolID).IsNull(), "before add")
	assert.Nil(t, r.AddProtocol(p, hash, blockAt(4)), "add")

	i := r.GetProtocol(p.ProtocolID)
	assert.False(t, i.IsNull(), "after add")
	assert.Equal(t, *p, i.Protocol, "protocol")
	assert.Equal(t, hash, i.RegTxHash, "tx hash")
	assert.Equal(t, uint64(4), i.Block.Height, "height")

	assert.Equal(t, fault.ErrKeyExists, r.AddProtocol(p, hash, blockAt(5)), "duplicate")
}

func TestProtocolAddRejectsInvalidID(t *testing.T) {
	r := newRegistry()

	p := makeProtocol("doc")
	p.ProtocolID = nftoken.UnknownProtocol
	assert.Equal(t, fault.ErrInvalidProtocolName, r.AddProtocol(p, merkle.NewDigest([]byte("a")), blockAt(1)), "unknown protocol")

	p = makeProtocol("doc")
	p.ProtocolID |= 1 << 62
	assert.Equal(t, fault.ErrInvalidProtocolName, r.AddProtocol(p, merkle.NewDigest([]byte("b")), blockAt(1)), "unused bits set")
}

func TestProtocolDelete(t *testing.T) {
	r := newRegistry()
	p := makeProtocol("doc")
	assert.Nil(t, r.AddProtocol(p, merkle.NewDigest([]byte("doc")), blockAt(4)), "add")

	assert.Equal(t, fault.ErrProtocolNotFound, r.DeleteProtocol(protocol("art"), 4), "not registered")
	assert.Equal(t, fault.ErrHeightMismatch, r.DeleteProtocol(p.ProtocolID, 5), "wrong height")

	token := makeToken("doc", 1, fixtures.OwnerKey.KeyID())
	assert.Nil(t, r.Add(token, txHash(token), blockAt(6)), "add token")
	assert.Equal(t, fault.ErrProtocolInUse, r.DeleteProtocol(p.ProtocolID, 4), "tokens remain")
	assert.False(t, r.GetProtocol(p.ProtocolID).IsNull(), "still registered")

	assert.Nil(t, r.Delete(token.ProtocolID, token.TokenID, 6), "delete token")
	assert.Nil(t, r.DeleteProtocol(p.ProtocolID, 4), "delete")
	assert.True(t, r.GetProtocol(p.ProtocolID).IsNull(), "after delete")
}

func TestProtocolStagedVisibility(t *testing.T) {
	r := newRegistry()
	p := makeProtocol("art")

	trx := r.Begin()
	assert.Nil(t, trx.AddProtocol(p, merkle.NewDigest([]byte("art")), blockAt(2)), "stage")
	assert.False(t, trx.GetProtocol(p.ProtocolID).IsNull(), "staged protocol visible")
	trx.Abort()

	assert.True(t, r.GetProtocol(p.ProtocolID).IsNull(), "aborted protocol")
}

func TestProtocolsListing(t *testing.T) {
	r := newRegistry()
	for _, s := range []string{"doc", "art", "xyz"} {
		assert.Nil(t, r.AddProtocol(makeProtocol(s), merkle.NewDigest([]byte(s)), blockAt(1)), "add "+s)
	}

	list, err := r.Protocols()
	assert.Nil(t, err, "list")
	if assert.Equal(t, 3, len(list), "count") {
		assert.Equal(t, protocol("art"), list[0].Protocol.ProtocolID, "first")
		assert.Equal(t, protocol("doc"), list[1].Protocol.ProtocolID, "second")
		assert.Equal(t, protocol("xyz"), list[2].Protocol.ProtocolID, "third")
	}
}
