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
	"github.com/bitmark-inc/nftokend/nftoken"
)

func TestAddAndLookup(t *testing.T) {
	r := newRegistry()
	token := makeToken("doc", 1, fixtures.OwnerKey.KeyID())
	hash := txHash(token)

	err := r.Add(token, hash, blockAt(10))
	assert.Nil(t, err, "add error")

	i := r.GetByKey(token.ProtocolID, token.TokenID)
	assert.False(t, i.IsNull(), "not found by key")
	assert.Equal(t, *token, i.Token, "token")
	assert.Equal(t, hash, i.RegTxHash, "tx hash")
	assert.Equal(t, *blockAt(10), i.Block, "block")

	assert.Equal(t, i, r.GetByTxHash(hash), "lookup by tx hash")
	assert.True(t, r.GetByTxHash(txHash(makeToken("doc", 2, token.OwnerKeyID))).IsNull(), "unknown tx hash")
}

func TestAddDuplicateKey(t *testing.T) {
	r := newRegistry()
	token := makeToken("doc", 1, fixtures.OwnerKey.KeyID())

	assert.Nil(t, r.Add(token, txHash(token), blockAt(10)), "first add")
	err := r.Add(token, txHash(token), blockAt(11))
	assert.Equal(t, fault.ErrKeyExists, err, "second add")
	assert.Equal(t, uint64(10), r.GetByKey(token.ProtocolID, token.TokenID).Block.Height, "original entry kept")
}

func TestContainsIsHeightBounded(t *testing.T) {
	r := newRegistry()
	token := makeToken("doc", 1, fixtures.OwnerKey.KeyID())
	assert.Nil(t, r.Add(token, txHash(token), blockAt(10)), "add")

	assert.False(t, r.Contains(token.ProtocolID, token.TokenID, 9), "below confirming height")
	assert.True(t, r.Contains(token.ProtocolID, token.TokenID, 10), "at confirming height")
	assert.True(t, r.Contains(token.ProtocolID, token.TokenID, 100), "above confirming height")

	other := makeToken("art", 1, fixtures.OwnerKey.KeyID())
	assert.False(t, r.Contains(other.ProtocolID, token.TokenID, 100), "same id in another protocol")
}

func TestDeleteHeightGuard(t *testing.T) {
	r := newRegistry()
	token := makeToken("doc", 1, fixtures.OwnerKey.KeyID())
	assert.Nil(t, r.Add(token, txHash(token), blockAt(10)), "add")

	err := r.Delete(token.ProtocolID, token.TokenID, 11)
	assert.Equal(t, fault.ErrHeightMismatch, err, "wrong height")
	assert.True(t, r.Contains(token.ProtocolID, token.TokenID, 10), "entry removed by mismatched delete")
	assert.Equal(t, uint64(1), r.TotalSupply(nftoken.UnknownProtocol), "supply changed by mismatched delete")

	assert.Nil(t, r.Delete(token.ProtocolID, token.TokenID, 10), "delete")
	assert.False(t, r.Contains(token.ProtocolID, token.TokenID, 10), "entry still present")
	assert.True(t, r.GetByTxHash(txHash(token)).IsNull(), "tx index still present")

	err = r.Delete(token.ProtocolID, token.TokenID, 10)
	assert.Equal(t, fault.ErrTokenNotFound, err, "second delete")
}

func TestAddAfterDelete(t *testing.T) {
	r := newRegistry()
	token := makeToken("doc", 1, fixtures.OwnerKey.KeyID())

	assert.Nil(t, r.Add(token, txHash(token), blockAt(10)), "add")
	assert.Nil(t, r.Delete(token.ProtocolID, token.TokenID, 10), "delete")
	assert.Nil(t, r.Add(token, txHash(token), blockAt(10)), "re-add")
	assert.True(t, r.Contains(token.ProtocolID, token.TokenID, 10), "re-added entry")
}

func TestTotalSupply(t *testing.T) {
	r := newRegistry()
	owner := fixtures.OwnerKey.KeyID()
	doc := protocol("doc")
	art := protocol("art")

	for n := uint64(0); n < 3; n += 1 {
		token := makeToken("doc", n, owner)
		assert.Nil(t, r.Add(token, txHash(token), blockAt(n+1)), "add doc")
	}
	token := makeToken("art", 0, owner)
	assert.Nil(t, r.Add(token, txHash(token), blockAt(5)), "add art")

	assert.Equal(t, uint64(4), r.TotalSupply(nftoken.UnknownProtocol), "total")
	assert.Equal(t, uint64(3), r.TotalSupply(doc), "doc")
	assert.Equal(t, uint64(1), r.TotalSupply(art), "art")
	assert.Equal(t, uint64(0), r.TotalSupply(protocol("xyz")), "unused protocol")

	assert.Nil(t, r.Delete(art, token.TokenID, 5), "delete art")
	assert.Equal(t, uint64(3), r.TotalSupply(nftoken.UnknownProtocol), "total after delete")
	assert.Equal(t, uint64(0), r.TotalSupply(art), "art after delete")
}

func TestUnknownProtocolSupplyCountedOnce(t *testing.T) {
	r := newRegistry()
	token := makeToken("doc", 1, fixtures.OwnerKey.KeyID())
	token.ProtocolID = nftoken.UnknownProtocol

	assert.Nil(t, r.Add(token, txHash(token), blockAt(2)), "add")
	assert.Equal(t, uint64(1), r.TotalSupply(nftoken.UnknownProtocol), "total after add")

	assert.Nil(t, r.Delete(token.ProtocolID, token.TokenID, 2), "delete")
	assert.Equal(t, uint64(0), r.TotalSupply(nftoken.UnknownProtocol), "total after delete")
}

func TestTip(t *testing.T) {
	r := newRegistry()
	assert.Nil(t, r.Tip(), "initial tip")

	b := blockAt(7)
	r.UpdateTip(b)
	assert.Equal(t, b, r.Tip(), "tip")

	b.Height = 99
	assert.Equal(t, uint64(7), r.Tip().Height, "tip aliases caller's value")

	r.UpdateTip(nil)
	assert.Nil(t, r.Tip(), "cleared tip")
}
