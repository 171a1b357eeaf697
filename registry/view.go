// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/nftoken"
	"github.com/bitmark-inc/nftokend/storage"
)

const (
	tokenKeyLength  = 8 + merkle.DigestLength
	heightKeyLength = 8 + tokenKeyLength
)

// the registry pools read and written through one access path
type view struct {
	tokens    *storage.PoolHandle
	txIndex   *storage.PoolHandle
	heights   *storage.PoolHandle
	supply    *storage.PoolHandle
	protocols *storage.PoolHandle
}

func (v view) in(trx *storage.Transaction) view {
	return view{
		tokens:    v.tokens.In(trx),
		txIndex:   v.txIndex.In(trx),
		heights:   v.heights.In(trx),
		supply:    v.supply.In(trx),
		protocols: v.protocols.In(trx),
	}
}

func tokenKey(protocolID uint64, tokenID merkle.Digest) []byte {
	key := make([]byte, tokenKeyLength)
	binary.BigEndian.PutUint64(key, protocolID)
	copy(key[8:], tokenID[:])
	return key
}

func heightKey(height uint64, protocolID uint64, tokenID merkle.Digest) []byte {
	key := make([]byte, 8, heightKeyLength)
	binary.BigEndian.PutUint64(key, height)
	return append(key, tokenKey(protocolID, tokenID)...)
}

func supplyKey(protocolID uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, protocolID)
	return key
}

func (v view) contains(protocolID uint64, tokenID merkle.Digest, height uint64) bool {
	i := v.getByKey(protocolID, tokenID)
	return !i.IsNull() && i.Block.Height <= height
}

func (v view) getByKey(protocolID uint64, tokenID merkle.Digest) nftoken.Index {
	return v.get(tokenKey(protocolID, tokenID))
}

func (v view) getByTxHash(txHash merkle.Digest) nftoken.Index {
	key := v.txIndex.Get(txHash[:])
	if nil == key {
		return nftoken.Index{}
	}
	return v.get(key)
}

func (v view) get(key []byte) nftoken.Index {
	buffer := v.tokens.Get(key)
	if nil == buffer {
		return nftoken.Index{}
	}
	i, err := nftoken.UnpackIndex(buffer)
	if nil != err {
		fault.Panicf("registry: corrupt token record: %x  error: %s", key, err)
	}
	return i
}

func (v view) totalSupply(protocolID uint64) uint64 {
	n, _ := v.supply.GetN(supplyKey(protocolID))
	return n
}

func (v view) add(token *nftoken.NfToken, txHash merkle.Digest, block *blockrecord.Index) error {
	key := tokenKey(token.ProtocolID, token.TokenID)
	if v.tokens.Has(key) {
		return fault.ErrKeyExists
	}

	i := nftoken.NewIndex(token, txHash, block)
	v.tokens.Put(key, i.Pack())
	v.txIndex.Put(txHash[:], key)
	v.heights.Put(heightKey(block.Height, token.ProtocolID, token.TokenID), []byte{})
	v.adjustSupply(token.ProtocolID, 1)
	return nil
}

func (v view) delete(protocolID uint64, tokenID merkle.Digest, height uint64) error {
	i := v.getByKey(protocolID, tokenID)
	if i.IsNull() {
		return fault.ErrTokenNotFound
	}
	if i.Block.Height != height {
		return fault.ErrHeightMismatch
	}

	v.tokens.Delete(tokenKey(protocolID, tokenID))
	v.txIndex.Delete(i.RegTxHash[:])
	v.heights.Delete(heightKey(height, protocolID, tokenID))
	v.adjustSupply(protocolID, -1)
	return nil
}

// protocol count and the all protocol count move together
//
// the all protocol count is only moved once even for UnknownProtocol
func (v view) adjustSupply(protocolID uint64, delta int) {
	counts := []uint64{nftoken.UnknownProtocol}
	if nftoken.UnknownProtocol != protocolID {
		counts = append(counts, protocolID)
	}
	for _, p := range counts {
		key := supplyKey(p)
		n, _ := v.supply.GetN(key)
		if delta < 0 {
			if 0 == n {
				fault.Panicf("registry: supply underflow for protocol: %s", nftoken.ProtocolName(p))
			}
			n -= 1
		} else {
			n += 1
		}
		if 0 == n {
			v.supply.Delete(key)
		} else {
			v.supply.PutN(key, n)
		}
	}
}
