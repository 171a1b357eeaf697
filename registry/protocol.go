// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/nftoken"
)

func (v view) getProtocol(protocolID uint64) nftoken.ProtocolIndex {
	key := supplyKey(protocolID)
	buffer := v.protocols.Get(key)
	if nil == buffer {
		return nftoken.ProtocolIndex{}
	}
	i, err := nftoken.UnpackProtocolIndex(buffer)
	if nil != err {
		fault.Panicf("registry: corrupt protocol record: %x  error: %s", key, err)
	}
	return i
}

func (v view) addProtocol(protocol *nftoken.NftProtocol, txHash merkle.Digest, block *blockrecord.Index) error {
	if !nftoken.IsValidProtocol(protocol.ProtocolID) {
		return fault.ErrInvalidProtocolName
	}
	key := supplyKey(protocol.ProtocolID)
	if v.protocols.Has(key) {
		return fault.ErrKeyExists
	}
	v.protocols.Put(key, nftoken.NewProtocolIndex(protocol, txHash, block).Pack())
	return nil
}

// a protocol can only go once all of its tokens have gone
func (v view) deleteProtocol(protocolID uint64, height uint64) error {
	i := v.getProtocol(protocolID)
	if i.IsNull() {
		return fault.ErrProtocolNotFound
	}
	if i.Block.Height != height {
		return fault.ErrHeightMismatch
	}
	if 0 != v.totalSupply(protocolID) {
		return fault.ErrProtocolInUse
	}
	v.protocols.Delete(supplyKey(protocolID))
	return nil
}

// GetProtocol - point lookup, null index if not registered
func (r *Registry) GetProtocol(protocolID uint64) nftoken.ProtocolIndex {
	r.RLock()
	defer r.RUnlock()
	return r.pools.getProtocol(protocolID)
}

// AddProtocol - insert and commit a single protocol
func (r *Registry) AddProtocol(protocol *nftoken.NftProtocol, txHash merkle.Digest, block *blockrecord.Index) error {
	t := r.Begin()
	defer t.Abort()

	if err := t.AddProtocol(protocol, txHash, block); nil != err {
		return err
	}
	return t.Commit()
}

// DeleteProtocol - remove and commit a single protocol
func (r *Registry) DeleteProtocol(protocolID uint64, height uint64) error {
	t := r.Begin()
	defer t.Abort()

	if err := t.DeleteProtocol(protocolID, height); nil != err {
		return err
	}
	return t.Commit()
}

// Protocols - every registered protocol in symbol order
func (r *Registry) Protocols() ([]nftoken.ProtocolIndex, error) {
	r.RLock()
	defer r.RUnlock()

	results := make([]nftoken.ProtocolIndex, 0, 16)
	err := r.pools.protocols.NewFetchCursor().Map(func(key []byte, value []byte) (bool, error) {
		i, err := nftoken.UnpackProtocolIndex(value)
		if nil != err {
			return false, err
		}
		results = append(results, i)
		return true, nil
	})
	if nil != err {
		return nil, err
	}
	return results, nil
}

// GetProtocol - see Registry.GetProtocol
func (t *Transaction) GetProtocol(protocolID uint64) nftoken.ProtocolIndex {
	return t.pools.getProtocol(protocolID)
}

// AddProtocol - stage a new protocol, fails if it is registered
func (t *Transaction) AddProtocol(protocol *nftoken.NftProtocol, txHash merkle.Digest, block *blockrecord.Index) error {
	err := t.pools.addProtocol(protocol, txHash, block)
	if nil == err {
		t.registry.log.Debugf("add: %s  tx: %s  height: %d", protocol, txHash, block.Height)
	}
	return err
}

// DeleteProtocol - stage removal of a protocol confirmed at height
func (t *Transaction) DeleteProtocol(protocolID uint64, height uint64) error {
	err := t.pools.deleteProtocol(protocolID, height)
	if nil == err {
		t.registry.log.Debugf("delete: protocol: %s  height: %d", nftoken.ProtocolName(protocolID), height)
	}
	return err
}
