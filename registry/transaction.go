// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/nftoken"
	"github.com/bitmark-inc/nftokend/storage"
)

// Transaction - staged changes to the registry
//
// holds the registry write lock from Begin until Commit or Abort;
// reads through a transaction see its own staged changes
type Transaction struct {
	registry *Registry
	trx      *storage.Transaction
	pools    view
	done     bool
}

// Begin - exclusive access for a batch of changes
func (r *Registry) Begin() *Transaction {
	r.Lock()
	trx := r.database.Begin()
	return &Transaction{
		registry: r,
		trx:      trx,
		pools:    r.pools.in(trx),
	}
}

// Contains - see Registry.Contains
func (t *Transaction) Contains(protocolID uint64, tokenID merkle.Digest, height uint64) bool {
	return t.pools.contains(protocolID, tokenID, height)
}

// GetByKey - see Registry.GetByKey
func (t *Transaction) GetByKey(protocolID uint64, tokenID merkle.Digest) nftoken.Index {
	return t.pools.getByKey(protocolID, tokenID)
}

// GetByTxHash - see Registry.GetByTxHash
func (t *Transaction) GetByTxHash(txHash merkle.Digest) nftoken.Index {
	return t.pools.getByTxHash(txHash)
}

// TotalSupply - see Registry.TotalSupply
func (t *Transaction) TotalSupply(protocolID uint64) uint64 {
	return t.pools.totalSupply(protocolID)
}

// Add - stage a new entry, fails if the key is live
func (t *Transaction) Add(token *nftoken.NfToken, txHash merkle.Digest, block *blockrecord.Index) error {
	err := t.pools.add(token, txHash, block)
	if nil == err {
		t.registry.log.Debugf("add: %s  tx: %s  height: %d", token, txHash, block.Height)
	}
	return err
}

// Delete - stage removal of an entry confirmed at height
func (t *Transaction) Delete(protocolID uint64, tokenID merkle.Digest, height uint64) error {
	err := t.pools.delete(protocolID, tokenID, height)
	if nil == err {
		t.registry.log.Debugf("delete: protocol: %s  id: %s  height: %d", nftoken.ProtocolName(protocolID), tokenID, height)
	}
	return err
}

// Pool - another pool of the same database staged in this transaction
//
// its writes are committed in the same batch as the registry changes
func (t *Transaction) Pool(pool *storage.PoolHandle) *storage.PoolHandle {
	return pool.In(t.trx)
}

// Commit - write all staged changes and release the registry
func (t *Transaction) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	defer t.registry.Unlock()
	return t.trx.Commit()
}

// Abort - discard staged changes and release the registry
//
// safe to call after Commit
func (t *Transaction) Abort() {
	if t.done {
		return
	}
	t.done = true
	t.trx.Abort()
	t.registry.Unlock()
}
