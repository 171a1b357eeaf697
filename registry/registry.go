// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/nftoken"
	"github.com/bitmark-inc/nftokend/storage"
)

// pool prefixes
const (
	tokenPrefix    = 'T'
	txIndexPrefix  = 'X'
	heightPrefix   = 'H'
	supplyPrefix   = 'S'
	protocolPrefix = 'P'
)

// Store - token registry operations used by transaction handlers
type Store interface {
	Contains(protocolID uint64, tokenID merkle.Digest, height uint64) bool
	Add(token *nftoken.NfToken, txHash merkle.Digest, block *blockrecord.Index) error
	Delete(protocolID uint64, tokenID merkle.Digest, height uint64) error
	GetByKey(protocolID uint64, tokenID merkle.Digest) nftoken.Index
	GetByTxHash(txHash merkle.Digest) nftoken.Index
	TotalSupply(protocolID uint64) uint64

	GetProtocol(protocolID uint64) nftoken.ProtocolIndex
	AddProtocol(protocol *nftoken.NftProtocol, txHash merkle.Digest, block *blockrecord.Index) error
	DeleteProtocol(protocolID uint64, height uint64) error
}

// Registry - committed token state
type Registry struct {
	sync.RWMutex
	log      *logger.L
	database *storage.Database
	pools    view

	tipLock sync.Mutex
	tip     *blockrecord.Index
}

// New - registry over an open database
func New(database *storage.Database) *Registry {
	return &Registry{
		log:      logger.New("registry"),
		database: database,
		pools: view{
			tokens:    database.Pool(tokenPrefix),
			txIndex:   database.Pool(txIndexPrefix),
			heights:   database.Pool(heightPrefix),
			supply:    database.Pool(supplyPrefix),
			protocols: database.Pool(protocolPrefix),
		},
	}
}

// Contains - true if a live entry confirmed at or below height exists
func (r *Registry) Contains(protocolID uint64, tokenID merkle.Digest, height uint64) bool {
	r.RLock()
	defer r.RUnlock()
	return r.pools.contains(protocolID, tokenID, height)
}

// GetByKey - point lookup, null index if not found
func (r *Registry) GetByKey(protocolID uint64, tokenID merkle.Digest) nftoken.Index {
	r.RLock()
	defer r.RUnlock()
	return r.pools.getByKey(protocolID, tokenID)
}

// GetByTxHash - point lookup, null index if not found
func (r *Registry) GetByTxHash(txHash merkle.Digest) nftoken.Index {
	r.RLock()
	defer r.RUnlock()
	return r.pools.getByTxHash(txHash)
}

// TotalSupply - live entries of one protocol, or all for UnknownProtocol
func (r *Registry) TotalSupply(protocolID uint64) uint64 {
	r.RLock()
	defer r.RUnlock()
	return r.pools.totalSupply(protocolID)
}

// Add - insert and commit a single entry
func (r *Registry) Add(token *nftoken.NfToken, txHash merkle.Digest, block *blockrecord.Index) error {
	t := r.Begin()
	defer t.Abort()

	if err := t.Add(token, txHash, block); nil != err {
		return err
	}
	return t.Commit()
}

// Delete - remove and commit a single entry
func (r *Registry) Delete(protocolID uint64, tokenID merkle.Digest, height uint64) error {
	t := r.Begin()
	defer t.Abort()

	if err := t.Delete(protocolID, tokenID, height); nil != err {
		return err
	}
	return t.Commit()
}

// UpdateTip - record the active chain tip
func (r *Registry) UpdateTip(block *blockrecord.Index) {
	r.tipLock.Lock()
	defer r.tipLock.Unlock()

	if nil == block {
		r.tip = nil
		return
	}
	tip := *block
	r.tip = &tip
	r.log.Debugf("tip: %s", &tip)
}

// Tip - the active chain tip, nil before the first block
func (r *Registry) Tip() *blockrecord.Index {
	r.tipLock.Lock()
	defer r.tipLock.Unlock()

	if nil == r.tip {
		return nil
	}
	tip := *r.tip
	return &tip
}
