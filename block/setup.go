// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package block - the active chain of stored blocks
//
// Connecting and disconnecting blocks drives the special transaction
// dispatcher, the governance ledger and the registry tip.
package block

import (
	"encoding/binary"
	"strconv"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/governance"
	"github.com/bitmark-inc/nftokend/specialtx"
	"github.com/bitmark-inc/nftokend/storage"
)

// storage pool for packed blocks keyed by big endian height
const blockPrefix = 'B'

// digest cache timing
const (
	digestExpiry  = 10 * time.Minute
	digestCleanup = 20 * time.Minute
)

// Manager - owner of the chain state
type Manager struct {
	sync.RWMutex

	log *logger.L

	blocks     *storage.PoolHandle
	dispatcher *specialtx.Dispatcher
	ledger     *governance.Ledger
	tips       *specialtx.TipSync

	// nil until the first block is connected
	tip *blockrecord.Index

	// height → header digest
	digests *cache.Cache
}

// New - recover the chain state from the database
//
// governance votes of stored blocks are counted again since the
// ledger is not persisted
func New(database *storage.Database, dispatcher *specialtx.Dispatcher, ledger *governance.Ledger, tips *specialtx.TipSync) (*Manager, error) {
	m := &Manager{
		log:        logger.New("block"),
		blocks:     database.Pool(blockPrefix),
		dispatcher: dispatcher,
		ledger:     ledger,
		tips:       tips,
		digests:    cache.New(digestExpiry, digestCleanup),
	}
	m.log.Info("starting…")

	items, err := m.blocks.NewReverseCursor().Fetch(1)
	if nil != err {
		return nil, err
	}
	if 0 != len(items) {
		header, _, _, err := blockrecord.ExtractHeader(items[0].Value)
		if nil != err {
			m.log.Criticalf("failed to unpack block: %d from storage  error: %s", binary.BigEndian.Uint64(items[0].Key), err)
			return nil, err
		}
		m.tip = blockrecord.IndexOf(header)

		if err := m.replayVotes(); nil != err {
			return nil, err
		}
	}

	m.log.Infof("tip: %s", m.tip)
	m.tips.OnTipChanged(m.tip)
	return m, nil
}

func heightKey(height uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, height)
	return key
}

func cacheKey(height uint64) string {
	return strconv.FormatUint(height, 10)
}

// must hold lock
func (m *Manager) setTip(index *blockrecord.Index) {
	m.tip = index
	m.tips.OnTipChanged(index)
}
