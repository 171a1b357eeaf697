// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
)

// Tip - copy of the highest connected block's index, nil if none
func (m *Manager) Tip() *blockrecord.Index {
	m.RLock()
	defer m.RUnlock()

	if nil == m.tip {
		return nil
	}
	tip := *m.tip
	return &tip
}

// Height - highest connected block, false if the chain is empty
func (m *Manager) Height() (uint64, bool) {
	m.RLock()
	defer m.RUnlock()

	if nil == m.tip {
		return 0, false
	}
	return m.tip.Height, true
}

// Get - a connected block
func (m *Manager) Get(height uint64) (*blockrecord.Block, error) {
	m.RLock()
	defer m.RUnlock()

	return m.get(height)
}

func (m *Manager) get(height uint64) (*blockrecord.Block, error) {
	packed := m.blocks.Get(heightKey(height))
	if nil == packed {
		return nil, fault.ErrBlockNotFound
	}
	return blockrecord.PackedBlock(packed).Unpack()
}

// DigestForBlock - header digest of a connected block
func (m *Manager) DigestForBlock(height uint64) (merkle.Digest, error) {
	m.RLock()
	defer m.RUnlock()

	if d, ok := m.digests.Get(cacheKey(height)); ok {
		return d.(merkle.Digest), nil
	}

	packed := m.blocks.Get(heightKey(height))
	if nil == packed {
		return merkle.Digest{}, fault.ErrBlockNotFound
	}
	_, digest, _, err := blockrecord.ExtractHeader(packed)
	if nil != err {
		return merkle.Digest{}, err
	}
	m.digests.SetDefault(cacheKey(height), digest)
	return digest, nil
}
