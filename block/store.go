// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/registry"
)

// ConnectBlock - validate and apply the next block of the chain
//
// the block is stored in the same batch as its registry changes;
// on error the chain state is unchanged
func (m *Manager) ConnectBlock(packed blockrecord.PackedBlock) (*blockrecord.Index, error) {
	block, err := packed.Unpack()
	if nil != err {
		return nil, err
	}

	m.Lock()
	defer m.Unlock()

	expectedHeight := uint64(0)
	previousBlock := merkle.Digest{}
	if nil != m.tip {
		expectedHeight = m.tip.Height + 1
		previousBlock = m.tip.Hash
	}
	if expectedHeight != block.Header.Number {
		m.log.Warnf("out of sequence block: actual: %d  expected: %d", block.Header.Number, expectedHeight)
		return nil, fault.ErrBlockHeightMismatch
	}
	if previousBlock != block.Header.PreviousBlock {
		m.log.Warnf("block: %d  previous: %s  expected: %s", block.Header.Number, block.Header.PreviousBlock, previousBlock)
		return nil, fault.ErrPreviousBlockMismatch
	}

	index := blockrecord.IndexOf(&block.Header)

	store := func(trx *registry.Transaction) {
		trx.Pool(m.blocks).Put(heightKey(index.Height), packed)
	}
	if err := m.dispatcher.ProcessBlock(false, block, index, store); nil != err {
		m.ledger.DiscardPending(index.Height)
		m.log.Warnf("rejected block: %s  error: %s", index, err)
		return nil, err
	}

	m.ledger.FinaliseBlock(index.Height)
	m.digests.SetDefault(cacheKey(index.Height), index.Hash)

	m.log.Infof("connected block: %s  transactions: %d", index, len(block.Transactions))
	m.setTip(index)
	return index, nil
}
