// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/registry"
)

// DisconnectTip - undo and remove the highest block
func (m *Manager) DisconnectTip() error {
	m.Lock()
	defer m.Unlock()

	return m.disconnectTip()
}

// DisconnectDownTo - disconnect from the tip down to and including height
func (m *Manager) DisconnectDownTo(height uint64) error {
	m.Lock()
	defer m.Unlock()

	m.log.Infof("disconnect down to block: %d", height)

	for nil != m.tip && m.tip.Height >= height {
		if err := m.disconnectTip(); nil != err {
			return err
		}
	}
	return nil
}

// must hold lock
//
// an undo failure means the registry no longer matches the chain so
// the caller must stop processing
func (m *Manager) disconnectTip() error {
	if nil == m.tip {
		return fault.ErrEmptyChain
	}
	index := m.tip

	block, err := m.get(index.Height)
	if nil != err {
		m.log.Criticalf("tip block: %s  missing from storage: %s", index, err)
		return err
	}

	remove := func(trx *registry.Transaction) {
		trx.Pool(m.blocks).Delete(heightKey(index.Height))
	}
	if err := m.dispatcher.UndoBlock(block, index, remove); nil != err {
		m.log.Criticalf("undo block: %s  error: %s", index, err)
		return fault.ErrUndoFailed
	}
	m.ledger.UndoBlock(index.Height)

	m.digests.Delete(cacheKey(index.Height))

	var previous *blockrecord.Index
	if index.Height > 0 {
		p, err := m.get(index.Height - 1)
		if nil != err {
			m.log.Criticalf("previous block: %d  missing from storage: %s", index.Height-1, err)
			return err
		}
		previous = blockrecord.IndexOf(&p.Header)
	}

	m.log.Infof("disconnected block: %s  transactions: %d", index, len(block.Transactions))
	m.setTip(previous)
	return nil
}
