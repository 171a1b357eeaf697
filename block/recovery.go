// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"encoding/binary"

	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/governance"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

// count the votes of every stored block in chain order
func (m *Manager) replayVotes() error {
	total := 0
	err := m.blocks.NewFetchCursor().Map(func(key []byte, value []byte) (bool, error) {
		block, err := blockrecord.PackedBlock(value).Unpack()
		if nil != err {
			m.log.Criticalf("failed to unpack block: %d from storage  error: %s", binary.BigEndian.Uint64(key), err)
			return false, err
		}

		height := block.Header.Number
		for _, tx := range block.Transactions {
			if transactionrecord.GovernanceVoteTx != tx.Type || !tx.IsSpecial() {
				continue
			}
			vote := governance.Vote{}
			if err := transactionrecord.GetPayload(tx, &vote); nil != err {
				m.log.Errorf("block: %d  tx: %s  vote error: %s", height, tx.Hash(), err)
				return false, err
			}
			m.ledger.Queue(height, vote)
		}
		total += m.ledger.FinaliseBlock(height)
		return true, nil
	})
	if nil == err {
		m.log.Infof("votes replayed: %d", total)
	}
	return err
}
