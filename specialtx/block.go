// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package specialtx

import (
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/registry"
)

// Stage - extra writes committed in the same batch as a block's
// registry changes; only called once every transaction has succeeded
type Stage func(trx *registry.Transaction)

// ProcessBlock - check then apply every transaction of a block in order
//
// all changes, including those of stages, are committed together; on
// the first failure nothing is written and that failure is returned
func (d *Dispatcher) ProcessBlock(justCheck bool, block *blockrecord.Block, index *blockrecord.Index, stages ...Stage) error {
	trx := d.registry.Begin()
	defer trx.Abort()

	for i, tx := range block.Transactions {
		if err := d.check(tx, index, trx); nil != err {
			d.log.Warnf("block: %s  tx[%d]: %s  check failed: %s", index, i, tx.Hash(), err)
			return err
		}
		if err := d.process(justCheck, tx, index, trx); nil != err {
			d.log.Warnf("block: %s  tx[%d]: %s  process failed: %s", index, i, tx.Hash(), err)
			return err
		}
	}

	for _, stage := range stages {
		stage(trx)
	}

	if err := trx.Commit(); nil != err {
		d.log.Criticalf("block: %s  commit failed: %s", index, err)
		return err
	}
	d.log.Debugf("processed block: %s  transactions: %d", index, len(block.Transactions))
	return nil
}

// UndoBlock - revert every transaction of a block in reverse order
//
// all reversals and stages are committed together; a failure leaves
// the registry unchanged and must be treated as fatal by the caller
func (d *Dispatcher) UndoBlock(block *blockrecord.Block, index *blockrecord.Index, stages ...Stage) error {
	trx := d.registry.Begin()
	defer trx.Abort()

	for i := len(block.Transactions) - 1; i >= 0; i -= 1 {
		tx := block.Transactions[i]
		if err := d.undo(tx, index, trx); nil != err {
			d.log.Criticalf("block: %s  tx[%d]: %s  undo failed: %s", index, i, tx.Hash(), err)
			return err
		}
	}

	for _, stage := range stages {
		stage(trx)
	}

	if err := trx.Commit(); nil != err {
		d.log.Criticalf("block: %s  undo commit failed: %s", index, err)
		return err
	}
	d.log.Debugf("undone block: %s  transactions: %d", index, len(block.Transactions))
	return nil
}
