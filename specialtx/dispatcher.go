// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package specialtx

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/registry"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

// Dispatcher - routes special transactions to their handlers
type Dispatcher struct {
	sync.RWMutex
	log      *logger.L
	registry *registry.Registry
	handlers map[transactionrecord.TxType]entry
}

// New - dispatcher over a registry with no handlers
func New(r *registry.Registry) *Dispatcher {
	return &Dispatcher{
		log:      logger.New("specialtx"),
		registry: r,
		handlers: make(map[transactionrecord.TxType]entry),
	}
}

// Register - install the handler for a transaction kind
func (d *Dispatcher) Register(txType transactionrecord.TxType, h Handler, mode Mode) error {
	d.Lock()
	defer d.Unlock()

	if transactionrecord.NormalTx == txType || txType >= transactionrecord.InvalidTx {
		return fault.ErrInvalidTxType
	}
	if _, ok := d.handlers[txType]; ok {
		return fault.ErrHandlerExists
	}
	d.handlers[txType] = entry{
		handler: h,
		mode:    mode,
	}
	d.log.Infof("registered handler for: %s", txType)
	return nil
}

func (d *Dispatcher) lookup(txType transactionrecord.TxType) (entry, bool) {
	d.RLock()
	defer d.RUnlock()
	e, ok := d.handlers[txType]
	return e, ok
}

func badType() error {
	return fault.Reject(fault.ErrInvalidTxType, fault.ScoreHigh, fault.RejectInvalid, "bad-tx-type")
}

// CheckTransaction - validate one transaction against committed state
//
// prior is the tip being extended; nil skips chain dependent checks
func (d *Dispatcher) CheckTransaction(tx *transactionrecord.Transaction, prior *blockrecord.Index) error {
	return d.check(tx, prior, d.registry)
}

// ProcessTransaction - apply one transaction to committed state
//
// deferred kinds do nothing when justCheck is set, every other kind
// is applied regardless of justCheck
func (d *Dispatcher) ProcessTransaction(justCheck bool, tx *transactionrecord.Transaction, block *blockrecord.Index) error {
	return d.process(justCheck, tx, block, d.registry)
}

// UndoTransaction - revert one transaction from committed state
func (d *Dispatcher) UndoTransaction(tx *transactionrecord.Transaction, block *blockrecord.Index) error {
	return d.undo(tx, block, d.registry)
}

func (d *Dispatcher) check(tx *transactionrecord.Transaction, prior *blockrecord.Index, store registry.Store) error {
	if !tx.IsSpecial() {
		return nil
	}
	e, ok := d.lookup(tx.Type)
	if !ok {
		return badType()
	}
	return e.handler.Check(tx, prior, store)
}

func (d *Dispatcher) process(justCheck bool, tx *transactionrecord.Transaction, block *blockrecord.Index, store registry.Store) error {
	if !tx.IsSpecial() {
		return nil
	}
	e, ok := d.lookup(tx.Type)
	if !ok {
		return badType()
	}
	if justCheck && Deferred == e.mode {
		return nil
	}
	return e.handler.Apply(tx, block, store)
}

func (d *Dispatcher) undo(tx *transactionrecord.Transaction, block *blockrecord.Index, store registry.Store) error {
	if !tx.IsSpecial() {
		return nil
	}
	e, ok := d.lookup(tx.Type)
	if !ok {
		return fault.ErrInvalidTxType
	}
	return e.handler.Revert(tx, block, store)
}
