// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package specialtx

import (
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/registry"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

//go:generate mockgen -source=handler.go -destination=mocks/handler.go -package=mocks

// Handler - the rules for one kind of special transaction
//
// Check must only read the store. Apply and Revert may assume Check
// succeeded and panic if the payload no longer decodes.
type Handler interface {
	Check(tx *transactionrecord.Transaction, prior *blockrecord.Index, store registry.Store) error
	Apply(tx *transactionrecord.Transaction, block *blockrecord.Index, store registry.Store) error
	Revert(tx *transactionrecord.Transaction, block *blockrecord.Index, store registry.Store) error
}

// TipUpdater - receives the active chain tip
type TipUpdater interface {
	UpdateTip(block *blockrecord.Index)
}

// Mode - when a handler's Apply runs
type Mode int

// handler modes
const (
	// Immediate - apply whenever the transaction is processed
	Immediate Mode = iota

	// Deferred - skipped when only checking; the effect is applied in
	// a batch when the block is finalised
	Deferred
)

type entry struct {
	handler Handler
	mode    Mode
}
