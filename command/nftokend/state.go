// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftokend/block"
	"github.com/bitmark-inc/nftokend/governance"
	"github.com/bitmark-inc/nftokend/registry"
	"github.com/bitmark-inc/nftokend/specialtx"
	"github.com/bitmark-inc/nftokend/storage"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

// chainState - the consensus components over one database
type chainState struct {
	database *storage.Database
	registry *registry.Registry
	ledger   *governance.Ledger
	blocks   *block.Manager
}

// open the database and recover the active chain
//
// protocol and token registrations change the registry as each
// transaction is processed, governance votes are counted when their
// block is final
func openChainState(log *logger.L, databaseName string) (*chainState, error) {

	log.Infof("open database: %q", databaseName)
	database, err := storage.Open(databaseName, storage.ReadWrite)
	if nil != err {
		return nil, err
	}

	r := registry.New(database)
	ledger := governance.NewLedger()

	dispatcher := specialtx.New(r)
	err = dispatcher.Register(transactionrecord.NfTokenRegisterTx, specialtx.NewNfTokenHandler(), specialtx.Immediate)
	if nil != err {
		database.Close()
		return nil, err
	}
	err = dispatcher.Register(transactionrecord.NftProtocolRegisterTx, specialtx.NewNftProtocolHandler(), specialtx.Immediate)
	if nil != err {
		database.Close()
		return nil, err
	}
	err = dispatcher.Register(transactionrecord.GovernanceVoteTx, governance.NewHandler(ledger), specialtx.Deferred)
	if nil != err {
		database.Close()
		return nil, err
	}

	blocks, err := block.New(database, dispatcher, ledger, specialtx.NewTipSync(r))
	if nil != err {
		database.Close()
		return nil, err
	}

	return &chainState{
		database: database,
		registry: r,
		ledger:   ledger,
		blocks:   blocks,
	}, nil
}

func (s *chainState) close() {
	s.database.Close()
}
