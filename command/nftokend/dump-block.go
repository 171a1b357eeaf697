// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/nftokend/block"
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/governance"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/nftoken"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

type transactionItem struct {
	Index int           `json:"index"`
	TxId  merkle.Digest `json:"txId"`
	Type  string        `json:"type"`
	Data  interface{}   `json:"data,omitempty"`
}

type blockResult struct {
	Digest       merkle.Digest       `json:"digest"`
	Header       *blockrecord.Header `json:"header"`
	Transactions []transactionItem   `json:"transactions"`
}

// dump of a particular block
func dumpBlock(blocks *block.Manager, number uint64) (*blockResult, error) {

	b, err := blocks.Get(number)
	if nil != err {
		return nil, err
	}

	txs := make([]transactionItem, len(b.Transactions))
	for i, tx := range b.Transactions {
		txs[i] = transactionItem{
			Index: i,
			TxId:  tx.Hash(),
			Type:  tx.Type.String(),
			Data:  decodePayload(tx),
		}
	}

	return &blockResult{
		Digest:       b.Digest(),
		Header:       &b.Header,
		Transactions: txs,
	}, nil
}

// decoded special payload, nil for normal or undecodable transactions
func decodePayload(tx *transactionrecord.Transaction) interface{} {
	if !tx.IsSpecial() {
		return nil
	}
	switch tx.Type {
	case transactionrecord.NfTokenRegisterTx:
		reg := &nftoken.RegTx{}
		if nil == transactionrecord.GetPayload(tx, reg) {
			return reg
		}
	case transactionrecord.NftProtocolRegisterTx:
		reg := &nftoken.ProtoRegTx{}
		if nil == transactionrecord.GetPayload(tx, reg) {
			return reg
		}
	case transactionrecord.GovernanceVoteTx:
		vote := &governance.Vote{}
		if nil == transactionrecord.GetPayload(tx, vote) {
			return vote
		}
	}
	return nil
}
