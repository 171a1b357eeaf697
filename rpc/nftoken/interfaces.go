// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftoken

import (
	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/merkle"
	nft "github.com/bitmark-inc/nftokend/nftoken"
	"github.com/bitmark-inc/nftokend/registry"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Registry - the read side of the token and protocol registry
type Registry interface {
	GetByKey(protocolID uint64, tokenID merkle.Digest) nft.Index
	GetByTxHash(txHash merkle.Digest) nft.Index
	TotalSupply(protocolID uint64) uint64
	RangeByHeight(filter registry.Filter, fromHeight uint64, count int, skip int) ([]nft.Index, error)
	GetProtocol(protocolID uint64) nft.ProtocolIndex
	Protocols() ([]nft.ProtocolIndex, error)
	Tip() *blockrecord.Index
}

// Wallet - private keys held by this node
type Wallet interface {
	PrivateKey(keyID account.KeyID) (*account.PrivateKey, error)
}

// Funder - add inputs and change so the transaction pays its fee
type Funder interface {
	Fund(tx *transactionrecord.Transaction) error
}

// Sender - sign the inputs and relay, returning the transaction hash
type Sender interface {
	SignAndSend(tx *transactionrecord.Transaction) (merkle.Digest, error)
}
