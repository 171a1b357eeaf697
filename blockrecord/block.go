// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

// PackedBlock - packed records are just a byte slice
type PackedBlock []byte

// Block - header and its ordered transactions
type Block struct {
	Header       Header                           `json:"header"`
	Transactions []*transactionrecord.Transaction `json:"transactions"`
}

// New - assemble the next block on top of previous (nil for the first block)
func New(previous *Index, timestamp uint64, txs []*transactionrecord.Transaction) *Block {
	header := Header{
		Version:          Version,
		TransactionCount: uint16(len(txs)),
		Timestamp:        timestamp,
		MerkleRoot:       merkleRoot(txs),
	}
	if nil != previous {
		header.Number = previous.Height + 1
		header.PreviousBlock = previous.Hash
	}
	return &Block{
		Header:       header,
		Transactions: txs,
	}
}

// Digest - hash of the block header
func (b *Block) Digest() merkle.Digest {
	return b.Header.Pack().Digest()
}

// Pack - header followed by each packed transaction
func (b *Block) Pack() PackedBlock {
	packedHeader := b.Header.Pack()
	buffer := append(PackedBlock{}, packedHeader[:]...)
	for _, tx := range b.Transactions {
		buffer = append(buffer, tx.Pack()...)
	}
	return buffer
}

// Unpack - decode a block and check its merkle root
func (record PackedBlock) Unpack() (*Block, error) {
	header, _, data, err := ExtractHeader(record)
	if nil != err {
		return nil, err
	}

	txs := make([]*transactionrecord.Transaction, 0, header.TransactionCount)
	for i := 0; i < int(header.TransactionCount); i += 1 {
		tx, n, err := transactionrecord.Packed(data).Unpack()
		if nil != err {
			return nil, err
		}
		txs = append(txs, tx)
		data = data[n:]
	}
	if 0 != len(data) {
		return nil, fault.ErrUnexpectedTrailingData
	}

	if merkleRoot(txs) != header.MerkleRoot {
		return nil, fault.ErrMerkleRootMismatch
	}
	return &Block{
		Header:       *header,
		Transactions: txs,
	}, nil
}

func merkleRoot(txs []*transactionrecord.Transaction) merkle.Digest {
	ids := make([]merkle.Digest, len(txs))
	for i, tx := range txs {
		ids[i] = tx.Hash()
	}
	return merkle.Root(ids)
}
