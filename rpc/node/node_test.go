// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/counter"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/fixtures"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/rpc/node"
	"github.com/bitmark-inc/nftokend/rpc/ratelimit"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// in memory chain
type chain struct {
	blocks []*blockrecord.Block
}

func (c *chain) Tip() *blockrecord.Index {
	if 0 == len(c.blocks) {
		return nil
	}
	return blockrecord.IndexOf(&c.blocks[len(c.blocks)-1].Header)
}

func (c *chain) Get(height uint64) (*blockrecord.Block, error) {
	if height >= uint64(len(c.blocks)) {
		return nil, fault.ErrBlockNotFound
	}
	return c.blocks[height], nil
}

func newNode(c *chain, ctr *counter.Counter) *node.Node {
	return node.New(
		logger.New(fixtures.LogCategory),
		ratelimit.New(ratelimit.Configuration{}),
		time.Now().Add(-time.Minute),
		"1.0",
		"testing",
		c,
		ctr,
	)
}

func TestNodeInfo(t *testing.T) {
	first := blockrecord.New(nil, 1600000000, nil)
	second := blockrecord.New(blockrecord.IndexOf(&first.Header), 1600000060, nil)
	c := &chain{blocks: []*blockrecord.Block{first, second}}

	ctr := counter.Counter(3)
	n := newNode(c, &ctr)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "info")
	assert.Equal(t, "testing", reply.Chain, "wrong chain")
	assert.Equal(t, uint64(1), reply.Block.Height, "wrong height")
	assert.Equal(t, second.Digest(), reply.Block.Hash, "wrong hash")
	assert.Equal(t, uint64(1600000060), reply.Block.Time, "wrong time")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpc count")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.NotEqual(t, "", reply.Uptime, "missing uptime")
}

func TestNodeInfoWhenChainEmpty(t *testing.T) {
	ctr := counter.Counter(0)
	n := newNode(&chain{}, &ctr)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "info")
	assert.Equal(t, node.BlockInfo{}, reply.Block, "block on empty chain")
}

func TestNodeBlock(t *testing.T) {
	_, reg := fixtures.NewRegistration("doc", 1, fixtures.OwnerKey)
	tx := &transactionrecord.Transaction{
		Version: transactionrecord.SpecialVersion,
		Type:    transactionrecord.NfTokenRegisterTx,
	}
	transactionrecord.SetPayload(tx, reg)

	first := blockrecord.New(nil, 1600000000, []*transactionrecord.Transaction{tx})
	c := &chain{blocks: []*blockrecord.Block{first}}

	ctr := counter.Counter(0)
	n := newNode(c, &ctr)

	var reply node.BlockReply
	err := n.Block(&node.BlockArguments{Height: 0}, &reply)
	assert.Nil(t, err, "block")
	assert.Equal(t, first.Digest(), reply.Hash, "wrong hash")
	assert.Equal(t, uint64(1600000000), reply.Header.Timestamp, "wrong header")
	assert.Equal(t, []merkle.Digest{tx.Hash()}, reply.Transactions, "wrong transactions")

	err = n.Block(&node.BlockArguments{Height: 1}, &reply)
	assert.Equal(t, fault.ErrBlockNotFound, err, "missing block")
}
