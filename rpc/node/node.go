// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/counter"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/rpc/ratelimit"
)

// Chain - the connected blocks
type Chain interface {
	Tip() *blockrecord.Index
	Get(height uint64) (*blockrecord.Block, error)
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Name    string
	Chain   Chain
	counter *counter.Counter
}

// New - the Node RPC
func New(log *logger.L, limiter *rate.Limiter, start time.Time, version string, name string, c Chain, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: limiter,
		Start:   start,
		Version: version,
		Name:    name,
		Chain:   c,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string    `json:"chain"`
	Block   BlockInfo `json:"block"`
	RPCs    uint64    `json:"rpcs"`
	Version string    `json:"version"`
	Uptime  string    `json:"uptime"`
}

// BlockInfo - the highest block held by the node
type BlockInfo struct {
	Height uint64        `json:"height"`
	Hash   merkle.Digest `json:"hash"`
	Time   uint64        `json:"time"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Name
	if tip := node.Chain.Tip(); nil != tip {
		reply.Block = BlockInfo{
			Height: tip.Height,
			Hash:   tip.Hash,
			Time:   tip.Time,
		}
	}
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

// ---

// BlockArguments - arguments for block request
type BlockArguments struct {
	Height uint64 `json:"height,string"`
}

// BlockReply - a connected block
type BlockReply struct {
	Hash         merkle.Digest       `json:"hash"`
	Header       *blockrecord.Header `json:"header"`
	Transactions []merkle.Digest     `json:"transactions"`
}

// Block - header and transaction hashes of a connected block
func (node *Node) Block(arguments *BlockArguments, reply *BlockReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	node.Log.Debugf("Node.Block: %d", arguments.Height)

	block, err := node.Chain.Get(arguments.Height)
	if nil != err {
		return err
	}

	reply.Hash = block.Digest()
	reply.Header = &block.Header
	reply.Transactions = make([]merkle.Digest, len(block.Transactions))
	for i, tx := range block.Transactions {
		reply.Transactions[i] = tx.Hash()
	}
	return nil
}
