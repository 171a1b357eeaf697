// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftokend/counter"
	"github.com/bitmark-inc/nftokend/rpc/nftoken"
	"github.com/bitmark-inc/nftokend/rpc/node"
	"github.com/bitmark-inc/nftokend/rpc/ratelimit"
)

// Configuration - everything the RPC services need
type Configuration struct {
	Version   string
	Chain     string
	Testnet   bool
	RateLimit ratelimit.Configuration
	Registry  nftoken.Registry
	Blocks    node.Chain
	Wallet    nftoken.Wallet
	Funder    nftoken.Funder
	Sender    nftoken.Sender
}

// Create - an RPC server with the NfToken, NftProto and Node services registered
//
// all services share one limiter
func Create(log *logger.L, configuration *Configuration, rpcCount *counter.Counter) (*rpc.Server, error) {

	start := time.Now().UTC()
	limiter := ratelimit.New(configuration.RateLimit)

	server := rpc.NewServer()

	err := server.Register(nftoken.New(
		log,
		limiter,
		configuration.Registry,
		configuration.Wallet,
		configuration.Funder,
		configuration.Sender,
		configuration.Testnet,
	))
	if nil != err {
		return nil, err
	}

	err = server.Register(nftoken.NewNftProto(
		log,
		limiter,
		configuration.Registry,
		configuration.Wallet,
		configuration.Funder,
		configuration.Sender,
		configuration.Testnet,
	))
	if nil != err {
		return nil, err
	}

	err = server.Register(node.New(log, limiter, start, configuration.Version, configuration.Chain, configuration.Blocks, rpcCount))
	if nil != err {
		return nil, err
	}

	return server, nil
}
