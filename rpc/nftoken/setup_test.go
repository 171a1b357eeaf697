// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftoken_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fixtures"
	"github.com/bitmark-inc/nftokend/merkle"
	nft "github.com/bitmark-inc/nftokend/nftoken"
	"github.com/bitmark-inc/nftokend/registry"
	"github.com/bitmark-inc/nftokend/rpc/nftoken"
	"github.com/bitmark-inc/nftokend/rpc/nftoken/mocks"
	"github.com/bitmark-inc/nftokend/rpc/ratelimit"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// a registered token and the block it is in
type entry struct {
	symbol string
	n      uint64
	key    *account.PrivateKey
	height uint64
	txHash merkle.Digest
	reg    *nft.RegTx
}

// doc:1 and doc:2 then art:3, one per block
func entries() []entry {
	items := []entry{
		{symbol: "doc", n: 1, key: fixtures.OwnerKey, height: 1},
		{symbol: "doc", n: 2, key: fixtures.OtherKey, height: 2},
		{symbol: "art", n: 3, key: fixtures.OwnerKey, height: 3},
	}
	for i := range items {
		tx, reg := fixtures.NewRegistration(items[i].symbol, items[i].n, items[i].key)
		items[i].txHash = tx.Hash()
		items[i].reg = reg
	}
	return items
}

func blockAt(height uint64) *blockrecord.Index {
	return &blockrecord.Index{
		Height: height,
		Hash:   merkle.Digest{byte(height), 0xb1},
		Time:   1600000000 + height,
	}
}

type setup struct {
	rpc      *nftoken.NfToken
	proto    *nftoken.NftProto
	registry *registry.Registry
	wallet   *mocks.MockWallet
	funder   *mocks.MockFunder
	sender   *mocks.MockSender
	items    []entry
}

// populated registry with its tip at the last entry
func newSetup(t *testing.T, ctl *gomock.Controller) setup {
	r := registry.New(fixtures.NewDatabase())
	fixtures.RegisterProtocols(r, "doc", "art", "pic")

	items := entries()
	for _, item := range items {
		if err := r.Add(&item.reg.Token, item.txHash, blockAt(item.height)); nil != err {
			t.Fatalf("add error: %s", err)
		}
	}
	r.UpdateTip(blockAt(items[len(items)-1].height))

	s := setup{
		registry: r,
		wallet:   mocks.NewMockWallet(ctl),
		funder:   mocks.NewMockFunder(ctl),
		sender:   mocks.NewMockSender(ctl),
		items:    items,
	}
	s.rpc = nftoken.New(
		logger.New(fixtures.LogCategory),
		ratelimit.New(ratelimit.Configuration{}),
		r,
		s.wallet,
		s.funder,
		s.sender,
		true,
	)
	s.proto = nftoken.NewNftProto(
		logger.New(fixtures.LogCategory),
		ratelimit.New(ratelimit.Configuration{}),
		r,
		s.wallet,
		s.funder,
		s.sender,
		true,
	)
	return s
}
