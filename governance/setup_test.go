// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fixtures"
	"github.com/bitmark-inc/nftokend/governance"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func proposal(s string) merkle.Digest {
	return merkle.NewDigest([]byte(s))
}

func newVote(p string, outcome governance.Outcome, key *account.PrivateKey) *governance.Vote {
	v := &governance.Vote{
		Version:  governance.CurrentVersion,
		Proposal: proposal(p),
		Outcome:  outcome,
		Time:     1600000000,
	}
	v.Sign(key)
	return v
}

func voteTx(v *governance.Vote) *transactionrecord.Transaction {
	tx := &transactionrecord.Transaction{
		Version: transactionrecord.SpecialVersion,
		Type:    transactionrecord.GovernanceVoteTx,
	}
	transactionrecord.SetPayload(tx, v)
	return tx
}

func blockAt(height uint64) *blockrecord.Index {
	return &blockrecord.Index{
		Height: height,
		Hash:   merkle.NewDigest([]byte{byte(height)}),
		Time:   1600000000 + height*60,
	}
}
