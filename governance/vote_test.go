// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/fixtures"
	"github.com/bitmark-inc/nftokend/governance"
)

func TestVotePack(t *testing.T) {
	v := newVote("raise-limit", governance.No, fixtures.OwnerKey)
	assert.Equal(t, fixtures.OwnerKey.KeyID(), v.Voter, "voter")

	var decoded governance.Vote
	err := decoded.Unpack(v.Pack())
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, *v, decoded, "decoded vote")
	assert.Nil(t, account.VerifyHash(decoded.SignatureHash(), decoded.Voter, decoded.Signature), "signature")

	packed := v.Pack()
	err = decoded.Unpack(append(packed, 0x00))
	assert.Equal(t, fault.ErrUnexpectedTrailingData, err, "trailing byte")

	err = decoded.Unpack(packed[:40])
	assert.NotNil(t, err, "truncated")
}

func TestParseOutcome(t *testing.T) {
	for _, o := range []governance.Outcome{governance.Yes, governance.No, governance.Abstain} {
		parsed, err := governance.ParseOutcome(o.String())
		assert.Nil(t, err, "parse %s", o)
		assert.Equal(t, o, parsed, "outcome")
		assert.True(t, o.IsValid(), "valid %s", o)
	}

	_, err := governance.ParseOutcome("maybe")
	assert.Equal(t, fault.ErrInvalidVoteOutcome, err, "unknown outcome")
	assert.False(t, governance.Outcome(0).IsValid(), "zero outcome")
	assert.False(t, governance.Outcome(4).IsValid(), "outcome past the end")
}
