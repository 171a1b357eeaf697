// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/util"
)

// CurrentVersion - the only vote payload version accepted
const CurrentVersion = 1

// Outcome - a voter's choice
type Outcome uint64

// possible outcomes
const (
	invalidOutcome = Outcome(iota)
	Yes            = Outcome(iota)
	No             = Outcome(iota)
	Abstain        = Outcome(iota)
	outcomeLimit   = Outcome(iota)
)

// IsValid - true for Yes, No and Abstain
func (o Outcome) IsValid() bool {
	return o > invalidOutcome && o < outcomeLimit
}

// String - readable outcome
func (o Outcome) String() string {
	switch o {
	case Yes:
		return "yes"
	case No:
		return "no"
	case Abstain:
		return "abstain"
	default:
		return "invalid"
	}
}

// ParseOutcome - outcome from its text form
func ParseOutcome(s string) (Outcome, error) {
	for o := Yes; o < outcomeLimit; o += 1 {
		if o.String() == s {
			return o, nil
		}
	}
	return invalidOutcome, fault.ErrInvalidVoteOutcome
}

// Vote - payload of a governance vote transaction
type Vote struct {
	Version   uint64
	Proposal  merkle.Digest
	Outcome   Outcome
	Voter     account.KeyID
	Time      uint64
	Signature account.Signature
}

func (v *Vote) packUnsigned() []byte {
	buffer := make([]byte, 0, 96)
	buffer = util.AppendUint64(buffer, v.Version)
	buffer = append(buffer, v.Proposal[:]...)
	buffer = util.AppendUint64(buffer, uint64(v.Outcome))
	buffer = append(buffer, v.Voter[:]...)
	return util.AppendUint64(buffer, v.Time)
}

// Pack - canonical serialisation
func (v *Vote) Pack() []byte {
	return util.AppendBytes(v.packUnsigned(), v.Signature)
}

// Unpack - decode a serialised vote
func (v *Vote) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)

	vote := Vote{}
	vote.Version = u.Uint64()
	merkle.DigestFromBytes(&vote.Proposal, u.Fixed(merkle.DigestLength))
	vote.Outcome = Outcome(u.Uint64())
	account.KeyIDFromBytes(&vote.Voter, u.Fixed(account.KeyIDLength))
	vote.Time = u.Uint64()
	vote.Signature = u.Bytes(account.SignatureLength)

	if err := u.Done(); nil != err {
		return err
	}
	*v = vote
	return nil
}

// SignatureHash - hash of the vote without its signature
func (v *Vote) SignatureHash() merkle.Digest {
	return merkle.NewDigest(v.packUnsigned())
}

// Sign - fill voter and signature from the voter's key
func (v *Vote) Sign(key *account.PrivateKey) {
	v.Voter = key.KeyID()
	v.Signature = key.Sign(v.SignatureHash())
}
