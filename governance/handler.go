// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/registry"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

// Handler - rules for governance vote transactions
//
// votes do not touch the token registry; they are queued in the
// ledger and counted when the block is finalised
type Handler struct {
	ledger *Ledger
}

// NewHandler - handler queuing into ledger
func NewHandler(ledger *Ledger) *Handler {
	return &Handler{
		ledger: ledger,
	}
}

// Check - validate a vote
func (h *Handler) Check(tx *transactionrecord.Transaction, prior *blockrecord.Index, store registry.Store) error {
	vote := Vote{}
	if err := transactionrecord.GetPayload(tx, &vote); nil != err {
		return fault.Reject(fault.ErrBadPayload, fault.ScoreHigh, fault.RejectInvalid, "bad-tx-payload")
	}
	if CurrentVersion != vote.Version {
		return fault.Reject(fault.ErrBadVersion, fault.ScoreHigh, fault.RejectInvalid, "bad-vote-tx-version")
	}
	if vote.Proposal.IsZero() {
		return fault.Reject(fault.ErrNullField, fault.ScoreLow, fault.RejectInvalid, "bad-vote-tx-proposal-null")
	}
	if vote.Voter.IsNull() {
		return fault.Reject(fault.ErrNullField, fault.ScoreLow, fault.RejectInvalid, "bad-vote-tx-voter-null")
	}
	if !vote.Outcome.IsValid() {
		return fault.Reject(fault.ErrInvalidVoteOutcome, fault.ScoreHigh, fault.RejectInvalid, "bad-vote-tx-outcome")
	}
	if err := account.VerifyHash(vote.SignatureHash(), vote.Voter, vote.Signature); nil != err {
		return fault.Reject(fault.ErrBadSignature, fault.ScoreHigh, fault.RejectInvalid, "bad-vote-tx-sig").WithDebug(err.Error())
	}
	return nil
}

// Apply - queue the vote for its block
func (h *Handler) Apply(tx *transactionrecord.Transaction, block *blockrecord.Index, store registry.Store) error {
	vote := Vote{}
	if err := transactionrecord.GetPayload(tx, &vote); nil != err {
		fault.Panicf("governance: payload of tx: %s  no longer decodes: %s", tx.Hash(), err)
	}
	h.ledger.Queue(block.Height, vote)
	return nil
}

// Revert - nothing per transaction, see Ledger.UndoBlock
func (h *Handler) Revert(tx *transactionrecord.Transaction, block *blockrecord.Index, store registry.Store) error {
	return nil
}
