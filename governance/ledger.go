// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/merkle"
)

// Tally - counted votes for one proposal
type Tally struct {
	Yes     uint64 `json:"yes"`
	No      uint64 `json:"no"`
	Abstain uint64 `json:"abstain"`
}

type ballot struct {
	proposal merkle.Digest
	voter    account.KeyID
}

// Ledger - per block batches of votes and the running tallies
//
// a voter's latest vote on a proposal replaces any earlier one
type Ledger struct {
	sync.Mutex
	log     *logger.L
	pending map[uint64][]Vote
	applied map[uint64][]applied
	current map[ballot]Outcome
	tallies map[merkle.Digest]*Tally
}

// the previous outcome is kept so a block can be undone
type applied struct {
	vote     Vote
	previous Outcome
}

// NewLedger - empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		log:     logger.New("governance"),
		pending: make(map[uint64][]Vote),
		applied: make(map[uint64][]applied),
		current: make(map[ballot]Outcome),
		tallies: make(map[merkle.Digest]*Tally),
	}
}

// Queue - hold a vote until its block is finalised
func (l *Ledger) Queue(height uint64, vote Vote) {
	l.Lock()
	defer l.Unlock()
	l.pending[height] = append(l.pending[height], vote)
}

// DiscardPending - drop the queued votes of a block that failed
func (l *Ledger) DiscardPending(height uint64) {
	l.Lock()
	defer l.Unlock()
	delete(l.pending, height)
}

// FinaliseBlock - count the queued votes of a connected block
func (l *Ledger) FinaliseBlock(height uint64) int {
	l.Lock()
	defer l.Unlock()

	votes := l.pending[height]
	delete(l.pending, height)

	batch := make([]applied, 0, len(votes))
	for _, v := range votes {
		b := ballot{proposal: v.Proposal, voter: v.Voter}
		previous := l.current[b]
		l.count(v.Proposal, previous, v.Outcome)
		l.current[b] = v.Outcome
		batch = append(batch, applied{vote: v, previous: previous})
	}
	if 0 != len(batch) {
		l.applied[height] = batch
		l.log.Infof("block: %d  votes counted: %d", height, len(batch))
	}
	return len(batch)
}

// UndoBlock - uncount the votes of a disconnected block
func (l *Ledger) UndoBlock(height uint64) int {
	l.Lock()
	defer l.Unlock()

	delete(l.pending, height)
	batch := l.applied[height]
	delete(l.applied, height)

	for i := len(batch) - 1; i >= 0; i -= 1 {
		a := batch[i]
		b := ballot{proposal: a.vote.Proposal, voter: a.vote.Voter}
		l.count(a.vote.Proposal, a.vote.Outcome, a.previous)
		if a.previous.IsValid() {
			l.current[b] = a.previous
		} else {
			delete(l.current, b)
		}
	}
	if 0 != len(batch) {
		l.log.Infof("block: %d  votes uncounted: %d", height, len(batch))
	}
	return len(batch)
}

// Tally - current count for a proposal
func (l *Ledger) Tally(proposal merkle.Digest) Tally {
	l.Lock()
	defer l.Unlock()

	if t, ok := l.tallies[proposal]; ok {
		return *t
	}
	return Tally{}
}

// move one vote from one outcome to another; invalid means none
func (l *Ledger) count(proposal merkle.Digest, from Outcome, to Outcome) {
	t, ok := l.tallies[proposal]
	if !ok {
		t = &Tally{}
		l.tallies[proposal] = t
	}
	t.add(from, -1)
	t.add(to, 1)
	if (Tally{}) == *t {
		delete(l.tallies, proposal)
	}
}

func (t *Tally) add(o Outcome, delta int) {
	var n *uint64
	switch o {
	case Yes:
		n = &t.Yes
	case No:
		n = &t.No
	case Abstain:
		n = &t.Abstain
	default:
		return
	}
	if delta < 0 {
		*n -= 1
	} else {
		*n += 1
	}
}
