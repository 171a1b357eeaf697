// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/bitmark-inc/nftokend/merkle"
)

// TxType - kind tag for transactions
type TxType uint16

// enumerate the possible transaction kinds
// this is encoded as a Varint64 after the version in "Packed"
const (
	NormalTx              = TxType(iota) // plain value transfer
	GovernanceVoteTx      = TxType(iota) // governance vote
	NfTokenRegisterTx     = TxType(iota) // non-fungible token registration
	NftProtocolRegisterTx = TxType(iota) // non-fungible token protocol registration

	// this item must be last
	InvalidTx = TxType(iota)
)

// SpecialVersion - lowest transaction version that can carry a payload
const SpecialVersion = 3

// limits for unpacking
const (
	maxInputs        = 10000
	maxOutputs       = 10000
	maxScriptLength  = 10000
	MaxPayloadLength = 100000
)

// Packed - packed records are just a byte slice
type Packed []byte

// Input - reference to a previous output
type Input struct {
	PreviousTx merkle.Digest `json:"previousTx"`
	Index      uint32        `json:"index"`
}

// Output - value assigned to a script
type Output struct {
	Value  uint64 `json:"value"`
	Script []byte `json:"script"`
}

// Transaction - the unpacked transaction structure
type Transaction struct {
	Version  uint16   `json:"version"`
	Type     TxType   `json:"type"`
	Inputs   []Input  `json:"inputs"`
	Outputs  []Output `json:"outputs"`
	LockTime uint32   `json:"lockTime"`
	Payload  []byte   `json:"payload"`
}

// IsSpecial - true if the transaction must be routed to a handler
func (tx *Transaction) IsSpecial() bool {
	return tx.Version >= SpecialVersion && NormalTx != tx.Type
}

// Hash - canonical transaction hash
func (tx *Transaction) Hash() merkle.Digest {
	return tx.Pack().MakeLink()
}

// MakeLink - create a link (txId) from a packed record
func (record Packed) MakeLink() merkle.Digest {
	return merkle.NewDigest(record)
}

// String - hex of the packed record
func (record Packed) String() string {
	return hex.EncodeToString(record)
}

// String - readable name of a transaction kind
func (t TxType) String() string {
	switch t {
	case NormalTx:
		return "normal"
	case GovernanceVoteTx:
		return "governance-vote"
	case NfTokenRegisterTx:
		return "nftoken-register"
	case NftProtocolRegisterTx:
		return "nftproto-register"
	default:
		return "invalid"
	}
}
