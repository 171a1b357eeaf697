// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/nftokend/util"
)

// Pack - turn a transaction into its canonical byte form
//
// the payload field is only present for special transactions
func (tx *Transaction) Pack() Packed {
	buffer := make([]byte, 0, 128+len(tx.Payload))
	buffer = util.AppendUint64(buffer, uint64(tx.Version))
	buffer = util.AppendUint64(buffer, uint64(tx.Type))

	buffer = util.AppendUint64(buffer, uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		buffer = append(buffer, in.PreviousTx[:]...)
		buffer = util.AppendUint64(buffer, uint64(in.Index))
	}

	buffer = util.AppendUint64(buffer, uint64(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		buffer = util.AppendUint64(buffer, out.Value)
		buffer = util.AppendBytes(buffer, out.Script)
	}

	buffer = util.AppendUint64(buffer, uint64(tx.LockTime))

	if tx.IsSpecial() {
		buffer = util.AppendBytes(buffer, tx.Payload)
	}
	return buffer
}
