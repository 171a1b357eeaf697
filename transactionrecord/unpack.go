// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"math"

	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/util"
)

// Unpack - turn a byte slice into a transaction
//
// returns the transaction and the number of bytes consumed, so
// that a block body can be read as consecutive records
func (record Packed) Unpack() (tx *Transaction, n int, e error) {
	defer func() {
		if r := recover(); nil != r {
			tx = nil
			n = 0
			e = fault.ErrTruncatedRecord
		}
	}()

	u := util.NewUnpacker(record)

	version := u.Uint64()
	txType := u.Uint64()
	if nil == u.Error() && (version > math.MaxUint16 || txType >= uint64(InvalidTx)) {
		return nil, 0, fault.ErrInvalidTxType
	}

	t := &Transaction{
		Version: uint16(version),
		Type:    TxType(txType),
	}

	inputCount := u.Uint64()
	if inputCount > maxInputs {
		return nil, 0, fault.ErrInvalidCount
	}
	for i := uint64(0); i < inputCount && nil == u.Error(); i += 1 {
		in := Input{}
		merkle.DigestFromBytes(&in.PreviousTx, u.Fixed(merkle.DigestLength))
		in.Index = uint32(u.Uint64())
		t.Inputs = append(t.Inputs, in)
	}

	outputCount := u.Uint64()
	if outputCount > maxOutputs {
		return nil, 0, fault.ErrInvalidCount
	}
	for i := uint64(0); i < outputCount && nil == u.Error(); i += 1 {
		out := Output{
			Value:  u.Uint64(),
			Script: u.Bytes(maxScriptLength),
		}
		t.Outputs = append(t.Outputs, out)
	}

	t.LockTime = uint32(u.Uint64())

	if t.IsSpecial() {
		t.Payload = u.Bytes(MaxPayloadLength)
	}

	if nil != u.Error() {
		return nil, 0, u.Error()
	}
	return t, u.Offset(), nil
}
