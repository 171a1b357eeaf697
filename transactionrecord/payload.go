// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/nftokend/fault"
)

// Payload - kind specific data carried by a special transaction
type Payload interface {
	Pack() []byte
	Unpack(buffer []byte) error
}

// GetPayload - decode the payload of tx into p
func GetPayload(tx *Transaction, p Payload) error {
	if !tx.IsSpecial() || 0 == len(tx.Payload) {
		return fault.ErrBadPayload
	}
	if err := p.Unpack(tx.Payload); nil != err {
		return fault.ErrBadPayload
	}
	return nil
}

// SetPayload - encode p as the payload of tx
func SetPayload(tx *Transaction, p Payload) {
	tx.Payload = p.Pack()
}
