// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"fmt"

	"github.com/bitmark-inc/nftokend/merkle"
)

// Index - position of a block on the active chain
//
// the reference point for confirming heights and registry queries
type Index struct {
	Height uint64        `json:"height"`
	Hash   merkle.Digest `json:"hash"`
	Time   uint64        `json:"time"`
}

// IndexOf - index for a connected block header
func IndexOf(header *Header) *Index {
	return &Index{
		Height: header.Number,
		Hash:   header.Pack().Digest(),
		Time:   header.Timestamp,
	}
}

// String - for logging
func (i *Index) String() string {
	if nil == i {
		return "<none>"
	}
	return fmt.Sprintf("%d:%s", i.Height, i.Hash)
}
