// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftoken

import (
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/util"
)

// Index - a registered token and where it was confirmed
//
// the zero value is the not found result
type Index struct {
	Token     NfToken
	RegTxHash merkle.Digest
	Block     blockrecord.Index
}

// NewIndex - index entry for a token confirmed in a block
func NewIndex(token *NfToken, txHash merkle.Digest, block *blockrecord.Index) Index {
	metadata := make([]byte, len(token.Metadata))
	copy(metadata, token.Metadata)

	t := *token
	t.Metadata = metadata
	return Index{
		Token:     t,
		RegTxHash: txHash,
		Block:     *block,
	}
}

// IsNull - true for the not found value
func (i Index) IsNull() bool {
	return i.RegTxHash.IsZero()
}

// Pack - storage form
func (i Index) Pack() []byte {
	buffer := make([]byte, 0, 192+len(i.Token.Metadata))
	buffer = append(buffer, i.RegTxHash[:]...)
	buffer = append(buffer, i.Block.Hash[:]...)
	buffer = util.AppendUint64(buffer, i.Block.Height)
	buffer = util.AppendUint64(buffer, i.Block.Time)
	return i.Token.pack(buffer)
}

// UnpackIndex - decode the storage form
func UnpackIndex(buffer []byte) (Index, error) {
	u := util.NewUnpacker(buffer)

	i := Index{}
	merkle.DigestFromBytes(&i.RegTxHash, u.Fixed(merkle.DigestLength))
	merkle.DigestFromBytes(&i.Block.Hash, u.Fixed(merkle.DigestLength))
	i.Block.Height = u.Uint64()
	i.Block.Time = u.Uint64()
	i.Token.unpack(u)

	if err := u.Done(); nil != err {
		return Index{}, err
	}
	return i, nil
}
