// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/nftoken"
)

// Filter - restrict a range query; zero fields match everything
type Filter struct {
	ProtocolID uint64
	OwnerKeyID account.KeyID
}

func (f Filter) matchProtocol(protocolID uint64) bool {
	return nftoken.UnknownProtocol == f.ProtocolID || f.ProtocolID == protocolID
}

func (f Filter) matchOwner(owner account.KeyID) bool {
	return f.OwnerKeyID.IsNull() || f.OwnerKeyID == owner
}

// RangeByHeight - newest first entries confirmed at or below fromHeight
//
// skip matching entries are passed over before up to count are returned
func (r *Registry) RangeByHeight(filter Filter, fromHeight uint64, count int, skip int) ([]nftoken.Index, error) {
	if count <= 0 || skip < 0 {
		return nil, fault.ErrInvalidCount
	}

	r.RLock()
	defer r.RUnlock()

	cursor := r.pools.heights.NewReverseCursor()
	if fromHeight < math.MaxUint64 {
		limit := make([]byte, 8)
		binary.BigEndian.PutUint64(limit, fromHeight+1)
		cursor.Below(limit)
	}

	results := make([]nftoken.Index, 0, count)
	err := cursor.Map(func(key []byte, value []byte) (bool, error) {
		if heightKeyLength != len(key) {
			return false, fault.ErrInvalidKeyLength
		}
		protocolID := binary.BigEndian.Uint64(key[8:16])
		if !filter.matchProtocol(protocolID) {
			return true, nil
		}

		var tokenID merkle.Digest
		copy(tokenID[:], key[16:])
		i := r.pools.getByKey(protocolID, tokenID)
		if i.IsNull() {
			fault.Panicf("registry: height index: %x  has no token record", key)
		}
		if !filter.matchOwner(i.Token.OwnerKeyID) {
			return true, nil
		}

		if skip > 0 {
			skip -= 1
			return true, nil
		}
		results = append(results, i)
		return len(results) < count, nil
	})
	if nil != err {
		return nil, err
	}
	return results, nil
}
