// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/nftokend/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
	reverse  bool
}

// NewFetchCursor - initialise a cursor over the whole pool, lowest key first
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// NewReverseCursor - initialise a cursor over the whole pool, highest key first
func (p *PoolHandle) NewReverseCursor() *FetchCursor {
	cursor := p.NewFetchCursor()
	cursor.reverse = true
	return cursor
}

// Seek - only visit keys at or after key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Below - only visit keys strictly less than key
func (cursor *FetchCursor) Below(key []byte) *FetchCursor {
	cursor.maxRange.Limit = cursor.pool.prefixKey(key)
	return cursor
}

// Map - run a function on all elements in the range
//
// stops early without error if f returns false
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) (bool, error)) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	d := cursor.pool.database
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return fault.ErrNotInitialised
	}

	iter := d.db.NewIterator(&cursor.maxRange, nil)
	defer iter.Release()

	next := iter.Next
	ok := iter.First
	if cursor.reverse {
		next = iter.Prev
		ok = iter.Last
	}

	var err error
iterating:
	for valid := ok(); valid; valid = next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		var more bool
		more, err = f(dataKey, dataValue)
		if nil != err || !more {
			break iterating
		}
	}
	if nil == err {
		err = iter.Error()
	}
	return err
}

// Fetch - return up to count elements
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	results := make([]Element, 0, count)
	err := cursor.Map(func(key []byte, value []byte) (bool, error) {
		results = append(results, Element{Key: key, Value: value})
		return len(results) < count, nil
	})
	return results, err
}
