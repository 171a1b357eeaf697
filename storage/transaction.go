// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/nftokend/fault"
)

// Transaction - staged writes committed atomically
type Transaction struct {
	database *Database
	batch    *leveldb.Batch
	cache    *dbCache
	active   bool
}

// Begin - start a staged transaction
func (d *Database) Begin() *Transaction {
	return &Transaction{
		database: d,
		batch:    new(leveldb.Batch),
		cache:    newCache(),
		active:   true,
	}
}

// Get - read through the overlay to the database
func (t *Transaction) Get(key []byte) []byte {
	value, state := t.cache.Get(string(key))
	switch state {
	case cachePut:
		return value
	case cacheDeleted:
		return nil
	}
	return newDirect(t.database).Get(key)
}

// Has - check the overlay then the database
func (t *Transaction) Has(key []byte) bool {
	_, state := t.cache.Get(string(key))
	switch state {
	case cachePut:
		return true
	case cacheDeleted:
		return false
	}
	return newDirect(t.database).Has(key)
}

// Put - stage a write
func (t *Transaction) Put(key []byte, value []byte) {
	t.mustBeActive()
	v := make([]byte, len(value))
	copy(v, value)
	t.batch.Put(key, v)
	t.cache.Set(dbPut, string(key), v)
}

// Delete - stage a removal
func (t *Transaction) Delete(key []byte) {
	t.mustBeActive()
	t.batch.Delete(key)
	t.cache.Set(dbDelete, string(key), nil)
}

// Pending - number of distinct keys written
func (t *Transaction) Pending() int {
	return t.cache.Count()
}

// Commit - write all staged changes in one batch
func (t *Transaction) Commit() error {
	t.mustBeActive()
	t.active = false
	defer t.reset()

	t.database.RLock()
	defer t.database.RUnlock()
	if nil == t.database.db {
		return fault.ErrNotInitialised
	}
	return t.database.db.Write(t.batch, nil)
}

// Abort - discard all staged changes
func (t *Transaction) Abort() {
	t.active = false
	t.reset()
}

// Active - true until commit or abort
func (t *Transaction) Active() bool {
	return t.active
}

func (t *Transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
}

func (t *Transaction) mustBeActive() {
	if !t.active {
		fault.Panicf("storage transaction is not active")
	}
}
