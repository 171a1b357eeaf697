// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/nftokend/fault"
)

// DataAccess - read and write prefixed keys
type DataAccess interface {
	Get([]byte) []byte
	Has([]byte) bool
	Put([]byte, []byte)
	Delete([]byte)
}

// immediate writes to the database
type direct struct {
	database *Database
}

func newDirect(d *Database) DataAccess {
	return &direct{
		database: d,
	}
}

func (a *direct) Get(key []byte) []byte {
	a.database.RLock()
	defer a.database.RUnlock()
	if nil == a.database.db {
		return nil
	}
	value, err := a.database.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	fault.PanicIfError("pool.Get", err)
	return value
}

func (a *direct) Has(key []byte) bool {
	a.database.RLock()
	defer a.database.RUnlock()
	if nil == a.database.db {
		return false
	}
	found, err := a.database.db.Has(key, nil)
	fault.PanicIfError("pool.Has", err)
	return found
}

func (a *direct) Put(key []byte, value []byte) {
	a.database.RLock()
	defer a.database.RUnlock()
	if nil == a.database.db {
		fault.Panicf("pool.Put nil database")
	}
	err := a.database.db.Put(key, value, nil)
	fault.PanicIfError("pool.Put", err)
}

func (a *direct) Delete(key []byte) {
	a.database.RLock()
	defer a.database.RUnlock()
	if nil == a.database.db {
		fault.Panicf("pool.Delete nil database")
	}
	err := a.database.db.Delete(key, nil)
	fault.PanicIfError("pool.Delete", err)
}
