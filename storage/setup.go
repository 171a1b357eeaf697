// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/nftokend/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// CurrentVersion - version stamped on a new database
const CurrentVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open database and its pools
type Database struct {
	sync.RWMutex
	log *logger.L
	db  *leveldb.DB
}

// Open - open up the database
//
// an empty database is stamped with the current version
// a database from a newer program is rejected
func Open(name string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, name, readOnly)
}

// OpenMemory - an empty database that is never written to disk
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, "memory", ReadWrite)
}

func setup(db *leveldb.DB, name string, readOnly bool) (*Database, error) {
	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	if version > CurrentVersion {
		log.Criticalf("database: %s  version: %d > current version: %d", name, version, CurrentVersion)
		db.Close()
		return nil, fault.ErrDatabaseIsNewer
	}

	if 0 == version && !readOnly {
		err = putVersion(db, CurrentVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	log.Infof("opened database: %s  version: %d", name, version)

	return &Database{
		log: log,
		db:  db,
	}, nil
}

// Close - close the database
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()

	if nil != d.db {
		d.db.Close()
		d.db = nil
		d.log.Info("closed")
		d.log.Flush()
	}
}

// Version - the stored database version
func (d *Database) Version() (int, error) {
	d.RLock()
	defer d.RUnlock()
	return getVersion(d.db)
}

// Pool - the table for a prefix byte
func (d *Database) Pool(prefix byte) *PoolHandle {
	if 0 == prefix {
		fault.Panicf("pool: prefix 0x00 is reserved")
	}
	limit := []byte(nil)
	if prefix < 255 {
		limit = []byte{prefix + 1}
	}
	return &PoolHandle{
		prefix:   prefix,
		limit:    limit,
		database: d,
		access:   newDirect(d),
	}
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}
	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))
	return db.Put(versionKey, currentVersion, nil)
}
