// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a single prefix byte chosen by the owner
// of the pool.
//
// Writes are either immediate (through the pool's own handle) or
// staged in a Transaction: a leveldb.Batch plus an in-memory overlay
// so that reads inside the transaction see its own puts and deletes.
// Commit writes the batch atomically, Abort discards it.
//
// Iteration (cursors) always reads the committed database.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++           = concatenation of byte data
// 3. key 0x00 ++ "VERSION" holds the database version (big endian uint32)
package storage
