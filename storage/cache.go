// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

type dbOperation int

const (
	dbPut = iota
	dbDelete
)

// lookup result from the overlay
type cacheState int

const (
	cacheMiss = iota
	cachePut
	cacheDeleted
)

// pending writes of one transaction
//
// entries never expire: they live until commit or abort
type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - a deleted key is reported as such so the caller must not
// fall back to the database
func (c *dbCache) Get(key string) ([]byte, cacheState) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, cacheMiss
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, cacheDeleted
	}
	return data.value, cachePut
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *dbCache) Count() int {
	return c.cache.ItemCount()
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
