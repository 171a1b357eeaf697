// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftokend/counter"
	"github.com/bitmark-inc/nftokend/nftoken"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic log of chain position, token count and memory use
func stats(state *chainState, rpcCount *counter.Counter, shutdown <-chan struct{}) {

	log := logger.New("stats")

	ticker := time.NewTicker(statsDelay)
	defer ticker.Stop()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
		}

		log.Infof("tip: %s  tokens: %d  rpc connections: %d",
			state.blocks.Tip(),
			state.registry.TotalSupply(nftoken.UnknownProtocol),
			rpcCount.Uint64(),
		)

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		log.Debugf("allocated: %d M  cumulative: %d M  OS virtual: %d M  GC: %d",
			m.Alloc/mega, m.TotalAlloc/mega, m.Sys/mega, m.NumGC)
	}
}
