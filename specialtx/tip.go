// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package specialtx

import (
	"github.com/bitmark-inc/nftokend/blockrecord"
)

// TipSync - keeps query defaults in step with the active chain
type TipSync struct {
	target TipUpdater
}

// NewTipSync - forward tip changes to target
func NewTipSync(target TipUpdater) *TipSync {
	return &TipSync{
		target: target,
	}
}

// OnTipChanged - called once per connected or disconnected block
func (s *TipSync) OnTipChanged(block *blockrecord.Index) {
	s.target.UpdateTip(block)
}
