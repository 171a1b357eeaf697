// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package specialtx - consensus rules for special transactions
//
// A transaction of version 3 or above with a kind other than normal
// carries a payload that is validated and applied by the handler
// registered for that kind. Blocks are applied inside one registry
// transaction: either every special transaction in the block takes
// effect or none does.
package specialtx
