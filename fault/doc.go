// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Consensus rejections are wrapped in a RejectError which keeps the
// class (one of the instances below) together with the peer scoring
// details that the block/transaction validator needs.
package fault
