// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the store of registered non-fungible tokens
//
// Pools:
//
//   T ++ protocol ++ tokenId           - registered token
//                                        data: packed nftoken.Index
//   X ++ txId                          - registration transaction
//                                        data: protocol ++ tokenId
//   H ++ height ++ protocol ++ tokenId - confirmation height index
//                                        data: empty
//   S ++ protocol                      - live token count (protocol 0 = all)
//                                        data: count
//
// protocol and height are big endian uint64, tokenId and txId are
// 32 byte digests.
//
// Readers share the registry; a writer holds it exclusively from
// Begin until Commit or Abort so no reader sees a partly applied block.
package registry
