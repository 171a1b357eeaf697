// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	NfToken = "nftoken"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case NfToken, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTestnet - true if key ids are shown in their test network form
func IsTestnet(name string) bool {
	return NfToken != name
}
