// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftoken

import (
	"strings"

	"github.com/bitmark-inc/nftokend/fault"
)

// symbol alphabet, each symbol is 5 bits
const protocolAlphabet = ".abcdefghijklmnopqrstuvwxyz12345"

// limits on the symbol count
const (
	MinimumProtocolLength = 3
	MaximumProtocolLength = 12
	bitsPerSymbol         = 5
)

// UnknownProtocol - matches all protocols in filters
const UnknownProtocol = uint64(0)

// ProtocolName - a protocol id shown as its symbol string
type ProtocolName uint64

// ParseProtocolName - convert a symbol string to a protocol id
//
// symbols are packed most significant first into the low 60 bits
// of the id; the separator '.' may not start or end a name
func ParseProtocolName(s string) (uint64, error) {
	if len(s) < MinimumProtocolLength || len(s) > MaximumProtocolLength {
		return UnknownProtocol, fault.ErrInvalidProtocolName
	}
	if '.' == s[0] || '.' == s[len(s)-1] {
		return UnknownProtocol, fault.ErrInvalidProtocolName
	}

	id := uint64(0)
	for i := 0; i < len(s); i += 1 {
		v := strings.IndexByte(protocolAlphabet, s[i])
		if v < 0 {
			return UnknownProtocol, fault.ErrInvalidProtocolName
		}
		shift := uint(bitsPerSymbol * (MaximumProtocolLength - 1 - i))
		id |= uint64(v) << shift
	}
	return id, nil
}

// IsValidProtocol - true if id is the packed form of a valid symbol
//
// UnknownProtocol, ids using the unused top bits and ids whose symbol
// text would not parse back to the same id are all invalid
func IsValidProtocol(id uint64) bool {
	if UnknownProtocol == id {
		return false
	}
	parsed, err := ParseProtocolName(ProtocolName(id).String())
	return nil == err && parsed == id
}

// String - the symbol form, trailing separators dropped
func (p ProtocolName) String() string {
	if UnknownProtocol == uint64(p) {
		return "*"
	}
	b := make([]byte, MaximumProtocolLength)
	for i := 0; i < MaximumProtocolLength; i += 1 {
		shift := uint(bitsPerSymbol * (MaximumProtocolLength - 1 - i))
		b[i] = protocolAlphabet[(uint64(p)>>shift)&0x1f]
	}
	return strings.TrimRight(string(b), ".")
}

// MarshalText - symbol text for JSON
func (p ProtocolName) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText - symbol text from JSON
func (p *ProtocolName) UnmarshalText(s []byte) error {
	id, err := ParseProtocolName(string(s))
	if nil != err {
		return err
	}
	*p = ProtocolName(id)
	return nil
}
