// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/nftokend/fault"
)

// AppendUint64 - append a Varint64 to buffer
func AppendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// AppendBytes - append bytes to a buffer
//
// the field is prefixed by Varint64(length)
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// Unpacker - sequential reader over a packed record
//
// the first failure is sticky: all later reads return zero values
// and Error returns the original cause
type Unpacker struct {
	buffer []byte
	offset int
	err    error
}

// NewUnpacker - start reading a packed record
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{
		buffer: buffer,
	}
}

// Uint64 - read a Varint64
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, n := FromVarint64(u.buffer[u.offset:])
	if 0 == n {
		u.err = fault.ErrTruncatedRecord
		return 0
	}
	u.offset += n
	return value
}

// Bytes - read a Varint64(length) prefixed field of up to maximum bytes
func (u *Unpacker) Bytes(maximum int) []byte {
	if nil != u.err {
		return nil
	}
	length, n := FromVarint64(u.buffer[u.offset:])
	if 0 == n {
		u.err = fault.ErrTruncatedRecord
		return nil
	}
	if length > uint64(maximum) {
		u.err = fault.ErrMetadataTooLong
		return nil
	}
	u.offset += n
	return u.Fixed(int(length))
}

// Fixed - read exactly count bytes
func (u *Unpacker) Fixed(count int) []byte {
	if nil != u.err {
		return nil
	}
	if count < 0 || u.offset+count > len(u.buffer) {
		u.err = fault.ErrTruncatedRecord
		return nil
	}
	data := make([]byte, count)
	copy(data, u.buffer[u.offset:u.offset+count])
	u.offset += count
	return data
}

// Offset - number of bytes consumed so far
func (u *Unpacker) Offset() int {
	return u.offset
}

// Done - check the record was consumed exactly
func (u *Unpacker) Done() error {
	if nil != u.err {
		return u.err
	}
	if u.offset != len(u.buffer) {
		return fault.ErrUnexpectedTrailingData
	}
	return nil
}

// Error - the first failure, if any
func (u *Unpacker) Error() error {
	return u.err
}
