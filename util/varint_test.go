// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftokend/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		assert.Equal(t, item.encoded, util.ToVarint64(item.value), "item: %d", i)
	}
}

func TestFromVarint64WithSuffix(t *testing.T) {
	suffix := []byte{0xff, 0x97, 0x23}
	for i, item := range varint64Tests {
		b := append(append([]byte{}, item.encoded...), suffix...)
		value, count := util.FromVarint64(b)
		assert.Equal(t, item.value, value, "item: %d", i)
		assert.Equal(t, len(item.encoded), count, "item: %d", i)
		assert.Equal(t, suffix, b[count:], "item: %d", i)
	}
}

func TestFromVarint64Truncated(t *testing.T) {
	truncated := [][]byte{
		{},
		{0x80},
		{0xff, 0xff},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}
	for i, item := range truncated {
		value, count := util.FromVarint64(item)
		assert.Equal(t, uint64(0), value, "item: %d", i)
		assert.Equal(t, 0, count, "item: %d", i)
	}
}

func TestClippedVarint64(t *testing.T) {
	value, count := util.ClippedVarint64([]byte{0x80, 0x01}, 1, 200)
	assert.Equal(t, 128, value)
	assert.Equal(t, 2, count)

	value, count = util.ClippedVarint64([]byte{0x80, 0x01}, 1, 100)
	assert.Equal(t, 0, value, "above maximum")
	assert.Equal(t, 0, count, "above maximum")

	_, count = util.ClippedVarint64([]byte{0x00}, 1, 100)
	assert.Equal(t, 0, count, "below minimum")
}
