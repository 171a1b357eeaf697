// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
)

func TestScanFmt(t *testing.T) {
	// big endian
	stringDigest := "00000000440b921e1b77c6c0487ae5616de67f788f44ae2a5af6e2194d16b6f8"

	var d merkle.Digest
	n, err := fmt.Sscan(stringDigest, &d)
	assert.Nil(t, err, "hex to digest error")
	assert.Equal(t, 1, n, "scan count")

	// bytes as little endian format
	expected := merkle.Digest{
		0xf8, 0xb6, 0x16, 0x4d,
		0x19, 0xe2, 0xf6, 0x5a,
		0x2a, 0xae, 0x44, 0x8f,
		0x78, 0x7f, 0xe6, 0x6d,
		0x61, 0xe5, 0x7a, 0x48,
		0xc0, 0xc6, 0x77, 0x1b,
		0x1e, 0x92, 0x0b, 0x44,
		0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, expected, d, "little endian bytes")
	assert.Equal(t, stringDigest, fmt.Sprintf("%s", d), "%s form")
	assert.Equal(t, "<SHA3-256:"+stringDigest+">", fmt.Sprintf("%#v", d), "%#v form")
}

func TestDigest(t *testing.T) {
	d := merkle.NewDigest([]byte("hello world"))

	// printf '%s' 'hello world' | sha3sum -a 256 | awk '{for(i=length($1);i>0;i-=2)x=x substr($1,i-1,2);print x}'
	expected, err := merkle.DigestFromString("38394ef2fb3b1ca394fd72d9a1fb71caf322769ec8aa9909047343567ecc4b64")
	assert.Nil(t, err, "parse error")
	assert.Equal(t, expected, d, "digest")
	assert.False(t, d.IsZero(), "zero")
	assert.True(t, merkle.Digest{}.IsZero(), "not zero")
}

func TestJSON(t *testing.T) {
	d := merkle.NewDigest([]byte("token"))

	buffer, err := json.Marshal(d)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `"`+d.String()+`"`, string(buffer), "json text")

	var back merkle.Digest
	err = json.Unmarshal(buffer, &back)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, d, back, "round trip")
}

func TestBadText(t *testing.T) {
	_, err := merkle.DigestFromString("abcd")
	assert.Equal(t, fault.ErrNotLink, err, "short")

	_, err = merkle.DigestFromString("zz394ef2fb3b1ca394fd72d9a1fb71caf322769ec8aa9909047343567ecc4b64")
	assert.Equal(t, fault.ErrNotLink, err, "not hex")
}

func TestRoot(t *testing.T) {
	a := merkle.NewDigest([]byte("a"))
	b := merkle.NewDigest([]byte("b"))
	c := merkle.NewDigest([]byte("c"))

	assert.Equal(t, merkle.Digest{}, merkle.Root(nil), "empty")
	assert.Equal(t, a, merkle.Root([]merkle.Digest{a}), "single")

	ab := merkle.NewDigest(append(a[:], b[:]...))
	cc := merkle.NewDigest(append(c[:], c[:]...))
	abcc := merkle.NewDigest(append(ab[:], cc[:]...))
	assert.Equal(t, ab, merkle.Root([]merkle.Digest{a, b}), "pair")
	assert.Equal(t, abcc, merkle.Root([]merkle.Digest{a, b, c}), "odd")
}
