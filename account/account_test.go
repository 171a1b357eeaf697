// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
)

func TestKeyIDText(t *testing.T) {
	p, err := account.NewPrivateKey()
	assert.Nil(t, err, "generate error")

	id := p.KeyID()
	assert.False(t, id.IsNull(), "null key id")

	for _, testnet := range []bool{false, true} {
		s := id.Encode(testnet)
		back, isTest, err := account.KeyIDFromString(s)
		assert.Nil(t, err, "decode error")
		assert.Equal(t, id, back, "key id")
		assert.Equal(t, testnet, isTest, "network")
	}
}

func TestKeyIDChecksum(t *testing.T) {
	var id account.KeyID
	id[0] = 0x42

	s := []byte(id.String())
	last := len(s) - 1
	if '2' == s[last] {
		s[last] = '3'
	} else {
		s[last] = '2'
	}
	_, _, err := account.KeyIDFromString(string(s))
	assert.NotNil(t, err, "corrupted text accepted")

	_, _, err = account.KeyIDFromString("0OIl")
	assert.Equal(t, fault.ErrInvalidKeyID, err, "not base58")
}

func TestKeyIDJSON(t *testing.T) {
	var id account.KeyID
	id[19] = 0x07

	buffer, err := json.Marshal(id)
	assert.Nil(t, err, "marshal error")

	var back account.KeyID
	err = json.Unmarshal(buffer, &back)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, id, back, "round trip")
}

func TestSignAndVerify(t *testing.T) {
	p, err := account.NewPrivateKey()
	assert.Nil(t, err, "generate error")

	hash := merkle.NewDigest([]byte("message"))
	sig := p.Sign(hash)
	assert.Equal(t, account.SignatureLength, len(sig), "signature length")

	assert.Nil(t, account.VerifyHash(hash, p.KeyID(), sig), "valid signature")

	other := merkle.NewDigest([]byte("other message"))
	assert.Equal(t, fault.ErrBadSignature, account.VerifyHash(other, p.KeyID(), sig), "wrong hash")

	q, err := account.NewPrivateKey()
	assert.Nil(t, err, "generate error")
	assert.Equal(t, fault.ErrBadSignature, account.VerifyHash(hash, q.KeyID(), sig), "wrong key")

	assert.Equal(t, fault.ErrInvalidSignatureLength, account.VerifyHash(hash, p.KeyID(), sig[:64]), "short")
}

func TestPrivateKeyReload(t *testing.T) {
	p, err := account.NewPrivateKey()
	assert.Nil(t, err, "generate error")

	q, err := account.PrivateKeyFromBytes(p.Bytes())
	assert.Nil(t, err, "reload error")
	assert.Equal(t, p.KeyID(), q.KeyID(), "key id")

	_, err = account.PrivateKeyFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short key")

	_, err = account.PrivateKeyFromHex("")
	assert.Equal(t, fault.ErrMissingPrivateKey, err, "empty")
}
