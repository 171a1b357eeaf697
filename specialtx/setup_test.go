// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package specialtx_test

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/fixtures"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/nftoken"
	"github.com/bitmark-inc/nftokend/registry"
	"github.com/bitmark-inc/nftokend/specialtx"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newDispatcher() (*specialtx.Dispatcher, *registry.Registry) {
	r := registry.New(fixtures.NewDatabase())
	d := specialtx.New(r)
	err := d.Register(transactionrecord.NfTokenRegisterTx, specialtx.NewNfTokenHandler(), specialtx.Immediate)
	if nil != err {
		panic(err)
	}
	err = d.Register(transactionrecord.NftProtocolRegisterTx, specialtx.NewNftProtocolHandler(), specialtx.Immediate)
	if nil != err {
		panic(err)
	}
	fixtures.RegisterProtocols(r, "doc", "art")
	return d, r
}

func tokenID(n uint64) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return merkle.NewDigest(b).String()
}

// signed registration of token n owned by key
func newRegistration(t *testing.T, symbol string, n uint64, key *account.PrivateKey) (*transactionrecord.Transaction, *nftoken.RegTx) {
	reg, err := nftoken.NewRegTxBuilder().
		SetTokenProtocol(symbol).
		SetTokenID(tokenID(n)).
		SetTokenOwnerKey(key).
		SetMetadata([]byte("metadata")).
		Build()
	if nil != err {
		t.Fatalf("build registration error: %s", err)
	}
	reg.Sign(key)
	return wrap(transactionrecord.NfTokenRegisterTx, reg), reg
}

func wrap(txType transactionrecord.TxType, p transactionrecord.Payload) *transactionrecord.Transaction {
	tx := &transactionrecord.Transaction{
		Version: transactionrecord.SpecialVersion,
		Type:    txType,
		Outputs: []transactionrecord.Output{
			{Value: 0, Script: []byte{0x6a}},
		},
	}
	transactionrecord.SetPayload(tx, p)
	return tx
}

func normalTx(n byte) *transactionrecord.Transaction {
	return &transactionrecord.Transaction{
		Version: 1,
		Type:    transactionrecord.NormalTx,
		Inputs: []transactionrecord.Input{
			{PreviousTx: merkle.NewDigest([]byte{n}), Index: 0},
		},
		Outputs: []transactionrecord.Output{
			{Value: 5000, Script: []byte{0x51}},
		},
	}
}

func blockAt(height uint64) *blockrecord.Index {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, height)
	return &blockrecord.Index{
		Height: height,
		Hash:   merkle.NewDigest(b),
		Time:   1600000000 + height*60,
	}
}

func reason(err error) string {
	r, ok := fault.AsReject(err)
	if !ok {
		return ""
	}
	return r.Reason
}
