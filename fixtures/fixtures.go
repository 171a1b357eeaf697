// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/nftoken"
	"github.com/bitmark-inc/nftokend/registry"
	"github.com/bitmark-inc/nftokend/storage"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// keys shared by the tests
var (
	OwnerKey *account.PrivateKey
	OtherKey *account.PrivateKey
)

func init() {
	OwnerKey = mustKey("0f1c5e4d6a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5")
	OtherKey = mustKey("7e6d5c4b3a29181706f5e4d3c2b1a09f8e7d6c5b4a39281706f5e4d3c2b1a09f")
}

func mustKey(s string) *account.PrivateKey {
	k, err := account.PrivateKeyFromHex(s)
	if nil != err {
		panic(err)
	}
	return k
}

// SetupTestLogger - log to a scratch directory, critical only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// NewDatabase - empty in-memory database
func NewDatabase() *storage.Database {
	db, err := storage.OpenMemory()
	if nil != err {
		panic(err)
	}
	return db
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// TokenID - deterministic big endian hex token id
func TokenID(n uint64) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return merkle.NewDigest(b).String()
}

// NewRegistration - signed registration of token n owned by key
func NewRegistration(symbol string, n uint64, key *account.PrivateKey) (*transactionrecord.Transaction, *nftoken.RegTx) {
	reg, err := nftoken.NewRegTxBuilder().
		SetTokenProtocol(symbol).
		SetTokenID(TokenID(n)).
		SetTokenOwnerKey(key).
		SetMetadata([]byte("metadata")).
		Build()
	if nil != err {
		panic(err)
	}
	reg.Sign(key)

	tx := &transactionrecord.Transaction{
		Version: transactionrecord.SpecialVersion,
		Type:    transactionrecord.NfTokenRegisterTx,
		Outputs: []transactionrecord.Output{
			{Value: 0, Script: []byte{0x6a}},
		},
	}
	transactionrecord.SetPayload(tx, reg)
	return tx, reg
}

// NewProtocolRegistration - signed registration of a protocol owned by key
func NewProtocolRegistration(symbol string, key *account.PrivateKey) (*transactionrecord.Transaction, *nftoken.ProtoRegTx) {
	reg, err := nftoken.NewProtoRegTxBuilder().
		SetTokenProtocol(symbol).
		SetTokenProtocolName(symbol + " protocol").
		SetTokenProtocolOwnerKey(key).
		Build()
	if nil != err {
		panic(err)
	}
	reg.Sign(key)

	tx := &transactionrecord.Transaction{
		Version: transactionrecord.SpecialVersion,
		Type:    transactionrecord.NftProtocolRegisterTx,
		Outputs: []transactionrecord.Output{
			{Value: 0, Script: []byte{0x6a}},
		},
	}
	transactionrecord.SetPayload(tx, reg)
	return tx, reg
}

// RegisterProtocols - protocols owned by OwnerKey confirmed at height 0
//
// protocols already present are left alone
func RegisterProtocols(r *registry.Registry, symbols ...string) {
	for _, symbol := range symbols {
		tx, reg := NewProtocolRegistration(symbol, OwnerKey)
		if !r.GetProtocol(reg.Protocol.ProtocolID).IsNull() {
			continue
		}
		block := &blockrecord.Index{
			Height: 0,
			Hash:   merkle.NewDigest([]byte(symbol)),
			Time:   1600000000,
		}
		if err := r.AddProtocol(&reg.Protocol, tx.Hash(), block); nil != err {
			panic(err)
		}
	}
}
