// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/binary"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fixtures"
	"github.com/bitmark-inc/nftokend/nftoken"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newState(t *testing.T, dir string) *chainState {
	state, err := openChainState(logger.New(fixtures.LogCategory), filepath.Join(dir, "test.leveldb"))
	if nil != err {
		t.Fatalf("open chain state error: %s", err)
	}
	return state
}

// three blocks with one registration each, the first after its protocol
func blockFile(t *testing.T) []byte {
	buffer := &bytes.Buffer{}
	var previous *blockrecord.Index
	for n := uint64(1); n <= 3; n += 1 {
		tx, _ := fixtures.NewRegistration("doc", n, fixtures.OwnerKey)
		txs := []*transactionrecord.Transaction{tx}
		if 1 == n {
			protoTx, _ := fixtures.NewProtocolRegistration("doc", fixtures.OwnerKey)
			txs = append([]*transactionrecord.Transaction{protoTx}, txs...)
		}
		b := blockrecord.New(previous, 1600000000+n, txs)
		previous = blockrecord.IndexOf(&b.Header)

		packed := b.Pack()
		l := make([]byte, 8)
		binary.BigEndian.PutUint64(l, uint64(len(packed)))
		assert.Nil(t, writeRecord(buffer, l), "write length")
		assert.Nil(t, writeRecord(buffer, packed), "write block")
	}
	return buffer.Bytes()
}

func TestConnectBinaryBlocks(t *testing.T) {
	dir, err := ioutil.TempDir("", "nftokend")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	state := newState(t, dir)
	defer state.close()

	file := blockFile(t)

	n, err := connectBinaryBlocks(state.blocks, bytes.NewReader(file))
	assert.Nil(t, err, "connect")
	assert.Equal(t, 3, n, "wrong connected count")
	assert.Equal(t, uint64(2), state.blocks.Tip().Height, "wrong tip")
	assert.Equal(t, uint64(3), state.registry.TotalSupply(nftoken.UnknownProtocol), "wrong supply")
	assert.Equal(t, state.blocks.Tip(), state.registry.Tip(), "registry tip not updated")
	doc, _ := nftoken.ParseProtocolName("doc")
	assert.False(t, state.registry.GetProtocol(doc).IsNull(), "protocol not registered")

	// already connected blocks are skipped
	n, err = connectBinaryBlocks(state.blocks, bytes.NewReader(file))
	assert.Nil(t, err, "reconnect")
	assert.Equal(t, 0, n, "blocks connected twice")

	n, err = connectBinaryBlocks(state.blocks, bytes.NewReader(file[:len(file)-1]))
	assert.NotNil(t, err, "truncated file")
	assert.Equal(t, 0, n, "truncated file connected blocks")
}

func TestSaveAndRestoreBinaryBlocks(t *testing.T) {
	dir, err := ioutil.TempDir("", "nftokend")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	source := newState(t, filepath.Join(dir, "source"))
	defer source.close()

	fileName := filepath.Join(dir, "blocks.dat")
	assert.NotNil(t, saveBinaryBlocks(source.blocks, fileName), "save empty chain")

	_, err = connectBinaryBlocks(source.blocks, bytes.NewReader(blockFile(t)))
	assert.Nil(t, err, "connect")
	assert.Nil(t, saveBinaryBlocks(source.blocks, fileName), "save")

	target := newState(t, filepath.Join(dir, "target"))
	defer target.close()

	n, err := restoreBinaryBlocks(target.blocks, fileName)
	assert.Nil(t, err, "restore")
	assert.Equal(t, 3, n, "wrong restored count")
	assert.Equal(t, source.blocks.Tip(), target.blocks.Tip(), "tips differ")
}

func TestDumpBlock(t *testing.T) {
	dir, err := ioutil.TempDir("", "nftokend")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	state := newState(t, dir)
	defer state.close()

	_, err = connectBinaryBlocks(state.blocks, bytes.NewReader(blockFile(t)))
	assert.Nil(t, err, "connect")

	result, err := dumpBlock(state.blocks, 1)
	assert.Nil(t, err, "dump")
	assert.Equal(t, uint64(1), result.Header.Number, "wrong block")
	assert.Equal(t, 1, len(result.Transactions), "wrong transaction count")

	reg, ok := result.Transactions[0].Data.(*nftoken.RegTx)
	assert.True(t, ok, "payload not decoded")
	assert.Equal(t, fixtures.TokenID(2), reg.Token.TokenID.String(), "wrong token")

	_, err = dumpBlock(state.blocks, 3)
	assert.NotNil(t, err, "block above tip")
}
