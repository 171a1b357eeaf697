// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftoken_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/fixtures"
	"github.com/bitmark-inc/nftokend/merkle"
	nft "github.com/bitmark-inc/nftokend/nftoken"
	"github.com/bitmark-inc/nftokend/registry"
	"github.com/bitmark-inc/nftokend/rpc/nftoken"
	"github.com/bitmark-inc/nftokend/rpc/ratelimit"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

func TestProtoGet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(t, ctl)

	var reply nftoken.ProtocolRecord
	err := s.proto.Get(&nftoken.ProtoGetArguments{Protocol: "art"}, &reply)
	assert.Nil(t, err, "get")
	assert.Equal(t, "art", reply.ProtocolID.String(), "symbol")
	assert.Equal(t, "art protocol", reply.Name, "name")
	assert.Equal(t, fixtures.OwnerKey.KeyID().Encode(true), reply.OwnerKeyID, "owner")
	assert.Equal(t, nft.SignByCreator, reply.RegSign, "signer")
	assert.Equal(t, uint64(0), reply.Height, "height")

	err = s.proto.Get(&nftoken.ProtoGetArguments{Protocol: "crd"}, &reply)
	assert.Equal(t, fault.ErrProtocolNotFound, err, "unregistered")

	err = s.proto.Get(&nftoken.ProtoGetArguments{Protocol: ".x"}, &reply)
	assert.Equal(t, fault.ErrInvalidProtocolName, err, "bad symbol")
}

func TestProtoList(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(t, ctl)

	var reply nftoken.ProtoListReply
	err := s.proto.List(&nftoken.ProtoListArguments{}, &reply)
	assert.Nil(t, err, "list")
	symbols := make([]string, 0, len(reply.Protocols))
	for _, p := range reply.Protocols {
		symbols = append(symbols, p.ProtocolID.String())
	}
	assert.Equal(t, []string{"art", "doc", "pic"}, symbols, "symbol order")
}

func TestProtoRegister(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(t, ctl)
	owner := fixtures.OwnerKey.KeyID()
	txID := merkle.Digest{0x43}
	embedded := true

	s.wallet.EXPECT().PrivateKey(owner).Return(fixtures.OwnerKey, nil).Times(1)
	s.funder.EXPECT().Fund(gomock.Any()).DoAndReturn(func(tx *transactionrecord.Transaction) error {
		assert.NotEqual(t, 0, len(tx.Payload), "payload missing when funding")
		tx.Inputs = append(tx.Inputs, transactionrecord.Input{PreviousTx: merkle.Digest{8}, Index: 1})
		return nil
	}).Times(1)
	s.sender.EXPECT().SignAndSend(gomock.Any()).DoAndReturn(func(tx *transactionrecord.Transaction) (merkle.Digest, error) {
		assert.Equal(t, transactionrecord.NftProtocolRegisterTx, tx.Type, "wrong type")
		assert.Equal(t, 1, len(tx.Inputs), "funding lost")

		reg := nft.ProtoRegTx{}
		err := transactionrecord.GetPayload(tx, &reg)
		assert.Nil(t, err, "payload")
		assert.Equal(t, "crd", nft.ProtocolName(reg.Protocol.ProtocolID).String(), "symbol")
		assert.Equal(t, "card collection", reg.Protocol.Name, "name")
		assert.Equal(t, owner, reg.Protocol.OwnerKeyID, "owner")
		assert.Equal(t, nft.SelfSign, reg.Protocol.RegSign, "signer")
		assert.Equal(t, nft.DefaultMetadataMimeType, reg.Protocol.MetadataMimeType, "default mime type")
		assert.True(t, reg.Protocol.Transferable, "default transferable")
		assert.True(t, reg.Protocol.MetadataEmbedded, "embedded")
		assert.Nil(t, account.VerifyHash(reg.SignatureHash(), owner, reg.Signature), "signature")
		return txID, nil
	}).Times(1)

	arguments := nftoken.ProtoRegisterArguments{
		Protocol:         "crd",
		Name:             "card collection",
		Owner:            owner.Encode(true),
		RegSign:          "self-sign",
		MetadataEmbedded: &embedded,
	}
	var reply nftoken.RegisterReply
	err := s.proto.Register(&arguments, &reply)
	assert.Nil(t, err, "register")
	assert.Equal(t, txID, reply.TxID, "wrong tx id")

	assert.True(t, s.registry.GetProtocol(mustProtocol(t, "crd")).IsNull(), "registry changed")
}

func TestProtoRegisterWhenInvalid(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(t, ctl)
	owner := fixtures.OwnerKey.KeyID()

	s.wallet.EXPECT().PrivateKey(owner).Return(fixtures.OwnerKey, nil).AnyTimes()
	s.funder.EXPECT().Fund(gomock.Any()).Times(0)
	s.sender.EXPECT().SignAndSend(gomock.Any()).Times(0)

	items := []struct {
		name      string
		arguments nftoken.ProtoRegisterArguments
		err       error
	}{
		{"already registered", nftoken.ProtoRegisterArguments{Protocol: "doc", Name: "documents", Owner: owner.Encode(true)}, fault.ErrDuplicateProtocol},
		{"bad symbol", nftoken.ProtoRegisterArguments{Protocol: "p", Name: "documents", Owner: owner.Encode(true)}, fault.ErrInvalidProtocolName},
		{"short name", nftoken.ProtoRegisterArguments{Protocol: "crd", Name: "c", Owner: owner.Encode(true)}, fault.ErrInvalidProtocolFullName},
		{"bad signer", nftoken.ProtoRegisterArguments{Protocol: "crd", Name: "cards", Owner: owner.Encode(true), RegSign: "anyone"}, fault.ErrInvalidRegSign},
		{"livenet owner", nftoken.ProtoRegisterArguments{Protocol: "crd", Name: "cards", Owner: owner.Encode(false)}, fault.ErrWrongNetwork},
	}
	for _, item := range items {
		var reply nftoken.RegisterReply
		err := s.proto.Register(&item.arguments, &reply)
		assert.Equal(t, item.err, err, item.name)
	}
}

func TestProtoRegisterWithoutWallet(t *testing.T) {
	p := nftoken.NewNftProto(
		logger.New(fixtures.LogCategory),
		ratelimit.New(ratelimit.Configuration{}),
		registry.New(fixtures.NewDatabase()),
		nil,
		nil,
		nil,
		true,
	)

	var reply nftoken.RegisterReply
	err := p.Register(&nftoken.ProtoRegisterArguments{Protocol: "crd"}, &reply)
	assert.Equal(t, fault.ErrWalletNotAvailable, err, "no wallet")
}
