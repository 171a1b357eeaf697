// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftoken

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
	nft "github.com/bitmark-inc/nftokend/nftoken"
	"github.com/bitmark-inc/nftokend/rpc/ratelimit"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

// NftProto - type for the protocol RPC
type NftProto struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry Registry
	Wallet   Wallet
	Funder   Funder
	Sender   Sender
	Testnet  bool
}

// NewNftProto - the NftProto RPC, the wallet side may be nil
func NewNftProto(log *logger.L,
	limiter *rate.Limiter,
	reg Registry,
	wallet Wallet,
	funder Funder,
	sender Sender,
	testnet bool,
) *NftProto {
	return &NftProto{
		Log:      log,
		Limiter:  limiter,
		Registry: reg,
		Wallet:   wallet,
		Funder:   funder,
		Sender:   sender,
		Testnet:  testnet,
	}
}

// ProtocolRecord - a registered protocol as returned to clients
type ProtocolRecord struct {
	BlockHash          merkle.Digest    `json:"blockHash"`
	RegistrationTxHash merkle.Digest    `json:"registrationTxHash"`
	Height             uint64           `json:"height"`
	Timestamp          uint64           `json:"timestamp"`
	ProtocolID         nft.ProtocolName `json:"nftProtocolId"`
	Name               string           `json:"tokenProtocolName"`
	OwnerKeyID         string           `json:"tokenProtocolOwnerId"`
	RegSign            nft.RegSign      `json:"nftRegSign"`
	MetadataMimeType   string           `json:"nftMetadataMimeType"`
	MetadataSchemaURI  string           `json:"nftMetadataSchemaUri"`
	Transferable       bool             `json:"isTokenTransferable"`
	Immutable          bool             `json:"isTokenImmutable"`
	MetadataEmbedded   bool             `json:"isMetadataEmbedded"`
}

func (proto *NftProto) record(i nft.ProtocolIndex) ProtocolRecord {
	p := &i.Protocol
	return ProtocolRecord{
		BlockHash:          i.Block.Hash,
		RegistrationTxHash: i.RegTxHash,
		Height:             i.Block.Height,
		Timestamp:          i.Block.Time,
		ProtocolID:         nft.ProtocolName(p.ProtocolID),
		Name:               p.Name,
		OwnerKeyID:         p.OwnerKeyID.Encode(proto.Testnet),
		RegSign:            p.RegSign,
		MetadataMimeType:   p.MetadataMimeType,
		MetadataSchemaURI:  p.MetadataSchemaURI,
		Transferable:       p.Transferable,
		Immutable:          p.Immutable,
		MetadataEmbedded:   p.MetadataEmbedded,
	}
}

// Get a protocol by symbol
// ------------------------

// ProtoGetArguments - arguments for Get
type ProtoGetArguments struct {
	Protocol string `json:"protocol"`
}

// Get - a single protocol record
func (proto *NftProto) Get(arguments *ProtoGetArguments, reply *ProtocolRecord) error {
	if err := ratelimit.Limit(proto.Limiter); nil != err {
		return err
	}

	proto.Log.Infof("NftProto.Get: %+v", arguments)

	protocolID, err := nft.ParseProtocolName(arguments.Protocol)
	if nil != err {
		return err
	}
	i := proto.Registry.GetProtocol(protocolID)
	if i.IsNull() {
		return fault.ErrProtocolNotFound
	}
	*reply = proto.record(i)
	return nil
}

// List every protocol
// -------------------

// ProtoListArguments - arguments for List
type ProtoListArguments struct{}

// ProtoListReply - result of List in symbol order
type ProtoListReply struct {
	Protocols []ProtocolRecord `json:"protocols"`
}

// List - all registered protocols
func (proto *NftProto) List(arguments *ProtoListArguments, reply *ProtoListReply) error {
	if err := ratelimit.Limit(proto.Limiter); nil != err {
		return err
	}

	indexes, err := proto.Registry.Protocols()
	if nil != err {
		return err
	}
	reply.Protocols = make([]ProtocolRecord, 0, len(indexes))
	for _, i := range indexes {
		reply.Protocols = append(reply.Protocols, proto.record(i))
	}
	return nil
}

// Register a new protocol
// -----------------------

// ProtoRegisterArguments - arguments for Register
//
// the owner's private key must be held by the wallet; unset fields
// keep the builder defaults
type ProtoRegisterArguments struct {
	Protocol          string `json:"protocol"`
	Name              string `json:"name"`
	Owner             string `json:"owner"`
	RegSign           string `json:"nftRegSign"`
	MetadataMimeType  string `json:"nftMetadataMimeType"`
	MetadataSchemaURI string `json:"nftMetadataSchemaUri"`
	Transferable      *bool  `json:"isTokenTransferable"`
	Immutable         *bool  `json:"isTokenImmutable"`
	MetadataEmbedded  *bool  `json:"isMetadataEmbedded"`
}

// Register - build, fund, sign and send a protocol registration
func (proto *NftProto) Register(arguments *ProtoRegisterArguments, reply *RegisterReply) error {
	if err := ratelimit.Limit(proto.Limiter); nil != err {
		return err
	}
	if nil == proto.Wallet || nil == proto.Funder || nil == proto.Sender {
		return fault.ErrWalletNotAvailable
	}

	log := proto.Log
	log.Infof("NftProto.Register: %+v", arguments)

	owner, err := parseKeyID(arguments.Owner, proto.Testnet)
	if nil != err {
		return err
	}
	key, err := proto.Wallet.PrivateKey(owner)
	if nil != err {
		return err
	}

	b := nft.NewProtoRegTxBuilder().
		SetTokenProtocol(arguments.Protocol).
		SetTokenProtocolName(arguments.Name).
		SetTokenProtocolOwnerKey(key)
	if "" != arguments.RegSign {
		s, err := nft.ParseRegSign(arguments.RegSign)
		if nil != err {
			return err
		}
		b.SetNftRegSign(s)
	}
	if "" != arguments.MetadataMimeType {
		b.SetMetadataMimeType(arguments.MetadataMimeType)
	}
	b.SetMetadataSchemaURI(arguments.MetadataSchemaURI)
	if nil != arguments.Transferable {
		b.SetIsTokenTransferable(*arguments.Transferable)
	}
	if nil != arguments.Immutable {
		b.SetIsTokenImmutable(*arguments.Immutable)
	}
	if nil != arguments.MetadataEmbedded {
		b.SetIsMetadataEmbedded(*arguments.MetadataEmbedded)
	}
	reg, err := b.Build()
	if nil != err {
		return err
	}

	if !proto.Registry.GetProtocol(reg.Protocol.ProtocolID).IsNull() {
		return fault.ErrDuplicateProtocol
	}

	tx := &transactionrecord.Transaction{
		Version: transactionrecord.SpecialVersion,
		Type:    transactionrecord.NftProtocolRegisterTx,
	}

	transactionrecord.SetPayload(tx, reg)
	if err := proto.Funder.Fund(tx); nil != err {
		return err
	}

	reg.Sign(key)
	transactionrecord.SetPayload(tx, reg)

	txID, err := proto.Sender.SignAndSend(tx)
	if nil != err {
		log.Warnf("send: %s  error: %s", &reg.Protocol, err)
		return err
	}

	log.Infof("sent: %s  tx: %s", &reg.Protocol, txID)
	reply.TxID = txID
	return nil
}
