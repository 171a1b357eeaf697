// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftoken

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
	nft "github.com/bitmark-inc/nftokend/nftoken"
	"github.com/bitmark-inc/nftokend/registry"
	"github.com/bitmark-inc/nftokend/rpc/ratelimit"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

// limits for List
const (
	defaultListCount = 20
	maximumListCount = 100
)

// wildcard for the protocol and owner filters
const matchAll = "*"

// NfToken - type for the RPC
type NfToken struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry Registry
	Wallet   Wallet
	Funder   Funder
	Sender   Sender
	Testnet  bool
}

// New - the NfToken RPC, the wallet side may be nil for a query only node
func New(log *logger.L,
	limiter *rate.Limiter,
	reg Registry,
	wallet Wallet,
	funder Funder,
	sender Sender,
	testnet bool,
) *NfToken {
	return &NfToken{
		Log:      log,
		Limiter:  limiter,
		Registry: reg,
		Wallet:   wallet,
		Funder:   funder,
		Sender:   sender,
		Testnet:  testnet,
	}
}

// Record - a registered token as returned to clients
type Record struct {
	BlockHash          merkle.Digest    `json:"blockHash"`
	RegistrationTxHash merkle.Digest    `json:"registrationTxHash"`
	Height             uint64           `json:"height"`
	Timestamp          uint64           `json:"timestamp"`
	ProtocolID         nft.ProtocolName `json:"nftProtocolId"`
	TokenID            merkle.Digest    `json:"nftId"`
	OwnerKeyID         string           `json:"nftOwnerKeyId"`
	AdminKeyID         string           `json:"metadataAdminKeyId"`
	Metadata           string           `json:"metadata"`
}

func (token *NfToken) record(i nft.Index) Record {
	return Record{
		BlockHash:          i.Block.Hash,
		RegistrationTxHash: i.RegTxHash,
		Height:             i.Block.Height,
		Timestamp:          i.Block.Time,
		ProtocolID:         nft.ProtocolName(i.Token.ProtocolID),
		TokenID:            i.Token.TokenID,
		OwnerKeyID:         i.Token.OwnerKeyID.Encode(token.Testnet),
		AdminKeyID:         i.Token.AdminKeyID.Encode(token.Testnet),
		Metadata:           string(i.Token.Metadata),
	}
}

// "" and "*" select every protocol
func parseProtocolFilter(s string) (uint64, error) {
	if "" == s || matchAll == s {
		return nft.UnknownProtocol, nil
	}
	return nft.ParseProtocolName(s)
}

// key must be encoded for this node's network
func parseKeyID(s string, testnet bool) (account.KeyID, error) {
	keyID, keyTestnet, err := account.KeyIDFromString(s)
	if nil != err {
		return keyID, err
	}
	if keyTestnet != testnet {
		return keyID, fault.ErrWrongNetwork
	}
	return keyID, nil
}

// Get a token by protocol and id
// ------------------------------

// GetArguments - arguments for Get
type GetArguments struct {
	Protocol string `json:"protocol"`
	TokenID  string `json:"tokenId"`
}

// Get - a single token record
func (token *NfToken) Get(arguments *GetArguments, reply *Record) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	token.Log.Infof("NfToken.Get: %+v", arguments)

	protocolID, err := nft.ParseProtocolName(arguments.Protocol)
	if nil != err {
		return err
	}
	tokenID, err := merkle.DigestFromString(arguments.TokenID)
	if nil != err {
		return fault.ErrInvalidTokenID
	}

	i := token.Registry.GetByKey(protocolID, tokenID)
	if i.IsNull() {
		return fault.ErrTokenNotFound
	}
	*reply = token.record(i)
	return nil
}

// Get a token by its registration transaction
// -------------------------------------------

// GetByTxIDArguments - arguments for GetByTxId
type GetByTxIDArguments struct {
	TxID merkle.Digest `json:"txId"`
}

// GetByTxId - the token registered by a transaction
func (token *NfToken) GetByTxId(arguments *GetByTxIDArguments, reply *Record) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	token.Log.Infof("NfToken.GetByTxId: %s", arguments.TxID)

	i := token.Registry.GetByTxHash(arguments.TxID)
	if i.IsNull() {
		return fault.ErrTokenNotFound
	}
	*reply = token.record(i)
	return nil
}

// List tokens newest first
// ------------------------

// ListArguments - arguments for List
//
// a nil height means the current tip
type ListArguments struct {
	Protocol  string `json:"protocol"`
	Owner     string `json:"owner"`
	Height    *int64 `json:"height"`
	Count     int    `json:"count"`
	Skip      int    `json:"skip"`
	RegTxOnly bool   `json:"regTxOnly"`
}

// ListReply - full records, or only the transaction hashes for regTxOnly
type ListReply struct {
	Records              []Record        `json:"records,omitempty"`
	RegistrationTxHashes []merkle.Digest `json:"registrationTxHashes,omitempty"`
}

// List - tokens confirmed at or below a height
func (token *NfToken) List(arguments *ListArguments, reply *ListReply) error {
	count := arguments.Count
	if 0 == count {
		count = defaultListCount
	}
	if err := ratelimit.LimitN(token.Limiter, count, maximumListCount); nil != err {
		return err
	}

	token.Log.Infof("NfToken.List: %+v", arguments)

	if arguments.Skip < 0 {
		return fault.ErrInvalidCount
	}

	filter := registry.Filter{}
	protocolID, err := parseProtocolFilter(arguments.Protocol)
	if nil != err {
		return err
	}
	filter.ProtocolID = protocolID

	if "" != arguments.Owner && matchAll != arguments.Owner {
		filter.OwnerKeyID, err = parseKeyID(arguments.Owner, token.Testnet)
		if nil != err {
			return err
		}
	}

	tip := token.Registry.Tip()
	if nil == tip {
		return fault.ErrEmptyChain
	}
	height := tip.Height
	if nil != arguments.Height {
		h := *arguments.Height
		if h < 0 || uint64(h) > tip.Height {
			return fault.ErrHeightOutOfRange
		}
		height = uint64(h)
	}

	indexes, err := token.Registry.RangeByHeight(filter, height, count, arguments.Skip)
	if nil != err {
		return err
	}

	for _, i := range indexes {
		if arguments.RegTxOnly {
			reply.RegistrationTxHashes = append(reply.RegistrationTxHashes, i.RegTxHash)
		} else {
			reply.Records = append(reply.Records, token.record(i))
		}
	}
	return nil
}

// Count registered tokens
// -----------------------

// TotalSupplyArguments - arguments for TotalSupply
type TotalSupplyArguments struct {
	Protocol string `json:"protocol"`
}

// TotalSupplyReply - result of TotalSupply
type TotalSupplyReply struct {
	Protocol    nft.ProtocolName `json:"protocol"`
	TotalSupply uint64           `json:"totalSupply"`
}

// TotalSupply - count for one protocol, or all when protocol is empty or "*"
func (token *NfToken) TotalSupply(arguments *TotalSupplyArguments, reply *TotalSupplyReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	protocolID, err := parseProtocolFilter(arguments.Protocol)
	if nil != err {
		return err
	}
	reply.Protocol = nft.ProtocolName(protocolID)
	reply.TotalSupply = token.Registry.TotalSupply(protocolID)
	return nil
}

// Register a new token
// --------------------

// RegisterArguments - arguments for Register
//
// the owner's private key must be held by the wallet, an empty or "0"
// admin key makes the owner the metadata administrator
type RegisterArguments struct {
	Protocol string `json:"protocol"`
	TokenID  string `json:"tokenId"`
	Owner    string `json:"owner"`
	AdminKey string `json:"adminKey"`
	Metadata string `json:"metadata"`
}

// RegisterReply - result of Register
type RegisterReply struct {
	TxID merkle.Digest `json:"txId"`
}

// Register - build, fund, sign and send a token registration
func (token *NfToken) Register(arguments *RegisterArguments, reply *RegisterReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}
	if nil == token.Wallet || nil == token.Funder || nil == token.Sender {
		return fault.ErrWalletNotAvailable
	}

	log := token.Log
	log.Infof("NfToken.Register: %+v", arguments)

	owner, err := parseKeyID(arguments.Owner, token.Testnet)
	if nil != err {
		return err
	}
	key, err := token.Wallet.PrivateKey(owner)
	if nil != err {
		return err
	}

	reg, err := nft.NewRegTxBuilder().
		SetTokenProtocol(arguments.Protocol).
		SetTokenID(arguments.TokenID).
		SetTokenOwnerKey(key).
		SetMetadataAdminKey(arguments.AdminKey).
		SetMetadata([]byte(arguments.Metadata)).
		Build()
	if nil != err {
		return err
	}

	if token.Registry.GetProtocol(reg.Token.ProtocolID).IsNull() {
		return fault.ErrProtocolNotFound
	}
	if !token.Registry.GetByKey(reg.Token.ProtocolID, reg.Token.TokenID).IsNull() {
		return fault.ErrDuplicateToken
	}

	tx := &transactionrecord.Transaction{
		Version: transactionrecord.SpecialVersion,
		Type:    transactionrecord.NfTokenRegisterTx,
	}

	// fee is computed with the payload in place
	transactionrecord.SetPayload(tx, reg)
	if err := token.Funder.Fund(tx); nil != err {
		return err
	}

	reg.Sign(key)
	transactionrecord.SetPayload(tx, reg)

	txID, err := token.Sender.SignAndSend(tx)
	if nil != err {
		log.Warnf("send: %s  error: %s", reg.Token.String(), err)
		return err
	}

	log.Infof("sent: %s  tx: %s", reg.Token.String(), txID)
	reply.TxID = txID
	return nil
}
