// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package specialtx

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/nftoken"
	"github.com/bitmark-inc/nftokend/registry"
	"github.com/bitmark-inc/nftokend/transactionrecord"
)

// NftProtocolHandler - rules for protocol registration transactions
type NftProtocolHandler struct {
	log *logger.L
}

// NewNftProtocolHandler - create the protocol registration handler
func NewNftProtocolHandler() *NftProtocolHandler {
	return &NftProtocolHandler{
		log: logger.New("nftproto"),
	}
}

// Check - validate a protocol registration
func (h *NftProtocolHandler) Check(tx *transactionrecord.Transaction, prior *blockrecord.Index, store registry.Store) error {
	reg := nftoken.ProtoRegTx{}
	if err := transactionrecord.GetPayload(tx, &reg); nil != err {
		return fault.Reject(fault.ErrBadPayload, fault.ScoreHigh, fault.RejectInvalid, "bad-tx-payload")
	}

	if nftoken.CurrentVersion != reg.Version {
		return fault.Reject(fault.ErrBadVersion, fault.ScoreHigh, fault.RejectInvalid, "bad-nft-proto-reg-tx-version")
	}

	protocol := &reg.Protocol
	if !nftoken.IsValidProtocol(protocol.ProtocolID) {
		return fault.Reject(fault.ErrInvalidProtocolName, fault.ScoreLow, fault.RejectInvalid, "bad-nft-proto-reg-tx-protocol")
	}
	if !nftoken.ValidProtocolFullName(protocol.Name) {
		return fault.Reject(fault.ErrInvalidProtocolFullName, fault.ScoreLow, fault.RejectInvalid, "bad-nft-proto-reg-tx-name")
	}
	if protocol.OwnerKeyID.IsNull() {
		return fault.Reject(fault.ErrNullField, fault.ScoreLow, fault.RejectInvalid, "bad-nft-proto-reg-tx-owner-key-null")
	}
	if !protocol.RegSign.IsValid() {
		return fault.Reject(fault.ErrInvalidRegSign, fault.ScoreLow, fault.RejectInvalid, "bad-nft-proto-reg-tx-reg-sign")
	}

	if nil != prior {
		existing := store.GetProtocol(protocol.ProtocolID)
		if !existing.IsNull() && existing.Block.Height <= prior.Height {
			return fault.Reject(fault.ErrDuplicateProtocol, fault.ScoreLow, fault.RejectDuplicate, "bad-nft-proto-reg-tx-dup-protocol")
		}
	}

	if err := account.VerifyHash(reg.SignatureHash(), protocol.OwnerKeyID, reg.Signature); nil != err {
		return fault.Reject(fault.ErrBadSignature, fault.ScoreHigh, fault.RejectInvalid, "bad-nft-proto-reg-tx-sig").WithDebug(err.Error())
	}
	return nil
}

// Apply - record the protocol at the block's height
func (h *NftProtocolHandler) Apply(tx *transactionrecord.Transaction, block *blockrecord.Index, store registry.Store) error {
	reg := mustDecodeProtocol(tx)

	txHash := tx.Hash()
	if err := store.AddProtocol(&reg.Protocol, txHash, block); nil != err {
		h.log.Warnf("apply: tx: %s  %s  error: %s", txHash, &reg.Protocol, err)
		return fault.Reject(fault.ErrDuplicateProtocol, fault.ScoreHigh, fault.RejectDuplicate, "nft-proto-reg-tx-conflict").WithDebug(err.Error())
	}
	h.log.Debugf("apply: tx: %s  %s  height: %d", txHash, &reg.Protocol, block.Height)
	return nil
}

// Revert - remove the protocol if it was recorded at the block's height
func (h *NftProtocolHandler) Revert(tx *transactionrecord.Transaction, block *blockrecord.Index, store registry.Store) error {
	reg := mustDecodeProtocol(tx)

	if err := store.DeleteProtocol(reg.Protocol.ProtocolID, block.Height); nil != err {
		h.log.Errorf("revert: tx: %s  %s  height: %d  error: %s", tx.Hash(), &reg.Protocol, block.Height, err)
		return err
	}
	h.log.Debugf("revert: tx: %s  %s  height: %d", tx.Hash(), &reg.Protocol, block.Height)
	return nil
}

func mustDecodeProtocol(tx *transactionrecord.Transaction) *nftoken.ProtoRegTx {
	reg := &nftoken.ProtoRegTx{}
	if err := transactionrecord.GetPayload(tx, reg); nil != err {
		fault.Panicf("nftproto: payload of tx: %s  no longer decodes: %s", tx.Hash(), err)
	}
	return reg
}
