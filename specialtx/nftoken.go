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

// NfTokenHandler - rules for token registration transactions
type NfTokenHandler struct {
	log *logger.L
}

// NewNfTokenHandler - create the registration handler
func NewNfTokenHandler() *NfTokenHandler {
	return &NfTokenHandler{
		log: logger.New("nftoken"),
	}
}

// Check - validate a registration
//
// structural checks come first, then the protocol and duplicate
// lookups (only when a prior tip is given), and the signature last
func (h *NfTokenHandler) Check(tx *transactionrecord.Transaction, prior *blockrecord.Index, store registry.Store) error {
	reg := nftoken.RegTx{}
	if err := transactionrecord.GetPayload(tx, &reg); nil != err {
		return fault.Reject(fault.ErrBadPayload, fault.ScoreHigh, fault.RejectInvalid, "bad-tx-payload")
	}

	if nftoken.CurrentVersion != reg.Version {
		return fault.Reject(fault.ErrBadVersion, fault.ScoreHigh, fault.RejectInvalid, "bad-token-reg-tx-version")
	}

	token := &reg.Token
	if !nftoken.IsValidProtocol(token.ProtocolID) {
		return fault.Reject(fault.ErrInvalidProtocolName, fault.ScoreLow, fault.RejectInvalid, "bad-token-reg-tx-protocol")
	}
	if token.TokenID.IsZero() {
		return fault.Reject(fault.ErrNullField, fault.ScoreLow, fault.RejectInvalid, "bad-token-reg-tx-token")
	}
	if token.OwnerKeyID.IsNull() {
		return fault.Reject(fault.ErrNullField, fault.ScoreLow, fault.RejectInvalid, "bad-token-reg-tx-owner-key-null")
	}
	if token.AdminKeyID.IsNull() {
		return fault.Reject(fault.ErrNullField, fault.ScoreLow, fault.RejectInvalid, "bad-token-reg-tx-metadata-admin-key-null")
	}

	if nil != prior {
		protocol := store.GetProtocol(token.ProtocolID)
		if protocol.IsNull() || protocol.Block.Height > prior.Height {
			return fault.Reject(fault.ErrProtocolNotFound, fault.ScoreLow, fault.RejectInvalid, "bad-token-reg-tx-protocol-unknown")
		}
		if store.Contains(token.ProtocolID, token.TokenID, prior.Height) {
			return fault.Reject(fault.ErrDuplicateToken, fault.ScoreLow, fault.RejectDuplicate, "bad-token-reg-tx-dup-token")
		}
	}

	if err := account.VerifyHash(reg.SignatureHash(), token.OwnerKeyID, reg.Signature); nil != err {
		return fault.Reject(fault.ErrBadSignature, fault.ScoreHigh, fault.RejectInvalid, "bad-token-reg-tx-sig").WithDebug(err.Error())
	}
	return nil
}

// Apply - record the token at the block's height
func (h *NfTokenHandler) Apply(tx *transactionrecord.Transaction, block *blockrecord.Index, store registry.Store) error {
	reg := mustDecode(tx)

	txHash := tx.Hash()
	if err := store.Add(&reg.Token, txHash, block); nil != err {
		h.log.Warnf("apply: tx: %s  %s  error: %s", txHash, &reg.Token, err)
		return fault.Reject(fault.ErrDuplicateToken, fault.ScoreHigh, fault.RejectDuplicate, "token-reg-tx-conflict").WithDebug(err.Error())
	}
	h.log.Debugf("apply: tx: %s  %s  height: %d", txHash, &reg.Token, block.Height)
	return nil
}

// Revert - remove the token if it was recorded at the block's height
func (h *NfTokenHandler) Revert(tx *transactionrecord.Transaction, block *blockrecord.Index, store registry.Store) error {
	reg := mustDecode(tx)

	if err := store.Delete(reg.Token.ProtocolID, reg.Token.TokenID, block.Height); nil != err {
		h.log.Errorf("revert: tx: %s  %s  height: %d  error: %s", tx.Hash(), &reg.Token, block.Height, err)
		return err
	}
	h.log.Debugf("revert: tx: %s  %s  height: %d", tx.Hash(), &reg.Token, block.Height)
	return nil
}

// Check has already decoded this payload so a failure here is a bug
func mustDecode(tx *transactionrecord.Transaction) *nftoken.RegTx {
	reg := &nftoken.RegTx{}
	if err := transactionrecord.GetPayload(tx, reg); nil != err {
		fault.Panicf("nftoken: payload of tx: %s  no longer decodes: %s", tx.Hash(), err)
	}
	return reg
}
